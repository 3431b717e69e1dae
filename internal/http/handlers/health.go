package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves /healthz, /readyz and /health
type HealthHandler struct {
	store   Pinger
	driver  string
	version string
	started time.Time
}

func NewHealthHandler(store Pinger, driver, version string) *HealthHandler {
	return &HealthHandler{store: store, driver: driver, version: version, started: time.Now()}
}

type StoreStatus struct {
	Driver string `json:"driver"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type Readiness struct {
	Status  string      `json:"status"`
	Version string      `json:"version"`
	Uptime  string      `json:"uptime"`
	Store   StoreStatus `json:"store"`
}

// pingStore reports the store state; err is nil when it answered within timeout
func (h *HealthHandler) pingStore(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return h.store.Ping(ctx)
}

// Liveness only says the process is serving
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness answers 503 until the store can be reached
func (h *HealthHandler) Readiness(c *gin.Context) {
	r := Readiness{
		Status:  "ready",
		Version: h.version,
		Uptime:  time.Since(h.started).Round(time.Second).String(),
		Store:   StoreStatus{Driver: h.driver, Status: "up"},
	}
	code := http.StatusOK
	if err := h.pingStore(c.Request.Context(), 5*time.Second); err != nil {
		r.Status = "not ready"
		r.Store.Status = "down"
		r.Store.Error = err.Error()
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, r)
}

// Health is the short public form of Readiness; the store error is not shown
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.pingStore(c.Request.Context(), 3*time.Second); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": h.version})
}
