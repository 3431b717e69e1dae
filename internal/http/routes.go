package http

import (
	"net/http"
	"strings"
	"time"

	"todo_webapp/internal/http/handlers"
	"todo_webapp/internal/http/middleware"
	"todo_webapp/internal/rpc"
	"todo_webapp/internal/service"
	"todo_webapp/web"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouteConfig struct {
	Version       string
	StoreDriver   string
	APIRateLimit  int
	APIRateWindow time.Duration
}

// NewEngine builds the gin engine with the shared middleware and every route
func NewEngine(todos *service.TodoService, cfg RouteConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.CORS(), middleware.RequestID(), middleware.AccessLog(), middleware.Metrics())
	RegisterRoutes(r, todos, cfg)
	return r
}

func RegisterRoutes(r *gin.Engine, todos *service.TodoService, cfg RouteConfig) {
	h := handlers.NewHandler(todos)
	healthHandler := handlers.NewHealthHandler(todos, cfg.StoreDriver, cfg.Version)

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	rl := middleware.RedisRateLimit(cfg.APIRateLimit, cfg.APIRateWindow)

	registerProcedures(r.Group(rpc.PathPrefix, rl), h)
	// versioned mount of the same procedures
	registerProcedures(r.Group("/api/v1"+rpc.PathPrefix, rl), h)

	// Frontend static files
	index := web.Index()
	r.StaticFS("/assets", http.FS(web.Assets()))
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", index)
	})
	r.NoRoute(func(c *gin.Context) {
		p := c.Request.URL.Path
		if strings.HasPrefix(p, rpc.PathPrefix) || strings.HasPrefix(p, "/api/") {
			h.NotFound(c)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", index)
	})
}

func registerProcedures(g *gin.RouterGroup, h *handlers.Handler) {
	g.GET("/"+rpc.GetTodos, h.GetTodos)
	g.POST("/"+rpc.CreateTodo, h.CreateTodo)
	g.POST("/"+rpc.UpdateTodo, h.UpdateTodo)
	g.POST("/"+rpc.DeleteTodo, h.DeleteTodo)
}
