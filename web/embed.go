// Package web holds the browser front end, embedded into the server binary.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var static embed.FS

// Assets is the static directory (index.html, app.js, style.css)
func Assets() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Index returns the page served at "/"
func Index() []byte {
	b, err := fs.ReadFile(Assets(), "index.html")
	if err != nil {
		panic(err)
	}
	return b
}
