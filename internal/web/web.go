// Package web serves the event listing UI.
//
// The page is a single embedded HTML document plus a script that fetches
// /events whenever a filter changes, applies a client-side free-text search,
// and groups results by calendar day. Responses carry a request-generation
// token on the client so a stale response can never overwrite a newer one.
package web

import (
	"embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed index.html app.js
var content embed.FS

// Register mounts the listing UI routes on the engine.
func Register(r *gin.Engine) {
	r.GET("/", servePage("index.html", "text/html; charset=utf-8"))
	r.GET("/app.js", servePage("app.js", "application/javascript; charset=utf-8"))
}

func servePage(name, contentType string) gin.HandlerFunc {
	data, err := content.ReadFile(name)
	if err != nil {
		// Embedded files are read at build time; a miss is a packaging bug.
		panic(err)
	}
	return func(c *gin.Context) {
		c.Data(http.StatusOK, contentType, data)
	}
}
