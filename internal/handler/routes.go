package handler

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every HTTP route of the server.
func RegisterRoutes(r *gin.Engine, ws *WSHandler, upload *UploadHandler, staticDir string) {
	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	r.GET("/ws", ws.Handle)
	r.POST("/upload", upload.Handle)

	// Client-side page.
	r.StaticFile("/", filepath.Join(staticDir, "index.html"))
	r.Static("/client", staticDir)
}
