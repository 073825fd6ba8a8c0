package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// setupStaticFiles serves the separately built frontend from dir
func setupStaticFiles(router *gin.Engine, dir string) {
	index := filepath.Join(dir, "index.html")
	if _, err := os.Stat(index); err != nil {
		log.Printf("⚠️  No frontend found in %s - serving the API only", dir)
	} else {
		log.Printf("🔧 Serving frontend assets from %s", dir)
		router.Static("/static", dir)
		router.StaticFile("/", index)
	}

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "API endpoint not found"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "page not found"})
	})
}
