package v1

import (
	"net/http"
	"path/filepath"
	"strings"

	"job-portal-backend/internal/delivery/http/response"

	"github.com/gin-gonic/gin"
)

// StaticHandler serves the bundled front-end from publicDir for every GET that
// matched no API route. "/" maps to index.html; unknown /api paths get a JSON 404.
func StaticHandler(publicDir string) gin.HandlerFunc {
	root := http.Dir(publicDir)
	fileServer := http.FileServer(root)

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		isRead := c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead
		if !isRead || path == "/api" || strings.HasPrefix(path, "/api/") {
			response.Error(c, http.StatusNotFound, "Not found")
			return
		}

		if path == "/" {
			c.File(filepath.Join(publicDir, "index.html"))
			return
		}

		f, err := root.Open(path)
		if err != nil {
			response.Error(c, http.StatusNotFound, "Not found")
			return
		}
		_ = f.Close()

		fileServer.ServeHTTP(c.Writer, c.Request)
	}
}
