package handlers

import (
	"embed"
	"html/template"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

const defaultImagesDir = "static/images"

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))

func (h *Handler) indexPage(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

func (h *Handler) graphsPage(c *gin.Context) {
	c.HTML(http.StatusOK, "readings_graphs.html", nil)
}

// serveImage serves a file from the images dir. Paths that are absolute or
// climb out of the directory are answered with 404.
func (h *Handler) serveImage(c *gin.Context) {
	name := strings.TrimPrefix(c.Param("filepath"), "/")
	if name == "" || !filepath.IsLocal(filepath.FromSlash(name)) {
		c.Status(http.StatusNotFound)
		return
	}
	c.File(filepath.Join(h.opts.ImagesDir, filepath.FromSlash(name)))
}
