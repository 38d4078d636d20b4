package http

import (
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pro6vastgoed/cms-backend/internal/content"
)

// ProjectPage serves the generated HTML for one project. Unknown slugs are a
// 404; a render failure never emits a partial page.
func (h *Handler) ProjectPage(c *gin.Context) {
	html, err := h.renderer.ProjectPage(c.Request.Context(), c.Param("slug"))
	if errors.Is(err, content.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	if err != nil {
		log.Printf("project page render failed for %q: %v", c.Param("slug"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not render page"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

// StaticImages lists the theme's bundled images from the assets directory,
// so the admin picker can offer them next to uploaded media. A missing
// directory is an empty list, not an error.
func (h *Handler) StaticImages(c *gin.Context) {
	entries, err := os.ReadDir(h.assetsDir)
	if err != nil {
		c.JSON(http.StatusOK, []string{})
		return
	}

	images := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if imageExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			images = append(images, "/images/"+e.Name())
		}
	}
	sort.Strings(images)
	c.JSON(http.StatusOK, images)
}
