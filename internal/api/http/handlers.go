// Package http is the gin transport for the CMS: public read endpoints,
// the seeded-content bootstrap, admin CRUD and change streams, uploads and
// blob management.
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pro6vastgoed/cms-backend/internal/blob"
	"github.com/pro6vastgoed/cms-backend/internal/content"
	"github.com/pro6vastgoed/cms-backend/internal/render"
	"github.com/pro6vastgoed/cms-backend/internal/upload"
)

// Handler carries every application dependency the routes need. It holds
// repositories directly; there is no service layer between transport and
// store for plain CRUD.
type Handler struct {
	pages    *content.PagesRepo
	projects *content.ProjectsRepo
	settings *content.SettingsRepo
	media    *content.MediaRepo
	seeder   *content.Seeder
	uploads  *upload.Pipeline
	blobs    blob.Store
	renderer *render.Generator

	assetsDir string
	quotaMB   int
}

type HandlerDeps struct {
	Pages    *content.PagesRepo
	Projects *content.ProjectsRepo
	Settings *content.SettingsRepo
	Media    *content.MediaRepo
	Seeder   *content.Seeder
	Uploads  *upload.Pipeline
	Blobs    blob.Store
	Renderer *render.Generator

	AssetsDir string
	QuotaMB   int
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		pages:     deps.Pages,
		projects:  deps.Projects,
		settings:  deps.Settings,
		media:     deps.Media,
		seeder:    deps.Seeder,
		uploads:   deps.Uploads,
		blobs:     deps.Blobs,
		renderer:  deps.Renderer,
		assetsDir: deps.AssetsDir,
		quotaMB:   deps.QuotaMB,
	}
}

// storeError maps repository failures onto transport status codes: missing
// documents are 404, everything else from the store is a 500 with a stable
// message. The underlying error goes to the response verbatim only when it
// is our own typed store error, never a raw driver error.
func storeError(c *gin.Context, err error) {
	if errors.Is(err, content.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	var se *content.StoreError
	if errors.As(err, &se) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": se.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
