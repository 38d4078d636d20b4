package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pro6vastgoed/cms-backend/internal/content"
	"github.com/pro6vastgoed/cms-backend/internal/docstore"
)

// PublicProjects lists only published projects in display order. Drafts are
// never visible here, whatever their other fields say.
func (h *Handler) PublicProjects(c *gin.Context) {
	projects, err := h.projects.Published(c.Request.Context())
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// ListProjects is the admin view: every project, drafts included, in
// display order.
func (h *Handler) ListProjects(c *gin.Context) {
	projects, err := h.projects.All(c.Request.Context())
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *Handler) GetProject(c *gin.Context) {
	project, err := h.projects.ByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *Handler) CreateProject(c *gin.Context) {
	var project content.Project
	if err := c.ShouldBindJSON(&project); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project payload"})
		return
	}
	if project.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project id is required"})
		return
	}
	if err := h.projects.Create(c.Request.Context(), project); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

func (h *Handler) UpdateProject(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid update payload"})
		return
	}
	delete(fields, "id")
	if err := h.projects.Update(c.Request.Context(), c.Param("id"), fields); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
}

func (h *Handler) DeleteProject(c *gin.Context) {
	if err := h.projects.Delete(c.Request.Context(), c.Param("id")); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
}

func (h *Handler) StreamProjects(c *gin.Context) {
	streamEvents(c, func(ctx context.Context, push func(v any)) docstore.CancelFunc {
		return h.projects.Subscribe(ctx, func(projects []content.Project) {
			push(projects)
		})
	})
}
