package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pro6vastgoed/cms-backend/internal/content"
	"github.com/pro6vastgoed/cms-backend/internal/docstore"
)

func (h *Handler) ListPages(c *gin.Context) {
	pages, err := h.pages.All(c.Request.Context())
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, pages)
}

func (h *Handler) GetPage(c *gin.Context) {
	page, err := h.pages.ByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *Handler) CreatePage(c *gin.Context) {
	var page content.Page
	if err := c.ShouldBindJSON(&page); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page payload"})
		return
	}
	if page.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page id is required"})
		return
	}
	if err := h.pages.Create(c.Request.Context(), page); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, page)
}

// UpdatePage merges the posted fields into the stored document. A missing id
// becomes a fresh document holding just those fields, matching the store's
// merge-create semantics.
func (h *Handler) UpdatePage(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid update payload"})
		return
	}
	delete(fields, "id")
	if err := h.pages.Update(c.Request.Context(), c.Param("id"), fields); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
}

func (h *Handler) DeletePage(c *gin.Context) {
	if err := h.pages.Delete(c.Request.Context(), c.Param("id")); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
}

func (h *Handler) StreamPages(c *gin.Context) {
	streamEvents(c, func(ctx context.Context, push func(v any)) docstore.CancelFunc {
		return h.pages.Subscribe(ctx, func(pages []content.Page) {
			push(pages)
		})
	})
}
