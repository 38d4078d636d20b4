package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pro6vastgoed/cms-backend/internal/content"
	"github.com/pro6vastgoed/cms-backend/internal/docstore"
)

func (h *Handler) ListMedia(c *gin.Context) {
	media, err := h.media.All(c.Request.Context())
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, media)
}

// CreateMedia records the metadata for an already-uploaded blob. The upload
// endpoint returns exactly this shape, so the admin client posts it back
// unchanged.
func (h *Handler) CreateMedia(c *gin.Context) {
	var m content.MediaFile
	if err := c.ShouldBindJSON(&m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid media payload"})
		return
	}
	if m.ID == "" || m.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "media id and url are required"})
		return
	}
	if err := h.media.Create(c.Request.Context(), m); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (h *Handler) StreamMedia(c *gin.Context) {
	streamEvents(c, func(ctx context.Context, push func(v any)) docstore.CancelFunc {
		return h.media.Subscribe(ctx, func(files []content.MediaFile) {
			push(files)
		})
	})
}
