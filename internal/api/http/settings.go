package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pro6vastgoed/cms-backend/internal/content"
	"github.com/pro6vastgoed/cms-backend/internal/docstore"
)

// settingsProjection is the public read shape: site identity and the footer
// contact block, flattened. The public site never sees the full admin write
// shape.
type settingsProjection struct {
	SiteName    string               `json:"siteName"`
	Phone       string               `json:"phone"`
	Email       string               `json:"email"`
	Address     content.Address      `json:"address"`
	SocialLinks []content.SocialLink `json:"socialLinks"`
}

// PublicSettings returns the flattened projection, or null before seeding.
// An unseeded site is not an error on this route; the front end falls back
// to its built-in defaults.
func (h *Handler) PublicSettings(c *gin.Context) {
	settings, err := h.settings.Get(c.Request.Context())
	if errors.Is(err, content.ErrNotFound) {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, settingsProjection{
		SiteName:    settings.SiteName,
		Phone:       settings.Footer.Phone,
		Email:       settings.Footer.Email,
		Address:     settings.Footer.Address,
		SocialLinks: settings.Footer.SocialLinks,
	})
}

// GetSettings is the admin read: the full singleton, or null before seeding.
func (h *Handler) GetSettings(c *gin.Context) {
	settings, err := h.settings.Get(c.Request.Context())
	if errors.Is(err, content.ErrNotFound) {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettings merges the posted top-level fields into the singleton.
// Unmentioned keys survive, so partial saves from different admin tabs do
// not clobber each other.
func (h *Handler) UpdateSettings(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid settings payload"})
		return
	}
	delete(fields, "id")
	if err := h.settings.Update(c.Request.Context(), fields); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": "site"})
}

func (h *Handler) StreamSettings(c *gin.Context) {
	streamEvents(c, func(ctx context.Context, push func(v any)) docstore.CancelFunc {
		return h.settings.Subscribe(ctx, func(s *content.SiteSettings) {
			push(s)
		})
	})
}
