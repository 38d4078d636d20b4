package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Seed populates an empty database with the default site content. Running
// it against a non-empty database is a no-op, reported as seeded: false.
func (h *Handler) Seed(c *gin.Context) {
	result, err := h.seeder.Run(c.Request.Context())
	if err != nil {
		storeError(c, err)
		return
	}

	seeded := result.Pages > 0 || result.Projects > 0
	message := "database already contains data, skipping seed"
	if seeded {
		message = "database seeded successfully"
	}
	c.JSON(http.StatusOK, gin.H{
		"seeded":   seeded,
		"message":  message,
		"pages":    result.Pages,
		"projects": result.Projects,
	})
}

// SeedHint answers GET on the seed route with usage instructions instead of
// seeding, so a crawler or a curious browser tab cannot trigger a write.
func (h *Handler) SeedHint(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "use POST to seed the database",
	})
}
