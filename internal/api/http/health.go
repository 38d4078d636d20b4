package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Store     string    `json:"store"`
}

type HealthHandler struct {
	serviceName string
	version     string
	store       string
}

// NewHealthHandler reports service identity plus which document store backs
// the process ("firestore" or "memory").
func NewHealthHandler(serviceName, version, store string) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		store:       store,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		Store:     h.store,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
