package http

import (
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/pro6vastgoed/cms-backend/internal/api/http/middleware"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	StoreKind      string
	AllowedOrigins []string

	// AuthClient guards the admin group. Nil disables the check (dev mode).
	AuthClient *auth.Client
	Handler    *Handler
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(corsMiddleware(dep.AllowedOrigins))

	healthHandler := NewHealthHandler(dep.ServiceName, dep.Version, dep.StoreKind)
	healthHandler.RegisterRoutes(r)

	h := dep.Handler

	api := r.Group("/api")
	api.Use(middleware.RequestID())

	// Public site surface.
	api.GET("/projects", h.PublicProjects)
	api.GET("/settings", h.PublicSettings)
	api.GET("/project-page/:slug", h.ProjectPage)
	api.GET("/static-images", h.StaticImages)
	api.POST("/seed", h.Seed)
	api.GET("/seed", h.SeedHint)

	// Admin surface; every route requires a verified Firebase user.
	admin := api.Group("/admin")
	admin.Use(middleware.RequireFirebaseUser(dep.AuthClient))

	pages := admin.Group("/pages")
	pages.GET("", h.ListPages)
	pages.GET("/stream", h.StreamPages)
	pages.GET("/:id", h.GetPage)
	pages.POST("", h.CreatePage)
	pages.PUT("/:id", h.UpdatePage)
	pages.DELETE("/:id", h.DeletePage)

	projects := admin.Group("/projects")
	projects.GET("", h.ListProjects)
	projects.GET("/stream", h.StreamProjects)
	projects.GET("/:id", h.GetProject)
	projects.POST("", h.CreateProject)
	projects.PUT("/:id", h.UpdateProject)
	projects.DELETE("/:id", h.DeleteProject)

	settings := admin.Group("/settings")
	settings.GET("", h.GetSettings)
	settings.GET("/stream", h.StreamSettings)
	settings.PUT("", h.UpdateSettings)

	media := admin.Group("/media")
	media.GET("", h.ListMedia)
	media.GET("/stream", h.StreamMedia)
	media.POST("", h.CreateMedia)

	admin.POST("/upload", h.Upload)
	admin.POST("/delete", h.DeleteFile)
	admin.GET("/blob-files", h.BlobFiles)
	admin.GET("/storage-usage", h.StorageUsage)

	return r
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 1 && origins[0] == "*" {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}
