package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"

	"github.com/pro6vastgoed/cms-backend/config"
	httpapi "github.com/pro6vastgoed/cms-backend/internal/api/http"
	"github.com/pro6vastgoed/cms-backend/internal/auth"
	"github.com/pro6vastgoed/cms-backend/internal/blob"
	"github.com/pro6vastgoed/cms-backend/internal/content"
	"github.com/pro6vastgoed/cms-backend/internal/docstore"
	"github.com/pro6vastgoed/cms-backend/internal/maintenance"
	"github.com/pro6vastgoed/cms-backend/internal/render"
	"github.com/pro6vastgoed/cms-backend/internal/upload"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	var (
		store      docstore.Client
		blobs      blob.Store
		authClient *fbauth.Client
		storeKind  string
	)

	if cfg.Firebase.CredentialsPath == "" {
		// Dev mode: everything in memory, admin routes open.
		log.Println("no Firebase credentials configured, using in-memory backends")
		store = docstore.NewMemory()
		blobs = blob.NewMemory("http://localhost:" + cfg.Server.Port + "/blob")
		storeKind = "memory"
	} else {
		fs, err := docstore.NewFirestore(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsPath)
		if err != nil {
			log.Fatalf("firestore: %v", err)
		}
		defer fs.Close()
		store = fs

		gcs, err := blob.NewGCS(ctx, cfg.Firebase.StorageBucket, cfg.Firebase.CredentialsPath)
		if err != nil {
			log.Fatalf("storage: %v", err)
		}
		defer gcs.Close()
		blobs = gcs

		authClient, err = auth.NewVerifier(ctx, cfg.Firebase.CredentialsPath)
		if err != nil {
			log.Fatalf("firebase auth: %v", err)
		}
		storeKind = "firestore"
	}

	pages := content.NewPagesRepo(store)
	projects := content.NewProjectsRepo(store)
	settings := content.NewSettingsRepo(store)
	media := content.NewMediaRepo(store)
	seeder := content.NewSeeder(store)

	handler := httpapi.NewHandler(httpapi.HandlerDeps{
		Pages:     pages,
		Projects:  projects,
		Settings:  settings,
		Media:     media,
		Seeder:    seeder,
		Uploads:   upload.NewPipeline(blobs, cfg.Upload.MaxBytes),
		Blobs:     blobs,
		Renderer:  render.NewGenerator(projects, settings),
		AssetsDir: cfg.Site.AssetsDir,
		QuotaMB:   cfg.Upload.QuotaMB,
	})

	router := httpapi.BuildRouter(httpapi.RouterDeps{
		ServiceName:    "pro6-cms-backend",
		Version:        cfg.App.Version,
		StoreKind:      storeKind,
		AllowedOrigins: cfg.Site.AllowedOrigins,
		AuthClient:     authClient,
		Handler:        handler,
	})

	sweeper := maintenance.NewSweeper(blobs, media, cfg.Upload.QuotaMB)
	sweeper.Start()
	defer sweeper.Stop()

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Printf("listening on :%s (%s)", cfg.Server.Port, storeKind)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
