package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	App      AppConfig
	Firebase FirebaseConfig
	Upload   UploadConfig
	Site     SiteConfig
}

type ServerConfig struct {
	Port string
}

type AppConfig struct {
	Environment string
	Version     string
}

// FirebaseConfig covers every managed backend: Firestore for documents,
// Cloud Storage for blobs and Firebase Auth for admin identity. An empty
// CredentialsPath switches the service to in-memory backends for local
// development.
type FirebaseConfig struct {
	ProjectID       string
	CredentialsPath string
	StorageBucket   string
}

type UploadConfig struct {
	// MaxBytes is the upload size ceiling. The deployed value has ranged
	// between 4 and 10 MB over the site's lifetime, so it stays configurable.
	MaxBytes int64
	// QuotaMB is the blob storage plan limit reported by the usage endpoint.
	QuotaMB int
}

type SiteConfig struct {
	// AssetsDir is the directory holding the theme's bundled static images.
	AssetsDir      string
	AllowedOrigins []string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Firebase: FirebaseConfig{
			ProjectID:       getEnv("FIREBASE_PROJECT_ID", ""),
			CredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", ""),
			StorageBucket:   getEnv("FIREBASE_STORAGE_BUCKET", ""),
		},
		Upload: UploadConfig{
			MaxBytes: int64(getEnvAsInt("MAX_UPLOAD_MB", 10)) << 20,
			QuotaMB:  getEnvAsInt("STORAGE_QUOTA_MB", 100),
		},
		Site: SiteConfig{
			AssetsDir:      getEnv("ASSETS_DIR", "public/images"),
			AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "*")),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Upload.MaxBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_MB must be positive")
	}

	// Credentials imply the full Firebase stack; without them the service
	// runs on in-memory backends and needs neither project nor bucket.
	if c.Firebase.CredentialsPath != "" {
		if c.Firebase.ProjectID == "" {
			return fmt.Errorf("FIREBASE_PROJECT_ID is required when credentials are set")
		}
		if c.Firebase.StorageBucket == "" {
			return fmt.Errorf("FIREBASE_STORAGE_BUCKET is required when credentials are set")
		}
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
