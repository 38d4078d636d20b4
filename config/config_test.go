package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("FIREBASE_CREDENTIALS_PATH", "")
	t.Setenv("MAX_UPLOAD_MB", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, int64(10<<20), cfg.Upload.MaxBytes)
	assert.Equal(t, 100, cfg.Upload.QuotaMB)
	assert.Equal(t, "public/images", cfg.Site.AssetsDir)
	assert.Equal(t, []string{"*"}, cfg.Site.AllowedOrigins)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("MAX_UPLOAD_MB", "4")
	t.Setenv("ALLOWED_ORIGINS", "https://pro6vastgoed.nl, https://admin.pro6vastgoed.nl")
	t.Setenv("FIREBASE_CREDENTIALS_PATH", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, int64(4<<20), cfg.Upload.MaxBytes)
	assert.Equal(t, []string{"https://pro6vastgoed.nl", "https://admin.pro6vastgoed.nl"}, cfg.Site.AllowedOrigins)
}

func TestLoadInvalidIntFallsBack(t *testing.T) {
	t.Setenv("MAX_UPLOAD_MB", "lots")
	t.Setenv("FIREBASE_CREDENTIALS_PATH", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int64(10<<20), cfg.Upload.MaxBytes)
}

func TestValidateRequiresProjectWithCredentials(t *testing.T) {
	t.Setenv("FIREBASE_CREDENTIALS_PATH", "/tmp/creds.json")
	t.Setenv("FIREBASE_PROJECT_ID", "")
	t.Setenv("FIREBASE_STORAGE_BUCKET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FIREBASE_PROJECT_ID")
}
