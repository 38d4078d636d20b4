// Package upload validates and stores incoming media files. Validation
// always runs before any network I/O to the storage backend.
package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pro6vastgoed/cms-backend/internal/blob"
	"github.com/pro6vastgoed/cms-backend/internal/content"
)

// allowedTypes is the fixed MIME allow-list for uploads.
var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
	"video/mp4":  true,
	"video/webm": true,
}

// ErrUnsupportedType rejects a MIME type outside the allow-list.
var ErrUnsupportedType = errors.New("file type not allowed; allowed types: JPEG, PNG, GIF, WebP, MP4, WebM")

// TooLargeError rejects a payload over the configured ceiling.
type TooLargeError struct {
	Limit int64
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("file too large; maximum size is %d MB", e.Limit>>20)
}

// Result is what a successful upload yields. It is exactly the shape the
// media repository's create expects, so the two compose without
// transformation.
type Result struct {
	URL  string            `json:"url"`
	Name string            `json:"name"`
	Path string            `json:"path"`
	Size int64             `json:"size"`
	Type content.MediaType `json:"type"`
}

// Pipeline validates files and persists them to object storage.
type Pipeline struct {
	store    blob.Store
	maxBytes int64
	now      func() time.Time
	token    func() string
}

func NewPipeline(store blob.Store, maxBytes int64) *Pipeline {
	return &Pipeline{
		store:    store,
		maxBytes: maxBytes,
		now:      time.Now,
		token:    func() string { return uuid.NewString()[:8] },
	}
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// Process checks type then size, derives a collision-resistant storage key
// and writes the payload. Images and videos land in separate buckets of the
// key space.
func (p *Pipeline) Process(ctx context.Context, filename, mimeType string, size int64, r io.Reader) (Result, error) {
	if !allowedTypes[mimeType] {
		return Result{}, ErrUnsupportedType
	}
	if size > p.maxBytes {
		return Result{}, &TooLargeError{Limit: p.maxBytes}
	}

	folder, mediaType := "images", content.MediaImage
	if strings.HasPrefix(mimeType, "video/") {
		folder, mediaType = "videos", content.MediaVideo
	}

	safeName := unsafeChars.ReplaceAllString(filename, "_")
	key := fmt.Sprintf("%s/%d-%s-%s", folder, p.now().UnixMilli(), p.token(), safeName)

	url, err := p.store.Put(ctx, key, mimeType, r)
	if err != nil {
		return Result{}, fmt.Errorf("upload %s: %w", key, err)
	}

	return Result{URL: url, Name: filename, Path: key, Size: size, Type: mediaType}, nil
}

// MaxBytes reports the configured size ceiling.
func (p *Pipeline) MaxBytes() int64 {
	return p.maxBytes
}
