// Package blob abstracts the object-storage backend holding uploaded media
// binaries. Objects are addressed by key and publicly resolvable by URL.
package blob

import (
	"context"
	"io"
	"time"
)

// ObjectInfo describes one stored object.
type ObjectInfo struct {
	Key      string    `json:"path"`
	Name     string    `json:"name"`
	URL      string    `json:"url"`
	Size     int64     `json:"size"`
	Uploaded time.Time `json:"uploadedAt"`
}

// Store is the object-storage handle. Implementations: Google Cloud Storage
// and an in-memory store for development and tests.
type Store interface {
	// Put writes one object and returns its public URL.
	Put(ctx context.Context, key, contentType string, r io.Reader) (string, error)
	// Delete removes the object behind a previously issued URL. Deleting
	// an object that no longer exists is not an error.
	Delete(ctx context.Context, url string) error
	// List enumerates every stored object.
	List(ctx context.Context) ([]ObjectInfo, error)
}
