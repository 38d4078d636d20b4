package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// GCS stores objects in a public Google Cloud Storage bucket.
type GCS struct {
	client *storage.Client
	bucket string
}

var _ Store = (*GCS)(nil)

func NewGCS(ctx context.Context, bucket, credentialsFile string) (*GCS, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("storage client: %w", err)
	}
	return &GCS{client: client, bucket: bucket}, nil
}

func (g *GCS) Put(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	w := g.client.Bucket(g.bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType
	w.PredefinedACL = "publicRead"
	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return "", fmt.Errorf("write object %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("write object %s: %w", key, err)
	}
	return g.publicURL(key), nil
}

func (g *GCS) Delete(ctx context.Context, url string) error {
	key, err := g.keyFromURL(url)
	if err != nil {
		return err
	}
	err = g.client.Bucket(g.bucket).Object(key).Delete(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil
	}
	return err
}

func (g *GCS) List(ctx context.Context) ([]ObjectInfo, error) {
	it := g.client.Bucket(g.bucket).Objects(ctx, nil)
	var out []ObjectInfo
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		out = append(out, ObjectInfo{
			Key:      attrs.Name,
			Name:     path.Base(attrs.Name),
			URL:      g.publicURL(attrs.Name),
			Size:     attrs.Size,
			Uploaded: attrs.Created,
		})
	}
	return out, nil
}

func (g *GCS) Close() error {
	return g.client.Close()
}

func (g *GCS) publicURL(key string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", g.bucket, key)
}

func (g *GCS) keyFromURL(url string) (string, error) {
	prefix := fmt.Sprintf("https://storage.googleapis.com/%s/", g.bucket)
	if !strings.HasPrefix(url, prefix) {
		return "", fmt.Errorf("url %q does not belong to bucket %s", url, g.bucket)
	}
	return strings.TrimPrefix(url, prefix), nil
}
