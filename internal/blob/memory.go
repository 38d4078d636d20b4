package blob

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"sync"
	"time"
)

// Memory is an in-memory Store for development and tests. Its call counters
// let tests assert that validation rejected a payload before any store
// traffic happened.
type Memory struct {
	mu      sync.Mutex
	objects map[string]memObject
	baseURL string

	puts, deletes, lists int

	// PutErr, when set, makes Put fail. Test hook for transport failures.
	PutErr error
	// DeleteErr, when set, makes Delete fail.
	DeleteErr error
}

type memObject struct {
	data        []byte
	contentType string
	uploaded    time.Time
}

var _ Store = (*Memory)(nil)

func NewMemory(baseURL string) *Memory {
	return &Memory{
		objects: make(map[string]memObject),
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

func (m *Memory) Put(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.puts++
	if m.PutErr != nil {
		return "", m.PutErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	m.objects[key] = memObject{data: data, contentType: contentType, uploaded: time.Now()}
	return m.urlFor(key), nil
}

func (m *Memory) Delete(ctx context.Context, url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deletes++
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	key := strings.TrimPrefix(url, m.baseURL+"/")
	delete(m.objects, key)
	return nil
}

func (m *Memory) List(ctx context.Context) ([]ObjectInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lists++
	out := make([]ObjectInfo, 0, len(m.objects))
	for key, obj := range m.objects {
		out = append(out, ObjectInfo{
			Key:      key,
			Name:     path.Base(key),
			URL:      m.urlFor(key),
			Size:     int64(len(obj.data)),
			Uploaded: obj.uploaded,
		})
	}
	return out, nil
}

// PutCalls reports how many Put calls have been made, failed ones included.
func (m *Memory) PutCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.puts
}

// Has reports whether an object exists under key.
func (m *Memory) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[key]
	return ok
}

func (m *Memory) urlFor(key string) string {
	return fmt.Sprintf("%s/%s", m.baseURL, key)
}
