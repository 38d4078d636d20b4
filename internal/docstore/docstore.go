// Package docstore is the access layer for the CMS document database. It
// narrows the backend SDK to the handful of operations the repositories
// need: point reads, filtered/ordered queries, full and merge writes,
// atomic batches and live snapshot watches.
package docstore

import (
	"context"
	"errors"
)

// ErrNotFound reports a point read that matched no document. Missing
// documents are an expected outcome, not a transport failure.
var ErrNotFound = errors.New("docstore: document not found")

// Doc is a raw document: its id plus the stored field map.
type Doc struct {
	ID   string
	Data map[string]any
}

// Filter is a single field comparison, e.g. {"published", "==", true}.
type Filter struct {
	Field string
	Op    string
	Value any
}

// Order sorts results by one field.
type Order struct {
	Field string
	Desc  bool
}

// Query narrows and orders a collection read. The zero value selects the
// whole collection in store-default order.
type Query struct {
	Filters []Filter
	Orders  []Order
}

// Iterator yields successive result-set snapshots from a watch. Next blocks
// until the backend observes a change; the first call returns the current
// result set.
type Iterator interface {
	Next() ([]Doc, error)
	Stop()
}

// Client is the document-store handle shared by all repositories. It is
// constructed once at startup and injected; implementations are the
// Firestore client and an in-memory client for development and tests.
type Client interface {
	// Get reads one document, returning ErrNotFound when it does not exist.
	Get(ctx context.Context, collection, id string) (Doc, error)
	// GetAll runs a query and returns every matching document.
	GetAll(ctx context.Context, collection string, q Query) ([]Doc, error)
	// Set writes a full document keyed by id, replacing any existing one.
	Set(ctx context.Context, collection, id string, data map[string]any) error
	// Merge writes only the given fields into the document, creating it if
	// absent. Unmentioned top-level fields are left untouched.
	Merge(ctx context.Context, collection, id string, data map[string]any) error
	// Delete removes a document. Deleting a missing id is not an error.
	Delete(ctx context.Context, collection, id string) error
	// BatchSet writes all docs in one atomic unit: either every document in
	// the batch is committed or none is.
	BatchSet(ctx context.Context, collection string, docs []Doc) error
	// Watch opens a snapshot listener for the query.
	Watch(ctx context.Context, collection string, q Query) (Iterator, error)

	Close() error
}
