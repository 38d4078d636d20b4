package docstore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreClient implements Client against Cloud Firestore.
type FirestoreClient struct {
	fc *firestore.Client
}

var _ Client = (*FirestoreClient)(nil)

// NewFirestore connects to the project's Firestore database. An empty
// credentialsFile falls back to application default credentials.
func NewFirestore(ctx context.Context, projectID, credentialsFile string) (*FirestoreClient, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	fc, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("firestore client: %w", err)
	}
	return &FirestoreClient{fc: fc}, nil
}

func (c *FirestoreClient) Get(ctx context.Context, collection, id string) (Doc, error) {
	snap, err := c.fc.Collection(collection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return Doc{}, ErrNotFound
	}
	if err != nil {
		return Doc{}, err
	}
	return Doc{ID: snap.Ref.ID, Data: snap.Data()}, nil
}

func (c *FirestoreClient) GetAll(ctx context.Context, collection string, q Query) ([]Doc, error) {
	it := c.buildQuery(collection, q).Documents(ctx)
	defer it.Stop()

	var out []Doc
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		out = append(out, Doc{ID: snap.Ref.ID, Data: snap.Data()})
	}
	return out, nil
}

func (c *FirestoreClient) Set(ctx context.Context, collection, id string, data map[string]any) error {
	_, err := c.fc.Collection(collection).Doc(id).Set(ctx, data)
	return err
}

func (c *FirestoreClient) Merge(ctx context.Context, collection, id string, data map[string]any) error {
	_, err := c.fc.Collection(collection).Doc(id).Set(ctx, data, firestore.MergeAll)
	return err
}

func (c *FirestoreClient) Delete(ctx context.Context, collection, id string) error {
	// Firestore deletes are already idempotent: removing a missing
	// document succeeds.
	_, err := c.fc.Collection(collection).Doc(id).Delete(ctx)
	return err
}

func (c *FirestoreClient) BatchSet(ctx context.Context, collection string, docs []Doc) error {
	return c.fc.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		for _, d := range docs {
			if err := tx.Set(c.fc.Collection(collection).Doc(d.ID), d.Data); err != nil {
				return err
			}
		}
		return nil
	})
}

func (c *FirestoreClient) Watch(ctx context.Context, collection string, q Query) (Iterator, error) {
	return &firestoreIterator{it: c.buildQuery(collection, q).Snapshots(ctx)}, nil
}

func (c *FirestoreClient) Close() error {
	return c.fc.Close()
}

func (c *FirestoreClient) buildQuery(collection string, q Query) firestore.Query {
	fq := c.fc.Collection(collection).Query
	for _, f := range q.Filters {
		fq = fq.Where(f.Field, f.Op, f.Value)
	}
	for _, o := range q.Orders {
		dir := firestore.Asc
		if o.Desc {
			dir = firestore.Desc
		}
		fq = fq.OrderBy(o.Field, dir)
	}
	return fq
}

type firestoreIterator struct {
	it *firestore.QuerySnapshotIterator
}

func (w *firestoreIterator) Next() ([]Doc, error) {
	snap, err := w.it.Next()
	if err != nil {
		return nil, err
	}
	var out []Doc
	for {
		d, err := snap.Documents.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		out = append(out, Doc{ID: d.Ref.ID, Data: d.Data()})
	}
	return out, nil
}

func (w *firestoreIterator) Stop() {
	w.it.Stop()
}
