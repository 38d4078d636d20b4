package content

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/pro6vastgoed/cms-backend/internal/docstore"
)

// PagesRepo persists Page documents.
type PagesRepo struct {
	store docstore.Client
	clock func() time.Time
}

func NewPagesRepo(store docstore.Client) *PagesRepo {
	return &PagesRepo{store: store, clock: time.Now}
}

func (r *PagesRepo) All(ctx context.Context) ([]Page, error) {
	docs, err := r.store.GetAll(ctx, pagesCollection, docstore.Query{})
	if err != nil {
		return nil, readErr(pagesCollection, err)
	}
	return decodePages(docs, false)
}

func (r *PagesRepo) ByID(ctx context.Context, id string) (*Page, error) {
	d, err := r.store.Get(ctx, pagesCollection, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, readErr(pagesCollection, err)
	}
	p, err := pageFromDoc(d)
	if err != nil {
		return nil, readErr(pagesCollection, err)
	}
	return &p, nil
}

func (r *PagesRepo) BySlug(ctx context.Context, slug string) (*Page, error) {
	docs, err := r.store.GetAll(ctx, pagesCollection, docstore.Query{
		Filters: []docstore.Filter{{Field: "slug", Op: "==", Value: slug}},
	})
	if err != nil {
		return nil, readErr(pagesCollection, err)
	}
	if len(docs) == 0 {
		return nil, ErrNotFound
	}
	p, err := pageFromDoc(docs[0])
	if err != nil {
		return nil, readErr(pagesCollection, err)
	}
	return &p, nil
}

func (r *PagesRepo) Create(ctx context.Context, p Page) error {
	if err := r.store.Set(ctx, pagesCollection, p.ID, docstore.PrepareWrite(pageDoc(p))); err != nil {
		return writeErr(pagesCollection, err)
	}
	return nil
}

// Update merges fields into the stored page and stamps updatedAt. Field
// keys use the persisted (wire) names.
func (r *PagesRepo) Update(ctx context.Context, id string, fields map[string]any) error {
	if err := r.store.Merge(ctx, pagesCollection, id, r.stamp(fields)); err != nil {
		return writeErr(pagesCollection, err)
	}
	return nil
}

func (r *PagesRepo) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, pagesCollection, id); err != nil {
		return writeErr(pagesCollection, err)
	}
	return nil
}

// Subscribe feeds cb the full page collection on every observed change
// until the returned teardown is called.
func (r *PagesRepo) Subscribe(ctx context.Context, cb func([]Page)) docstore.CancelFunc {
	return docstore.Subscribe(ctx, r.store, pagesCollection, docstore.Query{}, func(docs []docstore.Doc) {
		pages, err := decodePages(docs, true)
		if err == nil {
			cb(pages)
		}
	})
}

func (r *PagesRepo) stamp(fields map[string]any) map[string]any {
	merged := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		merged[k] = v
	}
	merged["updatedAt"] = r.clock()
	return docstore.PrepareWrite(merged)
}

// decodePages maps raw docs to pages. In the live path a malformed document
// is logged and skipped rather than killing the feed; one-shot reads
// propagate the failure.
func decodePages(docs []docstore.Doc, skipBad bool) ([]Page, error) {
	pages := make([]Page, 0, len(docs))
	for _, d := range docs {
		p, err := pageFromDoc(d)
		if err != nil {
			if skipBad {
				log.Printf("content: skipping malformed page: %v", err)
				continue
			}
			return nil, readErr(pagesCollection, err)
		}
		pages = append(pages, p)
	}
	return pages, nil
}
