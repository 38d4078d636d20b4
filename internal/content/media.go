package content

import (
	"context"
	"log"

	"github.com/pro6vastgoed/cms-backend/internal/docstore"
)

// MediaRepo persists MediaFile metadata records. Listing is newest-first.
type MediaRepo struct {
	store docstore.Client
}

func NewMediaRepo(store docstore.Client) *MediaRepo {
	return &MediaRepo{store: store}
}

func newestFirst() docstore.Query {
	return docstore.Query{Orders: []docstore.Order{{Field: "createdAt", Desc: true}}}
}

func (r *MediaRepo) All(ctx context.Context) ([]MediaFile, error) {
	docs, err := r.store.GetAll(ctx, mediaCollection, newestFirst())
	if err != nil {
		return nil, readErr(mediaCollection, err)
	}
	return decodeMedia(docs, false)
}

func (r *MediaRepo) Create(ctx context.Context, m MediaFile) error {
	if err := r.store.Set(ctx, mediaCollection, m.ID, docstore.PrepareWrite(mediaDoc(m))); err != nil {
		return writeErr(mediaCollection, err)
	}
	return nil
}

func (r *MediaRepo) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, mediaCollection, id); err != nil {
		return writeErr(mediaCollection, err)
	}
	return nil
}

func (r *MediaRepo) Subscribe(ctx context.Context, cb func([]MediaFile)) docstore.CancelFunc {
	return docstore.Subscribe(ctx, r.store, mediaCollection, newestFirst(), func(docs []docstore.Doc) {
		media, err := decodeMedia(docs, true)
		if err == nil {
			cb(media)
		}
	})
}

func decodeMedia(docs []docstore.Doc, skipBad bool) ([]MediaFile, error) {
	media := make([]MediaFile, 0, len(docs))
	for _, d := range docs {
		m, err := mediaFromDoc(d)
		if err != nil {
			if skipBad {
				log.Printf("content: skipping malformed media record: %v", err)
				continue
			}
			return nil, readErr(mediaCollection, err)
		}
		media = append(media, m)
	}
	return media, nil
}
