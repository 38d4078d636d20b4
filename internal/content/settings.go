package content

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/pro6vastgoed/cms-backend/internal/docstore"
)

// SettingsRepo manages the SiteSettings singleton.
type SettingsRepo struct {
	store docstore.Client
	clock func() time.Time
}

func NewSettingsRepo(store docstore.Client) *SettingsRepo {
	return &SettingsRepo{store: store, clock: time.Now}
}

func (r *SettingsRepo) Get(ctx context.Context) (*SiteSettings, error) {
	d, err := r.store.Get(ctx, settingsCollection, settingsDocID)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, readErr(settingsCollection, err)
	}
	s, err := settingsFromDoc(d)
	if err != nil {
		return nil, readErr(settingsCollection, err)
	}
	return &s, nil
}

// Update merges the given fields into the singleton and stamps updatedAt.
// Unmentioned top-level keys survive, per the store's merge semantics.
func (r *SettingsRepo) Update(ctx context.Context, fields map[string]any) error {
	merged := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		merged[k] = v
	}
	merged["updatedAt"] = r.clock()
	if err := r.store.Merge(ctx, settingsCollection, settingsDocID, docstore.PrepareWrite(merged)); err != nil {
		return writeErr(settingsCollection, err)
	}
	return nil
}

// Subscribe feeds cb the current settings on every change, or nil while the
// singleton does not exist yet.
func (r *SettingsRepo) Subscribe(ctx context.Context, cb func(*SiteSettings)) docstore.CancelFunc {
	return docstore.Subscribe(ctx, r.store, settingsCollection, docstore.Query{}, func(docs []docstore.Doc) {
		for _, d := range docs {
			if d.ID != settingsDocID {
				continue
			}
			s, err := settingsFromDoc(d)
			if err != nil {
				log.Printf("content: skipping malformed settings: %v", err)
				cb(nil)
				return
			}
			cb(&s)
			return
		}
		cb(nil)
	})
}
