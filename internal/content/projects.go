package content

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/pro6vastgoed/cms-backend/internal/docstore"
)

// ProjectsRepo persists Project documents. All list reads order by the
// display sequence field, ascending; ties keep the store-default order.
type ProjectsRepo struct {
	store docstore.Client
	clock func() time.Time
}

func NewProjectsRepo(store docstore.Client) *ProjectsRepo {
	return &ProjectsRepo{store: store, clock: time.Now}
}

func orderAsc() docstore.Query {
	return docstore.Query{Orders: []docstore.Order{{Field: "order"}}}
}

func (r *ProjectsRepo) All(ctx context.Context) ([]Project, error) {
	docs, err := r.store.GetAll(ctx, projectsCollection, orderAsc())
	if err != nil {
		return nil, readErr(projectsCollection, err)
	}
	return decodeProjects(docs, false)
}

// Published returns only projects gated for public visibility, in display
// order. Every public-facing caller goes through here.
func (r *ProjectsRepo) Published(ctx context.Context) ([]Project, error) {
	docs, err := r.store.GetAll(ctx, projectsCollection, docstore.Query{
		Filters: []docstore.Filter{{Field: "published", Op: "==", Value: true}},
		Orders:  []docstore.Order{{Field: "order"}},
	})
	if err != nil {
		return nil, readErr(projectsCollection, err)
	}
	return decodeProjects(docs, false)
}

func (r *ProjectsRepo) ByID(ctx context.Context, id string) (*Project, error) {
	d, err := r.store.Get(ctx, projectsCollection, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, readErr(projectsCollection, err)
	}
	p, err := projectFromDoc(d)
	if err != nil {
		return nil, readErr(projectsCollection, err)
	}
	return &p, nil
}

// BySlug fetches a project published or not; internal preview paths need
// drafts too.
func (r *ProjectsRepo) BySlug(ctx context.Context, slug string) (*Project, error) {
	docs, err := r.store.GetAll(ctx, projectsCollection, docstore.Query{
		Filters: []docstore.Filter{{Field: "slug", Op: "==", Value: slug}},
	})
	if err != nil {
		return nil, readErr(projectsCollection, err)
	}
	if len(docs) == 0 {
		return nil, ErrNotFound
	}
	p, err := projectFromDoc(docs[0])
	if err != nil {
		return nil, readErr(projectsCollection, err)
	}
	return &p, nil
}

func (r *ProjectsRepo) Create(ctx context.Context, p Project) error {
	if err := r.store.Set(ctx, projectsCollection, p.ID, docstore.PrepareWrite(projectDoc(p))); err != nil {
		return writeErr(projectsCollection, err)
	}
	return nil
}

func (r *ProjectsRepo) Update(ctx context.Context, id string, fields map[string]any) error {
	merged := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		merged[k] = v
	}
	merged["updatedAt"] = r.clock()
	if err := r.store.Merge(ctx, projectsCollection, id, docstore.PrepareWrite(merged)); err != nil {
		return writeErr(projectsCollection, err)
	}
	return nil
}

func (r *ProjectsRepo) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, projectsCollection, id); err != nil {
		return writeErr(projectsCollection, err)
	}
	return nil
}

func (r *ProjectsRepo) Subscribe(ctx context.Context, cb func([]Project)) docstore.CancelFunc {
	return docstore.Subscribe(ctx, r.store, projectsCollection, orderAsc(), func(docs []docstore.Doc) {
		projects, err := decodeProjects(docs, true)
		if err == nil {
			cb(projects)
		}
	})
}

func decodeProjects(docs []docstore.Doc, skipBad bool) ([]Project, error) {
	projects := make([]Project, 0, len(docs))
	for _, d := range docs {
		p, err := projectFromDoc(d)
		if err != nil {
			if skipBad {
				log.Printf("content: skipping malformed project: %v", err)
				continue
			}
			return nil, readErr(projectsCollection, err)
		}
		projects = append(projects, p)
	}
	return projects, nil
}
