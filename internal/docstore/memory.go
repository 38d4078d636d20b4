package docstore

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryClient is an in-memory Client with the same query, merge and watch
// semantics as the Firestore one. It backs local development (no Firebase
// credentials configured) and the test suite.
type MemoryClient struct {
	mu   sync.RWMutex
	cols map[string]map[string]*memDoc
	seq  int64
	subs map[string][]*memSub

	// WatchErr, when set, makes Watch fail. Test hook for the
	// subscription-setup failure path.
	WatchErr error
	// WriteErr, when set, makes every write fail. Test hook for transport
	// failure propagation.
	WriteErr error
}

type memDoc struct {
	data map[string]any
	seq  int64 // insertion order; the store-default tie-break
}

var _ Client = (*MemoryClient)(nil)

func NewMemory() *MemoryClient {
	return &MemoryClient{
		cols: make(map[string]map[string]*memDoc),
		subs: make(map[string][]*memSub),
	}
}

func (c *MemoryClient) Get(_ context.Context, collection, id string) (Doc, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	d, ok := c.cols[collection][id]
	if !ok {
		return Doc{}, ErrNotFound
	}
	return Doc{ID: id, Data: cloneMap(d.data)}, nil
}

func (c *MemoryClient) GetAll(_ context.Context, collection string, q Query) ([]Doc, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.evalQuery(collection, q), nil
}

func (c *MemoryClient) Set(_ context.Context, collection, id string, data map[string]any) error {
	if err := c.WriteErr; err != nil {
		return err
	}
	c.mu.Lock()
	c.putLocked(collection, id, cloneMap(data))
	c.notifyLocked(collection)
	c.mu.Unlock()
	return nil
}

func (c *MemoryClient) Merge(_ context.Context, collection, id string, data map[string]any) error {
	if err := c.WriteErr; err != nil {
		return err
	}
	c.mu.Lock()
	existing, ok := c.cols[collection][id]
	if !ok {
		c.putLocked(collection, id, cloneMap(data))
	} else {
		for k, v := range data {
			existing.data[k] = cloneValue(v)
		}
	}
	c.notifyLocked(collection)
	c.mu.Unlock()
	return nil
}

func (c *MemoryClient) Delete(_ context.Context, collection, id string) error {
	if err := c.WriteErr; err != nil {
		return err
	}
	c.mu.Lock()
	delete(c.cols[collection], id)
	c.notifyLocked(collection)
	c.mu.Unlock()
	return nil
}

func (c *MemoryClient) BatchSet(_ context.Context, collection string, docs []Doc) error {
	if err := c.WriteErr; err != nil {
		return err
	}
	c.mu.Lock()
	for _, d := range docs {
		c.putLocked(collection, d.ID, cloneMap(d.Data))
	}
	c.notifyLocked(collection)
	c.mu.Unlock()
	return nil
}

func (c *MemoryClient) Watch(_ context.Context, collection string, q Query) (Iterator, error) {
	if err := c.WatchErr; err != nil {
		return nil, err
	}
	s := &memSub{
		client:     c,
		collection: collection,
		q:          q,
		notify:     make(chan struct{}, 1),
		done:       make(chan struct{}),
	}
	c.mu.Lock()
	c.subs[collection] = append(c.subs[collection], s)
	s.push(c.evalQuery(collection, q))
	c.mu.Unlock()
	return s, nil
}

func (c *MemoryClient) Close() error { return nil }

func (c *MemoryClient) putLocked(collection, id string, data map[string]any) {
	col := c.cols[collection]
	if col == nil {
		col = make(map[string]*memDoc)
		c.cols[collection] = col
	}
	if existing, ok := col[id]; ok {
		existing.data = data
		return
	}
	c.seq++
	col[id] = &memDoc{data: data, seq: c.seq}
}

func (c *MemoryClient) notifyLocked(collection string) {
	for _, s := range c.subs[collection] {
		s.push(c.evalQuery(collection, s.q))
	}
}

func (c *MemoryClient) evalQuery(collection string, q Query) []Doc {
	col := c.cols[collection]
	type entry struct {
		doc Doc
		seq int64
	}
	entries := make([]entry, 0, len(col))
	for id, d := range col {
		if !matches(d.data, q.Filters) {
			continue
		}
		entries = append(entries, entry{Doc{ID: id, Data: cloneMap(d.data)}, d.seq})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		for _, o := range q.Orders {
			cmp := compareValues(entries[i].doc.Data[o.Field], entries[j].doc.Data[o.Field])
			if cmp == 0 {
				continue
			}
			if o.Desc {
				return cmp > 0
			}
			return cmp < 0
		}
		// Ties fall back to insertion order: stable but arbitrary,
		// like the real backend's default.
		return entries[i].seq < entries[j].seq
	})
	out := make([]Doc, len(entries))
	for i, e := range entries {
		out[i] = e.doc
	}
	return out
}

func matches(data map[string]any, filters []Filter) bool {
	for _, f := range filters {
		v, ok := data[f.Field]
		if !ok {
			return false
		}
		cmp := compareValues(v, f.Value)
		switch f.Op {
		case "==":
			if cmp != 0 {
				return false
			}
		case "<":
			if cmp >= 0 {
				return false
			}
		case "<=":
			if cmp > 0 {
				return false
			}
		case ">":
			if cmp <= 0 {
				return false
			}
		case ">=":
			if cmp < 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// compareValues orders two field values of the same kind. Mixed kinds
// compare by type name so sorting stays deterministic.
func compareValues(a, b any) int {
	if af, aok := toFloat(a); aok {
		if bf, bok := toFloat(b); bok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
	}
	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return strings.Compare(av, bv)
		}
	case bool:
		if bv, ok := b.(bool); ok {
			switch {
			case av == bv:
				return 0
			case !av:
				return -1
			default:
				return 1
			}
		}
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Compare(bv)
		}
	}
	return strings.Compare(fmt.Sprintf("%T", a), fmt.Sprintf("%T", b))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneMap(t)
	case []any:
		out := make([]any, len(t))
		for i, el := range t {
			out[i] = cloneValue(el)
		}
		return out
	case []string:
		out := make([]string, len(t))
		copy(out, t)
		return out
	default:
		return v
	}
}

// memSub coalesces change notifications: a slow consumer skips intermediate
// snapshots but always sees the latest, which is safe because watchers
// receive full result sets rather than diffs.
type memSub struct {
	client     *MemoryClient
	collection string
	q          Query

	mu      sync.Mutex
	pending []Doc
	has     bool

	notify chan struct{}
	done   chan struct{}
	once   sync.Once
}

func (s *memSub) push(docs []Doc) {
	s.mu.Lock()
	s.pending = docs
	s.has = true
	s.mu.Unlock()
	select {
	case s.notify <- struct{}{}:
	default:
	}
}

func (s *memSub) Next() ([]Doc, error) {
	for {
		select {
		case <-s.done:
			return nil, context.Canceled
		case <-s.notify:
		}
		s.mu.Lock()
		if s.has {
			docs := s.pending
			s.pending, s.has = nil, false
			s.mu.Unlock()
			return docs, nil
		}
		s.mu.Unlock()
	}
}

func (s *memSub) Stop() {
	s.once.Do(func() {
		close(s.done)
		c := s.client
		c.mu.Lock()
		subs := c.subs[s.collection]
		for i, sub := range subs {
			if sub == s {
				c.subs[s.collection] = append(subs[:i], subs[i+1:]...)
				break
			}
		}
		c.mu.Unlock()
	})
}
