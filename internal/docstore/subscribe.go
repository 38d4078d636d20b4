package docstore

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
)

// CancelFunc tears down a live subscription. It is safe to call more than
// once, from any goroutine, and from inside the callback itself (a
// subscriber unsubscribing on its own event), including while subscription
// setup is still in flight. Once it returns, no new callback invocation
// starts and any snapshot still in transit is discarded.
type CancelFunc func()

// Subscribe bridges a Watch into a callback feed. The callback receives the
// full current result set on every observed change, in the backend's own
// change order.
//
// Setup failures are logged and surfaced as a single empty invocation
// rather than an error: subscriptions are established from UI mounts, where
// no caller is left on the stack to catch anything.
func Subscribe(ctx context.Context, c Client, collection string, q Query, cb func([]Doc)) CancelFunc {
	ctx, cancel := context.WithCancel(ctx)
	s := &subscription{cb: cb, cancel: cancel}
	go s.run(ctx, c, collection, q)
	return s.stop
}

type subscription struct {
	stopped atomic.Bool

	// mu hands the iterator from setup to stop; it is never held across a
	// callback invocation, so the callback may call stop itself.
	mu sync.Mutex
	it Iterator

	cb     func([]Doc)
	cancel context.CancelFunc
}

func (s *subscription) run(ctx context.Context, c Client, collection string, q Query) {
	it, err := c.Watch(ctx, collection, q)
	if err != nil {
		log.Printf("docstore: subscribe %s: %v", collection, err)
		s.deliver(nil)
		return
	}

	// Teardown may have raced the setup above; hand the iterator over
	// under the lock so a concurrent stop either sees it or we see the
	// stop.
	s.mu.Lock()
	if s.stopped.Load() {
		s.mu.Unlock()
		it.Stop()
		return
	}
	s.it = it
	s.mu.Unlock()

	for {
		docs, err := it.Next()
		if err != nil {
			if ctx.Err() == nil {
				log.Printf("docstore: watch %s: %v", collection, err)
			}
			return
		}
		if !s.deliver(docs) {
			return
		}
	}
}

// deliver invokes the callback unless the subscription has been torn down.
// The stop flag is re-checked after the invocation so a callback that
// cancelled its own subscription ends the feed before the next snapshot.
func (s *subscription) deliver(docs []Doc) bool {
	if s.stopped.Load() {
		return false
	}
	s.cb(docs)
	return !s.stopped.Load()
}

func (s *subscription) stop() {
	if s.stopped.Swap(true) {
		return
	}
	s.cancel()
	s.mu.Lock()
	it := s.it
	s.mu.Unlock()
	if it != nil {
		it.Stop()
	}
}
