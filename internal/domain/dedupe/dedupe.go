// Package dedupe tracks alert fingerprints so the monitor does not
// re-emit an alert for the same unresolved change set on every tick.
package dedupe

import (
	"container/list"
	"context"
	"sync"
)

// defaultMaxSize bounds the fingerprint set.
const defaultMaxSize = 10000

// Deduper records seen fingerprints for at-most-once alert emission.
type Deduper interface {
	// SeenAndRecord atomically checks if fp was seen and records it if
	// not. Returns true if fp was already seen.
	SeenAndRecord(ctx context.Context, fp string) bool

	// Unrecord removes a fingerprint, allowing the change set to alert
	// again (used when a candidate leaves and rejoins the watchlist).
	Unrecord(ctx context.Context, fp string)

	// Size returns the number of tracked fingerprints.
	Size() int
}

// inMemoryDeduper implements Deduper with a bounded map. When full, the
// oldest fingerprint is evicted first, so long-monitored candidates are
// the ones whose alerts may eventually re-fire.
type inMemoryDeduper struct {
	mu      sync.Mutex
	seen    map[string]*list.Element
	order   *list.List // front = oldest
	maxSize int
}

// NewInMemoryDeduper creates a bounded in-memory deduper.
func NewInMemoryDeduper(opts ...Option) Deduper {
	d := &inMemoryDeduper{
		seen:    make(map[string]*list.Element),
		order:   list.New(),
		maxSize: defaultMaxSize,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *inMemoryDeduper) SeenAndRecord(_ context.Context, fp string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.seen[fp]; ok {
		return true
	}

	for d.maxSize > 0 && len(d.seen) >= d.maxSize {
		oldest := d.order.Front()
		if oldest == nil {
			break
		}
		d.order.Remove(oldest)
		delete(d.seen, oldest.Value.(string))
	}

	d.seen[fp] = d.order.PushBack(fp)
	return false
}

func (d *inMemoryDeduper) Unrecord(_ context.Context, fp string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if el, ok := d.seen[fp]; ok {
		d.order.Remove(el)
		delete(d.seen, fp)
	}
}

func (d *inMemoryDeduper) Size() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.seen)
}
