package memvfs

import (
	"fmt"
	"sync"

	"github.com/mwantia/memvfs/host"
	"github.com/tidwall/btree"
)

// registry is the shared name to buffer mapping. One exclusive lock
// guards the whole collection so that check-then-insert on open is
// atomic; per-entry locking would let two concurrent opens of the same
// new name both create a buffer.
type registry struct {
	mu      sync.Mutex
	entries *btree.Map[string, *fileBuffer]
}

func newRegistry() *registry {
	return &registry{
		entries: btree.NewMap[string, *fileBuffer](0),
	}
}

// find returns the buffer registered under name, if any.
func (r *registry) find(name string) (*fileBuffer, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.entries.Get(name)
}

// findOrCreate returns the buffer for name, creating and registering an
// empty one when the name is unknown. With mustCreate set, an existing
// entry is an error instead of a share.
func (r *registry) findOrCreate(name string, mustCreate bool) (*fileBuffer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if buf, exists := r.entries.Get(name); exists {
		if mustCreate {
			return nil, fmt.Errorf("%w: %s already exists", host.ErrCannotOpen, name)
		}
		return buf, nil
	}

	buf := newFileBuffer()
	r.entries.Set(name, buf)
	return buf, nil
}

// remove deletes the entry for name, reporting whether one existed.
func (r *registry) remove(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, existed := r.entries.Delete(name)
	return existed
}

// scan visits every entry in name order until fn returns false.
func (r *registry) scan(fn func(name string, buf *fileBuffer) bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries.Scan(fn)
}
