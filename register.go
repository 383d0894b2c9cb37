package memvfs

import (
	"fmt"
	"sync"

	"github.com/mwantia/memvfs/host"
)

// DefaultName is the name this VFS registers under when none is chosen.
const DefaultName = "mem"

// RegisterOptions configures how a VFS is installed into the
// process-global table.
type RegisterOptions struct {
	// MakeDefault installs the VFS as the one the host uses when a
	// connection names no VFS explicitly.
	MakeDefault bool
}

var (
	registerMu sync.RWMutex
	registered = make(map[string]VFS)
	fallback   VFS
)

// Register installs vfs under name in the process-global table the host
// resolves filesystems from. Registering an already-taken name fails;
// unregister it first.
func Register(name string, vfs VFS, opts RegisterOptions) error {
	registerMu.Lock()
	defer registerMu.Unlock()

	if _, exists := registered[name]; exists {
		return fmt.Errorf("%w: %s", host.ErrAlreadyRegistered, name)
	}

	registered[name] = vfs
	if opts.MakeDefault || fallback == nil {
		fallback = vfs
	}

	return nil
}

// Unregister removes the named VFS from the table. The default is
// cleared when it was the one removed.
func Unregister(name string) error {
	registerMu.Lock()
	defer registerMu.Unlock()

	vfs, exists := registered[name]
	if !exists {
		return fmt.Errorf("%w: %s", host.ErrNotRegistered, name)
	}

	delete(registered, name)
	if fallback == vfs {
		fallback = nil
		for _, other := range registered {
			fallback = other
			break
		}
	}

	return nil
}

// Find returns the VFS registered under name.
func Find(name string) (VFS, bool) {
	registerMu.RLock()
	defer registerMu.RUnlock()

	vfs, exists := registered[name]
	return vfs, exists
}

// Default returns the VFS the host falls back to when a connection
// names none.
func Default() (VFS, bool) {
	registerMu.RLock()
	defer registerMu.RUnlock()

	return fallback, fallback != nil
}
