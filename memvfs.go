// Package memvfs implements an in-memory virtual filesystem a database
// engine can install in place of on-disk storage. Every file is a
// growable byte buffer addressed by a flat name; handles opened on the
// same name share one buffer, anonymous handles own a private one.
package memvfs

import (
	"fmt"

	"github.com/mwantia/memvfs/host"
	"github.com/mwantia/memvfs/log"
)

// MemVFS is the single concrete implementation of the VFS operation
// surface. It is stateless per call; all state lives in the registry
// and the individual file buffers, so the host may invoke operations
// concurrently from any goroutine.
type MemVFS struct {
	name     string
	registry *registry
	logger   *log.Logger
}

// FileInfo is a point-in-time snapshot of one registered file.
type FileInfo struct {
	Name string
	Size int64
}

func NewMemVFS(opts ...Option) (*MemVFS, error) {
	options := newDefaultOptions()
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}

	logger := log.NewLogger(options.Name, options.LogLevel, options.LogFile, options.NoTerminalLog)
	if options.Sink != nil {
		logger.Sink = newSinkBridge(options.Sink)
	}

	return &MemVFS{
		name:     options.Name,
		registry: newRegistry(),
		logger:   logger,
	}, nil
}

// Name returns the name this VFS identifies itself with.
func (m *MemVFS) Name() string {
	return m.name
}

// Open creates a handle for path, sharing the registered buffer when
// the name is already known. An empty path opens an anonymous temporary
// file with a private buffer that never touches the registry.
func (m *MemVFS) Open(path string, flags host.OpenFlag) (Handle, error) {
	m.logger.Debug("open: path=%q flags=%#x", path, flags)

	if flags.IsReadonly() {
		// There is no pre-existing backing data a read-only open
		// could read from; reject unconditionally.
		m.logger.Error("open: read-only mode rejected for path=%q", path)
		return nil, fmt.Errorf("%w: read-only open of in-memory file", host.ErrCannotOpen)
	}

	if path == "" {
		return newFile("", newFileBuffer(), flags), nil
	}

	buf, err := m.registry.findOrCreate(path, flags.MustCreate())
	if err != nil {
		m.logger.Error("open: %v", err)
		return nil, err
	}

	return newFile(path, buf, flags), nil
}

// Delete removes the registry entry for path.
func (m *MemVFS) Delete(path string) error {
	m.logger.Debug("delete: path=%q", path)

	if !m.registry.remove(path) {
		return fmt.Errorf("%w: %s", host.ErrDeleteNotExist, path)
	}

	return nil
}

// Access reports whether path names a registered file. The probe flags
// are irrelevant for a memory-backed filesystem.
func (m *MemVFS) Access(path string, flags host.AccessFlag) (bool, error) {
	m.logger.Debug("access: path=%q flags=%d", path, flags)

	_, exists := m.registry.find(path)
	return exists, nil
}

// FileSize returns the current logical size of the file in bytes.
func (m *MemVFS) FileSize(h Handle) (int64, error) {
	f, err := m.file(h)
	if err != nil {
		return 0, err
	}

	size := f.buffer().size()
	m.logger.Debug("file_size: file=%s size=%d", f.label(), size)
	return size, nil
}

// Truncate grows the file with zero fill or discards its tail. Always
// succeeds for an in-memory buffer.
func (m *MemVFS) Truncate(h Handle, size int64) error {
	f, err := m.file(h)
	if err != nil {
		return err
	}

	m.logger.Debug("truncate: file=%s size=%d", f.label(), size)
	f.buffer().truncate(size)
	return nil
}

// Write places p at offset, growing the buffer and zero-filling any gap
// past the current end. The count is never short; running out of memory
// is fatal, not a recoverable error.
func (m *MemVFS) Write(h Handle, offset int64, p []byte) (int, error) {
	f, err := m.file(h)
	if err != nil {
		return 0, err
	}

	m.logger.Debug("write: file=%s offset=%d len=%d", f.label(), offset, len(p))
	return f.buffer().writeAt(offset, p), nil
}

// Read copies up to len(p) bytes starting at offset. A read past the
// end returns 0 bytes without error; the host zero-fills the rest.
func (m *MemVFS) Read(h Handle, offset int64, p []byte) (int, error) {
	f, err := m.file(h)
	if err != nil {
		return 0, err
	}

	m.logger.Debug("read: file=%s offset=%d len=%d", f.label(), offset, len(p))
	return f.buffer().readAt(offset, p), nil
}

// Sync is a no-op; there is no durable storage to flush.
func (m *MemVFS) Sync(h Handle) error {
	f, err := m.file(h)
	if err != nil {
		return err
	}

	m.logger.Debug("sync: file=%s", f.label())
	return nil
}

// Lock is a no-op; a single-process memory filesystem needs no
// cross-process advisory locking.
func (m *MemVFS) Lock(h Handle, level host.LockLevel) error {
	f, err := m.file(h)
	if err != nil {
		return err
	}

	m.logger.Debug("lock: file=%s level=%s", f.label(), level)
	return nil
}

// Unlock is a no-op for the same reason Lock is.
func (m *MemVFS) Unlock(h Handle, level host.LockLevel) error {
	f, err := m.file(h)
	if err != nil {
		return err
	}

	m.logger.Debug("unlock: file=%s level=%s", f.label(), level)
	return nil
}

// Close releases the handle. A named handle opened with delete-on-close
// deletes its registry entry; the delete's error surfaces when another
// close or delete already removed it. Anonymous handles simply drop
// their private buffer.
func (m *MemVFS) Close(h Handle) error {
	f, err := m.file(h)
	if err != nil {
		return err
	}

	m.logger.Debug("close: file=%s", f.label())

	if f.deleteOnClose && f.name != "" {
		return m.Delete(f.name)
	}

	return nil
}

// Pragma recognizes no custom pragmas and defers entirely to the host's
// default handling.
func (m *MemVFS) Pragma(h Handle, pragma host.Pragma) (string, error) {
	f, err := m.file(h)
	if err != nil {
		return "", err
	}

	m.logger.Debug("pragma: file=%s pragma=%s", f.label(), pragma)
	return "", fmt.Errorf("%w: %s", host.ErrPragmaNotFound, pragma.Name)
}

// FileControl treats the batch-atomic-write lifecycle as always
// succeeding no-ops; writes to a process-local buffer are already
// atomic. Every other opcode is unsupported.
func (m *MemVFS) FileControl(h Handle, op host.FileControlOp) error {
	f, err := m.file(h)
	if err != nil {
		return err
	}

	m.logger.Debug("file_control: file=%s op=%s", f.label(), op)

	switch op {
	case host.FcntlBeginAtomicWrite,
		host.FcntlCommitAtomicWrite,
		host.FcntlRollbackAtomicWrite:
		return nil
	default:
		return fmt.Errorf("%w: file control %s", host.ErrNotFound, op)
	}
}

// DeviceCharacteristics reports the baseline set plus batch-atomic
// capability, since grouped writes to an in-memory buffer are trivially
// atomic.
func (m *MemVFS) DeviceCharacteristics() host.DeviceCharacteristic {
	m.logger.Debug("device_characteristics: batch atomic enabled")
	return host.DefaultCharacteristics | host.IocapBatchAtomic
}

// Files returns a snapshot of every registered file in name order.
func (m *MemVFS) Files() []FileInfo {
	var names []string
	var buffers []*fileBuffer
	m.registry.scan(func(name string, buf *fileBuffer) bool {
		names = append(names, name)
		buffers = append(buffers, buf)
		return true
	})

	// Sizes are taken after the registry lock is released so the
	// registry and buffer locks are never held together.
	infos := make([]FileInfo, len(names))
	for i, name := range names {
		infos[i] = FileInfo{Name: name, Size: buffers[i].size()}
	}

	return infos
}

// file recovers the concrete handle, guarding against handles that were
// not produced by this VFS.
func (m *MemVFS) file(h Handle) (*File, error) {
	f, ok := h.(*File)
	if !ok || f == nil || f.buf == nil {
		return nil, host.ErrInvalidHandle
	}

	return f, nil
}
