package memvfs

import "github.com/mwantia/memvfs/host"

// VFS is the operation surface the host database engine invokes through
// its fixed call table. The host holds a type-erased reference obtained
// from the registration table and dispatches every filesystem request
// through it.
//
// Operations never return internal error types across this boundary;
// callers translate with host.StatusCode.
type VFS interface {
	// Open creates a handle for the named file, creating the backing
	// buffer on first open. An empty path opens an anonymous temporary
	// file that is invisible to Access and Delete.
	Open(path string, flags host.OpenFlag) (Handle, error)

	// Delete removes the named file. Returns host.ErrDeleteNotExist
	// when no such file is registered.
	Delete(path string) error

	// Access reports whether the named file exists. The probe flags
	// are irrelevant for a memory-backed filesystem.
	Access(path string, flags host.AccessFlag) (bool, error)

	// FileSize returns the current logical size of the file in bytes.
	FileSize(h Handle) (int64, error)

	// Truncate grows (zero-filling) or shrinks the file to size.
	Truncate(h Handle, size int64) error

	// Write places p at offset, zero-filling any gap past the current
	// end. Never returns a short count.
	Write(h Handle, offset int64, p []byte) (int, error)

	// Read copies up to len(p) bytes starting at offset and returns
	// the count. A read past the end returns 0 without error.
	Read(h Handle, offset int64, p []byte) (int, error)

	// Sync is a no-op; there is no durable storage to flush.
	Sync(h Handle) error

	// Lock and Unlock are no-ops; a single-process memory filesystem
	// needs no cross-process advisory locking.
	Lock(h Handle, level host.LockLevel) error
	Unlock(h Handle, level host.LockLevel) error

	// Close releases the handle. When the handle was opened with
	// delete-on-close and carries a name, the named file is deleted
	// as part of the close.
	Close(h Handle) error

	// Pragma always defers to the host's default pragma handling.
	Pragma(h Handle, pragma host.Pragma) (string, error)

	// FileControl handles the batch-atomic-write lifecycle opcodes
	// and reports everything else as unsupported.
	FileControl(h Handle, op host.FileControlOp) error

	// DeviceCharacteristics reports the I/O guarantees of this VFS.
	DeviceCharacteristics() host.DeviceCharacteristic
}

// Handle is one open instance of a file. Handles opened on the same
// name share a single backing buffer; anonymous handles own theirs
// exclusively.
type Handle interface {
	// ID returns the unique identifier assigned at open time,
	// used to correlate diagnostics for anonymous files.
	ID() string

	// Name returns the file name, or the empty string for
	// anonymous temporary files.
	Name() string

	// Readonly mirrors the mode the handle was opened with.
	Readonly() bool

	// InMemory is always true for this VFS.
	InMemory() bool

	buffer() *fileBuffer
}
