package host

import "errors"

// Standard errors the VFS surfaces to the host. Each maps onto exactly one
// status code via StatusCode; no other error type crosses the boundary.
var (
	// Open rejections (read-only mode, exclusive-create on an existing name).
	ErrCannotOpen = errors.New("memvfs: cannot open file")

	// Delete referenced a name with no registry entry.
	ErrDeleteNotExist = errors.New("memvfs: delete of nonexistent file")

	// File-control opcode not recognized by this VFS.
	ErrNotFound = errors.New("memvfs: operation not supported")

	// No custom pragma is handled; the host falls back to its defaults.
	ErrPragmaNotFound = errors.New("memvfs: pragma not recognized")

	// Handle passed to an operation was not produced by this VFS
	// or was already closed.
	ErrInvalidHandle = errors.New("memvfs: invalid file handle")

	// Registration table errors.
	ErrAlreadyRegistered = errors.New("memvfs: vfs name already registered")
	ErrNotRegistered     = errors.New("memvfs: vfs name not registered")
)
