package memvfs

import (
	"github.com/google/uuid"

	"github.com/mwantia/memvfs/host"
)

// File is one open instance of a memory-backed file. The zero value is
// not usable; handles come from MemVFS.Open.
type File struct {
	id            string
	name          string
	buf           *fileBuffer
	flags         host.OpenFlag
	deleteOnClose bool
}

func newFile(name string, buf *fileBuffer, flags host.OpenFlag) *File {
	return &File{
		id:            uuid.Must(uuid.NewV7()).String(),
		name:          name,
		buf:           buf,
		flags:         flags,
		deleteOnClose: flags.DeleteOnClose(),
	}
}

// ID returns the unique identifier assigned at open time.
func (f *File) ID() string {
	return f.id
}

// Name returns the file name, or the empty string for anonymous
// temporary files.
func (f *File) Name() string {
	return f.name
}

// Readonly mirrors the mode the handle was opened with.
func (f *File) Readonly() bool {
	return f.flags.IsReadonly()
}

// InMemory is always true; every file is a process-local buffer.
func (f *File) InMemory() bool {
	return true
}

func (f *File) buffer() *fileBuffer {
	return f.buf
}

// label identifies the file in diagnostics. Anonymous files have no
// name, so the handle id stands in.
func (f *File) label() string {
	if f.name != "" {
		return f.name
	}
	return "anon:" + f.id
}
