package memvfs

import "sync"

// fileBuffer is the byte storage behind a file. Every handle opened on
// the same name references the same buffer, so all data operations
// serialize on its lock. Length always equals the logical file size.
type fileBuffer struct {
	mu   sync.Mutex
	data []byte
}

func newFileBuffer() *fileBuffer {
	return &fileBuffer{}
}

func (b *fileBuffer) size() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	return int64(len(b.data))
}

func (b *fileBuffer) truncate(size int64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if size > int64(len(b.data)) {
		b.data = append(b.data, make([]byte, size-int64(len(b.data)))...)
	} else {
		b.data = b.data[:size]
	}
}

func (b *fileBuffer) writeAt(offset int64, p []byte) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	end := offset + int64(len(p))
	if end > int64(len(b.data)) {
		// Grow to exactly the write end; the gap between the old
		// length and offset stays zero-filled.
		grown := make([]byte, end)
		copy(grown, b.data)
		b.data = grown
	}

	copy(b.data[offset:end], p)
	return len(p)
}

func (b *fileBuffer) readAt(offset int64, p []byte) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	if offset >= int64(len(b.data)) {
		// Short read; the host zero-fills the unread tail itself.
		return 0
	}

	return copy(p, b.data[offset:])
}
