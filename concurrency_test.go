package memvfs_test

import (
	"bytes"
	"fmt"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/mwantia/memvfs"
	"github.com/mwantia/memvfs/host"
)

// TestConcurrentOpen_SingleEntry races many opens of the same fresh
// name; exactly one open may create the entry, every other open has to
// observe it.
func TestConcurrentOpen_SingleEntry(t *testing.T) {
	fs := newTestVFS(t)

	const workers = 32

	handles := make([]memvfs.Handle, workers)
	var group errgroup.Group
	for i := 0; i < workers; i++ {
		i := i
		group.Go(func() error {
			h, err := fs.Open("contended.db", host.OpenReadWrite|host.OpenCreate)
			if err != nil {
				return err
			}

			handles[i] = h
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		t.Fatalf("Concurrent open failed: %v", err)
	}

	if files := fs.Files(); len(files) != 1 {
		t.Fatalf("Registry holds %d entries, want 1", len(files))
	}

	// All handles share one buffer: a write through any handle is
	// visible through all of them.
	if _, err := fs.Write(handles[0], 0, []byte("x")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	for i, h := range handles {
		buf := make([]byte, 1)
		if n, _ := fs.Read(h, 0, buf); n != 1 || buf[0] != 'x' {
			t.Fatalf("Handle %d does not observe the shared write", i)
		}
	}
}

// TestConcurrentWrites_DisjointRegions lets two handles on the same
// name write interleaved regions in parallel; the buffer lock
// serializes them without losing either side's data.
func TestConcurrentWrites_DisjointRegions(t *testing.T) {
	fs := newTestVFS(t)

	const chunks = 64
	const chunkSize = 128

	a, err := fs.Open("parallel.db", host.OpenReadWrite|host.OpenCreate)
	if err != nil {
		t.Fatalf("First open failed: %v", err)
	}
	b, err := fs.Open("parallel.db", host.OpenReadWrite)
	if err != nil {
		t.Fatalf("Second open failed: %v", err)
	}

	var group errgroup.Group
	for i := 0; i < chunks; i++ {
		h := a
		fill := byte('a')
		if i%2 == 1 {
			h = b
			fill = byte('b')
		}

		offset := int64(i * chunkSize)
		group.Go(func() error {
			chunk := bytes.Repeat([]byte{fill}, chunkSize)
			n, err := fs.Write(h, offset, chunk)
			if err != nil {
				return err
			}
			if n != chunkSize {
				return fmt.Errorf("short write: %d of %d bytes", n, chunkSize)
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		t.Fatalf("Concurrent write failed: %v", err)
	}

	if size, _ := fs.FileSize(a); size != chunks*chunkSize {
		t.Fatalf("FileSize = %d, want %d", size, chunks*chunkSize)
	}

	got := make([]byte, chunks*chunkSize)
	if n, _ := fs.Read(b, 0, got); n != len(got) {
		t.Fatalf("Read = %d bytes, want %d", n, len(got))
	}
	for i := 0; i < chunks; i++ {
		want := byte('a')
		if i%2 == 1 {
			want = byte('b')
		}
		chunk := got[i*chunkSize : (i+1)*chunkSize]
		if !bytes.Equal(chunk, bytes.Repeat([]byte{want}, chunkSize)) {
			t.Fatalf("Chunk %d corrupted by concurrent writes", i)
		}
	}
}

// TestConcurrentOpenDelete hammers open and delete on one name; every
// call must resolve to a known status, never a torn registry state.
func TestConcurrentOpenDelete(t *testing.T) {
	fs := newTestVFS(t)

	var group errgroup.Group
	for n := 0; n < 16; n++ {
		group.Go(func() error {
			for m := 0; m < 50; m++ {
				h, err := fs.Open("churn.db", host.OpenReadWrite|host.OpenCreate)
				if err != nil {
					return err
				}
				if _, err := fs.Write(h, 0, []byte("payload")); err != nil {
					return err
				}
				if err := fs.Close(h); err != nil {
					return err
				}
			}
			return nil
		})
		group.Go(func() error {
			for m := 0; m < 50; m++ {
				switch err := fs.Delete("churn.db"); host.StatusCode(err) {
				case host.StatusOK, host.StatusIOErrDeleteNotExist:
				default:
					return err
				}
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		t.Fatalf("Concurrent open/delete failed: %v", err)
	}
}
