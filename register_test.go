package memvfs_test

import (
	"errors"
	"testing"

	"github.com/mwantia/memvfs"
	"github.com/mwantia/memvfs/host"
)

func TestRegister(t *testing.T) {
	primary := newTestVFS(t)
	secondary := newTestVFS(t)

	if err := memvfs.Register("mem-primary", primary, memvfs.RegisterOptions{MakeDefault: true}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	defer memvfs.Unregister("mem-primary")

	if err := memvfs.Register("mem-primary", secondary, memvfs.RegisterOptions{}); !errors.Is(err, host.ErrAlreadyRegistered) {
		t.Fatalf("Duplicate register = %v, want ErrAlreadyRegistered", err)
	}

	found, ok := memvfs.Find("mem-primary")
	if !ok || found != memvfs.VFS(primary) {
		t.Fatal("Find did not return the registered vfs")
	}
	if _, ok := memvfs.Find("mem-unknown"); ok {
		t.Fatal("Find returned a vfs for an unknown name")
	}

	fallback, ok := memvfs.Default()
	if !ok || fallback != memvfs.VFS(primary) {
		t.Fatal("Default did not return the vfs registered with MakeDefault")
	}
}

func TestUnregister(t *testing.T) {
	first := newTestVFS(t)
	second := newTestVFS(t)

	if err := memvfs.Register("mem-first", first, memvfs.RegisterOptions{MakeDefault: true}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := memvfs.Register("mem-second", second, memvfs.RegisterOptions{}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	defer memvfs.Unregister("mem-second")

	if err := memvfs.Unregister("mem-first"); err != nil {
		t.Fatalf("Unregister failed: %v", err)
	}
	if err := memvfs.Unregister("mem-first"); !errors.Is(err, host.ErrNotRegistered) {
		t.Fatalf("Double unregister = %v, want ErrNotRegistered", err)
	}

	// Removing the default promotes another registered vfs.
	fallback, ok := memvfs.Default()
	if !ok || fallback != memvfs.VFS(second) {
		t.Fatal("Default not repointed after unregistering the default vfs")
	}
}
