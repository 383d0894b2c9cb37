package host_test

import (
	"fmt"
	"testing"

	"github.com/mwantia/memvfs/host"
)

func TestStatusCode(t *testing.T) {
	cases := []struct {
		err  error
		want host.Status
	}{
		{nil, host.StatusOK},
		{host.ErrCannotOpen, host.StatusCantOpen},
		{host.ErrDeleteNotExist, host.StatusIOErrDeleteNotExist},
		{host.ErrNotFound, host.StatusNotFound},
		{host.ErrPragmaNotFound, host.StatusNotFound},
		{host.ErrInvalidHandle, host.StatusError},
		{fmt.Errorf("wrapped: %w", host.ErrCannotOpen), host.StatusCantOpen},
		{fmt.Errorf("%w: some.db", host.ErrDeleteNotExist), host.StatusIOErrDeleteNotExist},
		{fmt.Errorf("unrelated failure"), host.StatusError},
	}

	for _, c := range cases {
		if got := host.StatusCode(c.err); got != c.want {
			t.Errorf("StatusCode(%v) = %v, want %v", c.err, got, c.want)
		}
	}
}

func TestStatusExtendedCode(t *testing.T) {
	// Extended codes keep the primary code in the low byte.
	if host.StatusIOErrDeleteNotExist&0xff != host.StatusIOErr {
		t.Fatalf("Extended delete code %d does not extend SQLITE_IOERR", host.StatusIOErrDeleteNotExist)
	}
}

func TestOpenFlag(t *testing.T) {
	cases := []struct {
		flags      host.OpenFlag
		readonly   bool
		mustCreate bool
		deleteOnCl bool
	}{
		{host.OpenReadOnly, true, false, false},
		{host.OpenReadOnly | host.OpenReadWrite, false, false, false},
		{host.OpenReadWrite | host.OpenCreate, false, false, false},
		{host.OpenReadWrite | host.OpenCreate | host.OpenExclusive, false, true, false},
		{host.OpenReadWrite | host.OpenExclusive, false, false, false},
		{host.OpenReadWrite | host.OpenCreate | host.OpenDeleteOnClose, false, false, true},
	}

	for _, c := range cases {
		if got := c.flags.IsReadonly(); got != c.readonly {
			t.Errorf("OpenFlag(%#x).IsReadonly() = %v, want %v", int(c.flags), got, c.readonly)
		}
		if got := c.flags.MustCreate(); got != c.mustCreate {
			t.Errorf("OpenFlag(%#x).MustCreate() = %v, want %v", int(c.flags), got, c.mustCreate)
		}
		if got := c.flags.DeleteOnClose(); got != c.deleteOnCl {
			t.Errorf("OpenFlag(%#x).DeleteOnClose() = %v, want %v", int(c.flags), got, c.deleteOnCl)
		}
	}
}
