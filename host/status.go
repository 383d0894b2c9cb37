package host

import "errors"

// Status is a numeric result code from the host database engine's fixed
// vocabulary. Every VFS operation must resolve to one of these before it
// returns across the host boundary.
type Status int

const (
	StatusOK       Status = 0
	StatusError    Status = 1
	StatusIOErr    Status = 10
	StatusNotFound Status = 12
	StatusCantOpen Status = 14
	StatusNotice   Status = 27
	StatusWarning  Status = 28

	// Extended result codes combine a primary code with a detail
	// code in the upper bits.
	StatusIOErrDeleteNotExist Status = StatusIOErr | 23<<8
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "SQLITE_OK"
	case StatusError:
		return "SQLITE_ERROR"
	case StatusIOErr:
		return "SQLITE_IOERR"
	case StatusNotFound:
		return "SQLITE_NOTFOUND"
	case StatusCantOpen:
		return "SQLITE_CANTOPEN"
	case StatusNotice:
		return "SQLITE_NOTICE"
	case StatusWarning:
		return "SQLITE_WARNING"
	case StatusIOErrDeleteNotExist:
		return "SQLITE_IOERR_DELETE_NOENT"
	default:
		return "SQLITE_UNKNOWN"
	}
}

// StatusCode translates an error into the host's status vocabulary.
// A nil error is StatusOK; anything outside the known taxonomy
// collapses to the generic StatusError.
func StatusCode(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrCannotOpen):
		return StatusCantOpen
	case errors.Is(err, ErrDeleteNotExist):
		return StatusIOErrDeleteNotExist
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrPragmaNotFound):
		return StatusNotFound
	default:
		return StatusError
	}
}
