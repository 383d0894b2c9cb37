package host

// FileControlOp is an opcode passed through the host's file-control
// escape hatch. Values match the engine's SQLITE_FCNTL_* constants.
type FileControlOp int

const (
	FcntlLockState           FileControlOp = 1
	FcntlSizeHint            FileControlOp = 5
	FcntlPersistWAL          FileControlOp = 10
	FcntlPragma              FileControlOp = 14
	FcntlBeginAtomicWrite    FileControlOp = 31
	FcntlCommitAtomicWrite   FileControlOp = 32
	FcntlRollbackAtomicWrite FileControlOp = 33
)

func (op FileControlOp) String() string {
	switch op {
	case FcntlLockState:
		return "lock_state"
	case FcntlSizeHint:
		return "size_hint"
	case FcntlPersistWAL:
		return "persist_wal"
	case FcntlPragma:
		return "pragma"
	case FcntlBeginAtomicWrite:
		return "begin_atomic_write"
	case FcntlCommitAtomicWrite:
		return "commit_atomic_write"
	case FcntlRollbackAtomicWrite:
		return "rollback_atomic_write"
	default:
		return "unknown"
	}
}
