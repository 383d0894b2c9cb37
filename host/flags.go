package host

// OpenFlag carries the host's open-time options for a file.
// Values match the engine's SQLITE_OPEN_* constants and can be
// combined using bitwise OR.
type OpenFlag int

const (
	OpenReadOnly      OpenFlag = 0x00000001
	OpenReadWrite     OpenFlag = 0x00000002
	OpenCreate        OpenFlag = 0x00000004
	OpenDeleteOnClose OpenFlag = 0x00000008
	OpenExclusive     OpenFlag = 0x00000010
	OpenMemory        OpenFlag = 0x00000080
	OpenMainDB        OpenFlag = 0x00000100
	OpenTempDB        OpenFlag = 0x00000200
	OpenTransientDB   OpenFlag = 0x00000400
	OpenMainJournal   OpenFlag = 0x00000800
	OpenTempJournal   OpenFlag = 0x00001000
	OpenSubJournal    OpenFlag = 0x00002000
	OpenSuperJournal  OpenFlag = 0x00004000
	OpenWAL           OpenFlag = 0x00080000
)

// IsReadonly checks if the flags request read-only access.
func (f OpenFlag) IsReadonly() bool {
	return f&OpenReadOnly != 0 && f&OpenReadWrite == 0
}

// MustCreate checks if the flags demand exclusive creation, meaning the
// open has to fail when the name already exists.
func (f OpenFlag) MustCreate() bool {
	return f&(OpenCreate|OpenExclusive) == OpenCreate|OpenExclusive
}

// HasCreate checks if the flags allow creating a missing file.
func (f OpenFlag) HasCreate() bool {
	return f&OpenCreate != 0
}

// DeleteOnClose checks if the file should be removed when its
// handle closes. The host sets this for journals and temp files.
func (f OpenFlag) DeleteOnClose() bool {
	return f&OpenDeleteOnClose != 0
}

// AccessFlag selects what an access probe should test for.
type AccessFlag int

const (
	AccessExists    AccessFlag = 0
	AccessReadWrite AccessFlag = 1
	AccessRead      AccessFlag = 2
)

// LockLevel is an advisory file-lock state requested by the host.
// Levels are ordered; the host only ever moves one step at a time
// except when unlocking.
type LockLevel int

const (
	LockNone LockLevel = iota
	LockShared
	LockReserved
	LockPending
	LockExclusive
)

func (l LockLevel) String() string {
	switch l {
	case LockNone:
		return "none"
	case LockShared:
		return "shared"
	case LockReserved:
		return "reserved"
	case LockPending:
		return "pending"
	case LockExclusive:
		return "exclusive"
	default:
		return "unknown"
	}
}
