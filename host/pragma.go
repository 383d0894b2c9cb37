package host

// Pragma is a pragma statement the host forwards to the VFS before
// applying its own handling. Value is empty when the pragma was
// queried rather than assigned.
type Pragma struct {
	Name  string
	Value string
}

func (p Pragma) String() string {
	if p.Value == "" {
		return p.Name
	}
	return p.Name + "=" + p.Value
}
