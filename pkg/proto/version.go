package proto

import "strconv"

// Protocol is the protocol number a client sends in its handshake.
type Protocol int

func (p Protocol) String() string { return strconv.Itoa(int(p)) }

func (p Protocol) GreaterEqual(v *Version) bool { return p >= v.Protocol }
func (p Protocol) Greater(v *Version) bool      { return p > v.Protocol }
func (p Protocol) LowerEqual(v *Version) bool   { return p <= v.Protocol }
func (p Protocol) Lower(v *Version) bool        { return p < v.Protocol }

// Version is a protocol number and the game releases that speak it,
// oldest release first.
type Version struct {
	Protocol
	Names []string
}

// FirstName is the oldest release of the protocol.
func (v *Version) FirstName() string {
	if len(v.Names) == 0 {
		return ""
	}
	return v.Names[0]
}

// LastName is the newest release of the protocol.
func (v *Version) LastName() string {
	if len(v.Names) == 0 {
		return ""
	}
	return v.Names[len(v.Names)-1]
}

// String is the release name, or the first-last release range.
func (v Version) String() string {
	if len(v.Names) > 1 {
		return v.FirstName() + "-" + v.LastName()
	}
	return v.FirstName()
}
