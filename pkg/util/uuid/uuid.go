// Package uuid wraps google/uuid with the text forms used in packet descriptions.
package uuid

import (
	"crypto/md5"

	guuid "github.com/google/uuid"
)

// UUID identifies a player entry, boss bar or chat sender.
type UUID guuid.UUID

// Nil is the zero UUID.
var Nil UUID

// New returns a random UUID. It panics if the random source fails.
func New() UUID { return UUID(guuid.New()) }

// Parse accepts the dashed, urn, braced and raw hex forms.
func Parse(s string) (UUID, error) {
	id, err := guuid.Parse(s)
	return UUID(id), err
}

func (i UUID) String() string { return guuid.UUID(i).String() }

// MarshalText renders the dashed form in yaml and json documents.
func (i UUID) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

func (i *UUID) UnmarshalText(b []byte) error {
	id, err := guuid.ParseBytes(b)
	if err != nil {
		return err
	}
	*i = UUID(id)
	return nil
}

// OfflinePlayerUUID is the name based v3 UUID an offline mode server
// assigns to a player.
func OfflinePlayerUUID(name string) UUID {
	id := md5.Sum([]byte("OfflinePlayer:" + name))
	id[6] = id[6]&0x0f | 0x30
	id[8] = id[8]&0x3f | 0x80
	return id
}
