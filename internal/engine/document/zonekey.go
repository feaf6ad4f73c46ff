package document

import (
	"errors"
	"fmt"
	"strings"
)

// zoneKeySeparator joins owner id and zone name in the text encoding.
// Node ids never contain ':' (they are generated UUIDs or test
// sequences), so the first ':' is always the boundary.
const zoneKeySeparator = ":"

// ErrInvalidZoneKey indicates a zone-key text form without a separator.
var ErrInvalidZoneKey = errors.New("document: invalid zone key")

// ZoneKey identifies a named child slot and the component that owns it.
// The zero value is invalid.
type ZoneKey struct {
	// OwnerID is the id of the component the zone belongs to.
	OwnerID string

	// Name is the slot name local to the owner ("body", "columns", ...).
	Name string
}

// String returns the canonical text form "ownerId:zoneName".
func (k ZoneKey) String() string {
	return k.OwnerID + zoneKeySeparator + k.Name
}

// IsZero returns true for the zero ZoneKey.
func (k ZoneKey) IsZero() bool {
	return k.OwnerID == "" && k.Name == ""
}

// WithOwner returns the same zone slot under a different owner.
func (k ZoneKey) WithOwner(ownerID string) ZoneKey {
	return ZoneKey{OwnerID: ownerID, Name: k.Name}
}

// MarshalText encodes the key as "ownerId:zoneName".
// Implementing encoding.TextMarshaler lets ZoneKey act as a JSON map
// key.
func (k ZoneKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes "ownerId:zoneName".
func (k *ZoneKey) UnmarshalText(text []byte) error {
	owner, name, ok := strings.Cut(string(text), zoneKeySeparator)
	if !ok || owner == "" || name == "" {
		return fmt.Errorf("%w: %q", ErrInvalidZoneKey, string(text))
	}
	k.OwnerID = owner
	k.Name = name
	return nil
}

// ParseZoneKey parses the canonical text form.
func ParseZoneKey(s string) (ZoneKey, error) {
	var k ZoneKey
	if err := k.UnmarshalText([]byte(s)); err != nil {
		return ZoneKey{}, err
	}
	return k, nil
}
