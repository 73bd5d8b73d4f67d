package receipt

import "github.com/google/uuid"

// IDGenerator mints the opaque token handed back to the client on a
// successful submission. It is injected into the API so tests can swap in a
// deterministic generator.
type IDGenerator interface {
	// Next returns a token unique across the process lifetime.
	Next() string
}

// UUIDGenerator - production IDGenerator backed by random (version 4) UUIDs.
// The 122 bits of randomness make collisions effectively impossible, so no
// uniqueness check against the store is performed here; the store's
// insert-only Save still refuses a duplicate defensively.
type UUIDGenerator struct{}

func (UUIDGenerator) Next() string {
	return uuid.NewString()
}
