package receipt

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGeneratorProducesUniqueUUIDs(t *testing.T) {
	gen := UUIDGenerator{}

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := gen.Next()

		parsed, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(4), parsed.Version())

		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
