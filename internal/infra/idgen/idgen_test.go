package idgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewID_FormatAndUniqueness(t *testing.T) {
	gen := New()

	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := gen.NewID()
		assert.Len(t, id, 16)
		assert.Regexp(t, "^[0-9a-f]{16}$", id)

		_, dup := seen[id]
		assert.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}
