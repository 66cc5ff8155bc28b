// Package idgen generates the opaque ids used for hotspots, events and
// rewards.
package idgen

import (
	"crypto/rand"
	"encoding/hex"

	"krvt/internal/domain/service"
)

// tokenBytes gives 16 hex characters per id, matching the historical id
// format ("a3f1..." style tokens).
const tokenBytes = 8

type generator struct{}

// New returns the default random-hex id generator.
func New() service.IDGenerator {
	return generator{}
}

// NewID draws a fresh random token. crypto/rand.Read cannot fail on any
// supported platform.
func (generator) NewID() string {
	buf := make([]byte, tokenBytes)
	_, _ = rand.Read(buf)

	return hex.EncodeToString(buf)
}
