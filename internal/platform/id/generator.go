package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// idBytes is the entropy per generated id, rendered as 32 hex characters.
const idBytes = 16

// Generator mints opaque identifiers, used for request ids on the HTTP
// surface.
type Generator interface {
	NewID() (string, error)
}

// RandomGenerator draws ids from crypto/rand.
type RandomGenerator struct{}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

func (g *RandomGenerator) NewID() (string, error) {
	buf := make([]byte, idBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
