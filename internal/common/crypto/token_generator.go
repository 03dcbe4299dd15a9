package crypto

import "github.com/google/uuid"

// TokenGenerator produces opaque identifiers used for user IDs and bearer
// tokens. The v4 UUID implementation carries 122 bits of randomness, which
// keeps collision probability negligible without sequential structure.
type TokenGenerator interface {
	NewToken() (string, error)
}

type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewToken() (string, error) {
	return uuid.NewString(), nil
}
