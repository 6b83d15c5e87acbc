// Package tokengen provides the tracking token source for new parcels.
package tokengen

import "github.com/google/uuid"

// UUIDTokenGenerator issues opaque tracking tokens backed by random UUIDs.
// Tokens are unique but carry no structure callers may rely on.
type UUIDTokenGenerator struct{}

// NewUUIDTokenGenerator creates a token generator.
func NewUUIDTokenGenerator() UUIDTokenGenerator {
	return UUIDTokenGenerator{}
}

// NewToken returns a fresh tracking token.
func (UUIDTokenGenerator) NewToken() string {
	return uuid.NewString()
}
