package ports

// TokenGenerator produces opaque tracking tokens on demand.
// The only guarantee is uniqueness; callers must not assume any format.
type TokenGenerator interface {
	NewToken() string
}
