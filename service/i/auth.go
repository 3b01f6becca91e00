package i

// Authenticator verifies operator credentials and issues API tokens.
type Authenticator interface {
	// SignIn exchanges the operator key for a bearer token.
	SignIn(key string) (string, error)

	// HashKey vets a candidate operator key and returns its storable hash.
	HashKey(key string) (string, error)
}
