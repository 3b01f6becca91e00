package i

import "time"

// Tokenizer issues and validates the bearer tokens protecting the API.
type Tokenizer interface {
	// Generate creates a signed token carrying the claims, valid for expTime.
	Generate(claims map[string]interface{}, expTime time.Duration) (string, error)

	// Decode parses and validates a token, returning its claims.
	Decode(token string) (map[string]interface{}, error)
}
