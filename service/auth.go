package service

import (
	"errors"
	"time"

	"github.com/beka-birhanu/maze-engine/service/i"
	"github.com/nbutton23/zxcvbn-go"
	"golang.org/x/crypto/bcrypt"
)

const (
	// minOperatorKeyScore is the lowest zxcvbn score accepted when hashing a
	// new operator key.
	minOperatorKeyScore = 3

	operatorTokenLifetime = 24 * time.Hour
)

var (
	// ErrInvalidOperatorKey reports a failed operator sign-in.
	ErrInvalidOperatorKey = errors.New("invalid operator key")

	// ErrWeakOperatorKey reports a candidate key below the strength floor.
	ErrWeakOperatorKey = errors.New("operator key is too weak")
)

// Auth exchanges the configured operator key for API tokens. The key itself
// is never stored; only its bcrypt hash reaches the configuration.
type Auth struct {
	operatorKeyHash []byte
	tokenizer       i.Tokenizer
}

// NewAuthService creates an Auth around the configured key hash.
func NewAuthService(operatorKeyHash string, tokenizer i.Tokenizer) (*Auth, error) {
	if operatorKeyHash == "" {
		return nil, errors.New("operator key hash is required")
	}
	if tokenizer == nil {
		return nil, errors.New("tokenizer is required")
	}

	return &Auth{
		operatorKeyHash: []byte(operatorKeyHash),
		tokenizer:       tokenizer,
	}, nil
}

// SignIn verifies the operator key and issues a bearer token.
func (a *Auth) SignIn(key string) (string, error) {
	if err := bcrypt.CompareHashAndPassword(a.operatorKeyHash, []byte(key)); err != nil {
		return "", ErrInvalidOperatorKey
	}

	return a.tokenizer.Generate(map[string]interface{}{
		"role": "operator",
	}, operatorTokenLifetime)
}

// HashKey scores a candidate operator key and returns its bcrypt hash when
// strong enough. Used by the key-rotation endpoint.
func (a *Auth) HashKey(key string) (string, error) {
	if zxcvbn.PasswordStrength(key, nil).Score < minOperatorKeyScore {
		return "", ErrWeakOperatorKey
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
