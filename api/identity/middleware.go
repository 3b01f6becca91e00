package identity

import (
	"net/http"
	"strings"

	"github.com/beka-birhanu/maze-engine/service/i"
	"github.com/gin-gonic/gin"
)

// ContextClaims is the key under which validated token claims land in the
// Gin context.
const ContextClaims = "tokenClaims"

// Authorize returns a middleware that requires a valid Bearer token.
func Authorize(tokenizer i.Tokenizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Status(http.StatusUnauthorized)
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			c.Status(http.StatusUnauthorized)
			c.Abort()
			return
		}

		claims, err := tokenizer.Decode(parts[1])
		if err != nil {
			c.Status(http.StatusUnauthorized)
			c.Abort()
			return
		}

		c.Set(ContextClaims, claims)
		c.Next()
	}
}
