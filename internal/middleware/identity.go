package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Context keys set by Identity.
const (
	IdentifierKey = "identifier"
	UserIDKey     = "userID"
)

// AnonymousUser marks submissions without a valid bearer token.
const AnonymousUser = "anonymous"

// Identity resolves who is calling: the subject of a valid bearer token, or
// the client IP as a fallback. Tokens are parsed for identity only; requests
// without one are still served.
func Identity(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identifier := c.ClientIP()
		userID := AnonymousUser

		if sub := subjectFromHeader(c.GetHeader("Authorization"), secret); sub != "" {
			identifier = sub
			userID = sub
		}

		c.Set(IdentifierKey, identifier)
		c.Set(UserIDKey, userID)
		c.Next()
	}
}

func subjectFromHeader(header, secret string) string {
	if secret == "" || !strings.HasPrefix(header, "Bearer ") {
		return ""
	}

	token, err := jwt.Parse(strings.TrimPrefix(header, "Bearer "), func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return ""
	}

	sub, err := token.Claims.GetSubject()
	if err != nil {
		return ""
	}
	return sub
}
