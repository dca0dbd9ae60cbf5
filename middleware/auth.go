package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/developerssaddam/bistro-boss-server/auth"
)

// EmailKey is the context key under which ValidateToken stores the
// authenticated caller's email claim.
const EmailKey = "email"

// ValidateToken requires a valid bearer token. A missing credential is 401,
// an invalid or expired one is 403.
func ValidateToken(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
		return
	}

	tokenString := strings.TrimPrefix(header, "Bearer ")
	claims, err := auth.ParseToken(tokenString)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid or expired token"})
		return
	}

	c.Set(EmailKey, claims.Email)
	c.Next()
}

// CallerEmail returns the email claim set by ValidateToken.
func CallerEmail(c *gin.Context) (string, bool) {
	v, ok := c.Get(EmailKey)
	if !ok {
		return "", false
	}
	email, ok := v.(string)
	return email, ok
}
