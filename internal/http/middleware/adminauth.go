// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements Bearer-token authentication for the admin route group.
// Tokens are opaque session identifiers minted at login; the middleware only
// extracts and checks headers, delegating validation to a callback so it
// stays decoupled from the session store.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// adminTokenKey is the Gin context key under which the validated session
// token is stored, so the logout handler can revoke it.
const adminTokenKey = "adminToken"

// TokenValidator checks whether token identifies a live admin session. It
// returns a non-nil error for unknown, expired, or revoked tokens.
type TokenValidator func(c *gin.Context, token string) error

// AdminAuth returns a Gin middleware that guards admin-only routes.
//
// Requests must carry "Authorization: Bearer <token>". Missing or malformed
// headers and failed validation both produce 401 with the standard error
// envelope; the body never distinguishes the two cases.
func AdminAuth(validate TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" || validate(c, token) != nil {
			c.Header("WWW-Authenticate", `Bearer realm="admin"`)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"request_id": c.Writer.Header().Get("X-Request-ID"),
				"code":       "unauthorized",
				"error":      "invalid or missing admin token",
			})
			return
		}
		c.Set(adminTokenKey, token)
		c.Next()
	}
}

// AdminToken returns the session token validated by AdminAuth, or "" when the
// request did not pass through it.
func AdminToken(c *gin.Context) string {
	if v, ok := c.Get(adminTokenKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// bearerToken extracts the credential from an Authorization header value.
// The scheme comparison is case-insensitive per RFC 7235.
func bearerToken(header string) string {
	const prefix = "bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
