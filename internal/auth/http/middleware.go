// Package http provides HTTP middleware and utilities for authentication.
package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authService "github.com/allisson/panvault/internal/auth/service"
)

// AuthenticationMiddleware resolves the merchant bearer token into an authorization flag.
//
// The middleware never aborts the request. Handlers pass IsAuthorized to the vault use
// case, which refuses unauthenticated calls and records the refusal in the audit log.
//
// Authorization header format: "Bearer <token>" (case-insensitive "bearer")
func AuthenticationMiddleware(credentialService authService.CredentialService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authorized := false

		plainToken, ok := bearerToken(c.GetHeader("Authorization"))
		switch {
		case !ok:
			logger.Debug("authentication failed: missing or malformed authorization header")
		default:
			if err := credentialService.Authenticate(plainToken); err != nil {
				logger.Debug("authentication failed", slog.String("error", err.Error()))
			} else {
				authorized = true
			}
		}

		ctx := WithAuthorized(c.Request.Context(), authorized)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// bearerToken extracts the token from an Authorization header value.
func bearerToken(header string) (string, bool) {
	const bearerPrefix = "bearer "
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(bearerPrefix):])
	if token == "" {
		return "", false
	}
	return token, true
}
