package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/openfiscal/notafiscal-api/internal/presentation/http/dto/response"
	"github.com/openfiscal/notafiscal-api/pkg/utils"
)

// ClaimsKey is the context key the validated token claims are stored under.
const ClaimsKey = "claims"

// RevocationChecker reports whether a token id has been blacklisted. It is
// injected so the middleware never depends on a concrete store.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// AuthMiddleware creates a JWT authentication middleware. A token must be
// well formed, unexpired and not revoked.
func AuthMiddleware(jwtManager *utils.JWTManager, revocations RevocationChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		revoked, err := revocations.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			response.InternalServerError(c, "Could not verify token")
			c.Abort()
			return
		}
		if revoked {
			response.Unauthorized(c, "You have been logged out")
			c.Abort()
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// GetClaims extracts the validated claims from the Gin context
func GetClaims(c *gin.Context) *utils.Claims {
	val, exists := c.Get(ClaimsKey)
	if !exists {
		return nil
	}
	claims, ok := val.(*utils.Claims)
	if !ok {
		return nil
	}
	return claims
}
