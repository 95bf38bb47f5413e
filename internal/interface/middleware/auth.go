package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/omarFareed23/recipe-api/internal/domain/entity"
	"github.com/omarFareed23/recipe-api/pkg/response"
)

// TokenResolver maps an opaque bearer key to a user. *application.UserService
// satisfies it.
type TokenResolver interface {
	ResolveToken(ctx context.Context, key string) (*entity.User, error)
}

// Auth validates the Authorization bearer token against the token store.
// It sets userID and userEmail in the Gin context on success.
func Auth(resolver TokenResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := bearerToken(c.GetHeader("Authorization"))
		if key == "" {
			response.Error[any](c, http.StatusUnauthorized, "missing bearer token", nil)
			c.Abort()
			return
		}
		u, err := resolver.ResolveToken(c.Request.Context(), key)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "invalid token", nil)
			c.Abort()
			return
		}

		c.Set("userID", u.ID)       // required by handlers
		c.Set("userEmail", u.Email) // extra convenience
		c.Next()
	}
}

func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// CallerID returns the authenticated user's id set by Auth.
func CallerID(c *gin.Context) int64 {
	return c.GetInt64("userID")
}
