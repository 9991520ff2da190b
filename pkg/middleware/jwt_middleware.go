package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"melodia/pkg/tokens"
	"melodia/pkg/utils"
)

// PrincipalDirectory answers whether an email belongs to a given principal
// table. Role guards use it to re-resolve identity on every request instead
// of trusting anything inside the token beyond the email claim.
type PrincipalDirectory interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

func JWTAuthMiddleware(maker *tokens.Maker) gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := maker.Verify(tokenString)

		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		// Pass the claim set to the next handler
		c.Set("email", claims.Email)
		c.Set("profile_id", claims.ProfileID)
		c.Next()
	}
}

// RequirePrincipal gates a route group on membership in one principal table
// (admins for admin-only routes, artists for artist-only ones).
func RequirePrincipal(directory PrincipalDirectory) gin.HandlerFunc {

	return func(c *gin.Context) {
		email := c.GetString("email")

		ok, err := directory.ExistsByEmail(c.Request.Context(), email)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, "Internal server error")
			c.Abort()
			return
		}

		if !ok {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
