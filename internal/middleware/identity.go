package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lfgconnect/lfg-api/internal/constants"
	apierrors "github.com/lfgconnect/lfg-api/internal/errors"
	"github.com/lfgconnect/lfg-api/internal/models"
	"github.com/lfgconnect/lfg-api/internal/repository"
)

// Identity resolves the X-User-Id header into the current user and stores it
// in the request context. A missing, malformed or unknown id is not an
// error; the request simply proceeds anonymously. The header value is
// trusted as-is.
func Identity(userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(constants.HeaderUserID)
		if header != "" {
			if id, err := strconv.ParseUint(header, 10, 64); err == nil {
				if user, err := userRepo.FindByID(id); err == nil {
					c.Set(constants.ContextKeyUser, user)
				}
			}
		}
		c.Next()
	}
}

// RequireAuth aborts with 401 when no current user was resolved.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser retrieves the resolved user from the request context.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(constants.ContextKeyUser)
	if !exists {
		return nil, false
	}

	user, ok := value.(*models.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}
