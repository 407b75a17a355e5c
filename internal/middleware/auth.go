package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vetify/booking-api/internal/handler"
	"github.com/vetify/booking-api/internal/model"
	"github.com/vetify/booking-api/internal/service/auth"
)

const ContextUser = "current_user"

type AuthMiddleware struct {
	authService *auth.Service
}

func NewAuthMiddleware(authService *auth.Service) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// Authenticate verifies the bearer token and stores the resolved user in
// the request context. Deactivated accounts are rejected here so a stale
// token stops working as soon as the account is disabled.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("missing authorization header"))
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("invalid authorization format"))
			c.Abort()
			return
		}

		user, err := m.authService.UserFromToken(c.Request.Context(), parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("invalid token"))
			c.Abort()
			return
		}
		if !user.IsActive {
			c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("account disabled"))
			c.Abort()
			return
		}

		c.Set(ContextUser, user)
		c.Next()
	}
}

// RequireSuperuser gates the admin surface. Must run after Authenticate.
func (m *AuthMiddleware) RequireSuperuser() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !user.IsSuperuser {
			c.JSON(http.StatusForbidden, handler.NewErrorResponse("superuser access required"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by Authenticate, or nil.
func CurrentUser(c *gin.Context) *model.User {
	v, ok := c.Get(ContextUser)
	if !ok {
		return nil
	}
	user, ok := v.(*model.User)
	if !ok {
		return nil
	}
	return user
}
