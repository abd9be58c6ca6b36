package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/6ogunt48/class-manager/domain"
)

// AccessTokenCookie is the cookie carrying the signed session token.
const AccessTokenCookie = "access_token"

// AuthMW resolves the session cookie to a user for middleware
type AuthMW struct {
	authSvc domain.AuthService
}

// NewAuthMW creates new auth middleware wrapper
func NewAuthMW(authSvc domain.AuthService) *AuthMW {
	return &AuthMW{authSvc: authSvc}
}

// WithAuth returns the cookie authentication middleware function
func (mw *AuthMW) WithAuth() gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		token, err := c.Cookie(AccessTokenCookie)
		if err != nil || token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			c.Abort()
			return
		}

		user, err := mw.authSvc.Authenticate(c.Request.Context(), token)
		if err != nil {
			switch err {
			case domain.ErrTokenExpired:
				c.JSON(http.StatusUnauthorized, gin.H{"error": "token expired"})
			case domain.ErrUserNotFound:
				c.JSON(http.StatusUnauthorized, gin.H{"error": "not registered"})
			default:
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			}
			c.Abort()
			return
		}

		// Downstream handlers and the casbin gate read the user from here.
		c.Set("current_user", user)
		c.Set("user_id", user.ID)
		c.Set("user_role", string(user.Role))
		c.Set("username", user.Username)

		c.Next()
	})
}

// CurrentUser extracts the authenticated user placed in the context by
// WithAuth. The bool is false when the middleware did not run.
func CurrentUser(c *gin.Context) (*domain.User, bool) {
	v, exists := c.Get("current_user")
	if !exists {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok
}
