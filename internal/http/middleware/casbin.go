package middleware

import (
	"net/http"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

// CasbinMiddleware defines the interface for Casbin authorization middleware
type CasbinMiddleware interface {
	Enforce() gin.HandlerFunc
}

// RoleCasbinMW gates routes on (role, path, method) policies. Roles are
// stored as "role_<role>" subjects so policy rows cannot collide with
// usernames.
type RoleCasbinMW struct {
	enforcer *casbin.Enforcer
}

// NewRoleCasbinMW creates a new RoleCasbinMW instance
func NewRoleCasbinMW(enforcer *casbin.Enforcer) *RoleCasbinMW {
	return &RoleCasbinMW{enforcer: enforcer}
}

// Enforce returns the Casbin authorization middleware
func (mw *RoleCasbinMW) Enforce() gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		userRole, exists := c.Get("user_role")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			c.Abort()
			return
		}

		// The parameterized route path keyMatch2-es against policy patterns.
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		method := c.Request.Method
		casbinRole := "role_" + userRole.(string)

		allowed, err := mw.enforcer.Enforce(casbinRole, path, method)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Authorization check failed"})
			c.Abort()
			return
		}
		if !allowed {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			c.Abort()
			return
		}

		c.Next()
	})
}
