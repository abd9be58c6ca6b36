package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/6ogunt48/class-manager/domain"
	"github.com/6ogunt48/class-manager/internal/services"
)

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc domain.AuthService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService) *AuthHandlers {
	return &AuthHandlers{authSvc: authSvc}
}

// RegisterRequest represents registration request
type RegisterRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Username  string `json:"username" binding:"required,min=8"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	Role      string `json:"role" binding:"required,oneof=student teacher"`
}

// LoginRequest represents login request
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ChangePasswordRequest represents a password change request
type ChangePasswordRequest struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

func passwordPolicyMessages(violations []services.PasswordViolation) []string {
	msgs := make([]string, 0, len(violations))
	for _, v := range violations {
		msgs = append(msgs, v.Message())
	}
	return msgs
}

// Register handles user registration
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if violations := services.ValidatePassword(req.Password); len(violations) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "password does not meet the requirements",
			"details": passwordPolicyMessages(violations),
		})
		return
	}

	_, err := h.authSvc.Register(c.Request.Context(), req.FirstName, req.LastName, req.Username, req.Email, req.Password, domain.Role(req.Role))
	if err != nil {
		switch err {
		case domain.ErrEmailTaken:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
		case domain.ErrUsernameTaken:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username already taken"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Registration successful"})
}

// Login handles user login and sets the session cookie
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if err == domain.ErrInvalidCredentials {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.SetCookie("access_token", result.AccessToken, int(result.ExpiresIn), "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user": gin.H{
			"id":       result.User.ID,
			"username": result.User.Username,
			"role":     result.User.Role,
		},
	})
}

// ChangePassword handles a password change authenticated by the current
// credentials in the request body
func (h *AuthHandlers) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if violations := services.ValidatePassword(req.NewPassword); len(violations) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "password does not meet the requirements",
			"details": passwordPolicyMessages(violations),
		})
		return
	}

	if err := h.authSvc.ChangePassword(c.Request.Context(), req.Username, req.Password, req.NewPassword); err != nil {
		if err == domain.ErrInvalidCredentials {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}
