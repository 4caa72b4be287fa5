// Package http contains the gin handlers that translate the JSON API
// surface into service calls.
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/HaqueArif/shine-on-server/internal/service"
)

// AuthHandler serves the registration and login endpoints.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register handles user registration.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.Register: invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "name, email and password are required")
		return
	}

	_, err := h.authService.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		logCtx := logrus.WithField("email", req.Email)
		if errors.Is(err, service.ErrUserAlreadyExists) {
			logCtx.WithError(err).Warn("Handler.Register: email already registered")
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "User already exists",
			})
		} else {
			logCtx.WithError(err).Error("Handler.Register: internal error during registration")
			ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully",
	})
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles user login and token issuance.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.Login: invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "email and password are required")
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		logCtx := logrus.WithField("email", req.Email)
		if errors.Is(err, service.ErrAuthenticationFailed) {
			logCtx.WithError(err).Warn("Handler.Login: authentication failed")
			// Same message whether the email or the password was wrong.
			ErrorResponse(c, http.StatusUnauthorized, "Invalid email or password")
		} else {
			logCtx.WithError(err).Error("Handler.Login: internal error during login")
			ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   token,
	})
}
