package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/jdbernardo16/project-manager/internal/middleware"
	"github.com/jdbernardo16/project-manager/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	result, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	Success(c, gin.H{
		"token":     result.Token,
		"expire_at": result.ExpireAt,
		"user":      result.User,
	})
}

// GET /auth/me
func (h *AuthHandler) GetMe(c *gin.Context) {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		Unauthorized(c, 40103, "not signed in")
		return
	}
	Success(c, user.Brief())
}

// PUT /auth/password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req struct {
		CurrentPassword string `json:"current_password" binding:"required"`
		NewPassword     string `json:"new_password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	userID := middleware.GetCurrentUserID(c)
	if err := h.authService.ChangePassword(userID, req.CurrentPassword, req.NewPassword); err != nil {
		respondServiceError(c, err)
		return
	}
	Success(c, nil)
}
