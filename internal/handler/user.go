package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/jdbernardo16/project-manager/internal/model"
	"github.com/jdbernardo16/project-manager/internal/service"
)

type UserHandler struct {
	authService *service.AuthService
}

func NewUserHandler(authService *service.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

// GET /admin/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.authService.ListUsers()
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	list := make([]model.UserBrief, 0, len(users))
	for i := range users {
		list = append(list, users[i].Brief())
	}
	Success(c, list)
}

// PUT /admin/users/:id/role
func (h *UserHandler) UpdateUserRole(c *gin.Context) {
	var req struct {
		Role string `json:"role" binding:"required,oneof=admin project_manager resource"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	id := parseID(c.Param("id"))
	if err := h.authService.UpdateUserRole(id, req.Role); err != nil {
		respondServiceError(c, err)
		return
	}
	Success(c, nil)
}
