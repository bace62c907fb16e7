package handlers

import (
	"errors"
	"net/http"

	"decorly/models"
	"decorly/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes account and decorator endpoints.
type UserHandler struct {
	UserSvc user.UserService
	Logger  *zap.Logger
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(userSvc user.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{UserSvc: userSvc, Logger: logger}
}

// RegisterUser handles POST /api/users.
func (h *UserHandler) RegisterUser(c *gin.Context) {
	var input models.User
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	registered, created, err := h.UserSvc.RegisterUser(c.Request.Context(), input)
	if err != nil {
		h.Logger.Error("RegisterUser failed", zap.String("email", input.Email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register user", "message": err.Error()})
		return
	}
	if !created {
		c.JSON(http.StatusOK, gin.H{"message": "User already exists"})
		return
	}

	c.JSON(http.StatusCreated, registered)
}

// ListUsers handles GET /api/users.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.UserSvc.ListUsers(c.Request.Context())
	if err != nil {
		h.Logger.Error("ListUsers failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch users"})
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetUserRole handles GET /api/users/:email/role.
func (h *UserHandler) GetUserRole(c *gin.Context) {
	email := c.Param("email")

	role, err := h.UserSvc.GetRole(c.Request.Context(), email)
	if err != nil {
		h.Logger.Error("GetUserRole failed", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch role"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"role": role})
}

// SetUserRole handles PATCH /api/users/:id/role.
func (h *UserHandler) SetUserRole(c *gin.Context) {
	id := c.Param("id")

	var req struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	if err := h.UserSvc.SetRole(c.Request.Context(), id, req.Role); err != nil {
		h.Logger.Error("SetUserRole failed", zap.String("id", id), zap.String("role", req.Role), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update role"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Role updated"})
}

// ListDecorators handles GET /api/admin/decorators.
func (h *UserHandler) ListDecorators(c *gin.Context) {
	decorators, err := h.UserSvc.ListDecorators(c.Request.Context())
	if err != nil {
		h.Logger.Error("ListDecorators failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch decorators"})
		return
	}

	c.JSON(http.StatusOK, decorators)
}

// CreateDecorator handles POST /api/admin/decorators.
func (h *UserHandler) CreateDecorator(c *gin.Context) {
	var req struct {
		Name  string `json:"name" binding:"required"`
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	decorator, err := h.UserSvc.CreateDecorator(c.Request.Context(), req.Name, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
			return
		}
		h.Logger.Error("CreateDecorator failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create decorator", "message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, decorator)
}

// SetDecoratorStatus handles PATCH /api/admin/decorators/:id.
func (h *UserHandler) SetDecoratorStatus(c *gin.Context) {
	id := c.Param("id")

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	if err := h.UserSvc.SetDecoratorStatus(c.Request.Context(), id, req.Status); err != nil {
		h.Logger.Error("SetDecoratorStatus failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update decorator", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Decorator updated"})
}

// DeleteDecorator handles DELETE /api/admin/decorators/:id.
func (h *UserHandler) DeleteDecorator(c *gin.Context) {
	id := c.Param("id")

	if err := h.UserSvc.DeleteDecorator(c.Request.Context(), id); err != nil {
		h.Logger.Error("DeleteDecorator failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete decorator", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Decorator deleted"})
}
