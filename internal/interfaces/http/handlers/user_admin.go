// internal/interfaces/http/handlers/user_admin.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/warehouse-backend/internal/config"
	"github.com/your-org/warehouse-backend/internal/domain/user"
	"gorm.io/gorm"
)

// UserAdminHandler handles admin user management endpoints
type UserAdminHandler struct {
	userService *user.Service
	config      *config.Config
}

// NewUserAdminHandler creates a new user admin handler
func NewUserAdminHandler(db *gorm.DB, cfg *config.Config) *UserAdminHandler {
	return &UserAdminHandler{
		userService: user.NewService(db, cfg),
		config:      cfg,
	}
}

// ListUsers returns all users
func (h *UserAdminHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve users",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Users retrieved successfully",
		"data":    users,
	})
}

// SetAdmin grants or revokes admin privileges
func (h *UserAdminHandler) SetAdmin(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid user ID",
		})
		return
	}

	var req struct {
		IsAdmin *bool `json:"is_admin" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.userService.SetAdmin(uint(id), *req.IsAdmin); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User admin status updated successfully",
	})
}

// SetActive activates or deactivates a user account
func (h *UserAdminHandler) SetActive(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid user ID",
		})
		return
	}

	var req struct {
		IsActive *bool `json:"is_active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.userService.SetActive(uint(id), *req.IsActive); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User active status updated successfully",
	})
}
