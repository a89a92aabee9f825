// internal/interfaces/http/handlers/upload.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/warehouse-backend/internal/config"
	"github.com/your-org/warehouse-backend/internal/domain/upload"
	"github.com/your-org/warehouse-backend/internal/interfaces/http/middleware"
	"gorm.io/gorm"
)

// UploadHandler handles image upload endpoints
type UploadHandler struct {
	uploadService *upload.Service
	config        *config.Config
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(db *gorm.DB, cfg *config.Config) *UploadHandler {
	return &UploadHandler{
		uploadService: upload.NewService(db, cfg),
		config:        cfg,
	}
}

// UploadImage handles a single image upload
func (h *UploadHandler) UploadImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "No file provided",
		})
		return
	}
	defer file.Close()

	userID, _ := middleware.GetUserIDFromContext(c)

	uploaded, err := h.uploadService.UploadImage(&upload.ImageUploadRequest{
		File:       file,
		Header:     header,
		Category:   c.PostForm("category"),
		AltText:    c.PostForm("alt_text"),
		UploadedBy: userID,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Image uploaded successfully",
		"data":    uploaded,
	})
}

// GetImages returns a paginated list of uploaded images
func (h *UploadHandler) GetImages(c *gin.Context) {
	var req upload.ImageListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query parameters",
			"details": err.Error(),
		})
		return
	}

	response, err := h.uploadService.GetImages(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve images",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Images retrieved successfully",
		"data":    response,
	})
}

// GetImage returns a single uploaded image record
func (h *UploadHandler) GetImage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid image ID",
		})
		return
	}

	image, err := h.uploadService.GetImage(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Image retrieved successfully",
		"data":    image,
	})
}

// DeleteImage removes an uploaded image
func (h *UploadHandler) DeleteImage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid image ID",
		})
		return
	}

	if err := h.uploadService.DeleteImage(uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Image deleted successfully",
	})
}
