// internal/interfaces/http/handlers/attribute.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/warehouse-backend/internal/config"
	"github.com/your-org/warehouse-backend/internal/domain/product"
	"gorm.io/gorm"
)

// AttributeHandler handles product lookup table endpoints
type AttributeHandler struct {
	attributeService *product.AttributeService
	config           *config.Config
}

// NewAttributeHandler creates a new attribute handler
func NewAttributeHandler(db *gorm.DB, cfg *config.Config) *AttributeHandler {
	return &AttributeHandler{
		attributeService: product.NewAttributeService(db, cfg),
		config:           cfg,
	}
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ID",
		})
		return 0, false
	}
	return uint(id), true
}

// Brands

func (h *AttributeHandler) GetBrands(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"
	brands, err := h.attributeService.GetBrands(includeInactive)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve brands"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Brands retrieved successfully", "data": brands})
}

func (h *AttributeHandler) CreateBrand(c *gin.Context) {
	var req product.AttributeCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}
	brand, err := h.attributeService.CreateBrand(&req)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Brand created successfully", "data": brand})
}

func (h *AttributeHandler) UpdateBrand(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req product.AttributeUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}
	brand, err := h.attributeService.UpdateBrand(id, &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Brand updated successfully", "data": brand})
}

func (h *AttributeHandler) DeleteBrand(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.attributeService.DeleteBrand(id); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Brand deleted successfully"})
}

// Colors

func (h *AttributeHandler) GetColors(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"
	colors, err := h.attributeService.GetColors(includeInactive)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve colors"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Colors retrieved successfully", "data": colors})
}

func (h *AttributeHandler) CreateColor(c *gin.Context) {
	var req product.AttributeCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}
	color, err := h.attributeService.CreateColor(&req)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Color created successfully", "data": color})
}

func (h *AttributeHandler) UpdateColor(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req product.AttributeUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}
	color, err := h.attributeService.UpdateColor(id, &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Color updated successfully", "data": color})
}

func (h *AttributeHandler) DeleteColor(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.attributeService.DeleteColor(id); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Color deleted successfully"})
}

// Genders

func (h *AttributeHandler) GetGenders(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"
	genders, err := h.attributeService.GetGenders(includeInactive)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve genders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Genders retrieved successfully", "data": genders})
}

func (h *AttributeHandler) CreateGender(c *gin.Context) {
	var req product.AttributeCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}
	gender, err := h.attributeService.CreateGender(&req)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Gender created successfully", "data": gender})
}

func (h *AttributeHandler) UpdateGender(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req product.AttributeUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}
	gender, err := h.attributeService.UpdateGender(id, &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Gender updated successfully", "data": gender})
}

func (h *AttributeHandler) DeleteGender(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.attributeService.DeleteGender(id); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Gender deleted successfully"})
}

// Sizes

func (h *AttributeHandler) GetSizes(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"
	sizes, err := h.attributeService.GetSizes(includeInactive)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve sizes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sizes retrieved successfully", "data": sizes})
}

func (h *AttributeHandler) CreateSize(c *gin.Context) {
	var req product.AttributeCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}
	size, err := h.attributeService.CreateSize(&req)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Size created successfully", "data": size})
}

func (h *AttributeHandler) UpdateSize(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req product.AttributeUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}
	size, err := h.attributeService.UpdateSize(id, &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Size updated successfully", "data": size})
}

func (h *AttributeHandler) DeleteSize(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.attributeService.DeleteSize(id); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Size deleted successfully"})
}

// Storage locations

func (h *AttributeHandler) GetStorageLocations(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"
	locations, err := h.attributeService.GetStorageLocations(includeInactive)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve storage locations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Storage locations retrieved successfully", "data": locations})
}

func (h *AttributeHandler) CreateStorageLocation(c *gin.Context) {
	var req product.StorageLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}
	location, err := h.attributeService.CreateStorageLocation(&req)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Storage location created successfully", "data": location})
}

func (h *AttributeHandler) UpdateStorageLocation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req product.StorageLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}
	location, err := h.attributeService.UpdateStorageLocation(id, &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Storage location updated successfully", "data": location})
}

func (h *AttributeHandler) DeleteStorageLocation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.attributeService.DeleteStorageLocation(id); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Storage location deleted successfully"})
}
