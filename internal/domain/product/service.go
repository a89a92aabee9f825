// internal/domain/product/service.go
package product

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/your-org/warehouse-backend/internal/config"
	"github.com/your-org/warehouse-backend/internal/domain/inventory"
	"gorm.io/gorm"
)

// Service handles product catalog business logic
type Service struct {
	db        *gorm.DB
	config    *config.Config
	inventory *inventory.Service
}

// NewService creates a new product service
func NewService(db *gorm.DB, cfg *config.Config, inventoryService *inventory.Service) *Service {
	return &Service{
		db:        db,
		config:    cfg,
		inventory: inventoryService,
	}
}

// ProductListRequest represents product list query parameters
type ProductListRequest struct {
	Page              int    `form:"page,default=1"`
	Limit             int    `form:"limit,default=20"`
	BrandID           uint   `form:"brand_id"`
	ColorID           uint   `form:"color_id"`
	GenderID          uint   `form:"gender_id"`
	SizeID            uint   `form:"size_id"`
	StorageLocationID uint   `form:"storage_location_id"`
	Search            string `form:"search"`
	SortBy            string `form:"sort_by,default=created_at"`
	SortOrder         string `form:"sort_order,default=desc"`
	IsActive          *bool  `form:"is_active"`
}

// ProductCreateRequest represents product creation data
type ProductCreateRequest struct {
	Barcode           string `json:"barcode" binding:"required"`
	Name              string `json:"name" binding:"required"`
	Description       string `json:"description"`
	Price             int64  `json:"price" binding:"required"`
	BrandID           *uint  `json:"brand_id"`
	ColorID           *uint  `json:"color_id"`
	GenderID          *uint  `json:"gender_id"`
	SizeID            *uint  `json:"size_id"`
	StorageLocationID *uint  `json:"storage_location_id"`
	InitialQuantity   int    `json:"initial_quantity"`
	IsActive          bool   `json:"is_active"`
}

// ProductUpdateRequest represents product update data
type ProductUpdateRequest struct {
	Name              *string `json:"name"`
	Description       *string `json:"description"`
	Price             *int64  `json:"price"`
	BrandID           *uint   `json:"brand_id"`
	ColorID           *uint   `json:"color_id"`
	GenderID          *uint   `json:"gender_id"`
	SizeID            *uint   `json:"size_id"`
	StorageLocationID *uint   `json:"storage_location_id"`
	IsActive          *bool   `json:"is_active"`
}

// ProductResponse represents a product list response with pagination
type ProductResponse struct {
	Products   []Product  `json:"products"`
	Pagination Pagination `json:"pagination"`
}

// Pagination represents pagination information
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// GetProducts retrieves products with filtering and pagination
func (s *Service) GetProducts(req *ProductListRequest) (*ProductResponse, error) {
	var products []Product
	var total int64

	query := s.db.Model(&Product{}).
		Preload("Brand").
		Preload("Color").
		Preload("Gender").
		Preload("Size").
		Preload("StorageLocation").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_primary DESC, id ASC")
		})

	if req.BrandID > 0 {
		query = query.Where("brand_id = ?", req.BrandID)
	}
	if req.ColorID > 0 {
		query = query.Where("color_id = ?", req.ColorID)
	}
	if req.GenderID > 0 {
		query = query.Where("gender_id = ?", req.GenderID)
	}
	if req.SizeID > 0 {
		query = query.Where("size_id = ?", req.SizeID)
	}
	if req.StorageLocationID > 0 {
		query = query.Where("storage_location_id = ?", req.StorageLocationID)
	}
	if req.Search != "" {
		search := "%" + strings.ToLower(req.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR barcode LIKE ?", search, search, "%"+req.Search+"%")
	}
	if req.IsActive != nil {
		query = query.Where("is_active = ?", *req.IsActive)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	query = query.Order(s.buildOrderClause(req.SortBy, req.SortOrder))

	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 || req.Limit > 100 {
		req.Limit = 20
	}
	offset := (req.Page - 1) * req.Limit
	if err := query.Offset(offset).Limit(req.Limit).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}

	totalPages := int((total + int64(req.Limit) - 1) / int64(req.Limit))

	return &ProductResponse{
		Products: products,
		Pagination: Pagination{
			Page:       req.Page,
			Limit:      req.Limit,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    req.Page < totalPages,
			HasPrev:    req.Page > 1,
		},
	}, nil
}

// GetProduct retrieves a single product by ID
func (s *Service) GetProduct(id uint) (*Product, error) {
	var p Product
	err := s.db.
		Preload("Brand").
		Preload("Color").
		Preload("Gender").
		Preload("Size").
		Preload("StorageLocation").
		Preload("Images").
		First(&p, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product not found")
		}
		return nil, fmt.Errorf("failed to retrieve product: %w", err)
	}
	return &p, nil
}

// GetProductByBarcode retrieves a product by its barcode. Used by the
// return-scan flow.
func (s *Service) GetProductByBarcode(barcode string) (*Product, error) {
	var p Product
	err := s.db.Where("barcode = ?", barcode).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product not found")
		}
		return nil, fmt.Errorf("failed to retrieve product: %w", err)
	}
	return &p, nil
}

// CreateProduct creates a product and its inventory record. The initial
// quantity lands in the ledger as an initial_stock movement.
func (s *Service) CreateProduct(ctx context.Context, req *ProductCreateRequest, createdBy uint) (*Product, error) {
	var existing Product
	if err := s.db.Where("barcode = ?", req.Barcode).First(&existing).Error; err == nil {
		return nil, fmt.Errorf("product with barcode '%s' already exists", req.Barcode)
	}
	if req.InitialQuantity < 0 {
		return nil, fmt.Errorf("initial quantity cannot be negative")
	}

	p := &Product{
		Barcode:           req.Barcode,
		Name:              req.Name,
		Description:       req.Description,
		Price:             req.Price,
		BrandID:           req.BrandID,
		ColorID:           req.ColorID,
		GenderID:          req.GenderID,
		SizeID:            req.SizeID,
		StorageLocationID: req.StorageLocationID,
		IsActive:          req.IsActive,
	}

	if err := s.db.Create(p).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	if _, err := s.inventory.CreateItem(ctx, p.ID, req.InitialQuantity, createdBy); err != nil {
		return nil, fmt.Errorf("failed to create inventory record: %w", err)
	}

	return s.GetProduct(p.ID)
}

// UpdateProduct updates product fields. Quantity is deliberately absent:
// stock changes go through the movement ledger.
func (s *Service) UpdateProduct(id uint, req *ProductUpdateRequest) (*Product, error) {
	p, err := s.GetProduct(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.BrandID != nil {
		updates["brand_id"] = *req.BrandID
	}
	if req.ColorID != nil {
		updates["color_id"] = *req.ColorID
	}
	if req.GenderID != nil {
		updates["gender_id"] = *req.GenderID
	}
	if req.SizeID != nil {
		updates["size_id"] = *req.SizeID
	}
	if req.StorageLocationID != nil {
		updates["storage_location_id"] = *req.StorageLocationID
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) > 0 {
		if err := s.db.Model(p).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update product: %w", err)
		}
	}

	return s.GetProduct(id)
}

// DeleteProduct soft-deletes a product. Its movement history is retained so
// past stock changes stay auditable.
func (s *Service) DeleteProduct(id uint) error {
	result := s.db.Delete(&Product{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("product not found")
	}
	return nil
}

// AttachImage records an uploaded image against a product
func (s *Service) AttachImage(productID uint, url, altText string, isPrimary bool) (*ProductImage, error) {
	if _, err := s.GetProduct(productID); err != nil {
		return nil, err
	}

	if isPrimary {
		s.db.Model(&ProductImage{}).Where("product_id = ? AND is_primary = ?", productID, true).Update("is_primary", false)
	}

	img := &ProductImage{
		ProductID: productID,
		URL:       url,
		AltText:   altText,
		IsPrimary: isPrimary,
	}
	if err := s.db.Create(img).Error; err != nil {
		return nil, fmt.Errorf("failed to attach image: %w", err)
	}
	return img, nil
}

// buildOrderClause whitelists sortable columns
func (s *Service) buildOrderClause(sortBy, sortOrder string) string {
	allowed := map[string]bool{
		"created_at": true,
		"updated_at": true,
		"name":       true,
		"price":      true,
		"barcode":    true,
	}
	if !allowed[sortBy] {
		sortBy = "created_at"
	}
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}
	return fmt.Sprintf("%s %s", sortBy, sortOrder)
}
