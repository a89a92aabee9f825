// internal/domain/product/attribute_service.go
package product

import (
	"errors"
	"fmt"

	"github.com/your-org/warehouse-backend/internal/config"
	"gorm.io/gorm"
)

// AttributeService handles brand/color/gender/size lookup management and
// storage-location management
type AttributeService struct {
	db     *gorm.DB
	config *config.Config
}

// NewAttributeService creates a new attribute service
func NewAttributeService(db *gorm.DB, cfg *config.Config) *AttributeService {
	return &AttributeService{
		db:     db,
		config: cfg,
	}
}

// AttributeCreateRequest represents lookup-value creation data
type AttributeCreateRequest struct {
	Name      string `json:"name" binding:"required"`
	HexCode   string `json:"hex_code"`   // colors only
	SortOrder int    `json:"sort_order"` // sizes only
}

// AttributeUpdateRequest represents lookup-value update data
type AttributeUpdateRequest struct {
	Name      *string `json:"name"`
	HexCode   *string `json:"hex_code"`
	SortOrder *int    `json:"sort_order"`
	IsActive  *bool   `json:"is_active"`
}

// StorageLocationRequest represents storage-location creation/update data
type StorageLocationRequest struct {
	Code        string `json:"code" binding:"required"`
	Zone        string `json:"zone"`
	Rack        string `json:"rack"`
	Shelf       string `json:"shelf"`
	Description string `json:"description"`
}

// AttributeWithProductCount pairs a lookup row with how many products use it
type AttributeWithProductCount struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	ProductCount int64  `json:"product_count"`
}

// BRANDS

func (s *AttributeService) GetBrands(includeInactive bool) ([]Brand, error) {
	var brands []Brand
	query := s.db.Model(&Brand{}).Order("name ASC")
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&brands).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve brands: %w", err)
	}
	return brands, nil
}

func (s *AttributeService) CreateBrand(req *AttributeCreateRequest) (*Brand, error) {
	var existing Brand
	if err := s.db.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		return nil, fmt.Errorf("brand '%s' already exists", req.Name)
	}
	brand := &Brand{Name: req.Name, IsActive: true}
	if err := s.db.Create(brand).Error; err != nil {
		return nil, fmt.Errorf("failed to create brand: %w", err)
	}
	return brand, nil
}

func (s *AttributeService) UpdateBrand(id uint, req *AttributeUpdateRequest) (*Brand, error) {
	var brand Brand
	if err := s.db.First(&brand, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("brand not found")
		}
		return nil, fmt.Errorf("failed to retrieve brand: %w", err)
	}
	if req.Name != nil {
		brand.Name = *req.Name
	}
	if req.IsActive != nil {
		brand.IsActive = *req.IsActive
	}
	if err := s.db.Save(&brand).Error; err != nil {
		return nil, fmt.Errorf("failed to update brand: %w", err)
	}
	return &brand, nil
}

func (s *AttributeService) DeleteBrand(id uint) error {
	return s.deleteUnusedLookup(&Brand{}, id, "brand", "brand_id")
}

// COLORS

func (s *AttributeService) GetColors(includeInactive bool) ([]Color, error) {
	var colors []Color
	query := s.db.Model(&Color{}).Order("name ASC")
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&colors).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve colors: %w", err)
	}
	return colors, nil
}

func (s *AttributeService) CreateColor(req *AttributeCreateRequest) (*Color, error) {
	var existing Color
	if err := s.db.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		return nil, fmt.Errorf("color '%s' already exists", req.Name)
	}
	color := &Color{Name: req.Name, HexCode: req.HexCode, IsActive: true}
	if err := s.db.Create(color).Error; err != nil {
		return nil, fmt.Errorf("failed to create color: %w", err)
	}
	return color, nil
}

func (s *AttributeService) UpdateColor(id uint, req *AttributeUpdateRequest) (*Color, error) {
	var color Color
	if err := s.db.First(&color, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("color not found")
		}
		return nil, fmt.Errorf("failed to retrieve color: %w", err)
	}
	if req.Name != nil {
		color.Name = *req.Name
	}
	if req.HexCode != nil {
		color.HexCode = *req.HexCode
	}
	if req.IsActive != nil {
		color.IsActive = *req.IsActive
	}
	if err := s.db.Save(&color).Error; err != nil {
		return nil, fmt.Errorf("failed to update color: %w", err)
	}
	return &color, nil
}

func (s *AttributeService) DeleteColor(id uint) error {
	return s.deleteUnusedLookup(&Color{}, id, "color", "color_id")
}

// GENDERS

func (s *AttributeService) GetGenders(includeInactive bool) ([]Gender, error) {
	var genders []Gender
	query := s.db.Model(&Gender{}).Order("name ASC")
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&genders).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve genders: %w", err)
	}
	return genders, nil
}

func (s *AttributeService) CreateGender(req *AttributeCreateRequest) (*Gender, error) {
	var existing Gender
	if err := s.db.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		return nil, fmt.Errorf("gender '%s' already exists", req.Name)
	}
	gender := &Gender{Name: req.Name, IsActive: true}
	if err := s.db.Create(gender).Error; err != nil {
		return nil, fmt.Errorf("failed to create gender: %w", err)
	}
	return gender, nil
}

func (s *AttributeService) UpdateGender(id uint, req *AttributeUpdateRequest) (*Gender, error) {
	var gender Gender
	if err := s.db.First(&gender, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("gender not found")
		}
		return nil, fmt.Errorf("failed to retrieve gender: %w", err)
	}
	if req.Name != nil {
		gender.Name = *req.Name
	}
	if req.IsActive != nil {
		gender.IsActive = *req.IsActive
	}
	if err := s.db.Save(&gender).Error; err != nil {
		return nil, fmt.Errorf("failed to update gender: %w", err)
	}
	return &gender, nil
}

func (s *AttributeService) DeleteGender(id uint) error {
	return s.deleteUnusedLookup(&Gender{}, id, "gender", "gender_id")
}

// SIZES

func (s *AttributeService) GetSizes(includeInactive bool) ([]Size, error) {
	var sizes []Size
	query := s.db.Model(&Size{}).Order("sort_order ASC, name ASC")
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&sizes).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve sizes: %w", err)
	}
	return sizes, nil
}

func (s *AttributeService) CreateSize(req *AttributeCreateRequest) (*Size, error) {
	var existing Size
	if err := s.db.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		return nil, fmt.Errorf("size '%s' already exists", req.Name)
	}
	size := &Size{Name: req.Name, SortOrder: req.SortOrder, IsActive: true}
	if err := s.db.Create(size).Error; err != nil {
		return nil, fmt.Errorf("failed to create size: %w", err)
	}
	return size, nil
}

func (s *AttributeService) UpdateSize(id uint, req *AttributeUpdateRequest) (*Size, error) {
	var size Size
	if err := s.db.First(&size, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("size not found")
		}
		return nil, fmt.Errorf("failed to retrieve size: %w", err)
	}
	if req.Name != nil {
		size.Name = *req.Name
	}
	if req.SortOrder != nil {
		size.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		size.IsActive = *req.IsActive
	}
	if err := s.db.Save(&size).Error; err != nil {
		return nil, fmt.Errorf("failed to update size: %w", err)
	}
	return &size, nil
}

func (s *AttributeService) DeleteSize(id uint) error {
	return s.deleteUnusedLookup(&Size{}, id, "size", "size_id")
}

// STORAGE LOCATIONS

func (s *AttributeService) GetStorageLocations(includeInactive bool) ([]StorageLocation, error) {
	var locations []StorageLocation
	query := s.db.Model(&StorageLocation{}).Order("code ASC")
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&locations).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve storage locations: %w", err)
	}
	return locations, nil
}

func (s *AttributeService) CreateStorageLocation(req *StorageLocationRequest) (*StorageLocation, error) {
	var existing StorageLocation
	if err := s.db.Where("code = ?", req.Code).First(&existing).Error; err == nil {
		return nil, fmt.Errorf("storage location with code '%s' already exists", req.Code)
	}
	location := &StorageLocation{
		Code:        req.Code,
		Zone:        req.Zone,
		Rack:        req.Rack,
		Shelf:       req.Shelf,
		Description: req.Description,
		IsActive:    true,
	}
	if err := s.db.Create(location).Error; err != nil {
		return nil, fmt.Errorf("failed to create storage location: %w", err)
	}
	return location, nil
}

func (s *AttributeService) UpdateStorageLocation(id uint, req *StorageLocationRequest) (*StorageLocation, error) {
	var location StorageLocation
	if err := s.db.First(&location, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("storage location not found")
		}
		return nil, fmt.Errorf("failed to retrieve storage location: %w", err)
	}
	location.Code = req.Code
	location.Zone = req.Zone
	location.Rack = req.Rack
	location.Shelf = req.Shelf
	location.Description = req.Description
	if err := s.db.Save(&location).Error; err != nil {
		return nil, fmt.Errorf("failed to update storage location: %w", err)
	}
	return &location, nil
}

func (s *AttributeService) DeleteStorageLocation(id uint) error {
	return s.deleteUnusedLookup(&StorageLocation{}, id, "storage location", "storage_location_id")
}

// deleteUnusedLookup soft-deletes a lookup row unless products still
// reference it
func (s *AttributeService) deleteUnusedLookup(model interface{}, id uint, label, column string) error {
	var inUse int64
	if err := s.db.Model(&Product{}).Where(fmt.Sprintf("%s = ?", column), id).Count(&inUse).Error; err != nil {
		return fmt.Errorf("failed to check %s usage: %w", label, err)
	}
	if inUse > 0 {
		return fmt.Errorf("cannot delete %s: %d products still use it", label, inUse)
	}

	result := s.db.Delete(model, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete %s: %w", label, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%s not found", label)
	}
	return nil
}
