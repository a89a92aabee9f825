// internal/domain/product/entity.go
package product

import (
	"time"

	"gorm.io/gorm"
)

// Product represents a catalog product
type Product struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	Barcode           string         `gorm:"uniqueIndex;not null;size:100" json:"barcode"`
	Name              string         `gorm:"not null;size:255" json:"name"`
	Description       string         `gorm:"type:text" json:"description"`
	Price             int64          `gorm:"not null" json:"price"` // Price in cents
	BrandID           *uint          `gorm:"index" json:"brand_id"`
	ColorID           *uint          `gorm:"index" json:"color_id"`
	GenderID          *uint          `gorm:"index" json:"gender_id"`
	SizeID            *uint          `gorm:"index" json:"size_id"`
	StorageLocationID *uint          `gorm:"index" json:"storage_location_id"`
	IsActive          bool           `gorm:"default:true" json:"is_active"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Brand           *Brand           `gorm:"foreignKey:BrandID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"brand,omitempty"`
	Color           *Color           `gorm:"foreignKey:ColorID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"color,omitempty"`
	Gender          *Gender          `gorm:"foreignKey:GenderID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"gender,omitempty"`
	Size            *Size            `gorm:"foreignKey:SizeID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"size,omitempty"`
	StorageLocation *StorageLocation `gorm:"foreignKey:StorageLocationID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"storage_location,omitempty"`
	Images          []ProductImage   `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"images,omitempty"`
}

// Brand represents a product brand
type Brand struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"uniqueIndex;not null;size:100" json:"name"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Color represents a product color
type Color struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"uniqueIndex;not null;size:50" json:"name"`
	HexCode   string         `gorm:"size:7" json:"hex_code"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Gender represents the target gender for a product
type Gender struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"uniqueIndex;not null;size:30" json:"name"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Size represents a product size
type Size struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"uniqueIndex;not null;size:20" json:"name"`
	SortOrder int            `gorm:"default:0" json:"sort_order"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// StorageLocation maps a physical spot in the warehouse (zone/rack/shelf)
type StorageLocation struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Code        string         `gorm:"uniqueIndex;not null;size:30" json:"code"`
	Zone        string         `gorm:"size:30" json:"zone"`
	Rack        string         `gorm:"size:30" json:"rack"`
	Shelf       string         `gorm:"size:30" json:"shelf"`
	Description string         `gorm:"size:255" json:"description"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// ProductImage represents a stored product image
type ProductImage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uint      `gorm:"not null;index" json:"product_id"`
	URL       string    `gorm:"not null;size:500" json:"url"`
	AltText   string    `gorm:"size:255" json:"alt_text"`
	IsPrimary bool      `gorm:"default:false" json:"is_primary"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides
func (Product) TableName() string         { return "products" }
func (Brand) TableName() string           { return "brands" }
func (Color) TableName() string           { return "colors" }
func (Gender) TableName() string          { return "genders" }
func (Size) TableName() string            { return "sizes" }
func (StorageLocation) TableName() string { return "storage_locations" }
func (ProductImage) TableName() string    { return "product_images" }

// GetFormattedPrice returns the price in major currency units
func (p *Product) GetFormattedPrice() float64 {
	return float64(p.Price) / 100
}
