// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"
	"log"

	"github.com/your-org/warehouse-backend/internal/domain/inventory"
	"github.com/your-org/warehouse-backend/internal/domain/product"
	"github.com/your-org/warehouse-backend/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Migration handles database migrations
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{
		db: db,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	log.Println("🔄 Running database auto-migrations...")

	// Models in dependency order
	models := []interface{}{
		// User domain
		&user.User{},

		// Product lookup tables
		&product.Brand{},
		&product.Color{},
		&product.Gender{},
		&product.Size{},
		&product.StorageLocation{},

		// Product domain
		&product.Product{},
		&product.ProductImage{},

		// Inventory domain - ledger tables
		&inventory.InventoryItem{},
		&inventory.StockMovement{},
	}

	for _, model := range models {
		log.Printf("Migrating model: %T", model)
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	log.Println("✅ Database auto-migrations completed successfully")
	return nil
}

// CreateIndexes creates additional indexes for better performance
func (m *Migration) CreateIndexes() error {
	log.Println("🔄 Creating additional database indexes...")

	indexes := []string{
		// User indexes
		"CREATE INDEX IF NOT EXISTS idx_users_email_active ON users(email, is_active)",
		"CREATE INDEX IF NOT EXISTS idx_users_created_at ON users(created_at DESC)",

		// Product indexes
		"CREATE INDEX IF NOT EXISTS idx_products_barcode ON products(barcode)",
		"CREATE INDEX IF NOT EXISTS idx_products_brand_active ON products(brand_id, is_active)",
		"CREATE INDEX IF NOT EXISTS idx_products_storage_location ON products(storage_location_id)",
		"CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at DESC)",

		// Product image indexes
		"CREATE INDEX IF NOT EXISTS idx_product_images_product_primary ON product_images(product_id, is_primary)",

		// Inventory indexes
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_inventory_items_product ON inventory_items(product_id)",
		"CREATE INDEX IF NOT EXISTS idx_inventory_items_quantity ON inventory_items(quantity)",

		// Movement ledger indexes - history queries filter on these columns
		// and always page newest-first
		"CREATE INDEX IF NOT EXISTS idx_stock_movements_product_created ON stock_movements(product_id, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_stock_movements_type_created ON stock_movements(movement_type, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_stock_movements_created_by ON stock_movements(created_by)",
		"CREATE INDEX IF NOT EXISTS idx_stock_movements_reference ON stock_movements(reference_number)",
		"CREATE INDEX IF NOT EXISTS idx_stock_movements_created_at ON stock_movements(created_at DESC, id DESC)",
	}

	successCount := 0
	failCount := 0

	for _, indexSQL := range indexes {
		if err := m.db.Exec(indexSQL).Error; err != nil {
			log.Printf("⚠️ Failed to create index: %v", err)
			failCount++
		} else {
			successCount++
		}
	}

	log.Printf("✅ Created %d indexes successfully (%d failed)", successCount, failCount)
	return nil
}

// SeedInitialData inserts initial data into the database
func (m *Migration) SeedInitialData() error {
	log.Println("🌱 Seeding initial data...")

	if err := m.seedAttributes(); err != nil {
		return fmt.Errorf("failed to seed attributes: %w", err)
	}

	if err := m.seedAdminUser(); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	if err := m.seedWarehouseUser(); err != nil {
		return fmt.Errorf("failed to seed warehouse user: %w", err)
	}

	log.Println("✅ Initial data seeded successfully")
	return nil
}

// seedAttributes creates the default product lookup rows
func (m *Migration) seedAttributes() error {
	log.Println("🏷️ Seeding product attributes...")

	genders := []product.Gender{
		{Name: "Men"},
		{Name: "Women"},
		{Name: "Unisex"},
		{Name: "Kids"},
	}
	for _, g := range genders {
		var existing product.Gender
		if m.db.Where("name = ?", g.Name).First(&existing).Error != nil {
			if err := m.db.Create(&g).Error; err != nil {
				return err
			}
			log.Printf("✅ Created gender: %s", g.Name)
		}
	}

	sizes := []product.Size{
		{Name: "XS", SortOrder: 1},
		{Name: "S", SortOrder: 2},
		{Name: "M", SortOrder: 3},
		{Name: "L", SortOrder: 4},
		{Name: "XL", SortOrder: 5},
		{Name: "XXL", SortOrder: 6},
	}
	for _, s := range sizes {
		var existing product.Size
		if m.db.Where("name = ?", s.Name).First(&existing).Error != nil {
			if err := m.db.Create(&s).Error; err != nil {
				return err
			}
			log.Printf("✅ Created size: %s", s.Name)
		}
	}

	locations := []product.StorageLocation{
		{Code: "A-01-01", Zone: "A", Rack: "01", Shelf: "01", Description: "Inbound staging"},
		{Code: "A-01-02", Zone: "A", Rack: "01", Shelf: "02", Description: "Fast movers"},
		{Code: "B-01-01", Zone: "B", Rack: "01", Shelf: "01", Description: "Bulk storage"},
		{Code: "R-01-01", Zone: "R", Rack: "01", Shelf: "01", Description: "Returns inspection"},
	}
	for _, loc := range locations {
		var existing product.StorageLocation
		if m.db.Where("code = ?", loc.Code).First(&existing).Error != nil {
			if err := m.db.Create(&loc).Error; err != nil {
				return err
			}
			log.Printf("✅ Created storage location: %s", loc.Code)
		}
	}

	return nil
}

func (m *Migration) seedAdminUser() error {
	log.Println("👤 Seeding admin user...")

	var existing user.User
	result := m.db.Where("email = ?", "admin@example.com").First(&existing)
	if result.Error != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte("admin123"), 10)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		adminUser := user.User{
			Email:     "admin@example.com",
			Password:  string(hashedPassword),
			FirstName: "Admin",
			LastName:  "User",
			IsActive:  true,
			IsAdmin:   true,
		}

		if err := m.db.Create(&adminUser).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}

		log.Println("✅ Created admin user: admin@example.com (password: admin123)")
	} else {
		log.Printf("⏭️ Admin user already exists with ID: %d", existing.ID)
	}

	return nil
}

// seedWarehouseUser creates a non-admin operator account for development
func (m *Migration) seedWarehouseUser() error {
	log.Println("👤 Seeding warehouse operator...")

	var existing user.User
	result := m.db.Where("email = ?", "operator@example.com").First(&existing)
	if result.Error != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte("operator123"), 10)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		operator := user.User{
			Email:     "operator@example.com",
			Password:  string(hashedPassword),
			FirstName: "Warehouse",
			LastName:  "Operator",
			IsActive:  true,
			IsAdmin:   false,
		}

		if err := m.db.Create(&operator).Error; err != nil {
			return err
		}

		log.Println("✅ Created operator user: operator@example.com (password: operator123)")
	} else {
		log.Println("⏭️ Operator user already exists")
	}

	return nil
}

// DropAllTables drops all tables (use with extreme caution)
func (m *Migration) DropAllTables() error {
	log.Println("⚠️ WARNING: Dropping all database tables...")

	// Reverse dependency order
	tables := []string{
		"stock_movements",
		"inventory_items",
		"product_images",
		"products",
		"storage_locations",
		"sizes",
		"genders",
		"colors",
		"brands",
		"users",
	}

	for _, table := range tables {
		if err := m.db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", table)).Error; err != nil {
			log.Printf("⚠️ Failed to drop table %s: %v", table, err)
		} else {
			log.Printf("🗑️ Dropped table: %s", table)
		}
	}

	log.Println("✅ All tables dropped successfully")
	return nil
}

// GetTableInfo returns information about database tables
func (m *Migration) GetTableInfo() error {
	var tables []string

	if err := m.db.Raw("SELECT tablename FROM pg_tables WHERE schemaname = 'public' ORDER BY tablename").Scan(&tables).Error; err != nil {
		return err
	}

	log.Println("📊 Database Tables Information:")
	log.Println("================================")

	totalRecords := int64(0)
	for _, table := range tables {
		var count int64
		m.db.Table(table).Count(&count)
		totalRecords += count

		status := "✅"
		if count == 0 {
			status = "📭"
		}

		log.Printf("%s %-25s | %d records", status, table, count)
	}

	log.Println("================================")
	log.Printf("📈 Total records across all tables: %d", totalRecords)
	log.Printf("🗂️ Total tables: %d", len(tables))

	return nil
}
