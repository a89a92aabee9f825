// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/your-org/warehouse-backend/internal/config"
	"github.com/your-org/warehouse-backend/internal/interfaces/http/handlers"
	"github.com/your-org/warehouse-backend/internal/interfaces/http/middleware"
	"gorm.io/gorm"
)

// SetupRoutes wires every API route group
func SetupRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	setupAuthRoutes(rg, db, cfg)
	setupProductRoutes(rg, db, cfg)
	setupAttributeRoutes(rg, db, cfg)
	setupInventoryRoutes(rg, db, cfg)
	setupUploadRoutes(rg, db, cfg)
	setupAdminRoutes(rg, db, redisClient, cfg)
}

// setupAuthRoutes sets up authentication related routes
func setupAuthRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(db, cfg)

	auth := rg.Group("/auth")
	{
		// Public auth endpoints
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.RefreshToken)

		// Protected auth endpoints
		protected := auth.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			protected.POST("/logout", authHandler.Logout)
			protected.GET("/profile", authHandler.GetProfile)
			protected.PUT("/profile", authHandler.UpdateProfile)
			protected.PUT("/password", authHandler.ChangePassword)
		}
	}
}

// setupProductRoutes sets up product catalog routes
func setupProductRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	productHandler := handlers.NewProductHandler(db, cfg)

	products := rg.Group("/products")
	products.Use(middleware.AuthMiddleware(cfg))
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/:id", productHandler.GetProduct)
		products.GET("/barcode/:barcode", productHandler.GetProductByBarcode)
	}
}

// setupAttributeRoutes sets up read-only lookup routes
func setupAttributeRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	attributeHandler := handlers.NewAttributeHandler(db, cfg)

	attributes := rg.Group("/attributes")
	attributes.Use(middleware.AuthMiddleware(cfg))
	{
		attributes.GET("/brands", attributeHandler.GetBrands)
		attributes.GET("/colors", attributeHandler.GetColors)
		attributes.GET("/genders", attributeHandler.GetGenders)
		attributes.GET("/sizes", attributeHandler.GetSizes)
		attributes.GET("/storage-locations", attributeHandler.GetStorageLocations)
	}
}

// setupInventoryRoutes sets up the stock movement routes
func setupInventoryRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	inventoryHandler := handlers.NewInventoryHandler(db, cfg)
	returnHandler := handlers.NewStockReturnHandler(db, cfg)

	inv := rg.Group("/inventory")
	inv.Use(middleware.AuthMiddleware(cfg))
	{
		inv.POST("/stock-in", inventoryHandler.StockIn)
		inv.POST("/stock-out", inventoryHandler.StockOut)
		inv.POST("/movements/validate", inventoryHandler.ValidateMovement)
		inv.GET("/movements", inventoryHandler.GetMovements)
		inv.GET("/items/:product_id", inventoryHandler.GetItem)

		// Return intake
		inv.POST("/returns/scan", returnHandler.Scan)
		inv.POST("/returns", returnHandler.Submit)
	}
}

// setupUploadRoutes sets up image upload routes
func setupUploadRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	uploadHandler := handlers.NewUploadHandler(db, cfg)

	uploads := rg.Group("/uploads")
	uploads.Use(middleware.AuthMiddleware(cfg))
	{
		uploads.POST("/images", uploadHandler.UploadImage)
		uploads.GET("/images", uploadHandler.GetImages)
		uploads.GET("/images/:id", uploadHandler.GetImage)
	}
}

// setupAdminRoutes sets up admin related routes
func setupAdminRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	productHandler := handlers.NewProductHandler(db, cfg)
	attributeHandler := handlers.NewAttributeHandler(db, cfg)
	inventoryHandler := handlers.NewInventoryHandler(db, cfg)
	analyticsHandler := handlers.NewAnalyticsHandler(db, redisClient, cfg)
	reportHandler := handlers.NewReportHandler(db, cfg)
	uploadHandler := handlers.NewUploadHandler(db, cfg)
	userAdminHandler := handlers.NewUserAdminHandler(db, cfg)

	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg))
	admin.Use(middleware.AdminMiddleware())
	{
		// Product management
		products := admin.Group("/products")
		{
			products.POST("", productHandler.CreateProduct)
			products.PUT("/:id", productHandler.UpdateProduct)
			products.DELETE("/:id", productHandler.DeleteProduct)
			products.POST("/:id/images", productHandler.AttachImage)
		}

		// Attribute management
		attributes := admin.Group("/attributes")
		{
			attributes.POST("/brands", attributeHandler.CreateBrand)
			attributes.PUT("/brands/:id", attributeHandler.UpdateBrand)
			attributes.DELETE("/brands/:id", attributeHandler.DeleteBrand)

			attributes.POST("/colors", attributeHandler.CreateColor)
			attributes.PUT("/colors/:id", attributeHandler.UpdateColor)
			attributes.DELETE("/colors/:id", attributeHandler.DeleteColor)

			attributes.POST("/genders", attributeHandler.CreateGender)
			attributes.PUT("/genders/:id", attributeHandler.UpdateGender)
			attributes.DELETE("/genders/:id", attributeHandler.DeleteGender)

			attributes.POST("/sizes", attributeHandler.CreateSize)
			attributes.PUT("/sizes/:id", attributeHandler.UpdateSize)
			attributes.DELETE("/sizes/:id", attributeHandler.DeleteSize)

			attributes.POST("/storage-locations", attributeHandler.CreateStorageLocation)
			attributes.PUT("/storage-locations/:id", attributeHandler.UpdateStorageLocation)
			attributes.DELETE("/storage-locations/:id", attributeHandler.DeleteStorageLocation)
		}

		// Inventory management
		inventory := admin.Group("/inventory")
		{
			inventory.PUT("/items/:product_id/status", inventoryHandler.UpdateItemStatus)
		}

		// Analytics
		analytics := admin.Group("/analytics")
		{
			analytics.GET("/dashboard", analyticsHandler.GetDashboard)
			analytics.GET("/movements/series", analyticsHandler.GetMovementSeries)
			analytics.GET("/movements/top-products", analyticsHandler.GetTopMovedProducts)
			analytics.GET("/movements/recent", analyticsHandler.GetRecentMovements)
			analytics.GET("/low-stock", analyticsHandler.GetLowStockProducts)
		}

		// Reports
		reports := admin.Group("/reports")
		{
			reports.GET("/movements", reportHandler.DownloadMovementReport)
		}

		// Upload management
		uploads := admin.Group("/uploads")
		{
			uploads.DELETE("/images/:id", uploadHandler.DeleteImage)
		}

		// User management
		users := admin.Group("/users")
		{
			users.GET("", userAdminHandler.ListUsers)
			users.PUT("/:id/admin", userAdminHandler.SetAdmin)
			users.PUT("/:id/status", userAdminHandler.SetActive)
		}
	}
}
