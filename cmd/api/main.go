package main

import (
	"bolsillo/internal/config"
	"bolsillo/internal/database"
	"bolsillo/internal/handlers"
	"bolsillo/internal/logger"
	"bolsillo/internal/middleware"
	"bolsillo/internal/receipt"
	"bolsillo/internal/services"
	"bolsillo/internal/validator"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "bolsillo/internal/docs" // Import swagger docs
)

// @title           Bolsillo API
// @version         1.0
// @description     Bolsillo is a personal finance tracker that records income and expenses, summarizes financial health, and generates spending advice in Spanish.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	transactionService := services.NewTransactionService(db)
	categoryService := services.NewCategoryService(db)

	// Initialize handlers
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	analysisHandler := handlers.NewAnalysisHandler()
	receiptHandler := handlers.NewReceiptHandler(newExtractor(appConfig))

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Transaction routes
	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.GET("/summary", transactionHandler.GetSummary)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Category routes
	v1.GET("/categories", categoryHandler.ListCategories)

	// Analysis and receipt routes
	v1.POST("/analysis", analysisHandler.Analyze)
	v1.POST("/receipts/scan", receiptHandler.ScanReceipt)

	log.Infof("Starting Bolsillo backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}

// newExtractor selects the receipt extractor from configuration. The mock
// extractor is the default so local development needs no API credentials.
func newExtractor(cfg *config.Config) receipt.Extractor {
	if cfg.ReceiptExtractor == "gemini" {
		logger.Get().Infof("Using Gemini receipt extractor with model %s", cfg.GeminiModel)
		return receipt.NewGeminiExtractor(cfg.GeminiModel)
	}
	return receipt.NewMockExtractor()
}
