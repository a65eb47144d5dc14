package main

import (
	"fmt"
	"net/http"
	"time"

	_ "github.com/chaiandgrill/pos-api/docs" // Import generated docs
	"github.com/chaiandgrill/pos-api/internal/config"
	"github.com/chaiandgrill/pos-api/internal/controllers"
	"github.com/chaiandgrill/pos-api/internal/database"
	"github.com/chaiandgrill/pos-api/internal/middleware"
	"github.com/chaiandgrill/pos-api/internal/models"
	"github.com/chaiandgrill/pos-api/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

var (
	db                  *gorm.DB
	catalogService      services.CatalogService
	userService         services.UserService
	cartService         services.CartService
	billingService      services.BillingService
	reportService       services.ReportService
	authController      *controllers.AuthController
	catalogController   controllers.CatalogController
	userController      controllers.UserController
	billingController   controllers.BillingController
	dashboardController controllers.DashboardController
	configuration       *config.Config
)

// @title Chai & Grill POS API
// @version 1.0
// @description Point-of-sale API for a single-location restaurant
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()

	// Initialize database connection
	setupDatabase(configuration)

	// Initialize services and controllers
	catalogService = services.NewCatalogService(db)
	userService = services.NewUserService(db)
	cartService = services.NewCartService()
	billingService = services.NewBillingService(db)
	reportService = services.NewReportService(db)

	authController = controllers.NewAuthController(userService, configuration.JWTSecret,
		time.Duration(configuration.TokenTTLHours)*time.Hour)
	catalogController = controllers.NewCatalogController(catalogService)
	userController = controllers.NewUserController(userService)
	billingController = controllers.NewBillingController(catalogService, cartService, billingService, reportService)
	dashboardController = controllers.NewDashboardController(reportService, catalogService)

	// Initialize Gin router
	var router *gin.Engine = setupRouter()

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase opens the store, migrates the schema and seeds an empty
// database with the bootstrap admin and the default catalog
func setupDatabase(conf *config.Config) *gorm.DB {
	var err error
	db, err = database.InitDatabase(database.DatabaseConfig{
		Driver:   conf.DBDriver,
		Path:     conf.DBPath,
		Host:     conf.DBHost,
		Port:     conf.DBPort,
		User:     conf.DBUser,
		Password: conf.DBPassword,
		Name:     conf.DBName,
		SSLMode:  conf.DBSSLMode,
	})
	checkPanicErr(err)

	checkPanicErr(database.Migrate(db))
	checkPanicErr(database.Seed(db))
	return db
}

// setupRouter initializes the Gin router and sets up the routes
func setupRouter() *gin.Engine {
	router := gin.Default()

	// The front-end runs on the same machine on its own port
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	setupRoutes(router)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	v1 := router.Group("/api/v1")
	{
		// Authentication (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", authController.Login)
		}

		// Everything else requires a signed-in session
		session := v1.Group("")
		session.Use(middleware.JWTAuth([]byte(configuration.JWTSecret)))
		{
			session.GET("/categories", catalogController.ListCategories)
			session.GET("/categories/names", catalogController.CategoryNames)
			session.GET("/categories/:id/items", catalogController.CategoryItems)
			session.GET("/items", catalogController.ListItems)
			session.GET("/items/count", catalogController.ItemCount)

			session.GET("/cart", billingController.GetCart)
			session.POST("/cart/items", billingController.AddToCart)
			session.DELETE("/cart/items/:itemId", billingController.RemoveFromCart)
			session.DELETE("/cart", billingController.ClearCart)
			session.POST("/checkout", billingController.Checkout)

			session.GET("/dashboard", dashboardController.Summary)
			session.GET("/bills/recent", dashboardController.RecentBills)
			session.GET("/bills/:id/items", dashboardController.BillLines)
			session.GET("/bills/:id/receipt", billingController.Receipt)

			// Catalog and account management is admin-only
			admin := session.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.POST("/categories", catalogController.CreateCategory)
				admin.PUT("/categories/:id", catalogController.RenameCategory)
				admin.DELETE("/categories/:id", catalogController.DeleteCategory)

				admin.POST("/items", catalogController.CreateItem)
				admin.PUT("/items/:id", catalogController.UpdateItem)
				admin.DELETE("/items/:id", catalogController.DeleteItem)

				admin.GET("/users", userController.ListUsers)
				admin.POST("/users", userController.CreateUser)
				admin.PUT("/users/:id", userController.UpdateUser)
				admin.DELETE("/users/:id", userController.DeleteUser)
			}
		}
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "chai-and-grill-pos",
	})
}
