package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"fitnutri/database"
	"fitnutri/internal/cache"
	"fitnutri/internal/controllers"
	"fitnutri/internal/events"
	"fitnutri/internal/repository"
	"fitnutri/internal/store"
	"fitnutri/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	err := godotenv.Load("../.env")
	if err != nil {
		log.Printf("Warning: No .env file found: %v", err)
	}

	// Connect to database
	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	database.MonitorDBConnections()

	// Initialize repositories
	profileRepo := repository.NewUserProfileRepository(database.DB)
	recipeRepo := repository.NewRecipeRepository(database.DB)
	shoppingRepo := repository.NewShoppingListRepository(database.DB)
	reportRepo := repository.NewReportRepository(database.DB)

	// Redis cache is optional: without it every listing is served from the store
	redisClient, err := cache.NewRedisClient()
	if err != nil {
		log.Printf("Warning: Redis unavailable, recipe list caching disabled: %v", err)
		redisClient = nil
	} else {
		defer redisClient.Close()
		log.Println("Redis connection established successfully")
	}

	// Event publisher is optional too: state changes are authoritative in
	// memory whether or not they reach the broker
	publisher := events.Discard
	if rabbitMQURL := os.Getenv("RABBITMQ_URL"); rabbitMQURL != "" {
		amqpPublisher, err := events.NewAMQPPublisher(rabbitMQURL, "fitnutri.events")
		if err != nil {
			log.Printf("Warning: RabbitMQ unavailable, event publishing disabled: %v", err)
		} else {
			publisher = amqpPublisher
			defer amqpPublisher.Close()
			log.Println("RabbitMQ connection established successfully")
		}
	}

	// Initialize the session state store from persistence
	appStore := store.New(profileRepo, recipeRepo, shoppingRepo, reportRepo, publisher)
	if err := appStore.Load(); err != nil {
		log.Fatalf("Failed to load application state: %v", err)
	}

	// Initialize controllers
	profileController := controllers.NewProfileController(appStore)
	dailyLogController := controllers.NewDailyLogController(appStore)
	recipeController := controllers.NewRecipeController(appStore, redisClient)
	adminController := controllers.NewAdminController(appStore, redisClient)
	shoppingController := controllers.NewShoppingController(appStore)

	gin.SetMode(gin.ReleaseMode)
	// Setup Gin router
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message":  "FitNutri API is running",
			"version":  "1.0.0",
			"status":   "healthy",
			"database": "PostgreSQL",
			"cache":    redisClient != nil,
		})
	})

	routes.RegisterProfileRoutes(router, profileController)
	routes.RegisterDailyLogRoutes(router, dailyLogController)
	routes.RegisterRecipeRoutes(router, recipeController)
	routes.RegisterAdminRoutes(router, adminController)
	routes.RegisterShoppingRoutes(router, shoppingController)

	router.GET("/debug/database", func(c *gin.Context) {
		sqlDB, err := database.DB.DB()
		if err != nil {
			c.JSON(500, gin.H{
				"database_health": false,
				"error":           err.Error(),
			})
			return
		}

		var result int
		row := sqlDB.QueryRowContext(c.Request.Context(), "SELECT 1")
		err = row.Scan(&result)
		isHealthy := err == nil && result == 1

		c.JSON(200, gin.H{
			"database_health": isHealthy,
		})
	})

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Printf("Health Check: http://localhost:%s/debug/database", port)

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Printf("FitNutri API Server started successfully on port %s", port)

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
