package main

import (
	"fmt"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"disease-predictor-gateway/internal/backend"
	"disease-predictor-gateway/internal/config"
	"disease-predictor-gateway/internal/routes"
	"disease-predictor-gateway/internal/session"
)

func main() {
	// Load environment variables; the gateway runs fine without a .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize the local session store (the client's persisted identity)
	store := session.NewFileStore(cfg.SessionFile, cfg.SessionSecret)

	// Initialize the upstream prediction backend client
	client := backend.NewClient(cfg.BackendURL, cfg.BackendTimeout)

	// Initialize Gin router
	router := gin.Default()

	// Configure CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Origin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	router.Use(cors.New(corsConfig))

	// Set up routes - store and client are injected into the handlers
	routes.SetupRoutes(router, store, client)

	// Start server
	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	fmt.Printf("Gateway running on port %s (backend: %s)\n", cfg.Port, cfg.BackendURL)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
