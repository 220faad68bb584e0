package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"disease-predictor-gateway/internal/backend"
	"disease-predictor-gateway/internal/handlers"
	"disease-predictor-gateway/internal/middleware"
	"disease-predictor-gateway/internal/session"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, store session.Store, client *backend.Client) {
	// Initialize handlers
	authHandler := handlers.NewAuthHandler(store, client)
	dashboardHandler := handlers.NewDashboardHandler()
	predictHandler := handlers.NewPredictHandler(client, store)
	historyHandler := handlers.NewHistoryHandler(client)
	doctorHandler := handlers.NewDoctorHandler(client)
	diseasesHandler := handlers.NewDiseasesHandler(client)

	// Public routes (no session required)
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/login")
	})
	router.GET("/login", authHandler.LoginPage)

	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
	}

	// Protected routes: the guard re-reads the session store on every
	// request, so nothing here renders without a valid session.
	private := router.Group("/")
	private.Use(middleware.RequireSession(store))
	{
		private.POST("/auth/logout", authHandler.Logout)
		private.GET("/dashboard", dashboardHandler.Dashboard)
		private.GET("/predict", predictHandler.Form)
		private.POST("/predict", predictHandler.Submit)
		private.GET("/history", historyHandler.History)
		private.GET("/doctor", doctorHandler.Doctor)
		private.GET("/diseases", diseasesHandler.Diseases)
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
