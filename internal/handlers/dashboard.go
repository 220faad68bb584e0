package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"disease-predictor-gateway/internal/middleware"
	"disease-predictor-gateway/internal/utils"
)

// DashboardHandler renders the landing view for an authenticated user.
type DashboardHandler struct{}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

// Dashboard greets the user and lists the entry points into the app.
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	current, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.InternalServerError(c, "Session missing from context. RequireSession might be missing.")
		return
	}

	utils.Success(c, fmt.Sprintf("Welcome, %s", current.Name), gin.H{
		"user": current,
		"actions": []gin.H{
			{"label": "Start Checkup", "path": "/predict"},
			{"label": "View Reports", "path": "/history"},
			{"label": "Doctor View", "path": "/doctor"},
		},
	})
}
