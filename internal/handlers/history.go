package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"disease-predictor-gateway/internal/backend"
	"disease-predictor-gateway/internal/middleware"
	"disease-predictor-gateway/internal/models"
	"disease-predictor-gateway/internal/utils"
	"disease-predictor-gateway/internal/workflow"
)

// NoHistoryMessage is the explicit empty affordance, distinct from loading
// and error renderings.
const NoHistoryMessage = "No history found."

// HistoryHandler renders the current user's prediction history.
type HistoryHandler struct {
	Client *backend.Client
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(client *backend.Client) *HistoryHandler {
	return &HistoryHandler{Client: client}
}

// History fetches the session-scoped records through a fresh workflow
// engine and renders them in the order the backend delivered them.
func (h *HistoryHandler) History(c *gin.Context) {
	current, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.InternalServerError(c, "Session missing from context. RequireSession might be missing.")
		return
	}

	engine := workflow.New(func(ctx context.Context, userID string) ([]models.HistoryRecord, error) {
		return h.Client.History(ctx, userID)
	})

	snap, err := engine.Start(c.Request.Context(), current.ID)
	if err != nil {
		utils.InternalServerError(c, "Failed to run history workflow: "+err.Error())
		return
	}

	if snap.Status == workflow.StatusFailed {
		utils.BadGateway(c, "Failed to load history: "+snap.ErrorMessage)
		return
	}

	if len(snap.Result) == 0 {
		utils.Success(c, NoHistoryMessage, []models.HistoryRecord{})
		return
	}
	utils.Success(c, "History fetched successfully", snap.Result)
}
