package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"disease-predictor-gateway/internal/backend"
	"disease-predictor-gateway/internal/models"
	"disease-predictor-gateway/internal/utils"
	"disease-predictor-gateway/internal/workflow"
)

// DiseasesHandler renders the reference catalog of known conditions.
type DiseasesHandler struct {
	Client *backend.Client
}

// NewDiseasesHandler creates a new DiseasesHandler.
func NewDiseasesHandler(client *backend.Client) *DiseasesHandler {
	return &DiseasesHandler{Client: client}
}

// Diseases fetches the catalog in backend order.
func (h *DiseasesHandler) Diseases(c *gin.Context) {
	engine := workflow.New(func(ctx context.Context, _ struct{}) ([]models.Disease, error) {
		return h.Client.Diseases(ctx)
	})

	snap, err := engine.Start(c.Request.Context(), struct{}{})
	if err != nil {
		utils.InternalServerError(c, "Failed to run diseases workflow: "+err.Error())
		return
	}

	if snap.Status == workflow.StatusFailed {
		utils.BadGateway(c, "Failed to load disease catalog: "+snap.ErrorMessage)
		return
	}

	if len(snap.Result) == 0 {
		utils.Success(c, "No diseases found.", []models.Disease{})
		return
	}
	utils.Success(c, "Disease catalog fetched successfully", snap.Result)
}
