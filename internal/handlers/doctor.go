package handlers

import (
	"context"
	"sync"

	"github.com/gin-gonic/gin"

	"disease-predictor-gateway/internal/backend"
	"disease-predictor-gateway/internal/models"
	"disease-predictor-gateway/internal/utils"
	"disease-predictor-gateway/internal/workflow"
)

// NoPatientsMessage is the empty affordance for the activity pane.
const NoPatientsMessage = "No patient records found."

// NoStatsMessage is shown when no accuracy snapshot is available.
const NoStatsMessage = "No stats available"

// Pane is one independently rendered region of the doctor dashboard: a
// pure function of its workflow snapshot.
type Pane struct {
	State   workflow.Status `json:"state"`
	Data    interface{}     `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// DoctorHandler renders the doctor dashboard: the cross-patient activity
// feed and the model accuracy snapshot.
type DoctorHandler struct {
	Client *backend.Client
}

// NewDoctorHandler creates a new DoctorHandler.
func NewDoctorHandler(client *backend.Client) *DoctorHandler {
	return &DoctorHandler{Client: client}
}

// Doctor issues the two fetches through independent engines running
// concurrently. Each pane renders on its own; a failure in one never hides
// the other's data, so the response is 200 with per-pane state.
func (h *DoctorHandler) Doctor(c *gin.Context) {
	activityEngine := workflow.New(func(ctx context.Context, _ struct{}) ([]models.PatientActivityRecord, error) {
		return h.Client.DoctorPredictions(ctx)
	})
	statsEngine := workflow.New(func(ctx context.Context, _ struct{}) (*models.ModelStats, error) {
		return h.Client.Stats(ctx)
	})

	ctx := c.Request.Context()
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		activityEngine.Start(ctx, struct{}{})
	}()
	go func() {
		defer wg.Done()
		statsEngine.Start(ctx, struct{}{})
	}()
	wg.Wait()

	utils.Success(c, "Doctor dashboard", gin.H{
		"patients": activityPane(activityEngine.Snapshot()),
		"stats":    statsPane(statsEngine.Snapshot()),
	})
}

func activityPane(snap workflow.Snapshot[[]models.PatientActivityRecord]) Pane {
	if snap.Status == workflow.StatusFailed {
		return Pane{State: snap.Status, Error: snap.ErrorMessage}
	}
	if len(snap.Result) == 0 {
		return Pane{State: snap.Status, Data: []models.PatientActivityRecord{}, Message: NoPatientsMessage}
	}
	return Pane{State: snap.Status, Data: snap.Result}
}

func statsPane(snap workflow.Snapshot[*models.ModelStats]) Pane {
	if snap.Status == workflow.StatusFailed {
		return Pane{State: snap.Status, Error: snap.ErrorMessage}
	}
	if snap.Result == nil {
		return Pane{State: snap.Status, Message: NoStatsMessage}
	}
	return Pane{State: snap.Status, Data: snap.Result}
}
