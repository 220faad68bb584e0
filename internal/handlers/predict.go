package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"disease-predictor-gateway/internal/backend"
	"disease-predictor-gateway/internal/middleware"
	"disease-predictor-gateway/internal/models"
	"disease-predictor-gateway/internal/session"
	"disease-predictor-gateway/internal/utils"
	"disease-predictor-gateway/internal/workflow"
)

// ValidationMessage is shown when the 24-field gate blocks a submission.
const ValidationMessage = "Please fill in all fields before submitting."

// PredictHandler runs the prediction submission flow: the client-side
// validation gate, then one workflow engine per user so a second submission
// cannot overlap an in-flight one. The registry is flushed when the session
// store is cleared.
type PredictHandler struct {
	Client *backend.Client

	mu      sync.Mutex
	engines map[string]*workflow.Engine[backend.PredictRequest, *models.PredictionResult]
}

// NewPredictHandler creates a PredictHandler and subscribes it to session
// clears so logout discards all engine state.
func NewPredictHandler(client *backend.Client, store session.Store) *PredictHandler {
	h := &PredictHandler{
		Client:  client,
		engines: make(map[string]*workflow.Engine[backend.PredictRequest, *models.PredictionResult]),
	}
	store.Subscribe(h.Flush)
	return h
}

// Form is the form-entry view: it resets the user's engine (a fresh mount
// starts from idle) and describes the fields to collect.
func (h *PredictHandler) Form(c *gin.Context) {
	h.engineFor(h.userID(c)).Reset()

	utils.Success(c, "Enter the patient's blood sample details below for AI analysis.", gin.H{
		"fields": models.Features,
		"submit": "/predict",
	})
}

// Submit validates the 24-field payload, and only on a full form hands it
// to the workflow engine. A validation failure never contacts the backend
// and never transitions the engine.
func (h *PredictHandler) Submit(c *gin.Context) {
	var input models.PredictionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	if err := utils.Validate(input); err != nil {
		utils.ValidationFailed(c, ValidationMessage, utils.MissingFields(err))
		return
	}

	userID := h.userID(c)
	engine := h.engineFor(userID)

	snap, err := engine.Start(c.Request.Context(), backend.PredictRequest{
		UserID:   userID,
		Symptoms: input,
	})
	if err != nil {
		if errors.Is(err, workflow.ErrInFlight) {
			utils.Conflict(c, "A prediction for this account is already in progress")
			return
		}
		// Superseded by a reset (e.g. logout while in flight); the
		// outcome was discarded.
		utils.Conflict(c, "The submission was superseded and its result discarded")
		return
	}

	switch snap.Status {
	case workflow.StatusSucceeded:
		utils.Success(c, "Analysis complete", gin.H{
			"result":    snap.Result,
			"scroll_to": "analysis-result",
		})
	case workflow.StatusFailed:
		utils.Error(c, http.StatusBadGateway, fmt.Sprintf("Prediction failed: %s", snap.ErrorMessage))
	default:
		utils.InternalServerError(c, "Unexpected workflow state: "+string(snap.Status))
	}
}

// Flush drops every engine. Wired to session clears.
func (h *PredictHandler) Flush() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.engines = make(map[string]*workflow.Engine[backend.PredictRequest, *models.PredictionResult])
}

// userID scopes the engine registry; without a usable session id the
// anonymous sentinel is submitted, matching the backend's contract.
func (h *PredictHandler) userID(c *gin.Context) string {
	if current, ok := middleware.SessionFromContext(c); ok && current.ID != "" {
		return current.ID
	}
	return models.AnonymousUserID
}

// engineFor returns the user's engine, creating it on first use.
func (h *PredictHandler) engineFor(userID string) *workflow.Engine[backend.PredictRequest, *models.PredictionResult] {
	h.mu.Lock()
	defer h.mu.Unlock()
	engine, ok := h.engines[userID]
	if !ok {
		engine = workflow.New(h.Client.Predict)
		h.engines[userID] = engine
	}
	return engine
}
