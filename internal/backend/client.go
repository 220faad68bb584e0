// Package backend is the REST client for the external disease-prediction
// service. It is the only component that touches the network; everything it
// returns is either a decoded value or an error from the taxonomy in
// errors.go.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"disease-predictor-gateway/internal/models"
)

// Client talks to the prediction backend over its fixed REST boundary.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the backend rooted at baseURL. The timeout
// bounds every request; the source system had none, so any positive value
// is a strict improvement.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// RegisterRequest is the payload for POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse is the backend's acknowledgement of a registration.
type RegisterResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	var resp RegisterResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// LoginRequest is the payload for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse mirrors the backend's login body: the raw user document
// with a Mongo id. Only the identity fields are consumed.
type loginResponse struct {
	Message string `json:"message"`
	User    struct {
		ID    models.ObjectID `json:"_id"`
		AltID string          `json:"id"`
		Name  string          `json:"name"`
		Email string          `json:"email"`
	} `json:"user"`
}

// Login authenticates against the backend and returns the session identity
// to persist. The caller owns persistence.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*models.Session, error) {
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, err
	}

	id := resp.User.ID.String()
	if id == "" {
		id = resp.User.AltID
	}
	return &models.Session{
		ID:    id,
		Name:  resp.User.Name,
		Email: resp.User.Email,
	}, nil
}

// PredictRequest is the payload for POST /predict.
type PredictRequest struct {
	UserID   string                 `json:"user_id"`
	Symptoms models.PredictionInput `json:"symptoms"`
}

// Predict submits a blood panel and returns the model's diagnosis.
func (c *Client) Predict(ctx context.Context, req PredictRequest) (*models.PredictionResult, error) {
	var resp models.PredictionResult
	if err := c.do(ctx, http.MethodPost, "/predict", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// History fetches the stored predictions for one user, in server order.
func (c *Client) History(ctx context.Context, userID string) ([]models.HistoryRecord, error) {
	var records []models.HistoryRecord
	if err := c.do(ctx, http.MethodGet, "/history/"+url.PathEscape(userID), nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// DoctorPredictions fetches the cross-patient activity feed.
func (c *Client) DoctorPredictions(ctx context.Context) ([]models.PatientActivityRecord, error) {
	var records []models.PatientActivityRecord
	if err := c.do(ctx, http.MethodGet, "/doctor/predictions", nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Stats fetches the current model accuracy snapshot.
func (c *Client) Stats(ctx context.Context) (*models.ModelStats, error) {
	var stats models.ModelStats
	if err := c.do(ctx, http.MethodGet, "/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Diseases fetches the reference catalog of known conditions.
func (c *Client) Diseases(ctx context.Context) ([]models.Disease, error) {
	var diseases []models.Disease
	if err := c.do(ctx, http.MethodGet, "/diseases", nil, &diseases); err != nil {
		return nil, err
	}
	return diseases, nil
}

// do performs one exchange: marshal, send, classify failures, decode.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return newAPIError(resp.StatusCode, data)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response body: %w", err)
		}
	}
	return nil
}
