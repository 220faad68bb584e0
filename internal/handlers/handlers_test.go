package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"disease-predictor-gateway/internal/backend"
	"disease-predictor-gateway/internal/models"
	"disease-predictor-gateway/internal/routes"
	"disease-predictor-gateway/internal/session"
)

// apiResponse mirrors utils.ResponseData for decoding in tests.
type apiResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// newGateway wires the full route table against the given upstream, with an
// in-memory session store standing in for the token file.
func newGateway(t *testing.T, upstreamURL string) (*gin.Engine, *session.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := session.NewMemoryStore()
	router := gin.New()
	routes.SetupRoutes(router, store, backend.NewClient(upstreamURL, 5*time.Second))
	return router, store
}

func perform(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) apiResponse {
	t.Helper()
	var resp apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func loggedIn(t *testing.T, store *session.MemoryStore) *models.Session {
	t.Helper()
	current := &models.Session{ID: "u1", Name: "A", Email: "a@x.com"}
	require.NoError(t, store.Save(current))
	return current
}

// fullInput returns a complete 24-field submission.
func fullInput() map[string]string {
	input := make(map[string]string, len(models.Features))
	for _, feature := range models.Features {
		input[feature.Name] = "1.0"
	}
	return input
}
