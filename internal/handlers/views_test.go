package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"disease-predictor-gateway/internal/handlers"
	"disease-predictor-gateway/internal/workflow"
)

func TestRouteGuardRedirectsWithoutSession(t *testing.T) {
	router, _ := newGateway(t, "http://127.0.0.1:0")

	for _, path := range []string{"/dashboard", "/predict", "/history", "/doctor", "/diseases"} {
		w := perform(router, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusFound, w.Code, path)
		assert.Equal(t, "/login", w.Header().Get("Location"), path)
	}

	w := perform(router, http.MethodPost, "/predict", fullInput())
	assert.Equal(t, http.StatusFound, w.Code)
}

func TestDashboardWelcomesUser(t *testing.T) {
	router, store := newGateway(t, "http://127.0.0.1:0")
	loggedIn(t, store)

	w := perform(router, http.MethodGet, "/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode(t, w)
	assert.Equal(t, "Welcome, A", resp.Message)
}

func TestGuardReEvaluatedAfterClear(t *testing.T) {
	router, store := newGateway(t, "http://127.0.0.1:0")
	loggedIn(t, store)

	require.Equal(t, http.StatusOK, perform(router, http.MethodGet, "/dashboard", nil).Code)

	// A session cleared between navigations is caught on the next one.
	require.NoError(t, store.Clear())
	w := perform(router, http.MethodGet, "/dashboard", nil)
	assert.Equal(t, http.StatusFound, w.Code)
}

func TestHistoryEmptyAffordance(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/history/u1", r.URL.Path)
		w.Write([]byte(`[]`))
	}))
	defer upstream.Close()

	router, store := newGateway(t, upstream.URL)
	loggedIn(t, store)

	w := perform(router, http.MethodGet, "/history", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode(t, w)
	assert.Equal(t, handlers.NoHistoryMessage, resp.Message)
	assert.Empty(t, resp.Error)
}

func TestHistoryRendersServerOrder(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"_id": {"$oid": "r2"}, "prediction_result": "Thalassemia", "created_at": {"$date": 1712000001000}},
			{"_id": {"$oid": "r1"}, "prediction_result": "Healthy", "created_at": {"$date": 1712000000000}}
		]`))
	}))
	defer upstream.Close()

	router, store := newGateway(t, upstream.URL)
	loggedIn(t, store)

	w := perform(router, http.MethodGet, "/history", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode(t, w)
	var records []struct {
		PredictionResult string `json:"prediction_result"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &records))
	require.Len(t, records, 2)
	assert.Equal(t, "Thalassemia", records[0].PredictionResult)
	assert.Equal(t, "Healthy", records[1].PredictionResult)
}

func TestHistoryFailureDistinctFromEmpty(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "database offline"}`))
	}))
	defer upstream.Close()

	router, store := newGateway(t, upstream.URL)
	loggedIn(t, store)

	w := perform(router, http.MethodGet, "/history", nil)
	require.Equal(t, http.StatusBadGateway, w.Code)

	resp := decode(t, w)
	assert.Contains(t, resp.Error, "database offline")
	assert.NotEqual(t, handlers.NoHistoryMessage, resp.Message)
}

func TestDoctorPanesRenderIndependently(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/doctor/predictions":
			w.Write([]byte(`[{"patient_name": "A", "prediction_result": "Diabetes", "created_at": {"$date": 1712000000000}}]`))
		case "/stats":
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error": "stats unavailable"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer upstream.Close()

	router, store := newGateway(t, upstream.URL)
	loggedIn(t, store)

	w := perform(router, http.MethodGet, "/doctor", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode(t, w)
	var data struct {
		Patients handlers.Pane `json:"patients"`
		Stats    handlers.Pane `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))

	// The stats failure must not hide the activity feed.
	assert.Equal(t, workflow.StatusSucceeded, data.Patients.State)
	assert.NotNil(t, data.Patients.Data)
	assert.Equal(t, workflow.StatusFailed, data.Stats.State)
	assert.Equal(t, "stats unavailable", data.Stats.Error)
}

func TestDoctorEmptyFeedAffordance(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/doctor/predictions":
			w.Write([]byte(`[]`))
		case "/stats":
			w.Write([]byte(`{"accuracy": 0.92, "model_type": "Balanced Random Forest"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer upstream.Close()

	router, store := newGateway(t, upstream.URL)
	loggedIn(t, store)

	w := perform(router, http.MethodGet, "/doctor", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode(t, w)
	var data struct {
		Patients handlers.Pane `json:"patients"`
		Stats    handlers.Pane `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))

	assert.Equal(t, handlers.NoPatientsMessage, data.Patients.Message)
	assert.Equal(t, workflow.StatusSucceeded, data.Stats.State)
	assert.Empty(t, data.Stats.Error)
}

func TestDiseasesCatalog(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/diseases", r.URL.Path)
		w.Write([]byte(`[{"name": "Influenza", "symptoms": ["Fever"], "treatments": ["Rest"]}]`))
	}))
	defer upstream.Close()

	router, store := newGateway(t, upstream.URL)
	loggedIn(t, store)

	w := perform(router, http.MethodGet, "/diseases", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode(t, w)
	var diseases []struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &diseases))
	require.Len(t, diseases, 1)
	assert.Equal(t, "Influenza", diseases[0].Name)
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := newGateway(t, "http://127.0.0.1:0")

	w := perform(router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
