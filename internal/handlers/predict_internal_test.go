package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"disease-predictor-gateway/internal/backend"
	"disease-predictor-gateway/internal/session"
)

func TestPredictEnginesFlushedOnSessionClear(t *testing.T) {
	store := session.NewMemoryStore()
	h := NewPredictHandler(backend.NewClient("http://127.0.0.1:0", time.Second), store)

	before := h.engineFor("u1")
	assert.Same(t, before, h.engineFor("u1"))

	// Clearing the session must discard every engine so no workflow state
	// outlives the identity it was scoped to.
	require.NoError(t, store.Clear())

	after := h.engineFor("u1")
	assert.NotSame(t, before, after)
}

func TestEngineForIsPerUser(t *testing.T) {
	store := session.NewMemoryStore()
	h := NewPredictHandler(backend.NewClient("http://127.0.0.1:0", time.Second), store)

	assert.NotSame(t, h.engineFor("u1"), h.engineFor("u2"))
}
