// Package workflow implements the async-operation state machine shared by
// every data-fetching and data-submitting view: one engine per logical
// backend operation, four states, at most one request in flight.
package workflow

import (
	"context"
	"errors"
	"sync"
)

// Status enumerates the lifecycle of one async exchange.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusPending   Status = "pending"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// ErrInFlight is returned by Start while a previous request is still
// pending; the engine never issues overlapping requests.
var ErrInFlight = errors.New("workflow: a request is already in flight")

// ErrSuperseded is returned when a completed request arrived after the
// engine was reset; its outcome has been discarded.
var ErrSuperseded = errors.New("workflow: request was superseded")

// GenericFailureMessage is shown when a failure carries no server-provided
// message (transport errors, malformed error bodies).
const GenericFailureMessage = "Unknown error occurred"

// UserFacingError is implemented by errors whose message is safe to surface
// verbatim to the user.
type UserFacingError interface {
	UserMessage() string
}

// ExecFunc performs the single network exchange bound to an engine.
type ExecFunc[P, R any] func(ctx context.Context, payload P) (R, error)

// Snapshot is an immutable view of the engine state, used as the sole input
// to presentation.
type Snapshot[R any] struct {
	Status       Status
	Result       R
	ErrorMessage string
}

// Engine drives one logical backend operation through
// idle -> pending -> succeeded/failed. Exactly one variant is active at any
// instant; entering pending clears any prior result or error.
type Engine[P, R any] struct {
	exec ExecFunc[P, R]

	mu      sync.Mutex
	status  Status
	attempt uint64
	result  R
	errMsg  string
}

// New creates an idle engine bound to exec.
func New[P, R any](exec ExecFunc[P, R]) *Engine[P, R] {
	return &Engine[P, R]{exec: exec, status: StatusIdle}
}

// Start transitions to pending and performs the exchange. It is a no-op
// returning ErrInFlight while a previous request is pending. A completion
// is applied only if the engine is still pending for this attempt, so a
// response outliving a Reset is discarded and ErrSuperseded is returned.
func (e *Engine[P, R]) Start(ctx context.Context, payload P) (Snapshot[R], error) {
	e.mu.Lock()
	if e.status == StatusPending {
		snap := e.snapshotLocked()
		e.mu.Unlock()
		return snap, ErrInFlight
	}
	e.attempt++
	attempt := e.attempt
	e.status = StatusPending
	var zero R
	e.result = zero
	e.errMsg = ""
	e.mu.Unlock()

	result, err := e.exec(ctx, payload)

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.attempt != attempt || e.status != StatusPending {
		return e.snapshotLocked(), ErrSuperseded
	}
	if err != nil {
		e.status = StatusFailed
		e.errMsg = failureMessage(err)
	} else {
		e.status = StatusSucceeded
		e.result = result
	}
	return e.snapshotLocked(), nil
}

// Reset returns the engine to idle from any state. Idempotent; an in-flight
// request keeps running but its outcome will be discarded.
func (e *Engine[P, R]) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.attempt++
	e.status = StatusIdle
	var zero R
	e.result = zero
	e.errMsg = ""
}

// Snapshot returns the current state.
func (e *Engine[P, R]) Snapshot() Snapshot[R] {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

func (e *Engine[P, R]) snapshotLocked() Snapshot[R] {
	return Snapshot[R]{
		Status:       e.status,
		Result:       e.result,
		ErrorMessage: e.errMsg,
	}
}

// failureMessage surfaces server-provided messages verbatim and collapses
// everything else to the generic transport message.
func failureMessage(err error) string {
	var userErr UserFacingError
	if errors.As(err, &userErr) {
		return userErr.UserMessage()
	}
	return GenericFailureMessage
}
