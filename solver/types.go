// Package solver provides options, result and error definitions for
// grid shortest-path search.
package solver

import (
	"errors"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors for search failures.
var (
	// ErrInvalidInput is returned for a non-positive size, a blocked slice
	// shorter than n², or an endpoint outside the grid.
	ErrInvalidInput = errors.New("solver: invalid input")

	// ErrBlockedEndpoint is returned when the start or goal cell is a wall.
	ErrBlockedEndpoint = errors.New("solver: endpoint is blocked")

	// ErrUnreachable is returned when no path joins start and goal.
	ErrUnreachable = errors.New("solver: goal unreachable")

	// ErrBufferTooSmall is returned when the shortest path exceeds the
	// caller's capacity.
	ErrBufferTooSmall = errors.New("solver: path too long for buffer")
)

// Cell is a (row, column) coordinate on the grid.
type Cell = gridgraph.Cell

// Failure enumerates why a search produced no path.
type Failure int

const (
	// FailureNone means the search succeeded.
	FailureNone Failure = iota
	// FailureInvalidInput corresponds to ErrInvalidInput.
	FailureInvalidInput
	// FailureBlockedEndpoint corresponds to ErrBlockedEndpoint.
	FailureBlockedEndpoint
	// FailureUnreachable corresponds to ErrUnreachable.
	FailureUnreachable
	// FailureBufferTooSmall corresponds to ErrBufferTooSmall.
	FailureBufferTooSmall
	// FailureUnknown covers errors this package did not produce.
	FailureUnknown
)

var failureNames = [...]string{
	FailureNone:            "none",
	FailureInvalidInput:    "invalid_input",
	FailureBlockedEndpoint: "blocked_endpoint",
	FailureUnreachable:     "unreachable",
	FailureBufferTooSmall:  "buffer_too_small",
	FailureUnknown:         "unknown",
}

// String returns a snake_case label suitable for logs and metric labels.
func (f Failure) String() string {
	if f < 0 || int(f) >= len(failureNames) {
		return failureNames[FailureUnknown]
	}
	return failureNames[f]
}

// Reason maps an error returned by this package to its Failure.
// A nil error maps to FailureNone.
func Reason(err error) Failure {
	switch {
	case err == nil:
		return FailureNone
	case errors.Is(err, ErrInvalidInput):
		return FailureInvalidInput
	case errors.Is(err, ErrBlockedEndpoint):
		return FailureBlockedEndpoint
	case errors.Is(err, ErrUnreachable):
		return FailureUnreachable
	case errors.Is(err, ErrBufferTooSmall):
		return FailureBufferTooSmall
	default:
		return FailureUnknown
	}
}

// Option configures search behavior via functional arguments.
type Option func(*Options)

// Options holds callbacks observing a search. Hooks see every cell in
// the exact order the search touches it and cannot alter the outcome.
type Options struct {
	// OnEnqueue is called when a cell is first discovered and joins the
	// frontier. depth is its distance in steps from the start.
	OnEnqueue func(idx, depth int)

	// OnDequeue is called when a cell leaves the frontier for expansion.
	OnDequeue func(idx, depth int)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(int, int) {},
		OnDequeue: func(int, int) {},
	}
}

// WithOnEnqueue registers a callback to run on discovery.
func WithOnEnqueue(fn func(idx, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on expansion.
func WithOnDequeue(fn func(idx, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// Result holds the outcome of a successful search:
//   - Path: row-major cell indices from start to goal inclusive.
//   - Expanded: cells dequeued before the goal (goal included).
//   - Discovered: cells that ever entered the frontier.
type Result struct {
	Size       int
	Path       []int
	Expanded   int
	Discovered int
}

// Len returns the number of cells on the path.
func (r *Result) Len() int {
	return len(r.Path)
}

// Cells converts Path to (row, col) coordinates.
func (r *Result) Cells() []Cell {
	cells := make([]Cell, len(r.Path))
	for i, idx := range r.Path {
		cells[i] = Cell{Row: idx / r.Size, Col: idx % r.Size}
	}
	return cells
}
