package solver

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Snapshot exposes the search state after one step. Slices are copies and
// may be kept or modified by the caller.
type Snapshot struct {
	StepIndex int   // steps taken so far
	Current   int   // cell dequeued by this step, -1 if none
	Frontier  []int // discovered, not yet expanded, in FIFO order
	Closed    []int // dequeued cells, in dequeue order
	Done      bool
	Found     bool
	Path      []int // start→goal once Found
}

// Stepper runs the search one dequeued cell at a time. It visits cells in
// exactly the order Find does, so a finished Stepper yields Find's path.
// A Stepper is not safe for concurrent use.
type Stepper struct {
	s     *search
	start Cell
	goal  Cell
	steps int
}

// NewStepper validates the endpoints like Find and seeds the frontier with
// the start cell.
func NewStepper(g *gridgraph.Grid, start, goal Cell, opts ...Option) (*Stepper, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: grid is nil", ErrInvalidInput)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	si, gi, err := endpoints(g, start, goal)
	if err != nil {
		return nil, err
	}

	return &Stepper{s: newSearch(g, si, gi, o), start: start, goal: goal}, nil
}

// Done reports whether the goal was reached or the frontier is exhausted.
func (st *Stepper) Done() bool {
	return st.s.done()
}

// Step expands one cell and returns the resulting state. Once Done, Step
// makes no progress and returns the final state with Current == -1.
func (st *Stepper) Step() Snapshot {
	cur := -1
	if !st.s.done() {
		cur = st.s.step()
		st.steps++
	}
	return st.snapshot(cur)
}

// Run steps until Done and returns the final state.
func (st *Stepper) Run() Snapshot {
	cur := -1
	for !st.s.done() {
		cur = st.s.step()
		st.steps++
	}
	return st.snapshot(cur)
}

// Result finishes the search if needed and returns it the way Find would
// with no length cap.
func (st *Stepper) Result() (*Result, error) {
	st.Run()
	if !st.s.found {
		return nil, fmt.Errorf("%w: from %v to %v", ErrUnreachable, st.start, st.goal)
	}
	return st.s.result(), nil
}

func (st *Stepper) snapshot(cur int) Snapshot {
	s := st.s
	snap := Snapshot{
		StepIndex: st.steps,
		Current:   cur,
		Frontier:  append([]int(nil), s.queue[s.head:]...),
		Closed:    append([]int(nil), s.queue[:s.head]...),
		Done:      s.done(),
		Found:     s.found,
	}
	if s.found {
		snap.Path = make([]int, s.pathLen())
		s.emit(snap.Path)
	}
	return snap
}
