package render

import (
	"encoding/json"
	"io"

	"github.com/katalvlaran/gridpath/solver"
)

// CellJSON is a cell with both its linear index and coordinates.
type CellJSON struct {
	Index int `json:"index"`
	Row   int `json:"row"`
	Col   int `json:"col"`
}

// PathJSON is the wire form of a solve outcome.
type PathJSON struct {
	N        int        `json:"n"`
	Start    CellJSON   `json:"start"`
	Goal     CellJSON   `json:"goal"`
	Length   int        `json:"length"`
	Path     []CellJSON `json:"path"`
	Expanded int        `json:"expanded,omitempty"`
	Failure  string     `json:"failure,omitempty"`
}

// NewPathJSON builds the wire form from a Find outcome. err == nil
// requires res != nil; otherwise Failure carries solver.Reason(err).
func NewPathJSON(n int, start, goal solver.Cell, res *solver.Result, err error) PathJSON {
	out := PathJSON{
		N:     n,
		Start: CellJSON{Index: start.Row*n + start.Col, Row: start.Row, Col: start.Col},
		Goal:  CellJSON{Index: goal.Row*n + goal.Col, Row: goal.Row, Col: goal.Col},
		Path:  []CellJSON{},
	}
	if err != nil {
		out.Failure = solver.Reason(err).String()
		return out
	}
	out.Length = res.Len()
	out.Expanded = res.Expanded
	for _, idx := range res.Path {
		out.Path = append(out.Path, CellJSON{Index: idx, Row: idx / n, Col: idx % n})
	}
	return out
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
