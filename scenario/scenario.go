package scenario

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/solver"
)

var (
	// ErrDecode indicates HCL syntax or schema errors.
	ErrDecode = errors.New("scenario: cannot decode")
	// ErrInvalidScenario indicates a well-formed file describing an impossible grid.
	ErrInvalidScenario = errors.New("scenario: invalid scenario")
)

// DefaultSize is the side of the grid returned by Default.
const DefaultSize = 20

// Scenario is one decoded pathfinding query.
type Scenario struct {
	Name   string
	Grid   *gridgraph.Grid
	Start  solver.Cell
	Goal   solver.Cell
	MaxLen int
}

// Default returns the stock scene: an empty 20×20 grid from (2,2) to (17,17).
func Default() *Scenario {
	g, _ := gridgraph.New(DefaultSize)
	return &Scenario{
		Name:   "default",
		Grid:   g,
		Start:  solver.Cell{Row: 2, Col: 2},
		Goal:   solver.Cell{Row: 17, Col: 17},
		MaxLen: DefaultSize * DefaultSize,
	}
}

// Solve runs solver.FindOnGrid on the scenario.
func (s *Scenario) Solve(opts ...solver.Option) (*solver.Result, error) {
	return solver.FindOnGrid(s.Grid, s.Start, s.Goal, s.MaxLen, opts...)
}

// hclScenarioFile is the top-level structure of a scenario file for decoding.
type hclScenarioFile struct {
	Grid   hclGrid        `hcl:"grid,block"`
	Start  *hclCell       `hcl:"start,block"`
	Goal   *hclCell       `hcl:"goal,block"`
	MaxLen hcl.Expression `hcl:"max_len,optional"`
}

type hclGrid struct {
	Size  int            `hcl:"size"`
	Rows  []string       `hcl:"rows,optional"`
	Walls hcl.Expression `hcl:"walls,optional"`
}

type hclCell struct {
	Row int `hcl:"row"`
	Col int `hcl:"col"`
}

// Load parses and decodes a single HCL scenario file.
func Load(filePath string) (*Scenario, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filePath)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to parse HCL file %s: %s", ErrDecode, filePath, diags.Error())
	}
	return decode(file, filePath)
}

// Parse decodes scenario source held in memory. filename is used only in
// diagnostics.
func Parse(src []byte, filename string) (*Scenario, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to parse HCL file %s: %s", ErrDecode, filename, diags.Error())
	}
	return decode(file, filename)
}

func decode(file *hcl.File, filename string) (*Scenario, error) {
	var parsed hclScenarioFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to decode HCL file %s: %s", ErrDecode, filename, diags.Error())
	}

	n := parsed.Grid.Size
	area, ok := gridgraph.Area(n)
	if !ok {
		return nil, fmt.Errorf("%w: %s: grid size %d", ErrInvalidScenario, filename, n)
	}
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{"size": cty.NumberIntVal(int64(n))},
	}

	blocked := make([]int, area)
	var mk gridgraph.Markers
	if len(parsed.Grid.Rows) > 0 {
		rows, markers, err := gridgraph.ParseRows(parsed.Grid.Rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: rows: %w", ErrInvalidScenario, filename, err)
		}
		if rows.Size != n {
			return nil, fmt.Errorf("%w: %s: rows describe a %d×%d grid, size is %d", ErrInvalidScenario, filename, rows.Size, rows.Size, n)
		}
		copy(blocked, rows.Cells())
		mk = markers
	}

	start, err := endpoint("start", parsed.Start, mk.Start, mk.HasStart)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidScenario, filename, err)
	}
	goal, err := endpoint("goal", parsed.Goal, mk.Goal, mk.HasGoal)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidScenario, filename, err)
	}

	walls, err := decodeWalls(parsed.Grid.Walls, evalCtx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, filename, err)
	}
	for _, w := range walls {
		if w.Row < 0 || w.Row >= n || w.Col < 0 || w.Col >= n {
			return nil, fmt.Errorf("%w: %s: wall %v outside [0,%d)", ErrInvalidScenario, filename, w, n)
		}
		blocked[w.Row*n+w.Col] = 1
	}

	maxLen := area
	if v, ok, err := decodeOptionalInt(parsed.MaxLen, evalCtx); err != nil {
		return nil, fmt.Errorf("%w: %s: max_len: %w", ErrDecode, filename, err)
	} else if ok {
		if v < 1 {
			return nil, fmt.Errorf("%w: %s: max_len %d, want at least 1", ErrInvalidScenario, filename, v)
		}
		maxLen = v
	}

	g, err := gridgraph.Wrap(n, blocked)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidScenario, filename, err)
	}

	return &Scenario{
		Name:   filename,
		Grid:   g,
		Start:  start,
		Goal:   goal,
		MaxLen: maxLen,
	}, nil
}

// endpoint picks a cell from its block or its row marker. Both may be given
// only when they agree.
func endpoint(name string, block *hclCell, marker solver.Cell, hasMarker bool) (solver.Cell, error) {
	switch {
	case block == nil && !hasMarker:
		return solver.Cell{}, fmt.Errorf("no %s block or marker in rows", name)
	case block == nil:
		return marker, nil
	}
	c := solver.Cell{Row: block.Row, Col: block.Col}
	if hasMarker && c != marker {
		return solver.Cell{}, fmt.Errorf("%s block %v disagrees with marker at %v", name, c, marker)
	}
	return c, nil
}

// decodeWalls evaluates a list of [row, col] pairs. A missing attribute
// decodes to no walls.
func decodeWalls(expr hcl.Expression, evalCtx *hcl.EvalContext) ([]gridgraph.Cell, error) {
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return nil, fmt.Errorf("walls: %s", diags.Error())
	}
	if val.IsNull() {
		return nil, nil
	}
	ty := val.Type()
	if !ty.IsListType() && !ty.IsTupleType() {
		return nil, fmt.Errorf("walls: want a list of [row, col] pairs, got %s", ty.FriendlyName())
	}

	var cells []gridgraph.Cell
	for i, it := 0, val.ElementIterator(); it.Next(); i++ {
		_, pair := it.Element()
		rc, err := decodePair(pair)
		if err != nil {
			return nil, fmt.Errorf("walls[%d]: %w", i, err)
		}
		cells = append(cells, rc)
	}
	return cells, nil
}

// decodePair converts a two-element list or tuple of whole numbers.
func decodePair(pair cty.Value) (gridgraph.Cell, error) {
	ty := pair.Type()
	if pair.IsNull() || (!ty.IsListType() && !ty.IsTupleType()) || pair.LengthInt() != 2 {
		return gridgraph.Cell{}, errors.New("want [row, col]")
	}
	var rc [2]int
	for i, it := 0, pair.ElementIterator(); it.Next(); i++ {
		_, v := it.Element()
		if err := gocty.FromCtyValue(v, &rc[i]); err != nil {
			return gridgraph.Cell{}, err
		}
	}
	return gridgraph.Cell{Row: rc[0], Col: rc[1]}, nil
}

// decodeOptionalInt evaluates expr as a whole number; ok is false when the
// attribute was omitted.
func decodeOptionalInt(expr hcl.Expression, evalCtx *hcl.EvalContext) (v int, ok bool, err error) {
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return 0, false, errors.New(diags.Error())
	}
	if val.IsNull() {
		return 0, false, nil
	}
	if err := gocty.FromCtyValue(val, &v); err != nil {
		return 0, false, err
	}
	return v, true, nil
}
