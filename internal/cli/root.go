// Package cli wires the gridpath commands.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/scenario"
	"github.com/katalvlaran/gridpath/solver"
)

type globalFlags struct {
	debug bool
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	var g globalFlags
	root := &cobra.Command{
		Use:   "gridpath",
		Short: "Shortest paths on square occupancy grids",
		Long: `gridpath finds the shortest 4-directional path between two cells of a
square grid using breadth-first search.

Examples:
  # Solve the built-in 20x20 scene
  gridpath solve

  # Solve an HCL scenario and print JSON
  gridpath solve --scenario maze.hcl --format json

  # Solve a text maze ('#' wall, '.' free, 'S' start, 'G' goal)
  gridpath solve --grid maze.txt

  # Watch the frontier grow one expansion at a time
  gridpath solve --grid maze.txt --steps

  # Serve POST /solve and /metrics
  gridpath serve --addr :8080`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			setupLogging(cmd.ErrOrStderr(), g.debug)
		},
	}
	root.PersistentFlags().BoolVar(&g.debug, "debug", false, "Enable debug logging")

	root.AddCommand(newSolveCmd(), newComponentsCmd(), newServeCmd())
	return root
}

// Execute runs the root command and exits 1 on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging(w io.Writer, debug bool) {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
}

// sourceFlags select where a grid comes from; shared by solve and components.
type sourceFlags struct {
	scenarioPath string
	gridPath     string
	start        string
	goal         string
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.scenarioPath, "scenario", "", "HCL scenario file")
	cmd.Flags().StringVar(&f.gridPath, "grid", "", "Text grid file ('#' wall, '.' free, 'S' start, 'G' goal)")
	cmd.Flags().StringVar(&f.start, "start", "", "Start cell as row,col (overrides the source)")
	cmd.Flags().StringVar(&f.goal, "goal", "", "Goal cell as row,col (overrides the source)")
	cmd.MarkFlagsMutuallyExclusive("scenario", "grid")
}

// load resolves the scenario named by the flags, falling back to the
// built-in default scene.
func (f *sourceFlags) load() (*scenario.Scenario, error) {
	var sc *scenario.Scenario
	switch {
	case f.scenarioPath != "":
		loaded, err := scenario.Load(f.scenarioPath)
		if err != nil {
			return nil, err
		}
		sc = loaded
	case f.gridPath != "":
		loaded, err := loadTextGrid(f.gridPath)
		if err != nil {
			return nil, err
		}
		sc = loaded
	default:
		sc = scenario.Default()
	}

	if f.start != "" {
		c, err := parseCell(f.start)
		if err != nil {
			return nil, fmt.Errorf("--start: %w", err)
		}
		sc.Start = c
	}
	if f.goal != "" {
		c, err := parseCell(f.goal)
		if err != nil {
			return nil, fmt.Errorf("--goal: %w", err)
		}
		sc.Goal = c
	}
	return sc, nil
}

func loadTextGrid(path string) (*scenario.Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read grid file: %w", err)
	}
	g, mk, err := gridgraph.ParseRows(strings.Split(string(data), "\n"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse grid file %s: %w", path, err)
	}
	sc := &scenario.Scenario{Name: path, Grid: g, MaxLen: g.Len()}
	if mk.HasStart {
		sc.Start = mk.Start
	}
	if mk.HasGoal {
		sc.Goal = mk.Goal
	} else {
		sc.Goal = solver.Cell{Row: g.Size - 1, Col: g.Size - 1}
	}
	return sc, nil
}

// parseCell reads "row,col".
func parseCell(s string) (solver.Cell, error) {
	rs, cs, ok := strings.Cut(s, ",")
	if !ok {
		return solver.Cell{}, fmt.Errorf("want row,col, got %q", s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return solver.Cell{}, fmt.Errorf("bad row in %q: %w", s, err)
	}
	c, err := strconv.Atoi(strings.TrimSpace(cs))
	if err != nil {
		return solver.Cell{}, fmt.Errorf("bad col in %q: %w", s, err)
	}
	return solver.Cell{Row: r, Col: c}, nil
}
