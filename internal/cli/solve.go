package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/internal/render"
	"github.com/katalvlaran/gridpath/solver"
)

type solveFlags struct {
	source sourceFlags
	maxLen int
	format string
	steps  bool
}

func newSolveCmd() *cobra.Command {
	var f solveFlags
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Find the shortest path between start and goal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSolve(cmd.OutOrStdout(), &f)
		},
	}
	f.source.register(cmd)
	cmd.Flags().IntVar(&f.maxLen, "max-len", 0, "Maximum path length in cells (default: from source, else n*n)")
	cmd.Flags().StringVar(&f.format, "format", "text", "Output format: text, json")
	cmd.Flags().BoolVar(&f.steps, "steps", false, "Print the grid after every expansion (text only)")
	return cmd
}

func runSolve(w io.Writer, f *solveFlags) error {
	if f.format != "text" && f.format != "json" {
		return fmt.Errorf("unknown format: %s (must be text or json)", f.format)
	}
	sc, err := f.source.load()
	if err != nil {
		return err
	}
	if f.maxLen > 0 {
		sc.MaxLen = f.maxLen
	}
	slog.Debug("Solving",
		"source", sc.Name,
		"n", sc.Grid.Size,
		"start", sc.Start.String(),
		"goal", sc.Goal.String(),
		"maxLen", sc.MaxLen)

	scene := render.Scene{Grid: sc.Grid, Start: sc.Start, Goal: sc.Goal}
	if f.steps && f.format == "text" {
		st, err := solver.NewStepper(sc.Grid, sc.Start, sc.Goal)
		if err != nil {
			slog.Warn("Skipping --steps", "error", err)
			fmt.Fprintf(w, "Steps skipped (%s)\n", solver.Reason(err))
		} else if err := printSteps(w, st, scene); err != nil {
			return err
		}
	}

	res, solveErr := sc.Solve(solver.WithOnDequeue(func(idx, depth int) {
		slog.Debug("Expand", "cell", idx, "depth", depth)
	}))

	switch f.format {
	case "json":
		if err := render.JSON(w, render.NewPathJSON(sc.Grid.Size, sc.Start, sc.Goal, res, solveErr)); err != nil {
			return err
		}
	default:
		var status string
		if solveErr == nil {
			scene.Path = res.Path
			status = fmt.Sprintf("Solved! path_len=%d", res.Len())
		} else {
			status = fmt.Sprintf("No path (%s)", solver.Reason(solveErr))
		}
		if err := render.Text(w, scene); err != nil {
			return err
		}
		fmt.Fprintln(w, render.Status(scene, status))
	}

	if solveErr != nil {
		return fmt.Errorf("solve failed: %w", solveErr)
	}
	slog.Info("Solve complete", "length", res.Len(), "expanded", res.Expanded)
	return nil
}

// printSteps runs st to completion, drawing the frontier and
// closed sets after each expansion.
func printSteps(w io.Writer, st *solver.Stepper, scene render.Scene) error {
	for !st.Done() {
		snap := st.Step()
		fmt.Fprintf(w, "[Step %d] cell %d\n", snap.StepIndex, snap.Current)
		if err := render.Text(w, scene.WithSnapshot(snap)); err != nil {
			return err
		}
		fmt.Fprintln(w, render.Status(scene, fmt.Sprintf("Open=%d Closed=%d", len(snap.Frontier), len(snap.Closed))))
		fmt.Fprintln(w)
	}
	return nil
}
