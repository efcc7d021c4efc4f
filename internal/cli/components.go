package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newComponentsCmd() *cobra.Command {
	var f sourceFlags
	cmd := &cobra.Command{
		Use:   "components",
		Short: "Report the connected regions of free cells",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runComponents(cmd.OutOrStdout(), &f)
		},
	}
	f.register(cmd)
	return cmd
}

func runComponents(w io.Writer, f *sourceFlags) error {
	sc, err := f.load()
	if err != nil {
		return err
	}
	g := sc.Grid
	comps := g.ConnectedComponents()
	fmt.Fprintf(w, "Grid %dx%d, %d walls, %d regions\n", g.Size, g.Size, g.Walls(), len(comps))
	for i, comp := range comps {
		r, c := g.Coordinate(comp[0])
		fmt.Fprintf(w, "  region %d: %d cells, first (%d,%d)\n", i, len(comp), r, c)
	}

	if g.InBounds(sc.Start.Row, sc.Start.Col) && g.InBounds(sc.Goal.Row, sc.Goal.Col) {
		joined := g.Connected(g.Index(sc.Start.Row, sc.Start.Col), g.Index(sc.Goal.Row, sc.Goal.Col))
		fmt.Fprintf(w, "start (%d,%d) and goal (%d,%d) connected: %v\n",
			sc.Start.Row, sc.Start.Col, sc.Goal.Row, sc.Goal.Col, joined)
	}
	return nil
}
