package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/internal/server"
)

func newServeCmd() *cobra.Command {
	var (
		addr     string
		maxCells int
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve POST /solve, GET /metrics and GET /healthz",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

			s, err := server.New(slog.Default(), reg, server.Options{MaxCells: maxCells})
			if err != nil {
				return err
			}
			return s.Run(ctx, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	cmd.Flags().IntVar(&maxCells, "max-cells", server.DefaultMaxCells, "Largest grid (n*n) accepted per request")
	return cmd
}
