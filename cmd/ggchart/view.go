package main

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/config"
	"github.com/gogpu/ggchart/internal/viewer"
	"github.com/gogpu/ggchart/metrics"
)

func newViewCmd() *cobra.Command {
	var (
		watch       bool
		metricsAddr string
	)
	cmd := &cobra.Command{
		Use:   "view [chart.toml]",
		Short: "Show a chart description in a window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			f, err := config.Load(path)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			opts := viewer.Options{Title: "ggchart - " + filepath.Base(path)}
			if watch {
				reloads, err := config.Watch(ctx, path)
				if err != nil {
					return err
				}
				opts.Reloads = reloads
			}
			if metricsAddr != "" {
				obs, err := metrics.NewObserver(prometheus.DefaultRegisterer)
				if err != nil {
					return err
				}
				opts.ChartOptions = append(opts.ChartOptions, ggchart.WithFrameObserver(obs))

				srv := &http.Server{Addr: metricsAddr, Handler: metrics.Handler(prometheus.DefaultGatherer)}
				go func() {
					if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						ggchart.Logger().Error("metrics server failed", "addr", metricsAddr, "err", err)
					}
				}()
				defer srv.Close()
			}
			return viewer.Run(f, opts)
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Reload the chart when the file changes")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090)")
	return cmd
}
