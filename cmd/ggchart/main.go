// Command ggchart renders and displays line charts described in TOML files.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/surface"
)

var verbose bool

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ggchart",
		Short: "Render line charts from TOML descriptions",
		Long: `ggchart draws the line charts described in a TOML file, either to a
PNG image or into a desktop window that follows edits to the file.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				ggchart.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log diagnostics to stderr")

	rootCmd.AddCommand(newRenderCmd(), newViewCmd(), newBackendsCmd())
	return rootCmd
}

func newBackendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List surface backends in priority order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, b := range surface.Backends() {
				if b.Available() {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\tavailable\n", b.Name)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\tunavailable: %v\n", b.Name, b.Err)
			}
			return nil
		},
	}
}
