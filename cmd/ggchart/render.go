package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggchart/internal/app"
)

func newRenderCmd() *cobra.Command {
	var outputPath string
	cmd := &cobra.Command{
		Use:   "render [chart.toml]",
		Short: "Render a chart description to PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := args[0]
			out := outputPath
			if out == "" {
				out = strings.TrimSuffix(in, filepath.Ext(in)) + ".png"
			}
			if err := app.RenderFile(in, out); err != nil {
				return fmt.Errorf("render failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: input name with .png)")
	return cmd
}
