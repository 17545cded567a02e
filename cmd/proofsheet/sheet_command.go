package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"proofsheet/internal/config"
	"proofsheet/internal/sheet"
)

func newSheetCommand(ctx *commandContext) *cobra.Command {
	var (
		sceneName string
		output    string
		grid      string
		maxWidth  int
		fps       int
		gridColor string
		labelSize int
		backend   string
	)

	cmd := &cobra.Command{
		Use:   "sheet <frame-dir>",
		Short: "Compose a labeled contact sheet from rendered frames",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			dir, err := config.ExpandPath(args[0])
			if err != nil {
				return fmt.Errorf("resolve frame directory: %w", err)
			}

			gridSpec := strings.TrimSpace(grid)
			if gridSpec == "" {
				gridSpec = cfg.Sheet.Grid
			}
			cols, rows, err := sheet.ParseGrid(gridSpec)
			if err != nil {
				return err
			}

			colorSpec := strings.TrimSpace(gridColor)
			if colorSpec == "" {
				colorSpec = cfg.Sheet.GridColor
			}
			lineColor, err := sheet.ParseHexColor(colorSpec)
			if err != nil {
				return err
			}

			if maxWidth <= 0 {
				maxWidth = cfg.Sheet.MaxWidth
			}
			if labelSize <= 0 {
				labelSize = cfg.Sheet.LabelSize
			}

			logger := ctx.logger()
			renderer, err := ctx.sheetRenderer(backend, logger)
			if err != nil {
				return err
			}

			req := sheet.Request{
				Dir:       dir,
				SceneName: strings.TrimSpace(sceneName),
				Output:    strings.TrimSpace(output),
				Cols:      cols,
				Rows:      rows,
				MaxWidth:  maxWidth,
				FPS:       fps,
				LineColor: lineColor,
				LabelSize: labelSize,
			}

			written, err := renderer.Render(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Contact sheet written to %s\n", written)
			return nil
		},
	}

	cmd.Flags().StringVar(&sceneName, "scene-name", "", "Scene name used for the default output filename")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output filename inside the frame directory")
	cmd.Flags().StringVar(&grid, "grid", "", "Grid shape as COLSxROWS (defaults to configuration)")
	cmd.Flags().IntVar(&maxWidth, "max-width", 0, "Maximum cell width in pixels (defaults to configuration)")
	cmd.Flags().IntVar(&fps, "fps", 0, "Frame rate used for timing labels; 0 omits timings")
	cmd.Flags().StringVar(&gridColor, "grid-color", "", "Grid line color as a six digit hex value")
	cmd.Flags().IntVar(&labelSize, "label-size", 0, "Label font size in points")
	cmd.Flags().StringVar(&backend, "backend", "", "Compositor backend: auto, native, or montage")

	return cmd
}
