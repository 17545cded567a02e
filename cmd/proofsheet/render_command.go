package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"proofsheet/internal/config"
	"proofsheet/internal/render"
	"proofsheet/internal/services/manim"
	"proofsheet/internal/sheet"
)

func newRenderCommand(ctx *commandContext) *cobra.Command {
	var (
		fps          int
		contactSheet bool
	)

	cmd := &cobra.Command{
		Use:   "render <file> <scene>",
		Short: "Delete stale frames and re-render a scene",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			sourcePath, err := config.ExpandPath(args[0])
			if err != nil {
				return fmt.Errorf("resolve source path: %w", err)
			}

			logger := ctx.logger()

			renderer, err := manim.New(cfg.Render.ManimBinary, cfg.Render.Quality, cfg.Render.TimeoutSeconds)
			if err != nil {
				return err
			}

			var sheets sheet.Renderer
			if contactSheet {
				sheets, err = ctx.sheetRenderer("", logger)
				if err != nil {
					return err
				}
			}

			store, err := ctx.openHistory()
			if err != nil {
				return err
			}
			if store != nil {
				defer store.Close()
			}

			refresher := render.New(cfg, logger, renderer, sheets, store)
			result, err := refresher.Run(cmd.Context(), render.Options{
				SourcePath:   sourcePath,
				SceneName:    args[1],
				FPS:          fps,
				ContactSheet: contactSheet,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			effectiveFPS := fps
			if effectiveFPS <= 0 {
				effectiveFPS = cfg.Render.FPS
			}
			fmt.Fprintf(out, "Rendered %d frames in %.1fs at %d FPS\n", result.FrameCount, result.Elapsed.Seconds(), effectiveFPS)
			if result.FrameCount > 0 {
				fmt.Fprintf(out, "Frame images: %s/%s to %s\n", result.FrameDir, result.FirstFrame, result.LastFrame)
			}
			if result.SheetPath != "" {
				fmt.Fprintf(out, "Contact sheet written to %s\n", result.SheetPath)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&fps, "fps", 0, "Frame rate passed to the renderer (defaults to configuration)")
	cmd.Flags().BoolVar(&contactSheet, "contact-sheet", false, "Compose a contact sheet after rendering")

	return cmd
}
