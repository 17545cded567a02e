package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent render runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.History.Enabled {
				fmt.Fprintln(cmd.OutOrStdout(), "Render history is disabled in the configuration")
				return nil
			}

			store, err := ctx.openHistory()
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No render runs recorded yet")
				return nil
			}

			headers := []string{"When", "Scene", "Frames", "FPS", "Elapsed", "Sheet"}
			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				sheetCell := "-"
				if run.SheetPath != "" {
					sheetCell = run.SheetPath
				}
				rows = append(rows, []string{
					run.CreatedAt.Local().Format("2006-01-02 15:04"),
					run.Scene,
					strconv.Itoa(run.FrameCount),
					strconv.Itoa(run.FPS),
					fmt.Sprintf("%.1fs", run.ElapsedSeconds),
					sheetCell,
				})
			}

			aligns := []columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft}
			fmt.Fprintln(out, renderTable(headers, rows, aligns))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to show; 0 shows all")

	return cmd
}
