package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"proofsheet/internal/deps"
	"proofsheet/internal/services"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check availability of external tools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			statuses := deps.CheckBinaries(deps.Default(cfg))

			headers := []string{"Dependency", "Command", "Available", "Notes"}
			rows := make([][]string, 0, len(statuses))
			missingRequired := false
			for _, status := range statuses {
				notes := status.Description
				if !status.Available && status.Detail != "" {
					notes = status.Detail
				}
				if !status.Available && !status.Optional {
					missingRequired = true
				}
				rows = append(rows, []string{
					status.Name,
					status.Command,
					yesNo(status.Available),
					notes,
				})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, nil))

			if missingRequired {
				return services.Wrap(services.ErrUnavailable, "deps", "check", "required external tools are missing", nil)
			}
			return nil
		},
	}
}
