package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"proofsheet/internal/docs"
)

func newDocsCommand(ctx *commandContext) *cobra.Command {
	docsCmd := &cobra.Command{
		Use:   "docs",
		Short: "Documentation tooling",
	}

	docsCmd.AddCommand(newDocsSyncCommand(ctx))

	return docsCmd
}

func newDocsSyncCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Refresh the curated markdown documentation set",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			syncer := docs.NewSyncer(cfg, ctx.logger())
			if err := syncer.Sync(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Documentation synced to %s\n", cfg.Docs.OutDir)
			return nil
		},
	}
}
