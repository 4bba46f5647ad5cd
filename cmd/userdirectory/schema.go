package main

import (
	"github.com/spf13/cobra"

	"user-directory-api/internal"
)

func newSchemaCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Create the database schema once and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return internal.InitSchema(cmd.Context(), rt.cfg, rt.logger)
		},
	}
}
