package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"user-directory-api/internal"
)

func newServeCmd(rt *runtime) *cobra.Command {
	var initSchema bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Start the HTTP API. Usage:

	userdirectory serve [--init-schema]
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := internal.NewApp(ctx, rt.cfg, rt.logger)
			if err != nil {
				rt.logger.Error("init app failed", zap.Error(err))
				return err
			}
			defer app.Close()

			if initSchema {
				if err = app.EnsureSchema(ctx); err != nil {
					rt.logger.Error("schema init failed", zap.Error(err))
					return err
				}
			}

			app.InitControllers()

			return app.Run(ctx)
		},
	}
	cmd.Flags().BoolVar(&initSchema, "init-schema", false, "create the users table before serving if it does not exist")

	return cmd
}
