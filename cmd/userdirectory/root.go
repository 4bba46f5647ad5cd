package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"user-directory-api/config"
	"user-directory-api/internal"
)

// runtime holds what every subcommand needs after the root pre-run.
type runtime struct {
	envFile string
	cfg     config.Config
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	rt := &runtime{}

	cmd := &cobra.Command{
		Use:          "userdirectory",
		Short:        "User directory REST service",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rt.load()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if rt.logger != nil {
				_ = rt.logger.Sync()
			}
		},
	}
	cmd.PersistentFlags().StringVar(&rt.envFile, "env-file", ".env", "optional dotenv file loaded before reading the environment")

	cmd.AddCommand(newServeCmd(rt), newSchemaCmd(rt))

	return cmd
}

func (rt *runtime) load() error {
	// a missing .env is fine: real deployments pass plain env vars
	if err := godotenv.Load(rt.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", rt.envFile, err)
	}
	rt.cfg = config.Load()

	logger, err := internal.NewLogger(rt.cfg.App.Env)
	if err != nil {
		return fmt.Errorf("cannot initialize zap logger: %w", err)
	}
	rt.logger = logger

	return nil
}
