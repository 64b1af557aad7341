package main

import (
	"os"

	"github.com/danmuck/ftlib/internal/demo"
	"github.com/danmuck/ftlib/internal/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal().Err(err).Msg("ftlib failed")
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:           "ftlib",
		Short:         "Run the length, visibility, and worker exercises",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadRunConfig(configPath)
			if err != nil {
				return err
			}
			logging.ApplyEnvOverrides(&cfg.Log)
			logging.Install(cfg.Log)
			return demo.Run(cmd.Context(), cmd.OutOrStdout(), cfg.Demo)
		},
	}
	cmd.SetOut(os.Stdout)
	cmd.Flags().StringVar(&configPath, "config", "", "optional TOML config path")
	return cmd
}
