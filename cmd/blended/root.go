package main

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/blended-mgmt/internal/config"
	"github.com/MKhiriev/blended-mgmt/internal/logger"
	"github.com/MKhiriev/blended-mgmt/models"
)

// cli holds state shared by all subcommands. cfg is filled in by the root
// command's PersistentPreRunE.
type cli struct {
	buildInfo models.AppBuildInfo
	cfg       *config.StructuredConfig
	log       *logger.Logger
}

func newRootCommand(buildInfo models.AppBuildInfo, log *logger.Logger) *cobra.Command {
	c := &cli{buildInfo: buildInfo, log: log}

	root := &cobra.Command{
		Use:           "blended",
		Short:         "Build configuration and bundle management tooling for the blended UI",
		Version:       buildInfo.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.loadConfig(cmd)
		},
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		c.newMergeCommand(),
		c.newBuildCommand(),
		c.newDevCommand(),
		c.newServeCommand(),
		c.newBundlesCommand(),
	)

	return root
}

func (c *cli) loadConfig(cmd *cobra.Command) error {
	cfg, err := config.GetStructuredConfig(cmd.Flags())
	if err != nil {
		return err
	}
	if cfg.App.Version == "" {
		cfg.App.Version = c.buildInfo.BuildVersion()
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		return err
	}

	c.cfg = cfg
	c.log.Debug().Any("config", cfg).Msg("received configs")
	return nil
}
