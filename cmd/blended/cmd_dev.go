package main

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/blended-mgmt/internal/build"
	"github.com/MKhiriev/blended-mgmt/internal/config"
	"github.com/MKhiriev/blended-mgmt/internal/devserver"
	"github.com/MKhiriev/blended-mgmt/internal/server"
)

func (c *cli) newDevCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dev <fragment>...",
		Short: "Serve build output and proxy API calls as configured in devServer",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			buildCfg, err := build.Resolve(ctx, args...)
			if err != nil {
				return err
			}

			handler, err := devserver.NewHandler(ctx, buildCfg, c.log)
			if err != nil {
				return err
			}

			srv, err := server.NewServer(handler, config.Server{
				HTTPAddress: devserver.Address(buildCfg),
			}, c.log)
			if err != nil {
				return err
			}

			return srv.Run(ctx)
		},
	}
}
