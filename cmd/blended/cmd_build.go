package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/blended-mgmt/internal/build"
)

func (c *cli) newBuildCommand() *cobra.Command {
	var (
		outDir string
		format string
	)

	cmd := &cobra.Command{
		Use:   "build <fragment>...",
		Short: "Write the effective build configuration",
		Long: "Merge configuration fragments, check them against the build schema " +
			"and write effective-config.<format> into the output directory. " +
			"Nothing is written when any step fails.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := build.ParseFormat(format)
			if err != nil {
				return err
			}

			res, err := build.Run(cmd.Context(), build.Options{
				Sources: args,
				OutDir:  outDir,
				Format:  f,
			}, c.log)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Path)
			return err
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", "dist", "Output directory")
	cmd.Flags().StringVarP(&format, "format", "f", string(build.FormatJSON), "Output format (json, yaml)")

	return cmd
}
