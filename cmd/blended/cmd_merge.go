package main

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/blended-mgmt/internal/build"
)

func (c *cli) newMergeCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "merge <fragment>...",
		Short: "Merge configuration fragments and print the effective fragment",
		Long: "Merge configuration fragments in order. Mappings merge recursively, " +
			"lists are concatenated and the last scalar wins. The result is printed " +
			"without applying the build schema.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := build.ParseFormat(format)
			if err != nil {
				return err
			}

			effective, err := build.MergeSources(args...)
			if err != nil {
				return err
			}

			data, err := build.Encode(effective, f)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(build.FormatJSON), "Output format (json, yaml)")

	return cmd
}
