package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/blended-mgmt/internal/adapter"
	"github.com/MKhiriev/blended-mgmt/internal/app"
	"github.com/MKhiriev/blended-mgmt/internal/logger"
	"github.com/MKhiriev/blended-mgmt/internal/workers"
	"github.com/MKhiriev/blended-mgmt/models"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func (c *cli) newBundlesCommand() *cobra.Command {
	var (
		id    int64
		watch time.Duration
	)

	cmd := &cobra.Command{
		Use:   "bundles",
		Short: "List the bundles installed in a blended container",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resource := adapter.NewBundleResource(c.cfg.Adapter, c.log)
			if watch > 0 {
				watchBundles(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(),
					resource, c.cfg.Adapter.BundlesEndpoint, watch, c.log)
				return nil
			}
			return showBundles(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(),
				resource, c.cfg.Adapter.BundlesEndpoint, id)
		},
	}
	cmd.Flags().Int64Var(&id, "id", -1, "Show a single bundle by id")
	cmd.Flags().DurationVarP(&watch, "watch", "w", 0, "Refresh the list on this interval until interrupted")
	cmd.MarkFlagsMutuallyExclusive("id", "watch")

	return cmd
}

// showBundles fetches the bundle list, or a single bundle when id is not
// negative, and renders it to out. A failed fetch reports its HTTP status to
// errOut and returns the error.
func showBundles(ctx context.Context, out, errOut io.Writer, resource adapter.BundleResource, endpoint string, id int64) error {
	var (
		bundles []models.BundleInfo
		err     error
	)
	if id >= 0 {
		var bundle models.BundleInfo
		bundle, err = resource.FetchBundle(ctx, endpoint, id)
		bundles = []models.BundleInfo{bundle}
	} else {
		_, err = resource.Fetch(ctx, endpoint)
		bundles = resource.Current()
	}
	if err != nil {
		fmt.Fprintln(errOut, fetchFailure(err))
		return err
	}

	if len(bundles) == 0 {
		_, err = fmt.Fprintln(out, app.MsgNoBundles)
		return err
	}

	_, err = fmt.Fprintln(out, renderBundles(bundles))
	return err
}

// watchBundles re-renders the list every interval until ctx is done. A
// failed refresh reports its status and keeps showing the last good list.
func watchBundles(ctx context.Context, out, errOut io.Writer, resource adapter.BundleResource, endpoint string, interval time.Duration, log *logger.Logger) {
	refresher := workers.NewBundleRefresher(resource, endpoint, interval, func(bundles []models.BundleInfo, err error) {
		if err != nil {
			fmt.Fprintln(errOut, fetchFailure(err))
		}
		if len(bundles) == 0 {
			fmt.Fprintln(out, app.MsgNoBundles)
			return
		}
		fmt.Fprintln(out, renderBundles(bundles))
	}, log)

	workers.NewWorkers(refresher).Run(ctx)
}

func fetchFailure(err error) string {
	var fetchErr *adapter.FetchError
	if errors.As(err, &fetchErr) && fetchErr.StatusCode != 0 {
		return fmt.Sprintf("%s: %d %s", app.MsgFetchFailed, fetchErr.StatusCode, http.StatusText(fetchErr.StatusCode))
	}
	return fmt.Sprintf("%s: %v", app.MsgFetchFailed, err)
}

func renderBundles(bundles []models.BundleInfo) string {
	rows := make([][]string, 0, len(bundles))
	for _, b := range bundles {
		rows = append(rows, []string{strconv.FormatInt(b.BundleID, 10), b.SymbolicName})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("ID", "SYMBOLIC NAME").
		Rows(rows...).
		Render()
}
