package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/blended-mgmt/internal/handler"
	"github.com/MKhiriev/blended-mgmt/internal/logger"
	"github.com/MKhiriev/blended-mgmt/internal/server"
	"github.com/MKhiriev/blended-mgmt/internal/service"
	"github.com/MKhiriev/blended-mgmt/internal/store"
)

func (c *cli) newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the bundle management API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			db, err := store.NewDB(ctx, c.cfg.Storage.DB, c.log)
			if err != nil {
				return err
			}
			defer db.Close()

			if err = db.Migrate(); err != nil {
				return err
			}

			services, err := service.NewServices(store.NewStorages(db, c.log), *c.cfg, c.log)
			if err != nil {
				return err
			}

			if err = importInventory(ctx, services.BundleService, c.cfg.Storage.Files.InventoryFile, c.log); err != nil {
				return err
			}

			handlers, err := handler.NewHandlers(services, c.cfg.Server, c.log)
			if err != nil {
				return err
			}

			srv, err := server.NewServer(handlers.HTTP.Init(), c.cfg.Server, c.log)
			if err != nil {
				return err
			}

			return srv.Run(ctx)
		},
	}
}

// importInventory seeds storage from the inventory file at path. No path or
// an empty inventory leaves storage as it is.
func importInventory(ctx context.Context, bundles service.BundleService, path string, log *logger.Logger) error {
	if path == "" {
		return nil
	}

	inventory, err := store.LoadInventory(path)
	if err != nil {
		return err
	}
	if len(inventory) == 0 {
		log.Info().Str("inventory", path).Msg("bundle inventory is empty, nothing to import")
		return nil
	}

	if err = bundles.ImportBundles(ctx, inventory...); err != nil {
		return err
	}

	log.Info().Str("inventory", path).Int("count", len(inventory)).Msg("bundle inventory imported")
	return nil
}
