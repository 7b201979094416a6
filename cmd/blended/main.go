package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/blended-mgmt/internal/logger"
	"github.com/MKhiriev/blended-mgmt/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("blended")
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand(buildInfo, log).ExecuteContext(ctx); err != nil {
		log.Err(err).Msg("command failed")
		stop()
		os.Exit(1)
	}
}
