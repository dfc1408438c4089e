package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-portfolio-panel/internal/adapter"
	"github.com/MKhiriev/go-portfolio-panel/internal/client"
	"github.com/MKhiriev/go-portfolio-panel/internal/config"
	"github.com/MKhiriev/go-portfolio-panel/internal/logger"
	"github.com/MKhiriev/go-portfolio-panel/internal/service"
	"github.com/MKhiriev/go-portfolio-panel/internal/tui"
	"github.com/MKhiriev/go-portfolio-panel/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	for _, line := range buildInfo.Lines() {
		fmt.Println(line)
	}

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewFileLogger("go-portfolio-client", cfg.LogLevel, cfg.LogFile)

	optimizer, err := adapter.NewHTTPOptimizerAdapter(cfg.Backend, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating optimizer adapter")
	}

	services := service.NewServices(optimizer, buildInfo, log)
	ui := tui.New(services, buildInfo, log)

	app, err := client.NewApp(ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
