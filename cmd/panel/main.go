package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-portfolio-panel/internal/adapter"
	"github.com/MKhiriev/go-portfolio-panel/internal/config"
	"github.com/MKhiriev/go-portfolio-panel/internal/handler"
	"github.com/MKhiriev/go-portfolio-panel/internal/logger"
	"github.com/MKhiriev/go-portfolio-panel/internal/server"
	"github.com/MKhiriev/go-portfolio-panel/internal/service"
	"github.com/MKhiriev/go-portfolio-panel/internal/workers"
	"github.com/MKhiriev/go-portfolio-panel/models"
	"go.uber.org/automaxprocs/maxprocs"
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

	cfg, err := config.GetPanelConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("go-portfolio-panel", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("go-portfolio-panel", cfg.App.LogLevel)
	log.Debug().Any("config", cfg).Msg("received configs")

	if _, err = maxprocs.Set(maxprocs.Logger(log.Printf)); err != nil {
		log.Warn().Err(err).Msg("error setting GOMAXPROCS")
	}

	optimizer, err := adapter.NewHTTPOptimizerAdapter(cfg.Backend, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating optimizer adapter")
	}

	services := service.NewServices(optimizer, buildInfo, log)

	handlers, err := handler.NewHandlers(services, buildInfo, cfg.Panel, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	bgWorkers := []workers.Worker{
		workers.NewPruneWorker("sessions", services.Tracker, cfg.Panel.SessionTTL, cfg.Panel.PruneInterval, log),
	}
	if limiter := handlers.HTTP.RateLimiter(); limiter != nil {
		bgWorkers = append(bgWorkers,
			workers.NewPruneWorker("rate-limit", limiter, cfg.Panel.SessionTTL, cfg.Panel.PruneInterval, log))
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(bgWorkers...), cfg.Panel, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
