package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-portfolio-panel/internal/logger"
)

type App struct {
	ui     UI
	logger *logger.Logger
}

func NewApp(ui UI, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errNoUI
	}
	return &App{ui: ui, logger: logger}, nil
}

func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	a.logger.Info().Msg("terminal panel started")
	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("terminal panel: %w", err)
	}
	a.logger.Info().Msg("terminal panel finished")

	return nil
}
