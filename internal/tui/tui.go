package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-portfolio-panel/internal/logger"
	"github.com/MKhiriev/go-portfolio-panel/internal/service"
	"github.com/MKhiriev/go-portfolio-panel/models"
	tea "github.com/charmbracelet/bubbletea"
)

// terminalSession is the tracker session of the terminal panel. There is one
// user per process, so one session suffices.
const terminalSession = "terminal"

type TUI struct {
	services  *service.Services
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.Services, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}
}

// Run shows the panel until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newPanelModel(ctx, t.services, t.buildInfo)

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		t.logger.Info().Msg("terminal panel stopped by context")
		return nil
	}
	return err
}
