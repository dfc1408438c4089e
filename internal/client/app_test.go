package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-portfolio-panel/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUI struct {
	err    error
	called bool
}

func (s *stubUI) Run(ctx context.Context) error {
	s.called = true
	return s.err
}

func TestNewApp_NilUI(t *testing.T) {
	app, err := NewApp(nil, logger.Nop())
	assert.Nil(t, app)
	assert.ErrorIs(t, err, errNoUI)
}

func TestApp_Run(t *testing.T) {
	ui := &stubUI{}
	app, err := NewApp(ui, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, app.Run(context.Background()))
	assert.True(t, ui.called)
}

func TestApp_Run_WrapsUIError(t *testing.T) {
	boom := errors.New("boom")
	app, err := NewApp(&stubUI{err: boom}, logger.Nop())
	require.NoError(t, err)

	err = app.Run(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "terminal panel")
}
