package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-portfolio-panel/internal/adapter"
	"github.com/MKhiriev/go-portfolio-panel/internal/logger"
	"github.com/MKhiriev/go-portfolio-panel/internal/mock"
	"github.com/MKhiriev/go-portfolio-panel/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSubmissionSvc(t *testing.T, ctrl *gomock.Controller) (*submissionService, *mock.MockOptimizerAdapter, *RequestTracker) {
	t.Helper()
	mockAdapter := mock.NewMockOptimizerAdapter(ctrl)
	tracker := newTestTracker(nil)

	svc := NewSubmissionService(mockAdapter, tracker, logger.Nop()).(*submissionService)
	return svc, mockAdapter, tracker
}

func TestSubmissionService_Submit_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestSubmissionSvc(t, ctrl)
	req := models.OptimizationRequest{Tickers: "AAPL, MSFT"}
	want := models.OptimizationResult{
		Selected:       []string{"AAPL", "MSFT"},
		ExpectedReturn: 0.12,
		Risk:           0.02,
		Method:         "qaoa",
		JobID:          "job-1",
	}

	mockAdapter.EXPECT().Optimize(gomock.Any(), req).Return(want, nil)

	got, err := svc.Submit(context.Background(), "s", req)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSubmissionService_Submit_PassesAdapterErrorThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestSubmissionSvc(t, ctrl)
	serverErr := &adapter.ServerError{Op: "optimize", Message: "no tickers"}

	mockAdapter.EXPECT().Optimize(gomock.Any(), gomock.Any()).Return(models.OptimizationResult{}, serverErr)

	_, err := svc.Submit(context.Background(), "s", models.OptimizationRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrServer)

	var se *adapter.ServerError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "no tickers", se.Message)
}

func TestSubmissionService_Submit_SupersededByNewerSubmission(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestSubmissionSvc(t, ctrl)
	first := models.OptimizationRequest{Tickers: "OLD"}
	second := models.OptimizationRequest{Tickers: "NEW"}

	started := make(chan struct{})
	release := make(chan struct{})

	mockAdapter.EXPECT().Optimize(gomock.Any(), first).DoAndReturn(
		func(ctx context.Context, _ models.OptimizationRequest) (models.OptimizationResult, error) {
			close(started)
			<-release
			// the older request observes cancellation from the newer Begin
			assert.ErrorIs(t, ctx.Err(), context.Canceled)
			return models.OptimizationResult{JobID: "old"}, nil
		},
	)
	mockAdapter.EXPECT().Optimize(gomock.Any(), second).Return(models.OptimizationResult{JobID: "new"}, nil)

	type outcome struct {
		res models.OptimizationResult
		err error
	}
	firstDone := make(chan outcome, 1)
	go func() {
		res, err := svc.Submit(context.Background(), "s", first)
		firstDone <- outcome{res, err}
	}()

	<-started
	got, err := svc.Submit(context.Background(), "s", second)
	require.NoError(t, err)
	assert.Equal(t, "new", got.JobID)

	close(release)
	old := <-firstDone
	assert.ErrorIs(t, old.err, ErrSuperseded)
	assert.Empty(t, old.res.JobID)
}

func TestSubmissionService_Submit_OtherSessionNotSuperseded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, tracker := newTestSubmissionSvc(t, ctrl)

	mockAdapter.EXPECT().Optimize(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ models.OptimizationRequest) (models.OptimizationResult, error) {
			// a submission in another session must not cancel this one
			_, _ = tracker.Begin(context.Background(), "other")
			assert.NoError(t, ctx.Err())
			return models.OptimizationResult{JobID: "mine"}, nil
		},
	)

	got, err := svc.Submit(context.Background(), "s", models.OptimizationRequest{Tickers: "A"})
	require.NoError(t, err)
	assert.Equal(t, "mine", got.JobID)
}

func TestErrorKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"server", &adapter.ServerError{Message: "x"}, "server"},
		{"schema", &adapter.SchemaError{Reason: "r", Body: "{}"}, "schema"},
		{"transport", &adapter.TransportError{Op: "optimize", Err: errors.New("refused")}, "transport"},
		{"unknown", errors.New("boom"), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorKind(tt.err))
		})
	}
}
