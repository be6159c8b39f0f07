package jobs_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/belvip/logistic-application/internal/core/application/usecases/queries"
	"github.com/belvip/logistic-application/internal/core/domain/model/packages"
	"github.com/belvip/logistic-application/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStatusCountsHandler struct{ mock.Mock }

func (m *MockStatusCountsHandler) Handle(
	ctx context.Context,
	query queries.GetPackageStatusCountsQuery,
) ([]queries.StatusCount, error) {
	args := m.Called(ctx, query)
	counts, _ := args.Get(0).([]queries.StatusCount)
	return counts, args.Error(1)
}

type MockStatusGauge struct{ mock.Mock }

func (m *MockStatusGauge) SetPackagesByStatus(counts map[string]int64, at time.Time) {
	m.Called(counts, at)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStatusMetricsJob_RunOnce_PublishesCountsByName(t *testing.T) {
	ctx := t.Context()
	handler := &MockStatusCountsHandler{}
	gauge := &MockStatusGauge{}

	handler.On("Handle", ctx, mock.Anything).Return([]queries.StatusCount{
		{Status: packages.Pending, Count: 4},
		{Status: packages.InTransit, Count: 2},
		{Status: packages.Delivered, Count: 0},
	}, nil).Once()
	gauge.On("SetPackagesByStatus", map[string]int64{
		"PENDING":    4,
		"IN_TRANSIT": 2,
		"DELIVERED":  0,
	}, mock.AnythingOfType("time.Time")).Once()

	job := jobs.NewStatusMetricsJob(handler, gauge, "", discardLogger())
	require.NoError(t, job.RunOnce(ctx))

	handler.AssertExpectations(t)
	gauge.AssertExpectations(t)
}

func TestStatusMetricsJob_RunOnce_KeepsGaugeOnError(t *testing.T) {
	ctx := t.Context()
	handler := &MockStatusCountsHandler{}
	gauge := &MockStatusGauge{}
	handler.On("Handle", ctx, mock.Anything).Return(nil, errors.New("database is down")).Once()

	job := jobs.NewStatusMetricsJob(handler, gauge, "", discardLogger())
	err := job.RunOnce(ctx)

	require.EqualError(t, err, "database is down")
	gauge.AssertNotCalled(t, "SetPackagesByStatus", mock.Anything, mock.Anything)
}

func TestStatusMetricsJob_Start_InvalidSchedule(t *testing.T) {
	job := jobs.NewStatusMetricsJob(&MockStatusCountsHandler{}, &MockStatusGauge{}, "every half minute", discardLogger())
	assert.Error(t, job.Start())
}

func TestStatusMetricsJob_StartRunsOnSchedule(t *testing.T) {
	handler := &MockStatusCountsHandler{}
	gauge := &MockStatusGauge{}
	refreshed := make(chan struct{}, 10)

	handler.On("Handle", mock.Anything, mock.Anything).
		Return([]queries.StatusCount{{Status: packages.Pending, Count: 1}}, nil)
	gauge.On("SetPackagesByStatus", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { refreshed <- struct{}{} })

	job := jobs.NewStatusMetricsJob(handler, gauge, "* * * * * *", discardLogger())
	require.NoError(t, job.Start())
	defer job.Stop()

	select {
	case <-refreshed:
	case <-time.After(3 * time.Second):
		t.Fatal("status metrics job did not run")
	}
}

type fakeJob struct {
	startErr error
	started  bool
	stopped  bool
}

func (j *fakeJob) Start() error {
	if j.startErr != nil {
		return j.startErr
	}
	j.started = true
	return nil
}

func (j *fakeJob) Stop() { j.stopped = true }

func TestJobManager_StartAll_StopsStartedJobsOnFailure(t *testing.T) {
	first := &fakeJob{}
	second := &fakeJob{startErr: errors.New("bad schedule")}

	jm := &jobs.JobManager{}
	jm.Register("first", first)
	jm.Register("second", second)

	err := jm.StartAll()

	require.EqualError(t, err, "failed to start second job: bad schedule")
	assert.True(t, first.started)
	assert.True(t, first.stopped)
	assert.False(t, second.stopped)
}

func TestJobManager_StopAll(t *testing.T) {
	job := &fakeJob{}
	jm := &jobs.JobManager{}
	jm.Register("only", job)

	require.NoError(t, jm.StartAll())
	jm.StopAll()

	assert.True(t, job.stopped)
}
