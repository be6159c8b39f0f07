package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/belvip/logistic-application/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultStatusMetricsSchedule runs the job every 30 seconds.
const DefaultStatusMetricsSchedule = "*/30 * * * * *"

type (
	// StatusCountsHandler answers how many packages are in each status.
	StatusCountsHandler interface {
		Handle(ctx context.Context, query queries.GetPackageStatusCountsQuery) ([]queries.StatusCount, error)
	}

	// StatusGauge receives the counts keyed by status name.
	StatusGauge interface {
		SetPackagesByStatus(counts map[string]int64, at time.Time)
	}
)

// StatusMetricsJob periodically publishes the number of packages per status.
type StatusMetricsJob struct {
	handler  StatusCountsHandler
	gauge    StatusGauge
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStatusMetricsJob creates the job. An empty schedule falls back to
// DefaultStatusMetricsSchedule; schedules use the six-field cron format with seconds.
func NewStatusMetricsJob(
	handler StatusCountsHandler,
	gauge StatusGauge,
	schedule string,
	logger *slog.Logger,
) *StatusMetricsJob {
	if schedule == "" {
		schedule = DefaultStatusMetricsSchedule
	}

	return &StatusMetricsJob{
		handler:  handler,
		gauge:    gauge,
		schedule: schedule,
		timeout:  10 * time.Second,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "status_metrics_job"),
	}
}

// Start schedules the job. Returns an error if the schedule cannot be parsed.
func (j *StatusMetricsJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
		defer cancel()

		if err := j.RunOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Status metrics job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Status metrics job started", "schedule", j.schedule)
	return nil
}

// RunOnce queries the counts and publishes them. The gauge is left unchanged on error.
func (j *StatusMetricsJob) RunOnce(ctx context.Context) error {
	counts, err := j.handler.Handle(ctx, queries.NewGetPackageStatusCountsQuery())
	if err != nil {
		return err
	}

	byName := make(map[string]int64, len(counts))
	for _, c := range counts {
		byName[c.Status.String()] = c.Count
	}

	j.gauge.SetPackagesByStatus(byName, time.Now())
	return nil
}

// Stop stops the scheduler and waits for a running refresh to finish.
func (j *StatusMetricsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Status metrics job stopped")
}
