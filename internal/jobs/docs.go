// Package jobs provides scheduled background tasks for the package service.
//
// Jobs are cron-based and use github.com/robfig/cron/v3 with the six-field
// format (seconds first).
//
// # Available Jobs
//
// StatusMetricsJob counts stored packages per lifecycle status and publishes
// the result to the logistics_packages_by_status gauge. It runs every 30
// seconds unless STATUS_METRICS_SCHEDULE says otherwise.
//
// # Usage
//
//	job := jobs.NewStatusMetricsJob(statusCountsHandler, recorder, cfg.StatusMetricsSchedule, logger)
//	jobManager := jobs.NewJobManager(job)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed refresh is logged and the gauge keeps its previous values.
// Failed job starts stop any already running jobs.
package jobs
