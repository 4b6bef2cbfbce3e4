// Package jobs provides scheduled background tasks for the job catalogue.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field expressions with
// a leading seconds field).
//
// # Available Jobs
//
// 1. ProblemRetentionJob - Deletes problems created more than the retention
// period ago. Their jobs are removed by the cascading foreign key.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(purgeHandler, jobs.RetentionConfig{
//		Schedule: "0 0 * * * *",
//		Period:   7 * 24 * time.Hour,
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed sweep is logged and retried on the next tick. An invalid schedule
// makes StartAll fail.
package jobs
