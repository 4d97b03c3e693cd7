// Package jobs provides scheduled background tasks for the record-keeping
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. StoreMetricsJob - Periodically logs storage metrics of the record
// database (disk usage, WAL size, memtable size, compaction debt).
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(db, configs.StoreMetricsCron, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are six-field cron expressions (with a seconds field), taken
// from configuration.
package jobs
