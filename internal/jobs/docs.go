// Package jobs provides scheduled background tasks for the parcel locker
// platform.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. RentReallocationJob - Periodically retries locker allocation for rents
// stuck in CREATED status, so parcels get placed as soon as capacity frees up.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(reallocateHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The re-allocation job treats an empty backlog as a normal idle tick and
// logs everything else.
package jobs
