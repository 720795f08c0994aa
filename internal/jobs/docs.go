// Package jobs provides scheduled background tasks.
//
// Jobs use github.com/robfig/cron/v3 with a seconds field, so schedules have
// six fields.
//
// # Available Jobs
//
// PromotionExpiryJob un-promotes every restaurant whose paid promotion ended.
// It runs hourly by default; PROMOTION_CRON overrides the schedule.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(expirePromotionsHandler, cfg.PromotionCron, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and retried on the next tick. A job that fails to
// start stops the jobs already running.
package jobs
