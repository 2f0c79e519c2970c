// Package jobs provides scheduled background tasks for the restaurant.
//
// Jobs are built on github.com/robfig/cron/v3 with the seconds field enabled.
//
// # Available Jobs
//
// 1. KitchenDispatchJob - hands queued orders to free chefs (every second by default)
// 2. ReportJob - logs the running daily report (hourly by default)
//
// # Usage
//
//	jobManager := jobs.NewJobManager(kitchenHandler, restaurant, jobs.Schedules{}, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// The dispatcher is a no-op while the restaurant is closed, so it can keep
// running across open and close cycles.
package jobs
