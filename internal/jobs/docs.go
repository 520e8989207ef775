// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3.
//
// The rating reconciliation job periodically resweeps every restaurant's
// reviews and rewrites the cached aggregate rating. The JobManager starts
// and stops all jobs together during application lifecycle.
package jobs
