// Package health aggregates named resource checks into a single report.
//
// The report shape mirrors common health endpoints: an overall status plus
// info, error and details maps keyed by check name. Any check that is down
// makes the report down; otherwise any degraded check makes it degraded.
//
//	r := health.Default() // memory_heap and memory_rss at 1 GiB
//	res := r.Check(ctx)
//
// Checks run concurrently; a panicking check is reported as down.
package health
