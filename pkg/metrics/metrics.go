// Package metrics holds the histogram layouts shared by the Prometheus
// collectors of the service.
package metrics

// DefaultBuckets suit HTTP handlers, in seconds.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// JobBuckets suit background jobs, in seconds. A moderation job waits on two
// assistant runs and often takes minutes.
var JobBuckets = []float64{.05, .25, 1, 5, 15, 30, 60, 120, 300, 600} //nolint: gochecknoglobals
