// Package metrics collects run measurements: Prometheus counters and
// histograms for search runs, and process resource snapshots (heap, GC and
// CPU time) for the details report.
package metrics
