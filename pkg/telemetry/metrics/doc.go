// Package metrics provides Prometheus instrumentation for watch mode.
//
// A Collector owns its registry and exposes counters for files linted,
// parse failures, and violations by rule, plus a histogram of per-file
// lint durations. Handler serves the registry over HTTP for scraping.
// One-shot CLI runs do not create a collector; metrics only matter for
// the long-running watch process.
package metrics
