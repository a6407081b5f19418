// Package watch provides continuous linting: a debounced fsnotify file
// watcher, an optional cron-driven rescan scheduler, and a service loop that
// re-lints the watched tree and exposes Prometheus metrics.
package watch
