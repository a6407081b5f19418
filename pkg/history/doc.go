// Package history stores lint run results in a local SQLite database.
//
// Each recorded run keeps its violations, which allows later runs to be
// compared against a baseline (see Store.NewSince) and old runs to be pruned
// by age (see Store.Prune).
package history
