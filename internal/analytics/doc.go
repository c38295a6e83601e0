// Package analytics computes aggregate summaries over snapshots of
// text records and learning data. All functions are pure: no I/O, no
// retained state, deterministic for a given input sequence, and total.
// Empty input yields zeroed aggregates, never an error.
package analytics
