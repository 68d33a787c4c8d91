// Package qc computes read quality-control statistics: per-read metrics
// (length, GC fraction, N count, mean quality), and whole-file aggregates
// (read and base totals, length extremes, Nx, quality yield).
//
// All counters are exact integer sums; ratios are derived on demand and
// defined as 0 when their denominator is 0.
package qc
