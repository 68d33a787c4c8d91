package qc

import (
	"context"
	"fmt"
	"sort"

	"github.com/grailbio/readqc/encoding/readprovider"
)

// Stats holds the aggregate statistics of one input.
//
// INVARIANT: Bases == sum(Lengths), Reads == len(Lengths).
type Stats struct {
	// Reads is the number of records.
	Reads uint64
	// Bases is the total sequence length.
	Bases uint64
	// NBases is the number of ambiguous (N) bases.
	NBases uint64
	// GCBases is the number of G or C bases.
	GCBases uint64
	// QualPassBases is the number of bases with quality >= QualCutoff.
	QualPassBases uint64
	// MinLen and MaxLen are the shortest and longest read lengths, or 0 if
	// Reads == 0.
	MinLen, MaxLen int
	// QualCutoff is the Phred score used to compute QualPassBases.
	QualCutoff int
	// Lengths lists the read lengths, in input order.
	Lengths []int

	sorted []int // Lengths sorted ascending, filled lazily.
}

func (s *Stats) record(rec readprovider.Record, qualThreshold byte) {
	seq, qual := rec.Seq(), rec.Qual()
	n := len(seq)
	if s.Reads == 0 || n < s.MinLen {
		s.MinLen = n
	}
	if n > s.MaxLen {
		s.MaxLen = n
	}
	s.Reads++
	s.Bases += uint64(n)
	s.NBases += uint64(CountNBases(seq))
	s.GCBases += uint64(CountGCBases(seq))
	s.QualPassBases += uint64(CountQualAtOrAbove(qual, qualThreshold))
	s.Lengths = append(s.Lengths, n)
}

func percent(a, b uint64) float64 {
	if b == 0 {
		return 0
	}
	return float64(a) * 100 / float64(b)
}

// GCPercent returns the percentage of G/C bases, or 0 if there are no bases.
func (s *Stats) GCPercent() float64 { return percent(s.GCBases, s.Bases) }

// QualPassPercent returns the percentage of bases with quality >=
// QualCutoff, or 0 if there are no bases.
func (s *Stats) QualPassPercent() float64 { return percent(s.QualPassBases, s.Bases) }

// SortedLengths returns the read lengths in ascending order.  The caller
// must not modify the result.
func (s *Stats) SortedLengths() []int {
	if len(s.sorted) != len(s.Lengths) {
		s.sorted = append([]int(nil), s.Lengths...)
		sort.Ints(s.sorted)
	}
	return s.sorted
}

// N50 returns the N50 read length.
func (s *Stats) N50() int {
	return Nx(s.SortedLengths(), 0.5)
}

// Nx returns the N(x*100) read length: the largest length L such that reads
// of length >= L hold at least x of all bases.  x must be in [0,1].
func (s *Stats) Nx(x float64) int {
	return Nx(s.SortedLengths(), 1-x)
}

// String implements fmt.Stringer.
func (s *Stats) String() string {
	return fmt.Sprintf("{reads:%d bases:%d n:%d gc:%d q%d:%d len:[%d,%d]}",
		s.Reads, s.Bases, s.NBases, s.GCBases, s.QualCutoff, s.QualPassBases, s.MinLen, s.MaxLen)
}

// Aggregator folds records into a Stats.  It starts out accumulating; after
// Finalize, calls to Add panic.
type Aggregator struct {
	threshold byte
	stats     *Stats
	finalized bool
}

// NewAggregator creates an Aggregator.  opts must have been validated.
func NewAggregator(opts Opts) *Aggregator {
	return &Aggregator{
		threshold: opts.qualThreshold(),
		stats:     &Stats{QualCutoff: opts.QualCutoff},
	}
}

// Add folds one record.  REQUIRES: len(rec.Seq()) == len(rec.Qual()).
func (a *Aggregator) Add(rec readprovider.Record) {
	if a.finalized {
		panic("qc: Add called after Finalize")
	}
	a.stats.record(rec, a.threshold)
}

// Finalize ends accumulation and returns the result.  Finalize may be called
// more than once; it returns the same Stats each time.
func (a *Aggregator) Finalize() *Stats {
	if !a.finalized {
		a.finalized = true
		a.stats.SortedLengths()
	}
	return a.stats
}

// ctxCheckInterval is the number of records between checks of ctx.Err().
const ctxCheckInterval = 1 << 14

// Aggregate drains src and returns its finalized statistics.  It returns an
// error, and no Stats, if opts is invalid, src fails, or ctx is cancelled.
// Aggregate does not close src.
func Aggregate(ctx context.Context, src readprovider.Source, opts Opts) (*Stats, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	a := NewAggregator(opts)
	n := 0
	for src.Scan() {
		a.Add(src.Record())
		if n++; n%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
	}
	if err := src.Err(); err != nil {
		return nil, err
	}
	return a.Finalize(), nil
}
