package readprovider

import (
	"context"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/readqc/encoding/fastq"
)

type fastqRecord struct{ read fastq.Read }

func (r *fastqRecord) Seq() []byte  { return r.read.Seq }
func (r *fastqRecord) Qual() []byte { return r.read.Qual }

// fastqSource reads a plain or compressed FASTQ stream.
type fastqSource struct {
	in  *input
	sc  *fastq.Scanner
	rec fastqRecord
	err errors.Once
}

func newFASTQSource(ctx context.Context, path string) (Source, error) {
	in, err := openInput(ctx, path, true)
	if err != nil {
		return nil, err
	}
	return &fastqSource{
		in: in,
		sc: fastq.NewScanner(in.r, fastq.Seq|fastq.Qual),
	}, nil
}

// Scan implements Source.
func (s *fastqSource) Scan() bool {
	if s.sc.Scan(&s.rec.read) {
		return true
	}
	s.err.Set(s.sc.Err())
	return false
}

// Record implements Source.
func (s *fastqSource) Record() Record { return &s.rec }

// Err implements Source.
func (s *fastqSource) Err() error { return s.err.Err() }

// Close implements Source.
func (s *fastqSource) Close() error {
	s.err.Set(s.in.Close())
	return s.err.Err()
}
