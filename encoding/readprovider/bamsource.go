package readprovider

import (
	"context"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	gbam "github.com/grailbio/readqc/encoding/bam"
)

type bamRecord struct{ rec *gbam.Record }

func (r bamRecord) Seq() []byte  { return r.rec.Seq }
func (r bamRecord) Qual() []byte { return r.rec.Qual }

// bamSource reads the records of a .bam file.
type bamSource struct {
	in  *input
	r   *gbam.Reader
	err errors.Once
}

func newBAMSource(ctx context.Context, path string, opts Opts) (Source, error) {
	in, err := openInput(ctx, path, false)
	if err != nil {
		return nil, err
	}
	r, err := gbam.NewReader(in.r, gbam.ReadOpts{IncludeSecondary: opts.IncludeSecondary})
	if err != nil {
		if cerr := in.Close(); cerr != nil {
			log.Error.Printf("%s: close: %v", path, cerr)
		}
		return nil, errors.E(err, "open", path)
	}
	return &bamSource{in: in, r: r}, nil
}

// Scan implements Source.
func (s *bamSource) Scan() bool {
	if s.r.Scan() {
		return true
	}
	s.err.Set(s.r.Err())
	return false
}

// Record implements Source.
func (s *bamSource) Record() Record { return bamRecord{s.r.Record()} }

// Err implements Source.
func (s *bamSource) Err() error { return s.err.Err() }

// Close implements Source.
func (s *bamSource) Close() error {
	if n := s.r.NumSkipped(); n > 0 {
		log.Debug.Printf("%s: skipped %d secondary/supplementary records", s.in.path, n)
	}
	s.err.Set(s.r.Close())
	s.err.Set(s.in.Close())
	return s.err.Err()
}
