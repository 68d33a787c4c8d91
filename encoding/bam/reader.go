package bam

import (
	"io"

	"github.com/grailbio/hts/bam"
	"github.com/grailbio/hts/sam"
	"github.com/pkg/errors"
)

// ReadOpts controls which records a Reader yields.
type ReadOpts struct {
	// IncludeSecondary causes secondary and supplementary alignments to be
	// yielded.  By default they are skipped so that each read is seen once.
	IncludeSecondary bool
}

// Reader yields the records of a .bam stream in file order.  Its interface
// follows the iterator convention used elsewhere in this module:
//
//   for r.Scan() {
//     rec := r.Record()
//     ...
//   }
//   err := r.Err()
//
// A Reader is not threadsafe.
type Reader struct {
	in       *bam.Reader
	opts     ReadOpts
	rec      Record
	err      error
	nRead    int64
	nSkipped int64
}

// NewReader reads the .bam header from r and returns a Reader positioned at
// the first record.  Reader does not take ownership of r.
func NewReader(r io.Reader, opts ReadOpts) (*Reader, error) {
	in, err := bam.NewReader(r, 1)
	if err != nil {
		return nil, errors.Wrap(err, "bam: read header")
	}
	return &Reader{in: in, opts: opts}, nil
}

// Header returns the .bam header.
func (r *Reader) Header() *sam.Header {
	return r.in.Header()
}

// Scan reads the next record.  It returns false at end of stream or on
// error; Err distinguishes the two.  Once Scan returns false it never
// returns true again.
func (r *Reader) Scan() bool {
	for r.err == nil {
		samr, err := r.in.Read()
		if err != nil {
			if err != io.EOF {
				r.err = errors.Wrapf(err, "bam: after %d records", r.nRead)
			} else {
				r.err = io.EOF
			}
			return false
		}
		if !r.opts.IncludeSecondary && !IsPrimary(samr) {
			r.nSkipped++
			sam.PutInFreePool(samr)
			continue
		}
		r.rec.Name = samr.Name
		r.err = r.rec.fill(UnsafeDoubletsToBytes(samr.Seq.Seq), samr.Seq.Length, samr.Qual)
		sam.PutInFreePool(samr)
		if r.err != nil {
			return false
		}
		r.nRead++
		return true
	}
	return false
}

// Record returns the record read by the last successful call to Scan.  The
// record is valid only until the next call to Scan.
func (r *Reader) Record() *Record {
	return &r.rec
}

// NumRead returns the number of records yielded so far.
func (r *Reader) NumRead() int64 { return r.nRead }

// NumSkipped returns the number of secondary and supplementary records
// skipped so far.
func (r *Reader) NumSkipped() int64 { return r.nSkipped }

// Err returns the error that stopped Scan, or nil at end of stream.
func (r *Reader) Err() error {
	if r.err == io.EOF {
		return nil
	}
	return r.err
}

// Close releases the decompression state.  It does not close the
// io.Reader passed to NewReader.
func (r *Reader) Close() error {
	return r.in.Close()
}
