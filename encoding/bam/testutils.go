package bam

import (
	"io"

	"github.com/grailbio/hts/bam"
	"github.com/grailbio/hts/sam"
	"github.com/pkg/errors"
)

// NewUnmappedRecord creates an unmapped sam.Record for tests.  qual is a
// Phred+33 string of the same length as seq; an empty qual produces a record
// without stored base qualities.
func NewUnmappedRecord(name, seq, qual string, flags sam.Flags) *sam.Record {
	if qual != "" && len(seq) != len(qual) {
		panic("seq and qual must be equal length")
	}
	r := sam.GetFromFreePool()
	r.Name = name
	r.Ref = nil
	r.Pos = -1
	r.MateRef = nil
	r.MatePos = -1
	r.Flags = flags | sam.Unmapped
	r.MapQ = 0
	r.TempLen = 0
	r.Cigar = nil
	r.AuxFields = nil
	r.Seq = sam.NewSeq([]byte(seq))
	r.Qual = make([]byte, len(seq))
	for i := range r.Qual {
		if qual == "" {
			r.Qual[i] = 0xff
		} else {
			r.Qual[i] = qual[i] - '!'
		}
	}
	return r
}

// WriteRecords writes a .bam stream with an empty header containing recs
// to w.
func WriteRecords(w io.Writer, recs []*sam.Record) error {
	header, err := sam.NewHeader(nil, nil)
	if err != nil {
		return errors.Wrap(err, "bam: new header")
	}
	bw, err := bam.NewWriter(w, header, 1)
	if err != nil {
		return errors.Wrap(err, "bam: new writer")
	}
	for _, r := range recs {
		if err := bw.Write(r); err != nil {
			bw.Close() // nolint: errcheck
			return errors.Wrapf(err, "bam: write %s", r.Name)
		}
	}
	return bw.Close()
}
