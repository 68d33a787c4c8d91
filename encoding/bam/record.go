package bam

import (
	"github.com/grailbio/base/simd"
	"github.com/grailbio/readqc/biosimd"
	"github.com/pkg/errors"
)

// Record is one .bam read in ASCII form.  Both slices are owned by the
// Reader and are overwritten by the next call to Reader.Scan.
type Record struct {
	// Name is the read name.
	Name string
	// Seq is the base sequence, one ASCII IUPAC code per base.
	Seq []byte
	// Qual is the Phred+33 quality string, len(Qual) == len(Seq).
	Qual []byte
}

// ResizeScratch makes *buf exactly n bytes long.
func ResizeScratch(buf *[]byte, n int) {
	if cap(*buf) < n {
		// Allocate slightly more memory than needed to prevent frequent
		// reallocation.
		size := (n/16 + 1) * 16
		*buf = make([]byte, n, size)
	} else {
		*buf = (*buf)[:n]
	}
}

// fill materializes the packed sequence seq4 (n bases) and the raw qualities
// qual into r.  A missing quality string is materialized as Phred 0.
func (r *Record) fill(seq4 []byte, n int, qual []byte) error {
	if len(seq4) < (n+1)/2 {
		return errors.Errorf("bam: record %s: %d bases but %d packed bytes", r.Name, n, len(seq4))
	}
	ResizeScratch(&r.Seq, n)
	biosimd.UnpackAndReplaceSeq(r.Seq, seq4[:(n+1)/2], &biosimd.SeqASCIITable)
	ResizeScratch(&r.Qual, n)
	if biosimd.IsQualMissing(qual) {
		simd.Memset8(r.Qual, '!')
		return nil
	}
	if len(qual) != n {
		return errors.Errorf("bam: record %s: %d bases but %d qualities", r.Name, n, len(qual))
	}
	simd.AddConst8(r.Qual, qual, '!')
	return nil
}
