package qc

import (
	"math"

	"github.com/grailbio/base/simd"
	"github.com/grailbio/readqc/biosimd"
)

// gcMask maps G, g, C and c, and no other byte, to 'C'.
const gcMask = 0xdb

// errorProbTable[b] is the base-call error probability encoded by the
// Phred+33 byte b.  Bytes below the offset are clamped to Phred 0.
var errorProbTable [256]float64

func init() {
	for b := range errorProbTable {
		phred := b - PhredOffset
		if phred < 0 {
			phred = 0
		}
		errorProbTable[b] = math.Pow(10, -float64(phred)/10)
	}
}

// CountNBases returns the number of 'N' or 'n' bytes in seq.
func CountNBases(seq []byte) int {
	return simd.Count2Bytes(seq, 'N', 'n')
}

// CountGCBases returns the number of G, g, C or c bytes in seq.
func CountGCBases(seq []byte) int {
	return simd.MaskThenCountByte(seq, gcMask, 'C')
}

// GCFraction returns the fraction of G/C bases in seq, or 0 if seq is
// empty.
func GCFraction(seq []byte) float64 {
	if len(seq) == 0 {
		return 0
	}
	return float64(CountGCBases(seq)) / float64(len(seq))
}

// CountQualAtOrAbove returns the number of bytes in qual that are >=
// threshold.  The threshold is an offset quality byte, e.g. '5' for Q20.
func CountQualAtOrAbove(qual []byte, threshold byte) int {
	return biosimd.Count8GreaterEq(qual, threshold)
}

// ErrorProbSum returns the sum of the error probabilities encoded by the
// Phred+33 bytes in qual.
func ErrorProbSum(qual []byte) float64 {
	var sum float64
	for _, q := range qual {
		sum += errorProbTable[q]
	}
	return sum
}

// MeanQualPhred returns the mean quality of qual as a Phred score.  The mean
// is taken over error probabilities, not over Phred scores, so a few bad
// bases pull it down sharply.  It returns 0 for an empty qual.
func MeanQualPhred(qual []byte) float64 {
	if len(qual) == 0 {
		return 0
	}
	phred := -10 * math.Log10(ErrorProbSum(qual)/float64(len(qual)))
	if phred == 0 {
		return 0 // not -0
	}
	return phred
}
