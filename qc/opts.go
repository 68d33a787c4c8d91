package qc

import (
	"fmt"
	"math"
	"strconv"

	"github.com/grailbio/base/errors"
)

const (
	// PhredOffset is the ASCII offset of FASTQ quality strings.
	PhredOffset = 33
	// MinQualCutoff and MaxQualCutoff bound Opts.QualCutoff.
	MinQualCutoff = 1
	MaxQualCutoff = 93
	// DefaultQualCutoff is the Phred score counted by the Q20 column.
	DefaultQualCutoff = 20
)

// Opts defines the parameters of one aggregation run.
type Opts struct {
	// QualCutoff is the Phred score at or above which a base counts towards
	// Stats.QualPassBases.
	QualCutoff int
}

// DefaultOpts is the default value of Opts.
var DefaultOpts = Opts{QualCutoff: DefaultQualCutoff}

// Validate checks that the options are within range.
func (o Opts) Validate() error {
	if o.QualCutoff < MinQualCutoff || o.QualCutoff > MaxQualCutoff {
		return errors.E(errors.Invalid,
			fmt.Sprintf("quality cutoff %d out of range [%d,%d]", o.QualCutoff, MinQualCutoff, MaxQualCutoff))
	}
	return nil
}

// qualThreshold returns the cutoff as an offset quality byte.
func (o Opts) qualThreshold() byte {
	return byte(o.QualCutoff + PhredOffset)
}

// ValidateFraction checks that an Nx fraction is in [0,1].
func ValidateFraction(f float64) error {
	if math.IsNaN(f) || f < 0 || f > 1 {
		return errors.E(errors.Invalid, fmt.Sprintf("fraction %v out of range [0,1]", f))
	}
	return nil
}

// ParseFraction parses and validates an Nx fraction.
func ParseFraction(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.E(errors.Invalid, err, fmt.Sprintf("fraction %q", s))
	}
	return f, ValidateFraction(f)
}

// ParseQualCutoff parses and validates a Phred quality cutoff.
func ParseQualCutoff(s string) (int, error) {
	q, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.E(errors.Invalid, err, fmt.Sprintf("quality cutoff %q", s))
	}
	return q, Opts{QualCutoff: q}.Validate()
}
