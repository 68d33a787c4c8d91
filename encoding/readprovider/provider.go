package readprovider

import (
	"context"
	"strings"

	"github.com/grailbio/base/log"
)

// Record is one sequencing read.  Seq returns ASCII IUPAC base codes and Qual
// returns the Phred+33 quality string; the two always have equal length.
//
// The slices are owned by the Source and are valid only until the next call
// to Source.Scan.
type Record interface {
	Seq() []byte
	Qual() []byte
}

// Source iterates over the records of one input, in file order. Thread
// compatible.
type Source interface {
	// Scan advances to the next record.  It returns false at end of input or
	// on error, and never returns true again afterwards.  The error can be
	// retrieved by calling Err().
	Scan() bool

	// Record returns the current record.  This must be called only after a
	// call to Scan() returns true.
	Record() Record

	// Err returns the error encountered during iteration, or nil if the
	// input was read to the end.
	Err() error

	// Close must be called exactly once. It releases the input and returns
	// the first error seen by the Source, including the value of Err().
	Close() error
}

// FileType represents the container format of an input.
type FileType int

const (
	// Unknown is a sentinel.
	Unknown FileType = iota
	// FASTQ file, optionally compressed.
	FASTQ
	// BAM file
	BAM
)

// String implements fmt.Stringer.
func (t FileType) String() string {
	switch t {
	case FASTQ:
		return "fastq"
	case BAM:
		return "bam"
	default:
		return "unknown"
	}
}

// ParseFileType parses the file type string. "bam" returns readprovider.BAM,
// for example. On error, it returns Unknown.
func ParseFileType(name string) FileType {
	switch strings.ToLower(name) {
	case "fastq", "fq":
		return FASTQ
	case "bam":
		return BAM
	default:
		return Unknown
	}
}

var fastqSuffixes = []string{".fastq", ".fq"}

var compressSuffixes = []string{"", ".gz", ".bz2", ".zst"}

// GuessFileType returns the file type from the pathname. Returns Unknown if
// the suffix is not recognized.
func GuessFileType(path string) FileType {
	if path == Stdin {
		return FASTQ
	}
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".bam") {
		return BAM
	}
	for _, s := range fastqSuffixes {
		for _, c := range compressSuffixes {
			if strings.HasSuffix(lower, s+c) {
				return FASTQ
			}
		}
	}
	return Unknown
}

// Stdin is the path that denotes FASTQ data on the standard input.
const Stdin = "-"

// Opts defines options for Open.
type Opts struct {
	// Type forces the container format. If Type==Unknown, it is guessed from
	// the path, and paths with an unrecognized suffix are read as FASTQ.
	Type FileType

	// IncludeSecondary causes secondary and supplementary .bam alignments to
	// be yielded.  It has no effect on FASTQ inputs.
	IncludeSecondary bool
}

func mergeOpts(optList []Opts) Opts {
	opts := Opts{}
	for _, o := range optList {
		if o.Type != Unknown {
			opts.Type = o.Type
		}
		if o.IncludeSecondary {
			opts.IncludeSecondary = true
		}
	}
	return opts
}

// Open creates a Source that reads path. The file type is taken from opts,
// or autodetected from the path. Open returns an error if path cannot be
// opened or, for .bam, if the header cannot be parsed; in that case nothing
// is left open.
func Open(ctx context.Context, path string, optList ...Opts) (Source, error) {
	opts := mergeOpts(optList)
	typ := opts.Type
	if typ == Unknown {
		if typ = GuessFileType(path); typ == Unknown {
			log.Debug.Printf("%s: unrecognized suffix, reading as FASTQ", path)
			typ = FASTQ
		}
	}
	log.Debug.Printf("%s: opening as %v", path, typ)
	switch typ {
	case BAM:
		return newBAMSource(ctx, path, opts)
	default:
		return newFASTQSource(ctx, path)
	}
}
