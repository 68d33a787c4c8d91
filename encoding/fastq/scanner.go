package fastq

import (
	"bufio"
	"bytes"
	"io"

	"github.com/pkg/errors"
)

var (
	// ErrShort is returned when a truncated FASTQ file is encountered.
	ErrShort = errors.New("short FASTQ file")
	// ErrInvalid is returned when an invalid FASTQ file is encountered.
	ErrInvalid = errors.New("invalid FASTQ file")
	// ErrDiscordant is returned when a read's sequence and quality lines
	// differ in length.
	ErrDiscordant = errors.New("discordant FASTQ sequence and quality")
)

// MaxLineLen is the longest FASTQ line the Scanner accepts.  Long-read
// platforms routinely produce reads far beyond bufio's 64KiB default.
const MaxLineLen = 256 << 20

// A Read is a FASTQ read, comprising an ID, sequence, line 3
// ("unknown"), and a quality string.
//
// The byte slices are owned by the caller and are overwritten by the next
// call to Scanner.Scan that uses the same Read.
type Read struct {
	ID, Seq, Unk, Qual []byte
}

var errEOF = errors.New("eof")

// Scanner provides a convenient interface for reading FASTQ read
// data. The Scan method returns the next read, returning a boolean
// indicating whether the read succeeded. Scanners are not
// threadsafe.
//
// Scanner performs some validation: it requires ID lines to begin
// with "@" and that line 3 begins with "+".  Blank lines between records are
// skipped.  When both Seq and Qual are
// requested, it also requires the two lines to have equal length.  It does
// not check that the bytes are in range.
type Scanner struct {
	b      *bufio.Scanner
	err    error
	fields Field
	nRead  int64
}

// Field enumerates FASTQ fields. It is used to specify fields to read in
// NewScanner.
type Field uint

const (
	// ID causes the Read.ID field to be filled
	ID Field = 1 << iota
	// Seq causes the Read.Seq field to be filled
	Seq
	// Unk causes the Read.Unk field to be filled
	Unk
	// Qual causes the Read.Qual field to be filled
	Qual
	// All equals ID|Seq|Unk|Qual.
	All = ID | Seq | Unk | Qual
)

// NewScanner constructs a new Scanner that reads raw FASTQ data from the
// provided reader. Fields is a bitset of the fields to read. A typical value
// would be All or Seq|Qual.
func NewScanner(r io.Reader, fields Field) *Scanner {
	b := bufio.NewScanner(r)
	b.Buffer(make([]byte, 0, 64<<10), MaxLineLen)
	return &Scanner{b: b, fields: fields}
}

// Scan the next read into the provided read. Scan returns a boolean
// indicating whether the scan succeeded. Once Scan returns false, it
// never returns true again. Upon completion, the user should check
// the Err method to determine whether scanning stopped because of an
// error or because the end of the stream was reached.
func (f *Scanner) Scan(read *Read) bool {
	if f.err != nil {
		return false
	}
	var id []byte
	// Blank lines between records are ignored.
	for len(id) == 0 {
		if !f.b.Scan() {
			if f.err = f.b.Err(); f.err == nil {
				f.err = errEOF
			}
			return false
		}
		id = trimCR(f.b.Bytes())
	}
	if id[0] != '@' {
		f.err = ErrInvalid
		return false
	}
	if f.fields&ID != 0 {
		read.ID = append(read.ID[:0], id...)
	}
	if !f.scan() {
		return false
	}
	seqLen := -1
	if f.fields&Seq != 0 {
		read.Seq = append(read.Seq[:0], trimCR(f.b.Bytes())...)
		seqLen = len(read.Seq)
	}
	if !f.scan() {
		return false
	}
	unk := trimCR(f.b.Bytes())
	if len(unk) == 0 || unk[0] != '+' {
		f.err = ErrInvalid
		return false
	}
	if f.fields&Unk != 0 {
		read.Unk = append(read.Unk[:0], unk...)
	}
	if !f.scan() {
		return false
	}
	if f.fields&Qual != 0 {
		read.Qual = append(read.Qual[:0], trimCR(f.b.Bytes())...)
		if seqLen >= 0 && seqLen != len(read.Qual) {
			f.err = ErrDiscordant
			return false
		}
	}
	f.nRead++
	return true
}

func (f *Scanner) scan() bool {
	ok := f.b.Scan()
	if !ok {
		if f.err = f.b.Err(); f.err == nil {
			f.err = ErrShort
		}
	}
	return ok
}

func trimCR(line []byte) []byte {
	return bytes.TrimSuffix(line, []byte{'\r'})
}

// NumRead returns the number of reads scanned so far.
func (f *Scanner) NumRead() int64 {
	return f.nRead
}

// Err returns the scanning error, if any.
func (f *Scanner) Err() error {
	switch f.err {
	case nil, errEOF:
		return nil
	case ErrShort, ErrInvalid, ErrDiscordant:
		return f.err
	}
	return errors.Wrapf(f.err, "fastq: after %d reads", f.nRead)
}
