// Package report renders qc.Stats as a TSV table, an aligned text table, or
// JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/readqc/qc"
)

// Style selects the output format.
type Style int

const (
	// TSV writes one tab-separated line per input.
	TSV Style = iota
	// Pretty writes space-aligned columns.
	Pretty
	// JSON writes an array with one object per input.
	JSON
)

// Opts defines options for NewWriter.
type Opts struct {
	Style Style
	// SkipHeader omits the header line of the TSV and Pretty styles.
	SkipHeader bool
	// QualCutoff is the Phred score named in the quality column header.  If
	// zero, qc.DefaultQualCutoff is used.
	QualCutoff int
}

// Row is one line of the summary table.  Its JSON form is the element type of
// the JSON style.
type Row struct {
	File      string  `json:"file"`
	Reads     uint64  `json:"reads"`
	Bases     uint64  `json:"bases"`
	NBases    uint64  `json:"num_n"`
	MinLen    int     `json:"min_len"`
	MaxLen    int     `json:"max_len"`
	N50       int     `json:"n50"`
	GCPercent float64 `json:"gc_percent"`
	QualPct   float64 `json:"q20"`
}

// NewRow summarizes the statistics of file.
func NewRow(file string, s *qc.Stats) Row {
	return Row{
		File:      file,
		Reads:     s.Reads,
		Bases:     s.Bases,
		NBases:    s.NBases,
		MinLen:    s.MinLen,
		MaxLen:    s.MaxLen,
		N50:       s.N50(),
		GCPercent: round2(s.GCPercent()),
		QualPct:   round2(s.QualPassPercent()),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Writer renders rows.  Rows are written as they are added, except in the
// JSON style, which buffers them until Close.
type Writer struct {
	opts      Opts
	out       io.Writer
	tsv       *tsv.Writer
	tw        *tabwriter.Writer
	rows      []Row
	wroteHead bool
	err       errors.Once
}

// NewWriter creates a Writer that writes to out.
func NewWriter(out io.Writer, opts Opts) *Writer {
	if opts.QualCutoff == 0 {
		opts.QualCutoff = qc.DefaultQualCutoff
	}
	w := &Writer{opts: opts, out: out}
	switch opts.Style {
	case TSV:
		w.tsv = tsv.NewWriter(out)
	case Pretty:
		w.tw = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		w.tsv = tsv.NewWriter(w.tw)
	}
	return w
}

// Header returns the column names of the TSV and Pretty styles.
func (w *Writer) Header() []string {
	return []string{"file", "reads", "bases", "n_bases", "min_len", "max_len", "N50",
		"GC_percent", fmt.Sprintf("Q%d_percent", w.opts.QualCutoff)}
}

func (w *Writer) writeHeader() {
	if w.wroteHead || w.opts.SkipHeader || w.tsv == nil {
		w.wroteHead = true
		return
	}
	w.wroteHead = true
	for _, col := range w.Header() {
		w.tsv.WriteString(col)
	}
	w.err.Set(w.tsv.EndLine())
}

// Add appends the statistics of one input.
func (w *Writer) Add(file string, s *qc.Stats) error {
	row := NewRow(file, s)
	if w.opts.Style == JSON {
		w.rows = append(w.rows, row)
		return nil
	}
	w.writeHeader()
	w.tsv.WriteString(row.File)
	w.tsv.WriteString(strconv.FormatUint(row.Reads, 10))
	w.tsv.WriteString(strconv.FormatUint(row.Bases, 10))
	w.tsv.WriteString(strconv.FormatUint(row.NBases, 10))
	w.tsv.WriteInt64(int64(row.MinLen))
	w.tsv.WriteInt64(int64(row.MaxLen))
	w.tsv.WriteInt64(int64(row.N50))
	w.tsv.WriteString(strconv.FormatFloat(row.GCPercent, 'f', 2, 64))
	w.tsv.WriteString(strconv.FormatFloat(row.QualPct, 'f', 2, 64))
	w.err.Set(w.tsv.EndLine())
	return w.err.Err()
}

// Close writes any buffered output.  It must be called exactly once.  It
// does not close the underlying io.Writer.
func (w *Writer) Close() error {
	if w.opts.Style == JSON {
		rows := w.rows
		if rows == nil {
			rows = []Row{}
		}
		js, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return errors.E(err, "marshal json report")
		}
		_, err = w.out.Write(append(js, '\n'))
		w.err.Set(err)
		return w.err.Err()
	}
	w.writeHeader()
	w.err.Set(w.tsv.Flush())
	if w.tw != nil {
		w.err.Set(w.tw.Flush())
	}
	return w.err.Err()
}
