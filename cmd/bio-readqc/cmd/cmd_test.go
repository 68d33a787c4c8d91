package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grailbio/hts/sam"
	gbam "github.com/grailbio/readqc/encoding/bam"
	"github.com/grailbio/testutil"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
	"github.com/klauspost/compress/gzip"
	"v.io/x/lib/cmdline"
)

// makeFASTQ returns a FASTQ file with one N-free read per element of
// lengths.  All qualities are Q40.
func makeFASTQ(lengths ...int) []byte {
	var buf bytes.Buffer
	for i, n := range lengths {
		fmt.Fprintf(&buf, "@read%d\n%s\n+\n%s\n", i, strings.Repeat("ACGT", n/4+1)[:n], strings.Repeat("I", n))
	}
	return buf.Bytes()
}

// fixtureLengths returns the read lengths of the two standard fixtures: the
// first has 10 reads, 18931 bases and a shortest read of 165; the second
// has 20 reads, 15696 bases and a shortest read of 358.
func fixtureLengths() (a, b []int) {
	a = []int{165, 249}
	for i := 0; i < 7; i++ {
		a = append(a, 2314)
	}
	a = append(a, 2319)
	b = []int{358}
	for i := 0; i < 18; i++ {
		b = append(b, 807)
	}
	b = append(b, 812)
	return
}

type fixture struct {
	dir        string
	fastq, gz  string
	gc, bam    string
	missing    string
	truncated  string
	cleanupDir func()
}

func newFixture(t *testing.T) *fixture {
	dir, cleanup := testutil.TempDir(t, "", "")
	f := &fixture{
		dir:        dir,
		fastq:      filepath.Join(dir, "test.fastq"),
		gz:         filepath.Join(dir, "test2.fastq.gz"),
		gc:         filepath.Join(dir, "gc.fq"),
		bam:        filepath.Join(dir, "gc.bam"),
		missing:    filepath.Join(dir, "missing.fastq"),
		truncated:  filepath.Join(dir, "truncated.fastq"),
		cleanupDir: cleanup,
	}
	a, b := fixtureLengths()
	assert.NoError(t, ioutil.WriteFile(f.fastq, makeFASTQ(a...), 0644))

	out, err := os.Create(f.gz)
	assert.NoError(t, err)
	gz := gzip.NewWriter(out)
	_, err = gz.Write(makeFASTQ(b...))
	assert.NoError(t, err)
	assert.NoError(t, gz.Close())
	assert.NoError(t, out.Close())

	assert.NoError(t, ioutil.WriteFile(f.gc,
		[]byte("@a\nGGCC\n+\nIIII\n@b\nATAT\n+\n!!!!\n@c\nGCAN\n+\nI5I5\n"), 0644))

	out, err = os.Create(f.bam)
	assert.NoError(t, err)
	assert.NoError(t, gbam.WriteRecords(out, []*sam.Record{
		gbam.NewUnmappedRecord("a", "GGCC", "IIII", 0),
		gbam.NewUnmappedRecord("a2", "GGGGGGGG", "IIIIIIII", sam.Secondary),
		gbam.NewUnmappedRecord("b", "ATAT", "!!!!", 0),
		gbam.NewUnmappedRecord("c", "GCAN", "I5I5", 0),
	}))
	assert.NoError(t, out.Close())

	assert.NoError(t, ioutil.WriteFile(f.truncated, []byte("@a\nGGCC\n+\nIIII\n@b\nAT"), 0644))
	return f
}

func (f *fixture) cleanup() { f.cleanupDir() }

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	var outBuf, errBuf bytes.Buffer
	env := &cmdline.Env{Stdout: &outBuf, Stderr: &errBuf, Vars: map[string]string{}}
	err = cmdline.ParseAndRun(newCmdRoot(context.Background()), env, args)
	return outBuf.String(), errBuf.String(), err
}

func TestTable(t *testing.T) {
	f := newFixture(t)
	defer f.cleanup()

	out, _, err := run(t, "table", f.fastq)
	assert.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.EQ(t, len(lines), 2)
	expect.EQ(t, lines[0], "file\treads\tbases\tn_bases\tmin_len\tmax_len\tN50\tGC_percent\tQ20_percent")
	expect.HasSubstr(t, lines[1], "10\t18931\t0\t165\t2319\t2314\t")
	expect.True(t, strings.HasSuffix(lines[1], "\t100.00"), lines[1])

	out, _, err = run(t, "table", "-skip-header", f.fastq, f.gz)
	assert.NoError(t, err)
	lines = strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.EQ(t, len(lines), 2)
	expect.True(t, strings.HasPrefix(lines[0], f.fastq+"\t10\t18931\t0\t165"), lines[0])
	expect.True(t, strings.HasPrefix(lines[1], f.gz+"\t20\t15696\t0\t358"), lines[1])
}

func TestTableStyles(t *testing.T) {
	f := newFixture(t)
	defer f.cleanup()

	out, _, err := run(t, "table", "-json", f.gc)
	assert.NoError(t, err)
	expect.HasSubstr(t, out, `"reads": 3`)
	expect.HasSubstr(t, out, `"num_n": 1`)
	expect.HasSubstr(t, out, `"gc_percent": 50`)
	expect.HasSubstr(t, out, `"q20": 66.67`)

	out, _, err = run(t, "table", "-pretty", f.gc)
	assert.NoError(t, err)
	expect.False(t, strings.Contains(out, "\t"))
	expect.HasSubstr(t, out, "50.00")

	out, _, err = run(t, "table", "-pretty", "-json", f.gc)
	expect.EQ(t, err, cmdline.ErrUsage)
	expect.EQ(t, out, "")
}

func TestBAMMatchesFASTQ(t *testing.T) {
	f := newFixture(t)
	defer f.cleanup()

	fqOut, _, err := run(t, "table", "-skip-header", f.gc)
	assert.NoError(t, err)
	bamOut, _, err := run(t, "table", "-skip-header", f.bam)
	assert.NoError(t, err)
	expect.EQ(t, strings.TrimPrefix(bamOut, f.bam), strings.TrimPrefix(fqOut, f.gc))

	out, _, err := run(t, "table", "-skip-header", "-include-secondary", f.bam)
	assert.NoError(t, err)
	expect.True(t, strings.HasPrefix(out, f.bam+"\t4\t20\t1\t"), out)
}

func TestPerRead(t *testing.T) {
	f := newFixture(t)
	defer f.cleanup()

	out, _, err := run(t, "len", f.fastq)
	assert.NoError(t, err)
	expect.EQ(t, out, "165\n249\n2314\n2314\n2314\n2314\n2314\n2314\n2314\n2319\n")

	out, _, err = run(t, "gc", f.gc)
	assert.NoError(t, err)
	expect.EQ(t, out, "1.0000\n0.0000\n0.5000\n")

	out, _, err = run(t, "qual", f.gc, f.bam)
	assert.NoError(t, err)
	expect.EQ(t, out, "40.0000\n0.0000\n22.9671\n40.0000\n0.0000\n22.9671\n")
}

func TestNxAndQYield(t *testing.T) {
	f := newFixture(t)
	defer f.cleanup()

	out, _, err := run(t, "nx", "0.5", f.fastq)
	assert.NoError(t, err)
	expect.EQ(t, out, "2314\n")

	out, _, err = run(t, "nx", "0", f.fastq, f.gz)
	assert.NoError(t, err)
	expect.EQ(t, out, f.fastq+"\t2319\n"+f.gz+"\t812\n")

	out, _, err = run(t, "nx", "1", f.gz)
	assert.NoError(t, err)
	expect.EQ(t, out, "358\n")

	out, _, err = run(t, "qyield", "20", f.gc)
	assert.NoError(t, err)
	expect.EQ(t, out, "Q20\t66.67\n")

	out, _, err = run(t, "qyield", "41", f.gc)
	assert.NoError(t, err)
	expect.EQ(t, out, "Q41\t0.00\n")
}

func TestUsageErrors(t *testing.T) {
	f := newFixture(t)
	defer f.cleanup()

	for _, args := range [][]string{
		{"nx", "1.5", f.fastq},
		{"nx", "-0.1", f.fastq},
		{"nx", "half", f.fastq},
		{"nx", "0.5"},
		{"qyield", "0", f.fastq},
		{"qyield", "94", f.fastq},
		{"qyield", "20"},
		{"table"},
		{"len", "-type", "sam", f.fastq},
		{"len", "-progress", "-1", f.fastq},
	} {
		out, _, err := run(t, args...)
		expect.EQ(t, err, cmdline.ErrUsage, "args=%v", args)
		expect.EQ(t, out, "", "args=%v", args)
	}
}

func TestInputErrors(t *testing.T) {
	f := newFixture(t)
	defer f.cleanup()

	out, _, err := run(t, "table", "-skip-header", f.missing, f.gc, f.truncated)
	expect.HasSubstr(t, err.Error(), "2 of 3 inputs failed")
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.EQ(t, len(lines), 1)
	expect.True(t, strings.HasPrefix(lines[0], f.gc+"\t3\t12\t"), lines[0])

	out, _, err = run(t, "len", f.truncated, f.gc)
	expect.HasSubstr(t, err.Error(), "1 of 2 inputs failed")
	expect.EQ(t, out, "4\n4\n4\n4\n")

	out, _, err = run(t, "len", "-type", "bam", f.gc)
	expect.HasSubstr(t, err.Error(), "1 of 1 inputs failed")
	expect.EQ(t, out, "")
}

func TestTrailingBlankLine(t *testing.T) {
	f := newFixture(t)
	defer f.cleanup()

	path := filepath.Join(f.dir, "blank.fq")
	assert.NoError(t, ioutil.WriteFile(path, []byte("@a\nACGT\n+\nIIII\n\n"), 0644))
	out, _, err := run(t, "table", "-skip-header", path)
	assert.NoError(t, err)
	expect.True(t, strings.HasPrefix(out, path+"\t1\t4\t0\t4\t"), out)
}
