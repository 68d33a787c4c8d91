package cmd

import (
	"context"
	golog "log"

	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/readqc/encoding/readprovider"
	"github.com/grailbio/readqc/qc"
	"github.com/grailbio/readqc/report"
	"v.io/x/lib/cmdline"
)

// inputFlags are the flags shared by every subcommand.
type inputFlags struct {
	fileType         string
	includeSecondary bool
	progress         int
}

func addInputFlags(cmd *cmdline.Command) *inputFlags {
	flags := &inputFlags{}
	cmd.Flags.StringVar(&flags.fileType, "type", "", `Input format, "fastq" or "bam". By default it is guessed from each
path's suffix, and paths with an unknown suffix are read as FASTQ.`)
	cmd.Flags.BoolVar(&flags.includeSecondary, "include-secondary", false,
		"Count secondary and supplementary BAM alignments. By default each read is counted once.")
	cmd.Flags.IntVar(&flags.progress, "progress", readprovider.DefaultProgressInterval,
		"Log progress every this many reads. 0 disables progress messages.")
	return flags
}

// check validates the flags and the presence of input paths, and returns the
// options for readprovider.Open.
func (f *inputFlags) check(env *cmdline.Env, paths []string) (readprovider.Opts, error) {
	opts := readprovider.Opts{IncludeSecondary: f.includeSecondary}
	if len(paths) == 0 {
		return opts, env.UsageErrorf("at least one path is required")
	}
	if f.fileType != "" {
		if opts.Type = readprovider.ParseFileType(f.fileType); opts.Type == readprovider.Unknown {
			return opts, env.UsageErrorf("unknown input format %q", f.fileType)
		}
	}
	if f.progress < 0 {
		return opts, env.UsageErrorf("-progress must be >= 0, but got %d", f.progress)
	}
	return opts, nil
}

func newCmdLen(ctx context.Context) *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "len",
		Short:    "Print the length of every read",
		ArgsName: "path...",
	}
	flags := addInputFlags(cmd)
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		return perRead(ctx, env, argv, flags, appendLen)
	})
	return cmd
}

func newCmdQual(ctx context.Context) *cmdline.Command {
	cmd := &cmdline.Command{
		Name: "qual",
		Short: `Print the mean base quality of every read, as a Phred score.
The mean is taken over error probabilities, then converted back to Phred.`,
		ArgsName: "path...",
	}
	flags := addInputFlags(cmd)
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		return perRead(ctx, env, argv, flags, appendMeanQual)
	})
	return cmd
}

func newCmdGC(ctx context.Context) *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "gc",
		Short:    "Print the GC fraction of every read",
		ArgsName: "path...",
	}
	flags := addInputFlags(cmd)
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		return perRead(ctx, env, argv, flags, appendGC)
	})
	return cmd
}

func newCmdNx(ctx context.Context) *cmdline.Command {
	cmd := &cmdline.Command{
		Name: "nx",
		Short: `Print the Nx read length of each input. For example, "nx 0.5" prints the N50:
the largest length L such that reads of length >= L hold at least half of all bases.`,
		ArgsName: "fraction path...",
	}
	flags := addInputFlags(cmd)
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) < 2 {
			return env.UsageErrorf("nx takes a fraction and at least one path, but got %v", argv)
		}
		fraction, err := qc.ParseFraction(argv[0])
		if err != nil {
			return env.UsageErrorf("%v", err)
		}
		return nx(ctx, env, argv[1:], flags, fraction)
	})
	return cmd
}

func newCmdQYield(ctx context.Context) *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "qyield",
		Short:    "Print the percentage of bases whose quality is at least the given Phred score",
		ArgsName: "phred path...",
	}
	flags := addInputFlags(cmd)
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) < 2 {
			return env.UsageErrorf("qyield takes a phred score and at least one path, but got %v", argv)
		}
		cutoff, err := qc.ParseQualCutoff(argv[0])
		if err != nil {
			return env.UsageErrorf("%v", err)
		}
		return qyield(ctx, env, argv[1:], flags, cutoff)
	})
	return cmd
}

func newCmdTable(ctx context.Context) *cmdline.Command {
	cmd := &cmdline.Command{
		Name: "table",
		Short: `Print a summary table with one row per input: reads, bases, N bases,
min and max read length, N50, GC percentage, and Q20 percentage`,
		ArgsName: "path...",
	}
	flags := addInputFlags(cmd)
	pretty := cmd.Flags.Bool("pretty", false, "Align the columns with spaces")
	jsonOut := cmd.Flags.Bool("json", false, "Print a JSON array with one object per input")
	skipHeader := cmd.Flags.Bool("skip-header", false, "Do not print the header line")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if *pretty && *jsonOut {
			return env.UsageErrorf("-pretty and -json are mutually exclusive")
		}
		opts := report.Opts{SkipHeader: *skipHeader, QualCutoff: qc.DefaultQualCutoff}
		switch {
		case *pretty:
			opts.Style = report.Pretty
		case *jsonOut:
			opts.Style = report.JSON
		}
		return table(ctx, env, argv, flags, opts)
	})
	return cmd
}

func newCmdRoot(ctx context.Context) *cmdline.Command {
	return &cmdline.Command{
		Name:     "bio-readqc",
		Short:    "Quality-control statistics for FASTQ and BAM files",
		LookPath: false,
		Children: []*cmdline.Command{
			newCmdLen(ctx),
			newCmdQual(ctx),
			newCmdGC(ctx),
			newCmdNx(ctx),
			newCmdQYield(ctx),
			newCmdTable(ctx),
		},
	}
}

// Run is the entry point of bio-readqc.
func Run() {
	golog.SetFlags(golog.Ldate | golog.Ltime | golog.Lmicroseconds | golog.Lshortfile)
	cmdline.HideGlobalFlagsExcept()
	cmdline.Main(newCmdRoot(context.Background()))
}
