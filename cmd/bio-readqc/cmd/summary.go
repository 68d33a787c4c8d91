package cmd

import (
	"context"
	"fmt"

	"github.com/grailbio/readqc/qc"
	"github.com/grailbio/readqc/report"
	"v.io/x/lib/cmdline"
)

// printSummary prints value for path.  The value is prefixed by the path
// when more than one input is given.
func printSummary(env *cmdline.Env, paths []string, path, value string) error {
	var err error
	if len(paths) > 1 {
		_, err = fmt.Fprintf(env.Stdout, "%s\t%s\n", path, value)
	} else {
		_, err = fmt.Fprintln(env.Stdout, value)
	}
	return err
}

func nx(ctx context.Context, env *cmdline.Env, paths []string, flags *inputFlags, fraction float64) error {
	return aggregateInputs(ctx, env, paths, flags, qc.DefaultOpts, func(path string, s *qc.Stats) error {
		return printSummary(env, paths, path, fmt.Sprint(s.Nx(fraction)))
	})
}

func qyield(ctx context.Context, env *cmdline.Env, paths []string, flags *inputFlags, cutoff int) error {
	opts := qc.Opts{QualCutoff: cutoff}
	return aggregateInputs(ctx, env, paths, flags, opts, func(path string, s *qc.Stats) error {
		return printSummary(env, paths, path, fmt.Sprintf("Q%d\t%.2f", cutoff, s.QualPassPercent()))
	})
}

func table(ctx context.Context, env *cmdline.Env, paths []string, flags *inputFlags, opts report.Opts) error {
	if _, err := flags.check(env, paths); err != nil {
		return err
	}
	w := report.NewWriter(env.Stdout, opts)
	err := aggregateInputs(ctx, env, paths, flags, qc.Opts{QualCutoff: opts.QualCutoff}, w.Add)
	if e := w.Close(); e != nil && err == nil {
		err = e
	}
	return err
}
