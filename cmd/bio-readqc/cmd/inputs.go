package cmd

import (
	"context"
	"fmt"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/readqc/encoding/readprovider"
	"github.com/grailbio/readqc/qc"
	"v.io/x/lib/cmdline"
)

// forEachPath calls fn on each path in turn.  A failing input is logged and
// skipped; the remaining inputs are still processed, and the returned error
// reports how many failed.
func forEachPath(env *cmdline.Env, paths []string, flags *inputFlags,
	fn func(path string, opts readprovider.Opts) error) error {
	opts, err := flags.check(env, paths)
	if err != nil {
		return err
	}
	nFailed := 0
	for _, path := range paths {
		if err := fn(path, opts); err != nil {
			log.Error.Printf("%s: %v", path, err)
			nFailed++
		}
	}
	if nFailed > 0 {
		return errors.E(fmt.Sprintf("%d of %d inputs failed", nFailed, len(paths)))
	}
	return nil
}

// withSource opens path, calls fn on it, and closes it.  It returns the first
// error.
func withSource(ctx context.Context, path string, opts readprovider.Opts, progress int,
	fn func(src readprovider.Source) error) (err error) {
	src, err := readprovider.Open(ctx, path, opts)
	if err != nil {
		return err
	}
	src = readprovider.WithProgress(src, path, progress)
	defer func() {
		if e := src.Close(); e != nil && err == nil {
			err = e
		}
	}()
	return fn(src)
}

// aggregateInputs computes the statistics of each path and passes them to
// emit, in order.  Inputs that fail are not passed to emit.
func aggregateInputs(ctx context.Context, env *cmdline.Env, paths []string, flags *inputFlags,
	opts qc.Opts, emit func(path string, s *qc.Stats) error) error {
	return forEachPath(env, paths, flags, func(path string, popts readprovider.Opts) error {
		var s *qc.Stats
		err := withSource(ctx, path, popts, flags.progress, func(src readprovider.Source) (err error) {
			s, err = qc.Aggregate(ctx, src, opts)
			return err
		})
		if err != nil {
			return err
		}
		log.Debug.Printf("%s: %v", path, s)
		return emit(path, s)
	})
}
