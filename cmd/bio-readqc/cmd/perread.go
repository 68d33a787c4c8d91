package cmd

import (
	"bufio"
	"context"
	"strconv"

	"github.com/grailbio/readqc/encoding/readprovider"
	"github.com/grailbio/readqc/qc"
	"v.io/x/lib/cmdline"
)

// perRead writes one line per record of each input, formatted by appendFn.
func perRead(ctx context.Context, env *cmdline.Env, paths []string, flags *inputFlags,
	appendFn func(buf []byte, rec readprovider.Record) []byte) error {
	out := bufio.NewWriterSize(env.Stdout, 64<<10)
	var line []byte
	err := forEachPath(env, paths, flags, func(path string, opts readprovider.Opts) error {
		return withSource(ctx, path, opts, flags.progress, func(src readprovider.Source) error {
			for src.Scan() {
				line = append(appendFn(line[:0], src.Record()), '\n')
				if _, err := out.Write(line); err != nil {
					return err
				}
			}
			return src.Err()
		})
	})
	if e := out.Flush(); e != nil && err == nil {
		err = e
	}
	return err
}

func appendLen(buf []byte, rec readprovider.Record) []byte {
	return strconv.AppendInt(buf, int64(len(rec.Seq())), 10)
}

func appendMeanQual(buf []byte, rec readprovider.Record) []byte {
	return strconv.AppendFloat(buf, qc.MeanQualPhred(rec.Qual()), 'f', 4, 64)
}

func appendGC(buf []byte, rec readprovider.Record) []byte {
	return strconv.AppendFloat(buf, qc.GCFraction(rec.Seq()), 'f', 4, 64)
}
