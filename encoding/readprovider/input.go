package readprovider

import (
	"context"
	"io"
	"io/ioutil"
	"os"

	"github.com/grailbio/base/compress"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
)

// input is an open path plus the decompression stream layered over it.
type input struct {
	ctx  context.Context
	path string
	f    file.File // nil for Stdin
	r    io.ReadCloser
}

// openInput opens path for reading.  If decompress is set, gzip, bzip2 and
// zstd streams are detected by their magic bytes and decoded.
func openInput(ctx context.Context, path string, decompress bool) (*input, error) {
	in := &input{ctx: ctx, path: path}
	var r io.Reader
	if path == Stdin {
		r = os.Stdin
	} else {
		f, err := file.Open(ctx, path)
		if err != nil {
			return nil, errors.E(err, "open", path)
		}
		in.f = f
		r = f.Reader(ctx)
	}
	if decompress {
		in.r, _ = compress.NewReader(r)
	} else {
		in.r = ioutil.NopCloser(r)
	}
	return in, nil
}

// Close closes the decompression stream, then the file.  It returns the
// first error.
func (in *input) Close() error {
	e := errors.Once{}
	e.Set(in.r.Close())
	if in.f != nil {
		e.Set(in.f.Close(in.ctx))
	}
	if err := e.Err(); err != nil {
		return errors.E(err, "close", in.path)
	}
	return nil
}
