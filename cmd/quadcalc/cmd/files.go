package cmd

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/zeebo/errs"
)

// zstdExt marks files that are zstd compressed.
const zstdExt = ".zst"

// baseExt returns the extension of path ignoring a trailing zstdExt.
func baseExt(path string) string {
	if strings.EqualFold(filepath.Ext(path), zstdExt) {
		path = strings.TrimSuffix(path, filepath.Ext(path))
	}

	return strings.ToLower(filepath.Ext(path))
}

type zstdReader struct {
	*zstd.Decoder
	f *os.File
}

func (r zstdReader) Close() error {
	r.Decoder.Close()

	return r.f.Close()
}

type zstdWriter struct {
	*zstd.Encoder
	f *os.File
}

func (w zstdWriter) Close() error {
	return errs.Combine(w.Encoder.Close(), w.f.Close())
}

// openFile opens path for reading, decompressing it when it ends in
// zstdExt.
func openFile(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Error.Wrap(err)
	}

	if !strings.EqualFold(filepath.Ext(path), zstdExt) {
		return f, nil
	}

	z, err := zstd.NewReader(f)
	if err != nil {
		return nil, Error.Wrap(errs.Combine(err, f.Close()))
	}

	return zstdReader{Decoder: z, f: f}, nil
}

// createFile creates path for writing, compressing it when it ends in
// zstdExt.
func createFile(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, Error.Wrap(err)
	}

	if !strings.EqualFold(filepath.Ext(path), zstdExt) {
		return f, nil
	}

	z, err := zstd.NewWriter(f)
	if err != nil {
		return nil, Error.Wrap(errs.Combine(err, f.Close()))
	}

	return zstdWriter{Encoder: z, f: f}, nil
}
