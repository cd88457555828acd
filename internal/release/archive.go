// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package release

import (
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zip"
	"golang.org/x/sync/errgroup"
)

// writeArchive creates a zip archive at dst holding the named members of
// dir, compressed with deflate at the best compression level. Member names
// are stored flat, without directory prefixes.
//
// The archive writer and the output file are joined through a pipe:
// writeArchive returns only after the writer has been finalized and the
// file has been flushed and closed.
func writeArchive(dst, dir string, members []string) error {
	f, err := os.Create(dst)
	if err != nil {
		return err
	}

	pr, pw := io.Pipe()
	var g errgroup.Group

	// Output stream: copy archive bytes to the file, then close it.
	g.Go(func() error {
		_, err := io.Copy(f, pr)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		// Unblock the writer if the file can't take more bytes.
		pr.CloseWithError(err)
		return err
	})

	// Finalize: write members and the central directory.
	g.Go(func() error {
		err := compress(pw, dir, members)
		pw.CloseWithError(err)
		return err
	})

	return g.Wait()
}

func compress(w io.Writer, dir string, members []string) error {
	zw := zip.NewWriter(w)
	zw.RegisterCompressor(zip.Deflate, func(w io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(w, flate.BestCompression)
	})

	for _, name := range members {
		if err := addMember(zw, filepath.Join(dir, name), filepath.Base(name)); err != nil {
			return err
		}
	}
	return zw.Close()
}

func addMember(zw *zip.Writer, path, name string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return err
	}
	hdr, err := zip.FileInfoHeader(fi)
	if err != nil {
		return err
	}
	hdr.Name = name
	hdr.Method = zip.Deflate

	w, err := zw.CreateHeader(hdr)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, f)
	return err
}
