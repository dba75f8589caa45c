// Copyright (c) 2024 Neomantra Corp

package itchlob

import (
	"archive/zip"
	"bufio"
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// magic byte prefixes identifying a compression envelope on an input
// stream, per §6. Checked in this order against the stream's first bytes.
var (
	magicGzip = []byte{0x1f, 0x8b}
	magicBzip = []byte("BZ")
	magicXZ   = []byte{0xfd, '7', 'z', 'X', 'Z'}
	magicZip  = []byte("PK")
)

// OpenCompressedReader returns an io.Reader for filename, transparently
// decompressing gzip/bzip2/xz/zip envelopes detected by magic bytes (not
// filename suffix) — grounded on
// _examples/original_source/src/meatpy/message_reader.py's
// _detect_compression/_open_file. "-" reads stdin, sniffed the same way;
// a zip envelope cannot be opened from stdin. The
// returned closer releases every resource opened along the way (the
// underlying file, any intermediate zip reader) on a single Close call.
func OpenCompressedReader(filename string) (io.Reader, io.Closer, error) {
	var file *os.File
	var err error
	if filename == "-" {
		file = os.Stdin
	} else {
		file, err = os.Open(filename)
		if err != nil {
			return nil, nil, err
		}
	}

	buffered := bufio.NewReaderSize(file, DefaultDecodeBufferSize)
	peek, _ := buffered.Peek(6)

	closeFile := func() error {
		if file == os.Stdin {
			return nil
		}
		return file.Close()
	}

	switch {
	case bytes.HasPrefix(peek, magicGzip):
		gr, err := gzip.NewReader(buffered)
		if err != nil {
			closeFile()
			return nil, nil, err
		}
		return gr, closerFunc(func() error {
			gr.Close()
			return closeFile()
		}), nil

	case bytes.HasPrefix(peek, magicBzip):
		return bzip2.NewReader(buffered), closerFunc(closeFile), nil

	case bytes.HasPrefix(peek, magicXZ):
		xr, err := xz.NewReader(buffered)
		if err != nil {
			closeFile()
			return nil, nil, err
		}
		return xr, closerFunc(closeFile), nil

	case bytes.HasPrefix(peek, magicZip):
		// archive/zip needs an io.ReaderAt over the whole archive, so the
		// already-buffered prefix can't be reused; reopen by path instead.
		closeFile()
		zr, err := zip.OpenReader(filename)
		if err != nil {
			return nil, nil, err
		}
		if len(zr.File) == 0 {
			zr.Close()
			return nil, nil, ErrEmptyZipArchive
		}
		entry, err := zr.File[0].Open()
		if err != nil {
			zr.Close()
			return nil, nil, err
		}
		return entry, closerFunc(func() error {
			entry.Close()
			return zr.Close()
		}), nil

	default:
		return buffered, closerFunc(closeFile), nil
	}
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// MakeCompressedWriter returns an io.Writer for filename ("-" for stdout)
// and a closing function to defer, zstd-compressing the output when
// useZstd is set or filename ends in ".zst"/".zstd". Grounded directly on
// _examples/NimbleMarkets-dbn-go/compressed_io.go's MakeCompressedWriter,
// kept zstd-only on the write side since the writer's only job (§4.I) is
// re-emitting a framed stream, not originating novel compressed archives.
func MakeCompressedWriter(filename string, useZstd bool) (io.Writer, func(), error) {
	var writer io.Writer
	var closer io.Closer
	fileCloser := func() {
		if closer != nil {
			closer.Close()
		}
	}
	if filename != "-" {
		file, err := os.Create(filename)
		if err != nil {
			return nil, nil, err
		}
		writer, closer = file, file
	} else {
		writer, closer = os.Stdout, nil
	}

	if useZstd || strings.HasSuffix(filename, ".zst") || strings.HasSuffix(filename, ".zstd") {
		zstdWriter, err := zstd.NewWriter(writer)
		if err != nil {
			fileCloser()
			return nil, nil, err
		}
		return zstdWriter, func() { zstdWriter.Close(); fileCloser() }, nil
	}
	return writer, fileCloser, nil
}
