// Copyright 2026 The spmvbench Authors. SPDX-License-Identifier: Apache-2.0

package mmio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Open opens path for reading, decompressing *.zst and *.lz4 files.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open file '%s': %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst", ".zstd":
		dec, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("zstd reader for '%s': %w", path, err)
		}
		return &decodedFile{Reader: dec, close: func() error {
			dec.Close()
			return f.Close()
		}}, nil
	case ".lz4":
		return &decodedFile{Reader: lz4.NewReader(f), close: f.Close}, nil
	default:
		return f, nil
	}
}

// decodedFile closes the decoder and the underlying file together.
type decodedFile struct {
	io.Reader
	close func() error
}

func (d *decodedFile) Close() error { return d.close() }
