// Copyright 2026 The spmvbench Authors. SPDX-License-Identifier: Apache-2.0

package mmio

import (
	"bufio"
	"fmt"
	"io"
	"runtime"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/spmvbench/sparse"
)

// minParallelEntries is the entry count below which parsing stays on the
// calling goroutine.
const minParallelEntries = 1 << 14

// Matrix is a validated coordinate-form matrix with 0-based indices.
type Matrix struct {
	Rows, Cols int
	Entries    []sparse.Triplet

	// OneBased records whether the input was detected as 1-based.
	OneBased bool
	// Comments is the number of leading comment lines skipped.
	Comments int
}

// NNZ returns the number of entries.
func (m *Matrix) NNZ() int { return len(m.Entries) }

// CSR sorts the entries in place and builds a CSR matrix from them.
func (m *Matrix) CSR() (*sparse.CSR, error) {
	return sparse.FromTriplets(m.Entries, m.Rows, m.Cols)
}

type options struct {
	parallelism int
}

// Option configures Read and Load.
type Option func(*options)

// WithParallelism sets how many goroutines parse entry lines. Values <= 0
// select GOMAXPROCS.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}

// Load reads the matrix stored at path.
func Load(path string, opts ...Option) (*Matrix, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	m, err := Read(rc, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// rawEntry is an entry line awaiting parsing.
type rawEntry struct {
	line int
	text string
}

// Read parses a matrix from r.
func Read(r io.Reader, opts ...Option) (*Matrix, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.parallelism <= 0 {
		o.parallelism = runtime.GOMAXPROCS(0)
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	m := &Matrix{}
	lineNo := 0
	header := ""
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, "%") {
			m.Comments++
			continue
		}
		if line == "" {
			continue
		}
		header = line
		break
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if header == "" {
		return nil, ErrEmpty
	}

	nnz, err := parseHeader(header, m)
	if err != nil {
		return nil, err
	}

	raw := make([]rawEntry, 0, nnz)
	for len(raw) < nnz && sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		raw = append(raw, rawEntry{line: lineNo, text: line})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(raw) < nnz {
		return nil, &EntryError{Entry: len(raw) + 1}
	}

	m.Entries = make([]sparse.Triplet, nnz)
	maxRow, maxCol, err := parseEntries(raw, m.Entries, o.parallelism)
	if err != nil {
		return nil, err
	}

	if maxRow == m.Rows || maxCol == m.Cols {
		m.OneBased = true
		for i := range m.Entries {
			m.Entries[i].Row--
			m.Entries[i].Col--
		}
	}

	for i, t := range m.Entries {
		if t.Row < 0 || t.Row >= m.Rows || t.Col < 0 || t.Col >= m.Cols {
			return nil, &sparse.IndexError{Entry: i, Row: t.Row, Col: t.Col, Rows: m.Rows, Cols: m.Cols}
		}
	}

	return m, nil
}

func parseHeader(line string, m *Matrix) (int, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrHeader, line)
	}

	var dims [3]int
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", ErrHeader, line, err)
		}
		dims[i] = v
	}
	if dims[0] <= 0 || dims[1] <= 0 || dims[2] <= 0 {
		return 0, fmt.Errorf("%w: dimensions must be positive, got %d x %d with %d non-zero elements",
			ErrHeader, dims[0], dims[1], dims[2])
	}

	m.Rows, m.Cols = dims[0], dims[1]
	return dims[2], nil
}

// parseEntries parses raw into out, splitting the work into contiguous
// chunks. It returns the largest row and column index seen.
func parseEntries(raw []rawEntry, out []sparse.Triplet, parallelism int) (int, int, error) {
	chunks := 1
	if len(raw) >= minParallelEntries {
		chunks = min(parallelism, len(raw))
	}
	chunkSize := (len(raw) + chunks - 1) / chunks

	maxRows := make([]int, chunks)
	maxCols := make([]int, chunks)

	var g errgroup.Group
	for c := range chunks {
		start := c * chunkSize
		end := min(start+chunkSize, len(raw))
		g.Go(func() error {
			for i := start; i < end; i++ {
				t, err := parseEntry(raw[i].text)
				if err != nil {
					return &EntryError{Entry: i + 1, Line: raw[i].line, Text: raw[i].text, cause: err}
				}
				out[i] = t
				maxRows[c] = max(maxRows[c], t.Row)
				maxCols[c] = max(maxCols[c], t.Col)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, 0, err
	}

	return slices.Max(maxRows), slices.Max(maxCols), nil
}

func parseEntry(line string) (sparse.Triplet, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return sparse.Triplet{}, fmt.Errorf("want 3 fields, got %d", len(fields))
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return sparse.Triplet{}, err
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return sparse.Triplet{}, err
	}
	val, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return sparse.Triplet{}, err
	}
	return sparse.Triplet{Row: row, Col: col, Val: val}, nil
}
