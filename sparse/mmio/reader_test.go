// Copyright 2026 The spmvbench Authors. SPDX-License-Identifier: Apache-2.0

package mmio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/spmvbench/sparse"
)

const scenario = `%%MatrixMarket matrix coordinate real general
% a 3x3 example
3 3 4
0 0 1.0
0 2 2.0
1 1 3.0
2 0 4.0
`

func TestReadZeroBased(t *testing.T) {
	m, err := Read(strings.NewReader(scenario))
	require.NoError(t, err)

	assert.Equal(t, 3, m.Rows)
	assert.Equal(t, 3, m.Cols)
	assert.Equal(t, 4, m.NNZ())
	assert.Equal(t, 2, m.Comments)
	assert.False(t, m.OneBased)
	assert.Equal(t, []sparse.Triplet{
		{Row: 0, Col: 0, Val: 1},
		{Row: 0, Col: 2, Val: 2},
		{Row: 1, Col: 1, Val: 3},
		{Row: 2, Col: 0, Val: 4},
	}, m.Entries)
}

func TestReadOneBased(t *testing.T) {
	m, err := Read(strings.NewReader("2 2 2\n1 1 5.0\n2 2 6.0\n"))
	require.NoError(t, err)

	assert.True(t, m.OneBased)
	assert.Equal(t, []sparse.Triplet{{Row: 0, Col: 0, Val: 5}, {Row: 1, Col: 1, Val: 6}}, m.Entries)

	a, err := m.CSR()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, a.RowPtr())
}

func TestReadOneBasedByColumn(t *testing.T) {
	// Max row 1 < rows, but max col equals cols.
	m, err := Read(strings.NewReader("4 3 2\n1 3 1\n2 1 1\n"))
	require.NoError(t, err)
	assert.True(t, m.OneBased)
	assert.Equal(t, sparse.Triplet{Row: 0, Col: 2, Val: 1}, m.Entries[0])
}

func TestReadToleratesBlankLinesAndSpacing(t *testing.T) {
	m, err := Read(strings.NewReader("\n%c\n\n  2   3   2  \n\n0\t2\t-1e3\n% mid\n1 0 .5\n"))
	require.NoError(t, err)
	assert.Equal(t, []sparse.Triplet{{Row: 0, Col: 2, Val: -1000}, {Row: 1, Col: 0, Val: 0.5}}, m.Entries)
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", ErrEmpty},
		{"only comments", "% one\n% two\n", ErrEmpty},
		{"header two fields", "3 3\n0 0 1\n", ErrHeader},
		{"header four fields", "3 3 1 1\n0 0 1\n", ErrHeader},
		{"header not a number", "3 x 1\n0 0 1\n", ErrHeader},
		{"header zero nnz", "3 3 0\n", ErrHeader},
		{"header negative rows", "-3 3 1\n0 0 1\n", ErrHeader},
		{"entry missing value", "2 2 1\n0 0\n", ErrEntry},
		{"entry bad float", "2 2 1\n0 0 abc\n", ErrEntry},
		{"entry bad index", "2 2 1\n0.5 0 1\n", ErrEntry},
		{"too few entries", "2 2 3\n0 0 1\n1 1 1\n", ErrEntry},
		{"row out of range", "2 2 1\n5 0 1\n", sparse.ErrIndexOutOfRange},
		{"negative after normalization", "3 3 2\n0 0 1\n3 1 1\n", sparse.ErrIndexOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Read(strings.NewReader(tt.input))
			assert.Nil(t, m)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestReadEntryErrorDetails(t *testing.T) {
	_, err := Read(strings.NewReader("% c\n2 2 2\n0 0 1\n1 x 1\n"))
	var ee *EntryError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, 2, ee.Entry)
	assert.Equal(t, 4, ee.Line)
	assert.Contains(t, ee.Error(), "entry 2")

	_, err = Read(strings.NewReader("2 2 2\n0 0 1\n"))
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, 2, ee.Entry)
	assert.Contains(t, ee.Error(), "missing")
}

func TestReadIndexErrorDetails(t *testing.T) {
	_, err := Read(strings.NewReader("3 3 2\n0 0 1\n3 1 1\n"))
	var ie *sparse.IndexError
	require.ErrorAs(t, err, &ie)
	// 1-based detection fires on the 3, so entry 1 becomes (-1,-1).
	assert.Equal(t, 0, ie.Entry)
	assert.Equal(t, -1, ie.Row)
}

func largeInput(n int) (string, []sparse.Triplet) {
	var sb strings.Builder
	rows, cols := n/4+1, 1000
	fmt.Fprintf(&sb, "%d %d %d\n", rows, cols, n)
	want := make([]sparse.Triplet, n)
	for i := range n {
		want[i] = sparse.Triplet{Row: i / 4, Col: (i * 7) % (cols - 1), Val: float64(i) / 8}
		fmt.Fprintf(&sb, "%d %d %g\n", want[i].Row, want[i].Col, want[i].Val)
	}
	return sb.String(), want
}

func TestReadParallel(t *testing.T) {
	input, want := largeInput(minParallelEntries*2 + 3)

	for _, par := range []int{1, 3, 8} {
		m, err := Read(strings.NewReader(input), WithParallelism(par))
		require.NoError(t, err)
		assert.False(t, m.OneBased)
		require.Equal(t, want, m.Entries, "parallelism %d", par)
	}
}

func TestReadParallelReportsBadEntry(t *testing.T) {
	input, _ := largeInput(minParallelEntries + 10)
	lines := strings.Split(input, "\n")
	lines[minParallelEntries] = "1 2 three"
	_, err := Read(strings.NewReader(strings.Join(lines, "\n")), WithParallelism(4))

	var ee *EntryError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, minParallelEntries, ee.Entry)
}

func TestLoadCompressed(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "m.mtx")
	require.NoError(t, os.WriteFile(plain, []byte(scenario), 0o644))

	zst := filepath.Join(dir, "m.mtx.zst")
	f, err := os.Create(zst)
	require.NoError(t, err)
	zw, err := zstd.NewWriter(f)
	require.NoError(t, err)
	_, err = zw.Write([]byte(scenario))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	lz := filepath.Join(dir, "m.mtx.lz4")
	f, err = os.Create(lz)
	require.NoError(t, err)
	lw := lz4.NewWriter(f)
	_, err = lw.Write([]byte(scenario))
	require.NoError(t, err)
	require.NoError(t, lw.Close())
	require.NoError(t, f.Close())

	for _, path := range []string{plain, zst, lz} {
		m, err := Load(path)
		require.NoError(t, err, path)
		assert.Equal(t, 4, m.NNZ(), path)
		assert.Equal(t, 4.0, m.Entries[3].Val, path)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.mtx"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
