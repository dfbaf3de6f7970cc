// Copyright 2026 The spmvbench Authors. SPDX-License-Identifier: Apache-2.0

package sparse

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCSR(t *testing.T, ts []Triplet, rows, cols int) *CSR {
	t.Helper()
	m, err := FromTriplets(ts, rows, cols)
	require.NoError(t, err)
	return m
}

// skewedTriplets builds a matrix whose row lengths vary from empty to dense.
func skewedTriplets(rng *rand.Rand, rows, cols int) []Triplet {
	var ts []Triplet
	for r := range rows {
		n := 0
		switch r % 5 {
		case 0:
			n = 0
		case 1:
			n = cols
		default:
			n = rng.IntN(cols / 2)
		}
		for range n {
			ts = append(ts, Triplet{Row: r, Col: rng.IntN(cols), Val: rng.Float64()})
		}
	}
	return ts
}

func TestBuildSell(t *testing.T) {
	a := mustCSR(t, scenario3x3(), 3, 3)

	s, err := BuildSell(a, 2, 1)
	require.NoError(t, err)

	assert.Equal(t, 2, s.C())
	assert.Equal(t, 1, s.Sigma())
	assert.Equal(t, 3, s.Rows())
	assert.Equal(t, 3, s.Cols())
	assert.Equal(t, 2, s.Slices())
	assert.Equal(t, []int{2, 1}, s.SliceLengths())
	assert.Equal(t, []int{0, 4, 6}, s.SlicePtr())
	assert.Equal(t, []float64{1, 3, 2, 0, 4, 0}, s.Values())
	assert.Equal(t, []int{0, 1, 2, 0, 0, 0}, s.ColIdx())
	assert.Equal(t, 6, s.Len())
	assert.Equal(t, 4, s.NNZ())
	assert.InDelta(t, 4.0/6.0, s.Fill(), 1e-12)

	start, end := s.SliceRows(1)
	assert.Equal(t, 2, start)
	assert.Equal(t, 3, end)
}

func TestBuildSellPaddingIsZero(t *testing.T) {
	rng := rand.New(rand.NewPCG(21, 22))
	const rows, cols = 53, 17
	a := mustCSR(t, skewedTriplets(rng, rows, cols), rows, cols)

	for _, cfg := range []struct{ c, sigma int }{{1, 1}, {4, 1}, {4, 2}, {4, 4}, {8, 2}, {32, 1}, {64, 8}} {
		s, err := BuildSell(a, cfg.c, cfg.sigma)
		require.NoError(t, err, "C=%d sigma=%d", cfg.c, cfg.sigma)

		for sl := range s.Slices() {
			start, _ := s.SliceRows(sl)
			for local := range cfg.c {
				r := start + local
				n := 0
				if r < rows {
					n = a.RowLen(r)
				}
				for k := n; k < s.SliceLengths()[sl]; k++ {
					idx := s.SlicePtr()[sl] + k*cfg.c + local
					require.Zero(t, s.Values()[idx], "C=%d sigma=%d slice %d row %d k %d", cfg.c, cfg.sigma, sl, r, k)
					require.Zero(t, s.ColIdx()[idx])
				}
			}
		}
	}
}

func TestBuildSellKeepsRowOrder(t *testing.T) {
	rng := rand.New(rand.NewPCG(23, 24))
	const rows, cols = 40, 12
	a := mustCSR(t, skewedTriplets(rng, rows, cols), rows, cols)

	s, err := BuildSell(a, 8, 4)
	require.NoError(t, err)

	for r := range rows {
		sl, local := r/8, r%8
		cols, vals := a.Row(r)
		for k := range vals {
			idx := s.SlicePtr()[sl] + k*8 + local
			assert.Equal(t, vals[k], s.Values()[idx], "row %d entry %d", r, k)
			assert.Equal(t, cols[k], s.ColIdx()[idx], "row %d entry %d", r, k)
		}
	}
}

func TestBuildSellSliceLengthsFollowSortedTable(t *testing.T) {
	// Row lengths 1,1,2,2. One sigma block of 4 sorts them to 2,2,1,1, so
	// slice 0 is padded to 2 and slice 1 to 1, while row 2 needs 2.
	ts := []Triplet{
		{0, 0, 1},
		{1, 0, 1},
		{2, 0, 1}, {2, 1, 1},
		{3, 0, 1}, {3, 1, 1},
	}
	a := mustCSR(t, ts, 4, 2)

	s, err := BuildSell(a, 2, 4)
	assert.Nil(t, s)
	require.ErrorIs(t, err, ErrSliceOverflow)

	var oe *SliceOverflowError
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, 2, oe.Row)
	assert.Equal(t, 1, oe.Slice)
	assert.Equal(t, 2, oe.RowLen)
	assert.Equal(t, 1, oe.SliceLen)

	// With sigma dividing C every slice holds whole sort blocks.
	s, err = BuildSell(a, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, s.SliceLengths())
}

func TestBuildSellSingleRow(t *testing.T) {
	a := mustCSR(t, []Triplet{{0, 3, 1}, {0, 1, 2}}, 1, 4)
	s, err := BuildSell(a, 4, 4)
	require.NoError(t, err)

	assert.Equal(t, 1, s.Slices())
	assert.Equal(t, []int{2}, s.SliceLengths())
	assert.Equal(t, []float64{2, 0, 0, 0, 1, 0, 0, 0}, s.Values())
	assert.Equal(t, []int{1, 0, 0, 0, 3, 0, 0, 0}, s.ColIdx())
}

func TestBuildSellErrors(t *testing.T) {
	a := mustCSR(t, scenario3x3(), 3, 3)

	_, err := BuildSell(a, 0, 1)
	assert.ErrorIs(t, err, ErrSliceHeight)

	_, err = BuildSell(a, 2, 0)
	assert.ErrorIs(t, err, ErrSigma)
}

func TestBuildSellIndependentStorage(t *testing.T) {
	a := mustCSR(t, scenario3x3(), 3, 3)
	s, err := BuildSell(a, 1, 1)
	require.NoError(t, err)

	s.Values()[0] = 99
	assert.Equal(t, 1.0, a.Values()[0])
}

func BenchmarkBuildSell(b *testing.B) {
	rng := rand.New(rand.NewPCG(25, 26))
	ts := skewedTriplets(rng, 4096, 256)
	a, err := FromTriplets(ts, 4096, 256)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := BuildSell(a, 8, 8); err != nil {
			b.Fatal(err)
		}
	}
}
