// Copyright 2026 The spmvbench Authors. SPDX-License-Identifier: Apache-2.0

package sparse

// Triplet is one nonzero entry in coordinate form.
type Triplet struct {
	Row int
	Col int
	Val float64
}

// less orders triplets by row, then column.
func (t Triplet) less(o Triplet) bool {
	if t.Row != o.Row {
		return t.Row < o.Row
	}
	return t.Col < o.Col
}

// key packs (row, col) into a single radix key. Both indices must be in
// [0, 2^32).
func (t Triplet) key() uint64 {
	return uint64(t.Row)<<32 | uint64(uint32(t.Col))
}
