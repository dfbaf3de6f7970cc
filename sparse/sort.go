// Copyright 2026 The spmvbench Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sparse

import (
	"math"
	"slices"
)

// sortInsertionThreshold: use insertion sort for inputs this size or smaller.
const sortInsertionThreshold = 64

// SortTriplets sorts triplets in place by row ascending, then column
// ascending. The sort is stable: duplicate (row, col) entries keep their
// relative input order and are never merged.
//
// Large inputs use an LSD radix sort over the packed (row, col) key.
// Inputs with an index outside [0, 2^32) fall back to a stable comparison
// sort.
func SortTriplets(ts []Triplet) {
	n := len(ts)
	if n <= 1 {
		return
	}

	if n <= sortInsertionThreshold {
		sortInsertion(ts)
		return
	}

	if !radixable(ts) {
		slices.SortStableFunc(ts, compareTriplets)
		return
	}

	radixSort(ts)
}

// IsSorted reports whether ts is ordered by (row, col).
func IsSorted(ts []Triplet) bool {
	for i := 1; i < len(ts); i++ {
		if ts[i].less(ts[i-1]) {
			return false
		}
	}
	return true
}

func compareTriplets(a, b Triplet) int {
	switch {
	case a.less(b):
		return -1
	case b.less(a):
		return 1
	default:
		return 0
	}
}

// sortInsertion is a stable insertion sort for small inputs.
func sortInsertion(ts []Triplet) {
	for i := 1; i < len(ts); i++ {
		t := ts[i]
		j := i - 1
		for j >= 0 && t.less(ts[j]) {
			ts[j+1] = ts[j]
			j--
		}
		ts[j+1] = t
	}
}

func radixable(ts []Triplet) bool {
	for _, t := range ts {
		if t.Row < 0 || t.Col < 0 || uint64(t.Row) > math.MaxUint32 || uint64(t.Col) > math.MaxUint32 {
			return false
		}
	}
	return true
}

// radixSort runs one stable counting pass per key byte, least significant
// first. Passes where every key shares the same byte are skipped.
func radixSort(ts []Triplet) {
	n := len(ts)
	keys := make([]uint64, n)
	for i, t := range ts {
		keys[i] = t.key()
	}

	srcKeys, dstKeys := keys, make([]uint64, n)
	src, dst := ts, make([]Triplet, n)

	for shift := 0; shift < 64; shift += 8 {
		if !radixPass(srcKeys, dstKeys, src, dst, shift) {
			continue
		}
		srcKeys, dstKeys = dstKeys, srcKeys
		src, dst = dst, src
	}

	if &src[0] != &ts[0] {
		copy(ts, src)
	}
}

// radixPass scatters src into dst by the byte of each key at shift.
// Returns false, leaving dst untouched, when all keys fall in one bucket.
func radixPass(srcKeys, dstKeys []uint64, src, dst []Triplet, shift int) bool {
	var count [256]int
	for _, k := range srcKeys {
		count[(k>>shift)&0xFF]++
	}

	for _, c := range count {
		if c == len(srcKeys) {
			return false
		}
	}

	// Prefix sum to get bucket offsets
	offset := 0
	for b := range count {
		c := count[b]
		count[b] = offset
		offset += c
	}

	for i, k := range srcKeys {
		digit := (k >> shift) & 0xFF
		dstKeys[count[digit]] = k
		dst[count[digit]] = src[i]
		count[digit]++
	}
	return true
}
