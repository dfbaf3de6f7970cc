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

// Package sparse provides the storage layouts used by the SpMV benchmark.
//
// # Layouts
//
// Two layouts are supported:
//   - CSR (compressed sparse row): values, column indices and a row-boundary
//     offset table. Built from coordinate triplets with BuildCSR.
//   - SELL-C-σ: rows grouped into slices of height C, each slice padded to
//     a per-slice row length and stored column-major with stride C. Built
//     from a CSR with BuildSell.
//
// Both layouts are immutable once built. Each owns all of its arrays, and
// no array is shared between a CSR and a SellCS derived from it.
//
// # Construction
//
//	triplets := []sparse.Triplet{
//	    {Row: 0, Col: 0, Val: 1},
//	    {Row: 0, Col: 2, Val: 2},
//	    {Row: 1, Col: 1, Val: 3},
//	    {Row: 2, Col: 0, Val: 4},
//	}
//	sparse.SortTriplets(triplets)
//	a, err := sparse.BuildCSR(triplets, 3, 3)
//	if err != nil {
//	    return err
//	}
//	s, err := sparse.BuildSell(a, 2, 1)
//
// # SELL-C-σ padding
//
// Within each block of σ consecutive rows, the row-length metadata is
// sorted in descending order before slice lengths are chosen. Rows
// themselves are never permuted: row r always lives in slice r/C. Padding
// entries carry the value 0.0 and column index 0.
package sparse
