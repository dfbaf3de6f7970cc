// Copyright 2026 The spmvbench Authors. SPDX-License-Identifier: Apache-2.0

// Package mmio reads sparse matrices in coordinate text form.
//
// # Format
//
//	% comment lines start with '%' and are skipped
//	rows cols nnz
//	row col value
//	...            (nnz entry lines)
//
// Indices may be 0-based or 1-based. Input is treated as 1-based when the
// largest row index equals rows or the largest column index equals cols;
// every index is then decremented. After normalization every entry must
// lie in [0,rows)x[0,cols), otherwise the load fails.
//
// A load either returns a fully validated Matrix or an error; partially
// parsed data is never returned.
//
// Files named *.zst or *.lz4 are decompressed while reading.
package mmio
