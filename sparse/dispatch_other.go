// Copyright 2026 The spmvbench Authors. SPDX-License-Identifier: Apache-2.0

//go:build !amd64 && !arm64

package sparse

func init() {
	currentLevel = LevelScalar
}
