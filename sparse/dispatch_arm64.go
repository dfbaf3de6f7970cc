// Copyright 2026 The spmvbench Authors. SPDX-License-Identifier: Apache-2.0

//go:build arm64

package sparse

import "golang.org/x/sys/cpu"

func init() {
	switch {
	case cpu.ARM64.HasSVE:
		currentLevel = LevelSVE
	case cpu.ARM64.HasASIMD:
		currentLevel = LevelNEON
	default:
		currentLevel = LevelScalar
	}
}
