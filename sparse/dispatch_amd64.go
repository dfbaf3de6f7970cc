// Copyright 2026 The spmvbench Authors. SPDX-License-Identifier: Apache-2.0

//go:build amd64

package sparse

import "golang.org/x/sys/cpu"

func init() {
	switch {
	case cpu.X86.HasAVX512F:
		currentLevel = LevelAVX512
	case cpu.X86.HasAVX2 && cpu.X86.HasFMA:
		currentLevel = LevelAVX2
	case cpu.X86.HasSSE2:
		currentLevel = LevelSSE2
	default:
		currentLevel = LevelScalar
	}
}
