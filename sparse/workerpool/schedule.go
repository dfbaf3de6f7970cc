// Copyright 2026 The spmvbench Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSchedule is returned by ParseKind for an unrecognized name.
var ErrUnknownSchedule = errors.New("unknown schedule")

// Kind selects how a parallel loop is partitioned among workers.
// It affects throughput only, never which ranges are processed.
type Kind int

const (
	// Static splits the loop into one contiguous block per worker, or deals
	// fixed-size chunks round-robin when a chunk size is given.
	Static Kind = iota

	// Dynamic lets workers grab fixed-size chunks from a shared counter.
	Dynamic

	// Guided lets workers grab chunks proportional to the remaining work,
	// shrinking toward the chunk size.
	Guided

	// Auto leaves the choice to the pool; it currently behaves like Static.
	Auto
)

// Kinds returns every schedule kind in declaration order.
func Kinds() []Kind {
	return []Kind{Static, Dynamic, Guided, Auto}
}

// String returns the schedule name accepted by ParseKind.
func (k Kind) String() string {
	switch k {
	case Static:
		return "static"
	case Dynamic:
		return "dynamic"
	case Guided:
		return "guided"
	case Auto:
		return "auto"
	default:
		return "unknown"
	}
}

// ParseKind maps a schedule name (static, dynamic, guided, auto) to a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w %q: valid are static, dynamic, guided, auto", ErrUnknownSchedule, s)
}

// Schedule is the partitioning policy injected into Pool.For.
//
// Chunk is a size hint: 0 selects the default for the kind.
type Schedule struct {
	Kind  Kind
	Chunk int
}

// String formats the schedule as "kind chunk=N".
func (s Schedule) String() string {
	return fmt.Sprintf("%s chunk=%d", s.Kind, s.Chunk)
}
