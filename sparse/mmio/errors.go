// Copyright 2026 The spmvbench Authors. SPDX-License-Identifier: Apache-2.0

package mmio

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned when the input holds no header line.
	ErrEmpty = errors.New("mmio: file contains only comments or is empty")

	// ErrHeader is returned for a header that is not three positive integers.
	ErrHeader = errors.New("mmio: invalid matrix header")

	// ErrEntry is returned for a missing or unparsable entry line.
	ErrEntry = errors.New("mmio: invalid matrix element")
)

// EntryError reports a malformed entry line.
//
// Entry is the 1-based entry number and Line the 1-based line in the file
// (0 when the entry is missing).
type EntryError struct {
	Entry int
	Line  int
	Text  string
	cause error
}

func (e *EntryError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("invalid matrix element at entry %d: missing", e.Entry)
	}
	if e.cause != nil {
		return fmt.Sprintf("invalid matrix element at entry %d (line %d) %q: %v", e.Entry, e.Line, e.Text, e.cause)
	}
	return fmt.Sprintf("invalid matrix element at entry %d (line %d) %q", e.Entry, e.Line, e.Text)
}

// Is matches ErrEntry.
func (e *EntryError) Is(target error) bool { return target == ErrEntry }

// Unwrap returns the underlying parse error, if any.
func (e *EntryError) Unwrap() error { return e.cause }
