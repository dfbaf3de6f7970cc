// Copyright 2026 The spmvbench Authors. SPDX-License-Identifier: Apache-2.0

package bench

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// DefaultResultsFile is the file the CLI writes run times to.
const DefaultResultsFile = "all_runs.txt"

// WriteResults writes a summary header followed by one run time per line,
// in milliseconds with six decimals.
func WriteResults(w io.Writer, res *Result) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "All %d runs (in ms) - Method %d (%s):\n", len(res.Times), int(res.Method), res.Method)
	for _, ms := range res.Times {
		fmt.Fprintf(bw, "%.6f\n", ms)
	}
	return bw.Flush()
}

// SaveResults writes res to path, replacing any existing file.
func SaveResults(path string, res *Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create output file %s: %w", path, err)
	}
	if err := WriteResults(f, res); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
