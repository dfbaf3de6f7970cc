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

// Command spmvbench times sparse matrix-vector multiplication.
//
// Usage:
//
//	spmvbench seq    matrix.mtx -r 10
//	spmvbench rows   matrix.mtx -r 20 -t 8 -s guided -c 16
//	spmvbench atomic matrix.mtx -r 20 -t 8 -s dynamic -c 64
//	spmvbench sell   matrix.mtx -r 20 -t 8 -c 8 -s 32
//
// Each subcommand loads the matrix, builds the layout its method needs,
// runs the kernel on a fresh random vector per run, prints one line per
// run and writes all run times to all_runs.txt (see --out).
//
// For sell, -c is the slice height C and -s the sort-block size sigma; the
// loop schedule is set with --schedule.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/tebeka/atexit"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		atexit.Exit(1)
	}
	fmt.Println("Program completed successfully.")
	atexit.Exit(0)
}
