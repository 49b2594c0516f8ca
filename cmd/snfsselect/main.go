// Copyright 2020 ConsenSys AG
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

// Command snfsselect recognizes a special algebraic form of N, synthesizes
// and ranks SNFS polynomial candidates, and writes the winning poly file
// (spec.md §6). Grounded on the CLI-less driver flow of
// _examples/original_source/factor/nfs/snfs.c; no CLI framework appears
// anywhere in the retrieved corpus, so flags use the standard library.
package main

import (
	"errors"
	"flag"
	"fmt"
	"math/big"
	"os"

	"github.com/nfscore/snfspoly/engine"
	"github.com/nfscore/snfspoly/form"
	"github.com/nfscore/snfspoly/internal/profiling"
	"github.com/nfscore/snfspoly/internal/snfslog"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("snfsselect", flag.ContinueOnError)
	n := fs.String("n", "", "decimal integer to select an SNFS polynomial for (required)")
	maxBase := fs.Int("max-base", 100, "maximum base scanned by the form recognizer")
	maxBits := fs.Int("max-bits", 1000, "maximum bit length of base^exponent scanned")
	verbosity := fs.Int("v", 0, "diagnostic verbosity (0, 1, 2+)")
	threshold := fs.Float64("testsieve-threshold", 100.0, "scaled difficulty above which test sieving is justified")
	out := fs.String("out", "", "poly file output path (default: stdout)")
	dumpPath := fs.String("dump-candidates", "", "optional CBOR dump of every ranked candidate")
	profilePath := fs.String("profile", "", "optional CPU profile output path")

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if *n == "" {
		fmt.Fprintln(os.Stderr, "snfsselect: -n is required")
		return 1
	}

	snfslog.SetVerbosity(*verbosity)

	value, ok := new(big.Int).SetString(*n, 10)
	if !ok {
		fmt.Fprintf(os.Stderr, "snfsselect: %q is not a valid decimal integer\n", *n)
		return 1
	}

	sess, err := profiling.Start(*profilePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "snfsselect:", err)
		return 1
	}
	defer sess.Stop()

	cfg := engine.DefaultConfig()
	cfg.MaxBase = *maxBase
	cfg.MaxBits = *maxBits
	cfg.Verbosity = *verbosity
	cfg.TestSieveThreshold = *threshold

	eng := engine.New(cfg)
	result, err := eng.Select(value)
	if err != nil {
		if errors.Is(err, form.ErrNoFormFound) {
			fmt.Fprintln(os.Stderr, "snfsselect: no special form found, fall back to general NFS")
			return 2
		}
		fmt.Fprintln(os.Stderr, "snfsselect:", err)
		return 1
	}

	outW := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			fmt.Fprintln(os.Stderr, "snfsselect:", err)
			return 1
		}
		defer f.Close()
		outW = f
	}
	if err := engine.WritePolyFile(outW, value, result.Form, result.Winner()); err != nil {
		fmt.Fprintln(os.Stderr, "snfsselect:", err)
		return 1
	}

	if *dumpPath != "" {
		df, err := os.Create(*dumpPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "snfsselect:", err)
			return 1
		}
		defer df.Close()
		if err := engine.DumpCandidates(df, value, result.Form, result.Candidates); err != nil {
			fmt.Fprintln(os.Stderr, "snfsselect:", err)
			return 1
		}
	}

	return 0
}
