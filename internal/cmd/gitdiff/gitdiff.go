// Copyright 2026 Florian Zenker (flo@znkr.io)
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

// gitdiff is a tool that can be used with git using GIT_EXTERNAL_DIFF.
//
// Instead of a full diff, it prints the location of the first difference of every changed file:
//
//	GIT_EXTERNAL_DIFF=gitdiff git diff
//
// Set GITDIFF_UNIT to bytes or graphemes to change how columns are counted.
package main

import (
	"fmt"
	"io"
	"os"

	"znkr.io/firstdiff/linediff"
)

func main() {
	if err := run(os.Args, os.Getenv("GITDIFF_UNIT"), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, unit string, w io.Writer) error {
	if len(args) < 8 {
		return fmt.Errorf("expected at least 8 args, got %v: %v", len(args), args)
	}

	path, oldFile, oldHex, _, newFile, newHex, newMode := args[1], args[2], args[3], args[4], args[5], args[6], args[7]

	var opts []linediff.Option
	switch unit {
	case "", "runes":
	case "bytes":
		opts = append(opts, linediff.Bytes())
	case "graphemes":
		opts = append(opts, linediff.Graphemes())
	default:
		return fmt.Errorf("unknown unit in GITDIFF_UNIT: %q", unit)
	}

	report, err := linediff.Files(oldFile, newFile, opts...)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "diff --git a/%s b/%s\n", path, path)
	fmt.Fprintf(w, "index %s..%s %s\n", abbrev(oldHex), abbrev(newHex), newMode)
	io.WriteString(w, report)
	return nil
}

func abbrev(hex string) string {
	if len(hex) > 10 {
		return hex[:10]
	}
	return hex
}
