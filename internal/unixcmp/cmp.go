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

// Package unixcmp provides a simple wrapper around the unix cmp tool.
//
// This package is only for testing.
package unixcmp

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strconv"
)

var (
	differRE = regexp.MustCompile(`differ: (?:byte|char) (\d+)`)
	eofRE    = regexp.MustCompile(`EOF on \S+(?: after byte (\d+))?`)
)

// Cmp compares x and y using the cmp command line tool and returns the 0-based offset of the first
// byte that differs. It returns false if x and y are identical.
func Cmp(x, y string) (int, bool, error) {
	dir, err := os.MkdirTemp("", "cmp-*")
	if err != nil {
		return 0, false, fmt.Errorf("failed to create temporary directory: %v", err)
	}
	defer os.RemoveAll(dir)

	xfile := filepath.Join(dir, "x")
	yfile := filepath.Join(dir, "y")

	if err := os.WriteFile(xfile, []byte(x), 0o644); err != nil {
		return 0, false, fmt.Errorf("failed to write x file: %v", err)
	}
	if err := os.WriteFile(yfile, []byte(y), 0o644); err != nil {
		return 0, false, fmt.Errorf("failed to write y file: %v", err)
	}

	cmd := exec.Command("cmp", xfile, yfile)
	out, err := cmd.CombinedOutput()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return 0, false, nil
	case errors.As(err, &exitErr) && exitErr.ExitCode() == 1:
		// Files differ, parse the output below.
	default:
		return 0, false, fmt.Errorf("failed to run cmp command: %v\n%s", err, out)
	}

	if m := differRE.FindSubmatch(out); m != nil {
		n, err := strconv.Atoi(string(m[1]))
		if err != nil {
			return 0, false, fmt.Errorf("failed to parse cmp output %q: %v", out, err)
		}
		return n - 1, true, nil // cmp counts bytes starting at 1
	}
	if m := eofRE.FindSubmatch(out); m != nil {
		if len(m[1]) == 0 {
			// Older versions of cmp don't report the offset, but it's always the end of the
			// shorter input.
			return min(len(x), len(y)), true, nil
		}
		n, err := strconv.Atoi(string(m[1]))
		if err != nil {
			return 0, false, fmt.Errorf("failed to parse cmp output %q: %v", out, err)
		}
		return n, true, nil
	}
	return 0, false, fmt.Errorf("unexpected cmp output: %q", out)
}
