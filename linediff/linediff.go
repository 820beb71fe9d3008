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

// Package linediff locates the first difference between two lines of text or two texts compared
// line by line and renders it for humans.
//
// A rendered difference shows both lines with a marker line in between that points at the first
// column that differs:
//
//	Line 1:
//	foo
//	^
//	bar
package linediff

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"znkr.io/firstdiff"
	"znkr.io/firstdiff/internal/config"
	"znkr.io/firstdiff/internal/lines"
)

// NoDifferences is the report for two identical documents.
const NoDifferences = "No differences\n"

const (
	caret = "^"
	reset = "\033[0m"
)

// Index returns the index of the first column that differs between the lines a and b.
//
// If one line is a prefix of the other, the index is the length of the shorter line. If a and b
// are identical, Index returns false.
//
// The following options are supported: [Runes], [Bytes], [Graphemes]
func Index(a, b string, opts ...Option) (int, bool) {
	cfg := config.FromOptions(opts, config.Units)
	return lines.Index(a, b, cfg.Unit)
}

// Locate returns the location of the first difference between the documents x and y, each given
// as a slice of lines without line terminators.
//
// If all lines x and y have in common are identical but one document is longer, the location is
// the first line that only exists in the longer document and column 0. If x and y are identical,
// Locate returns false.
//
// The following options are supported: [Runes], [Bytes], [Graphemes]
func Locate(x, y []string, opts ...Option) (firstdiff.Location, bool) {
	cfg := config.FromOptions(opts, config.Units)
	return locate(x, y, cfg)
}

func locate(x, y []string, cfg config.Config) (firstdiff.Location, bool) {
	return firstdiff.LocateFunc(x, y, func(a, b string) (int, bool) {
		return lines.Index(a, b, cfg.Unit)
	})
}

// Format renders the first difference between the lines a and b at column idx as three lines: a,
// a marker line with idx fill characters followed by a caret, and b. Every line, including the
// last, ends in "\n".
//
// Format returns an empty string if a or b contains a line terminator ('\n' or '\r') or if idx is
// not in [0, min(len(a), len(b))]. An idx equal to the length of the shorter line is valid, it
// points just past the end of the shorter line.
//
// Format doesn't verify that idx is the first difference, it's usually obtained from [Index].
//
// The following options are supported: [Runes], [Bytes], [Graphemes], [Fill], [AlignWidth],
// [TerminalColors]
func Format(a, b string, idx int, opts ...Option) string {
	cfg := config.FromOptions(opts, config.Units|config.Fill|config.AlignWidth|config.Colors)
	var sb strings.Builder
	if !format(&sb, a, b, idx, cfg) {
		return ""
	}
	return sb.String()
}

func format(sb *strings.Builder, a, b string, idx int, cfg config.Config) bool {
	if strings.ContainsAny(a, "\r\n") || strings.ContainsAny(b, "\r\n") {
		return false
	}
	if idx < 0 || idx > min(lines.Len(a, cfg.Unit), lines.Len(b, cfg.Unit)) {
		return false
	}

	var cx, cy, cm string
	if cfg.Colors != nil {
		cx, cy, cm = cfg.Colors.X, cfg.Colors.Y, cfg.Colors.Marker
	}
	writeColored(sb, cx, a)
	sb.WriteByte('\n')
	writeColored(sb, cm, marker(a, idx, cfg)+caret)
	sb.WriteByte('\n')
	writeColored(sb, cy, b)
	sb.WriteByte('\n')
	return true
}

// marker returns the fill characters in front of the caret.
func marker(line string, idx int, cfg config.Config) string {
	fill := string(cfg.Fill)
	if !cfg.AlignWidth {
		return strings.Repeat(fill, idx)
	}

	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false
	cond.StrictEmojiNeutral = true

	var sb strings.Builder
	g := uniseg.NewGraphemes(lines.Prefix(line, idx, cfg.Unit))
	for g.Next() {
		if s := g.Str(); s == "\t" {
			sb.WriteByte('\t')
		} else {
			sb.WriteString(strings.Repeat(fill, cond.StringWidth(s)))
		}
	}
	return sb.String()
}

func writeColored(sb *strings.Builder, code, s string) {
	if code == "" {
		sb.WriteString(s)
		return
	}
	sb.WriteString(code)
	sb.WriteString(s)
	sb.WriteString(reset)
}

// Report renders the first difference between the documents x and y, each given as a slice of
// lines without line terminators.
//
// If x and y are identical, the report is [NoDifferences]. Otherwise it's a header "Line n:",
// where n is the 0-based line number, followed by the output of [Format] for that line in x and
// y. If one document doesn't have that line, an empty line is used in its place.
//
// The following options are supported: [Runes], [Bytes], [Graphemes], [Fill], [AlignWidth],
// [TerminalColors]
func Report(x, y []string, opts ...Option) string {
	cfg := config.FromOptions(opts, config.Units|config.Fill|config.AlignWidth|config.Colors)
	return report(x, y, cfg)
}

func report(x, y []string, cfg config.Config) string {
	loc, ok := locate(x, y, cfg)
	if !ok {
		return NoDifferences
	}

	var lx, ly string
	if loc.Line < len(x) {
		lx = x[loc.Line]
	}
	if loc.Line < len(y) {
		ly = y[loc.Line]
	}

	var ch string
	if cfg.Colors != nil {
		ch = cfg.Colors.Header
	}
	var sb strings.Builder
	writeColored(&sb, ch, "Line "+strconv.Itoa(loc.Line)+":")
	sb.WriteByte('\n')
	format(&sb, lx, ly, loc.Column, cfg)
	return sb.String()
}

// Files reads the files at path1 and path2 with [ReadLines] and returns the [Report] for their
// contents.
//
// Errors reading either file are returned as is and wrap the underlying error, e.g. a missing
// file satisfies errors.Is(err, fs.ErrNotExist).
//
// The following options are supported: [Runes], [Bytes], [Graphemes], [Fill], [AlignWidth],
// [TerminalColors]
func Files(path1, path2 string, opts ...Option) (string, error) {
	cfg := config.FromOptions(opts, config.Units|config.Fill|config.AlignWidth|config.Colors)
	x, err := ReadLines(path1)
	if err != nil {
		return "", err
	}
	y, err := ReadLines(path2)
	if err != nil {
		return "", err
	}
	return report(x, y, cfg), nil
}

// ReadLines reads the file at path and splits it into lines with [SplitLines].
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading lines: %w", err)
	}
	return lines.Split(data), nil
}

// SplitLines splits text into lines and removes the line terminators. A line ends at "\n", "\r\n"
// or a lone "\r". A terminator at the very end of the text doesn't start another line and an empty
// text has no lines.
func SplitLines(text string) []string {
	return lines.Split(text)
}
