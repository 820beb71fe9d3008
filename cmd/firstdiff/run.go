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

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"golang.org/x/term"
	"golang.org/x/tools/txtar"
	"znkr.io/diff"
	"znkr.io/firstdiff/linediff"
)

// run writes the report for the inputs described by cfg to w and returns true if the inputs
// differ.
func run(cfg *config, w io.Writer, logger *slog.Logger) (bool, error) {
	opts, colored, err := options(cfg, w)
	if err != nil {
		return false, err
	}

	x, y, err := inputs(cfg, logger)
	if err != nil {
		return false, err
	}

	loc, differ := linediff.Locate(x, y, opts[0])
	logger.Debug("compared inputs", "lines_x", len(x), "lines_y", len(y), "differ", differ, "location", loc)

	io.WriteString(w, linediff.Report(x, y, opts...))
	if !differ {
		return false, nil
	}

	if cfg.inline {
		var lx, ly string
		if loc.Line < len(x) {
			lx = x[loc.Line]
		}
		if loc.Line < len(y) {
			ly = y[loc.Line]
		}
		writeInline(w, lx, ly, colored)
	}
	if cfg.context >= 0 {
		writeHunks(w, x, y, cfg.context)
	}
	return true, nil
}

// options translates cfg into linediff options. The first option is always the unit.
func options(cfg *config, w io.Writer) (opts []linediff.Option, colored bool, err error) {
	switch cfg.unit {
	case "runes":
		opts = append(opts, linediff.Runes())
	case "bytes":
		opts = append(opts, linediff.Bytes())
	case "graphemes":
		opts = append(opts, linediff.Graphemes())
	default:
		return nil, false, fmt.Errorf("invalid unit %q, want runes, bytes or graphemes", cfg.unit)
	}

	fill := []rune(cfg.fill)
	if len(fill) != 1 || fill[0] == '\n' || fill[0] == '\r' {
		return nil, false, fmt.Errorf("invalid fill %q, want a single character", cfg.fill)
	}
	opts = append(opts, linediff.Fill(fill[0]))

	if cfg.align {
		opts = append(opts, linediff.AlignWidth())
	}

	switch cfg.color {
	case "always":
		colored = true
	case "never":
		colored = false
	case "auto":
		f, ok := w.(*os.File)
		colored = ok && term.IsTerminal(int(f.Fd()))
	default:
		return nil, false, fmt.Errorf("invalid color %q, want auto, always or never", cfg.color)
	}
	if colored {
		opts = append(opts, linediff.TerminalColors())
	}
	return opts, colored, nil
}

func inputs(cfg *config, logger *slog.Logger) (x, y []string, err error) {
	if cfg.txtar == "" {
		logger.Debug("reading files", "x", cfg.x, "y", cfg.y)
		x, err = linediff.ReadLines(cfg.x)
		if err != nil {
			return nil, nil, err
		}
		y, err = linediff.ReadLines(cfg.y)
		if err != nil {
			return nil, nil, err
		}
		return x, y, nil
	}

	logger.Debug("reading txtar archive", "file", cfg.txtar)
	ar, err := txtar.ParseFile(cfg.txtar)
	if err != nil {
		return nil, nil, err
	}
	var foundX, foundY bool
	for _, f := range ar.Files {
		switch f.Name {
		case "x":
			x, foundX = linediff.SplitLines(string(f.Data)), true
		case "y":
			y, foundY = linediff.SplitLines(string(f.Data)), true
		default:
			logger.Debug("ignoring file in txtar archive", "name", f.Name)
		}
	}
	if !foundX || !foundY {
		return nil, nil, fmt.Errorf("txtar archive %s must contain the files x and y", cfg.txtar)
	}
	return x, y, nil
}

// writeInline writes the character level changes between a and b. Deletions are written as
// [-text-] and insertions as {+text+}, unless the output is colored.
func writeInline(w io.Writer, a, b string, colored bool) {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	io.WriteString(w, "Changes:\n")
	if colored {
		io.WriteString(w, dmp.DiffPrettyText(diffs))
		io.WriteString(w, "\n")
		return
	}
	var sb strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			sb.WriteString(d.Text)
		case diffmatchpatch.DiffDelete:
			sb.WriteString("[-" + d.Text + "-]")
		case diffmatchpatch.DiffInsert:
			sb.WriteString("{+" + d.Text + "+}")
		}
	}
	sb.WriteByte('\n')
	io.WriteString(w, sb.String())
}

// writeHunks writes all changes between x and y in a format similar to a unified diff.
func writeHunks(w io.Writer, x, y []string, context int) {
	io.WriteString(w, "Hunks:\n")
	for _, h := range diff.Hunks(x, y, diff.Context(context)) {
		fmt.Fprintf(w, "@@ -%d,%d +%d,%d @@\n", h.PosX+1, h.EndX-h.PosX, h.PosY+1, h.EndY-h.PosY)
		for _, edit := range h.Edits {
			switch edit.Op {
			case diff.Match:
				fmt.Fprintf(w, " %s\n", edit.X)
			case diff.Delete:
				fmt.Fprintf(w, "-%s\n", edit.X)
			case diff.Insert:
				fmt.Fprintf(w, "+%s\n", edit.Y)
			default:
				panic("never reached")
			}
		}
	}
}
