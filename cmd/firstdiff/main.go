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

// firstdiff reports the first difference between two files.
//
// Usage:
//
//	firstdiff [flags] <x> <y>
//	firstdiff [flags] -txtar <archive>
//
// The report shows the 0-based number of the first line that differs and both versions of the line
// with a caret pointing at the first column that differs. With -context, the report is followed by
// the changed hunks of the whole files.
//
// Flags can also be set in a TOML file passed with -config, flags given on the command line take
// precedence:
//
//	unit = "graphemes"
//	fill = "-"
//	align = true
//	color = "auto"
//	context = 3
//	inline = false
//
// The exit status is 0 if the inputs are identical, 1 if they differ, and 2 if an error occurred.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
)

type config struct {
	unit       string
	fill       string
	align      bool
	color      string
	context    int
	inline     bool
	txtar      string
	configFile string
	verbose    bool
	x, y       string

	undecoded []string // keys in the config file that don't correspond to a flag
}

const (
	exitSame   = 0
	exitDiffer = 1
	exitError  = 2
)

var errUsage = errors.New("usage: firstdiff [flags] <x> <y> or firstdiff [flags] -txtar <archive>")

func main() {
	os.Exit(realMain(os.Args[1:], os.Stdout, os.Stderr))
}

func realMain(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitSame
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}

	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	if len(cfg.undecoded) > 0 {
		logger.Warn("unrecognized keys in config file", "file", cfg.configFile, "keys", cfg.undecoded)
	}

	differ, err := run(cfg, stdout, logger)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}
	if differ {
		return exitDiffer
	}
	return exitSame
}

func parseArgs(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{
		unit:    "runes",
		fill:    "=",
		color:   "never",
		context: -1,
	}
	fs := flag.NewFlagSet("firstdiff", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.unit, "unit", cfg.unit, "unit of comparison: runes, bytes or graphemes")
	fs.StringVar(&cfg.fill, "fill", cfg.fill, "character in front of the caret")
	fs.BoolVar(&cfg.align, "align", cfg.align, "align the caret with the displayed width of the line")
	fs.StringVar(&cfg.color, "color", cfg.color, "color the output: auto, always or never")
	fs.IntVar(&cfg.context, "context", cfg.context, "if >=0, print changed hunks with this many context lines after the report")
	fs.BoolVar(&cfg.inline, "inline", cfg.inline, "print the character level changes of the first differing line")
	fs.StringVar(&cfg.txtar, "txtar", "", "use a txtar archive with the files x and y instead of two input files")
	fs.StringVar(&cfg.configFile, "config", "", "TOML file with default flag values")
	fs.BoolVar(&cfg.verbose, "v", false, "log debug information to stderr")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.txtar != "" {
		if fs.NArg() != 0 {
			return nil, errUsage
		}
	} else {
		if fs.NArg() != 2 {
			return nil, errUsage
		}
		cfg.x, cfg.y = fs.Arg(0), fs.Arg(1)
	}

	if cfg.configFile != "" {
		set := make(map[string]bool)
		fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
		if err := loadFile(cfg, cfg.configFile, set); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
