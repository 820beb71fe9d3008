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

package linediff

import (
	"znkr.io/firstdiff/internal/config"
	"znkr.io/firstdiff/linediff/color"
)

// Option configures the behavior of the functions in this package.
type Option = config.Option

// Runes compares lines code point by code point and reports columns as code point indexes. This is
// the default.
//
// Bytes that are not part of a valid UTF-8 encoding count as one column each.
func Runes() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Unit = config.UnitRunes
		return config.Units
	}
}

// Bytes compares lines byte by byte and reports columns as byte offsets.
func Bytes() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Unit = config.UnitBytes
		return config.Units
	}
}

// Graphemes compares lines by user-perceived characters (extended grapheme clusters) and reports
// columns as grapheme cluster indexes. For example, "é" is a single column.
func Graphemes() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Unit = config.UnitGraphemes
		return config.Units
	}
}

// Fill sets the character that is repeated in the marker line in front of the caret. The default
// is '='. The fill character must not be a line terminator.
func Fill(r rune) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Fill = r
		return config.Fill
	}
}

// AlignWidth makes the marker line as wide as the common prefix appears on a terminal with a
// monospace font. Wide characters (e.g. CJK) take two fill characters, zero width characters take
// none and tabs are kept as tabs.
//
// Without this option, the marker line has exactly one fill character per column.
func AlignWidth() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.AlignWidth = true
		return config.AlignWidth
	}
}

// TerminalColors colors the output using ANSI escape sequences. The default colors can be
// overridden using the options in [color].
func TerminalColors(opts ...color.Option) Option {
	cc := config.ColorConfig{
		Header: "\033[1m",
		Marker: "\033[1;31m",
		X:      "\033[31m",
		Y:      "\033[32m",
	}
	for _, opt := range opts {
		opt(&cc)
	}
	return func(cfg *config.Config) config.Flag {
		cfg.Colors = &cc
		return config.Colors
	}
}
