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

// Package config provides shared configuration mechanisms for packages this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// linediff.Option.
package config

// Unit describes what a single column of a line is.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Unit -trimprefix=Unit
type Unit int

const (
	// Unicode code points. Invalid UTF-8 bytes count as one column each.
	UnitRunes Unit = iota

	// Raw bytes.
	UnitBytes

	// Extended grapheme clusters as defined by Unicode Standard Annex #29.
	UnitGraphemes
)

// ColorConfig holds ANSI escape sequences used to color reports. An empty sequence disables
// coloring for that element.
type ColorConfig struct {
	Header string // The "Line n:" header.
	Marker string // The fill and caret line.
	X, Y   string // The lines from x and y.
}

// Config collects all configurable parameters for the functions in this module.
type Config struct {
	// Unit of comparison and of reported column indexes.
	Unit Unit

	// Fill is repeated in the marker line to point at the first difference.
	Fill rune

	// If set, the marker line is as wide as the displayed common prefix instead of having one fill
	// character per column.
	AlignWidth bool

	// If set, reports are colored using ANSI escape sequences.
	Colors *ColorConfig
}

// Default is the default configuration.
var Default = Config{
	Unit:       UnitRunes,
	Fill:       '=',
	AlignWidth: false,
	Colors:     nil,
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by a function.
type Flag int

const (
	Units Flag = 1 << iota
	Fill
	AlignWidth
	Colors
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	switch cfg.Unit {
	case UnitRunes, UnitBytes, UnitGraphemes:
	default:
		panic("unknown unit: " + cfg.Unit.String())
	}
	if cfg.Fill == '\n' || cfg.Fill == '\r' {
		panic("fill must not be a line terminator")
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Units:
		return "linediff.Bytes/linediff.Runes/linediff.Graphemes"
	case Fill:
		return "linediff.Fill"
	case AlignWidth:
		return "linediff.AlignWidth"
	case Colors:
		return "linediff.Colors"
	default:
		panic("never reached")
	}
}
