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

// Package color provides configuration for coloring first difference reports using ANSI escape
// sequences.
//
// Specifying colors uses [Select Graphic Rendition parameters]. For example the code below,
// presents the header in bold yellow:
//
//	Header(1, 33)
//
// This is equivalent to the following raw ANSI sequence: \033[1;33m.
//
// It's the responsibility of the caller to ensure that the parameters are correct and supported
// by the underlying terminal.
//
// [Select Graphic Rendition parameters]: https://en.wikipedia.org/wiki/ANSI_escape_code#SGR
package color

import (
	"fmt"
	"strings"

	"znkr.io/firstdiff/internal/config"
)

// A Option makes it possible to configure custom colors in linediff.TerminalColors.
type Option func(*config.ColorConfig)

// Header colors the "Line n:" header of a report.
func Header(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Header = code
	}
}

// Marker colors the marker line, the fill characters and the caret.
func Marker(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Marker = code
	}
}

// X colors the line from the first input.
func X(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.X = code
	}
}

// Y colors the line from the second input.
func Y(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Y = code
	}
}

// None disables coloring for all elements. It's useful as a first option, to only color
// selected elements.
func None() Option {
	return func(cc *config.ColorConfig) {
		*cc = config.ColorConfig{}
	}
}

func format(params []int) string {
	if len(params) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("\033[")
	for i, v := range params {
		if i > 0 {
			sb.WriteRune(';')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteRune('m')
	return sb.String()
}
