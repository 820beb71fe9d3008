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

// Package lines splits text into lines and lines into columns.
package lines

import (
	"strings"
	"unicode/utf8"
	"unsafe"

	"github.com/rivo/uniseg"
	"znkr.io/firstdiff"
	"znkr.io/firstdiff/internal/config"
)

// Split splits the input into lines and removes the line terminators. A line ends at "\n",
// "\r\n" or a lone "\r". A terminator at the very end of the input doesn't start another line, an
// empty input has no lines.
//
// For []byte inputs, the returned strings share memory with the input. The input must not be
// modified afterwards.
func Split[T string | []byte](in T) []string {
	var s string
	switch in := any(in).(type) {
	case string:
		s = in
	case []byte:
		s = unsafe.String(unsafe.SliceData(in), len(in))
	}

	n := strings.Count(s, "\n") + strings.Count(s, "\r") - strings.Count(s, "\r\n")
	if len(s) > 0 && s[len(s)-1] != '\n' && s[len(s)-1] != '\r' {
		n++
	}
	out := make([]string, 0, n)
	for len(s) > 0 {
		m := strings.IndexAny(s, "\r\n")
		if m < 0 {
			out = append(out, s)
			break
		}
		out = append(out, s[:m])
		if s[m] == '\r' && m+1 < len(s) && s[m+1] == '\n' {
			m++
		}
		s = s[m+1:]
	}
	return out
}

// Index returns the index of the first column that differs between a and b, see
// [firstdiff.Index].
func Index(a, b string, unit config.Unit) (int, bool) {
	switch unit {
	case config.UnitBytes:
		// Comparing the bytes in place avoids copying both lines. It's safe, because neither
		// slice is modified or retained.
		xp, yp := unsafe.StringData(a), unsafe.StringData(b)
		return firstdiff.Index(unsafe.Slice(xp, len(a)), unsafe.Slice(yp, len(b)))
	case config.UnitRunes:
		// Compare bytes first and only decode the rest of the lines starting at the last rune start
		// before the first differing byte. A rune start is a boundary in both lines, because the
		// bytes before the difference are identical.
		xp, yp := unsafe.StringData(a), unsafe.StringData(b)
		i, ok := firstdiff.Index(unsafe.Slice(xp, len(a)), unsafe.Slice(yp, len(b)))
		if !ok {
			return 0, false
		}
		for i > 0 {
			i--
			if utf8.RuneStart(a[i]) {
				break
			}
		}
		j, ok := firstdiff.Index(runes(a[i:]), runes(b[i:]))
		return utf8.RuneCountInString(a[:i]) + j, ok
	case config.UnitGraphemes:
		return firstdiff.Index(graphemes(a), graphemes(b))
	default:
		panic("never reached")
	}
}

// Len returns the number of columns in s.
func Len(s string, unit config.Unit) int {
	switch unit {
	case config.UnitBytes:
		return len(s)
	case config.UnitRunes:
		return utf8.RuneCountInString(s)
	case config.UnitGraphemes:
		return uniseg.GraphemeClusterCount(s)
	default:
		panic("never reached")
	}
}

// Prefix returns the first n columns of s. If s has fewer than n columns, s is returned.
func Prefix(s string, n int, unit config.Unit) string {
	switch unit {
	case config.UnitBytes:
		return s[:min(n, len(s))]
	case config.UnitRunes:
		i := 0
		for ; n > 0 && i < len(s); n-- {
			_, size := utf8.DecodeRuneInString(s[i:])
			i += size
		}
		return s[:i]
	case config.UnitGraphemes:
		g := uniseg.NewGraphemes(s)
		i := 0
		for ; n > 0 && g.Next(); n-- {
			_, i = g.Positions()
		}
		return s[:i]
	default:
		panic("never reached")
	}
}

// runes returns the code points in s. Every byte that's not part of a valid UTF-8 encoding is
// mapped to a distinct negative value, so that invalid input is compared byte by byte.
func runes(s string) []rune {
	out := make([]rune, 0, len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			r = -1 - rune(s[i])
		}
		out = append(out, r)
		i += size
	}
	return out
}

func graphemes(s string) []string {
	out := make([]string, 0, len(s))
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}
