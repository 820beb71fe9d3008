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

package lines

import (
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"
	"znkr.io/firstdiff/internal/config"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "empty",
			input: "",
			want:  []string{},
		},
		{
			name:  "newline-only",
			input: "\n",
			want:  []string{""},
		},
		{
			name:  "missing-newline",
			input: "foo\nbar",
			want:  []string{"foo", "bar"},
		},
		{
			name:  "no-missing-newline",
			input: "foo\nbar\nbaz\n",
			want:  []string{"foo", "bar", "baz"},
		},
		{
			name:  "empty-lines",
			input: "a\n\n",
			want:  []string{"a", ""},
		},
		{
			name:  "crlf",
			input: "foo\r\nbar\r\n",
			want:  []string{"foo", "bar"},
		},
		{
			name:  "cr",
			input: "foo\rbar",
			want:  []string{"foo", "bar"},
		},
		{
			name:  "mixed",
			input: "a\r\nb\rc\n",
			want:  []string{"a", "b", "c"},
		},
		{
			name:  "lf-cr",
			input: "a\n\rb",
			want:  []string{"a", "", "b"},
		},
		{
			name:  "trailing-cr",
			input: "a\r",
			want:  []string{"a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Split(tt.input)); diff != "" {
				t.Errorf("Split[string](%q) result difference [-want, +got]:\n%s", tt.input, diff)
			}
			if diff := cmp.Diff(tt.want, Split([]byte(tt.input))); diff != "" {
				t.Errorf("Split[[]byte](%q) result difference [-want, +got]:\n%s", tt.input, diff)
			}
		})
	}
}

func TestSplitBytesShareMemory(t *testing.T) {
	in := []byte("foo\nbar")
	got := Split(in)
	if len(got) != 2 {
		t.Fatalf("Split(%q) returned %d lines, want 2", in, len(got))
	}
	if unsafe.StringData(got[0]) != unsafe.SliceData(in) {
		t.Errorf("Split(in)[0] points to different memory")
	}
}

func TestIndex(t *testing.T) {
	tests := []struct {
		name   string
		a, b   string
		unit   config.Unit
		want   int
		wantOK bool
	}{
		{
			name: "identical-runes",
			a:    "héllo",
			b:    "héllo",
			unit: config.UnitRunes,
		},
		{
			name:   "runes",
			a:      "héllo",
			b:      "hallo",
			unit:   config.UnitRunes,
			want:   1,
			wantOK: true,
		},
		{
			name:   "runes-after-multibyte",
			a:      "héllo",
			b:      "hélo",
			unit:   config.UnitRunes,
			want:   3,
			wantOK: true,
		},
		{
			name:   "runes-shared-lead-byte",
			a:      "é", // c3 a9
			b:      "ã", // c3 a3
			unit:   config.UnitRunes,
			want:   0,
			wantOK: true,
		},
		{
			name:   "runes-cut-sequence",
			a:      "x\xc3X",
			b:      "xé",
			unit:   config.UnitRunes,
			want:   1,
			wantOK: true,
		},
		{
			name:   "runes-invalid-bytes",
			a:      "a\xff",
			b:      "a\xfe",
			unit:   config.UnitRunes,
			want:   1,
			wantOK: true,
		},
		{
			name:   "runes-prefix",
			a:      "日本",
			b:      "日本語",
			unit:   config.UnitRunes,
			want:   2,
			wantOK: true,
		},
		{
			name:   "bytes",
			a:      "héllo",
			b:      "hallo",
			unit:   config.UnitBytes,
			want:   1,
			wantOK: true,
		},
		{
			name:   "bytes-shared-lead-byte",
			a:      "é",
			b:      "ã",
			unit:   config.UnitBytes,
			want:   1,
			wantOK: true,
		},
		{
			name:   "bytes-prefix",
			a:      "日本",
			b:      "日本語",
			unit:   config.UnitBytes,
			want:   6,
			wantOK: true,
		},
		{
			name:   "graphemes",
			a:      "e\u0301x", // e + combining acute accent
			b:      "e\u0300x", // e + combining grave accent
			unit:   config.UnitGraphemes,
			want:   0,
			wantOK: true,
		},
		{
			name:   "graphemes-vs-runes",
			a:      "e\u0301x",
			b:      "e\u0300x",
			unit:   config.UnitRunes,
			want:   1,
			wantOK: true,
		},
		{
			name:   "graphemes-prefix",
			a:      "e\u0301",
			b:      "e\u0301e\u0301",
			unit:   config.UnitGraphemes,
			want:   1,
			wantOK: true,
		},
		{
			name: "graphemes-identical",
			a:    "🇩🇪 flag",
			b:    "🇩🇪 flag",
			unit: config.UnitGraphemes,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, gotOK := Index(tt.a, tt.b, tt.unit)
			if got != tt.want || gotOK != tt.wantOK {
				t.Errorf("Index(%q, %q, %v) = %v, %v, want %v, %v", tt.a, tt.b, tt.unit, got, gotOK, tt.want, tt.wantOK)
			}
			got, gotOK = Index(tt.b, tt.a, tt.unit)
			if got != tt.want || gotOK != tt.wantOK {
				t.Errorf("Index(%q, %q, %v) = %v, %v, want %v, %v", tt.b, tt.a, tt.unit, got, gotOK, tt.want, tt.wantOK)
			}
		})
	}
}

func TestLen(t *testing.T) {
	tests := []struct {
		s    string
		unit config.Unit
		want int
	}{
		{"", config.UnitRunes, 0},
		{"héllo", config.UnitBytes, 6},
		{"héllo", config.UnitRunes, 5},
		{"e\u0301x", config.UnitRunes, 3},
		{"e\u0301x", config.UnitGraphemes, 2},
		{"a\xffb", config.UnitRunes, 3},
	}
	for _, tt := range tests {
		if got := Len(tt.s, tt.unit); got != tt.want {
			t.Errorf("Len(%q, %v) = %v, want %v", tt.s, tt.unit, got, tt.want)
		}
	}
}

func TestPrefix(t *testing.T) {
	tests := []struct {
		s    string
		n    int
		unit config.Unit
		want string
	}{
		{"héllo", 2, config.UnitBytes, "h\xc3"},
		{"héllo", 2, config.UnitRunes, "hé"},
		{"e\u0301x", 1, config.UnitRunes, "e"},
		{"e\u0301x", 1, config.UnitGraphemes, "e\u0301"},
		{"abc", 0, config.UnitGraphemes, ""},
		{"abc", 10, config.UnitRunes, "abc"},
		{"abc", 10, config.UnitBytes, "abc"},
		{"abc", 10, config.UnitGraphemes, "abc"},
	}
	for _, tt := range tests {
		if got := Prefix(tt.s, tt.n, tt.unit); got != tt.want {
			t.Errorf("Prefix(%q, %v, %v) = %q, want %q", tt.s, tt.n, tt.unit, got, tt.want)
		}
	}
}
