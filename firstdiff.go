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

package firstdiff

import "fmt"

// Location describes the position of the first difference between two documents.
type Location struct {
	Line   int // Index of the first line that differs.
	Column int // Index of the first element within that line that differs.
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// Index compares x and y and returns the index of the first element that differs.
//
// If one slice is a strict prefix of the other, the index is len of the shorter slice, i.e. the
// position where the extra suffix of the longer slice starts. If x and y are identical, Index
// returns false.
//
// A returned index always satisfies 0 <= index <= min(len(x), len(y)).
func Index[T comparable](x, y []T) (int, bool) {
	n := min(len(x), len(y))
	for i := range n {
		if x[i] != y[i] {
			return i, true
		}
	}
	if len(x) != len(y) {
		return n, true
	}
	return 0, false
}

// IndexFunc is like [Index] but uses eq to compare elements.
func IndexFunc[T any](x, y []T, eq func(a, b T) bool) (int, bool) {
	n := min(len(x), len(y))
	for i := range n {
		if !eq(x[i], y[i]) {
			return i, true
		}
	}
	if len(x) != len(y) {
		return n, true
	}
	return 0, false
}

// Locate compares the documents x and y line by line and returns the location of the first
// difference.
//
// Lines are compared with [Index]. If all lines that x and y have in common are identical but
// one document has more lines than the other, the location is the first line that exists only in
// the longer document and column 0. If x and y are identical, Locate returns false.
func Locate[T comparable](x, y [][]T) (Location, bool) {
	return LocateFunc(x, y, Index[T])
}

// LocateFunc is like [Locate] but uses index to find the first difference in a pair of lines.
//
// The index function must follow the contract of [Index]. It's used for lines that aren't plain
// slices, e.g. text that needs to be split into characters first.
func LocateFunc[L any](x, y []L, index func(a, b L) (int, bool)) (Location, bool) {
	n := min(len(x), len(y))
	for i := range n {
		if col, ok := index(x[i], y[i]); ok {
			return Location{Line: i, Column: col}, true
		}
	}
	if len(x) != len(y) {
		return Location{Line: n, Column: 0}, true
	}
	return Location{}, false
}
