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

// Package firstdiff locates the first point at which two slices, or two sequences of slices,
// diverge.
//
// Unlike a full diff, which finds a minimal set of edits, firstdiff answers a much simpler
// question: where is the first difference? [Index] compares two slices element by element and
// [Locate] does the same for two documents, i.e. slices of lines. Both run in time linear in the
// length of the common prefix.
//
// A result is reported as an index together with a boolean that is false if the inputs are
// identical. An index is never used to signal equality.
//
// Note: For comparing text line by line and rendering the result, please see
// [znkr.io/firstdiff/linediff].
//
// [znkr.io/firstdiff/linediff]: https://pkg.go.dev/znkr.io/firstdiff/linediff
package firstdiff
