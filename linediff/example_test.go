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

package linediff_test

import (
	"fmt"

	"znkr.io/firstdiff/linediff"
)

func ExampleIndex() {
	i, ok := linediff.Index("hello", "hallo")
	fmt.Println(i, ok)
	_, ok = linediff.Index("abc", "abc")
	fmt.Println(ok)
	// Output:
	// 1 true
	// false
}

func ExampleFormat() {
	a, b := "hello world", "hello word"
	if i, ok := linediff.Index(a, b); ok {
		fmt.Print(linediff.Format(a, b, i))
	}
	// Output:
	// hello world
	// =========^
	// hello word
}

func ExampleReport() {
	x := linediff.SplitLines("same\nfoo\n")
	y := linediff.SplitLines("same\nbar\n")
	fmt.Print(linediff.Report(x, y))
	fmt.Print(linediff.Report(x, x))
	// Output:
	// Line 1:
	// foo
	// ^
	// bar
	// No differences
}

func ExampleAlignWidth() {
	x := []string{"名前: Gopher"}
	y := []string{"名前: Gophre"}
	fmt.Println("Without linediff.AlignWidth:")
	fmt.Print(linediff.Report(x, y))
	fmt.Println()
	fmt.Println("With linediff.AlignWidth:")
	fmt.Print(linediff.Report(x, y, linediff.AlignWidth()))
	// Output:
	// Without linediff.AlignWidth:
	// Line 0:
	// 名前: Gopher
	// ========^
	// 名前: Gophre
	//
	// With linediff.AlignWidth:
	// Line 0:
	// 名前: Gopher
	// ==========^
	// 名前: Gophre
}
