// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package source

import (
	"fmt"
	"strings"
)

// Span represents a contiguous slice of the original text.  Instead of
// representing this as a string slice, however, it is useful to retain the
// physical (rune) indices.  This allows us to do certain things, such as
// highlight the offending characters of some locator text.
type Span struct {
	// The first character of this span in the original text.
	start int
	// One past the final character of this span in the original text.
	end int
}

// NewSpan constructs a new span whilst checking the internal invariants are
// maintained.
func NewSpan(start int, end int) Span {
	if start > end {
		panic("invalid span")
	}

	return Span{start, end}
}

// Start returns the starting index of this span in the original text.
func (p Span) Start() int {
	return p.start
}

// End returns one past the last index of this span in the original text.
func (p Span) End() int {
	return p.end
}

// Length returns the number of characters covered by this span in the original
// text.
func (p Span) Length() int {
	return p.end - p.start
}

// Join returns the smallest span enclosing both this span and another.
func (p Span) Join(other Span) Span {
	return Span{min(p.start, other.start), max(p.end, other.end)}
}

func (p Span) String() string {
	return fmt.Sprintf("%d:%d", p.start, p.end)
}

// Highlight renders a single line of text followed by a second line which
// marks the characters covered by this span with carets.  Empty spans (e.g.
// at the end of input) are marked with a single caret.
func (p Span) Highlight(text []rune) string {
	var (
		builder strings.Builder
		start   = min(p.start, len(text))
		length  = max(1, min(p.end, len(text))-start)
	)
	//
	builder.WriteString(string(text))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat(" ", start))
	builder.WriteString(strings.Repeat("^", length))
	//
	return builder.String()
}
