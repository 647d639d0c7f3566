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
package termio

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// TablePrinter lays out rows of text in aligned columns, optionally with ANSI
// escapes (e.g. colour) applied to individual cells.
type TablePrinter struct {
	widths        []int
	left          []bool
	rows          [][]string
	escapes       [][]string
	enableEscapes bool
}

// NewTablePrinter constructs a new table with a given number of columns and
// no rows.
func NewTablePrinter(columns uint) *TablePrinter {
	return &TablePrinter{
		widths:        make([]int, columns),
		left:          make([]bool, columns),
		enableEscapes: true,
	}
}

// AddRow appends a row to this table, returning its index.
func (p *TablePrinter) AddRow(vals ...string) uint {
	if len(vals) != len(p.widths) {
		panic(fmt.Sprintf("incorrect number of columns (%d vs %d)", len(vals), len(p.widths)))
	}
	//
	for i, v := range vals {
		p.widths[i] = max(p.widths[i], utf8.RuneCountInString(v))
	}
	//
	p.rows = append(p.rows, vals)
	p.escapes = append(p.escapes, make([]string, len(vals)))
	//
	return uint(len(p.rows) - 1)
}

// Get the contents of a given cell in this table
func (p *TablePrinter) Get(col uint, row uint) string {
	return p.rows[row][col]
}

// Height returns the number of rows in this table.
func (p *TablePrinter) Height() uint {
	return uint(len(p.rows))
}

// SetEscape sets the escape (e.g. colour) to use when printing a given cell.
func (p *TablePrinter) SetEscape(col uint, row uint, escape AnsiEscape) {
	p.escapes[row][col] = escape.Build()
}

// AlignLeft left-justifies the contents of a given column, rather than
// right-justifying them.
func (p *TablePrinter) AlignLeft(col uint) {
	p.left[col] = true
}

// AnsiEscapes enables or disables the use of ANSI escapes.  Escapes should be
// disabled when not writing to a terminal, since otherwise the raw escape
// characters end up in the output.
func (p *TablePrinter) AnsiEscapes(enable bool) {
	p.enableEscapes = enable
}

// SetMaxWidth puts an upper bound on the width of a given column.  Longer
// cells are truncated and marked with "..".
func (p *TablePrinter) SetMaxWidth(col uint, width uint) {
	p.widths[col] = min(p.widths[col], max(int(width), 3))
}

// Print this table to a given writer, with columns separated by "|".
func (p *TablePrinter) Print(w io.Writer) error {
	var builder strings.Builder
	//
	for i, row := range p.rows {
		for j, cell := range row {
			var (
				width  = p.widths[j]
				escape = p.escapes[i][j]
				runes  = []rune(cell)
			)
			//
			if len(runes) > width {
				cell = string(runes[:width-2]) + ".."
			}
			//
			if j > 0 {
				builder.WriteString(" | ")
			}
			//
			if p.enableEscapes && escape != "" {
				builder.WriteString(escape)
			}
			//
			padding := strings.Repeat(" ", width-utf8.RuneCountInString(cell))
			//
			if p.left[j] {
				builder.WriteString(cell + padding)
			} else {
				builder.WriteString(padding + cell)
			}
			//
			if p.enableEscapes && escape != "" {
				builder.WriteString(ResetAnsiEscape().Build())
			}
		}
		//
		builder.WriteString("\n")
	}
	//
	_, err := io.WriteString(w, builder.String())
	//
	return err
}
