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
	"strings"
	"testing"

	"github.com/radioastro/telspec/pkg/util/assert"
)

func Test_Table_00(t *testing.T) {
	var table = NewTablePrinter(2)
	//
	table.AddRow("sub", "baseline")
	table.AddRow("1", "AA-BB")
	table.AlignLeft(1)
	//
	assert.Equal(t, "sub | baseline\n  1 | AA-BB   \n", render(t, table))
}

func Test_Table_01(t *testing.T) {
	var table = NewTablePrinter(1)
	//
	table.AddRow("ABCDEFGH")
	table.SetMaxWidth(0, 5)
	//
	assert.Equal(t, "ABC..\n", render(t, table))
}

func Test_Table_02(t *testing.T) {
	var (
		table = NewTablePrinter(2)
		red   = NewAnsiEscape().FgColour(TERM_RED)
	)
	//
	row := table.AddRow("x", "y")
	table.SetEscape(1, row, red)
	//
	assert.Equal(t, "x | \033[31my\033[0m\n", render(t, table))
	//
	table.AnsiEscapes(false)
	assert.Equal(t, "x | y\n", render(t, table))
}

func Test_Escape_00(t *testing.T) {
	assert.Equal(t, "\033[1;32m", BoldAnsiEscape().FgColour(TERM_GREEN).Build())
	assert.Equal(t, "\033[33;44m", NewAnsiEscape().FgColour(TERM_YELLOW).BgColour(TERM_BLUE).Build())
	assert.Equal(t, "\033[31mAA\033[0m", Colour("AA", NewAnsiEscape().FgColour(TERM_RED)))
}

func render(t *testing.T, table *TablePrinter) string {
	var builder strings.Builder
	//
	assert.NoError(t, table.Print(&builder))
	//
	return builder.String()
}
