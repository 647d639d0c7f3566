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
package lex

import (
	"slices"
	"testing"

	"github.com/radioastro/telspec/pkg/util/assert"
	"github.com/radioastro/telspec/pkg/util/source"
)

func TestLexer_00(t *testing.T) {
	var tokens = []Token{
		{END_OF, source.NewSpan(0, 0)},
	}

	checkLexer(t, "", 0, tokens...)
}

func TestLexer_01(t *testing.T) {
	var tokens = []Token{
		{WORD, source.NewSpan(0, 2)},
		{DASH, source.NewSpan(2, 3)},
		{WORD, source.NewSpan(3, 5)},
		{END_OF, source.NewSpan(5, 5)},
	}

	checkLexer(t, "ab-cd", 0, tokens...)
}

func TestLexer_02(t *testing.T) {
	var tokens = []Token{
		{PREFIX, source.NewSpan(0, 3)},
		{WSPACE, source.NewSpan(3, 4)},
		{WORD, source.NewSpan(4, 6)},
		{END_OF, source.NewSpan(6, 6)},
	}

	checkLexer(t, "12: ab", 0, tokens...)
}

func TestLexer_03(t *testing.T) {
	// Digits without a colon form a word
	var tokens = []Token{
		{WORD, source.NewSpan(0, 3)},
		{END_OF, source.NewSpan(3, 3)},
	}

	checkLexer(t, "12a", 0, tokens...)
}

func TestLexer_04(t *testing.T) {
	// Escaped dash is part of a word
	var tokens = []Token{
		{WORD, source.NewSpan(0, 4)},
		{END_OF, source.NewSpan(4, 4)},
	}

	checkLexer(t, `a\-b`, 0, tokens...)
}

func TestLexer_05(t *testing.T) {
	// Dangling escape cannot be lexed
	var tokens = []Token{
		{WORD, source.NewSpan(0, 1)},
	}

	checkLexer(t, `a\`, 1, tokens...)
}

func TestLexer_06(t *testing.T) {
	var tokens = []Token{
		{PREFIX, source.NewSpan(0, 4)},
		{END_OF, source.NewSpan(4, 4)},
	}

	checkLexer(t, "1  :", 0, tokens...)
}

func TestScanner_00(t *testing.T) {
	rule := Sequence(Unit('a'), Unit('b'), Unit('c'))
	assert.Equal(t, 0, rule([]rune{'a', 'c', 'c'}))
	assert.Equal(t, 0, rule([]rune{'a', 'b'}))
	assert.Equal(t, 3, rule([]rune{'a', 'b', 'c', 'd'}))
}

func TestScanner_01(t *testing.T) {
	assert.Equal(t, 1, AnyOf('x', 'y')([]rune{'y'}))
	assert.Equal(t, 0, AnyOf('x', 'y')([]rune{'z'}))
	assert.Equal(t, 0, NoneOf('x', 'y')([]rune{'y'}))
	assert.Equal(t, 1, NoneOf('x', 'y')([]rune{'z'}))
	assert.Equal(t, 0, NoneOf('x')([]rune{}))
}

// ==================================================================
// Framework
// ==================================================================

const END_OF uint = 0
const WSPACE uint = 1
const PREFIX uint = 2
const DASH uint = 3
const WORD uint = 4

var whitespace = Many(AnyOf(' ', '\t'))

var digits = Many(Within('0', '9'))

var rules = []LexRule[rune]{
	Rule(Or(Sequence(digits, Unit(':')), Sequence(digits, whitespace, Unit(':'))), PREFIX),
	Rule(Unit('-'), DASH),
	Rule(whitespace, WSPACE),
	Rule(Many(Or(Escaped('\\'), NoneOf(' ', '\t', '-', '\\'))), WORD),
	Rule(Eof[rune](), END_OF),
}

func checkLexer(t *testing.T, input string, remainder uint, expected ...Token) {
	items := []rune(input)
	// Construct text lexer
	lexer := NewLexer(items, rules...)
	// Apply lexer
	tokens := lexer.Collect()
	// Keep scanning
	if !slices.Equal(tokens, expected) {
		t.Errorf("got %v, expected %v", tokens, expected)
	} else if lexer.Remaining() != remainder {
		n := len(items) - int(lexer.Remaining())
		t.Errorf("unmatched items: %v", items[n:])
	}
}
