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
package telspec

import (
	"strconv"
	"strings"

	"github.com/radioastro/telspec/pkg/obs"
	"github.com/radioastro/telspec/pkg/util/source"
	"github.com/radioastro/telspec/pkg/util/source/lex"
)

// Token kinds for locator text.
const (
	END_OF uint = iota
	WSPACE
	PREFIX
	COLON
	STAR
	DASH
	PLUS
	BANG
	NAME
	UNKNOWN
)

// ESCAPE is the character used to escape a following (reserved) character in a
// station name.
const ESCAPE = '\\'

// RESERVED identifies the characters which terminate a station name, unless
// escaped.
var RESERVED = []rune{' ', '\t', '\n', '\r', '-', '+', '!', ':', '*', ESCAPE}

var whitespace = lex.Many(lex.AnyOf(' ', '\t', '\n', '\r'))

var digits = lex.Many(lex.Within('0', '9'))

// A sub-array number is given as digits followed by a colon, with optional
// whitespace in between.
var prefix = lex.Or(
	lex.Sequence(digits, lex.Unit(':')),
	lex.Sequence(digits, whitespace, lex.Unit(':')))

var name = lex.Many(lex.Or(lex.Escaped(ESCAPE), lex.NoneOf(RESERVED...)))

var rules = []lex.LexRule[rune]{
	lex.Rule(prefix, PREFIX),
	lex.Rule(lex.Unit(':'), COLON),
	lex.Rule(lex.Unit('*'), STAR),
	lex.Rule(lex.Unit('-'), DASH),
	lex.Rule(lex.Unit('+'), PLUS),
	lex.Rule(lex.Unit('!'), BANG),
	lex.Rule(whitespace, WSPACE),
	lex.Rule(name, NAME),
	lex.Rule(lex.Eof[rune](), END_OF),
}

// Decode a locator of a given kind from text such as "2:AA-BB".  A leading
// number followed by a colon fixes the sub-array (counting from 1), whilst a
// bare colon fixes the given default sub-array.  Station names are matched
// case-insensitively against the stations of the chosen sub-array, and may be
// abbreviated to any unambiguous prefix.  A "*" leaves all remaining fields
// free.  Free fields of the decoded locator are filled in with the first
// matching values (see Iterate), hence an error is reported if there are
// none.  Any text remaining after the locator is an error.
func Decode(topo obs.Topology, kind Kind, text string, defaultSub int) (Locator, error) {
	var runes = []rune(text)
	//
	loc, n, err := decodePrefix(topo, kind, runes, defaultSub)
	//
	if err != nil {
		return loc, err
	} else if n < len(runes) {
		span := source.NewSpan(n, len(runes))
		return NewLocator(kind, defaultSub), NewError(ErrTrailingInput, span,
			"unexpected \"%s\" after %s", string(runes[n:]), kind)
	}
	//
	return loc, nil
}

// DecodePrefix decodes a locator from the start of some text (as for Decode),
// returning the number of characters (runes) consumed rather than reporting
// trailing text as an error.  Decoding stops at the first character which
// cannot extend the locator, such as '+' or '!'.
func DecodePrefix(topo obs.Topology, kind Kind, text string, defaultSub int) (Locator, int, error) {
	return decodePrefix(topo, kind, []rune(text), defaultSub)
}

func decodePrefix(topo obs.Topology, kind Kind, text []rune, defaultSub int) (Locator, int, error) {
	if !kind.Valid() {
		return Locator{}, 0, NewError(ErrWrongKind, source.Span{}, "unknown locator kind %d", kind)
	}
	//
	var p = newDecoder(topo, kind, text, defaultSub)
	//
	loc, err := p.decode()
	if err != nil {
		return NewLocator(kind, defaultSub), 0, err
	}
	//
	return loc, p.position(), nil
}

type decoder struct {
	topo       obs.Topology
	kind       Kind
	text       []rune
	tokens     []lex.Token
	index      int
	defaultSub int
}

func newDecoder(topo obs.Topology, kind Kind, text []rune, defaultSub int) *decoder {
	var (
		lexer  = lex.NewLexer(text, rules...)
		tokens = lexer.Collect()
	)
	// Mark the first character which could not be lexed (if any).
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != END_OF {
		start := min(lexer.Index(), len(text))
		end := min(start+1, len(text))
		tokens = append(tokens, lex.Token{Kind: UNKNOWN, Span: source.NewSpan(start, end)})
	}
	//
	return &decoder{topo, kind, text, tokens, 0, defaultSub}
}

func (p *decoder) decode() (Locator, error) {
	var loc = NewLocator(p.kind, p.defaultSub)
	//
	p.skipWhiteSpace()
	//
	start := p.position()
	// Sub-array
	switch tok := p.peek(); tok.Kind {
	case STAR:
		p.next()
		p.skipWhiteSpace()
		//
		return p.complete(loc, start)
	case PREFIX:
		p.next()
		//
		sub, err := p.subarray(tok)
		if err != nil {
			return loc, err
		}
		//
		loc.Sub, loc.Fixed = sub, 1
	case COLON:
		p.next()
		//
		if err := p.checkDefault(tok.Span); err != nil {
			return loc, err
		}
		//
		loc.Fixed = 1
	}
	// Stations
	for s := 0; s < p.kind.Stations(); s++ {
		p.skipWhiteSpace()
		//
		if s > 0 && p.peek().Kind == DASH {
			p.next()
			p.skipWhiteSpace()
			//
			if tok := p.peek(); tok.Kind != NAME && tok.Kind != STAR {
				return loc, NewError(ErrUnknownName, tok.Span, "expected station name after '-'")
			}
		}
		//
		tok := p.peek()
		//
		if tok.Kind == STAR {
			p.next()
			break
		} else if tok.Kind != NAME {
			break
		}
		//
		p.next()
		// Citing a station implicitly fixes the sub-array.
		if loc.Fixed == 0 {
			if err := p.checkDefault(tok.Span); err != nil {
				return loc, err
			}
			//
			loc.Fixed = 1
		}
		//
		station, err := p.station(loc.Sub, tok)
		if err != nil {
			return loc, err
		}
		//
		loc.Stations[s] = station
		loc.Fixed++
	}
	//
	p.skipWhiteSpace()
	//
	return p.complete(loc, start)
}

// Fill in the free fields of a decoded locator with their first valid values.
func (p *decoder) complete(loc Locator, start int) (Locator, error) {
	var opts = Options{RefLength: loc.Fixed, AllRef: true}
	//
	found, err := iterate(p.topo, FIND_FIRST, FORWARD, opts, &loc)
	//
	if err != nil {
		return loc, err
	} else if !found {
		span := source.NewSpan(start, max(start, p.position()))
		text := strings.TrimSpace(string(p.text[span.Start():span.End()]))
		//
		return loc, NewError(ErrNoMatch, span, "no %s matches \"%s\"", p.kind, text)
	}
	//
	return loc, nil
}

func (p *decoder) subarray(tok lex.Token) (int, error) {
	var (
		text   = string(p.text[tok.Span.Start():tok.Span.End()])
		num    = strings.TrimSpace(strings.TrimSuffix(text, ":"))
		n, err = strconv.Atoi(num)
	)
	//
	if err != nil || n < 1 || n > p.topo.SubarrayCount() {
		return 0, NewError(ErrSubarrayOutOfRange, tok.Span, "sub-array %s out of range (1..%d)",
			num, p.topo.SubarrayCount())
	}
	//
	return n - 1, nil
}

func (p *decoder) checkDefault(span source.Span) error {
	if p.defaultSub < 0 || p.defaultSub >= p.topo.SubarrayCount() {
		return NewError(ErrSubarrayOutOfRange, span, "default sub-array %d out of range (1..%d)",
			p.defaultSub+1, p.topo.SubarrayCount())
	}
	//
	return nil
}

// Match a station name against the stations of a given sub-array.  An exact
// (case-insensitive) match always succeeds, otherwise the name must be a
// prefix of exactly one station name.
func (p *decoder) station(sub int, tok lex.Token) (int, error) {
	var (
		text       = unescape(p.text[tok.Span.Start():tok.Span.End()])
		lower      = strings.ToLower(text)
		matches    []int
		candidates []string
	)
	//
	for i := range p.topo.StationCount(sub) {
		ith := p.topo.StationName(sub, i)
		//
		if strings.EqualFold(ith, text) {
			return i, nil
		} else if strings.HasPrefix(strings.ToLower(ith), lower) {
			matches = append(matches, i)
			candidates = append(candidates, ith)
		}
	}
	//
	switch len(matches) {
	case 0:
		return 0, NewError(ErrUnknownName, tok.Span, "unknown station \"%s\" in sub-array %d", text, sub+1)
	case 1:
		return matches[0], nil
	}
	//
	err := NewError(ErrAmbiguousName, tok.Span, "station name \"%s\" is ambiguous in sub-array %d", text, sub+1)
	err.candidates = candidates
	//
	return 0, err
}

func (p *decoder) peek() lex.Token {
	return p.tokens[p.index]
}

func (p *decoder) next() lex.Token {
	tok := p.tokens[p.index]
	// Never move past the final token
	if p.index+1 < len(p.tokens) {
		p.index++
	}
	//
	return tok
}

func (p *decoder) skipWhiteSpace() {
	for p.peek().Kind == WSPACE {
		p.next()
	}
}

// Position of the next unconsumed character.
func (p *decoder) position() int {
	return p.peek().Span.Start()
}

func unescape(text []rune) string {
	var builder strings.Builder
	//
	for i := 0; i < len(text); i++ {
		if text[i] == ESCAPE && i+1 < len(text) {
			i++
		}
		//
		builder.WriteRune(text[i])
	}
	//
	return builder.String()
}
