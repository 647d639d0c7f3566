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
package baseline

import (
	"errors"

	"github.com/radioastro/telspec/pkg/obs"
	"github.com/radioastro/telspec/pkg/telspec"
	"github.com/radioastro/telspec/pkg/util/source"
)

// Parse a rule list from text such as "AA-BB +CC !2:DD".  Each rule is a
// baseline locator preceded by '+' (include) or '!' (exclude), though the sign
// of the first rule may be omitted in which case it includes.  When the first
// rule excludes, an implicit rule including every baseline is prepended, such
// that "!AA-BB" selects every baseline except AA-BB.
func Parse(topo obs.Topology, text string, defaultSub int, limit uint) (*RuleList, error) {
	var list = NewRuleList(topo, limit)
	//
	if err := list.AppendText(text, defaultSub); err != nil {
		return nil, err
	}
	//
	return list, nil
}

// AppendText parses rules from text (as for Parse) and appends them to this
// list.  The implicit rule including everything is only prepended when this
// list is empty.  On failure, the list is left unchanged.
func (p *RuleList) AppendText(text string, defaultSub int) error {
	rules, err := parseRules(p.topo, []rune(text), defaultSub)
	//
	if err != nil {
		return err
	} else if len(rules) > 0 && !rules[0].Include && p.count == 0 {
		rules = append([]Rule{{telspec.NewLocator(telspec.BASELINE, 0), true}}, rules...)
	}
	//
	var handles []Handle
	//
	for _, r := range rules {
		h, err := p.Append(r.Locator, r.Include)
		//
		if err != nil {
			// Roll back
			for _, h := range handles {
				p.Remove(h)
			}
			//
			return err
		}
		//
		handles = append(handles, h)
	}
	//
	return nil
}

func parseRules(topo obs.Topology, text []rune, defaultSub int) ([]Rule, error) {
	var (
		rules []Rule
		pos   = 0
	)
	//
	for pos = skipWhiteSpace(text, pos); pos < len(text); pos = skipWhiteSpace(text, pos) {
		var include = true
		//
		switch text[pos] {
		case '+':
			pos++
		case '!':
			include = false
			pos++
		default:
			if len(rules) > 0 {
				return nil, telspec.NewError(telspec.ErrTrailingInput, source.NewSpan(pos, pos+1),
					"expected '+' or '!' before \"%s\"", string(text[pos:]))
			}
		}
		//
		if pos = skipWhiteSpace(text, pos); pos == len(text) || text[pos] == '+' || text[pos] == '!' {
			return nil, telspec.NewError(telspec.ErrUnknownName, source.NewSpan(pos, min(pos+1, len(text))),
				"expected baseline after '+' or '!'")
		}
		//
		loc, n, err := telspec.DecodePrefix(topo, telspec.BASELINE, string(text[pos:]), defaultSub)
		//
		if err != nil {
			var e *telspec.Error
			// Report error relative to the whole text
			if errors.As(err, &e) {
				return nil, e.Shift(pos)
			}
			//
			return nil, err
		}
		//
		rules = append(rules, Rule{loc, include})
		pos += n
	}
	//
	return rules, nil
}

func skipWhiteSpace(text []rune, pos int) int {
	for pos < len(text) && (text[pos] == ' ' || text[pos] == '\t' || text[pos] == '\n' || text[pos] == '\r') {
		pos++
	}
	//
	return pos
}
