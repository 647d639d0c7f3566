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
	"iter"
	"strings"

	"github.com/radioastro/telspec/pkg/obs"
	"github.com/radioastro/telspec/pkg/telspec"
	"github.com/radioastro/telspec/pkg/util/collection/pool"
	"github.com/radioastro/telspec/pkg/util/source"
	log "github.com/sirupsen/logrus"
)

// RuleList is an ordered sequence of include / exclude rules which determines
// whether or not any given baseline of an observation is selected.  Rules are
// evaluated in order, and the last rule citing a baseline determines whether
// it is selected.  Baselines cited by no rule are not selected.  Rule lists
// are not thread safe, and must not be modified whilst being evaluated.
type RuleList struct {
	topo  obs.Topology
	arena *pool.Arena[node]
	head  uint32
	tail  uint32
	count uint
}

// NewRuleList constructs an empty rule list for a given observation, with its
// own arena of rules.  A limit of zero means there is no limit on the number
// of rules which can be held.
func NewRuleList(topo obs.Topology, limit uint) *RuleList {
	return newRuleList(topo, pool.NewArena[node](limit))
}

func newRuleList(topo obs.Topology, arena *pool.Arena[node]) *RuleList {
	return &RuleList{topo, arena, pool.NIL, pool.NIL, 0}
}

// Topology returns the observation topology against which this list's rules
// were validated.
func (p *RuleList) Topology() obs.Topology {
	return p.topo
}

// Len returns the number of rules in this list.
func (p *RuleList) Len() uint {
	return p.count
}

// Append a new rule to the end of this list.  The locator must be a BASELINE
// locator whose fixed fields identify at least one baseline of the
// observation.  The stored rule holds the validated locator, whose free fields
// are filled in with their first matching values.  On failure, the list is
// unchanged.
func (p *RuleList) Append(loc telspec.Locator, include bool) (Handle, error) {
	if loc.Kind != telspec.BASELINE {
		return 0, telspec.NewError(telspec.ErrWrongKind, source.Span{}, "rules require baseline locators (not %s)",
			loc.Kind)
	}
	//
	var opts = telspec.Options{RefLength: loc.Fixed, AllRef: true}
	//
	if found, err := telspec.Iterate(p.topo, telspec.FIND_FIRST, telspec.FORWARD, opts, &loc); err != nil {
		return 0, err
	} else if !found {
		return 0, telspec.NewError(telspec.ErrNoMatch, source.Span{}, "no baseline matches %s", loc)
	}
	//
	index, ok := p.arena.Alloc(node{Rule{loc, include}, pool.NIL})
	if !ok {
		return 0, telspec.NewError(telspec.ErrAllocationFailure, source.Span{}, "rule arena exhausted (%d rules)",
			p.arena.Size())
	}
	//
	if p.tail == pool.NIL {
		p.head = index
	} else {
		tail := p.arena.Get(p.tail)
		tail.next = index
		p.arena.Set(p.tail, tail)
	}
	//
	p.tail = index
	p.count++
	//
	log.Debugf("appended rule %d (include=%t, %s)", p.count, include, loc)
	//
	return Handle(index), nil
}

// Remove a given rule from this list, returning it to the arena.  This returns
// false if the rule is not in this list.
func (p *RuleList) Remove(handle Handle) bool {
	var (
		prev  = pool.NIL
		index = uint32(handle)
	)
	//
	for i := p.head; i != pool.NIL; i = p.arena.Get(i).next {
		if i == index {
			next := p.arena.Get(i).next
			// Unlink
			if prev == pool.NIL {
				p.head = next
			} else {
				n := p.arena.Get(prev)
				n.next = next
				p.arena.Set(prev, n)
			}
			//
			if p.tail == index {
				p.tail = prev
			}
			//
			p.arena.Free(index)
			p.count--
			//
			return true
		}
		//
		prev = i
	}
	//
	return false
}

// Clear removes all rules from this list, returning them to the arena.
func (p *RuleList) Clear() {
	for i := p.head; i != pool.NIL; {
		next := p.arena.Get(i).next
		p.arena.Free(i)
		i = next
	}
	//
	p.head, p.tail, p.count = pool.NIL, pool.NIL, 0
}

// All returns an iterator over the rules of this list in order.
func (p *RuleList) All() iter.Seq2[Handle, Rule] {
	return func(yield func(Handle, Rule) bool) {
		for i := p.head; i != pool.NIL; {
			n := p.arena.Get(i)
			//
			if !yield(Handle(i), n.rule) {
				return
			}
			//
			i = n.next
		}
	}
}

// Rules returns the rules of this list in order.
func (p *RuleList) Rules() []Rule {
	var rules = make([]Rule, 0, p.count)
	//
	for _, r := range p.All() {
		rules = append(rules, r)
	}
	//
	return rules
}

// Copy returns a copy of this list which shares the same arena.
func (p *RuleList) Copy() (*RuleList, error) {
	var list = newRuleList(p.topo, p.arena)
	//
	for _, r := range p.All() {
		if _, err := list.Append(r.Locator, r.Include); err != nil {
			list.Clear()
			return nil, err
		}
	}
	//
	return list, nil
}

// Evaluate determines whether a given baseline is selected by this list.
func (p *RuleList) Evaluate(sub int, baseline int) bool {
	var selected = false
	//
	for _, r := range p.All() {
		if r.Cites(p.topo, sub, baseline) {
			selected = r.Include
		}
	}
	//
	return selected
}

// CountSelected counts the baselines of a given sub-array which are selected
// by this list.  A negative sub-array means all sub-arrays are counted.
func (p *RuleList) CountSelected(sub int) int {
	var count = 0
	//
	for s := range p.topo.SubarrayCount() {
		if sub >= 0 && s != sub {
			continue
		}
		//
		for b := range p.topo.BaselineCount(s) {
			if p.Evaluate(s, b) {
				count++
			}
		}
	}
	//
	return count
}

// String encodes this list in a form accepted by Parse, such as
// "1:AA-BB !1:CC".
func (p *RuleList) String() string {
	var builder strings.Builder
	//
	for _, r := range p.All() {
		text, err := telspec.Encode(p.topo, r.Locator, 0, false, 0)
		if err != nil {
			// Rules are validated on entry, so this cannot happen.
			panic(err)
		}
		//
		switch {
		case !r.Include:
			builder.WriteString(separator(builder.Len()) + "!")
		case builder.Len() > 0:
			builder.WriteString(" +")
		}
		//
		builder.WriteString(text)
	}
	//
	return builder.String()
}

func separator(n int) string {
	if n > 0 {
		return " "
	}
	//
	return ""
}
