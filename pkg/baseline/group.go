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
	"fmt"
	"slices"

	"github.com/radioastro/telspec/pkg/obs"
	"github.com/radioastro/telspec/pkg/util/collection/pool"
)

// Group is an ordered collection of named rule lists over the same
// observation, whose rules are all held in one shared arena.  This allows
// several selections to be applied together.
type Group struct {
	topo  obs.Topology
	arena *pool.Arena[node]
	names []string
	lists []*RuleList
}

// NewGroup constructs an empty group of rule lists.  A limit of zero means
// there is no limit on the total number of rules held across all lists.
func NewGroup(topo obs.Topology, limit uint) *Group {
	return &Group{topo, pool.NewArena[node](limit), nil, nil}
}

// Add a new (empty) rule list with a given name to the end of this group.
func (p *Group) Add(name string) (*RuleList, error) {
	if slices.Contains(p.names, name) {
		return nil, fmt.Errorf("rule list \"%s\" already exists", name)
	}
	//
	list := newRuleList(p.topo, p.arena)
	p.names = append(p.names, name)
	p.lists = append(p.lists, list)
	//
	return list, nil
}

// Get the rule list with a given name.
func (p *Group) Get(name string) (*RuleList, bool) {
	if i := slices.Index(p.names, name); i >= 0 {
		return p.lists[i], true
	}
	//
	return nil, false
}

// Remove the rule list with a given name, returning its rules to the arena.
func (p *Group) Remove(name string) bool {
	var i = slices.Index(p.names, name)
	//
	if i < 0 {
		return false
	}
	//
	p.lists[i].Clear()
	p.names = slices.Delete(p.names, i, i+1)
	p.lists = slices.Delete(p.lists, i, i+1)
	//
	return true
}

// Clear removes every rule list from this group.
func (p *Group) Clear() {
	for _, l := range p.lists {
		l.Clear()
	}
	//
	p.names, p.lists = nil, nil
}

// Len returns the number of rule lists in this group.
func (p *Group) Len() int {
	return len(p.lists)
}

// Names returns the names of the rule lists in this group, in order.
func (p *Group) Names() []string {
	return p.names
}

// Lists returns the rule lists of this group, in order.
func (p *Group) Lists() []*RuleList {
	return p.lists
}

// RuleCount returns the total number of rules held across all lists.
func (p *Group) RuleCount() uint {
	return p.arena.Size()
}

// Selects determines whether a given baseline is selected by any list in this
// group.
func (p *Group) Selects(sub int, baseline int) bool {
	return p.Which(sub, baseline) >= 0
}

// Which returns the index of the first list in this group which selects a
// given baseline, or -1 if none does.
func (p *Group) Which(sub int, baseline int) int {
	for i, l := range p.lists {
		if l.Evaluate(sub, baseline) {
			return i
		}
	}
	//
	return -1
}

// Materialize the selection of every list in this group.
func (p *Group) Materialize() []*Selection {
	var selections = make([]*Selection, len(p.lists))
	//
	for i, l := range p.lists {
		selections[i] = Materialize(l)
	}
	//
	return selections
}
