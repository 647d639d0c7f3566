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
	"github.com/radioastro/telspec/pkg/obs"
	"github.com/radioastro/telspec/pkg/telspec"
)

// Rule either includes or excludes every baseline cited by a given (baseline)
// locator.
type Rule struct {
	Locator telspec.Locator
	Include bool
}

// Cites determines whether a given baseline is cited by this rule.  Fields of
// the locator beyond its fixed count match anything, and the order in which
// the two stations are given is irrelevant.
func (p Rule) Cites(topo obs.Topology, sub int, baseline int) bool {
	var loc = p.Locator
	//
	if loc.Fixed == 0 {
		return true
	} else if loc.Sub != sub {
		return false
	} else if loc.Fixed == 1 {
		return true
	}
	//
	a, b := topo.BaselineStations(sub, baseline)
	//
	if loc.Fixed == 2 {
		return loc.Stations[0] == a || loc.Stations[0] == b
	}
	//
	return (loc.Stations[0] == a && loc.Stations[1] == b) || (loc.Stations[0] == b && loc.Stations[1] == a)
}

// Handle identifies a rule within a rule list, such that it can later be
// removed.
type Handle uint32

// node of a singly-linked rule list, held in an arena.
type node struct {
	rule Rule
	next uint32
}
