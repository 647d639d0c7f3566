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
	"github.com/bits-and-blooms/bitset"
	log "github.com/sirupsen/logrus"
)

// Selection holds the baselines selected by a rule list, precomputed so that
// they can be looked up repeatedly without evaluating the rule list each time.
// A selection is not updated when the rule list from which it was built
// changes.
type Selection struct {
	// offsets[s] is the start of sub-array s in indices.
	offsets []int
	// selected baseline indices, partitioned by sub-array.
	indices []int
	// bases[s] is the index of the first baseline of s in marks.
	bases []int
	// marks identifies which baselines are selected.
	marks *bitset.BitSet
}

// Materialize evaluates a rule list for every baseline of its observation
// (once each), producing the selection of baselines it identifies.
func Materialize(list *RuleList) *Selection {
	var (
		topo    = list.topo
		nsubs   = topo.SubarrayCount()
		bases   = baselineOffsets(list)
		marks   = bitset.New(uint(bases[nsubs]))
		offsets = make([]int, nsubs+1)
	)
	// Evaluate each baseline
	for s := range nsubs {
		for b := range topo.BaselineCount(s) {
			if list.Evaluate(s, b) {
				marks.Set(uint(bases[s] + b))
				offsets[s+1]++
			}
		}
	}
	// Determine partitions
	for s := range nsubs {
		offsets[s+1] += offsets[s]
	}
	//
	var (
		indices = make([]int, 0, offsets[nsubs])
		sub     = 0
	)
	// Fill partitions in order
	for i, ok := marks.NextSet(0); ok; i, ok = marks.NextSet(i + 1) {
		for int(i) >= bases[sub+1] {
			sub++
		}
		//
		indices = append(indices, int(i)-bases[sub])
	}
	//
	log.Debugf("materialized %d of %d baselines", len(indices), bases[nsubs])
	//
	return &Selection{offsets, indices, bases, marks}
}

// Subarrays returns the number of sub-arrays covered by this selection.
func (p *Selection) Subarrays() int {
	return len(p.offsets) - 1
}

// Baselines returns the selected baselines of a given sub-array, in ascending
// order.  This is empty for an invalid sub-array.
func (p *Selection) Baselines(sub int) []int {
	if sub < 0 || sub >= p.Subarrays() {
		return nil
	}
	//
	return p.indices[p.offsets[sub]:p.offsets[sub+1]]
}

// Contains checks whether a given baseline is selected.
func (p *Selection) Contains(sub int, baseline int) bool {
	if sub < 0 || sub >= p.Subarrays() || baseline < 0 || p.bases[sub]+baseline >= p.bases[sub+1] {
		return false
	}
	//
	return p.marks.Test(uint(p.bases[sub] + baseline))
}

// Count returns the number of selected baselines across all sub-arrays.
func (p *Selection) Count() int {
	return len(p.indices)
}
