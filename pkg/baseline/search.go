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

import "sort"

// Position identifies a baseline within a given sub-array.
type Position struct {
	Sub      int
	Baseline int
}

// SearchNextSelected finds the next baseline after a given position (or the
// previous one, when searching backwards) which is selected by this list.  The
// search proceeds in baseline order, moving across sub-arrays and wrapping
// around at the end of the observation, such that the starting baseline itself
// is considered last.  A starting baseline of -1 is permitted, meaning the
// search starts at the beginning of the given sub-array (in either direction).
// This returns false if no baseline is selected, or the starting position is
// invalid.
func (p *RuleList) SearchNextSelected(from Position, forward bool) (Position, bool) {
	var (
		nsubs = p.topo.SubarrayCount()
		bases = baselineOffsets(p)
		total = bases[nsubs]
		dir   = 1
	)
	//
	if from.Sub < 0 || from.Sub >= nsubs || total == 0 {
		return from, false
	} else if from.Baseline < -1 || from.Baseline >= p.topo.BaselineCount(from.Sub) {
		return from, false
	} else if !forward {
		dir = -1
	}
	//
	start := bases[from.Sub] + from.Baseline
	// Searching backwards from the start of a sub-array begins with the
	// baseline before it.
	if from.Baseline == -1 && !forward {
		start = bases[from.Sub]
	}
	//
	for k := 1; k <= total; k++ {
		index := ((start+dir*k)%total + total) % total
		// Identify enclosing sub-array
		sub := sort.Search(nsubs, func(s int) bool { return bases[s+1] > index })
		//
		if p.Evaluate(sub, index-bases[sub]) {
			return Position{sub, index - bases[sub]}, true
		}
	}
	//
	return from, false
}

// Determine the index of the first baseline of each sub-array, if all
// baselines were numbered consecutively.  The final entry holds the total
// number of baselines.
func baselineOffsets(list *RuleList) []int {
	var (
		nsubs = list.topo.SubarrayCount()
		bases = make([]int, nsubs+1)
	)
	//
	for s := range nsubs {
		bases[s+1] = bases[s] + list.topo.BaselineCount(s)
	}
	//
	return bases
}
