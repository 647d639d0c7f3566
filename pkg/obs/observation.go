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
package obs

import (
	"fmt"
	"strings"

	"github.com/radioastro/telspec/pkg/util"
)

// Baseline identifies the two stations connected by a baseline.
type Baseline struct {
	A int `json:"a"`
	B int `json:"b"`
}

// Subarray describes the stations and baselines of a single sub-array.
type Subarray struct {
	stations  []string
	baselines []Baseline
	// lookup maps (a*n)+b to a baseline index, or -1.
	lookup []int
}

// NewSubarray constructs a sub-array from a given set of station names and
// baselines.  If no baselines are given, then every unordered pair of distinct
// stations becomes a baseline, enumerated in ascending order.  An error is
// returned if a baseline is malformed or repeated, or if two stations share
// the same name (ignoring case).
func NewSubarray(stations []string, baselines ...Baseline) (*Subarray, error) {
	var n = len(stations)
	// Sanity check station names
	for i := range n {
		if stations[i] == "" {
			return nil, fmt.Errorf("station %d has empty name", i+1)
		}
		//
		for j := range i {
			if strings.EqualFold(stations[i], stations[j]) {
				return nil, fmt.Errorf("duplicate station name \"%s\"", stations[i])
			}
		}
	}
	//
	if len(baselines) == 0 {
		baselines = allPairs(n)
	}
	//
	lookup := make([]int, n*n)
	for i := range lookup {
		lookup[i] = -1
	}
	//
	for i, b := range baselines {
		if b.A < 0 || b.A >= n || b.B < 0 || b.B >= n {
			return nil, fmt.Errorf("baseline %d references unknown station", i+1)
		} else if b.A == b.B {
			return nil, fmt.Errorf("baseline %d connects station \"%s\" to itself", i+1, stations[b.A])
		} else if lookup[b.A*n+b.B] >= 0 {
			return nil, fmt.Errorf("baseline %s-%s is repeated", stations[b.A], stations[b.B])
		}
		//
		lookup[b.A*n+b.B] = i
		lookup[b.B*n+b.A] = i
	}
	//
	return &Subarray{stations, baselines, lookup}, nil
}

// Stations returns the station names of this sub-array.
func (p *Subarray) Stations() []string {
	return p.stations
}

// Baselines returns the baselines of this sub-array.
func (p *Subarray) Baselines() []Baseline {
	return p.baselines
}

func allPairs(n int) []Baseline {
	var baselines []Baseline
	//
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			baselines = append(baselines, Baseline{a, b})
		}
	}
	//
	return baselines
}

// Observation is an in-memory implementation of Topology.
type Observation struct {
	subarrays []*Subarray
}

var _ Topology = &Observation{}

// NewObservation constructs an observation from a given set of sub-arrays.
func NewObservation(subarrays ...*Subarray) *Observation {
	return &Observation{subarrays}
}

// Subarray returns the given sub-array of this observation.
func (p *Observation) Subarray(sub int) *Subarray {
	return p.subarrays[sub]
}

// SubarrayCount implementation for Topology interface.
func (p *Observation) SubarrayCount() int {
	return len(p.subarrays)
}

// StationCount implementation for Topology interface.
func (p *Observation) StationCount(sub int) int {
	return len(p.subarrays[sub].stations)
}

// StationName implementation for Topology interface.
func (p *Observation) StationName(sub int, station int) string {
	return p.subarrays[sub].stations[station]
}

// BaselineCount implementation for Topology interface.
func (p *Observation) BaselineCount(sub int) int {
	return len(p.subarrays[sub].baselines)
}

// BaselineStations implementation for Topology interface.
func (p *Observation) BaselineStations(sub int, baseline int) (int, int) {
	b := p.subarrays[sub].baselines[baseline]
	return b.A, b.B
}

// FindBaseline implementation for Topology interface.
func (p *Observation) FindBaseline(sub int, a int, b int) util.Option[int] {
	var (
		s = p.subarrays[sub]
		n = len(s.stations)
	)
	//
	if a < 0 || a >= n || b < 0 || b >= n {
		return util.None[int]()
	} else if index := s.lookup[a*n+b]; index >= 0 {
		return util.Some(index)
	}
	//
	return util.None[int]()
}
