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
	"encoding/json"
	"fmt"
	"os"
)

// jsonObservation is the on-disk layout of an observation topology.
type jsonObservation struct {
	Subarrays []jsonSubarray `json:"subarrays"`
}

type jsonSubarray struct {
	Stations  []string `json:"stations"`
	Baselines [][2]int `json:"baselines,omitempty"`
}

// ReadObservationFile reads an observation topology from a given JSON file.
func ReadObservationFile(filename string) (*Observation, error) {
	bytes, err := os.ReadFile(filename)
	//
	if err != nil {
		return nil, err
	}
	//
	return ParseJsonObservation(bytes)
}

// ParseJsonObservation parses an observation topology from JSON.  For example:
//
//	{"subarrays": [{"stations": ["AA","BB","CC"], "baselines": [[0,1],[0,2]]}]}
//
// Omitting the baselines of a sub-array means every pair of stations forms a
// baseline.
func ParseJsonObservation(bytes []byte) (*Observation, error) {
	var raw jsonObservation
	//
	if err := json.Unmarshal(bytes, &raw); err != nil {
		return nil, err
	} else if len(raw.Subarrays) == 0 {
		return nil, fmt.Errorf("observation has no sub-arrays")
	}
	//
	subarrays := make([]*Subarray, len(raw.Subarrays))
	//
	for i, s := range raw.Subarrays {
		baselines := make([]Baseline, len(s.Baselines))
		//
		for j, b := range s.Baselines {
			baselines[j] = Baseline{b[0], b[1]}
		}
		//
		sub, err := NewSubarray(s.Stations, baselines...)
		if err != nil {
			return nil, fmt.Errorf("sub-array %d: %w", i+1, err)
		}
		//
		subarrays[i] = sub
	}
	//
	return NewObservation(subarrays...), nil
}
