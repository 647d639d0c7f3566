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

import "github.com/radioastro/telspec/pkg/util"

// Topology provides read-only access to the station and baseline layout of an
// observation.  An observation consists of one or more sub-arrays, each of which
// has an ordered sequence of (named) stations and an ordered sequence of
// baselines.  Each baseline is an unordered pair of distinct stations from the
// same sub-array.
type Topology interface {
	// SubarrayCount returns the number of sub-arrays in the observation.
	SubarrayCount() int
	// StationCount returns the number of stations in a given sub-array.
	StationCount(sub int) int
	// StationName returns the display name of a given station.
	StationName(sub int, station int) string
	// BaselineCount returns the number of baselines in a given sub-array.
	BaselineCount(sub int) int
	// BaselineStations returns the two stations of a given baseline, in their
	// natural order.
	BaselineStations(sub int, baseline int) (int, int)
	// FindBaseline identifies the baseline connecting two stations of a given
	// sub-array, irrespective of the order in which they are given.
	FindBaseline(sub int, a int, b int) util.Option[int]
}

// TotalBaselines returns the number of baselines across all sub-arrays.
func TotalBaselines(topo Topology) int {
	var n = 0
	//
	for sub := range topo.SubarrayCount() {
		n += topo.BaselineCount(sub)
	}
	//
	return n
}
