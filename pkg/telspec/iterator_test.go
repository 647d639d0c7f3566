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
	"testing"

	"github.com/radioastro/telspec/pkg/obs"
	"github.com/radioastro/telspec/pkg/util/assert"
)

func Test_Iterate_00(t *testing.T) {
	var expected = [][4]int{
		{0, 0, 1}, {0, 0, 2}, {0, 0, 3}, {0, 1, 2}, {0, 1, 3}, {0, 2, 3},
		{1, 0, 1}, {1, 1, 2},
	}
	//
	checkEnumeration(t, BASELINE, FORWARD, Options{}, expected)
}

func Test_Iterate_01(t *testing.T) {
	var expected = [][4]int{
		{1, 1, 2}, {1, 0, 1},
		{0, 2, 3}, {0, 1, 3}, {0, 1, 2}, {0, 0, 3}, {0, 0, 2}, {0, 0, 1},
	}
	//
	checkEnumeration(t, BASELINE, BACKWARD, Options{}, expected)
}

func Test_Iterate_02(t *testing.T) {
	var expected = [][4]int{
		{0, 0}, {0, 1}, {0, 2}, {0, 3}, {1, 0}, {1, 1}, {1, 2}, {2, 0},
	}
	//
	checkEnumeration(t, STATION, FORWARD, Options{}, expected)
}

func Test_Iterate_03(t *testing.T) {
	var expected = [][4]int{{0}, {1}, {2}}
	//
	checkEnumeration(t, SUBARRAY, FORWARD, Options{}, expected)
}

func Test_Iterate_04(t *testing.T) {
	var expected = [][4]int{
		{0, 0, 1, 2}, {0, 0, 1, 3}, {0, 0, 2, 3}, {0, 1, 2, 3},
	}
	//
	checkEnumeration(t, TRIANGLE, FORWARD, Options{}, expected)
}

func Test_Iterate_05(t *testing.T) {
	// Reference station CC with all-reference pairs it with every station.
	var (
		topo   = testTopology()
		loc, _ = New(BASELINE, 2, 0, 2)
		opts   = Options{RefLength: 2, AllRef: true}
	)
	//
	assert.Equal(t, [][]int{{0, 2, 0}, {0, 2, 1}, {0, 2, 3}}, enumerate(t, topo, loc, FORWARD, opts))
	// Without it, only stations after the reference qualify.
	assert.Equal(t, [][]int{{0, 2, 3}}, enumerate(t, topo, loc, FORWARD, Options{}))
}

func Test_Iterate_06(t *testing.T) {
	// Exempting the third station of a triangle.
	var (
		topo   = testTopology()
		loc, _ = New(TRIANGLE, 3, 0, 3, 0)
		opts   = Options{RefLength: 3, AllRef: true}
	)
	//
	assert.Equal(t, [][]int{{0, 3, 0, 1}, {0, 3, 0, 2}}, enumerate(t, topo, loc, FORWARD, opts))
	assert.Equal(t, [][]int{{0, 3, 0, 2}, {0, 3, 0, 1}}, enumerate(t, topo, loc, BACKWARD, opts))
}

func Test_Iterate_07(t *testing.T) {
	// Exempting the second station of a triangle.
	var (
		topo   = testTopology()
		loc, _ = New(TRIANGLE, 2, 0, 2)
		opts   = Options{RefLength: 2, AllRef: true}
	)
	//
	assert.Equal(t, [][]int{{0, 2, 0, 1}, {0, 2, 0, 3}, {0, 2, 1, 3}}, enumerate(t, topo, loc, FORWARD, opts))
}

func Test_Iterate_08(t *testing.T) {
	var (
		topo = testTopology()
		loc  = NewLocator(TRIANGLE, 0)
	)
	//
	found, err := Iterate(topo, FIND_FIRST, FORWARD, Options{}, &loc)
	assert.NoError(t, err)
	assert.True(t, found, "no triangle found")
	// AA-BB, BB-CC are traversed in natural order, CC-AA is not.
	assert.Equal(t, [3]Leg{{0, 1}, {3, 1}, {1, -1}}, loc.Legs)
}

func Test_Iterate_09(t *testing.T) {
	// Skipping beyond the last sub-array is not an error.
	var (
		topo   = testTopology()
		loc, _ = New(SUBARRAY, 1, 2)
		before = loc
	)
	//
	found, err := Iterate(topo, SKIP_SUBARRAY, FORWARD, Options{}, &loc)
	assert.NoError(t, err)
	assert.True(t, !found, "skipped beyond last sub-array")
	assert.Equal(t, before, loc)
}

func Test_Iterate_10(t *testing.T) {
	// Sub-array 3 has no baselines, so skipping from sub-array 2 fails.
	var (
		topo   = testTopology()
		loc, _ = New(BASELINE, 3, 1, 1, 2)
	)
	//
	found, err := Iterate(topo, FIND_FIRST, FORWARD, Options{}, &loc)
	assert.NoError(t, err)
	assert.True(t, found, "baseline FF-GG not found")
	//
	before := loc
	found, err = Iterate(topo, SKIP_SUBARRAY, FORWARD, Options{}, &loc)
	assert.NoError(t, err)
	assert.True(t, !found, "found baseline in sub-array 3")
	assert.Equal(t, before, loc)
	// But skipping backwards works, and frees all fields.
	found, err = Iterate(topo, SKIP_SUBARRAY, BACKWARD, Options{}, &loc)
	assert.NoError(t, err)
	assert.True(t, found, "no baseline in sub-array 1")
	assert.Equal(t, 0, loc.Fixed)
	assert.Equal(t, []int{2, 3}, loc.StationList())
}

func Test_Iterate_11(t *testing.T) {
	var (
		topo   = testTopology()
		loc, _ = New(BASELINE, 3, 0, 0, 1)
	)
	//
	found, err := Iterate(topo, SKIP_STATION_A, FORWARD, Options{}, &loc)
	assert.NoError(t, err)
	assert.True(t, found, "no baseline found")
	assert.Equal(t, 1, loc.Fixed)
	assert.Equal(t, []int{1, 2}, loc.StationList())
	assert.Equal(t, 3, loc.Baseline)
}

func Test_Iterate_12(t *testing.T) {
	var (
		topo   = testTopology()
		loc, _ = New(TRIANGLE, 4, 0, 0, 1, 2)
	)
	//
	found, err := Iterate(topo, SKIP_STATION_B, FORWARD, Options{}, &loc)
	assert.NoError(t, err)
	assert.True(t, found, "no triangle found")
	assert.Equal(t, 2, loc.Fixed)
	assert.Equal(t, []int{0, 2, 3}, loc.StationList())
	// Cannot skip second station of a baseline
	bl, _ := New(BASELINE, 3, 0, 0, 1)
	_, err = Iterate(topo, SKIP_STATION_B, FORWARD, Options{}, &bl)
	assert.ErrorIs(t, err, ErrInvalidOperation)
}

func Test_Iterate_13(t *testing.T) {
	// Reference held fixed even though locator fixes nothing.
	var (
		topo   = testTopology()
		loc, _ = New(BASELINE, 0, 0, 0, 1)
		opts   = Options{RefLength: 2, FixRef: true}
	)
	//
	assert.Equal(t, [][]int{{0, 0, 2}, {0, 0, 3}}, advance(t, topo, loc, FORWARD, opts))
}

func Test_Iterate_14(t *testing.T) {
	// Fully fixed locator with no baseline
	var (
		topo   = testTopology()
		loc, _ = New(BASELINE, 3, 1, 0, 2)
	)
	//
	found, err := Iterate(topo, FIND_FIRST, FORWARD, Options{}, &loc)
	assert.NoError(t, err)
	assert.True(t, !found, "found non-existent baseline")
	// And a fully fixed locator has no successor
	loc, _ = New(BASELINE, 3, 0, 0, 1)
	found, err = Iterate(topo, FIND_NEXT, FORWARD, Options{}, &loc)
	assert.NoError(t, err)
	assert.True(t, !found, "fully fixed locator advanced")
}

func Test_Iterate_15(t *testing.T) {
	var (
		topo = testTopology()
		loc  = NewLocator(BASELINE, 0)
	)
	// Invalid fixed count
	loc.Fixed = 4
	before := loc
	_, err := Iterate(topo, FIND_FIRST, FORWARD, Options{}, &loc)
	assert.ErrorIs(t, err, ErrInvalidFixedCount)
	assert.Equal(t, before, loc)
	// Invalid sub-array
	loc, _ = New(BASELINE, 1, 7)
	_, err = Iterate(topo, FIND_FIRST, FORWARD, Options{}, &loc)
	assert.ErrorIs(t, err, ErrSubarrayOutOfRange)
	// Invalid station
	loc, _ = New(BASELINE, 2, 1, 3)
	_, err = Iterate(topo, FIND_FIRST, FORWARD, Options{}, &loc)
	assert.ErrorIs(t, err, ErrStationOutOfRange)
	// Invalid reference length
	loc = NewLocator(BASELINE, 0)
	_, err = Iterate(topo, FIND_FIRST, FORWARD, Options{RefLength: 5}, &loc)
	assert.ErrorIs(t, err, ErrInvalidFixedCount)
	// Construction
	_, err = New(STATION, 3, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidFixedCount)
}

func Test_Iterate_16(t *testing.T) {
	// Calling FIND_FIRST twice yields the same locator.
	var topo = testTopology()
	//
	for _, kind := range []Kind{SUBARRAY, STATION, BASELINE, TRIANGLE} {
		for _, dir := range []Direction{FORWARD, BACKWARD} {
			first, _ := New(kind, 1, 0)
			_, err := Iterate(topo, FIND_FIRST, dir, Options{}, &first)
			assert.NoError(t, err)
			second := first
			_, err = Iterate(topo, FIND_FIRST, dir, Options{}, &second)
			assert.NoError(t, err)
			assert.True(t, first.Equal(second), "%s differs from %s", first, second)
		}
	}
}

func Test_Iterate_17(t *testing.T) {
	// FIND_NEXT from an arbitrary (invalid) free tuple.
	var (
		topo   = testTopology()
		loc, _ = New(BASELINE, 1, 0, 3, 1)
	)
	//
	found, err := Iterate(topo, FIND_NEXT, FORWARD, Options{}, &loc)
	assert.NoError(t, err)
	assert.True(t, !found, "unexpected baseline after DD")
	//
	loc, _ = New(BASELINE, 1, 0, 2, 1)
	found, err = Iterate(topo, FIND_NEXT, FORWARD, Options{}, &loc)
	assert.NoError(t, err)
	assert.True(t, found, "no baseline found")
	assert.Equal(t, []int{2, 3}, loc.StationList())
}

func Test_Iterate_18(t *testing.T) {
	// Symmetry of baseline lookup for every valid baseline.
	var (
		topo = testTopology()
		loc  = NewLocator(BASELINE, 0)
	)
	//
	for _, l := range iterateAll(t, topo, loc, FORWARD, Options{}) {
		a, b := l.Stations[0], l.Stations[1]
		assert.Equal(t, topo.FindBaseline(l.Sub, a, b), topo.FindBaseline(l.Sub, b, a))
	}
}

func Test_Iterate_19(t *testing.T) {
	// Free station indices strictly ascend.
	var topo = testTopology()
	//
	for _, kind := range []Kind{BASELINE, TRIANGLE} {
		for _, dir := range []Direction{FORWARD, BACKWARD} {
			for _, l := range iterateAll(t, topo, NewLocator(kind, 0), dir, Options{}) {
				stations := l.StationList()
				//
				for i := 1; i < len(stations); i++ {
					assert.True(t, stations[i-1] < stations[i], "%s not ascending", l)
				}
			}
		}
	}
}

// ==================================================================
// Framework
// ==================================================================

// Construct a topology with three sub-arrays:
//
//	1: AA, BB, CC, DD (all pairs)
//	2: EE, FF, GG (baselines EE-FF and GG-FF)
//	3: HH (no baselines)
func testTopology() *obs.Observation {
	sub1, _ := obs.NewSubarray([]string{"AA", "BB", "CC", "DD"})
	sub2, _ := obs.NewSubarray([]string{"EE", "FF", "GG"}, obs.Baseline{A: 0, B: 1}, obs.Baseline{A: 2, B: 1})
	sub3, _ := obs.NewSubarray([]string{"HH"})
	//
	return obs.NewObservation(sub1, sub2, sub3)
}

func checkEnumeration(t *testing.T, kind Kind, dir Direction, opts Options, expected [][4]int) {
	var (
		topo   = testTopology()
		actual = iterateAll(t, topo, NewLocator(kind, 0), dir, opts)
	)
	//
	if len(actual) != len(expected) {
		t.Fatalf("expected %d %ss, got %d", len(expected), kind, len(actual))
	}
	//
	for i, l := range actual {
		assert.Equal(t, expected[i][0], l.Sub)
		//
		for j, s := range l.StationList() {
			assert.Equal(t, expected[i][j+1], s, "%dth %s is %s", i, kind, l)
		}
	}
}

// Enumerate all locators from FIND_FIRST onwards.
func iterateAll(t *testing.T, topo obs.Topology, loc Locator, dir Direction, opts Options) []Locator {
	var locs []Locator
	//
	for op := FIND_FIRST; ; op = FIND_NEXT {
		found, err := Iterate(topo, op, dir, opts, &loc)
		assert.NoError(t, err)
		//
		if !found {
			return locs
		}
		//
		locs = append(locs, loc)
	}
}

func enumerate(t *testing.T, topo obs.Topology, loc Locator, dir Direction, opts Options) [][]int {
	return fields(iterateAll(t, topo, loc, dir, opts))
}

// Enumerate all locators strictly after the given one.
func advance(t *testing.T, topo obs.Topology, loc Locator, dir Direction, opts Options) [][]int {
	var locs []Locator
	//
	for {
		found, err := Iterate(topo, FIND_NEXT, dir, opts, &loc)
		assert.NoError(t, err)
		//
		if !found {
			return fields(locs)
		}
		//
		locs = append(locs, loc)
	}
}

func fields(locs []Locator) [][]int {
	var result [][]int
	//
	for _, l := range locs {
		result = append(result, append([]int{l.Sub}, l.StationList()...))
	}
	//
	return result
}
