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
	"testing"

	"github.com/radioastro/telspec/pkg/util/assert"
)

func Test_Selection_00(t *testing.T) {
	var sel = Materialize(parse(t, "!AA-BB"))
	//
	assert.Equal(t, 3, sel.Subarrays())
	assert.Equal(t, 7, sel.Count())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, sel.Baselines(0))
	assert.Equal(t, []int{0, 1}, sel.Baselines(1))
	assert.Equal(t, 0, len(sel.Baselines(2)))
	assert.True(t, !sel.Contains(0, 0), "AA-BB selected")
	assert.True(t, sel.Contains(1, 1), "GG-FF not selected")
}

func Test_Selection_01(t *testing.T) {
	var sel = Materialize(parse(t, ""))
	//
	assert.Equal(t, 0, sel.Count())
	assert.True(t, !sel.Contains(0, 0), "baseline selected by empty list")
}

func Test_Selection_02(t *testing.T) {
	var sel = Materialize(parse(t, "*"))
	// Out of range lookups
	assert.True(t, !sel.Contains(-1, 0), "invalid sub-array selected")
	assert.True(t, !sel.Contains(3, 0), "invalid sub-array selected")
	assert.True(t, !sel.Contains(0, 6), "invalid baseline selected")
	assert.True(t, !sel.Contains(1, -1), "invalid baseline selected")
	assert.True(t, !sel.Contains(2, 0), "invalid baseline selected")
	assert.Equal(t, 0, len(sel.Baselines(-1)))
	assert.Equal(t, 0, len(sel.Baselines(3)))
	assert.Equal(t, 0, len(sel.Baselines(5)))
}

func Test_Selection_03(t *testing.T) {
	checkMaterialize(t, "*")
	checkMaterialize(t, "AA")
	checkMaterialize(t, "!CC")
	checkMaterialize(t, "2:")
	checkMaterialize(t, "+AA !1: +AA")
	checkMaterialize(t, "BB-DD +2:GG !AA-DD")
	checkMaterialize(t, "!2:FF +1:BB-CC !1:AA")
}

func Test_Selection_04(t *testing.T) {
	// Selection unaffected by later changes
	var (
		list = parse(t, "AA")
		sel  = Materialize(list)
	)
	//
	assert.NoError(t, list.AppendText("+BB", 0))
	assert.Equal(t, 3, sel.Count())
	assert.Equal(t, 5, Materialize(list).Count())
}

func Test_Group_00(t *testing.T) {
	var group = NewGroup(testTopology(), 0)
	//
	a, err := group.Add("a")
	assert.NoError(t, err)
	b, err := group.Add("b")
	assert.NoError(t, err)
	//
	_, err = group.Add("a")
	assert.True(t, err != nil, "duplicate list added")
	//
	assert.NoError(t, a.AppendText("AA-BB", 0))
	assert.NoError(t, b.AppendText("2:", 0))
	//
	assert.Equal(t, 2, group.Len())
	assert.Equal(t, uint(2), group.RuleCount())
	assert.Equal(t, 0, group.Which(0, 0))
	assert.Equal(t, 1, group.Which(1, 1))
	assert.Equal(t, -1, group.Which(0, 5))
	assert.True(t, group.Selects(1, 0), "EE-FF not selected")
	assert.True(t, !group.Selects(0, 3), "BB-CC selected")
}

func Test_Group_01(t *testing.T) {
	var group = NewGroup(testTopology(), 0)
	//
	a, _ := group.Add("a")
	b, _ := group.Add("b")
	//
	assert.NoError(t, a.AppendText("AA +BB", 0))
	assert.NoError(t, b.AppendText("!CC", 0))
	assert.Equal(t, uint(4), group.RuleCount())
	//
	assert.True(t, group.Remove("a"), "list not removed")
	assert.True(t, !group.Remove("a"), "list removed twice")
	assert.Equal(t, []string{"b"}, group.Names())
	assert.Equal(t, uint(2), group.RuleCount())
	//
	list, ok := group.Get("b")
	assert.True(t, ok, "list not found")
	assert.Equal(t, "* !1:CC", list.String())
	//
	_, ok = group.Get("a")
	assert.True(t, !ok, "removed list found")
	//
	sels := group.Materialize()
	assert.Equal(t, 1, len(sels))
	assert.Equal(t, 5, sels[0].Count())
	//
	group.Clear()
	assert.Equal(t, 0, group.Len())
	assert.Equal(t, uint(0), group.RuleCount())
}

func Test_Group_02(t *testing.T) {
	// Lists share the group's rule limit
	var group = NewGroup(testTopology(), 3)
	//
	a, _ := group.Add("a")
	b, _ := group.Add("b")
	//
	assert.NoError(t, a.AppendText("AA +BB", 0))
	assert.NoError(t, b.AppendText("CC", 0))
	assert.True(t, b.AppendText("+DD", 0) != nil, "rule limit exceeded")
	assert.Equal(t, uint(1), b.Len())
	//
	a.Clear()
	assert.NoError(t, b.AppendText("+DD", 0))
	assert.Equal(t, "1:CC +1:DD", b.String())
}

// Check a materialized selection agrees with evaluating its rule list
// directly.
func checkMaterialize(t *testing.T, text string) {
	t.Helper()
	//
	var (
		list  = parse(t, text)
		sel   = Materialize(list)
		topo  = list.Topology()
		count = 0
	)
	//
	for s := range topo.SubarrayCount() {
		var expected []int
		//
		for b := range topo.BaselineCount(s) {
			selected := list.Evaluate(s, b)
			assert.Equal(t, selected, sel.Contains(s, b), "baseline %d of sub-array %d (%s)", b, s, text)
			//
			if selected {
				expected = append(expected, b)
			}
		}
		//
		assert.Equal(t, len(expected), len(sel.Baselines(s)))
		//
		if len(expected) > 0 {
			assert.Equal(t, expected, sel.Baselines(s))
		}
		//
		count += len(expected)
	}
	//
	assert.Equal(t, count, sel.Count())
	assert.Equal(t, list.CountSelected(-1), sel.Count())
}
