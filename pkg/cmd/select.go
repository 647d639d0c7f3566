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
package cmd

import (
	"fmt"
	"os"

	"github.com/radioastro/telspec/pkg/baseline"
	"github.com/radioastro/telspec/pkg/obs"
	"github.com/radioastro/telspec/pkg/telspec"
	"github.com/radioastro/telspec/pkg/util"
	"github.com/radioastro/telspec/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var selectCmd = &cobra.Command{
	Use:   "select [flags] topology_file rules...",
	Short: "show the baselines selected by one or more rule lists.",
	Long: `Show which baselines of an observation are selected by one or more rule
lists, such as "!AA-BB" (every baseline except AA-BB) or "2: !2:CC" (every
baseline of sub-array 2 except those of station CC).`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		configureLogging(cmd)
		//
		var (
			topo  = readTopology(args[0])
			sub   = getDefaultSub(cmd, topo)
			group = readRuleLists(topo, args[1:], sub, GetUint(cmd, "limit"))
			stats = util.NewPerfStats()
			sels  = group.Materialize()
		)
		//
		if GetFlag(cmd, "stats") {
			stats.Log(fmt.Sprintf("Materializing %d rule lists", group.Len()))
		}
		//
		if GetFlag(cmd, "count") {
			printCounts(topo, group, sels)
		} else {
			colour := !GetFlag(cmd, "no-colour") && term.IsTerminal(int(os.Stdout.Fd()))
			printSelections(topo, group, sels, colour)
		}
	},
}

// Parse each rule list into a group, or exit if any is malformed.  Lists are
// named by their position on the command line.
func readRuleLists(topo obs.Topology, texts []string, sub int, limit uint) *baseline.Group {
	var group = baseline.NewGroup(topo, limit)
	//
	for i, text := range texts {
		list, err := group.Add(fmt.Sprintf("#%d", i+1))
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		if err := list.AppendText(text, sub); err != nil {
			printLocatorError(text, err)
		}
		//
		log.Debugf("rule list #%d: %s", i+1, list)
	}
	//
	return group
}

func printCounts(topo obs.Topology, group *baseline.Group, sels []*baseline.Selection) {
	var table = termio.NewTablePrinter(uint(1 + len(sels)))
	//
	table.AddRow(append([]string{"sub"}, group.Names()...)...)
	//
	for s := range topo.SubarrayCount() {
		row := []string{fmt.Sprintf("%d", s+1)}
		//
		for _, sel := range sels {
			row = append(row, fmt.Sprintf("%d/%d", len(sel.Baselines(s)), topo.BaselineCount(s)))
		}
		//
		table.AddRow(row...)
	}
	//
	row := []string{"all"}
	for _, sel := range sels {
		row = append(row, fmt.Sprintf("%d/%d", sel.Count(), obs.TotalBaselines(topo)))
	}
	//
	table.AddRow(row...)
	//
	if err := table.Print(os.Stdout); err != nil {
		log.Error(err)
	}
}

func printSelections(topo obs.Topology, group *baseline.Group, sels []*baseline.Selection, colour bool) {
	var (
		table = termio.NewTablePrinter(uint(2 + len(sels)))
		yes   = termio.NewAnsiEscape().FgColour(termio.TERM_GREEN)
		no    = termio.NewAnsiEscape().FgColour(termio.TERM_RED)
	)
	//
	table.AddRow(append([]string{"index", "baseline"}, group.Names()...)...)
	table.AlignLeft(1)
	table.AnsiEscapes(colour)
	//
	for s := range topo.SubarrayCount() {
		for b := range topo.BaselineCount(s) {
			row := []string{fmt.Sprintf("%d", b), baselineText(topo, s, b)}
			//
			for _, sel := range sels {
				row = append(row, yesNo(sel.Contains(s, b)))
			}
			//
			r := table.AddRow(row...)
			//
			for i, sel := range sels {
				if sel.Contains(s, b) {
					table.SetEscape(uint(2+i), r, yes)
				} else {
					table.SetEscape(uint(2+i), r, no)
				}
			}
		}
	}
	//
	if err := table.Print(os.Stdout); err != nil {
		log.Error(err)
	}
}

// Encode a given baseline in full, e.g. "1:AA-BB".
func baselineText(topo obs.Topology, sub int, index int) string {
	a, b := topo.BaselineStations(sub, index)
	//
	loc, err := telspec.New(telspec.BASELINE, telspec.BASELINE.Fields(), sub, a, b)
	if err != nil {
		panic(err)
	}
	//
	text, err := telspec.Encode(topo, loc, 0, false, 0)
	if err != nil {
		panic(err)
	}
	//
	return text
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	//
	return "no"
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(selectCmd)
	selectCmd.Flags().Bool("count", false, "report only the number of selected baselines")
	selectCmd.Flags().Bool("stats", false, "report time and memory used to materialize selections")
	selectCmd.Flags().Bool("no-colour", false, "disable coloured output")
	selectCmd.Flags().Uint("limit", 0, "maximum number of rules across all lists (0 for no limit)")
}
