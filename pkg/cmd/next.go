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
	"github.com/radioastro/telspec/pkg/telspec"
	"github.com/spf13/cobra"
)

var nextCmd = &cobra.Command{
	Use:   "next [flags] topology_file rules [baseline]",
	Short: "find the next baseline selected by a rule list.",
	Long: `Find the next baseline after a given baseline (such as "1:AA-BB") which is
selected by a rule list, wrapping around at the end of the observation.  When
no baseline is given, the search starts from the beginning of the default
sub-array.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 2 || len(args) > 3 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		configureLogging(cmd)
		//
		var (
			topo    = readTopology(args[0])
			sub     = getDefaultSub(cmd, topo)
			forward = !GetFlag(cmd, "reverse")
			from    = baseline.Position{Sub: sub, Baseline: -1}
		)
		//
		list, err := baseline.Parse(topo, args[1], sub, 0)
		if err != nil {
			printLocatorError(args[1], err)
		}
		//
		if len(args) == 3 {
			loc, err := telspec.Decode(topo, telspec.BASELINE, args[2], sub)
			if err != nil {
				printLocatorError(args[2], err)
			}
			//
			from = baseline.Position{Sub: loc.Sub, Baseline: loc.Baseline}
		}
		//
		pos, ok := list.SearchNextSelected(from, forward)
		//
		if !ok {
			fmt.Println("no baseline selected")
			os.Exit(5)
		}
		//
		fmt.Println(baselineText(topo, pos.Sub, pos.Baseline))
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(nextCmd)
	nextCmd.Flags().Bool("reverse", false, "find the previous selected baseline")
}
