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

	"github.com/radioastro/telspec/pkg/obs"
	"github.com/radioastro/telspec/pkg/telspec"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [flags] topology_file [locator]",
	Short: "list every locator matching a partial locator.",
	Long: `Enumerate every locator of a given kind which matches a (partial) locator,
such as "2:AA" for every baseline of station AA in sub-array 2.  When no
locator is given, every locator of the given kind is listed.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 || len(args) > 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		configureLogging(cmd)
		//
		var (
			topo = readTopology(args[0])
			sub  = getDefaultSub(cmd, topo)
			cfg  listConfig
			err  error
		)
		//
		if cfg.kind, err = telspec.ParseKind(GetString(cmd, "kind")); err != nil {
			fmt.Println(err)
			os.Exit(2)
		} else if cfg.op, err = parseSkip(cfg.kind, GetString(cmd, "skip")); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		loc := telspec.NewLocator(cfg.kind, sub)
		//
		if len(args) == 2 {
			if loc, err = telspec.Decode(topo, cfg.kind, args[1], sub); err != nil {
				printLocatorError(args[1], err)
			}
		}
		//
		cfg.dir = telspec.FORWARD
		if GetFlag(cmd, "reverse") {
			cfg.dir = telspec.BACKWARD
		}
		//
		cfg.opts = telspec.Options{
			RefLength: GetInt(cmd, "ref"),
			AllRef:    GetFlag(cmd, "all-ref"),
			FixRef:    GetFlag(cmd, "fix-ref"),
			Report:    GetFlag(cmd, "verbose"),
		}
		// Default reference is whatever the locator fixes
		if cfg.opts.RefLength < 0 {
			cfg.opts.RefLength = loc.Fixed
		}
		//
		count, err := listLocators(topo, loc, cfg, GetUint(cmd, "max"))
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		if GetFlag(cmd, "count") {
			fmt.Println(count)
		}
	},
}

type listConfig struct {
	kind telspec.Kind
	op   telspec.Op
	dir  telspec.Direction
	opts telspec.Options
}

// Print every locator reachable from a given starting point (inclusive),
// returning the number printed.  A limit of zero means no limit.
func listLocators(topo obs.Topology, loc telspec.Locator, cfg listConfig, limit uint) (uint, error) {
	var count uint
	//
	found, err := telspec.Iterate(topo, telspec.FIND_FIRST, cfg.dir, cfg.opts, &loc)
	//
	for ; found && (limit == 0 || count < limit); count++ {
		text, err := telspec.Encode(topo, loc, cfg.kind.Fields(), true, 0)
		if err != nil {
			return count, err
		}
		//
		fmt.Println(describe(topo, loc, text))
		//
		if found, err = telspec.Iterate(topo, cfg.op, cfg.dir, cfg.opts, &loc); err != nil {
			return count, err
		}
	}
	//
	return count, err
}

// Describe a located baseline or triangle by its baseline indices, alongside
// its encoded form.
func describe(topo obs.Topology, loc telspec.Locator, text string) string {
	switch loc.Kind {
	case telspec.BASELINE:
		return fmt.Sprintf("%s\t(baseline %d)", text, loc.Baseline)
	case telspec.TRIANGLE:
		var legs = loc.Legs
		//
		return fmt.Sprintf("%s\t(baselines %s, %s, %s)", text, sign(legs[0]), sign(legs[1]), sign(legs[2]))
	}
	//
	return text
}

func sign(leg telspec.Leg) string {
	if leg.Sign < 0 {
		return fmt.Sprintf("-%d", leg.Baseline)
	}
	//
	return fmt.Sprintf("+%d", leg.Baseline)
}

// Determine the iteration operation used to move between listed locators.
func parseSkip(kind telspec.Kind, skip string) (telspec.Op, error) {
	switch skip {
	case "":
		return telspec.FIND_NEXT, nil
	case "subarray":
		return telspec.SKIP_SUBARRAY, nil
	case "a":
		if kind == telspec.BASELINE || kind == telspec.TRIANGLE {
			return telspec.SKIP_STATION_A, nil
		}
	case "b":
		if kind == telspec.TRIANGLE {
			return telspec.SKIP_STATION_B, nil
		}
	default:
		return 0, fmt.Errorf("unknown skip \"%s\" (expected subarray, a or b)", skip)
	}
	//
	return 0, fmt.Errorf("cannot skip station %s of a %s", skip, kind)
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().String("kind", "baseline", "kind of locator (subarray, station, baseline or triangle)")
	listCmd.Flags().Bool("reverse", false, "list in reverse order")
	listCmd.Flags().Int("ref", -1, "number of leading reference fields (default: those fixed by the locator)")
	listCmd.Flags().Bool("all-ref", false, "pair reference stations with every other station")
	listCmd.Flags().Bool("fix-ref", false, "hold reference fields fixed")
	listCmd.Flags().String("skip", "", "skip to the next subarray, station a or station b after each locator")
	listCmd.Flags().Uint("max", 0, "maximum number of locators to list (0 for no limit)")
	listCmd.Flags().Bool("count", false, "report number of locators listed")
}
