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
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/radioastro/telspec/pkg/obs"
	"github.com/radioastro/telspec/pkg/telspec"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetInt gets an expected signed integer, or exits if an error arises.
func GetInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned integer, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Configure log level
func configureLogging(cmd *cobra.Command) {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
}

// Read the default sub-array, which is numbered from 1 on the command line.
func getDefaultSub(cmd *cobra.Command, topo obs.Topology) int {
	sub := GetUint(cmd, "sub")
	//
	if sub < 1 || int(sub) > topo.SubarrayCount() {
		fmt.Printf("sub-array %d out of range (1..%d)\n", sub, topo.SubarrayCount())
		os.Exit(2)
	}
	//
	return int(sub) - 1
}

// Read an observation topology file, or exit if this fails.
func readTopology(filename string) *obs.Observation {
	topo, err := obs.ReadObservationFile(filename)
	//
	if err != nil {
		fmt.Printf("%s: %s\n", filename, err)
		os.Exit(3)
	}
	//
	log.Debugf("read %d sub-arrays (%d baselines) from %s", topo.SubarrayCount(), obs.TotalBaselines(topo),
		filename)
	//
	return topo
}

// Print an error arising from some locator (or rule list) text, with the
// offending characters highlighted, and then exit.
func printLocatorError(text string, err error) {
	var e *telspec.Error
	//
	if !errors.As(err, &e) {
		fmt.Println(err)
		os.Exit(4)
	}
	//
	fmt.Printf("error: %s\n", e.Message())
	fmt.Println(indent(e.Span().Highlight([]rune(text))))
	//
	if len(e.Candidates()) > 0 {
		fmt.Printf("candidates: %s\n", strings.Join(e.Candidates(), ", "))
	}
	//
	os.Exit(4)
}

func indent(text string) string {
	return "  " + strings.ReplaceAll(text, "\n", "\n  ")
}
