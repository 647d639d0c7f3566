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

import "fmt"

// Kind identifies the shape of a locator, which determines how many station
// indices it carries.
type Kind uint8

// SUBARRAY locates a sub-array.
const SUBARRAY Kind = 0

// STATION locates a single station within a sub-array.
const STATION Kind = 1

// BASELINE locates a pair of stations within a sub-array.
const BASELINE Kind = 2

// TRIANGLE locates a closure triangle (three mutually baselined stations)
// within a sub-array.
const TRIANGLE Kind = 3

// Stations returns the number of station indices carried by a locator of this
// kind.
func (k Kind) Stations() int {
	return int(k)
}

// Fields returns the total number of fields (sub-array plus stations) for
// this kind.  This is also the maximum fixed count.
func (k Kind) Fields() int {
	return int(k) + 1
}

// Valid checks whether this is a known kind.
func (k Kind) Valid() bool {
	return k <= TRIANGLE
}

func (k Kind) String() string {
	switch k {
	case SUBARRAY:
		return "subarray"
	case STATION:
		return "station"
	case BASELINE:
		return "baseline"
	case TRIANGLE:
		return "triangle"
	}
	//
	return fmt.Sprintf("kind(%d)", k)
}

// ParseKind converts a kind name (as returned by String) into a kind.
func ParseKind(name string) (Kind, error) {
	for k := SUBARRAY; k <= TRIANGLE; k++ {
		if k.String() == name {
			return k, nil
		}
	}
	//
	return 0, fmt.Errorf("unknown locator kind \"%s\"", name)
}
