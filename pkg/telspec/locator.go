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
	"fmt"
	"strings"

	"github.com/radioastro/telspec/pkg/util/source"
)

// Leg describes one baseline of a closure triangle.
type Leg struct {
	// Baseline index of this leg within the triangle's sub-array.
	Baseline int
	// Sign is +1 if the baseline's natural station order matches the order in
	// which the triangle traverses it, or -1 otherwise.
	Sign int
}

// Locator identifies a sub-array, station, baseline or closure triangle within
// an observation.  Only the first Fixed fields (counting the sub-array as the
// first field, followed by the stations in order) were explicitly given.  The
// remaining fields are free to be searched over by Iterate.
type Locator struct {
	Kind Kind
	// Number of leading fields which are held fixed.
	Fixed int
	// Sub-array index.
	Sub int
	// Station indices (only the first Kind.Stations() are meaningful).
	Stations [3]int
	// Resolved baseline for BASELINE locators (or -1 if unresolved).
	Baseline int
	// Resolved legs (a-b, b-c, c-a) for TRIANGLE locators.
	Legs [3]Leg
}

// NewLocator constructs a default locator of a given kind positioned at the
// start of a given sub-array, with no fields fixed.  The kind must be valid,
// otherwise this panics.  Use New when the kind is not known to be valid.
func NewLocator(kind Kind, sub int) Locator {
	if !kind.Valid() {
		panic(fmt.Sprintf("invalid locator kind %d", kind))
	}
	//
	return Locator{Kind: kind, Sub: sub, Baseline: -1}
}

// New constructs a locator of a given kind where the first fixed fields are
// given explicitly.  For example, New(BASELINE, 2, 0, 3) locates any baseline
// of station 3 in sub-array 0.  Only range checks which don't require the
// topology are performed here.
func New(kind Kind, fixed int, sub int, stations ...int) (Locator, error) {
	if !kind.Valid() {
		return Locator{Kind: kind, Sub: sub, Baseline: -1}, NewError(ErrWrongKind, source.Span{},
			"unknown locator kind %d", kind)
	}
	//
	var loc = NewLocator(kind, sub)
	//
	if len(stations) > kind.Stations() {
		return loc, NewError(ErrStationOutOfRange, source.Span{}, "too many stations for %s", kind)
	} else if sub < 0 {
		return loc, NewError(ErrSubarrayOutOfRange, source.Span{}, "negative sub-array index %d", sub)
	}
	//
	for i, s := range stations {
		if s < 0 {
			return loc, NewError(ErrStationOutOfRange, source.Span{}, "negative station index %d", s)
		}
		//
		loc.Stations[i] = s
	}
	//
	return loc.WithFixed(fixed)
}

// WithFixed returns a copy of this locator with a given number of leading
// fields held fixed.
func (p Locator) WithFixed(n int) (Locator, error) {
	if n < 0 || n > p.Kind.Fields() {
		return p, NewError(ErrInvalidFixedCount, source.Span{}, "fixed count %d out of range for %s (0..%d)",
			n, p.Kind, p.Kind.Fields())
	}
	//
	p.Fixed = n
	//
	return p, nil
}

// StationList returns the station indices carried by this locator.
func (p Locator) StationList() []int {
	return p.Stations[:p.Kind.Stations()]
}

// field returns the ith field of this locator, where field 0 is the sub-array.
func (p *Locator) field(i int) int {
	if i == 0 {
		return p.Sub
	}
	//
	return p.Stations[i-1]
}

func (p *Locator) setField(i int, val int) {
	if i == 0 {
		p.Sub = val
	} else {
		p.Stations[i-1] = val
	}
}

// Equal determines whether two locators identify the same fields with the
// same fixed count.
func (p Locator) Equal(other Locator) bool {
	if p.Kind != other.Kind || p.Fixed != other.Fixed {
		return false
	}
	//
	for i := range p.Kind.Fields() {
		if p.field(i) != other.field(i) {
			return false
		}
	}
	//
	switch p.Kind {
	case BASELINE:
		return p.Baseline == other.Baseline
	case TRIANGLE:
		return p.Legs == other.Legs
	}
	//
	return true
}

func (p Locator) String() string {
	var builder strings.Builder
	//
	builder.WriteString(fmt.Sprintf("%s[%d/%d|%d", p.Kind, p.Fixed, p.Kind.Fields(), p.Sub))
	//
	for _, s := range p.StationList() {
		builder.WriteString(fmt.Sprintf(",%d", s))
	}
	//
	builder.WriteString("]")
	//
	return builder.String()
}
