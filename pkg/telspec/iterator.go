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
	"github.com/radioastro/telspec/pkg/obs"
	"github.com/radioastro/telspec/pkg/util/source"
	log "github.com/sirupsen/logrus"
)

// Op identifies an iteration operation.
type Op uint8

// FIND_FIRST re-derives the starting value of every free field and searches
// for the first valid locator (which may be the current one).
const FIND_FIRST Op = 0

// FIND_NEXT advances the innermost free field and searches for the next valid
// locator, excluding the current one.
const FIND_NEXT Op = 1

// SKIP_SUBARRAY frees every field and moves on to the next sub-array.
const SKIP_SUBARRAY Op = 2

// SKIP_STATION_A frees the first station (and all after it) and moves on to
// the next value of the first station.  This applies only to BASELINE and
// TRIANGLE locators.
const SKIP_STATION_A Op = 3

// SKIP_STATION_B frees the second station (and all after it) and moves on to
// the next value of the second station.  This applies only to TRIANGLE
// locators.
const SKIP_STATION_B Op = 4

// Direction determines whether iteration proceeds towards increasing or
// decreasing indices.
type Direction int

// FORWARD iterates from lower to higher indices.
const FORWARD Direction = 1

// BACKWARD iterates from higher to lower indices.
const BACKWARD Direction = -1

// Options configures an iteration.
type Options struct {
	// RefLength is the number of leading fields forming the "reference" prefix
	// of a locator (e.g. 2 for a sub-array plus reference station).
	RefLength int
	// AllRef exempts the field immediately following the reference prefix
	// from the ascending-order rule.  This allows every station paired with a
	// reference station to be enumerated, irrespective of index order.
	AllRef bool
	// FixRef holds the reference prefix fixed, even when the locator itself
	// fixes fewer fields.
	FixRef bool
	// Report requests that failures be logged.
	Report bool
}

// Iterate applies a given operation to a locator.  On success, the locator is
// updated in place and true is returned.  If the search is exhausted in the
// given direction then false is returned (without an error), and the locator
// is left unchanged.  An error is returned only for malformed arguments, in
// which case the locator is also left unchanged.
//
// Free station fields must appear in strictly ascending index order (unless
// exempted by AllRef) to prevent the same set of stations being reported more
// than once.  Every pair of stations in a BASELINE or TRIANGLE locator must be
// connected by a baseline.
func Iterate(topo obs.Topology, op Op, dir Direction, opts Options, loc *Locator) (bool, error) {
	found, err := iterate(topo, op, dir, opts, loc)
	//
	if opts.Report {
		if err != nil {
			log.Warnf("invalid %s specification: %s", loc.Kind, err)
		} else if !found {
			log.Warnf("no more %ss in this direction", loc.Kind)
		}
	}
	//
	return found, err
}

func iterate(topo obs.Topology, op Op, dir Direction, opts Options, loc *Locator) (bool, error) {
	var (
		nfields = loc.Kind.Fields()
		fixed   = loc.Fixed
	)
	// Sanity check arguments
	if !loc.Kind.Valid() {
		return false, NewError(ErrWrongKind, source.Span{}, "unknown locator kind %d", loc.Kind)
	} else if dir != FORWARD && dir != BACKWARD {
		return false, NewError(ErrInvalidOperation, source.Span{}, "invalid direction %d", dir)
	} else if fixed < 0 || fixed > nfields {
		return false, NewError(ErrInvalidFixedCount, source.Span{}, "fixed count %d out of range (0..%d)",
			fixed, nfields)
	} else if opts.RefLength < 0 || opts.RefLength > nfields {
		return false, NewError(ErrInvalidFixedCount, source.Span{}, "reference length %d out of range (0..%d)",
			opts.RefLength, nfields)
	} else if opts.FixRef {
		fixed = max(fixed, opts.RefLength)
	}
	// Determine which field (if any) is skipped.
	skip, err := skippedField(op, loc.Kind)
	if err != nil {
		return false, err
	} else if skip >= 0 {
		fixed = min(fixed, skip)
	}
	// Work on a copy so failures leave the locator untouched.
	var s = searcher{topo, *loc, nfields, fixed, dir, opts}
	// Validate those fields which the operation will not re-derive.
	var checked = nfields
	//
	switch {
	case op == FIND_FIRST:
		checked = fixed
	case skip >= 0:
		checked = skip + 1
	}
	//
	if err := s.checkRange(checked); err != nil {
		return false, err
	} else if topo.SubarrayCount() == 0 || !s.validPrefix() {
		return false, nil
	}
	//
	var found bool
	//
	switch {
	case op == FIND_FIRST:
		found = s.findFirst()
	case op == FIND_NEXT:
		found = s.findNext()
	default:
		found = s.skip(skip)
	}
	//
	if found {
		s.loc.Fixed = fixedAfter(skip, loc.Fixed)
		s.resolve()
		*loc = s.loc
	}
	//
	return found, nil
}

// Determine the field skipped by a given operation, or -1 if the operation
// does not skip.
func skippedField(op Op, kind Kind) (int, error) {
	switch op {
	case FIND_FIRST, FIND_NEXT:
		return -1, nil
	case SKIP_SUBARRAY:
		return 0, nil
	case SKIP_STATION_A:
		if kind == BASELINE || kind == TRIANGLE {
			return 1, nil
		}
	case SKIP_STATION_B:
		if kind == TRIANGLE {
			return 2, nil
		}
	default:
		return -1, NewError(ErrInvalidOperation, source.Span{}, "unknown operation %d", op)
	}
	//
	return -1, NewError(ErrInvalidOperation, source.Span{}, "cannot skip station of %s", kind)
}

// Skipping a field clears the fixedness of that field and all after it.
func fixedAfter(skip int, fixed int) int {
	if skip >= 0 {
		return min(skip, fixed)
	}
	//
	return fixed
}

// searcher captures the state of a single search.  Fields are numbered from
// 0 (the sub-array) to nfields-1 (the last station).
type searcher struct {
	topo    obs.Topology
	loc     Locator
	nfields int
	// fields before this are held fixed
	fixed int
	dir   Direction
	opts  Options
}

// Check the first n fields are within the bounds of the topology.
func (p *searcher) checkRange(n int) error {
	if n == 0 {
		return nil
	} else if sub := p.loc.Sub; sub < 0 || sub >= p.topo.SubarrayCount() {
		return NewError(ErrSubarrayOutOfRange, source.Span{}, "sub-array %d out of range (%d sub-arrays)",
			sub+1, p.topo.SubarrayCount())
	}
	//
	for i := 1; i < n; i++ {
		if v := p.loc.field(i); v < 0 || v >= p.limit(i) {
			return NewError(ErrStationOutOfRange, source.Span{}, "station %d out of range in sub-array %d",
				v+1, p.loc.Sub+1)
		}
	}
	//
	return nil
}

// Check every fixed field is consistent with the fields before it.
func (p *searcher) validPrefix() bool {
	for i := range p.fixed {
		if !p.consistent(i) {
			return false
		}
	}
	//
	return true
}

func (p *searcher) findFirst() bool {
	if p.fixed == p.nfields {
		return true
	}
	//
	p.loc.setField(p.fixed, p.first(p.fixed))
	//
	return p.search(p.fixed)
}

func (p *searcher) findNext() bool {
	if p.fixed == p.nfields {
		return false
	}
	// Resume from the first free field which is not valid (if any), since the
	// current locator may not itself have been produced by a search.
	for i := p.fixed; i < p.nfields-1; i++ {
		if !p.inRange(i) || !p.consistent(i) {
			return p.search(i)
		}
	}
	//
	p.advance(p.nfields - 1)
	//
	return p.search(p.nfields - 1)
}

func (p *searcher) skip(field int) bool {
	p.advance(field)
	return p.search(field)
}

// Search for a valid tuple, starting from a given field.  All fields before
// this are assumed valid, whilst this field holds a candidate value which may
// be out of range.  Whenever a field is exhausted, the enclosing free field
// is advanced and its inner fields are re-derived from their starting values.
func (p *searcher) search(i int) bool {
	for i >= p.fixed {
		p.clamp(i)
		//
		switch {
		case !p.inRange(i):
			// This field is exhausted, so back up.
			i--
			if i < p.fixed {
				return false
			}
			//
			p.advance(i)
		case !p.consistent(i):
			p.advance(i)
		case i == p.nfields-1:
			return true
		default:
			i++
			p.loc.setField(i, p.first(i))
		}
	}
	//
	return false
}

func (p *searcher) advance(i int) {
	p.loc.setField(i, p.loc.field(i)+int(p.dir))
}

// Determine the exclusive upper bound of a given field.
func (p *searcher) limit(i int) int {
	if i == 0 {
		return p.topo.SubarrayCount()
	}
	//
	return p.topo.StationCount(p.loc.Sub)
}

// Determine whether a given field must be strictly greater than the field
// before it.  This applies only to free stations after the first, except for
// the field immediately following the reference prefix when AllRef is given.
func (p *searcher) ascending(i int) bool {
	if i < 2 || i < p.fixed {
		return false
	}
	//
	return !p.opts.AllRef || i != p.opts.RefLength
}

// Determine the starting value of a given field in the search direction.
func (p *searcher) first(i int) int {
	if p.dir == BACKWARD {
		return p.limit(i) - 1
	} else if p.ascending(i) {
		return p.loc.field(i-1) + 1
	}
	//
	return 0
}

// Bring a field which lies before the start of its range (in the search
// direction) up to the start of that range.
func (p *searcher) clamp(i int) {
	var v = p.loc.field(i)
	//
	if p.dir == BACKWARD {
		p.loc.setField(i, min(v, p.limit(i)-1))
	} else if p.ascending(i) {
		p.loc.setField(i, max(v, p.loc.field(i-1)+1))
	} else {
		p.loc.setField(i, max(v, 0))
	}
}

func (p *searcher) inRange(i int) bool {
	var v = p.loc.field(i)
	//
	if v < 0 || v >= p.limit(i) {
		return false
	}
	//
	return !p.ascending(i) || v > p.loc.field(i-1)
}

// Check that a given station is connected by a baseline to every station
// before it.
func (p *searcher) consistent(i int) bool {
	for j := 1; j < i; j++ {
		if p.topo.FindBaseline(p.loc.Sub, p.loc.field(j), p.loc.field(i)).IsEmpty() {
			return false
		}
	}
	//
	return true
}

// Resolve the baselines of a complete locator.
func (p *searcher) resolve() {
	var (
		loc = &p.loc
		s   = loc.Stations
	)
	//
	switch loc.Kind {
	case BASELINE:
		loc.Baseline = p.topo.FindBaseline(loc.Sub, s[0], s[1]).Unwrap()
	case TRIANGLE:
		loc.Legs[0] = p.leg(s[0], s[1])
		loc.Legs[1] = p.leg(s[1], s[2])
		loc.Legs[2] = p.leg(s[2], s[0])
	}
}

func (p *searcher) leg(a int, b int) Leg {
	var (
		index = p.topo.FindBaseline(p.loc.Sub, a, b).Unwrap()
		x, _  = p.topo.BaselineStations(p.loc.Sub, index)
	)
	//
	if x == a {
		return Leg{index, 1}
	}
	//
	return Leg{index, -1}
}
