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
package pool

import (
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"
)

// NIL is the index used to signal the absence of an entry, for example the end
// of a chain of entries linked through an arena.
const NIL = uint32(math.MaxUint32)

// ARENA_INIT_CAPACITY determines the number of slots initially reserved by an
// arena.
const ARENA_INIT_CAPACITY = 16

// Arena is a slab of values addressed by stable uint32 indices.  Entries which
// are freed are threaded onto a free list and reused by later allocations, so
// both allocation and recycling are O(1).  An arena is *not* thread safe.
type Arena[T any] struct {
	slots []slot[T]
	// head of free list (or NIL)
	free uint32
	// number of live entries
	live uint
	// maximum number of slots (or 0 for unbounded)
	limit uint
}

type slot[T any] struct {
	value T
	// next free slot (only meaningful when not in use)
	next uint32
	used bool
}

var _ Recycler[uint32, int] = &Arena[int]{}

// NewArena constructs an empty arena.  A limit of zero means the arena can grow
// without bound, otherwise allocation fails once limit entries are live.
func NewArena[T any](limit uint) *Arena[T] {
	return &Arena[T]{
		slots: make([]slot[T], 0, ARENA_INIT_CAPACITY),
		free:  NIL,
		limit: limit,
	}
}

// Get implementation for the Pool interface.
func (p *Arena[T]) Get(index uint32) T {
	return p.slot(index).value
}

// Set replaces the value held at a given (live) index.
func (p *Arena[T]) Set(index uint32, value T) {
	p.slot(index).value = value
}

// Put implementation for the Pool interface.  This panics if the arena is
// exhausted, hence Alloc should be used for bounded arenas.
func (p *Arena[T]) Put(value T) uint32 {
	index, ok := p.Alloc(value)
	if !ok {
		panic(fmt.Sprintf("arena exhausted (limit %d)", p.limit))
	}
	//
	return index
}

// Alloc allocates a new entry holding the given value, reusing a previously
// freed slot if one exists.  This returns false if the arena is exhausted.
func (p *Arena[T]) Alloc(value T) (uint32, bool) {
	var index uint32
	//
	if p.free != NIL {
		// Recycle from free list
		index = p.free
		p.free = p.slots[index].next
	} else if p.limit != 0 && uint(len(p.slots)) >= p.limit {
		return NIL, false
	} else {
		index = uint32(len(p.slots))
		//
		if len(p.slots) == cap(p.slots) {
			log.Debugf("growing arena beyond %d slots", cap(p.slots))
		}
		//
		p.slots = append(p.slots, slot[T]{})
	}
	//
	p.slots[index] = slot[T]{value: value, next: NIL, used: true}
	p.live++
	//
	return index, true
}

// Free implementation for the Recycler interface.
func (p *Arena[T]) Free(index uint32) {
	var (
		empty T
		s     = p.slot(index)
	)
	// Clear value so it can be garbage collected
	s.value = empty
	s.used = false
	s.next = p.free
	p.free = index
	p.live--
}

// Size returns the number of live entries in this arena.
func (p *Arena[T]) Size() uint {
	return p.live
}

// Capacity returns the number of slots (live or free) held by this arena.
func (p *Arena[T]) Capacity() uint {
	return uint(len(p.slots))
}

func (p *Arena[T]) slot(index uint32) *slot[T] {
	if index >= uint32(len(p.slots)) || !p.slots[index].used {
		panic(fmt.Sprintf("invalid arena index %d", index))
	}
	//
	return &p.slots[index]
}
