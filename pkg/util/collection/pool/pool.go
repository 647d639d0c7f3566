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

// Pool provides an abstraction for referring to values by a small index value.
// The pool stores the actual data, and provides fast access via an index.
type Pool[K any, T any] interface {
	// Lookup a given value in the pool using an index.
	Get(K) T
	// Allocate value into pool, returning its index.
	Put(T) K
}

// Recycler represents a pool whose entries can be individually returned for
// reuse.  An index which has been freed must not be used again until it is
// handed out by a subsequent Put.
type Recycler[K any, T any] interface {
	Pool[K, T]
	// Return a given entry to the pool.
	Free(K)
}
