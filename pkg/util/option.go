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
package util

// Option captures the presence (or absence) of a value, for example the result
// of looking up a baseline which may not exist.
type Option[T any] struct {
	// Indicates whether value present
	some bool
	// The value itself
	value T
}

// Some returns an option holding the given value.
func Some[T any](val T) Option[T] {
	return Option[T]{true, val}
}

// None returns an empty option.
func None[T any]() Option[T] {
	var empty T
	return Option[T]{false, empty}
}

// HasValue checks whether or not this option holds a value.
func (o Option[T]) HasValue() bool {
	return o.some
}

// IsEmpty checks whether or not this option is empty.
func (o Option[T]) IsEmpty() bool {
	return !o.some
}

// Unwrap returns the value held in this option, or panics if it is empty.
func (o Option[T]) Unwrap() T {
	if o.some {
		return o.value
	}
	//
	panic("cannot unwrap an empty option")
}

// UnwrapOr returns the value held in this option, or the given default when
// it is empty.
func (o Option[T]) UnwrapOr(def T) T {
	if o.some {
		return o.value
	}
	//
	return def
}
