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
	"errors"
	"fmt"
	"strings"

	"github.com/radioastro/telspec/pkg/util/source"
)

var (
	// ErrInvalidFixedCount signals a fixed count (or reference length) outside
	// the range permitted by a locator's kind.
	ErrInvalidFixedCount = errors.New("invalid fixed count")
	// ErrSubarrayOutOfRange signals a sub-array index which does not exist.
	ErrSubarrayOutOfRange = errors.New("sub-array out of range")
	// ErrStationOutOfRange signals a station index which does not exist.
	ErrStationOutOfRange = errors.New("station out of range")
	// ErrAmbiguousName signals a station name matching more than one station.
	ErrAmbiguousName = errors.New("ambiguous station name")
	// ErrUnknownName signals a station name matching no station.
	ErrUnknownName = errors.New("unknown station name")
	// ErrTrailingInput signals unconsumed text after a complete locator.
	ErrTrailingInput = errors.New("unexpected trailing input")
	// ErrEncodeBufferTooShort signals that an encoded locator was truncated.
	ErrEncodeBufferTooShort = errors.New("encoding truncated")
	// ErrAllocationFailure signals that a rule arena is exhausted.
	ErrAllocationFailure = errors.New("allocation failure")
	// ErrNoMatch signals a locator whose fixed fields admit no valid
	// completion in the topology.
	ErrNoMatch = errors.New("no matching locator")
	// ErrInvalidOperation signals an iteration operation which does not apply
	// to a locator's kind.
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrWrongKind signals a locator of a kind not accepted by an operation.
	ErrWrongKind = errors.New("wrong locator kind")
)

// Error is a structured error which wraps one of the above error kinds,
// retaining the span of the original text where the error arose (if
// applicable) and, for ambiguous names, the full list of candidates.
type Error struct {
	kind error
	msg  string
	// Span of text being decoded where error arose.
	span source.Span
	// Candidate station names (for ambiguity errors)
	candidates []string
}

// NewError constructs an error of a given kind over a given span of text.
func NewError(kind error, span source.Span, format string, args ...any) *Error {
	return &Error{kind, fmt.Sprintf(format, args...), span, nil}
}

// Kind returns the sentinel error identifying the kind of this error.
func (p *Error) Kind() error {
	return p.kind
}

// Message returns the message to be reported.
func (p *Error) Message() string {
	return p.msg
}

// Span returns the span of the original text on which this error is reported.
func (p *Error) Span() source.Span {
	return p.span
}

// Candidates returns the names of every station matched by an ambiguous name.
func (p *Error) Candidates() []string {
	return p.candidates
}

// Shift returns a copy of this error whose span is offset by n characters.
// This is useful when a locator was decoded from the middle of some larger
// text.
func (p *Error) Shift(n int) *Error {
	span := source.NewSpan(p.span.Start()+n, p.span.End()+n)
	return &Error{p.kind, p.msg, span, p.candidates}
}

// Error implements the error interface.
func (p *Error) Error() string {
	if len(p.candidates) > 0 {
		return fmt.Sprintf("%s (candidates: %s)", p.msg, strings.Join(p.candidates, ", "))
	}
	//
	return p.msg
}

// Unwrap allows errors.Is to identify the kind of this error.
func (p *Error) Unwrap() error {
	return p.kind
}
