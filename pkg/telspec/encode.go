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
	"slices"
	"strings"

	"github.com/radioastro/telspec/pkg/obs"
	"github.com/radioastro/telspec/pkg/util/source"
)

// Encode a locator as text which Decode will accept, such as "2:AA-BB".  Only
// the fixed fields of the locator are written, unless fixRef is given in which
// case exactly refLength fields are written.  A locator with no fields written
// is encoded as "*".  If maxChars is positive and the encoding is longer than
// this, then the truncated encoding is returned along with an
// ErrEncodeBufferTooShort error.
func Encode(topo obs.Topology, loc Locator, refLength int, fixRef bool, maxChars int) (string, error) {
	var (
		count   = loc.Fixed
		nfields = loc.Kind.Fields()
		builder strings.Builder
	)
	//
	if fixRef {
		count = refLength
	}
	//
	if !loc.Kind.Valid() {
		return "", NewError(ErrWrongKind, source.Span{}, "unknown locator kind %d", loc.Kind)
	} else if count < 0 || count > nfields {
		return "", NewError(ErrInvalidFixedCount, source.Span{}, "field count %d out of range (0..%d)", count, nfields)
	} else if count == 0 {
		return truncate("*", maxChars)
	} else if loc.Sub < 0 || loc.Sub >= topo.SubarrayCount() {
		return "", NewError(ErrSubarrayOutOfRange, source.Span{}, "sub-array %d out of range (1..%d)",
			loc.Sub+1, topo.SubarrayCount())
	}
	//
	builder.WriteString(fmt.Sprintf("%d:", loc.Sub+1))
	//
	for i, s := range loc.StationList()[:count-1] {
		if s < 0 || s >= topo.StationCount(loc.Sub) {
			return "", NewError(ErrStationOutOfRange, source.Span{}, "station %d out of range in sub-array %d",
				s+1, loc.Sub+1)
		} else if i > 0 {
			builder.WriteString("-")
		}
		//
		builder.WriteString(escape(topo.StationName(loc.Sub, s)))
	}
	//
	return truncate(builder.String(), maxChars)
}

func truncate(text string, maxChars int) (string, error) {
	var runes = []rune(text)
	//
	if maxChars > 0 && len(runes) > maxChars {
		return string(runes[:maxChars]), NewError(ErrEncodeBufferTooShort, source.NewSpan(maxChars, len(runes)),
			"encoding \"%s\" exceeds %d characters", text, maxChars)
	}
	//
	return text, nil
}

func escape(name string) string {
	var builder strings.Builder
	//
	for _, c := range name {
		if slices.Contains(RESERVED, c) {
			builder.WriteRune(ESCAPE)
		}
		//
		builder.WriteRune(c)
	}
	//
	return builder.String()
}
