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
package source

import (
	"testing"

	"github.com/radioastro/telspec/pkg/util/assert"
)

func Test_Span_00(t *testing.T) {
	span := NewSpan(2, 4)
	assert.Equal(t, 2, span.Length())
	assert.Equal(t, "AA-BB\n  ^^", span.Highlight([]rune("AA-BB")))
}

func Test_Span_01(t *testing.T) {
	// Empty span at end of input
	span := NewSpan(5, 5)
	assert.Equal(t, "AA-BB\n     ^", span.Highlight([]rune("AA-BB")))
}

func Test_Span_02(t *testing.T) {
	span := NewSpan(3, 5).Join(NewSpan(0, 2))
	assert.Equal(t, NewSpan(0, 5), span)
}
