/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kpchess/gofranky/fen"
	. "github.com/kpchess/gofranky/types"
)

// TestMate checks a one-move back rank mate is found: Ra1-a8 pins the
// black king between its own f7/g7/h7 pawns and the open back rank.
func TestMate(t *testing.T) {
	gs, err := fen.Parse("6k1/5ppp/8/8/8/8/8/R3K3 w - - 0 1")
	assert.NoError(t, err)

	s := NewSearch()
	result := s.Search(gs, 2)

	assert.Equal(t, "a1a8", result.BestMove.StringUci())
	assert.True(t, result.BestValue.IsCheckMateValue())
}

func TestNegamaxLeafUsesStaticEval(t *testing.T) {
	gs, err := fen.Parse(fen.StartFEN)
	assert.NoError(t, err)

	s := NewSearch()
	assert.EqualValues(t, s.evaluate(gs), s.search(gs, 0, 0, -ValueInf, ValueInf))
}
