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

func TestSearchReturnsLegalMoveFromStart(t *testing.T) {
	gs, err := fen.Parse(fen.StartFEN)
	assert.NoError(t, err)

	s := NewSearch()
	result := s.Search(gs, 2)

	assert.NotEqual(t, MoveNone, result.BestMove)
	assert.EqualValues(t, 2, result.SearchDepth)
	assert.True(t, result.Nodes > 0)
}

func TestSearchDetectsStalemate(t *testing.T) {
	gs, err := fen.Parse("k7/8/KQ6/8/8/8/8/8 b - - 0 1")
	assert.NoError(t, err)

	s := NewSearch()
	result := s.Search(gs, 1)

	assert.Equal(t, MoveNone, result.BestMove)
	assert.EqualValues(t, ValueDraw, result.BestValue)
}
