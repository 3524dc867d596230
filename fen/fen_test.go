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

package fen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/kpchess/gofranky/types"
)

func TestParseStartingPosition(t *testing.T) {
	gs, err := Parse(StartFEN)
	assert.NoError(t, err)
	assert.Equal(t, White, gs.SideToMove)
	assert.Equal(t, CastlingAny, gs.Rights.Castling)
	assert.Equal(t, SqNone, gs.Rights.EnPassant)
	assert.Equal(t, 1, gs.FullMoveNumber)
	assert.True(t, gs.Pos.Pieces[White][King].Has(SqE1))
	assert.True(t, gs.Pos.Pieces[Black][Queen].Has(SqD8))
	assert.Equal(t, 16, gs.Pos.Pieces[White][Pawn].PopCount()+gs.Pos.Pieces[Black][Pawn].PopCount())
}

func TestParseKiwipete(t *testing.T) {
	gs, err := Parse("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, White, gs.SideToMove)
	assert.Equal(t, CastlingAny, gs.Rights.Castling)
	assert.True(t, gs.Pos.Pieces[White][Knight].Has(SqE5))
	assert.True(t, gs.Pos.Pieces[Black][Bishop].Has(SqA6))
	assert.True(t, gs.Pos.IsValid())
}

func TestParseEnPassantField(t *testing.T) {
	gs, err := Parse("k7/5p2/K7/8/5Pp1/8/8/8 w - f3 0 1")
	assert.NoError(t, err)
	assert.Equal(t, SqF3, gs.Rights.EnPassant)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse("not-a-fen")
	assert.Error(t, err)

	_, err = Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1")
	assert.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	gs, err := Parse(StartFEN)
	assert.NoError(t, err)
	assert.Equal(t, StartFEN, String(gs))
}
