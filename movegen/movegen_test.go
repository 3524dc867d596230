/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kpchess/gofranky/attacks"
	"github.com/kpchess/gofranky/position"
	. "github.com/kpchess/gofranky/types"
)

func TestMain(m *testing.M) {
	attacks.Init()
	m.Run()
}

// startPosition builds the standard chess starting position directly
// from piece bitboards, the way a unit test that predates the fen
// package has to.
func startPosition() position.GameState {
	var pieces [ColorLength][PkLength]Bitboard
	pieces[White][Pawn] = Rank2_Bb
	pieces[White][Rook] = SqA1.Bitboard() | SqH1.Bitboard()
	pieces[White][Knight] = SqB1.Bitboard() | SqG1.Bitboard()
	pieces[White][Bishop] = SqC1.Bitboard() | SqF1.Bitboard()
	pieces[White][Queen] = SqD1.Bitboard()
	pieces[White][King] = SqE1.Bitboard()
	pieces[Black][Pawn] = Rank7_Bb
	pieces[Black][Rook] = SqA8.Bitboard() | SqH8.Bitboard()
	pieces[Black][Knight] = SqB8.Bitboard() | SqG8.Bitboard()
	pieces[Black][Bishop] = SqC8.Bitboard() | SqF8.Bitboard()
	pieces[Black][Queen] = SqD8.Bitboard()
	pieces[Black][King] = SqE8.Bitboard()
	return position.GameState{
		Pos:        position.NewPosition(pieces),
		Rights:     BoardRights{Castling: CastlingAny, EnPassant: SqNone},
		SideToMove: White,
	}
}

func TestGenerateStartingPositionCount(t *testing.T) {
	assert.Len(t, Generate(startPosition()), 20)
}

// TestPerftStartingPosition is spec.md §8's gold-standard perft table
// for the standard starting position.
func TestPerftStartingPosition(t *testing.T) {
	gs := startPosition()
	assert.EqualValues(t, 20, Count(gs, 1))
	assert.EqualValues(t, 400, Count(gs, 2))
	assert.EqualValues(t, 8902, Count(gs, 3))
}

// TestCheckmaskKingEscapeSquares is spec.md §8 scenario 1: from
// 8/8/5q2/8/8/2K5/8/8 w - - 0 1 the white king on c3, checked by the
// queen on f6 along the f6-c3 diagonal, has a fixed set of escape squares.
// A harmless black king is placed on h8 so KingUnsafeSquares has a
// legal king to query - the scenario's own FEN omits one since it only
// cares about the checkmask idea, but every reachable GameState in this
// engine carries exactly one king per side.
func TestCheckmaskKingEscapeSquares(t *testing.T) {
	var pieces [ColorLength][PkLength]Bitboard
	pieces[White][King] = SqC3.Bitboard()
	pieces[Black][King] = SqH8.Bitboard()
	pieces[Black][Queen] = SqF6.Bitboard()
	gs := position.GameState{
		Pos:        position.NewPosition(pieces),
		Rights:     BoardRights{EnPassant: SqNone},
		SideToMove: White,
	}

	assert.True(t, position.InCheck(gs.Pos, White))

	moves := Generate(gs)
	for _, m := range moves {
		assert.Equal(t, SqC3, m.From)
	}
	// c3 is attacked along the diagonal by the queen on f6; no move may
	// land on a square the queen still reaches.
	unsafe := position.KingUnsafeSquares(gs.Pos, White)
	for _, m := range moves {
		assert.False(t, unsafe.Has(m.To), "king move %s lands on an attacked square", m.String())
	}
}

// TestNoCheckersKingUnsafeEmpty is spec.md §8 scenario 4: from the
// starting position the king's unsafe squares are exactly empty.
func TestNoCheckersKingUnsafeEmpty(t *testing.T) {
	gs := startPosition()
	assert.Equal(t, BbZero, position.KingUnsafeSquares(gs.Pos, White))
	assert.Equal(t, BbZero, position.KingUnsafeSquares(gs.Pos, Black))
}

// TestCastlingRightsForfeiture is spec.md §8 scenario 2: from
// r3k2r/3N4/8/8/p7/8/8/R3K2R w KQkq - 0 1, moving the h1 rook clears
// only white's kingside right; capturing on a4 with the a1 rook clears
// only white's queenside right; moving the king clears both; a black
// king capture on d7 clears both of black's.
func TestCastlingRightsForfeiture(t *testing.T) {
	all := BoardRights{Castling: CastlingAny, EnPassant: SqNone}

	rookH1Move := NewQuiet(SqH1, SqG1, Rook)
	after := position.MakeRights(all, White, rookH1Move)
	assert.False(t, after.Castling.Has(CastlingWhiteOO))
	assert.True(t, after.Castling.Has(CastlingWhiteOOO))
	assert.True(t, after.Castling.Has(CastlingBlack))

	rookA1Capture := NewCapture(SqA1, SqA4, Pawn, PkNone)
	after = position.MakeRights(all, White, rookA1Capture)
	assert.False(t, after.Castling.Has(CastlingWhiteOOO))
	assert.True(t, after.Castling.Has(CastlingWhiteOO))

	kingMove := NewQuiet(SqE1, SqE2, King)
	after = position.MakeRights(all, White, kingMove)
	assert.False(t, after.Castling.Has(CastlingWhite))
	assert.True(t, after.Castling.Has(CastlingBlack))

	kingCapturesD7 := NewCapture(SqE8, SqD7, Knight, PkNone)
	after = position.MakeRights(all, Black, kingCapturesD7)
	assert.False(t, after.Castling.Has(CastlingBlack))
	assert.True(t, after.Castling.Has(CastlingWhite))
}

// TestEnPassantCapture is spec.md §8 scenario 3: from
// k7/5p2/K7/8/5Pp1/8/8/8 w - f3 0 1, black's g4xf3 en-passant capture
// removes the white pawn sitting on f4, one rank behind the capture
// target.
func TestEnPassantCapture(t *testing.T) {
	var pieces [ColorLength][PkLength]Bitboard
	pieces[Black][King] = SqA8.Bitboard()
	pieces[Black][Pawn] = SqF7.Bitboard() | SqG4.Bitboard()
	pieces[White][King] = SqA6.Bitboard()
	pieces[White][Pawn] = SqF4.Bitboard()
	gs := position.GameState{
		Pos:        position.NewPosition(pieces),
		Rights:     BoardRights{EnPassant: SqF3},
		SideToMove: Black,
	}

	moves := Generate(gs)
	var ep Move
	found := false
	for _, m := range moves {
		if m.Kind == EnPassant {
			ep = m
			found = true
		}
	}
	assert.True(t, found, "expected an en-passant move in %s", moves.String())
	assert.Equal(t, SqG4, ep.From)
	assert.Equal(t, SqF3, ep.To)

	next := position.MakePosition(gs.Pos, Black, ep)
	assert.False(t, next.Pieces[White][Pawn].Has(SqF4))
	assert.True(t, next.Pieces[Black][Pawn].Has(SqF3))
}

// TestEnPassantBlocksSliderCheck covers an en-passant capture that
// resolves check not by capturing the checker but by interposing on
// its own landing square: white king h6 is checked along rank 6 by
// the rook on a6, and exd6 e.p., landing on d6 between them, is one of
// the moves that block it (the push e5-e6 is another).
func TestEnPassantBlocksSliderCheck(t *testing.T) {
	var pieces [ColorLength][PkLength]Bitboard
	pieces[Black][King] = SqE8.Bitboard()
	pieces[Black][Rook] = SqA6.Bitboard()
	pieces[Black][Pawn] = SqD5.Bitboard()
	pieces[White][King] = SqH6.Bitboard()
	pieces[White][Pawn] = SqE5.Bitboard()
	gs := position.GameState{
		Pos:        position.NewPosition(pieces),
		Rights:     BoardRights{EnPassant: SqD6},
		SideToMove: White,
	}

	moves := Generate(gs)
	found := false
	for _, m := range moves {
		if m.Kind == EnPassant {
			assert.Equal(t, SqE5, m.From)
			assert.Equal(t, SqD6, m.To)
			found = true
		}
	}
	assert.True(t, found, "expected exd6 e.p. to block the rank-6 check in %s", moves.String())
}

// TestCastleThroughAttackedSquareIsIllegal is spec.md §8 scenario 5:
// any attempt to castle through an attacked square must not appear in
// the legal move list.
func TestCastleThroughAttackedSquareIsIllegal(t *testing.T) {
	var pieces [ColorLength][PkLength]Bitboard
	pieces[White][King] = SqE1.Bitboard()
	pieces[White][Rook] = SqH1.Bitboard()
	pieces[Black][King] = SqA8.Bitboard()
	pieces[Black][Rook] = SqF8.Bitboard() // attacks f1, on the king's crossing square
	gs := position.GameState{
		Pos:        position.NewPosition(pieces),
		Rights:     BoardRights{Castling: CastlingWhiteOO, EnPassant: SqNone},
		SideToMove: White,
	}

	for _, m := range Generate(gs) {
		assert.False(t, m.Kind == Castle, "castling should be illegal through an attacked square")
	}
}

// TestPinnedBishopCannotLeaveRay checks that a bishop pinned on the
// king's diagonal has no moves off that diagonal.
func TestPinnedBishopCannotLeaveRay(t *testing.T) {
	var pieces [ColorLength][PkLength]Bitboard
	pieces[White][King] = SqE1.Bitboard()
	pieces[White][Bishop] = SqD2.Bitboard()
	pieces[Black][King] = SqA8.Bitboard()
	pieces[Black][Bishop] = SqB4.Bitboard()
	gs := position.GameState{
		Pos:        position.NewPosition(pieces),
		Rights:     BoardRights{EnPassant: SqNone},
		SideToMove: White,
	}

	for _, m := range Generate(gs) {
		if m.From == SqD2 {
			assert.Contains(t, []Square{SqC3, SqB4}, m.To)
		}
	}
}

// TestDoubleCheckOnlyKingMoves checks that under double check every
// generated move is a king move.
func TestDoubleCheckOnlyKingMoves(t *testing.T) {
	var pieces [ColorLength][PkLength]Bitboard
	pieces[White][King] = SqE1.Bitboard()
	pieces[Black][King] = SqA8.Bitboard()
	pieces[Black][Rook] = SqE8.Bitboard()
	pieces[Black][Knight] = SqD3.Bitboard()
	gs := position.GameState{
		Pos:        position.NewPosition(pieces),
		Rights:     BoardRights{EnPassant: SqNone},
		SideToMove: White,
	}

	assert.Equal(t, 2, func() int {
		_, n := computeCheckMask(gs.Pos, White, SqE1)
		return n
	}())
	for _, m := range Generate(gs) {
		assert.Equal(t, SqE1, m.From)
	}
}
