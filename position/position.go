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

// Package position holds the immutable board representation and the
// make-move transition: twelve piece bitboards plus the three derived
// union boards, and the pure function that steps a GameState forward
// by one move. Nothing here mutates its receiver - every Make* call
// returns a new value and the caller's own call stack is the undo
// stack.
package position

import (
	"github.com/kpchess/gofranky/assert"
	"github.com/kpchess/gofranky/attacks"
	. "github.com/kpchess/gofranky/types"
)

// Position is the twelve-bitboard board state plus its three derived
// union boards. The zero value is not a legal position - build one via
// NewPosition or the fen package.
type Position struct {
	Pieces   [ColorLength][PkLength]Bitboard
	White    Bitboard
	Black    Bitboard
	Occupied Bitboard
}

// NewPosition derives White/Black/Occupied from the given per-color,
// per-kind piece bitboards.
func NewPosition(pieces [ColorLength][PkLength]Bitboard) Position {
	p := Position{Pieces: pieces}
	p.deriveAggregates()
	return p
}

func unionOf(bbs [PkLength]Bitboard) Bitboard {
	var u Bitboard
	for pk := King; pk < PkLength; pk++ {
		u |= bbs[pk]
	}
	return u
}

func (p *Position) deriveAggregates() {
	p.White = unionOf(p.Pieces[White])
	p.Black = unionOf(p.Pieces[Black])
	p.Occupied = p.White | p.Black
}

// Occupancy returns the union bitboard of one side's pieces.
func (p Position) Occupancy(c Color) Bitboard {
	if c == White {
		return p.White
	}
	return p.Black
}

// PieceOn reports the color and kind of the piece on sq, and whether
// one is there at all.
func (p Position) PieceOn(sq Square) (Color, PieceKind, bool) {
	b := sq.Bitboard()
	if p.Occupied&b == 0 {
		return White, PkNone, false
	}
	c := White
	if p.Black&b != 0 {
		c = Black
	}
	for pk := King; pk < PkLength; pk++ {
		if p.Pieces[c][pk]&b != 0 {
			return c, pk, true
		}
	}
	return White, PkNone, false
}

// KingSquare returns the square of c's king.
func (p Position) KingSquare(c Color) Square {
	return p.Pieces[c][King].Lsb()
}

// IsValid checks the §3 position invariant: the twelve piece bitboards
// are pairwise disjoint, their union is Occupied, and each side has
// exactly one king. Used only behind assert.DEBUG.
func (p Position) IsValid() bool {
	var seen Bitboard
	for c := White; c < ColorLength; c++ {
		if p.Pieces[c][King].PopCount() != 1 {
			return false
		}
		for pk := King; pk < PkLength; pk++ {
			bb := p.Pieces[c][pk]
			if bb&seen != 0 {
				return false
			}
			seen |= bb
		}
	}
	return seen == p.Occupied && p.White&p.Black == 0 && p.White|p.Black == p.Occupied
}

// IsAttacked reports whether sq is attacked by color by, given board
// occupancy occ. occ is passed explicitly (rather than read from p) so
// king-safety checks can query it with the moving side's own king
// removed from the board - see KingUnsafeSquares.
func IsAttacked(p Position, sq Square, by Color, occ Bitboard) bool {
	if attacks.Pawn(by.Flip(), sq)&p.Pieces[by][Pawn] != 0 {
		return true
	}
	if attacks.Knight(sq)&p.Pieces[by][Knight] != 0 {
		return true
	}
	if attacks.King(sq)&p.Pieces[by][King] != 0 {
		return true
	}
	if attacks.Bishop(sq, occ)&(p.Pieces[by][Bishop]|p.Pieces[by][Queen]) != 0 {
		return true
	}
	if attacks.Rook(sq, occ)&(p.Pieces[by][Rook]|p.Pieces[by][Queen]) != 0 {
		return true
	}
	return false
}

// InCheck reports whether us's king is currently attacked.
func InCheck(p Position, us Color) bool {
	return IsAttacked(p, p.KingSquare(us), us.Flip(), p.Occupied)
}

// KingUnsafeSquares returns every square the opposing side attacks,
// computed with us's king removed from the occupancy so the king
// cannot "hide behind itself" on a ray it currently blocks. Spec.md
// §4.D.
func KingUnsafeSquares(p Position, us Color) Bitboard {
	them := us.Flip()
	occWithoutKing := p.Occupied &^ p.Pieces[us][King]

	var unsafe Bitboard
	unsafe |= attacks.King(p.KingSquare(them))

	knights := p.Pieces[them][Knight]
	for knights != BbZero {
		unsafe |= attacks.Knight(knights.PopLsb())
	}
	pawns := p.Pieces[them][Pawn]
	for pawns != BbZero {
		unsafe |= attacks.Pawn(them, pawns.PopLsb())
	}
	bishops := p.Pieces[them][Bishop] | p.Pieces[them][Queen]
	for bishops != BbZero {
		unsafe |= attacks.Bishop(bishops.PopLsb(), occWithoutKing)
	}
	rooks := p.Pieces[them][Rook] | p.Pieces[them][Queen]
	for rooks != BbZero {
		unsafe |= attacks.Rook(rooks.PopLsb(), occWithoutKing)
	}
	return unsafe
}

// MakePosition returns the Position that results from playing move m
// by color us. The mover's own kind is read off the board at m.From
// for Capture moves, since a Capture's Piece field carries the
// *captured* kind (see types.Move); every other move kind already
// carries or implies its own mover kind.
func MakePosition(p Position, us Color, m Move) Position {
	them := us.Flip()
	next := p

	switch m.Kind {
	case Quiet:
		mask := m.From.Bitboard() | m.To.Bitboard()
		next.Pieces[us][m.Piece] ^= mask

	case Capture:
		_, moverKind, ok := p.PieceOn(m.From)
		if assert.DEBUG {
			assert.Assert(ok, "MakePosition: capture move but no piece on %s", m.From.String())
		}
		fromBit := m.From.Bitboard()
		toBit := m.To.Bitboard()
		next.Pieces[us][moverKind] &^= fromBit
		if m.IsPromotion() {
			next.Pieces[us][m.Promo] |= toBit
		} else {
			next.Pieces[us][moverKind] |= toBit
		}
		for pk := King; pk < PkLength; pk++ {
			next.Pieces[them][pk] &^= toBit
		}

	case DoublePush:
		mask := m.From.Bitboard() | m.To.Bitboard()
		next.Pieces[us][Pawn] ^= mask

	case EnPassant:
		mask := m.From.Bitboard() | m.To.Bitboard()
		next.Pieces[us][Pawn] ^= mask
		capturedSq := SquareOf(m.To.FileOf(), m.From.RankOf())
		next.Pieces[them][Pawn] &^= capturedSq.Bitboard()

	case Castle:
		next.Pieces[us][King] ^= m.Swap.King
		next.Pieces[us][Rook] ^= m.Swap.Rook

	case Promotion:
		next.Pieces[us][Pawn] &^= m.From.Bitboard()
		next.Pieces[us][m.Promo] |= m.To.Bitboard()
	}

	next.deriveAggregates()
	if assert.DEBUG {
		assert.Assert(next.IsValid(), "MakePosition: invariant broken after %s", m.String())
	}
	return next
}

// MakeRights returns the BoardRights after playing move m by color us,
// per spec.md §4.E: en-passant resets to none unless m is a double
// push, and castling rights are forfeited by a king move or by either
// side's rook square being touched as a from or to square.
func MakeRights(rights BoardRights, us Color, m Move) BoardRights {
	next := BoardRights{Castling: rights.Castling, EnPassant: SqNone}

	if m.Kind == DoublePush {
		next.EnPassant = Square((int(m.From) + int(m.To)) / 2)
	}

	// A king move (quiet, capture or castle) vacates the king's home
	// square, so testing m.From against it catches all three kinds
	// uniformly - m.Piece carries the captured piece's kind on a
	// Capture move, not the mover's, so it can't be used here.
	if m.From == KingHomeOf(us) {
		next.Castling.Remove(colorCastling(us))
	}

	forfeits := func(sq Square) {
		if sq == KingsideRookOf(White) {
			next.Castling.Remove(KingsideOf(White))
		} else if sq == QueensideRookOf(White) {
			next.Castling.Remove(QueensideOf(White))
		} else if sq == KingsideRookOf(Black) {
			next.Castling.Remove(KingsideOf(Black))
		} else if sq == QueensideRookOf(Black) {
			next.Castling.Remove(QueensideOf(Black))
		}
	}
	forfeits(m.From)
	forfeits(m.To)

	return next
}

func colorCastling(c Color) CastlingRights {
	if c == White {
		return CastlingWhite
	}
	return CastlingBlack
}

// GameState bundles a Position with its BoardRights, side to move and
// the move-count bookkeeping a UCI front-end needs to echo back -
// spec.md's closing note names Position+BoardRights as the pair
// make_move threads through; SideToMove/HalfMoveClock/FullMoveNumber
// are the ambient fields a full engine carries alongside it.
type GameState struct {
	Pos            Position
	Rights         BoardRights
	SideToMove     Color
	HalfMoveClock  int
	FullMoveNumber int
}

// MakeMove plays m on gs and returns the resulting GameState: it
// composes MakePosition and MakeRights, flips the side to move, and
// updates the half-move clock (reset on a pawn move or capture,
// otherwise incremented) and full-move number (incremented after
// Black's move).
func MakeMove(gs GameState, m Move) GameState {
	next := GameState{
		Pos:            MakePosition(gs.Pos, gs.SideToMove, m),
		Rights:         MakeRights(gs.Rights, gs.SideToMove, m),
		SideToMove:     gs.SideToMove.Flip(),
		HalfMoveClock:  gs.HalfMoveClock + 1,
		FullMoveNumber: gs.FullMoveNumber,
	}
	if m.IsCapture() || m.Piece == Pawn || m.Kind == DoublePush || m.Kind == Promotion {
		next.HalfMoveClock = 0
	}
	if gs.SideToMove == Black {
		next.FullMoveNumber++
	}
	return next
}
