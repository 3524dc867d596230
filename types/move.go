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

package types

import "strings"

// MoveKind tags what a Move does to the board, beyond the plain
// from/to step. The switch that applies a move to the board names
// every kind and has no default case; String falls back to "?" for a
// value outside the six kinds.
type MoveKind uint8

const (
	Quiet MoveKind = iota
	Capture
	DoublePush
	EnPassant
	Castle
	Promotion
)

func (k MoveKind) String() string {
	switch k {
	case Quiet:
		return "quiet"
	case Capture:
		return "capture"
	case DoublePush:
		return "doublePush"
	case EnPassant:
		return "enPassant"
	case Castle:
		return "castle"
	case Promotion:
		return "promote"
	default:
		return "?"
	}
}

// CastleSwap carries the two toggled squares for a castling move, as
// bitboards with exactly two bits each, applied to the board by XOR.
type CastleSwap struct {
	King Bitboard
	Rook Bitboard
}

// The four legal castling swaps, fixed by the starting position.
var (
	CastleWhiteKingside  = CastleSwap{King: SqE1.Bitboard() | SqG1.Bitboard(), Rook: SqH1.Bitboard() | SqF1.Bitboard()}
	CastleWhiteQueenside = CastleSwap{King: SqE1.Bitboard() | SqC1.Bitboard(), Rook: SqA1.Bitboard() | SqD1.Bitboard()}
	CastleBlackKingside  = CastleSwap{King: SqE8.Bitboard() | SqG8.Bitboard(), Rook: SqH8.Bitboard() | SqF8.Bitboard()}
	CastleBlackQueenside = CastleSwap{King: SqE8.Bitboard() | SqC8.Bitboard(), Rook: SqA8.Bitboard() | SqD8.Bitboard()}
)

// Move is a tagged union over the six move kinds the spec defines.
// From/To are always the king's squares for Castle (the rook's squares
// live in Swap); Piece carries the moving piece's kind for Quiet, the
// captured piece's kind for Capture; Promo is the promotion piece kind
// for Promotion, and is also set on a Capture move that is itself a
// promotion (a capturing pawn reaching the last rank is encoded as
// Capture with a non-zero Promo, not as a seventh kind).
type Move struct {
	From  Square
	To    Square
	Kind  MoveKind
	Piece PieceKind
	Promo PieceKind
	Swap  CastleSwap
}

// NewQuiet builds a non-capturing, non-special move.
func NewQuiet(from, to Square, moving PieceKind) Move {
	return Move{From: from, To: to, Kind: Quiet, Piece: moving}
}

// NewCapture builds a capturing move. promo is PkNone unless a pawn
// capture also promotes.
func NewCapture(from, to Square, captured PieceKind, promo PieceKind) Move {
	return Move{From: from, To: to, Kind: Capture, Piece: captured, Promo: promo}
}

// NewDoublePush builds a pawn double-step.
func NewDoublePush(from, to Square) Move {
	return Move{From: from, To: to, Kind: DoublePush, Piece: Pawn}
}

// NewEnPassant builds an en-passant capture.
func NewEnPassant(from, to Square) Move {
	return Move{From: from, To: to, Kind: EnPassant, Piece: Pawn}
}

// NewCastle builds a castling move; From/To are the king's squares.
func NewCastle(from, to Square, swap CastleSwap) Move {
	return Move{From: from, To: to, Kind: Castle, Piece: King, Swap: swap}
}

// NewPromotion builds a non-capturing pawn promotion.
func NewPromotion(from, to Square, promo PieceKind) Move {
	return Move{From: from, To: to, Kind: Promotion, Promo: promo}
}

// IsCapture reports whether this move removes an opponent piece,
// whether tagged Capture or EnPassant.
func (m Move) IsCapture() bool {
	return m.Kind == Capture || m.Kind == EnPassant
}

// IsPromotion reports whether this move promotes a pawn, whether
// tagged Promotion or a capturing promotion.
func (m Move) IsPromotion() bool {
	return m.Promo != PkNone
}

// StringUci renders the move the way UCI expects: from-square,
// to-square, and a lowercase promotion letter if any (e.g. "e7e8q").
func (m Move) StringUci() string {
	var os strings.Builder
	os.WriteString(m.From.String())
	os.WriteString(m.To.String())
	if m.IsPromotion() {
		os.WriteString(strings.ToLower(m.Promo.Char()))
	}
	return os.String()
}

func (m Move) String() string {
	var os strings.Builder
	os.WriteString(m.From.String())
	os.WriteString(m.To.String())
	os.WriteString(" (")
	os.WriteString(m.Kind.String())
	if m.IsPromotion() {
		os.WriteString("=")
		os.WriteString(m.Promo.Char())
	}
	os.WriteString(")")
	return os.String()
}

// MoveNone is a Move with both squares set to SqNone, used as a
// sentinel "no move found".
var MoveNone = Move{From: SqNone, To: SqNone}

// MoveList is a plain slice of moves, sized from MaxMoves to avoid
// reallocation during generation of a single position's move list.
type MoveList []Move

// NewMoveList returns an empty MoveList with MaxMoves capacity.
func NewMoveList() MoveList {
	return make(MoveList, 0, MaxMoves)
}

func (ml MoveList) String() string {
	var os strings.Builder
	os.WriteString("[")
	for i, m := range ml {
		if i > 0 {
			os.WriteString(", ")
		}
		os.WriteString(m.String())
	}
	os.WriteString("]")
	return os.String()
}

// StringUci renders the list as a space-separated list of UCI moves.
func (ml MoveList) StringUci() string {
	var os strings.Builder
	for i, m := range ml {
		if i > 0 {
			os.WriteString(" ")
		}
		os.WriteString(m.StringUci())
	}
	return os.String()
}
