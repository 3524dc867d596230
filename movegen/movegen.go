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

// Package movegen generates fully legal moves directly, without a
// pseudo-legal pass and a later WasLegalMove filter: every move this
// package hands back is already safe to play. Two pieces of board
// geometry make that possible - the checkmask (the set of squares a
// non-king move must land on while the side to move is in check) and
// the pinmask (per-pinned-piece, the ray it may still move along) -
// both computed once per call from the king's own square outward.
package movegen

import (
	"github.com/kpchess/gofranky/attacks"
	. "github.com/kpchess/gofranky/position"
	. "github.com/kpchess/gofranky/types"
)

var diagDirections = [4]Direction{Northeast, Southeast, Southwest, Northwest}
var orthoDirections = [4]Direction{North, South, East, West}

// pin records that the piece on sq may only move along mask (the ray
// between the king and the pinning slider, inclusive of the pinner).
type pin struct {
	sq   Square
	mask Bitboard
}

// computeCheckMask returns the squares a non-king move must land on to
// resolve check (blocking or capturing), and the number of checkers.
// With no checker it returns BbAll (no constraint); with two or more it
// returns an empty mask, since only a king move can answer double
// check. Walking pseudo-attacks outward from the king's own square and
// intersecting with the matching enemy piece kind finds every checker
// without needing to ask "does piece X attack the king" for every
// enemy piece on the board.
func computeCheckMask(p Position, us Color, kingSq Square) (Bitboard, int) {
	them := us.Flip()
	var mask Bitboard
	checkers := 0

	knightCheckers := attacks.Knight(kingSq) & p.Pieces[them][Knight]
	for knightCheckers != BbZero {
		sq := knightCheckers.PopLsb()
		mask |= sq.Bitboard()
		checkers++
	}
	pawnCheckers := attacks.Pawn(us, kingSq) & p.Pieces[them][Pawn]
	for pawnCheckers != BbZero {
		sq := pawnCheckers.PopLsb()
		mask |= sq.Bitboard()
		checkers++
	}
	diagCheckers := attacks.Bishop(kingSq, p.Occupied) & (p.Pieces[them][Bishop] | p.Pieces[them][Queen])
	for diagCheckers != BbZero {
		sq := diagCheckers.PopLsb()
		mask |= attacks.Between(kingSq, sq) | sq.Bitboard()
		checkers++
	}
	orthoCheckers := attacks.Rook(kingSq, p.Occupied) & (p.Pieces[them][Rook] | p.Pieces[them][Queen])
	for orthoCheckers != BbZero {
		sq := orthoCheckers.PopLsb()
		mask |= attacks.Between(kingSq, sq) | sq.Bitboard()
		checkers++
	}

	if checkers == 0 {
		return BbAll, 0
	}
	if checkers > 1 {
		return BbZero, checkers
	}
	return mask, checkers
}

// computePins walks all eight directions from the king looking for a
// lone friendly piece followed by a matching enemy slider further out;
// that friendly piece is pinned to the line between them. A direct
// ray-walk rather than the "remove the candidate, diff the attack
// sets" trick some engines use for the same purpose - same result,
// fewer moving parts.
func computePins(p Position, us Color, kingSq Square) []pin {
	them := us.Flip()
	own := p.Occupancy(us)
	occ := p.Occupied
	var pins []pin

	scan := func(dirs [4]Direction, pinners Bitboard) {
		for _, d := range dirs {
			s := kingSq
			blocker := SqNone
			for {
				next := s.To(d)
				if !next.IsValid() || SquareDistance(s, next) != 1 {
					break
				}
				s = next
				if !occ.Has(s) {
					continue
				}
				if blocker == SqNone {
					if !own.Has(s) {
						break // first piece on the ray belongs to the other side: no pin here
					}
					blocker = s
					continue
				}
				if pinners.Has(s) {
					pins = append(pins, pin{sq: blocker, mask: attacks.Between(kingSq, s) | s.Bitboard()})
				}
				break
			}
		}
	}

	scan(diagDirections, p.Pieces[them][Bishop]|p.Pieces[them][Queen])
	scan(orthoDirections, p.Pieces[them][Rook]|p.Pieces[them][Queen])
	return pins
}

func pinMaskOf(pins []pin, sq Square) Bitboard {
	for _, pi := range pins {
		if pi.sq == sq {
			return pi.mask
		}
	}
	return BbAll
}

// emitTargets appends one move per destination bit, choosing Quiet or
// Capture by what (if anything) occupies the destination square.
func emitTargets(p Position, us Color, from Square, pk PieceKind, dest Bitboard, ml *MoveList) {
	for dest != BbZero {
		to := dest.PopLsb()
		if p.Occupancy(us.Flip()).Has(to) {
			_, captured, _ := p.PieceOn(to)
			*ml = append(*ml, NewCapture(from, to, captured, PkNone))
		} else {
			*ml = append(*ml, NewQuiet(from, to, pk))
		}
	}
}

func genKnightMoves(p Position, us Color, checkMask Bitboard, pins []pin, ml *MoveList) {
	knights := p.Pieces[us][Knight]
	for knights != BbZero {
		from := knights.PopLsb()
		dest := attacks.Knight(from) &^ p.Occupancy(us) & checkMask & pinMaskOf(pins, from)
		emitTargets(p, us, from, Knight, dest, ml)
	}
}

// genSliderMoves drives bishop, rook and queen generation alike: the
// destination set is ANDed against checkMask and, if the piece is
// pinned, against the pin ray. That single AND is enough on its own -
// a bishop pinned orthogonally (or a rook pinned diagonally) naturally
// has nothing in common with its pin ray, so it collapses to zero
// legal moves without a separate "wrong kind of pin" branch.
func genSliderMoves(p Position, us Color, pk PieceKind, checkMask Bitboard, pins []pin, ml *MoveList) {
	pieces := p.Pieces[us][pk]
	for pieces != BbZero {
		from := pieces.PopLsb()
		var dest Bitboard
		switch pk {
		case Bishop:
			dest = attacks.Bishop(from, p.Occupied)
		case Rook:
			dest = attacks.Rook(from, p.Occupied)
		case Queen:
			dest = attacks.Queen(from, p.Occupied)
		}
		dest &^= p.Occupancy(us)
		dest &= checkMask
		dest &= pinMaskOf(pins, from)
		emitTargets(p, us, from, pk, dest, ml)
	}
}

func genKingMoves(p Position, us Color, kingSq Square, unsafe Bitboard, ml *MoveList) {
	dest := attacks.King(kingSq) &^ p.Occupancy(us) &^ unsafe
	emitTargets(p, us, kingSq, King, dest, ml)
}

// genCastling adds the castling moves whose rights survive, whose
// intermediate squares are empty, and whose king path (start square
// through destination, inclusive) is not in unsafe - which also rules
// out castling while in check without a separate test for it.
func genCastling(p Position, rights BoardRights, us Color, unsafe Bitboard, ml *MoveList) {
	occ := p.Occupied
	if us == White {
		if rights.Castling.Has(CastlingWhiteOO) &&
			attacks.Between(SqE1, SqH1)&occ == 0 &&
			unsafe&(SqE1.Bitboard()|SqF1.Bitboard()|SqG1.Bitboard()) == 0 {
			*ml = append(*ml, NewCastle(SqE1, SqG1, CastleWhiteKingside))
		}
		if rights.Castling.Has(CastlingWhiteOOO) &&
			attacks.Between(SqE1, SqA1)&occ == 0 &&
			unsafe&(SqE1.Bitboard()|SqD1.Bitboard()|SqC1.Bitboard()) == 0 {
			*ml = append(*ml, NewCastle(SqE1, SqC1, CastleWhiteQueenside))
		}
		return
	}
	if rights.Castling.Has(CastlingBlackOO) &&
		attacks.Between(SqE8, SqH8)&occ == 0 &&
		unsafe&(SqE8.Bitboard()|SqF8.Bitboard()|SqG8.Bitboard()) == 0 {
		*ml = append(*ml, NewCastle(SqE8, SqG8, CastleBlackKingside))
	}
	if rights.Castling.Has(CastlingBlackOOO) &&
		attacks.Between(SqE8, SqA8)&occ == 0 &&
		unsafe&(SqE8.Bitboard()|SqD8.Bitboard()|SqC8.Bitboard()) == 0 {
		*ml = append(*ml, NewCastle(SqE8, SqC8, CastleBlackQueenside))
	}
}

// promote appends the four promotion choices for a pawn move landing
// on the back rank, tagged Promotion for a quiet arrival or Capture
// (with Promo set) for a capturing one.
func promote(from, to Square, captured PieceKind, isCapture bool, ml *MoveList) {
	for _, pk := range [4]PieceKind{Queen, Rook, Bishop, Knight} {
		if isCapture {
			*ml = append(*ml, NewCapture(from, to, captured, pk))
		} else {
			*ml = append(*ml, NewPromotion(from, to, pk))
		}
	}
}

// epDiscoversCheck reports whether removing both the capturing and the
// captured pawn from their squares and putting the capturing pawn on
// its landing square to (as an en-passant capture does) would expose
// the king to a rook or queen - the one way an en-passant capture can
// be illegal despite leaving no pinned piece behind.
func epDiscoversCheck(p Position, us Color, from, to, capturedSq, kingSq Square) bool {
	them := us.Flip()
	occAfter := (p.Occupied &^ from.Bitboard() &^ capturedSq.Bitboard()) | to.Bitboard()
	return attacks.Rook(kingSq, occAfter)&(p.Pieces[them][Rook]|p.Pieces[them][Queen]) != 0
}

func genPawnMoves(p Position, rights BoardRights, us Color, kingSq Square, checkMask Bitboard, pins []pin, ml *MoveList) {
	them := us.Flip()
	forward := Direction(us.MoveDirection()) * North
	promRank := us.PromotionRankBb()
	doubleRank := us.PawnDoubleRankBb()

	pawns := p.Pieces[us][Pawn]
	for pawns != BbZero {
		from := pawns.PopLsb()
		mask := pinMaskOf(pins, from)

		if to1 := from.To(forward); to1.IsValid() && !p.Occupied.Has(to1) {
			if to1.Bitboard()&checkMask&mask != 0 {
				if to1.Bitboard()&promRank != 0 {
					promote(from, to1, PkNone, false, ml)
				} else {
					*ml = append(*ml, NewQuiet(from, to1, Pawn))
				}
			}
			if to1.Bitboard()&doubleRank != 0 {
				if to2 := to1.To(forward); to2.IsValid() && !p.Occupied.Has(to2) && to2.Bitboard()&checkMask&mask != 0 {
					*ml = append(*ml, NewDoublePush(from, to2))
				}
			}
		}

		for _, side := range [2]Direction{East, West} {
			to := from.To(Direction(int(forward) + int(side)))
			if !to.IsValid() {
				continue
			}
			if p.Occupancy(them).Has(to) {
				if to.Bitboard()&checkMask&mask != 0 {
					_, captured, _ := p.PieceOn(to)
					if to.Bitboard()&promRank != 0 {
						promote(from, to, captured, true, ml)
					} else {
						*ml = append(*ml, NewCapture(from, to, captured, PkNone))
					}
				}
				continue
			}
			if to == rights.EnPassant && rights.EnPassant != SqNone {
				capturedSq := SquareOf(to.FileOf(), from.RankOf())
				// An en-passant capture resolves a check either by
				// removing the checking pawn (capturedSq in checkMask)
				// or, against a slider check, by interposing on the
				// landing square itself (to in checkMask).
				if (capturedSq.Bitboard()&checkMask == 0 && to.Bitboard()&checkMask == 0) || to.Bitboard()&mask == 0 {
					continue
				}
				if !epDiscoversCheck(p, us, from, to, capturedSq, kingSq) {
					*ml = append(*ml, NewEnPassant(from, to))
				}
			}
		}
	}
}

// Generate returns every fully legal move available to the side to
// move in gs. Under double check only king moves are produced; under
// single check every move is filtered to the checkmask; pinned pieces
// are filtered to their pin ray. King moves and castling are filtered
// through KingUnsafeSquares rather than the checkmask, since "does not
// walk into check" is a different test from "does this resolve the
// current check".
func Generate(gs GameState) MoveList {
	p := gs.Pos
	us := gs.SideToMove
	kingSq := p.KingSquare(us)

	checkMask, checkers := computeCheckMask(p, us, kingSq)
	unsafe := KingUnsafeSquares(p, us)
	ml := NewMoveList()

	if checkers < 2 {
		pins := computePins(p, us, kingSq)
		genPawnMoves(p, gs.Rights, us, kingSq, checkMask, pins, &ml)
		genKnightMoves(p, us, checkMask, pins, &ml)
		genSliderMoves(p, us, Bishop, checkMask, pins, &ml)
		genSliderMoves(p, us, Rook, checkMask, pins, &ml)
		genSliderMoves(p, us, Queen, checkMask, pins, &ml)
		if checkers == 0 {
			genCastling(p, gs.Rights, us, unsafe, &ml)
		}
	}
	genKingMoves(p, us, kingSq, unsafe, &ml)

	return ml
}
