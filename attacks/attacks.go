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

// Package attacks builds and serves the precomputed attack tables the
// move generator and king-safety checks need: magic-bitboard sliding
// attacks for rook/bishop/queen, and plain lookup tables for knight,
// king and pawn attacks. Everything here is built once at process
// start and never mutated afterwards.
package attacks

import (
	. "github.com/kpchess/gofranky/types"
)

// Magic holds the magic-bitboard entry for one square and one slider
// kind: a relevance mask, a magic multiplier, a right-shift amount and
// a slice into a shared global attack table.
type Magic struct {
	Mask    Bitboard
	Number  Bitboard
	Attacks []Bitboard
	Shift   uint
}

// index computes the perfect-hash index for this square's occupancy.
func (m *Magic) index(occupied Bitboard) uint {
	occ := occupied & m.Mask
	occ *= m.Number
	occ >>= m.Shift
	return uint(occ)
}

var (
	rookMagics   [64]Magic
	bishopMagics [64]Magic
	rookTable    []Bitboard
	bishopTable  []Bitboard

	knightAttacksTbl [64]Bitboard
	kingAttacksTbl   [64]Bitboard
	pawnAttacksTbl   [2][64]Bitboard

	betweenTbl [64][64]Bitboard
)

var allDirections = [8]Direction{North, South, East, West, Northeast, Southeast, Southwest, Northwest}

// Between returns the squares strictly between a and b, exclusive of
// both endpoints. Zero if a and b are not on a common rank, file or
// diagonal - which makes it safe to use unconditionally when building
// a checkmask: ORed with the checker's own square, it produces the
// right mask whether the checker is a slider or a knight/pawn.
func Between(a, b Square) Bitboard {
	return betweenTbl[a][b]
}

func initBetween() {
	for sq1 := SqA8; sq1 <= SqH1; sq1++ {
		for _, d := range allDirections {
			s := sq1
			path := BbZero
			for {
				next := s.To(d)
				if !next.IsValid() || SquareDistance(s, next) != 1 {
					break
				}
				betweenTbl[sq1][next] = path
				path |= next.Bitboard()
				s = next
			}
		}
	}
}

var rookDirections = [4]Direction{North, South, East, West}
var bishopDirections = [4]Direction{Northeast, Southeast, Southwest, Northwest}

// Rook returns the rook attack bitboard from sq given the current
// board occupancy.
func Rook(sq Square, occupied Bitboard) Bitboard {
	m := &rookMagics[sq]
	return m.Attacks[m.index(occupied)]
}

// Bishop returns the bishop attack bitboard from sq given the current
// board occupancy.
func Bishop(sq Square, occupied Bitboard) Bitboard {
	m := &bishopMagics[sq]
	return m.Attacks[m.index(occupied)]
}

// Queen returns the queen attack bitboard from sq (rook | bishop).
func Queen(sq Square, occupied Bitboard) Bitboard {
	return Rook(sq, occupied) | Bishop(sq, occupied)
}

// Knight returns the knight attack bitboard from sq.
func Knight(sq Square) Bitboard {
	return knightAttacksTbl[sq]
}

// King returns the king attack bitboard from sq (one step, any direction).
func King(sq Square) Bitboard {
	return kingAttacksTbl[sq]
}

// Pawn returns the pawn attack bitboard (captures only, not pushes)
// for a pawn of color c standing on sq.
func Pawn(c Color, sq Square) Bitboard {
	return pawnAttacksTbl[c][sq]
}

// Of dispatches to the right table for pk, the way the move generator
// and king-safety checks want to query "what does a piece of this kind
// attack from this square" without switching on kind themselves. Pawn
// attacks need the side to move since pawns only attack one way; pk ==
// Pawn always returns the White attack set here - callers that care
// about color should call Pawn directly.
func Of(pk PieceKind, sq Square, occupied Bitboard) Bitboard {
	switch pk {
	case Knight:
		return Knight(sq)
	case Bishop:
		return Bishop(sq, occupied)
	case Rook:
		return Rook(sq, occupied)
	case Queen:
		return Queen(sq, occupied)
	case King:
		return King(sq)
	case Pawn:
		return pawnAttacksTbl[White][sq]
	}
	return BbZero
}

// slidingAttack walks each of the four given directions from sq until
// it runs off the board or hits an occupied square (inclusive of that
// blocker, since the blocker square itself is "attacked"). Used both
// to precompute the magic masks (with an empty board) and, during
// magic-number search, to build the reference attack sets.
func slidingAttack(directions *[4]Direction, sq Square, occupied Bitboard) Bitboard {
	var attack Bitboard
	for _, d := range directions {
		s := sq
		for {
			next := s.To(d)
			if !next.IsValid() || SquareDistance(s, next) != 1 {
				break
			}
			s = next
			attack.PushSquare(s)
			if occupied.Has(s) {
				break
			}
		}
	}
	return attack
}

// prnG is the xorshift64star pseudo-random generator used to search
// for magic numbers, after Sebastiano Vigna's public-domain design.
type prnG struct {
	s uint64
}

func newPrnG(seed uint64) *prnG {
	return &prnG{s: seed}
}

func (r *prnG) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// sparseRand produces a value with roughly 1/8th of its bits set on
// average - good magic-number candidates are low density.
func (r *prnG) sparseRand() uint64 {
	return r.rand64() & r.rand64() & r.rand64()
}

// magicSeeds are per-rank PRNG seeds known to converge quickly; lifted
// from the reference Stockfish-derived table, which indexes rank 1 at
// 0. Reversed here so index 0 lines up with our top-down Rank8=0.
var magicSeeds = [8]uint64{255, 16645, 15100, 12281, 32803, 55013, 10316, 728}

// initMagicsFor fills in magics[sq] for every square and appends the
// computed attack slices into *table, using the carry-rippler trick to
// enumerate every blocker subset of the relevance mask and a sparse
// PRNG search to find a perfect-hash multiplier for each square.
func initMagicsFor(table *[]Bitboard, magics *[64]Magic, directions *[4]Direction) {
	var occupancy, reference [4096]Bitboard
	var epoch [4096]int
	cnt := 0

	for sq := SqA8; sq <= SqH1; sq++ {
		edges := ((Rank8_Bb | Rank1_Bb) &^ sq.RankOf().Bb()) | ((FileA_Bb | FileH_Bb) &^ sq.FileOf().Bb())

		m := &magics[sq]
		m.Mask = slidingAttack(directions, sq, BbZero) &^ edges
		m.Shift = uint(64 - m.Mask.PopCount())

		start := len(*table)

		b := BbZero
		size := 0
		for {
			occupancy[size] = b
			reference[size] = slidingAttack(directions, sq, b)
			size++
			b = (b - m.Mask) & m.Mask
			if b == BbZero {
				break
			}
		}

		*table = append(*table, make([]Bitboard, size)...)
		m.Attacks = (*table)[start : start+size]

		rng := newPrnG(magicSeeds[sq.RankOf()])
		for i := 0; i < size; {
			for {
				m.Number = Bitboard(rng.sparseRand())
				if ((m.Number * m.Mask) >> 56).PopCount() >= 6 {
					continue
				}
				break
			}
			cnt++
			for i = 0; i < size; i++ {
				idx := m.index(occupancy[i])
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					m.Attacks[idx] = reference[i]
				} else if m.Attacks[idx] != reference[i] {
					break
				}
			}
		}
	}
}

// knightDeltas and kingDeltas are expressed as (file delta, rank
// delta) pairs rather than Direction values, since a knight's step
// isn't one of the eight compass directions.
var knightDeltas = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingDeltas = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

func initLeaperAttacks() {
	for sq := SqA8; sq <= SqH1; sq++ {
		f, r := int(sq.FileOf()), int(sq.RankOf())
		for _, d := range knightDeltas {
			nf, nr := f+d[0], r+d[1]
			if nf < 0 || nf > 7 || nr < 0 || nr > 7 {
				continue
			}
			knightAttacksTbl[sq].PushSquare(SquareOf(File(nf), Rank(nr)))
		}
		for _, d := range kingDeltas {
			nf, nr := f+d[0], r+d[1]
			if nf < 0 || nf > 7 || nr < 0 || nr > 7 {
				continue
			}
			kingAttacksTbl[sq].PushSquare(SquareOf(File(nf), Rank(nr)))
		}
		// White attacks are forward-left/forward-right relative to
		// White's advance direction (North, towards rank 8): that is
		// shift-by-North-then-East and shift-by-North-then-West, i.e.
		// Northeast/Northwest from the pawn's square. Black mirrors
		// with Southeast/Southwest.
		if ne := sq.To(Northeast); ne.IsValid() {
			pawnAttacksTbl[White][sq].PushSquare(ne)
		}
		if nw := sq.To(Northwest); nw.IsValid() {
			pawnAttacksTbl[White][sq].PushSquare(nw)
		}
		if se := sq.To(Southeast); se.IsValid() {
			pawnAttacksTbl[Black][sq].PushSquare(se)
		}
		if sw := sq.To(Southwest); sw.IsValid() {
			pawnAttacksTbl[Black][sq].PushSquare(sw)
		}
	}
}

// buildTables builds every attack table. Init in init.go runs it
// exactly once through initOnce.
func buildTables() {
	rookTable = make([]Bitboard, 0, 0x19000)
	bishopTable = make([]Bitboard, 0, 0x1480)
	initMagicsFor(&rookTable, &rookMagics, &rookDirections)
	initMagicsFor(&bishopTable, &bishopMagics, &bishopDirections)
	initLeaperAttacks()
	initBetween()
}
