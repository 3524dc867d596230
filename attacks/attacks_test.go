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

package attacks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/kpchess/gofranky/types"
)

func TestMain(m *testing.M) {
	Init()
	m.Run()
}

// TestMagicExhaustive verifies every rook and bishop magic against the
// reference ray-walk attack set for every subset of its relevance mask
// - the exhaustive check spec.md §8 requires of the magic tables.
func TestMagicExhaustive(t *testing.T) {
	for sq := SqA8; sq <= SqH1; sq++ {
		m := &rookMagics[sq]
		b := BbZero
		for {
			want := slidingAttack(&rookDirections, sq, b)
			assert.Equal(t, want, m.Attacks[m.index(b)], "rook %s occ %x", sq.String(), uint64(b))
			b = (b - m.Mask) & m.Mask
			if b == BbZero {
				break
			}
		}
	}
	for sq := SqA8; sq <= SqH1; sq++ {
		m := &bishopMagics[sq]
		b := BbZero
		for {
			want := slidingAttack(&bishopDirections, sq, b)
			assert.Equal(t, want, m.Attacks[m.index(b)], "bishop %s occ %x", sq.String(), uint64(b))
			b = (b - m.Mask) & m.Mask
			if b == BbZero {
				break
			}
		}
	}
}

// TestBishopAttacksEmptyBoard is spec.md §8 scenario 6: bishop_attacks(d4, 0)
// is the two full diagonals through d4, minus d4 itself.
func TestBishopAttacksEmptyBoard(t *testing.T) {
	assert.EqualValues(t, Bitboard(0x4122140014224180), Bishop(SqD4, BbZero))
}

func TestRookAttacksEmptyBoard(t *testing.T) {
	want := (FileD_Bb | Rank4_Bb) &^ SqD4.Bitboard()
	assert.Equal(t, want, Rook(SqD4, BbZero))
}

func TestKnightAttacksCorner(t *testing.T) {
	assert.Equal(t, SqB6.Bitboard()|SqC7.Bitboard(), Knight(SqA8))
}

func TestKingAttacksCorner(t *testing.T) {
	want := SqB8.Bitboard() | SqA7.Bitboard() | SqB7.Bitboard()
	assert.Equal(t, want, King(SqA8))
}

func TestPawnAttacks(t *testing.T) {
	assert.Equal(t, SqD8.Bitboard()|SqF8.Bitboard(), Pawn(White, SqE7))
	assert.Equal(t, SqD4.Bitboard()|SqF4.Bitboard(), Pawn(Black, SqE5))
}

func TestBetweenColinear(t *testing.T) {
	assert.Equal(t, SqB2.Bitboard()|SqC3.Bitboard(), Between(SqA1, SqD4))
	want := SqB2.Bitboard() | SqC3.Bitboard() | SqD4.Bitboard() | SqE5.Bitboard() | SqF6.Bitboard() | SqG7.Bitboard()
	assert.Equal(t, want, Between(SqA1, SqH8))
}

func TestBetweenNotColinear(t *testing.T) {
	assert.Equal(t, BbZero, Between(SqA1, SqB3))
}
