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

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/kpchess/gofranky/util"
)

// Bitboard holds one bit per square: bit i is set for square i, under
// this engine's a8=0 square order.
type Bitboard uint64

// various constant bitboards for convenience
//noinspection ALL
const (
	BbZero Bitboard = Bitboard(0)
	BbAll  Bitboard = ^BbZero
	BbOne  Bitboard = Bitboard(1)

	FileA_Bb Bitboard = 0x0101010101010101
	FileB_Bb Bitboard = FileA_Bb << 1
	FileC_Bb Bitboard = FileA_Bb << 2
	FileD_Bb Bitboard = FileA_Bb << 3
	FileE_Bb Bitboard = FileA_Bb << 4
	FileF_Bb Bitboard = FileA_Bb << 5
	FileG_Bb Bitboard = FileA_Bb << 6
	FileH_Bb Bitboard = FileA_Bb << 7

	// Rank8_Bb is the top rank, occupying the low byte because a8 is
	// square 0.
	Rank8_Bb Bitboard = 0xFF
	Rank7_Bb Bitboard = Rank8_Bb << (8 * 1)
	Rank6_Bb Bitboard = Rank8_Bb << (8 * 2)
	Rank5_Bb Bitboard = Rank8_Bb << (8 * 3)
	Rank4_Bb Bitboard = Rank8_Bb << (8 * 4)
	Rank3_Bb Bitboard = Rank8_Bb << (8 * 5)
	Rank2_Bb Bitboard = Rank8_Bb << (8 * 6)
	Rank1_Bb Bitboard = Rank8_Bb << (8 * 7)

	FileAMask Bitboard = ^FileA_Bb
	FileHMask Bitboard = ^FileH_Bb
)

// Bitboard returns the single-bit bitboard for this square.
func (sq Square) Bitboard() Bitboard {
	return BbOne << sq
}

// Has reports whether b has the bit for sq set.
func (b Bitboard) Has(sq Square) bool {
	return b&sq.Bitboard() != 0
}

// FileDistance returns the absolute distance in files between two files.
func FileDistance(f1, f2 File) int {
	return util.Abs(int(f2) - int(f1))
}

// RankDistance returns the absolute distance in ranks between two ranks.
func RankDistance(r1, r2 Rank) int {
	return util.Abs(int(r2) - int(r1))
}

// SquareDistance returns Chebyshev distance (king-move distance)
// between two squares.
func SquareDistance(s1, s2 Square) int {
	return util.Max(FileDistance(s1.FileOf(), s2.FileOf()), RankDistance(s1.RankOf(), s2.RankOf()))
}

// PushSquare sets the corresponding bit of the bitboard for the square.
func PushSquare(b Bitboard, s Square) Bitboard {
	return b | s.Bitboard()
}

// PushSquare sets the corresponding bit of the bitboard for the square.
func (b *Bitboard) PushSquare(s Square) {
	*b |= s.Bitboard()
}

// PopSquare clears the corresponding bit of the bitboard for the square.
func PopSquare(b Bitboard, s Square) Bitboard {
	return b &^ s.Bitboard()
}

// PopSquare clears the corresponding bit of the bitboard for the square.
func (b *Bitboard) PopSquare(s Square) {
	*b &^= s.Bitboard()
}

// ShiftBitboard shifts all bits of a bitboard one square in the given
// direction, clearing the file that would otherwise wrap around.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return b >> 8
	case South:
		return b << 8
	case East:
		return (b &^ FileH_Bb) << 1
	case West:
		return (b &^ FileA_Bb) >> 1
	case Northeast:
		return (b &^ FileH_Bb) >> 7
	case Southeast:
		return (b &^ FileH_Bb) << 9
	case Southwest:
		return (b &^ FileA_Bb) << 7
	case Northwest:
		return (b &^ FileA_Bb) >> 9
	}
	return b
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Lsb returns the least significant set bit as a Square, or SqNone if
// the bitboard is empty. Since a8=0, Lsb favors squares near a8.
func (b Bitboard) Lsb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Msb returns the most significant set bit as a Square, or SqNone if
// the bitboard is empty.
func (b Bitboard) Msb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLsb returns the Lsb square and clears it from the bitboard.
func (b *Bitboard) PopLsb() Square {
	if *b == BbZero {
		return SqNone
	}
	lsb := b.Lsb()
	*b &= *b - 1
	return lsb
}

// Str returns the raw 64-bit binary string.
func (b Bitboard) Str() string {
	return fmt.Sprintf("%064b", uint64(b))
}

// StrBoard renders the bitboard as an 8x8 board, rank 8 on top.
func (b Bitboard) StrBoard() string {
	var os strings.Builder
	os.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8; ; r++ {
		for f := FileA; f <= FileH; f++ {
			if (b & SquareOf(f, r).Bitboard()) > 0 {
				os.WriteString("| X ")
			} else {
				os.WriteString("|   ")
			}
		}
		os.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
		if r == Rank1 {
			break
		}
	}
	return os.String()
}
