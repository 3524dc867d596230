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

// Rank represents a chess board rank 1-8, indexed from the top of the
// board down: Rank8 is 0, Rank1 is 7. This matches the engine's square
// order where a8 is square 0 and h1 is square 63 (rank = square >> 3).
type Rank uint8

//noinspection GoUnusedConst
const (
	Rank8    Rank = 0
	Rank7    Rank = 1
	Rank6    Rank = 2
	Rank5    Rank = 3
	Rank4    Rank = 4
	Rank3    Rank = 5
	Rank2    Rank = 6
	Rank1    Rank = 7
	RankNone Rank = 8
	RankLength = RankNone
)

// IsValid checks if r represents a valid rank.
func (r Rank) IsValid() bool {
	return r < RankNone
}

const rankLabels string = "87654321"

// String returns the human rank digit (e.g. "8" for Rank8, "1" for Rank1).
// If r is not a valid rank returns "-".
func (r Rank) String() string {
	if r > Rank1 {
		return "-"
	}
	return string(rankLabels[r])
}

// Bb returns the bitboard with every square on this rank set.
func (r Rank) Bb() Bitboard {
	return Rank8_Bb << (8 * r)
}
