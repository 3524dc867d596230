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

// PieceKind is the six-valued sum type of chess piece kinds, colorless.
type PieceKind int8

//noinspection GoVarAndConstTypeMayBeOmitted
const (
	PkNone   PieceKind = 0
	King     PieceKind = 1 // non sliding
	Pawn     PieceKind = 2 // non sliding
	Knight   PieceKind = 3 // non sliding
	Bishop   PieceKind = 4 // sliding
	Rook     PieceKind = 5 // sliding
	Queen    PieceKind = 6 // sliding
	PkLength PieceKind = 7
)

var pieceKindToString = [PkLength]string{"NOPIECE", "King", "Pawn", "Knight", "Bishop", "Rook", "Queen"}

// Str returns a string representation of a piece kind.
func (pt PieceKind) Str() string {
	return pieceKindToString[pt]
}

var pieceKindToChar = string("-KPNBRQ")

// Char returns a single char string representation of a piece kind,
// uppercase (the FEN/UCI convention leaves color to the caller).
func (pt PieceKind) Char() string {
	return string(pieceKindToChar[pt])
}

// gamePhaseValue mirrors the PeSTO-style phase weights: knight and
// bishop count 1, rook 2, queen 4, king and pawn 0. Summed over both
// sides this tops out at GamePhaseMax.
var gamePhaseValue = [PkLength]int{0, 0, 0, 1, 1, 2, 4}

// GamePhaseValue returns the phase weight of this piece kind.
func (pt PieceKind) GamePhaseValue() int {
	return gamePhaseValue[pt]
}

// IsValid checks if pt is a valid, non-empty piece kind.
func (pt PieceKind) IsValid() bool {
	return pt > PkNone && pt < PkLength
}
