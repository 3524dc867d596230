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

// Package fen converts between Forsyth-Edwards Notation and a
// position.GameState. Field by field regex validation, the way
// position.go's setupBoard does it, rather than one monolithic parser.
package fen

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/kpchess/gofranky/position"
	. "github.com/kpchess/gofranky/types"
)

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var boardFieldRe = regexp.MustCompile(`^[0-8pPnNbBrRqQkK/]+$`)
var sideFieldRe = regexp.MustCompile(`^[wb]$`)
var castlingFieldRe = regexp.MustCompile(`^(K?Q?k?q?|-)$`)
var epFieldRe = regexp.MustCompile(`^([a-h][1-8]|-)$`)

var charToPiece = map[byte]struct {
	c  Color
	pk PieceKind
}{
	'K': {White, King}, 'P': {White, Pawn}, 'N': {White, Knight},
	'B': {White, Bishop}, 'R': {White, Rook}, 'Q': {White, Queen},
	'k': {Black, King}, 'p': {Black, Pawn}, 'n': {Black, Knight},
	'b': {Black, Bishop}, 'r': {Black, Rook}, 'q': {Black, Queen},
}

// Parse reads a FEN string into a GameState. Only the board-layout
// field is mandatory; every field after it falls back to the usual
// default (white to move, no castling rights, no en-passant target,
// clocks zeroed) if missing, matching setupBoard's staged field count
// checks rather than requiring every field up front.
func Parse(fenStr string) (position.GameState, error) {
	fenStr = strings.TrimSpace(fenStr)
	fields := strings.Fields(fenStr)
	if len(fields) == 0 {
		return position.GameState{}, errors.New("fen: empty string")
	}

	if !boardFieldRe.MatchString(fields[0]) {
		return position.GameState{}, errors.New("fen: board field contains invalid characters")
	}
	var pieces [ColorLength][PkLength]Bitboard
	sq := SqA8
	for _, c := range fields[0] {
		switch {
		case c >= '1' && c <= '8':
			sq = Square(int(sq) + int(c-'0'))
		case c == '/':
			// With a8=0 the eight squares of a rank already leave sq on
			// the next rank's a-file, so the separator does not move it.
		default:
			entry, ok := charToPiece[byte(c)]
			if !ok {
				return position.GameState{}, fmt.Errorf("fen: invalid piece character %q", c)
			}
			if !sq.IsValid() {
				return position.GameState{}, errors.New("fen: board field runs past the last square")
			}
			pieces[entry.c][entry.pk] |= sq.Bitboard()
			sq++
		}
	}
	if sq != SqNone {
		return position.GameState{}, errors.New("fen: board field does not end right after h1")
	}

	gs := position.GameState{
		Pos:            position.NewPosition(pieces),
		Rights:         BoardRights{Castling: CastlingNone, EnPassant: SqNone},
		SideToMove:     White,
		FullMoveNumber: 1,
	}

	if len(fields) >= 2 {
		if !sideFieldRe.MatchString(fields[1]) {
			return position.GameState{}, errors.New("fen: side-to-move field contains invalid characters")
		}
		if fields[1] == "b" {
			gs.SideToMove = Black
		}
	}

	if len(fields) >= 3 {
		if !castlingFieldRe.MatchString(fields[2]) {
			return position.GameState{}, errors.New("fen: castling field contains invalid characters")
		}
		if fields[2] != "-" {
			for _, c := range fields[2] {
				switch c {
				case 'K':
					gs.Rights.Castling.Add(CastlingWhiteOO)
				case 'Q':
					gs.Rights.Castling.Add(CastlingWhiteOOO)
				case 'k':
					gs.Rights.Castling.Add(CastlingBlackOO)
				case 'q':
					gs.Rights.Castling.Add(CastlingBlackOOO)
				}
			}
		}
	}

	if len(fields) >= 4 {
		if !epFieldRe.MatchString(fields[3]) {
			return position.GameState{}, errors.New("fen: en-passant field contains invalid characters")
		}
		if fields[3] != "-" {
			gs.Rights.EnPassant = MakeSquare(fields[3])
		}
	}

	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return position.GameState{}, fmt.Errorf("fen: half-move clock: %w", err)
		}
		gs.HalfMoveClock = n
	}

	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return position.GameState{}, fmt.Errorf("fen: full-move number: %w", err)
		}
		if n == 0 {
			n = 1
		}
		gs.FullMoveNumber = n
	}

	return gs, nil
}

var pieceToChar = [ColorLength][PkLength]byte{
	White: {PkNone: '-', King: 'K', Pawn: 'P', Knight: 'N', Bishop: 'B', Rook: 'R', Queen: 'Q'},
	Black: {PkNone: '-', King: 'k', Pawn: 'p', Knight: 'n', Bishop: 'b', Rook: 'r', Queen: 'q'},
}

// String renders gs back into FEN.
func String(gs position.GameState) string {
	var os strings.Builder
	for r := Rank8; ; r++ {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			sq := SquareOf(f, r)
			c, pk, ok := gs.Pos.PieceOn(sq)
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				os.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			os.WriteByte(pieceToChar[c][pk])
		}
		if empty > 0 {
			os.WriteString(strconv.Itoa(empty))
		}
		if r == Rank1 {
			break
		}
		os.WriteString("/")
	}

	os.WriteString(" ")
	os.WriteString(gs.SideToMove.Str())
	os.WriteString(" ")
	os.WriteString(gs.Rights.Castling.String())
	os.WriteString(" ")
	os.WriteString(gs.Rights.EnPassant.String())
	os.WriteString(" ")
	os.WriteString(strconv.Itoa(gs.HalfMoveClock))
	os.WriteString(" ")
	os.WriteString(strconv.Itoa(gs.FullMoveNumber))
	return os.String()
}
