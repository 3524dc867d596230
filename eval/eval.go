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

// Package eval computes a tapered PeSTO-style static evaluation of a
// position: material plus piece-square placement, blended between
// middlegame and endgame tables by a game-phase counter, from the
// perspective of the side to move.
package eval

import (
	"github.com/op/go-logging"

	"github.com/kpchess/gofranky/config"
	myLogging "github.com/kpchess/gofranky/logging"
	"github.com/kpchess/gofranky/position"
	. "github.com/kpchess/gofranky/types"
)

// materialValue mirrors the teacher's piece-type value table; King
// carries a nominal value too since it cancels out between the two
// sides in every reachable position (exactly one king each).
var materialValue = [PkLength]Value{PkNone: 0, King: 2000, Pawn: 100, Knight: 320, Bishop: 330, Rook: 500, Queen: 900}

// Evaluator holds no state of its own beyond its logger; Position is
// an immutable value so every call recomputes material and placement
// from the piece bitboards rather than reading incrementally
// maintained fields.
type Evaluator struct {
	log *logging.Logger
}

// NewEvaluator returns an Evaluator wired to the standard logger.
func NewEvaluator() *Evaluator {
	return &Evaluator{log: myLogging.GetLog()}
}

// GamePhase sums the §4.H phase weights of every piece on the board,
// capped at GamePhaseMax by construction (32 starting pieces sum to
// exactly 24).
func GamePhase(p position.Position) int {
	phase := 0
	for c := White; c < ColorLength; c++ {
		for pk := King; pk < PkLength; pk++ {
			phase += p.Pieces[c][pk].PopCount() * pk.GamePhaseValue()
		}
	}
	if phase > GamePhaseMax {
		phase = GamePhaseMax
	}
	return phase
}

// Evaluate returns the static value of p from sideToMove's perspective:
// material plus tapered piece-square placement, plus a tempo bonus
// that fades out as the game phase drops toward the endgame.
func (e *Evaluator) Evaluate(p position.Position, sideToMove Color) Value {
	phase := GamePhase(p)

	value := material(p) + positional(p, phase)
	if sideToMove == Black {
		value = -value
	}
	value += Value(float64(config.Settings.Eval.Tempo) * float64(phase) / float64(GamePhaseMax))
	return value
}

// material is the White-minus-Black sum of materialValue over every
// piece on the board.
func material(p position.Position) Value {
	var v Value
	for pk := King; pk < PkLength; pk++ {
		v += Value(p.Pieces[White][pk].PopCount()-p.Pieces[Black][pk].PopCount()) * materialValue[pk]
	}
	return v
}

// positional is the White-minus-Black piece-square score, tapered
// between the middlegame and endgame tables by phase per spec.md
// §4.H: score = (mg*phase + eg*(24-phase)) / 24.
func positional(p position.Position, phase int) Value {
	var mg, eg Value
	for c := White; c < ColorLength; c++ {
		sign := Value(1)
		if c == Black {
			sign = -1
		}
		for pk := King; pk < PkLength; pk++ {
			bb := p.Pieces[c][pk]
			for bb != BbZero {
				sq := bb.PopLsb()
				m, e := psqValue(c, pk, sq)
				mg += sign * m
				eg += sign * e
			}
		}
	}
	return (mg*Value(phase) + eg*Value(GamePhaseMax-phase)) / GamePhaseMax
}
