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

package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kpchess/gofranky/config"
	"github.com/kpchess/gofranky/fen"
	. "github.com/kpchess/gofranky/types"
)

func TestStartPosZeroEval(t *testing.T) {
	config.Settings.Eval.Tempo = 0
	gs, err := fen.Parse(fen.StartFEN)
	assert.NoError(t, err)
	e := NewEvaluator()
	assert.EqualValues(t, 0, e.Evaluate(gs.Pos, White))
	assert.EqualValues(t, 0, e.Evaluate(gs.Pos, Black))
}

// TestMirroredZeroEval checks a position that is a mirror image of
// itself across the board evaluates to zero from either perspective.
func TestMirroredZeroEval(t *testing.T) {
	config.Settings.Eval.Tempo = 0
	gs, err := fen.Parse("r1bq1rk1/pppp1pp1/2n2n1p/1B2p3/1b2P3/2N2N1P/PPPP1PP1/R1BQ1RK1 w - - 0 1")
	assert.NoError(t, err)
	e := NewEvaluator()
	assert.EqualValues(t, 0, e.Evaluate(gs.Pos, White))
}

func TestTempoFavorsSideToMove(t *testing.T) {
	config.Settings.Eval.Tempo = 30
	gs, err := fen.Parse(fen.StartFEN)
	assert.NoError(t, err)
	e := NewEvaluator()
	assert.True(t, e.Evaluate(gs.Pos, White) > 0)
}

func TestMaterialImbalance(t *testing.T) {
	config.Settings.Eval.Tempo = 0
	// White is missing its queen.
	gs, err := fen.Parse("rnb1kbnr/pppppppp/8/8/8/8/PPPPPPPP/RNB1KBNR w KQkq - 0 1")
	assert.NoError(t, err)
	e := NewEvaluator()
	assert.True(t, e.Evaluate(gs.Pos, White) < -800)
}

func TestGamePhaseStartAndEmpty(t *testing.T) {
	gs, err := fen.Parse(fen.StartFEN)
	assert.NoError(t, err)
	assert.Equal(t, GamePhaseMax, GamePhase(gs.Pos))

	kk, err := fen.Parse("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, 0, GamePhase(kk.Pos))
}
