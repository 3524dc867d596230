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

// Package search implements a fixed-depth negamax alpha-beta search
// over the engine's immutable position/game-state types.
package search

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kpchess/gofranky/eval"
	"github.com/kpchess/gofranky/logging"
	"github.com/kpchess/gofranky/position"
	. "github.com/kpchess/gofranky/types"
)

var out = message.NewPrinter(language.German)
var log = logging.GetSearchLog()

// Search holds the evaluator and running node count for one fixed-
// depth search. It carries no time control, opening book or
// transposition table: a search call blocks until the requested
// depth is fully explored.
type Search struct {
	evaluator    *eval.Evaluator
	nodesVisited int64
}

// NewSearch creates a Search wired to a fresh Evaluator.
func NewSearch() *Search {
	return &Search{evaluator: eval.NewEvaluator()}
}

// Search runs a fixed-depth negamax search from gs and returns the
// best move found along with its value. depth must be at least 1;
// the root itself always explores every legal move once.
func (s *Search) Search(gs position.GameState, depth int) Result {
	start := time.Now()
	s.nodesVisited = 0

	bestMove, bestValue := s.rootSearch(gs, depth)
	if bestMove == MoveNone {
		if position.InCheck(gs.Pos, gs.SideToMove) {
			bestValue = Mate(0)
		} else {
			bestValue = ValueDraw
		}
	}

	result := Result{
		BestMove:    bestMove,
		BestValue:   bestValue,
		SearchTime:  time.Since(start),
		SearchDepth: depth,
		Nodes:       s.nodesVisited,
	}
	log.Info(out.Sprintf("%s", result.String()))
	return result
}
