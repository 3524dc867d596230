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

package search

import (
	"github.com/kpchess/gofranky/movegen"
	"github.com/kpchess/gofranky/position"
	. "github.com/kpchess/gofranky/types"
)

// rootSearch walks every root move once, keeping the move with the
// largest negamax value. A later move only replaces the incumbent by
// scoring strictly higher, so the first move to reach a given value
// wins ties.
func (s *Search) rootSearch(gs position.GameState, depth int) (Move, Value) {
	moves := movegen.Generate(gs)

	bestMove := MoveNone
	bestValue := -ValueInf
	alpha := -ValueInf
	beta := ValueInf

	for _, m := range moves {
		s.nodesVisited++
		child := position.MakeMove(gs, m)
		value := -s.search(child, depth-1, 1, -beta, -alpha)

		if value > bestValue {
			bestValue = value
			bestMove = m
		}
		if value > alpha {
			alpha = value
		}
	}

	return bestMove, bestValue
}

// search is the negamax alpha-beta recursion: at depth 0 it returns
// the static evaluation; otherwise it generates moves, scores a mate
// or a draw if none exist, and recurses on every move with negated
// and swapped bounds, pruning once the current best reaches beta.
func (s *Search) search(gs position.GameState, depth int, ply int, alpha Value, beta Value) Value {
	if depth == 0 {
		return s.evaluate(gs)
	}

	moves := movegen.Generate(gs)
	if len(moves) == 0 {
		if position.InCheck(gs.Pos, gs.SideToMove) {
			return Mate(ply)
		}
		return ValueDraw
	}

	best := -ValueInf
	for _, m := range moves {
		s.nodesVisited++
		child := position.MakeMove(gs, m)
		value := -s.search(child, depth-1, ply+1, -beta, -alpha)

		if value > best {
			best = value
		}
		if value > alpha {
			alpha = value
		}
		if alpha >= beta {
			break
		}
	}
	return best
}

// evaluate is the single call site for the static evaluation, kept
// separate so both the root loop and the recursion share it.
func (s *Search) evaluate(gs position.GameState) Value {
	return s.evaluator.Evaluate(gs.Pos, gs.SideToMove)
}
