/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
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

package movegen

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kpchess/gofranky/position"
	. "github.com/kpchess/gofranky/types"
)

var out = message.NewPrinter(language.German)

// Perft counts leaf nodes of the move-generation tree and tallies a
// few move-kind breakdowns along the way, the gold-standard test for a
// move generator: every legal move is already safe to play, so unlike
// a pseudo-legal generator this walk needs no post-hoc legality filter
// and no explicit unmake - recursion returning is the undo.
type Perft struct {
	Nodes            uint64
	CaptureCounter   uint64
	EnpassantCounter uint64
	CastleCounter    uint64
	PromotionCounter uint64
	stopFlag         bool
}

// NewPerft creates a new empty Perft instance.
func NewPerft() *Perft {
	return &Perft{}
}

// Stop ends a perft run started in a goroutine.
func (p *Perft) Stop() {
	p.stopFlag = true
}

// Run counts leaf nodes reachable from gs at the given depth, updating
// the receiver's counters as it goes.
func (p *Perft) Run(gs position.GameState, depth int) uint64 {
	p.stopFlag = false
	p.resetCounter()
	start := time.Now()
	p.Nodes = p.walk(gs, depth)
	elapsed := time.Since(start)

	out.Printf("Time         : %d ms\n", elapsed.Milliseconds())
	out.Printf("NPS          : %d nps\n", (p.Nodes*uint64(time.Second.Nanoseconds()))/uint64(elapsed.Nanoseconds()+1))
	out.Printf("Results:\n")
	out.Printf("   Nodes     : %d\n", p.Nodes)
	out.Printf("   Captures  : %d\n", p.CaptureCounter)
	out.Printf("   EnPassant : %d\n", p.EnpassantCounter)
	out.Printf("   Castles   : %d\n", p.CastleCounter)
	out.Printf("   Promotions: %d\n", p.PromotionCounter)
	return p.Nodes
}

func (p *Perft) walk(gs position.GameState, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := Generate(gs)
	if p.stopFlag {
		return 0
	}
	if depth == 1 {
		for _, m := range moves {
			p.tally(m)
		}
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		nodes += p.walk(position.MakeMove(gs, m), depth-1)
	}
	return nodes
}

func (p *Perft) tally(m Move) {
	if m.IsCapture() {
		p.CaptureCounter++
	}
	if m.Kind == EnPassant {
		p.EnpassantCounter++
	}
	if m.Kind == Castle {
		p.CastleCounter++
	}
	if m.IsPromotion() {
		p.PromotionCounter++
	}
}

// Count is the bare node count without the tallying or logging Run
// does - what the standard-starting-position and Kiwipete depth tests
// want.
func Count(gs position.GameState, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := Generate(gs)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		nodes += Count(position.MakeMove(gs, m), depth-1)
	}
	return nodes
}

func (p *Perft) resetCounter() {
	p.Nodes = 0
	p.CaptureCounter = 0
	p.EnpassantCounter = 0
	p.CastleCounter = 0
	p.PromotionCounter = 0
}
