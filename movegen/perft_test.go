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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kpchess/gofranky/fen"
)

// kiwipete is the standard move-generator torture position: it packs
// castling both sides, en passant, pins and promotions into one board.
const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

func TestPerftKiwipete(t *testing.T) {
	gs, err := fen.Parse(kiwipete)
	assert.NoError(t, err)
	assert.EqualValues(t, 48, Count(gs, 1))
	assert.EqualValues(t, 2039, Count(gs, 2))
	assert.EqualValues(t, 97862, Count(gs, 3))
	assert.EqualValues(t, 4085603, Count(gs, 4))
}

func TestPerftStartPositionDepth4(t *testing.T) {
	gs, err := fen.Parse(fen.StartFEN)
	assert.NoError(t, err)
	assert.EqualValues(t, 197281, Count(gs, 4))
}

func TestPerftRunMatchesCount(t *testing.T) {
	gs := startPosition()
	p := NewPerft()
	assert.EqualValues(t, Count(gs, 3), p.Run(gs, 3))
	assert.EqualValues(t, 34, p.CaptureCounter)
	assert.Zero(t, p.CastleCounter)
	assert.Zero(t, p.PromotionCounter)
}

func TestPerftDepthZeroIsOneNode(t *testing.T) {
	assert.EqualValues(t, 1, Count(startPosition(), 0))
}

func TestPerftStop(t *testing.T) {
	p := NewPerft()
	p.Stop()
	assert.Zero(t, p.walk(startPosition(), 3))
}
