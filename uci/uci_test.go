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

package uci

import (
	"bufio"
	"os"
	"strings"
	"testing"

	logging2 "github.com/op/go-logging"
	"github.com/stretchr/testify/assert"

	"github.com/kpchess/gofranky/config"
	"github.com/kpchess/gofranky/fen"
	"github.com/kpchess/gofranky/logging"
)

var logTest *logging2.Logger

func TestMain(m *testing.M) {
	config.Setup()
	logTest = logging.GetTestLog()
	code := m.Run()
	os.Exit(code)
}

func TestUciCommand(t *testing.T) {
	uh := NewUciHandler()
	result := uh.Command("uci")
	assert.Contains(t, result, "id name "+engineName)
	assert.Contains(t, result, "uciok")
}

func TestIsreadyCmd(t *testing.T) {
	uh := NewUciHandler()
	result := uh.Command("isready")
	assert.Contains(t, result, "readyok")
}

func TestLoopStopsOnQuit(t *testing.T) {
	uh := NewUciHandler()
	uh.InIo = bufio.NewScanner(strings.NewReader("uci\nquit\n"))
	var buffer strings.Builder
	uh.OutIo = bufio.NewWriter(&buffer)
	uh.Loop()
	assert.Contains(t, buffer.String(), "uciok")
}

func TestPositionCmd(t *testing.T) {
	uh := NewUciHandler()

	uh.Command("position startpos")
	assert.EqualValues(t, fen.StartFEN, fen.String(uh.gs))

	uh.Command("position fen " + fen.StartFEN)
	assert.EqualValues(t, fen.StartFEN, fen.String(uh.gs))

	result := uh.Command("position fen")
	assert.Contains(t, result, "Command 'position' malformed")

	uh.Command("position fen " + fen.StartFEN + " moves e2e4 e7e5 g1f3 b8c6")
	assert.EqualValues(t, "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3", fen.String(uh.gs))

	result = uh.Command("position fen " + fen.StartFEN + " moves e7e5 g1f3 b8c6")
	assert.Contains(t, result, "Command 'position' malformed")
}

func TestGoCommandReturnsBestMove(t *testing.T) {
	uh := NewUciHandler()
	uh.Command("position startpos")
	result := uh.Command("go depth 2")
	assert.Contains(t, result, "bestmove ")
}

func TestPerftCommand(t *testing.T) {
	uh := NewUciHandler()
	uh.Command("position startpos")
	result := uh.Command("perft 3")
	assert.Contains(t, result, "Nodes: 8902")
}
