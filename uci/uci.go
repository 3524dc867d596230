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

// Package uci contains the UciHandler data structure and functionality to
// handle the UCI protocol communication between the Chess User Interface
// and the chess engine.
package uci

import (
	"bufio"
	"bytes"
	golog "log"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	logging2 "github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kpchess/gofranky/config"
	"github.com/kpchess/gofranky/fen"
	"github.com/kpchess/gofranky/logging"
	"github.com/kpchess/gofranky/movegen"
	"github.com/kpchess/gofranky/position"
	"github.com/kpchess/gofranky/search"
	. "github.com/kpchess/gofranky/types"
	"github.com/kpchess/gofranky/util"
)

var out = message.NewPrinter(language.German)
var log = logging.GetLog()

const engineName = "gofranky"
const engineAuthor = "Frank Kopp, Germany"

// UciHandler handles all communication with the chess ui via UCI
// and drives the search on the current game state.
// Create an instance with NewUciHandler()
type UciHandler struct {
	InIo    *bufio.Scanner
	OutIo   *bufio.Writer
	mySearch *search.Search
	gs      position.GameState
	uciLog  *logging2.Logger
}

// ///////////////////////////////////////////////////////////
// Public
// ///////////////////////////////////////////////////////////

// NewUciHandler creates a new UciHandler instance positioned at the
// start position. Input / Output io can be replaced by changing the
// instance's InIo and OutIo members.
func NewUciHandler() *UciHandler {
	startGs, _ := fen.Parse(fen.StartFEN)
	return &UciHandler{
		InIo:     bufio.NewScanner(os.Stdin),
		OutIo:    bufio.NewWriter(os.Stdout),
		mySearch: search.NewSearch(),
		gs:       startGs,
		uciLog:   getUciLog(),
	}
}

// Loop starts the main loop to receive commands through the input
// stream (pipe or user) until "quit" is received.
func (u *UciHandler) Loop() {
	for u.InIo.Scan() {
		if u.handleReceivedCommand(u.InIo.Text()) {
			return
		}
	}
}

// Command handles a single line of UCI protocol aka command.
// Returns the uci response as string output. Mostly useful for
// debugging and unit testing.
func (u *UciHandler) Command(cmd string) string {
	tmp := u.OutIo
	buffer := new(bytes.Buffer)
	u.OutIo = bufio.NewWriter(buffer)
	u.handleReceivedCommand(cmd)
	_ = u.OutIo.Flush()
	u.OutIo = tmp
	return buffer.String()
}

// ///////////////////////////////////////////////////////////
// Private
// ///////////////////////////////////////////////////////////

var regexWhiteSpace = regexp.MustCompile(`\s+`)

func (u *UciHandler) handleReceivedCommand(cmd string) bool {
	if len(strings.TrimSpace(cmd)) == 0 {
		return false
	}
	log.Debugf("Received command: %s", cmd)
	u.uciLog.Infof("<< %s", cmd)
	tokens := regexWhiteSpace.Split(strings.TrimSpace(cmd), -1)
	switch tokens[0] {
	case "quit":
		return true
	case "uci":
		u.uciCommand()
	case "isready":
		u.isReadyCommand()
	case "ucinewgame":
		u.uciNewGameCommand()
	case "position":
		u.positionCommand(tokens)
	case "go":
		u.goCommand(tokens)
	case "perft":
		u.perftCommand(tokens)
	default:
		log.Warningf("Error: Unknown command: %s", cmd)
	}
	log.Debugf("Processed command: %s", cmd)
	return false
}

func (u *UciHandler) uciCommand() {
	u.send("id name " + engineName)
	u.send("id author " + engineAuthor)
	u.send("uciok")
}

func (u *UciHandler) isReadyCommand() {
	u.send("readyok")
}

func (u *UciHandler) uciNewGameCommand() {
	u.gs, _ = fen.Parse(fen.StartFEN)
}

// sets the current game state as given by the uci command
func (u *UciHandler) positionCommand(tokens []string) {
	if len(tokens) < 2 {
		u.malformed("position", tokens)
		return
	}

	fenStr := fen.StartFEN
	i := 1
	switch tokens[i] {
	case "startpos":
		i++
	case "fen":
		i++
		var fenb strings.Builder
		for i < len(tokens) && tokens[i] != "moves" {
			fenb.WriteString(tokens[i])
			fenb.WriteString(" ")
			i++
		}
		fenStr = strings.TrimSpace(fenb.String())
		if len(fenStr) == 0 {
			u.malformed("position", tokens)
			return
		}
	default:
		u.malformed("position", tokens)
		return
	}

	gs, err := fen.Parse(fenStr)
	if err != nil {
		u.malformed("position", tokens)
		return
	}
	u.gs = gs

	if i < len(tokens) {
		if tokens[i] != "moves" {
			u.malformed("position", tokens)
			return
		}
		i++
		for ; i < len(tokens); i++ {
			m, ok := moveFromUci(u.gs, tokens[i])
			if !ok {
				msg := out.Sprintf("Command 'position' malformed. Invalid move '%s' (%s)", tokens[i], tokens)
				u.sendInfoString(msg)
				log.Warning(msg)
				return
			}
			u.gs = position.MakeMove(u.gs, m)
		}
	}
	log.Debugf("New position: %s", fen.String(u.gs))
}

// starts a fixed-depth search on the current game state and reports
// the best move found.
func (u *UciHandler) goCommand(tokens []string) {
	depth := config.Settings.Search.Depth
	for i := 1; i < len(tokens); i++ {
		switch tokens[i] {
		case "depth":
			i++
			if i >= len(tokens) {
				u.malformed("go", tokens)
				return
			}
			d, err := strconv.Atoi(tokens[i])
			if err != nil {
				msg := out.Sprintf("UCI command go malformed. Depth value not a number: %s", tokens[i])
				u.sendInfoString(msg)
				log.Warning(msg)
				return
			}
			depth = d
		default:
			u.malformed("go", tokens)
			return
		}
	}
	result := u.mySearch.Search(u.gs, depth)
	u.send("bestmove " + result.BestMove.StringUci())
}

// runs a perft test on the current game state to the given depth and
// prints the leaf count.
func (u *UciHandler) perftCommand(tokens []string) {
	depth := 4
	if len(tokens) > 1 {
		d, err := strconv.Atoi(tokens[1])
		if err != nil {
			log.Warningf("Can't perft on depth='%s'", tokens[1])
			return
		}
		depth = d
	}
	nodes := movegen.Count(u.gs, depth)
	u.send("Nodes: " + strconv.FormatUint(nodes, 10))
}

func (u *UciHandler) malformed(cmd string, tokens []string) {
	msg := out.Sprintf("Command '%s' malformed. %s", cmd, tokens)
	u.sendInfoString(msg)
	log.Warning(msg)
}

func (u *UciHandler) sendInfoString(s string) {
	u.send(out.Sprintf("info string %s", s))
}

func (u *UciHandler) send(s string) {
	u.uciLog.Infof(">> %s", s)
	_, _ = u.OutIo.WriteString(s + "\n")
	_ = u.OutIo.Flush()
}

// moveFromUci matches a UCI move string (e.g. "e2e4", "e7e8q") against
// the legal moves of gs.
func moveFromUci(gs position.GameState, uciStr string) (Move, bool) {
	for _, m := range movegen.Generate(gs) {
		if m.StringUci() == uciStr {
			return m, true
		}
	}
	return MoveNone, false
}

// getUciLog returns an instance of a special Logger preconfigured for
// logging all UCI protocol communication to os.Stdout or file.
// Format is very simple "time UCI <uci command>"
func getUciLog() *logging2.Logger {
	uciLog := logging2.MustGetLogger("UCI ")

	uciFormat := logging2.MustStringFormatter(`%{time:15:04:05.000} UCI %{message}`)
	backend1 := logging2.NewLogBackend(os.Stdout, "", golog.Lmsgprefix)
	backend1Formatter := logging2.NewBackendFormatter(backend1, uciFormat)
	uciBackEnd1 := logging2.AddModuleLevel(backend1Formatter)
	uciBackEnd1.SetLevel(logging2.DEBUG, "")

	programName, _ := os.Executable()
	exeName := strings.TrimSuffix(filepath.Base(programName), ".exe")
	logPath, err := util.ResolveCreateFolder(config.Settings.Log.LogPath)
	if err != nil {
		golog.Println("Log folder could not be resolved or created:", err)
	}
	uciLogFilePath := filepath.Clean(logPath + "/" + exeName + "_ucilog.log")

	uciLogFile, err := os.OpenFile(uciLogFilePath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		golog.Println("Logfile could not be created:", err)
		uciLog.SetBackend(uciBackEnd1)
	} else {
		backend2 := logging2.NewLogBackend(uciLogFile, "", golog.Lmsgprefix)
		backend2Formatter := logging2.NewBackendFormatter(backend2, uciFormat)
		uciBackEnd2 := logging2.AddModuleLevel(backend2Formatter)
		uciBackEnd2.SetLevel(logging2.DEBUG, "")
		uciLog.SetBackend(uciBackEnd2)
		uciLog.Infof("Log %s started at %s:", uciLogFile.Name(), time.Now().String())
	}

	return uciLog
}
