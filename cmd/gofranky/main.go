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

package main

import (
	"flag"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kpchess/gofranky/config"
	"github.com/kpchess/gofranky/logging"
	"github.com/kpchess/gofranky/uci"
)

var out = message.NewPrinter(language.German)

func main() {
	depth := flag.Int("depth", 0, "default search depth used when the UCI 'go' command omits 'depth'\n(0 keeps the value from the configuration file)")
	configFile := flag.String("config", "../config/config.toml", "path to configuration settings file")
	flag.Parse()

	config.ConfFile = *configFile
	config.Setup()

	if *depth > 0 {
		config.Settings.Search.Depth = *depth
	}

	// resetting log level on the standard logger - required as most packages
	// hold the logger as a global var initialized before main() runs.
	logging.GetLog()

	out.Printf("gofranky - search depth %d\n", config.Settings.Search.Depth)

	u := uci.NewUciHandler()
	u.Loop()
}
