// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.


// Package plainterm implements the Terminal interface for the debugger. It's
// a simple as simple can be and offers no special features. It works with
// any input stream, which makes it suitable for scripted sessions.
package plainterm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/nojan1/6502.ts/curated"
	"github.com/nojan1/6502.ts/debugger/terminal"
	"golang.org/x/term"
)

// PlainTerminal is the default, most basic terminal interface.
type PlainTerminal struct {
	input       io.Reader
	output      io.Writer
	interactive bool

	// lines read by the reader goroutine. closed when input is exhausted
	lines chan string

	// the reason for the lines channel closing. only read after the channel
	// has been closed
	err error

	crit sync.Mutex
}

// NewPlainTerminal is the preferred method of initialisation for the
// PlainTerminal type. A nil input or output will be replaced with the
// standard input or output streams during Initialise().
func NewPlainTerminal(input io.Reader, output io.Writer) *PlainTerminal {
	return &PlainTerminal{
		input:  input,
		output: output,
	}
}

// Initialise implements the terminal.Terminal interface.
func (pt *PlainTerminal) Initialise() error {
	if pt.input == nil {
		pt.input = os.Stdin
		pt.interactive = term.IsTerminal(int(os.Stdin.Fd()))
	}
	if pt.output == nil {
		pt.output = os.Stdout
	}

	pt.lines = make(chan string)
	go pt.readLines()

	return nil
}

func (pt *PlainTerminal) readLines() {
	scanner := bufio.NewScanner(pt.input)
	for scanner.Scan() {
		pt.lines <- strings.TrimRight(scanner.Text(), "\r")
	}
	pt.err = scanner.Err()
	close(pt.lines)
}

// CleanUp implements the terminal.Terminal interface.
func (pt *PlainTerminal) CleanUp() {
}

// RunMode implements the terminal.Terminal interface.
func (pt *PlainTerminal) RunMode(_ bool) {
}

// IsInteractive implements the terminal.Input interface.
func (pt *PlainTerminal) IsInteractive() bool {
	return pt.interactive
}

// TermPrintLine implements the terminal.Output interface.
func (pt *PlainTerminal) TermPrintLine(style terminal.Style, s string) {
	pt.crit.Lock()
	defer pt.crit.Unlock()

	// we don't need to echo user input for this type of terminal
	if style == terminal.StyleEcho {
		return
	}

	if style == terminal.StyleError {
		s = fmt.Sprintf("* %s", s)
	}

	io.WriteString(pt.output, s)
	io.WriteString(pt.output, "\n")
}

// TermRead implements the terminal.Input interface.
func (pt *PlainTerminal) TermRead(prompt terminal.Prompt, events *terminal.ReadEvents) (string, error) {
	if pt.interactive {
		pt.crit.Lock()
		io.WriteString(pt.output, prompt.String())
		pt.crit.Unlock()
	}

	var signal chan os.Signal
	if events != nil {
		signal = events.Signal
	}

	select {
	case l, ok := <-pt.lines:
		if !ok {
			return "", pt.endOfInput()
		}
		return l, nil
	case <-signal:
		return "", curated.Errorf(terminal.UserInterrupt)
	}
}

// TermReadCheck implements the terminal.Input interface.
func (pt *PlainTerminal) TermReadCheck() (string, bool) {
	select {
	case l, ok := <-pt.lines:
		return l, ok
	default:
	}
	return "", false
}

func (pt *PlainTerminal) endOfInput() error {
	if pt.err != nil {
		return pt.err
	}
	return io.EOF
}
