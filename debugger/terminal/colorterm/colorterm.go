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


//go:build !windows

// Package colorterm implements the Terminal interface for the debugger. It
// uses ANSI colours to differentiate the output styles and switches the
// terminal into cbreak mode while the emulation is running, so that the ESC
// key stops the machine immediately.
package colorterm

import (
	"bufio"
	"io"
	"os"

	"github.com/nojan1/6502.ts/curated"
	"github.com/nojan1/6502.ts/debugger/terminal"
	"github.com/nojan1/6502.ts/debugger/terminal/colorterm/easyterm"
	"github.com/nojan1/6502.ts/debugger/terminal/colorterm/easyterm/ansi"
)

// StopCommand is returned by TermReadCheck() when the ESC key is pressed
// while in run mode.
const StopCommand = "STOP"

// ColorTerminal implements debugger UI interface with a basic ANSI terminal.
type ColorTerminal struct {
	easyterm.EasyTerm

	// bytes read by the reader goroutine. closed when input is exhausted
	bytes chan byte
	err   error

	// partial line built up in run mode
	pending []byte

	running bool
}

// Initialise implements the terminal.Terminal interface.
func (ct *ColorTerminal) Initialise() error {
	err := ct.EasyTerm.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return curated.Errorf("colorterm: %v", err)
	}

	ct.bytes = make(chan byte, 64)
	go ct.readBytes(os.Stdin)

	return nil
}

func (ct *ColorTerminal) readBytes(r io.Reader) {
	br := bufio.NewReader(r)
	for {
		b, err := br.ReadByte()
		if err != nil {
			if err != io.EOF {
				ct.err = err
			}
			close(ct.bytes)
			return
		}
		ct.bytes <- b
	}
}

// CleanUp implements the terminal.Terminal interface.
func (ct *ColorTerminal) CleanUp() {
	ct.EasyTerm.TermPrint(ansi.NormalPen)
	ct.EasyTerm.TermPrint("\r")
	_ = ct.Flush()
	ct.EasyTerm.CleanUp()
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// RunMode implements the terminal.Terminal interface.
func (ct *ColorTerminal) RunMode(running bool) {
	if running == ct.running {
		return
	}
	ct.running = running
	ct.pending = ct.pending[:0]

	if running {
		_ = ct.CBreakMode()
	} else {
		_ = ct.CanonicalMode()
	}
}

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt, events *terminal.ReadEvents) (string, error) {
	ct.EasyTerm.TermPrint(ansi.PenStyles["bold"])
	ct.EasyTerm.TermPrint(prompt.String())
	ct.EasyTerm.TermPrint(ansi.NormalPen)

	var signal chan os.Signal
	if events != nil {
		signal = events.Signal
	}

	line := make([]byte, 0, 80)
	for {
		select {
		case b, ok := <-ct.bytes:
			if !ok {
				if ct.err != nil {
					return "", ct.err
				}
				return "", io.EOF
			}
			switch b {
			case easyterm.KeyLineFeed:
				return string(line), nil
			case easyterm.KeyCarriageReturn:
			default:
				line = append(line, b)
			}
		case <-signal:
			ct.EasyTerm.TermPrint("\n")
			return "", curated.Errorf(terminal.UserInterrupt)
		}
	}
}

// TermReadCheck implements the terminal.Input interface. In cbreak mode input
// is not echoed by the terminal so printable characters are echoed here.
func (ct *ColorTerminal) TermReadCheck() (string, bool) {
	for {
		select {
		case b, ok := <-ct.bytes:
			if !ok {
				return "", false
			}
			switch b {
			case easyterm.KeyEsc:
				ct.pending = ct.pending[:0]
				return StopCommand, true
			case easyterm.KeyLineFeed, easyterm.KeyCarriageReturn:
				ct.EasyTerm.TermPrint("\n")
				l := string(ct.pending)
				ct.pending = ct.pending[:0]
				return l, true
			case easyterm.KeyBackspace, easyterm.KeyDelete:
				if len(ct.pending) > 0 {
					ct.pending = ct.pending[:len(ct.pending)-1]
					ct.EasyTerm.TermPrint("\b \b")
				}
			default:
				if b >= 32 && b < 127 {
					ct.pending = append(ct.pending, b)
					ct.EasyTerm.TermPrint(string(b))
				}
			}
		default:
			return "", false
		}
	}
}
