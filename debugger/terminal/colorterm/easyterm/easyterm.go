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

// Package easyterm is a wrapper for "github.com/pkg/term/termios". It provides
// some features not present in the termios package, for example printing to
// the terminal and tracking the terminal width.
package easyterm

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/nojan1/6502.ts/curated"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// EasyTerm is the main container for posix terminals. Usually embedded in
// other struct types.
type EasyTerm struct {
	input  *os.File
	output *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios

	// sig/ack channels to control signal handler
	terminateSig chan bool
	terminateAck chan bool

	crit sync.Mutex
	cols int
}

// Initialise the fields in the EasyTerm struct.
func (et *EasyTerm) Initialise(inputFile, outputFile *os.File) error {
	if inputFile == nil {
		return curated.Errorf("easyterm: requires an input file")
	}
	if outputFile == nil {
		return curated.Errorf("easyterm: requires an output file")
	}

	et.input = inputFile
	et.output = outputFile

	if !term.IsTerminal(int(et.input.Fd())) {
		return curated.Errorf("easyterm: input is not a terminal")
	}

	// the cbreak attributes are derived from the canonical attributes so
	// that output processing is unchanged between modes
	if err := termios.Tcgetattr(et.input.Fd(), &et.canAttr); err != nil {
		return curated.Errorf("easyterm: %v", err)
	}
	et.cbreakAttr = et.canAttr
	termios.Cfmakecbreak(&et.cbreakAttr)

	_ = et.UpdateGeometry()

	et.terminateSig = make(chan bool)
	et.terminateAck = make(chan bool)

	go func() {
		sigwinch := make(chan os.Signal, 1)
		signal.Notify(sigwinch, syscall.SIGWINCH)
		defer func() {
			signal.Stop(sigwinch)
			et.terminateAck <- true
		}()

		for {
			select {
			case <-sigwinch:
				_ = et.UpdateGeometry()
			case <-et.terminateSig:
				return
			}
		}
	}()

	return nil
}

// CleanUp closes resources created in the Initialise() function and returns
// the terminal to canonical mode.
func (et *EasyTerm) CleanUp() {
	if et.terminateSig == nil {
		return
	}
	_ = et.CanonicalMode()
	et.terminateSig <- true
	<-et.terminateAck
	et.terminateSig = nil
}

// UpdateGeometry queries the width of the output terminal.
func (et *EasyTerm) UpdateGeometry() error {
	w, _, err := term.GetSize(int(et.output.Fd()))
	if err != nil {
		return curated.Errorf("easyterm: %v", err)
	}
	et.crit.Lock()
	et.cols = w
	et.crit.Unlock()
	return nil
}

// Columns returns the most recently measured width of the terminal.
func (et *EasyTerm) Columns() int {
	et.crit.Lock()
	defer et.crit.Unlock()
	return et.cols
}

// TermPrint writes the string to the output terminal.
func (et *EasyTerm) TermPrint(s string) {
	et.output.WriteString(s)
}

// CanonicalMode puts the terminal into normal line-buffered mode with echo.
func (et *EasyTerm) CanonicalMode() error {
	return termios.Tcsetattr(et.input.Fd(), termios.TCSANOW, &et.canAttr)
}

// CBreakMode puts the terminal into cbreak mode. Key presses are available
// immediately and are not echoed. Signals are still generated.
func (et *EasyTerm) CBreakMode() error {
	return termios.Tcsetattr(et.input.Fd(), termios.TCSANOW, &et.cbreakAttr)
}

// Flush makes sure the terminal's input buffer is empty.
func (et *EasyTerm) Flush() error {
	return termios.Tcflush(et.input.Fd(), termios.TCIFLUSH)
}
