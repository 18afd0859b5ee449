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


package terminal

import (
	"os"
)

// Sentinal error patterns returned by TermRead().
const (
	UserInterrupt = "user interrupt"
)

// ReadEvents are the channels checked by TermRead() while waiting for input.
type ReadEvents struct {
	// interrupt signals from the operating system
	Signal chan os.Signal
}

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns the next line of input without the trailing newline.
	// It returns io.EOF when the input has been exhausted and an error with
	// the UserInterrupt pattern if a signal was received.
	TermRead(prompt Prompt, events *ReadEvents) (string, error)

	// TermReadCheck returns a line of input if one is ready. It never blocks.
	TermReadCheck() (string, bool)

	// IsInteractive should return true for implementations that require user
	// interaction.
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal implementations also implement the Input and Output interfaces.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all terminal implementations will need to
	// do anything.
	Initialise() error

	// Restore the terminal to its original state, if possible.
	CleanUp()

	// RunMode is called when the emulation starts or stops running. A
	// terminal that can read single key presses should switch to doing so
	// while running.
	RunMode(running bool)
}

// Style is used to identify the category of text being sent to the
// Terminal.TermPrintLine() function. Terminal implementations can use this to
// decide how to present the text.
type Style int

// List of terminal styles.
const (
	// input from the user being echoed back. interactive terminals
	// probably don't need to print this.
	StyleEcho Style = iota

	// information from the emulation.
	StyleFeedback

	// help messages.
	StyleHelp

	// CPU state and disassembly.
	StyleCPU

	// entries from the central log.
	StyleLog

	// errors and traps.
	StyleError
)
