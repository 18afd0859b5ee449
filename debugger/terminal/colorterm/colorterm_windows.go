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


package colorterm

import (
	"github.com/nojan1/6502.ts/curated"
	"github.com/nojan1/6502.ts/debugger/terminal"
)

// ColorTerminal is not available on Windows. Initialise() fails so that the
// caller can fall back to the plain terminal.
type ColorTerminal struct{}

// Initialise implements the terminal.Terminal interface.
func (ct *ColorTerminal) Initialise() error {
	return curated.Errorf("colorterm: not supported on windows")
}

// CleanUp implements the terminal.Terminal interface.
func (ct *ColorTerminal) CleanUp() {}

// RunMode implements the terminal.Terminal interface.
func (ct *ColorTerminal) RunMode(_ bool) {}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool { return false }

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(_ terminal.Style, _ string) {}

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(_ terminal.Prompt, _ *terminal.ReadEvents) (string, error) {
	return "", curated.Errorf("colorterm: not supported on windows")
}

// TermReadCheck implements the terminal.Input interface.
func (ct *ColorTerminal) TermReadCheck() (string, bool) { return "", false }
