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

package govern

// State indicates the emulation's state.
type State int

// List of possible emulation states.
//
// Setup is the state before a cartridge has been loaded. Running can be
// interrupted by the user and returns to Debug. Ending stops any loop that
// is driven by a continue check.
const (
	Setup State = iota
	Debug
	Running
	Ending
)

func (s State) String() string {
	switch s {
	case Setup:
		return "setup"
	case Debug:
		return "debug"
	case Running:
		return "run"
	case Ending:
		return "ending"
	}

	return ""
}

// Mode indicates the broad condition of the emulation.
type Mode int

// List of defined modes.
const (
	ModeDebugger Mode = iota
	ModeRun
	ModeDisasm
)

func (m Mode) String() string {
	switch m {
	case ModeDebugger:
		return "DEBUG"
	case ModeRun:
		return "RUN"
	case ModeDisasm:
		return "DISASM"
	}

	return ""
}

// ModeFromString returns the Mode for a case sensitive name as used on the
// command line.
func ModeFromString(s string) (Mode, bool) {
	for _, m := range []Mode{ModeDebugger, ModeRun, ModeDisasm} {
		if m.String() == s {
			return m, true
		}
	}
	return ModeDebugger, false
}
