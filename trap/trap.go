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

// Package trap defines the terminal conditions that can be raised by the
// emulated hardware. A Trap is an error and is returned by the component
// that raised it. The driving loop decides whether to halt, reset or
// continue.
package trap

import (
	"errors"
	"fmt"
)

// Source is the hardware component that raised the trap.
type Source int

// List of trap sources.
const (
	CPU Source = iota
	TIA
	PIA
	Cartridge
)

func (s Source) String() string {
	switch s {
	case CPU:
		return "CPU"
	case TIA:
		return "TIA"
	case PIA:
		return "PIA"
	case Cartridge:
		return "Cartridge"
	}
	return "unknown source"
}

// Reason for the trap.
type Reason int

// List of trap reasons.
const (
	InvalidOpcode Reason = iota
	InvalidRead
	InvalidWrite
)

func (r Reason) String() string {
	switch r {
	case InvalidOpcode:
		return "invalid opcode"
	case InvalidRead:
		return "invalid read"
	case InvalidWrite:
		return "invalid write"
	}
	return "unknown reason"
}

// Trap is raised by the hardware when it encounters a condition that it
// cannot handle.
type Trap struct {
	Source  Source
	Reason  Reason
	Address uint16
	Message string
}

// New is the preferred method of initialisation for the Trap type.
func New(source Source, reason Reason, address uint16, format string, args ...interface{}) Trap {
	return Trap{
		Source:  source,
		Reason:  reason,
		Address: address,
		Message: fmt.Sprintf(format, args...),
	}
}

// Error implements the error interface.
func (t Trap) Error() string {
	if t.Message == "" {
		return fmt.Sprintf("%s trap: %s at %#04x", t.Source, t.Reason, t.Address)
	}
	return fmt.Sprintf("%s trap: %s", t.Source, t.Message)
}

// As returns the Trap contained in err, if there is one.
func As(err error) (Trap, bool) {
	var t Trap
	if errors.As(err, &t) {
		return t, true
	}
	return Trap{}, false
}
