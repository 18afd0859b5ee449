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

package registers

import (
	"strings"
)

// Bit values of the flags in the status register.
const (
	FlagCarry     = 0x01
	FlagZero      = 0x02
	FlagInterrupt = 0x04
	FlagDecimal   = 0x08
	FlagBreak     = 0x10
	FlagEmulation = 0x20
	FlagOverflow  = 0x40
	FlagSign      = 0x80
)

// Status is the special purpose register that stores the flags of the CPU.
type Status struct {
	Sign             bool
	Overflow         bool
	Emulation        bool
	Break            bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// Label returns the canonical name for the status register.
func (sr Status) Label() string {
	return "SR"
}

func (sr Status) String() string {
	s := strings.Builder{}

	flag := func(set bool, r rune) {
		if set {
			s.WriteRune(r)
		} else {
			s.WriteRune(r + ('a' - 'A'))
		}
	}

	flag(sr.Sign, 'N')
	flag(sr.Overflow, 'V')
	flag(sr.Emulation, 'E')
	flag(sr.Break, 'B')
	flag(sr.DecimalMode, 'D')
	flag(sr.InterruptDisable, 'I')
	flag(sr.Zero, 'Z')
	flag(sr.Carry, 'C')

	return s.String()
}

// Reset status flags to the power-on state. The interrupt disable flag is
// set and the unused bit reads as one.
func (sr *Status) Reset() {
	sr.FromValue(FlagInterrupt | FlagEmulation)
}

// Value converts the status register into a value suitable for pushing onto
// the stack.
func (sr Status) Value() uint8 {
	var v uint8

	if sr.Sign {
		v |= FlagSign
	}
	if sr.Overflow {
		v |= FlagOverflow
	}
	if sr.Emulation {
		v |= FlagEmulation
	}
	if sr.Break {
		v |= FlagBreak
	}
	if sr.DecimalMode {
		v |= FlagDecimal
	}
	if sr.InterruptDisable {
		v |= FlagInterrupt
	}
	if sr.Zero {
		v |= FlagZero
	}
	if sr.Carry {
		v |= FlagCarry
	}

	return v
}

// FromValue converts an 8 bit integer (taken from the stack, for example) to
// the status register.
func (sr *Status) FromValue(v uint8) {
	sr.Sign = v&FlagSign == FlagSign
	sr.Overflow = v&FlagOverflow == FlagOverflow
	sr.Emulation = v&FlagEmulation == FlagEmulation
	sr.Break = v&FlagBreak == FlagBreak
	sr.DecimalMode = v&FlagDecimal == FlagDecimal
	sr.InterruptDisable = v&FlagInterrupt == FlagInterrupt
	sr.Zero = v&FlagZero == FlagZero
	sr.Carry = v&FlagCarry == FlagCarry
}

// SetNZ sets the sign and zero flags according to the value.
func (sr *Status) SetNZ(v uint8) {
	sr.Sign = v&0x80 == 0x80
	sr.Zero = v == 0
}
