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

package addresses

// TIADriven is the mask of the data bits that are driven by the TIA for each
// of the sixteen read registers. The undriven bits are left over from the
// last value on the data bus (or random if the RandomPins preference is set).
//
// For example, if the CPU reads CXM1P with LDA $11 and there is a collision
// between missile 1 and player 0, the driven bits are 0b01000000 and the
// undriven bits are taken from the last byte on the bus, which is the 0x11
// operand. The value loaded into the accumulator is therefore 0x51.
var TIADriven = [16]uint8{
	0b11000000, // CXM0P
	0b11000000, // CXM1P
	0b11000000, // CXP0FB
	0b11000000, // CXP1FB
	0b11000000, // CXM0FB
	0b11000000, // CXM1FB
	0b10000000, // CXBLPF
	0b11000000, // CXPPMM
	0b10000000, // INPT0
	0b10000000, // INPT1
	0b10000000, // INPT2
	0b10000000, // INPT3
	0b10000000, // INPT4
	0b10000000, // INPT5
	0b00000000,
	0b00000000,
}
