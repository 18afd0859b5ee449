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

package instructions

// AddressingMode describes the method data for the instruction should be received.
type AddressingMode int

// List of supported addressing modes.
const (
	Invalid AddressingMode = iota
	Implied
	Immediate
	Relative // relative addressing is used for branch instructions

	ZeroPage  // zpg
	ZeroPageX // zpg,X
	ZeroPageY // zpg,Y

	Absolute  // abs
	AbsoluteX // abs,X
	AbsoluteY // abs,Y

	Indirect // (ind)

	IndexedIndirectX // (ind,X)
	IndirectIndexedY // (ind),Y
)

func (m AddressingMode) String() string {
	switch m {
	case Invalid:
		return "Invalid"
	case Implied:
		return "Implied"
	case Immediate:
		return "Immediate"
	case Relative:
		return "Relative"
	case ZeroPage:
		return "ZeroPage"
	case ZeroPageX:
		return "ZeroPageX"
	case ZeroPageY:
		return "ZeroPageY"
	case Absolute:
		return "Absolute"
	case AbsoluteX:
		return "AbsoluteX"
	case AbsoluteY:
		return "AbsoluteY"
	case Indirect:
		return "Indirect"
	case IndexedIndirectX:
		return "IndexedIndirectX"
	case IndirectIndexedY:
		return "IndirectIndexedY"
	}
	return "unknown addressing mode"
}

// OperandBytes returns the number of bytes that follow the opcode.
func (m AddressingMode) OperandBytes() int {
	switch m {
	case Immediate, Relative, ZeroPage, ZeroPageX, ZeroPageY, IndexedIndirectX, IndirectIndexedY:
		return 1
	case Absolute, AbsoluteX, AbsoluteY, Indirect:
		return 2
	}
	return 0
}
