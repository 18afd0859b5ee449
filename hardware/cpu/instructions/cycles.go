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

// Cycles returns the number of cycles the instruction takes to execute and
// whether an additional cycle is required when an indexed address crosses a
// page boundary. Branch instructions take one extra cycle when the branch is
// taken and another if the branch crosses a page; this is not indicated by
// the return values.
func (ins Instruction) Cycles() (cycles int, pageSensitive bool) {
	switch ins.Operation {
	case JSR, RTS, RTI:
		return 6, false
	case BRK:
		return 7, false
	case PHA, PHP, PHX, PHY:
		return 3, false
	case PLA, PLP, PLX, PLY:
		return 4, false
	case JMP:
		switch ins.AddressingMode {
		case Absolute:
			return 3, false
		case Indirect:
			return 5, false
		case IndexedIndirectX:
			return 6, false
		}
	}

	mode := ins.Effective()

	switch mode {
	case Invalid:
		return 0, false
	case Implied, Immediate, Relative:
		return 2, false
	}

	switch ins.Operation.Effect() {
	case Write:
		switch mode {
		case ZeroPage:
			return 3, false
		case ZeroPageX, ZeroPageY, Absolute:
			return 4, false
		case AbsoluteX, AbsoluteY:
			return 5, false
		case IndexedIndirectX, IndirectIndexedY:
			return 6, false
		}
	case RMW:
		switch mode {
		case ZeroPage:
			return 5, false
		case ZeroPageX, ZeroPageY, Absolute:
			return 6, false
		case AbsoluteX, AbsoluteY:
			return 7, false
		case IndexedIndirectX, IndirectIndexedY:
			return 8, false
		}
	}

	switch mode {
	case ZeroPage:
		return 3, false
	case ZeroPageX, ZeroPageY, Absolute:
		return 4, false
	case AbsoluteX, AbsoluteY:
		return 4, true
	case IndexedIndirectX:
		return 6, false
	case IndirectIndexedY:
		return 5, true
	}

	return 0, false
}
