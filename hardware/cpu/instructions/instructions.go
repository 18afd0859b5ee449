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

import "fmt"

// Instruction is the definition of a single opcode. Instructions are
// immutable once they have been placed in the Resolver table.
type Instruction struct {
	Operation      Operation
	AddressingMode AddressingMode

	// the addressing mode used when the operand is accessed, if it differs
	// from the nominal addressing mode. JSR for example is decoded as an
	// implied instruction but the operand is read as an absolute address
	EffectiveAddressingMode AddressingMode
}

func (ins Instruction) String() string {
	if ins.AddressingMode == Invalid {
		return "invalid instruction"
	}
	return fmt.Sprintf("%s [%s]", ins.Operation, ins.AddressingMode)
}

// Effective returns the addressing mode that describes how the operand is
// accessed.
func (ins Instruction) Effective() AddressingMode {
	if ins.EffectiveAddressingMode == Invalid {
		return ins.AddressingMode
	}
	return ins.EffectiveAddressingMode
}

// IsValid returns false if the opcode has no definition.
func (ins Instruction) IsValid() bool {
	return ins.AddressingMode != Invalid
}

// Bytes returns the length of the instruction in memory, including the
// opcode.
func (ins Instruction) Bytes() int {
	if ins.AddressingMode == Invalid {
		return 1
	}

	// the 65C02 JMP (abs,X) instruction takes a 16bit pointer
	if ins.Operation == JMP && ins.AddressingMode == IndexedIndirectX {
		return 3
	}

	return 1 + ins.Effective().OperandBytes()
}

// IsBranch returns true if instruction is a branch instruction.
func (ins Instruction) IsBranch() bool {
	return ins.AddressingMode == Relative
}
