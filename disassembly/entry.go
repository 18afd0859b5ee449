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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/nojan1/6502.ts/hardware/cpu/instructions"
	"github.com/nojan1/6502.ts/hardware/memory/addresses"
	"github.com/nojan1/6502.ts/hardware/memory/memorymap"
)

// EntryLevel describes the level of the Entry.
type EntryLevel int

// List of valid EntryLevel in increasing reliability.
//
// Decoded entries have been decoded as though every byte is a valid
// instruction. Blessed entries meanwhile have been reached by following the
// flow of the program from the CPU vectors.
const (
	EntryLevelDecoded EntryLevel = iota
	EntryLevelBlessed
)

func (l EntryLevel) String() string {
	switch l {
	case EntryLevelDecoded:
		return "decoded"
	case EntryLevelBlessed:
		return "blessed"
	}
	return ""
}

// Entry is a disassembled instruction.
type Entry struct {
	// the bank this entry belongs to
	Bank int

	// the level of reliability of the information in the Entry
	Level EntryLevel

	Address  uint16
	Bytecode []uint8
	Defn     instructions.Instruction

	// string representations of the instruction
	Operator string
	Operand  string
}

// String returns the entry without bytecode.
func (e Entry) String() string {
	if e.Operand == "" {
		return fmt.Sprintf("%04x  %s", e.Address, e.Operator)
	}
	return fmt.Sprintf("%04x  %s %s", e.Address, e.Operator, e.Operand)
}

// BytecodeString returns the bytes of the instruction as a string of
// hexadecimal pairs.
func (e Entry) BytecodeString() string {
	s := make([]string, len(e.Bytecode))
	for i, b := range e.Bytecode {
		s[i] = fmt.Sprintf("%02x", b)
	}
	return strings.Join(s, " ")
}

// operandValue returns the value of the operand bytes.
func (e Entry) operandValue() uint16 {
	switch len(e.Bytecode) {
	case 2:
		return uint16(e.Bytecode[1])
	case 3:
		return uint16(e.Bytecode[1]) | uint16(e.Bytecode[2])<<8
	}
	return 0
}

// Target returns the address the instruction transfers control to and
// whether the instruction has such a target. Indirect jumps have no target
// because the target is not known until execution.
func (e Entry) Target() (uint16, bool) {
	switch e.Defn.Operation {
	case instructions.JMP:
		if e.Defn.AddressingMode == instructions.Absolute {
			return e.operandValue(), true
		}
		return 0, false
	case instructions.JSR:
		return e.operandValue(), true
	}
	if e.Defn.IsBranch() {
		return branchTarget(e.Address, uint8(e.operandValue())), true
	}
	return 0, false
}

// Terminal returns true if execution never continues with the following
// instruction.
func (e Entry) Terminal() bool {
	if !e.Defn.IsValid() {
		return true
	}
	switch e.Defn.Operation {
	case instructions.JMP, instructions.RTS, instructions.RTI, instructions.BRK:
		return true
	}
	return false
}

func branchTarget(address uint16, offset uint8) uint16 {
	return address + 2 + uint16(int16(int8(offset)))
}

// symbol returns the canonical name of the address if the instruction
// accesses a chip register.
func symbol(defn instructions.Instruction, address uint16) (string, bool) {
	mapped, area := memorymap.MapAddress(address, defn.Operation.Effect() != instructions.Write)
	if area != memorymap.TIA && area != memorymap.RIOT {
		return "", false
	}
	return addresses.Symbol(mapped, defn.Operation.Effect() != instructions.Write)
}

// formatOperand creates the operand string for the instruction.
func formatOperand(defn instructions.Instruction, address uint16, value uint16) string {
	addr := func(width int) string {
		if s, ok := symbol(defn, value); ok {
			return s
		}
		if width == 1 {
			return fmt.Sprintf("$%02x", value)
		}
		return fmt.Sprintf("$%04x", value)
	}

	switch defn.AddressingMode {
	case instructions.Immediate:
		return fmt.Sprintf("#$%02x", value)
	case instructions.Relative:
		return fmt.Sprintf("$%04x", branchTarget(address, uint8(value)))
	case instructions.ZeroPage:
		return addr(1)
	case instructions.ZeroPageX:
		return fmt.Sprintf("%s,X", addr(1))
	case instructions.ZeroPageY:
		return fmt.Sprintf("%s,Y", addr(1))
	case instructions.Absolute:
		return addr(2)
	case instructions.AbsoluteX:
		return fmt.Sprintf("%s,X", addr(2))
	case instructions.AbsoluteY:
		return fmt.Sprintf("%s,Y", addr(2))
	case instructions.Indirect:
		return fmt.Sprintf("($%04x)", value)
	case instructions.IndexedIndirectX:
		if defn.Bytes() == 3 {
			return fmt.Sprintf("($%04x,X)", value)
		}
		return fmt.Sprintf("($%02x,X)", value)
	case instructions.IndirectIndexedY:
		return fmt.Sprintf("($%02x),Y", value)
	}

	// JSR is decoded as an implied instruction
	if defn.Effective() == instructions.Absolute {
		return fmt.Sprintf("$%04x", value)
	}

	return ""
}
