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

	"github.com/nojan1/6502.ts/hardware/cpu/execution"
	"github.com/nojan1/6502.ts/hardware/cpu/instructions"
)

// Peeker is implemented by memory that can be read without side effects.
type Peeker interface {
	Peek(address uint16) (uint8, error)
}

// Decode the instruction at address. An error is returned if the memory
// cannot be peeked.
func Decode(resolver *instructions.Resolver, mem Peeker, address uint16) (Entry, error) {
	opcode, err := mem.Peek(address)
	if err != nil {
		return Entry{}, err
	}

	defn := resolver.Resolve(opcode)

	e := Entry{
		Address:  address,
		Defn:     defn,
		Bytecode: make([]uint8, defn.Bytes()),
		Operator: defn.Operation.String(),
	}
	e.Bytecode[0] = opcode

	for i := 1; i < len(e.Bytecode); i++ {
		e.Bytecode[i], err = mem.Peek(address + uint16(i))
		if err != nil {
			return Entry{}, err
		}
	}

	if defn.IsValid() {
		e.Operand = formatOperand(defn, address, e.operandValue())
	} else {
		e.Operand = fmt.Sprintf("$%02x", opcode)
	}

	return e, nil
}

// Range decodes count instructions starting at address. Decoding continues
// with the address following each instruction regardless of flow.
func Range(resolver *instructions.Resolver, mem Peeker, address uint16, count int) ([]Entry, error) {
	entries := make([]Entry, 0, count)
	for range count {
		e, err := Decode(resolver, mem, address)
		if err != nil {
			return entries, err
		}
		entries = append(entries, e)
		address += uint16(len(e.Bytecode))
	}
	return entries, nil
}

// FormatResult returns the string representation of a CPU execution result.
// Interrupt sequences are described by name.
func FormatResult(result execution.Result) string {
	if result.Interrupt != execution.NoInterrupt {
		return fmt.Sprintf("%04x  %s sequence", result.Address, result.Interrupt)
	}

	if !result.Defn.IsValid() {
		return fmt.Sprintf("%04x  ??? $%02x", result.Address, result.Opcode)
	}

	operand := formatOperand(result.Defn, result.Address, result.InstructionData)
	if operand == "" {
		return fmt.Sprintf("%04x  %s", result.Address, result.Defn.Operation)
	}
	return fmt.Sprintf("%04x  %s %s", result.Address, result.Defn.Operation, operand)
}
