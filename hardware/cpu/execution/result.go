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

package execution

import (
	"fmt"

	"github.com/nojan1/6502.ts/curated"
	"github.com/nojan1/6502.ts/hardware/cpu/instructions"
)

// Interrupt identifies the interrupt sequence that a Result represents.
type Interrupt int

// List of interrupt sequences. The BRK instruction is not included because it
// is a normal instruction with a definition.
const (
	NoInterrupt Interrupt = iota
	IRQ
	NMI
	Reset
)

func (i Interrupt) String() string {
	switch i {
	case IRQ:
		return "IRQ"
	case NMI:
		return "NMI"
	case Reset:
		return "RESET"
	}
	return ""
}

// Result records the state/result of each instruction executed on the CPU.
// Including the address it was read from, a reference to the instruction
// definition, and other execution details.
//
// The Result type is updated every cycle during the execution of the
// instruction. Final is set once the instruction is complete.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// the opcode and its definition
	Opcode uint8
	Defn   instructions.Instruction

	// the number of bytes read during instruction decode
	ByteCount int

	// the operand of the instruction, if it has one
	InstructionData uint16

	// the actual number of cycles taken by the instruction
	Cycles int

	// whether an extra cycle was required because an indexed address crossed
	// a page boundary
	PageFault bool

	// whether a branch instruction took the branch
	BranchTaken bool

	// the interrupt sequence represented by the result, if any
	Interrupt Interrupt

	// whether this data has been finalised
	Final bool
}

func (r Result) String() string {
	if r.Interrupt != NoInterrupt {
		return fmt.Sprintf("%04x %s sequence (%d cycles)", r.Address, r.Interrupt, r.Cycles)
	}
	return fmt.Sprintf("%04x %02x %s (%d cycles)", r.Address, r.Opcode, r.Defn, r.Cycles)
}

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf("cpu: execution not finalised (bad opcode?)")
	}

	if r.Interrupt != NoInterrupt {
		if r.Cycles != 7 {
			return curated.Errorf("cpu: number of cycles wrong for %s sequence (%d instead of 7)", r.Interrupt, r.Cycles)
		}
		return nil
	}

	if r.ByteCount != r.Defn.Bytes() {
		return curated.Errorf("cpu: unexpected number of bytes read during decode (%d instead of %d)", r.ByteCount, r.Defn.Bytes())
	}

	cycles, pageSensitive := r.Defn.Cycles()

	if !pageSensitive && r.PageFault && !r.Defn.IsBranch() {
		return curated.Errorf("cpu: unexpected page fault")
	}

	expected := cycles
	if r.PageFault {
		expected++
	}
	if r.BranchTaken {
		expected++
	}

	if r.Cycles != expected {
		return curated.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
			r.Opcode, r.Defn.Operation, r.Cycles, expected)
	}

	return nil
}
