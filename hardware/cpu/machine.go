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

package cpu

import (
	"github.com/nojan1/6502.ts/hardware/cpu/execution"
	"github.com/nojan1/6502.ts/hardware/cpu/instructions"
	"github.com/nojan1/6502.ts/hardware/cpu/registers"
)

// phase of the instruction state machine.
type phase int

const (
	// the next cycle reads an opcode (or begins an interrupt sequence)
	phaseFetch phase = iota

	// resolving the effective address of the operand
	phaseAddress

	// reading, writing or modifying the effective address
	phaseAccess

	// fixed bus sequences: implied, stack, flow, subroutine and interrupt
	phaseSequence
)

// machine is the state of the current instruction. a new machine value is
// created for every instruction. the step field counts the cycles spent in
// the current phase.
type machine struct {
	phase phase
	step  int

	defn instructions.Instruction
	mode instructions.AddressingMode

	// non-zero if the machine is running an interrupt or reset sequence
	interrupt execution.Interrupt

	// the effective address and the address before indexing
	address uint16
	base    uint16

	// address of the indirect pointer for indirect addressing modes
	pointer uint16

	operand uint8

	// the effective address was formed by adding an index register to a
	// 16bit base. the first access is made before the high byte is corrected
	indexed   bool
	pageCross bool

	// the operand is at the PC
	immediate bool
}

// compile prepares the state machine for the instruction. called during the
// opcode fetch cycle.
func (mc *CPU) compile(defn instructions.Instruction) {
	mc.sm = machine{
		defn: defn,
		mode: defn.Effective(),
	}

	switch {
	case defn.Operation == instructions.JMP:
		mc.sm.phase = phaseSequence
	case defn.Operation.Effect() == instructions.Subroutine,
		defn.Operation.Effect() == instructions.Interrupt,
		defn.Operation.Effect() == instructions.Push,
		defn.Operation.Effect() == instructions.Pull:
		mc.sm.phase = phaseSequence
	case mc.sm.mode == instructions.Implied, mc.sm.mode == instructions.Relative:
		mc.sm.phase = phaseSequence
	case mc.sm.mode == instructions.Immediate:
		mc.sm.phase = phaseAccess
		mc.sm.immediate = true
	default:
		mc.sm.phase = phaseAddress
	}
}

// finish the current instruction. the next cycle will be an opcode fetch.
func (mc *CPU) finish() {
	mc.LastResult.Final = true
	mc.sm = machine{}
}

func (mc *CPU) toAccess() {
	mc.sm.phase = phaseAccess
	mc.sm.step = 0
}

// index the base address, noting whether the high byte has changed.
func (mc *CPU) index(base uint16, idx registers.Register) {
	mc.sm.base = base
	mc.sm.address = base + idx.Address()
	mc.sm.pageCross = base&0xff00 != mc.sm.address&0xff00
	mc.sm.indexed = true
}

// addressing performs one cycle of effective address resolution.
func (mc *CPU) addressing() {
	step := mc.sm.step
	mc.sm.step++

	switch mc.sm.mode {
	case instructions.ZeroPage:
		mc.sm.address = uint16(mc.readPC())
		mc.toAccess()

	case instructions.ZeroPageX, instructions.ZeroPageY:
		switch step {
		case 0:
			mc.sm.base = uint16(mc.readPC())
		case 1:
			// the unindexed zero page address is read while the index is
			// being added
			_ = mc.read(mc.sm.base)
			idx := mc.X
			if mc.sm.mode == instructions.ZeroPageY {
				idx = mc.Y
			}
			// indexing does not leave the zero page
			mc.sm.address = (mc.sm.base + idx.Address()) & 0x00ff
			mc.toAccess()
		}

	case instructions.Absolute:
		switch step {
		case 0:
			mc.sm.address = uint16(mc.readPC())
		case 1:
			mc.sm.address |= uint16(mc.readPC()) << 8
			mc.toAccess()
		}

	case instructions.AbsoluteX, instructions.AbsoluteY:
		switch step {
		case 0:
			mc.sm.base = uint16(mc.readPC())
		case 1:
			base := mc.sm.base | uint16(mc.readPC())<<8
			if mc.sm.mode == instructions.AbsoluteX {
				mc.index(base, mc.X)
			} else {
				mc.index(base, mc.Y)
			}
			mc.toAccess()
		}

	case instructions.IndexedIndirectX:
		switch step {
		case 0:
			mc.sm.pointer = uint16(mc.readPC())
		case 1:
			_ = mc.read(mc.sm.pointer)
			mc.sm.pointer = (mc.sm.pointer + mc.X.Address()) & 0x00ff
		case 2:
			mc.sm.address = uint16(mc.read(mc.sm.pointer))
		case 3:
			// the pointer does not leave the zero page
			mc.sm.address |= uint16(mc.read((mc.sm.pointer+1)&0x00ff)) << 8
			mc.toAccess()
		}

	case instructions.IndirectIndexedY:
		switch step {
		case 0:
			mc.sm.pointer = uint16(mc.readPC())
		case 1:
			mc.sm.base = uint16(mc.read(mc.sm.pointer))
		case 2:
			base := mc.sm.base | uint16(mc.read((mc.sm.pointer+1)&0x00ff))<<8
			mc.index(base, mc.Y)
			mc.toAccess()
		}
	}
}

// access performs one cycle of the read, write or read-modify-write of the
// effective address.
func (mc *CPU) access() {
	step := mc.sm.step
	mc.sm.step++

	op := mc.sm.defn.Operation
	effect := op.Effect()

	if mc.sm.indexed {
		if step == 0 {
			// the first access is to the address with an uncorrected high
			// byte. for read instructions, if there was no page crossing,
			// then this is the correct address and the instruction
			// completes
			uncorrected := (mc.sm.base & 0xff00) | (mc.sm.address & 0x00ff)
			v := mc.read(uncorrected)
			if effect == instructions.Read {
				if !mc.sm.pageCross {
					mc.executeRead(op, v)
					mc.finish()
					return
				}
				mc.LastResult.PageFault = true
			}
			return
		}
		step--
	}

	switch effect {
	case instructions.Write:
		mc.write(mc.sm.address, mc.writeValue(op))
		mc.finish()

	case instructions.RMW:
		switch step {
		case 0:
			mc.sm.operand = mc.read(mc.sm.address)
		case 1:
			// the unmodified value is written back while the modification
			// takes place
			mc.write(mc.sm.address, mc.sm.operand)
		case 2:
			mc.write(mc.sm.address, mc.modify(op, mc.sm.operand))
			mc.finish()
		}

	default:
		var v uint8
		if mc.sm.immediate {
			v = mc.readPC()
		} else {
			v = mc.read(mc.sm.address)
		}
		mc.executeRead(op, v)
		mc.finish()
	}
}

// sequence performs one cycle of an instruction with a fixed bus sequence.
func (mc *CPU) sequence() {
	step := mc.sm.step
	mc.sm.step++

	if mc.sm.interrupt != execution.NoInterrupt {
		mc.interruptSequence(step)
		return
	}

	op := mc.sm.defn.Operation

	switch op {
	case instructions.JMP:
		mc.jmp(step)
		return
	case instructions.JSR:
		mc.jsr(step)
		return
	case instructions.RTS:
		mc.rts(step)
		return
	case instructions.RTI:
		mc.rti(step)
		return
	case instructions.BRK:
		mc.brk(step)
		return
	}

	if mc.sm.mode == instructions.Relative {
		mc.branch(step)
		return
	}

	switch op.Effect() {
	case instructions.Push:
		switch step {
		case 0:
			_ = mc.read(mc.PC.Address())
		case 1:
			mc.push(mc.pushValue(op))
			mc.finish()
		}

	case instructions.Pull:
		switch step {
		case 0:
			_ = mc.read(mc.PC.Address())
		case 1:
			_ = mc.read(mc.stack())
			mc.SP.Load(mc.SP.Value() + 1)
		case 2:
			mc.pullValue(op, mc.read(mc.stack()))
			mc.finish()
		}

	default:
		// implied instructions read the byte after the opcode but do not
		// advance the PC
		_ = mc.read(mc.PC.Address())
		mc.executeImplied(op)
		mc.finish()
	}
}

// interrupt, NMI and reset sequences. the reset sequence performs reads
// rather than writes on the stack.
func (mc *CPU) interruptSequence(step int) {
	reset := mc.sm.interrupt == execution.Reset

	switch step {
	case 0, 1:
		_ = mc.read(mc.PC.Address())
	case 2:
		if reset {
			_ = mc.read(mc.stack())
			mc.SP.Load(mc.SP.Value() - 1)
		} else {
			mc.push(mc.PC.Hi())
		}
	case 3:
		if reset {
			_ = mc.read(mc.stack())
			mc.SP.Load(mc.SP.Value() - 1)
		} else {
			mc.push(mc.PC.Lo())
		}
	case 4:
		if reset {
			_ = mc.read(mc.stack())
			mc.SP.Load(mc.SP.Value() - 1)
		} else {
			// the break flag is clear for hardware interrupts
			mc.push((mc.Status.Value() | registers.FlagEmulation) &^ registers.FlagBreak)
		}
		mc.Status.InterruptDisable = true
	case 5:
		mc.sm.address = uint16(mc.read(mc.vector(mc.sm.interrupt)))
	case 6:
		mc.sm.address |= uint16(mc.read(mc.vector(mc.sm.interrupt)+1)) << 8
		mc.PC.Load(mc.sm.address)
		mc.finish()
	}
}

func (mc *CPU) jmp(step int) {
	switch mc.sm.defn.AddressingMode {
	case instructions.Absolute:
		switch step {
		case 0:
			mc.sm.address = uint16(mc.readPC())
		case 1:
			mc.sm.address |= uint16(mc.readPC()) << 8
			mc.PC.Load(mc.sm.address)
			mc.finish()
		}

	case instructions.Indirect:
		switch step {
		case 0:
			mc.sm.pointer = uint16(mc.readPC())
		case 1:
			mc.sm.pointer |= uint16(mc.readPC()) << 8
		case 2:
			mc.sm.address = uint16(mc.read(mc.sm.pointer))
		case 3:
			// the high byte of the pointer is not incremented if the low
			// byte overflows
			hi := (mc.sm.pointer & 0xff00) | ((mc.sm.pointer + 1) & 0x00ff)
			mc.sm.address |= uint16(mc.read(hi)) << 8
			mc.PC.Load(mc.sm.address)
			mc.finish()
		}

	case instructions.IndexedIndirectX:
		switch step {
		case 0:
			mc.sm.pointer = uint16(mc.readPC())
		case 1:
			mc.sm.pointer |= uint16(mc.readPC()) << 8
		case 2:
			// X is added to the full 16bit pointer
			_ = mc.read(mc.PC.Address() - 1)
			mc.sm.pointer += mc.X.Address()
		case 3:
			mc.sm.address = uint16(mc.read(mc.sm.pointer))
		case 4:
			mc.sm.address |= uint16(mc.read(mc.sm.pointer+1)) << 8
			mc.PC.Load(mc.sm.address)
			mc.finish()
		}
	}
}

func (mc *CPU) jsr(step int) {
	switch step {
	case 0:
		mc.sm.address = uint16(mc.readPC())
	case 1:
		_ = mc.read(mc.stack())
	case 2:
		mc.push(mc.PC.Hi())
	case 3:
		mc.push(mc.PC.Lo())
	case 4:
		mc.sm.address |= uint16(mc.readPC()) << 8
		mc.PC.Load(mc.sm.address)
		mc.finish()
	}
}

func (mc *CPU) rts(step int) {
	switch step {
	case 0:
		_ = mc.read(mc.PC.Address())
	case 1:
		_ = mc.read(mc.stack())
		mc.SP.Load(mc.SP.Value() + 1)
	case 2:
		mc.sm.address = uint16(mc.read(mc.stack()))
		mc.SP.Load(mc.SP.Value() + 1)
	case 3:
		mc.sm.address |= uint16(mc.read(mc.stack())) << 8
		mc.PC.Load(mc.sm.address)
	case 4:
		_ = mc.read(mc.PC.Address())
		mc.PC.Increment()
		mc.finish()
	}
}

func (mc *CPU) rti(step int) {
	switch step {
	case 0:
		_ = mc.read(mc.PC.Address())
	case 1:
		_ = mc.read(mc.stack())
		mc.SP.Load(mc.SP.Value() + 1)
	case 2:
		mc.pullStatus(mc.read(mc.stack()))
		mc.SP.Load(mc.SP.Value() + 1)
	case 3:
		mc.sm.address = uint16(mc.read(mc.stack()))
		mc.SP.Load(mc.SP.Value() + 1)
	case 4:
		mc.sm.address |= uint16(mc.read(mc.stack())) << 8
		mc.PC.Load(mc.sm.address)
		mc.finish()
	}
}

func (mc *CPU) brk(step int) {
	switch step {
	case 0:
		// the byte after BRK is read and skipped but is not part of the
		// instruction
		_ = mc.read(mc.PC.Address())
		mc.PC.Increment()
	case 1:
		mc.push(mc.PC.Hi())
	case 2:
		mc.push(mc.PC.Lo())
	case 3:
		mc.push(mc.Status.Value() | registers.FlagBreak | registers.FlagEmulation)
		mc.Status.InterruptDisable = true
	case 4:
		mc.sm.address = uint16(mc.read(mc.vector(execution.IRQ)))
	case 5:
		mc.sm.address |= uint16(mc.read(mc.vector(execution.IRQ)+1)) << 8
		mc.PC.Load(mc.sm.address)
		mc.finish()
	}
}

func (mc *CPU) branch(step int) {
	switch step {
	case 0:
		mc.sm.operand = mc.readPC()
		if !mc.branchCondition(mc.sm.defn.Operation) {
			mc.finish()
		}
	case 1:
		_ = mc.read(mc.PC.Address())
		mc.LastResult.BranchTaken = true

		mc.sm.address = mc.PC.Address() + uint16(int16(int8(mc.sm.operand)))
		if mc.sm.address&0xff00 == mc.PC.Address()&0xff00 {
			mc.PC.Load(mc.sm.address)
			mc.finish()
			return
		}

		// the low byte is updated first. the high byte is corrected on the
		// next cycle
		mc.PC.LoadLo(uint8(mc.sm.address))
	case 2:
		_ = mc.read(mc.PC.Address())
		mc.PC.Load(mc.sm.address)
		mc.LastResult.PageFault = true
		mc.finish()
	}
}
