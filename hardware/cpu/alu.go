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
	"github.com/nojan1/6502.ts/hardware/cpu/instructions"
	"github.com/nojan1/6502.ts/hardware/cpu/registers"
)

func (mc *CPU) adc(v uint8) {
	if mc.Status.DecimalMode {
		var zero, sign bool
		mc.Status.Carry, zero, mc.Status.Overflow, sign = mc.A.AddDecimal(v, mc.Status.Carry)
		mc.Status.Zero = zero
		mc.Status.Sign = sign
		return
	}
	mc.Status.Carry, mc.Status.Overflow = mc.A.Add(v, mc.Status.Carry)
	mc.Status.SetNZ(mc.A.Value())
}

func (mc *CPU) sbc(v uint8) {
	if mc.Status.DecimalMode {
		var zero, sign bool
		mc.Status.Carry, zero, mc.Status.Overflow, sign = mc.A.SubtractDecimal(v, mc.Status.Carry)
		mc.Status.Zero = zero
		mc.Status.Sign = sign
		return
	}
	mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(v, mc.Status.Carry)
	mc.Status.SetNZ(mc.A.Value())
}

func (mc *CPU) compare(r registers.Register, v uint8) {
	var result registers.Register
	mc.Status.Carry, result = r.Compare(v)
	mc.Status.SetNZ(result.Value())
}

// executeRead performs the operation for instructions that read a value from
// memory or from the instruction stream.
func (mc *CPU) executeRead(op instructions.Operation, v uint8) {
	switch op {
	case instructions.ADC:
		mc.adc(v)
	case instructions.SBC:
		mc.sbc(v)
	case instructions.AND:
		mc.A.AND(v)
		mc.Status.SetNZ(mc.A.Value())
	case instructions.EOR:
		mc.A.EOR(v)
		mc.Status.SetNZ(mc.A.Value())
	case instructions.ORA:
		mc.A.ORA(v)
		mc.Status.SetNZ(mc.A.Value())
	case instructions.BIT:
		r := registers.NewRegister(v, "")
		mc.Status.Sign = r.IsNegative()
		mc.Status.Overflow = r.IsBitV()
		r.AND(mc.A.Value())
		mc.Status.Zero = r.IsZero()
	case instructions.CMP:
		mc.compare(mc.A, v)
	case instructions.CPX:
		mc.compare(mc.X, v)
	case instructions.CPY:
		mc.compare(mc.Y, v)
	case instructions.LDA:
		mc.A.Load(v)
		mc.Status.SetNZ(v)
	case instructions.LDX:
		mc.X.Load(v)
		mc.Status.SetNZ(v)
	case instructions.LDY:
		mc.Y.Load(v)
		mc.Status.SetNZ(v)

	case instructions.LAX:
		mc.A.Load(v)
		mc.X.Load(v)
		mc.Status.SetNZ(v)
	case instructions.LAR:
		v &= mc.SP.Value()
		mc.A.Load(v)
		mc.X.Load(v)
		mc.SP.Load(v)
		mc.Status.SetNZ(v)
	case instructions.ALR:
		mc.A.AND(v)
		mc.Status.Carry = mc.A.LSR()
		mc.Status.SetNZ(mc.A.Value())
	case instructions.AXS:
		ax := mc.A.Value() & mc.X.Value()
		mc.Status.Carry = ax >= v
		mc.X.Load(ax - v)
		mc.Status.SetNZ(mc.X.Value())
	case instructions.ARR:
		mc.A.AND(v)
		mc.A.ROR(mc.Status.Carry)
		r := mc.A.Value()
		mc.Status.Carry = r&0x40 == 0x40
		mc.Status.Overflow = (r>>6)&0x01 != (r>>5)&0x01
		mc.Status.SetNZ(r)
	case instructions.AAC:
		mc.A.AND(v)
		mc.Status.SetNZ(mc.A.Value())
		mc.Status.Carry = mc.Status.Sign
	case instructions.ATX:
		mc.A.Load(v)
		mc.X.Load(v)
		mc.Status.SetNZ(v)

	case instructions.NOP, instructions.DOP, instructions.TOP:
	}
}

// modify returns the result of a read-modify-write operation. the
// undocumented operations also affect the accumulator.
func (mc *CPU) modify(op instructions.Operation, v uint8) uint8 {
	r := registers.NewRegister(v, "")

	switch op {
	case instructions.ASL:
		mc.Status.Carry = r.ASL()
		mc.Status.SetNZ(r.Value())
	case instructions.LSR:
		mc.Status.Carry = r.LSR()
		mc.Status.SetNZ(r.Value())
	case instructions.ROL:
		mc.Status.Carry = r.ROL(mc.Status.Carry)
		mc.Status.SetNZ(r.Value())
	case instructions.ROR:
		mc.Status.Carry = r.ROR(mc.Status.Carry)
		mc.Status.SetNZ(r.Value())
	case instructions.INC:
		r.Load(v + 1)
		mc.Status.SetNZ(r.Value())
	case instructions.DEC:
		r.Load(v - 1)
		mc.Status.SetNZ(r.Value())

	case instructions.DCP:
		r.Load(v - 1)
		mc.compare(mc.A, r.Value())
	case instructions.ISC:
		r.Load(v + 1)
		mc.sbc(r.Value())
	case instructions.SLO:
		mc.Status.Carry = r.ASL()
		mc.A.ORA(r.Value())
		mc.Status.SetNZ(mc.A.Value())
	case instructions.RLA:
		mc.Status.Carry = r.ROL(mc.Status.Carry)
		mc.A.AND(r.Value())
		mc.Status.SetNZ(mc.A.Value())
	case instructions.RRA:
		mc.Status.Carry = r.ROR(mc.Status.Carry)
		mc.adc(r.Value())
	}

	return r.Value()
}

// writeValue returns the value to be written by a store instruction.
func (mc *CPU) writeValue(op instructions.Operation) uint8 {
	switch op {
	case instructions.STX:
		return mc.X.Value()
	case instructions.STY:
		return mc.Y.Value()
	case instructions.AAX:
		return mc.A.Value() & mc.X.Value()
	}
	return mc.A.Value()
}

// pushValue returns the value to be pushed by a stack instruction. PHP always
// pushes the break and unused bits.
func (mc *CPU) pushValue(op instructions.Operation) uint8 {
	switch op {
	case instructions.PHP:
		return mc.Status.Value() | registers.FlagBreak | registers.FlagEmulation
	case instructions.PHX:
		return mc.X.Value()
	case instructions.PHY:
		return mc.Y.Value()
	}
	return mc.A.Value()
}

// pullValue applies the value pulled by a stack instruction.
func (mc *CPU) pullValue(op instructions.Operation, v uint8) {
	switch op {
	case instructions.PLP:
		mc.pullStatus(v)
	case instructions.PLX:
		mc.X.Load(v)
		mc.Status.SetNZ(v)
	case instructions.PLY:
		mc.Y.Load(v)
		mc.Status.SetNZ(v)
	default:
		mc.A.Load(v)
		mc.Status.SetNZ(v)
	}
}

// pullStatus loads the status register from a value pulled from the stack.
// the break flag does not exist in the register and the unused bit always
// reads as set.
func (mc *CPU) pullStatus(v uint8) {
	mc.Status.FromValue((v | registers.FlagEmulation) &^ registers.FlagBreak)
}

func (mc *CPU) branchCondition(op instructions.Operation) bool {
	switch op {
	case instructions.BCC:
		return !mc.Status.Carry
	case instructions.BCS:
		return mc.Status.Carry
	case instructions.BEQ:
		return mc.Status.Zero
	case instructions.BNE:
		return !mc.Status.Zero
	case instructions.BMI:
		return mc.Status.Sign
	case instructions.BPL:
		return !mc.Status.Sign
	case instructions.BVC:
		return !mc.Status.Overflow
	case instructions.BVS:
		return mc.Status.Overflow
	}
	return false
}

// executeImplied performs the operation for single byte instructions that do
// not access memory, including the accumulator forms of the shift
// instructions.
func (mc *CPU) executeImplied(op instructions.Operation) {
	switch op {
	case instructions.ASL:
		mc.Status.Carry = mc.A.ASL()
		mc.Status.SetNZ(mc.A.Value())
	case instructions.LSR:
		mc.Status.Carry = mc.A.LSR()
		mc.Status.SetNZ(mc.A.Value())
	case instructions.ROL:
		mc.Status.Carry = mc.A.ROL(mc.Status.Carry)
		mc.Status.SetNZ(mc.A.Value())
	case instructions.ROR:
		mc.Status.Carry = mc.A.ROR(mc.Status.Carry)
		mc.Status.SetNZ(mc.A.Value())

	case instructions.CLC:
		mc.Status.Carry = false
	case instructions.SEC:
		mc.Status.Carry = true
	case instructions.CLD:
		mc.Status.DecimalMode = false
	case instructions.SED:
		mc.Status.DecimalMode = true
	case instructions.CLI:
		mc.Status.InterruptDisable = false
	case instructions.SEI:
		mc.Status.InterruptDisable = true
	case instructions.CLV:
		mc.Status.Overflow = false

	case instructions.TAX:
		mc.X.Load(mc.A.Value())
		mc.Status.SetNZ(mc.X.Value())
	case instructions.TAY:
		mc.Y.Load(mc.A.Value())
		mc.Status.SetNZ(mc.Y.Value())
	case instructions.TXA:
		mc.A.Load(mc.X.Value())
		mc.Status.SetNZ(mc.A.Value())
	case instructions.TYA:
		mc.A.Load(mc.Y.Value())
		mc.Status.SetNZ(mc.A.Value())
	case instructions.TSX:
		mc.X.Load(mc.SP.Value())
		mc.Status.SetNZ(mc.X.Value())
	case instructions.TXS:
		mc.SP.Load(mc.X.Value())

	case instructions.INX:
		mc.X.Load(mc.X.Value() + 1)
		mc.Status.SetNZ(mc.X.Value())
	case instructions.INY:
		mc.Y.Load(mc.Y.Value() + 1)
		mc.Status.SetNZ(mc.Y.Value())
	case instructions.DEX:
		mc.X.Load(mc.X.Value() - 1)
		mc.Status.SetNZ(mc.X.Value())
	case instructions.DEY:
		mc.Y.Load(mc.Y.Value() - 1)
		mc.Status.SetNZ(mc.Y.Value())

	case instructions.NOP:
	}
}
