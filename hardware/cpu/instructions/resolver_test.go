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

package instructions_test

import (
	"testing"

	"github.com/nojan1/6502.ts/curated"
	"github.com/nojan1/6502.ts/hardware/cpu/instructions"
	"github.com/nojan1/6502.ts/test"
)

func TestResolverStable(t *testing.T) {
	for _, v := range []instructions.Variant{instructions.NMOS6502, instructions.CMOS65C02} {
		r, err := instructions.NewResolver(v)
		test.DemandSuccess(t, err)

		for i := 0; i < 256; i++ {
			a := r.Resolve(uint8(i))
			b := r.Resolve(uint8(i))
			test.ExpectEquality(t, a, b, v, i)
		}
	}
}

func TestResolverGroupOne(t *testing.T) {
	r, err := instructions.NewResolver(instructions.NMOS6502)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, r.Resolve(0xa9), instructions.Instruction{
		Operation:      instructions.LDA,
		AddressingMode: instructions.Immediate,
	})
	test.ExpectEquality(t, r.Resolve(0x91).Operation, instructions.STA)
	test.ExpectEquality(t, r.Resolve(0x91).AddressingMode, instructions.IndirectIndexedY)
	test.ExpectEquality(t, r.Resolve(0x7d).Operation, instructions.ADC)
	test.ExpectEquality(t, r.Resolve(0x7d).AddressingMode, instructions.AbsoluteX)

	// STA immediate does not exist
	test.ExpectEquality(t, r.Resolve(0x89).Operation, instructions.DOP)

	// JAM opcodes are undefined
	for _, o := range []uint8{0x02, 0x12, 0x22, 0x32, 0x42, 0x52, 0x62, 0x72, 0x92, 0xb2, 0xd2, 0xf2} {
		test.ExpectEquality(t, r.Resolve(o).IsValid(), false, o)
	}

	jsr := r.Resolve(0x20)
	test.ExpectEquality(t, jsr.AddressingMode, instructions.Implied)
	test.ExpectEquality(t, jsr.Effective(), instructions.Absolute)
	test.ExpectEquality(t, jsr.Bytes(), 3)
}

func TestResolver65C02(t *testing.T) {
	nmos, err := instructions.NewResolver(instructions.NMOS6502)
	test.DemandSuccess(t, err)
	cmos, err := instructions.NewResolver(instructions.CMOS65C02)
	test.DemandSuccess(t, err)

	overridden := map[uint8]instructions.Operation{
		0xda: instructions.PHX,
		0x5a: instructions.PHY,
		0xfa: instructions.PLX,
		0x7a: instructions.PLY,
		0x7c: instructions.JMP,
	}

	for i := 0; i < 256; i++ {
		o := uint8(i)
		if op, ok := overridden[o]; ok {
			test.ExpectEquality(t, nmos.Resolve(o).Operation == op, false, o)
			test.ExpectEquality(t, cmos.Resolve(o).Operation, op, o)
		} else {
			test.ExpectEquality(t, cmos.Resolve(o), nmos.Resolve(o), o)
		}
	}

	test.ExpectEquality(t, cmos.Resolve(0x7c).Bytes(), 3)
}

func TestResolverSet(t *testing.T) {
	r, err := instructions.NewResolver(instructions.NMOS6502)
	test.DemandSuccess(t, err)

	err = r.Set(0xea, instructions.INX, instructions.Implied, instructions.Invalid, false)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, instructions.DuplicateDefinition))
	test.ExpectEquality(t, r.Resolve(0xea).Operation, instructions.NOP)

	err = r.Set(0xea, instructions.INX, instructions.Implied, instructions.Invalid, true)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r.Resolve(0xea).Operation, instructions.INX)

	// undefined opcodes can be set without the override flag
	test.ExpectSuccess(t, r.Set(0x02, instructions.NOP, instructions.Implied, instructions.Invalid, false))
}

func TestMnemonics(t *testing.T) {
	op, ok := instructions.OperationFromMnemonic("lax")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, op, instructions.LAX)
	test.ExpectEquality(t, instructions.PLY.String(), "PLY")
	test.ExpectEquality(t, instructions.Undefined.String(), "???")
}
