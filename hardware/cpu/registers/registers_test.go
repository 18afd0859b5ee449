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

package registers_test

import (
	"testing"

	"github.com/nojan1/6502.ts/hardware/cpu/registers"
	"github.com/nojan1/6502.ts/test"
)

func TestRegister(t *testing.T) {
	var carry, overflow bool

	r8 := registers.NewRegister(0, "test")
	test.ExpectEquality(t, r8.IsZero(), true)
	test.ExpectEquality(t, r8.Value(), uint8(0))

	// loading & addition
	r8.Load(127)
	carry, overflow = r8.Add(2, false)
	test.ExpectEquality(t, r8.Value(), uint8(129))
	test.ExpectEquality(t, carry, false)
	test.ExpectEquality(t, overflow, true)

	// addition boundary
	r8.Load(255)
	test.ExpectEquality(t, r8.IsNegative(), true)
	carry, overflow = r8.Add(1, false)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, overflow, false)
	test.ExpectEquality(t, r8.IsZero(), true)

	// addition boundary with carry
	r8.Load(255)
	carry, _ = r8.Add(1, true)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, r8.Value(), uint8(1))

	// adding zero with carry set to 0xff
	r8.Load(255)
	carry, _ = r8.Add(0, true)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, r8.Value(), uint8(0))

	// subtraction
	r8.Load(11)
	r8.Subtract(1, true)
	test.ExpectEquality(t, r8.Value(), uint8(10))

	r8.Load(12)
	r8.Subtract(1, false)
	test.ExpectEquality(t, r8.Value(), uint8(10))

	r8.Load(0x01)
	carry, _ = r8.Subtract(0x06, true)
	test.ExpectEquality(t, r8.Value(), uint8(0xfb))
	test.ExpectEquality(t, carry, false)

	r8.Load(0)
	r8.Subtract(1, true)
	test.ExpectEquality(t, r8.Value(), uint8(255))

	// logical operators
	r8.Load(0x21)
	r8.AND(0x01)
	test.ExpectEquality(t, r8.Value(), uint8(0x01))
	r8.EOR(0xff)
	test.ExpectEquality(t, r8.Value(), uint8(0xfe))
	r8.ORA(0x01)
	test.ExpectEquality(t, r8.Value(), uint8(0xff))

	// shifts and rotates
	r8.Load(0x81)
	test.ExpectEquality(t, r8.ASL(), true)
	test.ExpectEquality(t, r8.Value(), uint8(0x02))
	test.ExpectEquality(t, r8.LSR(), false)
	test.ExpectEquality(t, r8.Value(), uint8(0x01))
	test.ExpectEquality(t, r8.ROR(true), true)
	test.ExpectEquality(t, r8.Value(), uint8(0x80))
	test.ExpectEquality(t, r8.ROL(false), true)
	test.ExpectEquality(t, r8.Value(), uint8(0x00))
}

func TestCompare(t *testing.T) {
	r8 := registers.NewRegister(0x10, "A")

	carry, res := r8.Compare(0x10)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, res.IsZero(), true)

	carry, res = r8.Compare(0x20)
	test.ExpectEquality(t, carry, false)
	test.ExpectEquality(t, res.IsNegative(), true)

	// register is not changed by the comparison
	test.ExpectEquality(t, r8.Value(), uint8(0x10))
}

func TestDecimalMode(t *testing.T) {
	r8 := registers.NewRegister(0, "test")

	rcarry, _, _, _ := r8.AddDecimal(1, false)
	test.ExpectEquality(t, r8.Value(), uint8(0x01))
	test.ExpectEquality(t, rcarry, false)

	rcarry, _, _, _ = r8.AddDecimal(1, true)
	test.ExpectEquality(t, r8.Value(), uint8(0x03))
	test.ExpectEquality(t, rcarry, false)

	r8.Load(0x09)
	r8.AddDecimal(1, false)
	test.ExpectEquality(t, r8.Value(), uint8(0x10))

	r8.Load(0x99)
	rcarry, _, _, _ = r8.AddDecimal(1, false)
	test.ExpectEquality(t, r8.Value(), uint8(0x00))
	test.ExpectEquality(t, rcarry, true)

	r8.Load(0x09)
	r8.SubtractDecimal(1, true)
	test.ExpectEquality(t, r8.Value(), uint8(0x08))

	// subtraction without carry subtracts another one
	r8.SubtractDecimal(1, false)
	test.ExpectEquality(t, r8.Value(), uint8(0x06))

	r8.Load(0x10)
	r8.SubtractDecimal(1, true)
	test.ExpectEquality(t, r8.Value(), uint8(0x09))

	r8.Load(0x00)
	rcarry, _, _, _ = r8.SubtractDecimal(1, true)
	test.ExpectEquality(t, r8.Value(), uint8(0x99))
	test.ExpectEquality(t, rcarry, false)
}

func TestStatus(t *testing.T) {
	var sr registers.Status
	sr.Reset()
	test.ExpectEquality(t, sr.Value(), uint8(registers.FlagInterrupt|registers.FlagEmulation))
	test.ExpectEquality(t, sr.String(), "nvEbdIzc")

	sr.FromValue(0xff)
	test.ExpectEquality(t, sr.String(), "NVEBDIZC")
	test.ExpectEquality(t, sr.Value(), uint8(0xff))

	sr.SetNZ(0x00)
	test.ExpectEquality(t, sr.Zero, true)
	test.ExpectEquality(t, sr.Sign, false)
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0xffff)
	pc.Increment()
	test.ExpectEquality(t, pc.Address(), uint16(0x0000))

	pc.Load(0x12fe)
	pc.LoadLo(0x05)
	test.ExpectEquality(t, pc.Address(), uint16(0x1205))
	test.ExpectEquality(t, pc.Hi(), uint8(0x12))
	test.ExpectEquality(t, pc.Lo(), uint8(0x05))
	test.ExpectEquality(t, pc.String(), "1205")
}
