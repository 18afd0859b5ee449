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

package registers

// the decimal functions return information about zero and sign bits in
// addition to the carry and overflow. the cpu can use these values to set
// the status flags. binary addition/subtraction only returns information
// for the carry and overflow flags.
//
// the flag behaviour follows "Flags on Decimal mode in the NMOS 6502" v1.0 by
// Jorge Cwik.

func addNibble(a, b uint8, carry bool) (uint8, bool) {
	r := a + b
	if carry {
		r++
	}
	return r, r > 9
}

// AddDecimal adds value to register as though both are binary coded decimal
// values. Returns new carry state, zero, overflow and sign information.
func (r *Register) AddDecimal(val uint8, carry bool) (rcarry, zero, overflow, sign bool) {
	var ucarry, tcarry bool

	// the Z flag is computed from the binary result
	zero = r.value+val+boolToUint8(carry) == 0

	units, ucarry := addNibble(r.value&0x0f, val&0x0f, carry)
	if ucarry {
		units += 6
	}

	tens, _ := addNibble(r.value>>4, val>>4, ucarry)

	// N and V are computed after the decimal adjust of the low nibble but
	// before adjusting the high nibble
	sign = tens&0x08 == 0x08
	overflow = ((r.value ^ (tens << 4)) & ^(r.value ^ val) & 0x80) != 0

	tcarry = tens > 9
	if tcarry {
		tens += 6
	}

	r.value = (tens << 4) | (units & 0x0f)

	return tcarry, zero, overflow, sign
}

// SubtractDecimal subtracts value from register as though both are binary
// coded decimal values. Returns new carry state, zero, overflow and sign
// information.
//
// The flags are the same as for a binary subtraction, only the value in the
// register differs.
func (r *Register) SubtractDecimal(val uint8, carry bool) (rcarry, zero, overflow, sign bool) {
	bin := *r
	rcarry, overflow = bin.Subtract(val, carry)
	zero = bin.IsZero()
	sign = bin.IsNegative()

	borrow := boolToUint8(!carry)

	units := int(r.value&0x0f) - int(val&0x0f) - int(borrow)
	tens := int(r.value>>4) - int(val>>4)
	if units < 0 {
		units += 10
		tens--
	}
	if tens < 0 {
		tens += 10
	}

	r.value = (uint8(tens) << 4) | (uint8(units) & 0x0f)

	return rcarry, zero, overflow, sign
}

func boolToUint8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
