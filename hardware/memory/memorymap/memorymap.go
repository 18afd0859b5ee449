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

// Package memorymap facilitates the translation of addresses to primary
// address equivalents.
//
// Because of the limited number of address lines used by the 6507 in the VCS
// the number of addressable locations is a lot less than the 16bit suggested
// by the addressing model of the CPU. The MapAddress() functions should be
// used to produce a "mapped address" whenever an address is being used from
// the viewpoint of the CPU.
package memorymap

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case TIA:
		return "TIA"
	case RAM:
		return "RAM"
	case RIOT:
		return "RIOT"
	case Cartridge:
		return "Cartridge"
	}
	return "undefined"
}

// The different memory areas in the VCS.
const (
	Undefined Area = iota
	TIA
	RAM
	RIOT
	Cartridge
)

// The origin and memory top for each area of memory.
const (
	OriginTIA  = uint16(0x0000)
	MemtopTIA  = uint16(0x003f)
	OriginRAM  = uint16(0x0080)
	MemtopRAM  = uint16(0x00ff)
	OriginRIOT = uint16(0x0280)
	MemtopRIOT = uint16(0x0297)
	OriginCart = uint16(0x1000)
	MemtopCart = uint16(0x1fff)
)

// Cartridge memory is mirrored in a number of places in the address space.
// The Fxxx mirror is the one most programmers use.
const (
	OriginCartFxxxMirror = uint16(0xf000)
	MemtopCartFxxxMirror = uint16(0xffff)
)

// Memtop is the top most address of memory in the VCS.
const Memtop = uint16(0x1fff)

// TIA read registers occupy only the lowest sixteen addresses of the TIA
// area.
const MaskTIARead = uint16(0x000f)

// CartridgeBits identifies the bits in an address that are relevant to the
// cartridge address. For example, the following is true:
//
//	0x1123 & CartridgeBits == 0xf123 & CartridgeBits
const CartridgeBits = OriginCart ^ MemtopCart

// MapAddress translates the address argument from mirror space to primary
// space. The read argument matters for the TIA, which decodes fewer address
// lines for reads than for writes.
//
// The decoding follows the chip select lines of the VCS: A12 selects the
// cartridge, A7 selects the RIOT (with A9 distinguishing RAM from the I/O
// and timer registers) and everything else selects the TIA.
func MapAddress(address uint16, read bool) (uint16, Area) {
	// the order of these filters is important

	if address&OriginCart == OriginCart {
		return address & MemtopCart, Cartridge
	}

	if address&OriginRAM == OriginRAM {
		if address&0x0200 == 0x0200 {
			return OriginRIOT | (address & 0x001f), RIOT
		}
		return address & MemtopRAM, RAM
	}

	if read {
		return address & MaskTIARead, TIA
	}
	return address & MemtopTIA, TIA
}

// IsArea returns true if the address is in the specified area.
func IsArea(address uint16, area Area) bool {
	_, a := MapAddress(address, true)
	return area == a
}
