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

package cartridge_test

import (
	"testing"

	"github.com/nojan1/6502.ts/curated"
	"github.com/nojan1/6502.ts/hardware/memory/bus"
	"github.com/nojan1/6502.ts/hardware/memory/cartridge"
	"github.com/nojan1/6502.ts/test"
)

// each bank is filled with its bank number. the first byte of the data is
// changed so that there is no empty area.
func bankedData(numBanks int) []uint8 {
	d := make([]uint8, numBanks*4096)
	for i := range d {
		d[i] = uint8(i / 4096)
	}
	d[1] = 0xff
	return d
}

func TestUnsupportedSize(t *testing.T) {
	for _, n := range []int{0, 1, 1024, 3000, 65536} {
		_, err := cartridge.NewFromBytes(nil, make([]uint8, n))
		test.ExpectEquality(t, curated.Is(err, cartridge.UnsupportedSize), true, n)
	}
}

func TestMappingIDs(t *testing.T) {
	cases := []struct {
		size     int
		id       string
		numBanks int
	}{
		{2048, "2k", 1},
		{4096, "4k", 1},
		{8192, "F8", 2},
		{16384, "F6", 4},
		{32768, "F4", 8},
	}

	for _, c := range cases {
		d := make([]uint8, c.size)
		d[1] = 0xff
		cart, err := cartridge.NewFromBytes(nil, d)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, cart.ID(), c.id)
		test.ExpectEquality(t, cart.NumBanks(), c.numBanks)
	}
}

func TestMirror2k(t *testing.T) {
	d := make([]uint8, 2048)
	d[0x10] = 0x42
	cart, err := cartridge.NewFromBytes(nil, d)
	test.DemandSuccess(t, err)

	v, err := cart.Read(0x1010)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x42))

	v, err = cart.Read(0xf810)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x42))
}

func TestBankSwitching(t *testing.T) {
	cart, err := cartridge.NewFromBytes(nil, bankedData(4))
	test.DemandSuccess(t, err)

	// start bank is bank 1
	test.ExpectEquality(t, cart.GetBank(), 1)
	v, _ := cart.Read(0x1100)
	test.ExpectEquality(t, v, uint8(1))

	// hotspot on read
	_, _ = cart.Read(0x1ff6)
	test.ExpectEquality(t, cart.GetBank(), 0)
	v, _ = cart.Read(0xf100)
	test.ExpectEquality(t, v, uint8(0))

	// hotspot on write
	test.ExpectSuccess(t, cart.Write(0x1ff9, 0x00))
	test.ExpectEquality(t, cart.GetBank(), 3)

	// peeking a hotspot does not switch banks
	_, _ = cart.Peek(0x1ff7)
	test.ExpectEquality(t, cart.GetBank(), 3)

	test.ExpectSuccess(t, cart.SetBank(2))
	test.ExpectEquality(t, cart.GetBank(), 2)
	test.ExpectFailure(t, cart.SetBank(4))
}

func TestWriteToROM(t *testing.T) {
	cart, err := cartridge.NewFromBytes(nil, make([]uint8, 4096))
	test.DemandSuccess(t, err)

	err = cart.Write(0x1234, 0x01)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Has(err, bus.AddressError), true)

	// poke changes ROM
	test.ExpectSuccess(t, cart.Poke(0x1234, 0x01))
	v, _ := cart.Peek(0x1234)
	test.ExpectEquality(t, v, uint8(0x01))
}

func TestSuperchip(t *testing.T) {
	cart, err := cartridge.NewFromBytes(nil, make([]uint8, 8192))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cart.ID(), "F8SC")

	// write port and read port
	test.ExpectSuccess(t, cart.Write(0x1005, 0x99))
	v, _ := cart.Read(0x1085)
	test.ExpectEquality(t, v, uint8(0x99))

	cart.Reset()
	v, _ = cart.Read(0x1085)
	test.ExpectEquality(t, v, uint8(0x00))
}

func TestEjected(t *testing.T) {
	cart := cartridge.NewEjected(nil)
	v, err := cart.Read(0x1000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0))
	test.ExpectFailure(t, cart.Write(0x1000, 0))
}
