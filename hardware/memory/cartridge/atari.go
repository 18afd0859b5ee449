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

package cartridge

import (
	"github.com/nojan1/6502.ts/curated"
	"github.com/nojan1/6502.ts/environment"
	"github.com/nojan1/6502.ts/hardware/memory/bus"
	"github.com/nojan1/6502.ts/hardware/memory/memorymap"
)

// from bankswitch_sizes.txt:
//
// 2K:
//
// -These carts are not bankswitched, however the data repeats twice in the
// 4K address space.
//
// 4K:
//
// -These images are not bankswitched.
//
// 8K:
//
// -F8: This is the 'standard' method to implement 8K carts.  There are two
// addresses which select between two unique 4K sections.  They are 1FF8
// and 1FF9.  Any access to either one of these locations switches banks.
// Accessing 1FF8 switches in the first 4K, and accessing 1FF9 switches in
// the last 4K.  Note that you can only access one 4K at a time!
//
// 16K:
//
// -F6: The 'standard' method for implementing 16K of data.  It is identical
// to the F8 method above, except there are 4 4K banks.  You select which
// 4K bank by accessing 1FF6, 1FF7, 1FF8, and 1FF9.
//
// 32K:
//
// -F4: The 'standard' method for implementing 32K.  Only one cart is known
// to use it- Fatal Run.  Like the F6 method, however there are 8 4K
// banks instead of 4.  You use 1FF4 to 1FFB to select the desired bank.
//
// Atari's 'Super Chip' is nothing more than a 128-byte RAM chip that maps
// itsself in the first 256 bytes of cart memory.  (1000-10FFh) The first 128
// bytes is the write port, while the second 128 bytes is the read port. The
// difference in addresses is because there is no dedicated address line to the
// cart to differentiate between read and write operations.
type atari struct {
	mappingID string

	bankSize int
	banks    [][]uint8
	current  int

	// address of the hotspot that selects bank zero. the hotspots for the
	// other banks follow consecutively. zero if the cartridge is not bank
	// switched
	hotspot uint16

	// superchip RAM. nil if there is no superchip
	ram []uint8
}

const superchipRAMsize = 128

// look for empty area (representing RAM) in binary data.
func hasEmptyArea(d []uint8) bool {
	// if the first byte in the cartridge is repeated 'superchipRAMsize' times
	// then we deem it to be an empty area.
	//
	// for example: the Fatal Run (NTSC) ROM uses FF rather than 00 to fill the
	// empty space.
	b := d[0]
	for i := 1; i < superchipRAMsize; i++ {
		if d[i] != b {
			return false
		}
	}
	return true
}

func newAtari(id string, data []uint8, numBanks int, bankSize int) *atari {
	cart := &atari{
		mappingID: id,
		bankSize:  bankSize,
		banks:     make([][]uint8, numBanks),
	}

	for k := range cart.banks {
		cart.banks[k] = make([]uint8, bankSize)
		offset := k * bankSize
		copy(cart.banks[k], data[offset:offset+bankSize])
	}

	return cart
}

// atari2k is the half-size cartridge of 2048 bytes. The data is mirrored in
// the upper half of the cartridge address space.
func newAtari2k(data []uint8) (mapper, error) {
	if len(data) != 2048 {
		return nil, curated.Errorf("2k: %v", "wrong number bytes in the cartridge data")
	}
	return newAtari("2k", data, 1, 2048), nil
}

// atari4k is the original and most straightforward format.
func newAtari4k(data []uint8) (mapper, error) {
	if len(data) != 4096 {
		return nil, curated.Errorf("4k: %v", "wrong number bytes in the cartridge data")
	}
	return newAtari("4k", data, 1, 4096), nil
}

// newAtariBanked creates one of the F8, F6 or F4 types. A Superchip is added
// if the data starts with an empty area.
func newAtariBanked(id string, data []uint8, numBanks int, hotspot uint16) (mapper, error) {
	if len(data) != numBanks*4096 {
		return nil, curated.Errorf("%s: %v", id, "wrong number bytes in the cartridge data")
	}

	cart := newAtari(id, data, numBanks, 4096)
	cart.hotspot = hotspot

	if hasEmptyArea(data) {
		cart.ram = make([]uint8, superchipRAMsize)
		cart.mappingID = id + "SC"
	}

	return cart, nil
}

func (cart *atari) id() string {
	return cart.mappingID
}

func (cart *atari) numBanks() int {
	return len(cart.banks)
}

func (cart *atari) bank() int {
	return cart.current
}

func (cart *atari) setBank(bank int) error {
	if bank < 0 || bank >= len(cart.banks) {
		return curated.Errorf(NoSuchBank, bank, cart.mappingID)
	}
	cart.current = bank
	return nil
}

func (cart *atari) reset(env *environment.Environment) {
	random := env != nil && env.Prefs != nil && env.Prefs.RandomState.Get().(bool)
	for i := range cart.ram {
		if random {
			cart.ram[i] = env.Random.Uint8()
		} else {
			cart.ram[i] = 0
		}
	}

	// the second bank is the start bank when there is more than one bank.
	// bank 0 doesn't work for Stay Frosty
	if len(cart.banks) == 1 {
		cart.current = 0
	} else {
		cart.current = 1
	}
}

// bankswitch on hotspot access. returns true if the address was a hotspot.
func (cart *atari) bankswitch(addr uint16, passive bool) bool {
	if cart.hotspot == 0 || addr < cart.hotspot || addr >= cart.hotspot+uint16(len(cart.banks)) {
		return false
	}
	if !passive {
		cart.current = int(addr - cart.hotspot)
	}
	return true
}

func (cart *atari) read(addr uint16, passive bool) uint8 {
	if cart.ram != nil && addr >= superchipRAMsize && addr < superchipRAMsize*2 {
		return cart.ram[addr-superchipRAMsize]
	}

	cart.bankswitch(addr, passive)

	return cart.banks[cart.current][int(addr)%cart.bankSize]
}

func (cart *atari) write(addr uint16, data uint8, passive bool, poke bool) error {
	if cart.ram != nil && addr < superchipRAMsize {
		cart.ram[addr] = data
		return nil
	}

	if cart.bankswitch(addr, passive) {
		return nil
	}

	if poke {
		cart.banks[cart.current][int(addr)%cart.bankSize] = data
		return nil
	}

	return curated.Errorf("%s: %v", cart.mappingID, curated.Errorf(bus.AddressError, "write to ROM", addr|memorymap.OriginCart))
}
