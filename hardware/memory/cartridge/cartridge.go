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
	"crypto/sha1"
	"fmt"

	"github.com/nojan1/6502.ts/curated"
	"github.com/nojan1/6502.ts/environment"
	"github.com/nojan1/6502.ts/hardware/memory/memorymap"
	"github.com/nojan1/6502.ts/logger"
)

// Sentinel error patterns.
const (
	UnsupportedSize = "cartridge: unsupported size (%d bytes)"
	NoSuchBank      = "cartridge: no bank %d in %s cartridge"
)

// mapper is implemented by the different cartridge types. The address
// arguments have been normalised to the range 0x0000 to 0x0fff.
type mapper interface {
	id() string
	numBanks() int
	bank() int
	setBank(bank int) error
	reset(env *environment.Environment)

	// passive reads/writes are made by the debugger and must not trigger
	// bank switching
	read(addr uint16, passive bool) uint8

	// poke writes change the ROM data rather than failing
	write(addr uint16, data uint8, passive bool, poke bool) error
}

// Cartridge defines the information and operations for a VCS cartridge.
type Cartridge struct {
	env *environment.Environment

	// hash of the data the cartridge was created with. empty for an ejected
	// cartridge
	Hash string

	mapper mapper
}

// NewEjected returns a Cartridge with no data. Reads return zero and writes
// fail.
func NewEjected(env *environment.Environment) *Cartridge {
	return &Cartridge{env: env, mapper: ejected{}}
}

// NewFromBytes creates a cartridge from the data. The cartridge type is
// decided by the size of the data.
func NewFromBytes(env *environment.Environment, data []uint8) (*Cartridge, error) {
	cart := &Cartridge{
		env:  env,
		Hash: fmt.Sprintf("%x", sha1.Sum(data)),
	}

	var err error

	switch len(data) {
	case 2048:
		cart.mapper, err = newAtari2k(data)
	case 4096:
		cart.mapper, err = newAtari4k(data)
	case 8192:
		cart.mapper, err = newAtariBanked("F8", data, 2, 0x0ff8)
	case 16384:
		cart.mapper, err = newAtariBanked("F6", data, 4, 0x0ff6)
	case 32768:
		cart.mapper, err = newAtariBanked("F4", data, 8, 0x0ff4)
	default:
		return nil, curated.Errorf(UnsupportedSize, len(data))
	}

	if err != nil {
		return nil, curated.Errorf("cartridge: %v", err)
	}

	cart.Reset()
	logger.Logf(env, "cartridge", "attached %s cartridge (%d bytes)", cart.ID(), len(data))

	return cart, nil
}

func (cart *Cartridge) String() string {
	if cart.mapper.numBanks() == 1 {
		return cart.mapper.id()
	}
	return fmt.Sprintf("%s [bank %d]", cart.mapper.id(), cart.mapper.bank())
}

// ID returns the mapping ID of the cartridge.
func (cart *Cartridge) ID() string {
	return cart.mapper.id()
}

// NumBanks returns the number of banks in the cartridge.
func (cart *Cartridge) NumBanks() int {
	return cart.mapper.numBanks()
}

// GetBank returns the currently mapped bank.
func (cart *Cartridge) GetBank() int {
	return cart.mapper.bank()
}

// SetBank maps the bank into the cartridge address space.
func (cart *Cartridge) SetBank(bank int) error {
	return cart.mapper.setBank(bank)
}

// Reset the cartridge to its power-on state. Cartridge RAM is randomised if
// the RandomState preference is set.
func (cart *Cartridge) Reset() {
	cart.mapper.reset(cart.env)
}

// Read is an implementation of memory.ChipBus. The address is any address
// that maps to the cartridge.
func (cart *Cartridge) Read(addr uint16) (uint8, error) {
	return cart.mapper.read(addr&memorymap.CartridgeBits, false), nil
}

// Write is an implementation of memory.ChipBus. Writes to ROM that do not
// trigger a bank switch result in an error.
func (cart *Cartridge) Write(addr uint16, data uint8) error {
	return cart.mapper.write(addr&memorymap.CartridgeBits, data, false, false)
}

// Peek is an implementation of memory.DebuggerBus. Peeking never causes a
// bank switch.
func (cart *Cartridge) Peek(addr uint16) (uint8, error) {
	return cart.mapper.read(addr&memorymap.CartridgeBits, true), nil
}

// Poke is an implementation of memory.DebuggerBus. Poking changes the ROM
// data of the current bank.
func (cart *Cartridge) Poke(addr uint16, data uint8) error {
	return cart.mapper.write(addr&memorymap.CartridgeBits, data, true, true)
}
