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

package memory

import (
	"fmt"

	"github.com/nojan1/6502.ts/curated"
	"github.com/nojan1/6502.ts/environment"
	"github.com/nojan1/6502.ts/hardware/memory/addresses"
	"github.com/nojan1/6502.ts/hardware/memory/cartridge"
	"github.com/nojan1/6502.ts/hardware/memory/memorymap"
	"github.com/nojan1/6502.ts/trap"
)

// ChipBus is implemented by the chips that are connected to the memory. The
// address arguments are mapped addresses.
type ChipBus interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
	Peek(address uint16) (uint8, error)
	Poke(address uint16, data uint8) error
}

// Memory is the address decoder of the VCS. It implements the bus.Memory and
// bus.DebuggerBus interfaces.
type Memory struct {
	env *environment.Environment

	TIA  ChipBus
	RIOT ChipBus
	Cart *cartridge.Cartridge

	// the last value on the data bus
	LastDataBus uint8

	// details of the most recent access by the CPU
	LastAccessAddress uint16
	LastAccessWrite   bool
}

// NewMemory is the preferred method of initialisation for the Memory type. The
// cartridge is the ejected cartridge until AttachCartridge() is called.
func NewMemory(env *environment.Environment, tia ChipBus, riot ChipBus) *Memory {
	return &Memory{
		env:  env,
		TIA:  tia,
		RIOT: riot,
		Cart: cartridge.NewEjected(env),
	}
}

func (mem *Memory) String() string {
	return fmt.Sprintf("cartridge: %s; data bus: %02x", mem.Cart, mem.LastDataBus)
}

// AttachCartridge replaces the current cartridge. A nil cartridge ejects
// the current cartridge.
func (mem *Memory) AttachCartridge(cart *cartridge.Cartridge) {
	if cart == nil {
		cart = cartridge.NewEjected(mem.env)
	}
	mem.Cart = cart
}

// Reset the memory and the cartridge.
func (mem *Memory) Reset() {
	mem.LastDataBus = 0
	mem.LastAccessAddress = 0
	mem.LastAccessWrite = false
	mem.Cart.Reset()
}

func (mem *Memory) chip(area memorymap.Area) ChipBus {
	switch area {
	case memorymap.TIA:
		return mem.TIA
	case memorymap.RAM, memorymap.RIOT:
		return mem.RIOT
	case memorymap.Cartridge:
		return mem.Cart
	}
	return nil
}

func source(area memorymap.Area) trap.Source {
	switch area {
	case memorymap.TIA:
		return trap.TIA
	case memorymap.RAM, memorymap.RIOT:
		return trap.PIA
	}
	return trap.Cartridge
}

// Read is an implementation of bus.Memory.
func (mem *Memory) Read(address uint16) (uint8, error) {
	ma, area := memorymap.MapAddress(address, true)

	mem.LastAccessAddress = address
	mem.LastAccessWrite = false

	data, err := mem.chip(area).Read(ma)
	if err != nil {
		return 0, trap.New(source(area), trap.InvalidRead, address, "%v", err)
	}

	if area == memorymap.TIA {
		data &= addresses.TIADriven[ma]
		if mem.env != nil && mem.env.Prefs != nil && mem.env.Prefs.RandomPins.Get().(bool) {
			data |= mem.env.Random.Uint8() & ^addresses.TIADriven[ma]
		} else {
			data |= mem.LastDataBus & ^addresses.TIADriven[ma]
		}
	}

	mem.LastDataBus = data

	return data, nil
}

// Write is an implementation of bus.Memory.
func (mem *Memory) Write(address uint16, data uint8) error {
	ma, area := memorymap.MapAddress(address, false)

	mem.LastAccessAddress = address
	mem.LastAccessWrite = true
	mem.LastDataBus = data

	if err := mem.chip(area).Write(ma, data); err != nil {
		return trap.New(source(area), trap.InvalidWrite, address, "%v", err)
	}

	return nil
}

// Peek is an implementation of bus.DebuggerBus. Peeking has no side effects.
func (mem *Memory) Peek(address uint16) (uint8, error) {
	ma, area := memorymap.MapAddress(address, true)
	data, err := mem.chip(area).Peek(ma)
	if err != nil {
		return 0, curated.Errorf("memory: %v", err)
	}
	return data, nil
}

// Poke is an implementation of bus.DebuggerBus. Poking has no side effects
// other than changing the value at the address.
func (mem *Memory) Poke(address uint16, data uint8) error {
	ma, area := memorymap.MapAddress(address, false)
	if err := mem.chip(area).Poke(ma, data); err != nil {
		return curated.Errorf("memory: %v", err)
	}
	return nil
}
