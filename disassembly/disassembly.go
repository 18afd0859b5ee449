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

package disassembly

import (
	"github.com/nojan1/6502.ts/hardware/cpu/instructions"
	"github.com/nojan1/6502.ts/hardware/memory/addresses"
	"github.com/nojan1/6502.ts/hardware/memory/cartridge"
	"github.com/nojan1/6502.ts/hardware/memory/memorymap"
)

// the number of addresses in a bank
const bankSize = 4096

// Disassembly represents the annotated disassembly of a cartridge.
type Disassembly struct {
	resolver *instructions.Resolver

	// ID of the cartridge mapper
	ID string

	// indexed by bank and address. the address is masked with
	// memorymap.CartridgeBits
	entries [][]*Entry
}

// bankPeeker peeks the cartridge using the Fxxx mirror.
type bankPeeker struct {
	cart *cartridge.Cartridge
}

func (p bankPeeker) Peek(address uint16) (uint8, error) {
	return p.cart.Peek(address&memorymap.CartridgeBits | memorymap.OriginCartFxxxMirror)
}

// FromCartridge disassembles every bank of the cartridge. The current bank of
// the cartridge is restored before the function returns.
func FromCartridge(cart *cartridge.Cartridge, resolver *instructions.Resolver) (*Disassembly, error) {
	dsm := &Disassembly{
		resolver: resolver,
		ID:       cart.ID(),
		entries:  make([][]*Entry, cart.NumBanks()),
	}

	current := cart.GetBank()
	defer func() {
		_ = cart.SetBank(current)
	}()

	mem := bankPeeker{cart: cart}

	for bank := range dsm.entries {
		if err := cart.SetBank(bank); err != nil {
			return nil, err
		}

		dsm.entries[bank] = make([]*Entry, bankSize)

		for a := range bankSize {
			address := memorymap.OriginCartFxxxMirror | uint16(a)
			e, err := Decode(resolver, mem, address)
			if err != nil {
				return nil, err
			}
			e.Bank = bank
			dsm.entries[bank][a] = &e
		}

		for _, v := range []uint16{addresses.Reset, addresses.IRQ} {
			lo, _ := mem.Peek(v)
			hi, _ := mem.Peek(v + 1)
			dsm.bless(bank, uint16(lo)|uint16(hi)<<8)
		}
	}

	return dsm, nil
}

// bless follows the flow of the program from the address, marking every
// instruction reached as blessed. Flow outside of the cartridge is ignored.
func (dsm *Disassembly) bless(bank int, address uint16) {
	pending := []uint16{address}

	for len(pending) > 0 {
		address = pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		for {
			if !memorymap.IsArea(address, memorymap.Cartridge) {
				break
			}

			e := dsm.entries[bank][address&memorymap.CartridgeBits]
			if e.Level == EntryLevelBlessed {
				break
			}
			e.Level = EntryLevelBlessed

			if t, ok := e.Target(); ok {
				pending = append(pending, t)
			}

			if e.Terminal() {
				break
			}

			address += uint16(len(e.Bytecode))
		}
	}
}

// NumBanks returns the number of banks in the disassembly.
func (dsm *Disassembly) NumBanks() int {
	return len(dsm.entries)
}

// Get returns the entry for the address in the specified bank.
func (dsm *Disassembly) Get(bank int, address uint16) (*Entry, bool) {
	if bank < 0 || bank >= len(dsm.entries) || !memorymap.IsArea(address, memorymap.Cartridge) {
		return nil, false
	}
	return dsm.entries[bank][address&memorymap.CartridgeBits], true
}
