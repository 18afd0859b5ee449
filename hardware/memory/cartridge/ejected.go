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

// ejected is the mapper used when there is no cartridge.
type ejected struct{}

func (ejected) id() string {
	return "ejected"
}

func (ejected) numBanks() int {
	return 1
}

func (ejected) bank() int {
	return 0
}

func (ejected) setBank(bank int) error {
	if bank != 0 {
		return curated.Errorf(NoSuchBank, bank, "ejected")
	}
	return nil
}

func (ejected) reset(_ *environment.Environment) {
}

func (ejected) read(_ uint16, _ bool) uint8 {
	return 0
}

func (ejected) write(addr uint16, _ uint8, _ bool, _ bool) error {
	return curated.Errorf(bus.AddressError, "ejected", addr|memorymap.OriginCart)
}
