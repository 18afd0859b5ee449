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

package memorymap_test

import (
	"testing"

	"github.com/nojan1/6502.ts/hardware/memory/memorymap"
	"github.com/nojan1/6502.ts/test"
)

func TestMapAddress(t *testing.T) {
	cases := []struct {
		address uint16
		read    bool
		mapped  uint16
		area    memorymap.Area
	}{
		{0xf000, true, 0x1000, memorymap.Cartridge},
		{0x1fff, false, 0x1fff, memorymap.Cartridge},
		{0x0080, true, 0x0080, memorymap.RAM},
		{0x01ff, true, 0x00ff, memorymap.RAM},
		{0x0180, false, 0x0080, memorymap.RAM},
		{0x0280, true, 0x0280, memorymap.RIOT},
		{0x0294, false, 0x0294, memorymap.RIOT},
		{0x0384, true, 0x0284, memorymap.RIOT},
		{0x0002, false, 0x0002, memorymap.TIA},
		{0x002a, false, 0x002a, memorymap.TIA},
		{0x0031, true, 0x0001, memorymap.TIA},
		{0x0140, false, 0x0000, memorymap.TIA},
	}

	for _, c := range cases {
		m, a := memorymap.MapAddress(c.address, c.read)
		test.ExpectEquality(t, m, c.mapped, c.address)
		test.ExpectEquality(t, a, c.area, c.address)
	}

	test.ExpectSuccess(t, memorymap.IsArea(0xfffc, memorymap.Cartridge))
}
