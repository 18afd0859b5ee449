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

package addresses_test

import (
	"testing"

	"github.com/nojan1/6502.ts/hardware/memory/addresses"
	"github.com/nojan1/6502.ts/test"
)

func TestSymbols(t *testing.T) {
	s, ok := addresses.Symbol(0x02, false)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "WSYNC")

	s, ok = addresses.Symbol(0x02, true)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "CXP0FB")

	a, ok := addresses.SymbolAddress("HMOVE")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, a, uint16(0x2a))

	a, ok = addresses.SymbolAddress("INTIM")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, a, uint16(0x284))

	_, ok = addresses.SymbolAddress("FOO")
	test.ExpectFailure(t, ok)
}
