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


package coords_test

import (
	"testing"

	"github.com/nojan1/6502.ts/hardware/television/coords"
	"github.com/nojan1/6502.ts/test"
)

func TestBefore(t *testing.T) {
	a := coords.TelevisionCoords{Frame: 1, Scanline: 10, Clock: 20}

	test.ExpectFailure(t, a.Before(a))
	test.ExpectSuccess(t, a.Before(coords.TelevisionCoords{Frame: 1, Scanline: 10, Clock: 21}))
	test.ExpectSuccess(t, a.Before(coords.TelevisionCoords{Frame: 1, Scanline: 11, Clock: 0}))
	test.ExpectSuccess(t, a.Before(coords.TelevisionCoords{Frame: 2, Scanline: 0, Clock: 0}))
	test.ExpectFailure(t, a.Before(coords.TelevisionCoords{Frame: 0, Scanline: 200, Clock: 227}))
}

func TestClocks(t *testing.T) {
	a := coords.TelevisionCoords{Frame: 1, Scanline: 10, Clock: 20}
	test.ExpectEquality(t, a.Clocks(228, 262), 262*228+10*228+20)
	test.ExpectEquality(t, a.String(), "frame=1 scanline=10 clock=20")
}
