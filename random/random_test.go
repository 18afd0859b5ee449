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


package random_test

import (
	"testing"

	"github.com/nojan1/6502.ts/hardware/television/coords"
	"github.com/nojan1/6502.ts/random"
	"github.com/nojan1/6502.ts/test"
)

// beam is a fixed beam position
type beam coords.TelevisionCoords

func (b beam) GetCoords() coords.TelevisionCoords {
	return coords.TelevisionCoords(b)
}

func TestSameSeedSameNumbers(t *testing.T) {
	pos := beam{Frame: 100, Scanline: 32, Clock: 10}

	a := random.NewRandom(pos)
	a.ZeroSeed = true
	b := random.NewRandom(nil)
	b.ZeroSeed = true
	b.AttachTV(pos)

	for n := 1; n < 256; n++ {
		test.ExpectEquality(t, a.Intn(n), b.Intn(n), n)
	}

	ra := make([]uint8, 128)
	rb := make([]uint8, 128)
	a.Fill(ra)
	b.Fill(rb)
	test.ExpectEquality(t, string(ra), string(rb))
}

func TestConsecutiveCallsDiffer(t *testing.T) {
	// without a TV the seed still advances on every call
	rnd := random.NewRandom(nil)
	rnd.ZeroSeed = true

	first := make([]uint8, 16)
	second := make([]uint8, 16)
	rnd.Fill(first)
	rnd.Fill(second)
	test.ExpectInequality(t, string(first), string(second))
}
