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

package random

import (
	"math/rand"
	"time"

	"github.com/nojan1/6502.ts/hardware/television/coords"
)

// the base seed for all random numbers
var baseSeed int64

func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// TV defines the television functions required by the Random type.
type TV interface {
	GetCoords() coords.TelevisionCoords
}

// Random is a random number generator that is sensitive to time within the
// emulation.
type Random struct {
	tv TV

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool

	// count of numbers returned while no TV is attached. advances the seed so
	// that consecutive calls differ
	unattached int64
}

// NewRandom is the preferred method of initialisation for the Random type.
// The TV argument can be nil and attached later with AttachTV().
func NewRandom(tv TV) *Random {
	return &Random{
		tv: tv,
	}
}

// AttachTV sets the source of television coordinates.
func (rnd *Random) AttachTV(tv TV) {
	rnd.tv = tv
}

func (rnd *Random) rand() *rand.Rand {
	var seed int64
	if rnd.tv != nil {
		seed = int64(rnd.tv.GetCoords().Clocks(228, 312))
	}

	seed += rnd.unattached
	rnd.unattached++

	if !rnd.ZeroSeed {
		seed += baseSeed
	}

	return rand.New(rand.NewSource(seed))
}

// Intn returns a random number in the range [0, n).
func (rnd *Random) Intn(n int) int {
	return rnd.rand().Intn(n)
}

// Uint8 returns a random 8bit value.
func (rnd *Random) Uint8() uint8 {
	return uint8(rnd.rand().Intn(256))
}

// Fill the slice with random values.
func (rnd *Random) Fill(b []uint8) {
	r := rnd.rand()
	for i := range b {
		b[i] = uint8(r.Intn(256))
	}
}
