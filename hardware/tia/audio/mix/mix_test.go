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


package mix_test

import (
	"testing"

	"github.com/nojan1/6502.ts/hardware/tia/audio/mix"
	"github.com/nojan1/6502.ts/test"
)

func TestMono(t *testing.T) {
	test.ExpectEquality(t, mix.Mono(0, 0), int16(0))
	test.ExpectEquality(t, mix.Mono(15, 15), int16(0x3fff))

	// the channels are interchangeable
	test.ExpectEquality(t, mix.Mono(3, 9), mix.Mono(9, 3))

	// upper bits of the volume registers are ignored
	test.ExpectEquality(t, mix.Mono(0xf5, 0x00), mix.Mono(0x05, 0x00))

	// the output is louder for every step of volume but one channel at full
	// volume is more than half of both channels at full volume
	for v := uint8(1); v < 15; v++ {
		test.ExpectSuccess(t, mix.Mono(v, 15) > mix.Mono(v-1, 15))
	}
	test.ExpectSuccess(t, mix.Mono(15, 0) > mix.Mono(15, 15)/2)
}
