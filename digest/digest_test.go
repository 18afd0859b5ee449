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

package digest_test

import (
	"image/color"
	"testing"

	"github.com/nojan1/6502.ts/digest"
	"github.com/nojan1/6502.ts/hardware/television/surface"
	"github.com/nojan1/6502.ts/hardware/tia/audio"
	"github.com/nojan1/6502.ts/hardware/tia"
	"github.com/nojan1/6502.ts/test"
)

// compile time checks of the interfaces
var _ digest.Digest = (*digest.Video)(nil)
var _ digest.Digest = (*digest.Audio)(nil)
var _ audio.Mixer = (*digest.Audio)(nil)
var _ tia.FrameHandler = (*digest.Video)(nil).Frame

func TestVideoChaining(t *testing.T) {
	a := digest.NewVideo(4, 4)
	b := digest.NewVideo(4, 4)

	s := surface.NewSurface(4, 4)
	s.Fill(color.RGBA{R: 10, G: 20, B: 30, A: 255})
	s.FrameNum = 1

	a.Frame(s)
	b.Frame(s)
	test.ExpectEquality(t, a.Hash(), b.Hash())
	test.ExpectEquality(t, a.FrameNum(), 1)

	// the same frame presented twice produces a different hash because the
	// previous hash is part of the data
	h := a.Hash()
	a.Frame(s)
	test.ExpectInequality(t, a.Hash(), h)

	// a single pixel difference changes the hash
	s.SetPixel(3, 3, color.RGBA{A: 255})
	b.Frame(s)
	test.ExpectInequality(t, a.Hash(), b.Hash())

	a.ResetDigest()
	test.ExpectEquality(t, a.Hash(), "0000000000000000000000000000000000000000")
}

func TestAudio(t *testing.T) {
	a := digest.NewAudio()
	b := digest.NewAudio()

	empty := a.Hash()

	// enough samples to cause several flushes and leave a partial buffer
	for i := range 2000 {
		a.SetAudio(int16(i))
		b.SetAudio(int16(i))
	}
	test.ExpectEquality(t, a.Hash(), b.Hash())
	test.ExpectInequality(t, a.Hash(), empty)

	b.SetAudio(0)
	test.ExpectInequality(t, a.Hash(), b.Hash())

	a.ResetDigest()
	test.ExpectEquality(t, a.Hash(), empty)
}
