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

package audio

import (
	"testing"

	"github.com/nojan1/6502.ts/hardware/tia/audio/mix"
	"github.com/nojan1/6502.ts/test"
)

type mockMixer struct {
	samples []int16
}

func (m *mockMixer) SetAudio(sample int16) {
	m.samples = append(m.samples, sample)
}

func TestPoly9(t *testing.T) {
	// a maximal length shift register produces one more one than zero
	var ones int
	for _, b := range poly9bit {
		ones += int(b)
	}
	test.ExpectEquality(t, ones, 256)
}

func TestSampleRate(t *testing.T) {
	au := NewAudio()
	m := &mockMixer{}
	au.SetMixer(m)

	var produced int
	for range 228 * 10 {
		if au.Step() {
			produced++
		}
	}
	test.ExpectEquality(t, produced, 10*SamplesPerScanline)
	test.ExpectEquality(t, len(m.samples), 10*SamplesPerScanline)

	test.ExpectEquality(t, SampleFreq(3579545), 31399)
}

func TestVolumeOnly(t *testing.T) {
	au := NewAudio()
	m := &mockMixer{}
	au.SetMixer(m)

	au.Write(0, 0x00)
	au.Write(4, 0xff)
	test.ExpectEquality(t, au.Channel0.Registers.Volume, uint8(0x0f))

	for range 228 {
		au.Step()
	}
	test.DemandEquality(t, len(m.samples), 2)
	test.ExpectEquality(t, m.samples[0], mix.Mono(15, 0))
	test.ExpectEquality(t, m.samples[1], mix.Mono(15, 0))
}

func TestPureTone(t *testing.T) {
	au := NewAudio()
	m := &mockMixer{}
	au.SetMixer(m)

	au.Write(1, 0x04)
	au.Write(3, 0x00)
	au.Write(5, 0x08)

	for range 228 * 2 {
		au.Step()
	}

	// the pure tone toggles the volume on every clock when the frequency
	// is zero
	test.DemandEquality(t, len(m.samples), 4)
	test.ExpectEquality(t, m.samples[0], mix.Mono(0, 8))
	test.ExpectEquality(t, m.samples[1], int16(0))
	test.ExpectEquality(t, m.samples[2], mix.Mono(0, 8))
	test.ExpectEquality(t, m.samples[3], int16(0))

	// the frequency divides the toggle rate
	au.Reset()
	m.samples = m.samples[:0]
	au.Write(1, 0x04)
	au.Write(3, 0x01)
	au.Write(5, 0x08)
	for range 228 * 2 {
		au.Step()
	}
	test.DemandEquality(t, len(m.samples), 4)
	test.ExpectEquality(t, m.samples[0], mix.Mono(0, 8))
	test.ExpectEquality(t, m.samples[1], mix.Mono(0, 8))
	test.ExpectEquality(t, m.samples[2], int16(0))
	test.ExpectEquality(t, m.samples[3], int16(0))
}

func TestRegisterMasks(t *testing.T) {
	au := NewAudio()
	au.Write(0, 0xff)
	au.Write(2, 0xff)
	au.Write(4, 0xff)
	test.ExpectEquality(t, au.Channel0.Registers, Registers{Control: 0x0f, Frequency: 0x1f, Volume: 0x0f})
	test.ExpectEquality(t, au.Channel0.String(), "1111 @ 11111 ^ 1111")
}
