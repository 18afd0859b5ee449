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
	"strings"

	"github.com/nojan1/6502.ts/hardware/tia/audio/mix"
)

// SamplesPerScanline is the number of audio samples produced by the TIA for
// every scanline.
const SamplesPerScanline = 2

// SampleFreq returns the audio sample frequency for a TIA clock frequency.
func SampleFreq(clockFrequency float64) int {
	return int(clockFrequency / 228 * SamplesPerScanline)
}

// Mixer implementations receive the mono audio samples produced by the TIA.
type Mixer interface {
	SetAudio(sample int16)
}

// Audio is the implementation of the TIA audio sub-system.
type Audio struct {
	// the reference frequency for all sound produced by the TIA is 30Khz.
	// this is the 3.58Mhz clock divided by 114. that's one half of a
	// scanline so we count to 228 and update twice in that time
	clock228 int

	// every third 30Khz clock is also a 10Khz clock
	div3 int

	// From the "Stella Programmer's Guide":
	//
	// "There are two audio circuits for generating sound. They are identical but
	// completely independent and can be operated simultaneously [...]"
	Channel0 channel
	Channel1 channel

	// the volume output for each channel
	Vol0 uint8
	Vol1 uint8

	mixer Mixer
}

// NewAudio is the preferred method of initialisation for the Audio sub-system.
func NewAudio() *Audio {
	return &Audio{}
}

// SetMixer attaches a Mixer to the audio sub-system. A nil value detaches the
// current mixer.
func (au *Audio) SetMixer(mixer Mixer) {
	au.mixer = mixer
}

func (au *Audio) String() string {
	s := strings.Builder{}
	s.WriteString("ch0: ")
	s.WriteString(au.Channel0.String())
	s.WriteString("  ch1: ")
	s.WriteString(au.Channel1.String())
	return s.String()
}

// Reset the audio sub-system to its power-on state.
func (au *Audio) Reset() {
	au.clock228 = 0
	au.div3 = 0
	au.Channel0.reset()
	au.Channel1.reset()
	au.Vol0 = 0
	au.Vol1 = 0
}

// Write to one of the six audio registers. The register is numbered from
// AUDC0 (0) to AUDV1 (5).
func (au *Audio) Write(register int, value uint8) {
	switch register {
	case 0:
		au.Channel0.Registers.Control = value & 0x0f
	case 1:
		au.Channel1.Registers.Control = value & 0x0f
	case 2:
		au.Channel0.Registers.Frequency = value & 0x1f
	case 3:
		au.Channel1.Registers.Frequency = value & 0x1f
	case 4:
		au.Channel0.Registers.Volume = value & 0x0f
	case 5:
		au.Channel1.Registers.Volume = value & 0x0f
	default:
		return
	}

	au.Channel0.reactAUDCx()
	au.Channel1.reactAUDCx()
}

// Step the audio on one TIA clock. Returns true if a new sample has been
// produced.
func (au *Audio) Step() bool {
	au.clock228++
	if au.clock228 >= 228 {
		au.clock228 = 0
	}

	if au.clock228 != 9 && au.clock228 != 123 {
		return false
	}

	au.div3++
	if au.div3 >= 3 {
		au.div3 = 0
	}
	tenKhz := au.div3 == 0

	au.Channel0.tick(tenKhz)
	au.Channel1.tick(tenKhz)

	au.Vol0 = au.Channel0.actualVol
	au.Vol1 = au.Channel1.actualVol

	if au.mixer != nil {
		au.mixer.SetAudio(mix.Mono(au.Vol0, au.Vol1))
	}

	return true
}
