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


// Package mix combines the volumes of the two TIA audio channels into a
// single 16-bit sample.
//
// The output stage of the TIA is not linear. Both channels at full volume
// are quieter than twice one channel at full volume. The curve is taken from
// "TIA Sounding Off In The Digital Domain" by Chris Brenner:
//
// https://atariage.com/forums/topic/249865-tia-sounding-off-in-the-digital-domain/
package mix

// the largest sum of the two 4-bit channel volumes
const maxCombined = 30

// the largest sample value. half of the int16 range leaves headroom for the
// mixers that sum samples
const maxSample = 0x3fff

var samples = func() (s [maxCombined + 1]int16) {
	for v := range s {
		s[v] = int16(maxSample * curve(v))
	}
	return s
}()

// curve returns the output level in the range 0 to 1 for a combined volume
func curve(v int) float64 {
	return float64(v) / maxCombined * (30 + maxCombined) / (30 + float64(v))
}

// Mono returns the sample for the two channel volumes. Only the lower four
// bits of each volume are used.
func Mono(vol0 uint8, vol1 uint8) int16 {
	return samples[vol0&0x0f+vol1&0x0f]
}
