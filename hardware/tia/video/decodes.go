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

package video

// the position counter values at which copies of a player or missile are
// started for each of the eight NUSIZ settings. every setting draws a copy
// at position 156, the others are the close, medium and wide copies.
var decodes [8][160]bool

func init() {
	for i := range decodes {
		decodes[i][156] = true
	}

	decodes[1][12] = true
	decodes[2][28] = true
	decodes[3][12] = true
	decodes[3][28] = true
	decodes[4][60] = true
	decodes[6][28] = true
	decodes[6][60] = true
}

// movement is stopped when the HMOVE counter matches the value of the
// motion register. shifting the value and flipping the highest bit gives the
// number of extra clocks needed
func hmClocks(value uint8) int {
	return int((value >> 4) ^ 0x08)
}

// the widths of missiles and the ball as selected by bits 4 and 5 of NUSIZ
// and CTRLPF respectively
var widths = [4]int{1, 2, 4, 8}
