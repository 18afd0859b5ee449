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

import (
	"fmt"
	"strings"
)

// Playfield is the low resolution background graphics. The playfield is
// twenty bits wide and each bit is four pixels wide. The twenty bits are
// drawn twice on every scanline. The second copy is either a repeat of the
// first or a reflection of it.
type Playfield struct {
	Collision uint16

	// the value of the COLUPF register. also the colour of the ball
	Color uint8

	pf0 uint8
	pf1 uint8
	pf2 uint8

	// the twenty bits of the playfield in the order they are drawn. bit 0 is
	// the leftmost
	data uint32

	Reflected bool

	// score mode draws the left half of the playfield in the colour of
	// player 0 and the right half in the colour of player 1
	Scoremode bool

	// the playfield and the ball are drawn above the players
	Priority bool
}

// NewPlayfield is the preferred method of initialisation for the Playfield
// type.
func NewPlayfield() *Playfield {
	return &Playfield{}
}

func (pf *Playfield) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("pf: %04b %08b %08b", pf.pf0>>4, pf.pf1, pf.pf2))
	if pf.Reflected {
		s.WriteString(" reflected")
	}
	if pf.Scoremode {
		s.WriteString(" score")
	}
	if pf.Priority {
		s.WriteString(" priority")
	}
	return s.String()
}

// Reset the playfield to its power-on state.
func (pf *Playfield) Reset() {
	*pf = Playfield{}
}

// CTRLPF register.
func (pf *Playfield) CTRLPF(value uint8) {
	pf.Reflected = value&0x01 == 0x01
	pf.Scoremode = value&0x02 == 0x02
	pf.Priority = value&0x04 == 0x04
}

// PF0 register. Only the upper four bits are used. They are drawn from
// bit 4 to bit 7.
func (pf *Playfield) PF0(value uint8) {
	pf.pf0 = value & 0xf0
	pf.update()
}

// PF1 register. Drawn from bit 7 to bit 0.
func (pf *Playfield) PF1(value uint8) {
	pf.pf1 = value
	pf.update()
}

// PF2 register. Drawn from bit 0 to bit 7.
func (pf *Playfield) PF2(value uint8) {
	pf.pf2 = value
	pf.update()
}

func (pf *Playfield) update() {
	pf.data = 0
	for i := range 4 {
		if pf.pf0&(0x10<<i) != 0 {
			pf.data |= 1 << i
		}
	}
	for i := range 8 {
		if pf.pf1&(0x80>>i) != 0 {
			pf.data |= 1 << (4 + i)
		}
	}
	for i := range 8 {
		if pf.pf2&(0x01<<i) != 0 {
			pf.data |= 1 << (12 + i)
		}
	}
}

// bit returns the playfield bit for screen pixel x (0 to 159).
func (pf *Playfield) bit(x int) bool {
	b := x / 4
	if b >= 20 {
		b -= 20
		if pf.Reflected {
			b = 19 - b
		}
	}
	return pf.data&(1<<b) != 0
}

// Render sets the Collision value for screen pixel x.
func (pf *Playfield) Render(x int) {
	if pf.bit(x) {
		pf.Collision = MaskPF
	} else {
		pf.Collision = 0
	}
}
