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

import "fmt"

// the first pixel of a missile copy is drawn four clocks after the position
// counter reaches the decoded value
const missileRenderOffset = -4

// Missile is one of the two missile objects.
type Missile struct {
	label string

	Collision uint16
	mask      uint16

	counter       int
	rendering     bool
	renderCounter int
	width         int
	decodes       *[160]bool

	moving   bool
	hmClocks int

	// enam is the value of the ENAMx register. the missile is only drawn if
	// it is not locked to the player
	enam   bool
	locked bool

	nusiz uint8
}

// NewMissile is the preferred method of initialisation for the Missile type.
func NewMissile(label string, mask uint16) *Missile {
	ms := &Missile{
		label: label,
		mask:  mask,
	}
	ms.Reset()
	return ms
}

func (ms *Missile) String() string {
	lock := ""
	if ms.locked {
		lock = " locked"
	}
	en := "-"
	if ms.enam {
		en = "+"
	}
	return fmt.Sprintf("%s: pos=%03d hm=%02d nusiz=%03b w=%d en=%s%s",
		ms.label, ms.counter, ms.hmClocks, ms.nusiz, ms.width, en, lock)
}

// Reset the missile to its power-on state.
func (ms *Missile) Reset() {
	ms.Collision = 0
	ms.counter = 0
	ms.rendering = false
	ms.renderCounter = missileRenderOffset
	ms.width = 1
	ms.decodes = &decodes[0]
	ms.nusiz = 0
	ms.moving = false
	ms.hmClocks = hmClocks(0)
	ms.enam = false
	ms.locked = false
}

// Position returns the value of the position counter.
func (ms *Missile) Position() int {
	return ms.counter
}

// Enabled returns true if the missile is being drawn.
func (ms *Missile) Enabled() bool {
	return ms.enam && !ms.locked
}

// ENAM register.
func (ms *Missile) ENAM(value uint8) {
	ms.enam = value&0x02 == 0x02
}

// HMM register.
func (ms *Missile) HMM(value uint8) {
	ms.hmClocks = hmClocks(value)
}

// RESM register.
func (ms *Missile) RESM(hblank bool) {
	if hblank {
		ms.counter = 159
	} else {
		ms.counter = 157
	}
}

// RESMP register. While bit 1 is set the missile is hidden. When the bit is
// cleared the missile is positioned at the centre of the player.
func (ms *Missile) RESMP(value uint8, player *Player) {
	locked := value&0x02 == 0x02
	if locked == ms.locked {
		return
	}
	ms.locked = locked
	if !locked {
		ms.counter = player.RespClock()
	}
}

// NUSIZ register. Bits 4 and 5 select the width of the missile and the
// lower bits the number of copies.
func (ms *Missile) NUSIZ(value uint8) {
	ms.nusiz = value & 0x07
	ms.width = widths[(value&0x30)>>4]
	ms.decodes = &decodes[ms.nusiz]

	if ms.rendering && ms.renderCounter >= ms.width {
		ms.rendering = false
	}
}

// StartMovement is called on HMOVE.
func (ms *Missile) StartMovement() {
	ms.moving = true
}

// MovementTick is called for every tick of the HMOVE counter. Returns true
// if the missile is still moving.
func (ms *Missile) MovementTick(clock int, apply bool) bool {
	if clock == ms.hmClocks {
		ms.moving = false
	}

	if ms.moving && apply {
		ms.Render()
		ms.Tick()
	}

	return ms.moving
}

// Render sets the Collision value for the current clock.
func (ms *Missile) Render() {
	if ms.rendering && ms.renderCounter >= 0 && ms.Enabled() {
		ms.Collision = ms.mask
	} else {
		ms.Collision = 0
	}
}

// Tick the position counter.
func (ms *Missile) Tick() {
	if ms.decodes[ms.counter] {
		ms.rendering = true
		ms.renderCounter = missileRenderOffset
	} else if ms.rendering {
		ms.renderCounter++
		if ms.renderCounter >= ms.width {
			ms.rendering = false
		}
	}

	ms.counter++
	if ms.counter >= 160 {
		ms.counter = 0
	}
}
