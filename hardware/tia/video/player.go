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

const (
	// the first pixel of a player copy is drawn five clocks after the
	// position counter reaches the decoded value
	playerRenderOffset = -5

	// register writes that take effect after a delay. measured in color
	// clocks
	grpDelay     = 2
	shuffleDelay = 2
	hmpDelay     = 1
)

// Player is one of the two player objects.
type Player struct {
	label string

	// the collision value of the player for the current clock. either zero
	// or the player's collision mask
	Collision uint16
	mask      uint16

	// the value of the COLUPx register
	Color uint8

	counter       int
	rendering     bool
	renderCounter int
	width         int
	decodes       *[160]bool

	moving    bool
	hmClocks  int
	hmPending uint8

	// the GRPx register is double buffered. the old pattern is the new
	// pattern at the time the other player's GRP register was written. the
	// old pattern is used if vertical delay is on
	patternNew     uint8
	patternOld     uint8
	patternPending uint8

	// the pattern as it is drawn, taking into account reflection and width
	pattern uint32

	reflected bool
	delaying  bool

	// delay counters for register writes
	grpCounter     int
	shuffleCounter int
	hmpCounter     int

	// the number of the NUSIZ setting. used for String()
	nusiz uint8
}

// NewPlayer is the preferred method of initialisation for the Player type.
func NewPlayer(label string, mask uint16) *Player {
	ps := &Player{
		label: label,
		mask:  mask,
	}
	ps.Reset()
	return ps
}

func (ps *Player) String() string {
	ref := " "
	if ps.reflected {
		ref = "r"
	}
	vdel := ""
	if ps.delaying {
		vdel = " v"
	}
	return fmt.Sprintf("%s: pos=%03d hm=%02d nusiz=%03b gfx=%s%08b%s col=%02x",
		ps.label, ps.counter, ps.hmClocks, ps.nusiz, ref, ps.currentGfx(), vdel, ps.Color)
}

// Reset the player to its power-on state.
func (ps *Player) Reset() {
	ps.Collision = 0
	ps.Color = 0
	ps.counter = 0
	ps.rendering = false
	ps.renderCounter = playerRenderOffset
	ps.width = 8
	ps.decodes = &decodes[0]
	ps.nusiz = 0
	ps.moving = false
	ps.hmClocks = hmClocks(0)
	ps.hmPending = 0
	ps.patternNew = 0
	ps.patternOld = 0
	ps.patternPending = 0
	ps.pattern = 0
	ps.reflected = false
	ps.delaying = false
	ps.grpCounter = 0
	ps.shuffleCounter = 0
	ps.hmpCounter = 0
}

// Position returns the value of the position counter.
func (ps *Player) Position() int {
	return ps.counter
}

// GRP register. The new pattern takes effect after a short delay.
func (ps *Player) GRP(value uint8) {
	ps.patternPending = value
	ps.grpCounter = grpDelay
}

// HMP register. The new motion value takes effect after a short delay.
func (ps *Player) HMP(value uint8) {
	ps.hmPending = value
	ps.hmpCounter = hmpDelay
}

// NUSIZ register. A change of width takes effect immediately.
func (ps *Player) NUSIZ(value uint8) {
	ps.nusiz = value & 0x07

	oldWidth := ps.width
	switch ps.nusiz {
	case 5:
		ps.width = 16
	case 7:
		ps.width = 32
	default:
		ps.width = 8
	}
	ps.decodes = &decodes[ps.nusiz]

	if ps.rendering && ps.renderCounter >= ps.width {
		ps.rendering = false
	}

	if oldWidth != ps.width {
		ps.updatePattern()
	}
}

// RESP register. The counter value depends on whether the write happened
// during the horizontal blank.
func (ps *Player) RESP(hblank bool) {
	if hblank {
		ps.counter = 159
	} else {
		ps.counter = 157
	}
}

// REFP register.
func (ps *Player) REFP(value uint8) {
	reflected := value&0x08 == 0x08
	if reflected != ps.reflected {
		ps.reflected = reflected
		ps.updatePattern()
	}
}

// VDELP register.
func (ps *Player) VDELP(value uint8) {
	delaying := value&0x01 == 0x01
	if delaying != ps.delaying {
		ps.delaying = delaying
		ps.updatePattern()
	}
}

// ShufflePatterns is called when the GRP register of the other player is
// written. The new pattern is copied to the old pattern after a short delay.
func (ps *Player) ShufflePatterns() {
	ps.shuffleCounter = shuffleDelay
}

// StartMovement is called on HMOVE.
func (ps *Player) StartMovement() {
	ps.moving = true
}

// MovementTick is called for every tick of the HMOVE counter. The player
// receives an extra clock if apply is true and it is still moving. Returns
// true if the player is still moving.
func (ps *Player) MovementTick(clock int, apply bool) bool {
	// stop movement only if the clock matches exactly
	if clock == ps.hmClocks {
		ps.moving = false
	}

	if ps.moving && apply {
		ps.Render()
		ps.Tick()
	}

	return ps.moving
}

// Render sets the Collision value for the current clock.
func (ps *Player) Render() {
	if ps.rendering && ps.renderCounter >= 0 && ps.pattern&(1<<(ps.width-ps.renderCounter-1)) != 0 {
		ps.Collision = ps.mask
	} else {
		ps.Collision = 0
	}
}

// ClockTick advances the register delays. Called on every color clock.
func (ps *Player) ClockTick() {
	if ps.shuffleCounter > 0 {
		ps.shuffleCounter--
		if ps.shuffleCounter == 0 {
			old := ps.patternOld
			ps.patternOld = ps.patternNew
			if ps.delaying && old != ps.patternOld {
				ps.updatePattern()
			}
		}
	}

	if ps.grpCounter > 0 {
		ps.grpCounter--
		if ps.grpCounter == 0 {
			ps.patternNew = ps.patternPending
			if !ps.delaying {
				ps.updatePattern()
			}
		}
	}

	if ps.hmpCounter > 0 {
		ps.hmpCounter--
		if ps.hmpCounter == 0 {
			ps.hmClocks = hmClocks(ps.hmPending)
		}
	}
}

// Tick the position counter.
func (ps *Player) Tick() {
	if ps.decodes[ps.counter] {
		ps.rendering = true
		ps.renderCounter = playerRenderOffset
	} else if ps.rendering {
		ps.renderCounter++
		if ps.renderCounter >= ps.width {
			ps.rendering = false
		}
	}

	ps.counter++
	if ps.counter >= 160 {
		ps.counter = 0
	}
}

// RespClock is the position counter value that a missile takes when it is
// released from the player by RESMP. The missile is centred on the player.
func (ps *Player) RespClock() int {
	var c int
	switch ps.width {
	case 16:
		c = ps.counter - 6
	case 32:
		c = ps.counter - 10
	default:
		c = ps.counter - 3
	}
	if c < 0 {
		c += 160
	}
	return c
}

func (ps *Player) currentGfx() uint8 {
	if ps.delaying {
		return ps.patternOld
	}
	return ps.patternNew
}

// the pattern is stretched for the double and quadruple width players and
// mirrored if reflection is on. bit (width-1) is drawn first.
func (ps *Player) updatePattern() {
	gfx := uint32(ps.currentGfx())

	scale := ps.width / 8
	fill := uint32(1<<scale) - 1

	ps.pattern = 0
	for i := range 8 {
		if gfx&(1<<i) == 0 {
			continue
		}

		// the position of the bit in the unstretched pattern
		b := i
		if ps.reflected {
			b = 7 - i
		}

		ps.pattern |= fill << (b * scale)
	}
}
