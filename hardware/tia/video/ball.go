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

const ballRenderOffset = -4

// Ball is the ball object. The ball shares its colour with the playfield.
type Ball struct {
	Collision uint16

	counter       int
	rendering     bool
	renderCounter int
	width         int

	moving   bool
	hmClocks int

	// ENABL is double buffered in the same way as the player graphics. the
	// old value is copied from the new value when GRP1 is written
	enabledNew bool
	enabledOld bool
	delaying   bool
}

// NewBall is the preferred method of initialisation for the Ball type.
func NewBall() *Ball {
	bs := &Ball{}
	bs.Reset()
	return bs
}

func (bs *Ball) String() string {
	en := "-"
	if bs.Enabled() {
		en = "+"
	}
	vdel := ""
	if bs.delaying {
		vdel = " v"
	}
	return fmt.Sprintf("ball: pos=%03d hm=%02d w=%d en=%s%s", bs.counter, bs.hmClocks, bs.width, en, vdel)
}

// Reset the ball to its power-on state.
func (bs *Ball) Reset() {
	bs.Collision = 0
	bs.counter = 0
	bs.rendering = false
	bs.renderCounter = ballRenderOffset
	bs.width = 1
	bs.moving = false
	bs.hmClocks = hmClocks(0)
	bs.enabledNew = false
	bs.enabledOld = false
	bs.delaying = false
}

// Position returns the value of the position counter.
func (bs *Ball) Position() int {
	return bs.counter
}

// Enabled returns true if the ball is being drawn.
func (bs *Ball) Enabled() bool {
	if bs.delaying {
		return bs.enabledOld
	}
	return bs.enabledNew
}

// ENABL register.
func (bs *Ball) ENABL(value uint8) {
	bs.enabledNew = value&0x02 == 0x02
}

// VDELBL register.
func (bs *Ball) VDELBL(value uint8) {
	bs.delaying = value&0x01 == 0x01
}

// HMBL register.
func (bs *Ball) HMBL(value uint8) {
	bs.hmClocks = hmClocks(value)
}

// CTRLPF register. Bits 4 and 5 select the width of the ball.
func (bs *Ball) CTRLPF(value uint8) {
	bs.width = widths[(value&0x30)>>4]
	if bs.rendering && bs.renderCounter >= bs.width {
		bs.rendering = false
	}
}

// RESBL register. Unlike the other objects, the ball starts drawing
// immediately after a reset.
func (bs *Ball) RESBL(hblank bool) {
	if hblank {
		bs.counter = 159
	} else {
		bs.counter = 157
	}
	bs.rendering = true
	bs.renderCounter = ballRenderOffset + (bs.counter - 157)
}

// ShuffleStatus is called when GRP1 is written.
func (bs *Ball) ShuffleStatus() {
	bs.enabledOld = bs.enabledNew
}

// StartMovement is called on HMOVE.
func (bs *Ball) StartMovement() {
	bs.moving = true
}

// MovementTick is called for every tick of the HMOVE counter. Returns true
// if the ball is still moving.
func (bs *Ball) MovementTick(clock int, apply bool) bool {
	if clock == bs.hmClocks {
		bs.moving = false
	}

	if bs.moving && apply {
		bs.Render()
		bs.Tick()
	}

	return bs.moving
}

// Render sets the Collision value for the current clock.
func (bs *Ball) Render() {
	if bs.rendering && bs.renderCounter >= 0 && bs.Enabled() {
		bs.Collision = MaskBL
	} else {
		bs.Collision = 0
	}
}

// Tick the position counter.
func (bs *Ball) Tick() {
	if bs.counter == 156 {
		bs.rendering = true
		bs.renderCounter = ballRenderOffset
	} else if bs.rendering {
		bs.renderCounter++
		if bs.renderCounter >= bs.width {
			bs.rendering = false
		}
	}

	bs.counter++
	if bs.counter >= 160 {
		bs.counter = 0
	}
}
