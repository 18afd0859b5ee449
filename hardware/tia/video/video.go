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

// Video groups the graphical objects of the TIA.
type Video struct {
	Player0   *Player
	Player1   *Player
	Missile0  *Missile
	Missile1  *Missile
	Ball      *Ball
	Playfield *Playfield

	Collisions Collisions

	// the value of the COLUBK register
	Background uint8
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{
		Player0:   NewPlayer("player0", MaskP0),
		Player1:   NewPlayer("player1", MaskP1),
		Missile0:  NewMissile("missile0", MaskM0),
		Missile1:  NewMissile("missile1", MaskM1),
		Ball:      NewBall(),
		Playfield: NewPlayfield(),
	}
}

func (vd *Video) String() string {
	s := strings.Builder{}
	s.WriteString(vd.Player0.String())
	s.WriteString("\n")
	s.WriteString(vd.Player1.String())
	s.WriteString("\n")
	s.WriteString(vd.Missile0.String())
	s.WriteString("\n")
	s.WriteString(vd.Missile1.String())
	s.WriteString("\n")
	s.WriteString(vd.Ball.String())
	s.WriteString("\n")
	s.WriteString(fmt.Sprintf("%s col=%02x bk=%02x\n", vd.Playfield.String(), vd.Playfield.Color, vd.Background))
	s.WriteString(vd.Collisions.String())
	return s.String()
}

// Reset all objects to their power-on state.
func (vd *Video) Reset() {
	vd.Player0.Reset()
	vd.Player1.Reset()
	vd.Missile0.Reset()
	vd.Missile1.Reset()
	vd.Ball.Reset()
	vd.Playfield.Reset()
	vd.Collisions.Clear()
	vd.Background = 0
}

// ClockTick advances the delayed register writes. Called on every color
// clock.
func (vd *Video) ClockTick() {
	vd.Player0.ClockTick()
	vd.Player1.ClockTick()
}

// StartMovement is called on HMOVE.
func (vd *Video) StartMovement() {
	vd.Player0.StartMovement()
	vd.Player1.StartMovement()
	vd.Missile0.StartMovement()
	vd.Missile1.StartMovement()
	vd.Ball.StartMovement()
}

// MovementTick is called for every tick of the HMOVE counter. Returns true
// if any object is still moving.
func (vd *Video) MovementTick(clock int, apply bool) bool {
	// every object must be ticked so no short-circuiting
	m := vd.Player0.MovementTick(clock, apply)
	m = vd.Player1.MovementTick(clock, apply) || m
	m = vd.Missile0.MovementTick(clock, apply) || m
	m = vd.Missile1.MovementTick(clock, apply) || m
	m = vd.Ball.MovementTick(clock, apply) || m
	return m
}

// Pixel resolves the output of every object for screen pixel x (0 to 159),
// sets the collision latches and returns the value of the colour register
// that wins the priority contest.
func (vd *Video) Pixel(x int) uint8 {
	vd.Player0.Render()
	vd.Player1.Render()
	vd.Missile0.Render()
	vd.Missile1.Render()
	vd.Ball.Render()
	vd.Playfield.Render(x)

	vd.Collisions.Combine(
		vd.Player0.Collision,
		vd.Player1.Collision,
		vd.Missile0.Collision,
		vd.Missile1.Collision,
		vd.Ball.Collision,
		vd.Playfield.Collision,
	)

	return vd.color(x)
}

func (vd *Video) color(x int) uint8 {
	p0 := vd.Player0.Collision != 0 || vd.Missile0.Collision != 0
	p1 := vd.Player1.Collision != 0 || vd.Missile1.Collision != 0
	pf := vd.Playfield.Collision != 0
	bl := vd.Ball.Collision != 0

	pfColor := vd.Playfield.Color
	if vd.Playfield.Scoremode {
		if x < 80 {
			pfColor = vd.Player0.Color
		} else {
			pfColor = vd.Player1.Color
		}
	}

	if vd.Playfield.Priority {
		switch {
		case pf:
			return pfColor
		case bl:
			return vd.Playfield.Color
		case p0:
			return vd.Player0.Color
		case p1:
			return vd.Player1.Color
		}
		return vd.Background
	}

	switch {
	case p0:
		return vd.Player0.Color
	case p1:
		return vd.Player1.Color
	case pf:
		return pfColor
	case bl:
		return vd.Playfield.Color
	}
	return vd.Background
}

// Tick the position counters of the movable objects.
func (vd *Video) Tick() {
	vd.Player0.Tick()
	vd.Player1.Tick()
	vd.Missile0.Tick()
	vd.Missile1.Tick()
	vd.Ball.Tick()
}
