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

// Package paddle models the resistor-capacitor circuit that is used to read
// the position of a paddle controller through the INPT0 to INPT3 registers.
//
// The paddle is a variable resistor that charges a capacitor. The TIA input
// reads high once the voltage over the capacitor passes a threshold. The
// program discharges ("dumps") the capacitor with bit 7 of VBLANK and then
// counts the scanlines until the input goes high.
package paddle

import (
	"fmt"
	"math"
)

const (
	capacitance = 68e-9
	resistance  = 1e6
	seriesR     = 1.8e3
	voltage     = 5.0

	// the number of scanlines it takes to reach the threshold voltage with
	// the paddle at its maximum resistance
	linesFull = 380
)

// the fourth order approximation of the exponential function. this gives the
// trip point to within a few percent
func exp(x float64) float64 {
	x2 := x * x / 2
	x3 := x2 * x / 3
	x4 := x3 * x / 4
	return 1 + x + x2 + x3 + x4
}

// Paddle is the charging circuit of a single paddle. Time is measured in TIA
// clocks.
type Paddle struct {
	clockFreq float64
	threshold float64

	// the current voltage and the time it was last calculated
	u         float64
	timestamp int64

	// the position of the paddle in the range 0.0 to 1.0
	value float64

	dumped bool
}

// NewPaddle is the preferred method of initialisation for the Paddle type.
// The clock frequency is the frequency of the TIA clock.
func NewPaddle(clockFreq float64) *Paddle {
	pdl := &Paddle{
		clockFreq: clockFreq,
		threshold: voltage * (1 - math.Exp(-linesFull*228/clockFreq/(resistance+seriesR)/capacitance)),
		value:     0.5,
	}
	return pdl
}

func (pdl *Paddle) String() string {
	return fmt.Sprintf("%.2f (%.2fV)", pdl.value, pdl.u)
}

// Reset the paddle circuit. The position of the paddle is unchanged.
func (pdl *Paddle) Reset(now int64) {
	pdl.u = 0
	pdl.dumped = false
	pdl.timestamp = now
}

// Value returns the position of the paddle.
func (pdl *Paddle) Value() float64 {
	return pdl.value
}

// SetValue changes the position of the paddle. The value is clamped to the
// range 0.0 to 1.0.
func (pdl *Paddle) SetValue(now int64, value float64) {
	pdl.update(now)
	pdl.value = min(max(value, 0.0), 1.0)
}

// VBLANK should be called whenever the VBLANK register is written. Bit 7
// dumps the capacitor to ground.
func (pdl *Paddle) VBLANK(now int64, value uint8) {
	if value&0x80 == 0x80 {
		pdl.dumped = true
		pdl.u = 0
	} else if pdl.dumped {
		pdl.dumped = false
		pdl.timestamp = now
	}
}

// INPT returns the value of the paddle's input register. Only bit 7 is
// meaningful.
func (pdl *Paddle) INPT(now int64) uint8 {
	pdl.update(now)
	if !pdl.dumped && pdl.u >= pdl.threshold {
		return 0x80
	}
	return 0x00
}

func (pdl *Paddle) update(now int64) {
	if pdl.dumped {
		return
	}

	// the voltage is the integral between the two timestamps
	dt := float64(now - pdl.timestamp)
	pdl.u = voltage * (1 - (1-pdl.u/voltage)*exp(-dt/(pdl.value*resistance+seriesR)/capacitance/pdl.clockFreq))
	pdl.timestamp = now
}
