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

// Package limiter paces the emulation at the refresh rate of the television
// specification and measures the frame rate and CPU clock frequency that is
// actually being achieved.
package limiter

import (
	"sync/atomic"
	"time"

	"github.com/nojan1/6502.ts/hardware/television/specification"
)

// Limiter is used to pace the emulation. CheckFrame() should be called once
// per frame and MeasureActual() as often as is convenient.
type Limiter struct {
	// whether to wait for the limit each frame. the measurement of the actual
	// frame rate continues when the limiter is inactive
	Active atomic.Bool

	// the ideal number of frames per second
	IdealFPS atomic.Value // float32

	// pulse that performs the limiting. the duration of the ticker is set
	// when SetLimit() is called with a new fps value
	pulse *time.Ticker

	// we don't want to wait on the pulse too often. a simple counter is good
	// enough to wait every few frames
	pulseCt      int
	pulseCtLimit int

	// pulse that performs the measurement
	measuringPulse *time.Ticker

	// the measured FPS is the number of frames divided by the amount of
	// elapsed time since the previous measurement
	measureTime   time.Time
	measureCt     int
	measureCycles uint64

	// the measured number of frames per second
	Measured atomic.Value // float32

	// the measured frequency of the CPU clock in Hz
	MeasuredClock atomic.Value // float32
}

// NewLimiter is preferred method of initialising a new instance of the Limiter
// type. The limit is set to the refresh rate of the specification.
func NewLimiter(spec *specification.Spec) *Limiter {
	lmtr := &Limiter{}
	lmtr.Active.Store(true)
	lmtr.Measured.Store(float32(0.0))
	lmtr.MeasuredClock.Store(float32(0.0))

	lmtr.pulse = time.NewTicker(time.Millisecond * 16)
	lmtr.measuringPulse = time.NewTicker(time.Millisecond * 1000)

	lmtr.SetSpec(spec)

	return lmtr
}

// SetSpec sets the limit to the refresh rate of the specification.
func (lmtr *Limiter) SetSpec(spec *specification.Spec) {
	lmtr.SetLimit(spec.FramesPerSecond)
}

// SetLimit sets the number of frames per second. Values of zero or less are
// ignored.
func (lmtr *Limiter) SetLimit(fps float32) {
	if fps <= 0.0 {
		return
	}

	lmtr.IdealFPS.Store(fps)

	lmtr.pulseCt = 0
	lmtr.pulseCtLimit = 1 + int(fps/20)
	lmtr.pulse.Reset(time.Duration(1000000000 / fps * float32(lmtr.pulseCtLimit)))

	lmtr.measureCt = 0
	lmtr.measureTime = time.Now()
}

// CheckFrame should be called every frame. The function blocks if the
// limiter is active and the emulation is running ahead of the limit.
func (lmtr *Limiter) CheckFrame() {
	lmtr.measureCt++

	if lmtr.Active.Load() {
		lmtr.pulseCt++
		if lmtr.pulseCt >= lmtr.pulseCtLimit {
			lmtr.pulseCt = 0
			<-lmtr.pulse.C
		}
	}
}

// MeasureActual measures the frame rate and clock frequency on every tick of
// the measuring pulse. The cycles argument is the total number of CPU cycles
// executed by the emulation.
//
// Callers should be mindful of how often the function is called. Checking
// the pulse channel is itself expensive.
func (lmtr *Limiter) MeasureActual(cycles uint64) {
	select {
	case <-lmtr.measuringPulse.C:
		t := time.Now()
		elapsed := float32(t.Sub(lmtr.measureTime).Seconds())
		lmtr.Measured.Store(float32(lmtr.measureCt) / elapsed)

		// the cycle count can go backwards if the emulation is reset
		if cycles >= lmtr.measureCycles {
			lmtr.MeasuredClock.Store(float32(cycles-lmtr.measureCycles) / elapsed)
		}

		lmtr.measureTime = t
		lmtr.measureCt = 0
		lmtr.measureCycles = cycles
	default:
	}
}

// Stop the limiter's tickers. The Limiter should not be used after calling
// this function.
func (lmtr *Limiter) Stop() {
	lmtr.pulse.Stop()
	lmtr.measuringPulse.Stop()
}
