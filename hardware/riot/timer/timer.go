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

// Package timer implements the timer part of the PIA 6532 (the T in RIOT).
package timer

import (
	"fmt"
)

// Interval indicates how often (in CPU cycles) the timer value decreases.
// The interval is set to 1, 8, 64 or 1024 depending on which register has
// been written to by the CPU. It changes to 1 once the value passes zero and
// reverts to the written interval when INTIM is read.
type Interval int

// List of valid Interval values.
const (
	TIM1T  Interval = 1
	TIM8T  Interval = 8
	TIM64T Interval = 64
	T1024T Interval = 1024
)

func (in Interval) String() string {
	switch in {
	case TIM1T:
		return "TIM1T"
	case TIM8T:
		return "TIM8T"
	case TIM64T:
		return "TIM64T"
	case T1024T:
		return "T1024T"
	}
	return "unknown interval"
}

// Timer implements the timer part of the PIA 6532.
type Timer struct {
	// the interval most recently requested by the CPU
	Interval Interval

	// the interval currently in use. this is 1 once the timer has passed zero
	base int

	// number of cycles since the value was last decreased
	sub int

	// INTIM is the current timer value
	INTIM uint8

	// the interrupt flag as read from INSTAT
	flag uint8

	// the flag is not cleared by a read in the same cycle it was set
	flagSetThisCycle bool

	// the timer has passed zero since the last write or INTIM read. the
	// interval reverts on the next INTIM read even if INSTAT has cleared
	// the flag
	expired bool
}

// NewTimer is the preferred method of initialisation of the Timer type.
func NewTimer() *Timer {
	tmr := &Timer{}
	tmr.Reset()
	return tmr
}

func (tmr *Timer) String() string {
	return fmt.Sprintf("INTIM=%#02x sub=%d intv=%s base=%d INSTAT=%#02x",
		tmr.INTIM, tmr.sub, tmr.Interval, tmr.base, tmr.flag)
}

// Reset the timer to its power-on state.
func (tmr *Timer) Reset() {
	tmr.Interval = TIM1T
	tmr.base = 1
	tmr.sub = 0
	tmr.INTIM = 0
	tmr.flag = 0
	tmr.flagSetThisCycle = false
	tmr.expired = false
}

// Set the interval and the timer value. The interrupt flag is cleared.
func (tmr *Timer) Set(interval Interval, value uint8) {
	tmr.Interval = interval
	tmr.base = int(interval)
	tmr.sub = 0
	tmr.INTIM = value
	tmr.flag = 0
	tmr.expired = false
}

// Step the timer forward one CPU cycle.
func (tmr *Timer) Step() {
	tmr.sub++
	tmr.flagSetThisCycle = false

	if tmr.sub >= tmr.base {
		if tmr.INTIM == 0 {
			tmr.INTIM = 0xff
			tmr.base = 1
			tmr.flag = 0xff
			tmr.flagSetThisCycle = true
			tmr.expired = true
		} else {
			tmr.INTIM--
		}
		tmr.sub = 0
	}
}

// ReadINTIM returns the timer value. Unless the flag was set this cycle,
// reading clears the interrupt flag and reverts the timer to the written
// interval. A passive read has no side effects.
func (tmr *Timer) ReadINTIM(passive bool) uint8 {
	if !passive && !tmr.flagSetThisCycle {
		if tmr.expired {
			tmr.base = int(tmr.Interval)
			tmr.expired = false
		}
		tmr.flag = 0
	}
	return tmr.INTIM
}

// ReadINSTAT returns the interrupt flag. Unless the flag was set this cycle,
// reading clears the flag. A passive read has no side effects.
func (tmr *Timer) ReadINSTAT(passive bool) uint8 {
	v := tmr.flag
	if !passive && !tmr.flagSetThisCycle {
		tmr.flag = 0
	}
	return v
}
