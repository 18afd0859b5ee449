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

package riot_test

import (
	"testing"

	"github.com/nojan1/6502.ts/hardware/riot"
	"github.com/nojan1/6502.ts/hardware/riot/timer"
	"github.com/nojan1/6502.ts/test"
)

func TestRAM(t *testing.T) {
	r := riot.NewRIOT(nil)

	test.ExpectSuccess(t, r.Write(0x80, 0x12))
	test.ExpectEquality(t, r.RAM[0], uint8(0x12))

	v, err := r.Read(0xff)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x00))

	test.ExpectSuccess(t, r.Write(0xff, 0x34))
	v, _ = r.Read(0xff)
	test.ExpectEquality(t, v, uint8(0x34))
}

func TestTimerRegisters(t *testing.T) {
	r := riot.NewRIOT(nil)

	test.ExpectSuccess(t, r.Write(0x0296, 0x02))
	test.ExpectEquality(t, r.Timer.Interval, timer.TIM64T)

	v, _ := r.Read(0x0284)
	test.ExpectEquality(t, v, uint8(0x02))

	for range 3 * 64 {
		r.Step()
	}
	v, _ = r.Peek(0x0284)
	test.ExpectEquality(t, v, uint8(0xff))

	// INSTAT, set during this cycle so the read does not clear it
	v, _ = r.Read(0x0285)
	test.ExpectEquality(t, v, uint8(0xff))
	r.Step()
	v, _ = r.Read(0x0285)
	test.ExpectEquality(t, v, uint8(0xff))
	v, _ = r.Read(0x0285)
	test.ExpectEquality(t, v, uint8(0x00))

	// writes to the edge detect control do not change the timer
	test.ExpectSuccess(t, r.Write(0x0284, 0x55))
	test.ExpectEquality(t, r.Timer.Interval, timer.TIM64T)
}

func TestPorts(t *testing.T) {
	r := riot.NewRIOT(nil)

	r.Ports.Joysticks[0].Left = true
	v, _ := r.Read(0x0280)
	test.ExpectEquality(t, v, uint8(0xbf))

	r.Ports.Panel.Select = true
	v, _ = r.Read(0x0282)
	test.ExpectEquality(t, v, uint8(0x3d))
}

func TestTimerRegisterMirrors(t *testing.T) {
	r := riot.NewRIOT(nil)

	for _, tc := range []struct {
		address  uint16
		interval timer.Interval
	}{
		{0x029c, timer.TIM1T},
		{0x029d, timer.TIM8T},
		{0x029e, timer.TIM64T},
		{0x029f, timer.T1024T},
	} {
		test.ExpectSuccess(t, r.Write(tc.address, 0x40))
		test.ExpectEquality(t, r.Timer.Interval, tc.interval)
		v, _ := r.Peek(0x0284)
		test.ExpectEquality(t, v, uint8(0x40))
	}

	// A4 low is the edge detect control and does not touch the timer
	test.ExpectSuccess(t, r.Write(0x0284, 0x10))
	v, _ := r.Peek(0x0284)
	test.ExpectEquality(t, v, uint8(0x40))
}
