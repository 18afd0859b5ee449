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

package riot

import (
	"fmt"

	"github.com/nojan1/6502.ts/environment"
	"github.com/nojan1/6502.ts/hardware/riot/ports"
	"github.com/nojan1/6502.ts/hardware/riot/timer"
)

// RIOT represents the PIA 6532 found in the VCS.
type RIOT struct {
	env *environment.Environment

	RAM   [128]uint8
	Timer *timer.Timer
	Ports *ports.Ports
}

// NewRIOT is the preferred method of initialisation for the RIOT type.
func NewRIOT(env *environment.Environment) *RIOT {
	riot := &RIOT{
		env:   env,
		Timer: timer.NewTimer(),
		Ports: ports.NewPorts(),
	}
	riot.Reset()
	return riot
}

func (riot *RIOT) String() string {
	return fmt.Sprintf("%s\n%s", riot.Timer, riot.Ports)
}

// Reset the RIOT to its power-on state. RAM is randomised if the RandomState
// preference is set.
func (riot *RIOT) Reset() {
	if riot.env != nil && riot.env.Prefs != nil && riot.env.Prefs.RandomState.Get().(bool) {
		riot.env.Random.Fill(riot.RAM[:])
	} else {
		clear(riot.RAM[:])
	}
	riot.Timer.Reset()
	riot.Ports.Reset()
}

// Step the RIOT forward one CPU cycle.
func (riot *RIOT) Step() {
	riot.Timer.Step()
}

// the RAM is selected when A9 is low.
func isRAM(address uint16) bool {
	return address&0x0200 == 0
}

// the timer is selected when A2 is high.
func isTimer(address uint16) bool {
	return address&0x0004 == 0x0004
}

func (riot *RIOT) read(address uint16, passive bool) uint8 {
	if isRAM(address) {
		return riot.RAM[address&0x7f]
	}

	if isTimer(address) {
		// A0 selects between the interrupt flag and the timer value
		if address&0x01 == 0x01 {
			return riot.Timer.ReadINSTAT(passive)
		}
		return riot.Timer.ReadINTIM(passive)
	}

	return riot.Ports.Read(address)
}

// Read implements the memory.ChipBus interface.
func (riot *RIOT) Read(address uint16) (uint8, error) {
	return riot.read(address, false), nil
}

// Peek implements the memory.ChipBus interface.
func (riot *RIOT) Peek(address uint16) (uint8, error) {
	return riot.read(address, true), nil
}

// Write implements the memory.ChipBus interface.
func (riot *RIOT) Write(address uint16, data uint8) error {
	if isRAM(address) {
		riot.RAM[address&0x7f] = data
		return nil
	}

	if isTimer(address) {
		// writes with A4 low are to the edge detect control, which is not
		// connected in the VCS
		if address&0x0010 == 0 {
			return nil
		}

		// A3 is not decoded so every mirror of the TIMxT registers is written
		switch address & 0x0003 {
		case 0x00:
			riot.Timer.Set(timer.TIM1T, data)
		case 0x01:
			riot.Timer.Set(timer.TIM8T, data)
		case 0x02:
			riot.Timer.Set(timer.TIM64T, data)
		case 0x03:
			riot.Timer.Set(timer.T1024T, data)
		}
		return nil
	}

	riot.Ports.Write(address, data)
	return nil
}

// Poke implements the memory.ChipBus interface. Poking a timer register
// changes the timer value without changing the interval.
func (riot *RIOT) Poke(address uint16, data uint8) error {
	if isRAM(address) {
		riot.RAM[address&0x7f] = data
		return nil
	}

	if isTimer(address) {
		riot.Timer.INTIM = data
		return nil
	}

	riot.Ports.Write(address, data)
	return nil
}
