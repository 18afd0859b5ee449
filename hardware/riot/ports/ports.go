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

// Package ports implements the input/output part of the RIOT (the IO in
// RIOT). Port A is connected to the joysticks and port B to the front panel
// of the console.
package ports

import (
	"fmt"
	"strings"
)

// Joystick is the state of a digital joystick. The fire button is not read
// through the RIOT but through the TIA's INPT4 and INPT5 registers.
type Joystick struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
	Fire  bool
}

func (stk Joystick) String() string {
	s := strings.Builder{}
	for _, d := range []struct {
		v bool
		s string
	}{{stk.Up, "up"}, {stk.Down, "down"}, {stk.Left, "left"}, {stk.Right, "right"}, {stk.Fire, "fire"}} {
		if d.v {
			if s.Len() > 0 {
				s.WriteString("+")
			}
			s.WriteString(d.s)
		}
	}
	if s.Len() == 0 {
		return "centre"
	}
	return s.String()
}

// nibble returns the four bits of the joystick state as seen in the SWCHA
// register. the bits are active low.
func (stk Joystick) nibble() uint8 {
	v := uint8(0x0f)
	if stk.Up {
		v &^= 0x01
	}
	if stk.Down {
		v &^= 0x02
	}
	if stk.Left {
		v &^= 0x04
	}
	if stk.Right {
		v &^= 0x08
	}
	return v
}

// Panel represents the console's front control panel.
type Panel struct {
	Reset  bool
	Select bool

	// color switch. false for b&w
	Color bool

	// the difficulty switches. true for pro (A), false for amateur (B)
	P0Pro bool
	P1Pro bool
}

func (pan Panel) String() string {
	s := strings.Builder{}

	s.WriteString("sel=")
	if pan.Select {
		s.WriteString("held")
	} else {
		s.WriteString("no")
	}

	s.WriteString(", res=")
	if pan.Reset {
		s.WriteString("held")
	} else {
		s.WriteString("no")
	}

	s.WriteString(", p0=")
	if pan.P0Pro {
		s.WriteString("pro")
	} else {
		s.WriteString("am")
	}

	s.WriteString(", p1=")
	if pan.P1Pro {
		s.WriteString("pro")
	} else {
		s.WriteString("am")
	}

	s.WriteString(", ")
	if pan.Color {
		s.WriteString("col")
	} else {
		s.WriteString("b&w")
	}

	return s.String()
}

func (pan Panel) value() uint8 {
	// pins 2, 4 and 5 are not used and always have a value of 1
	v := uint8(0x34)

	if pan.P1Pro {
		v |= 0x80
	}
	if pan.P0Pro {
		v |= 0x40
	}
	if pan.Color {
		v |= 0x08
	}
	if !pan.Select {
		v |= 0x02
	}
	if !pan.Reset {
		v |= 0x01
	}

	return v
}

// Ports is the I/O system of the RIOT.
type Ports struct {
	Joysticks [2]Joystick
	Panel     Panel

	// the data direction registers. a 1 bit indicates that the corresponding
	// bit is an output from the VCS
	swacnt uint8
	swbcnt uint8

	// the values most recently written to the data registers
	swchaFromCPU uint8
	swchbFromCPU uint8
}

// NewPorts is the preferred method of initialisation for the Ports type.
func NewPorts() *Ports {
	p := &Ports{}
	p.Panel.Color = true
	return p
}

func (p *Ports) String() string {
	return fmt.Sprintf("SWCHA=%02x SWACNT=%02x SWCHB=%02x SWBCNT=%02x [p0: %s, p1: %s, %s]",
		p.SWCHA(), p.swacnt, p.SWCHB(), p.swbcnt,
		p.Joysticks[0], p.Joysticks[1], p.Panel)
}

// Reset the data direction registers. The peripheral state is unchanged.
func (p *Ports) Reset() {
	p.swacnt = 0
	p.swbcnt = 0
	p.swchaFromCPU = 0
	p.swchbFromCPU = 0
}

// SWCHA returns the value of the SWCHA register. Player 0 occupies the upper
// four bits. Bits configured as outputs read back the value written by the
// CPU.
func (p *Ports) SWCHA() uint8 {
	in := p.Joysticks[0].nibble()<<4 | p.Joysticks[1].nibble()
	return (in &^ p.swacnt) | (p.swchaFromCPU & p.swacnt)
}

// SWCHB returns the value of the SWCHB register. Bits configured as outputs
// read back the value written by the CPU.
func (p *Ports) SWCHB() uint8 {
	return (p.Panel.value() &^ p.swbcnt) | (p.swchbFromCPU & p.swbcnt)
}

// List of I/O register offsets.
const (
	swcha = iota
	swacnt
	swchb
	swbcnt
)

// Read the I/O register. The register argument is the offset from the start
// of the RIOT registers.
func (p *Ports) Read(register uint16) uint8 {
	switch register & 0x03 {
	case swcha:
		return p.SWCHA()
	case swacnt:
		return p.swacnt
	case swchb:
		return p.SWCHB()
	}
	return p.swbcnt
}

// Write the I/O register. The register argument is the offset from the start
// of the RIOT registers.
func (p *Ports) Write(register uint16, data uint8) {
	switch register & 0x03 {
	case swcha:
		p.swchaFromCPU = data
	case swacnt:
		p.swacnt = data
	case swchb:
		p.swchbFromCPU = data
	case swbcnt:
		p.swbcnt = data
	}
}

// Fire returns the state of the fire button for player 0 or 1. Implements the
// tia.FireButtons interface.
func (p *Ports) Fire(player int) bool {
	return p.Joysticks[player&0x01].Fire
}
