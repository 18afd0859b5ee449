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

package tia

import "github.com/nojan1/6502.ts/hardware/television/specification"

// Read implements the memory.ChipBus interface. Only the driven bits of the
// register are meaningful. The memory decoder fills in the rest.
func (tia *TIA) Read(address uint16) (uint8, error) {
	return tia.read(address, false), nil
}

// Peek implements the memory.ChipBus interface.
func (tia *TIA) Peek(address uint16) (uint8, error) {
	return tia.read(address, true), nil
}

// Write implements the memory.ChipBus interface.
func (tia *TIA) Write(address uint16, data uint8) error {
	tia.write(address, data, false)
	return nil
}

// Poke implements the memory.ChipBus interface. Poking WSYNC has no effect
// on the CPU.
func (tia *TIA) Poke(address uint16, data uint8) error {
	tia.write(address, data, true)
	return nil
}

func (tia *TIA) read(address uint16, passive bool) uint8 {
	switch reg := address & 0x0f; reg {
	case CXM0P, CXM1P, CXP0FB, CXP1FB, CXM0FB, CXM1FB, CXBLPF, CXPPMM:
		return tia.Video.Collisions.Register(int(reg))
	case INPT0, INPT1, INPT2, INPT3:
		return tia.Paddles[reg-INPT0].INPT(tia.Clocks)
	case INPT4:
		return tia.fireButton(0, passive)
	case INPT5:
		return tia.fireButton(1, passive)
	}
	return 0
}

// fire buttons are active low.
func (tia *TIA) fireButton(player int, passive bool) uint8 {
	pressed := tia.buttons != nil && tia.buttons.Fire(player)

	if tia.latchInputs {
		if pressed && !passive {
			tia.inputLatches[player] = true
		}
		pressed = pressed || tia.inputLatches[player]
	}

	if pressed {
		return 0x00
	}
	return 0x80
}

// the TIA only sees the horizontal blank for the purposes of the position
// registers. the extended blank counts as blank.
func (tia *TIA) inHblank() bool {
	return tia.HClock < tia.hblankWidth()
}

func (tia *TIA) write(address uint16, data uint8, poke bool) {
	vd := tia.Video

	switch address & 0x3f {
	case VSYNC:
		if data&0x02 == 0x02 && !tia.vsync {
			tia.vsync = true
			tia.finalizeFrame()
		} else if data&0x02 == 0x00 && tia.vsync {
			tia.vsync = false
			tia.startFrame()
		}

	case VBLANK:
		tia.vblank = data&0x02 == 0x02

		latch := data&0x40 == 0x40
		if latch != tia.latchInputs {
			tia.latchInputs = latch
			tia.inputLatches = [2]bool{}
		}

		for _, p := range tia.Paddles {
			p.VBLANK(tia.Clocks, data)
		}

	case WSYNC:
		if !poke && tia.cpu != nil {
			tia.cpu.Halt()
		}

	case RSYNC:
		if !poke {
			tia.HClock = 225
		}

	case NUSIZ0:
		vd.Player0.NUSIZ(data)
		vd.Missile0.NUSIZ(data)
	case NUSIZ1:
		vd.Player1.NUSIZ(data)
		vd.Missile1.NUSIZ(data)

	// the lowest bit of the colour registers is not connected
	case COLUP0:
		vd.Player0.Color = data & 0xfe
	case COLUP1:
		vd.Player1.Color = data & 0xfe
	case COLUPF:
		vd.Playfield.Color = data & 0xfe
	case COLUBK:
		vd.Background = data & 0xfe

	case CTRLPF:
		vd.Playfield.CTRLPF(data)
		vd.Ball.CTRLPF(data)
	case REFP0:
		vd.Player0.REFP(data)
	case REFP1:
		vd.Player1.REFP(data)
	case PF0:
		vd.Playfield.PF0(data)
	case PF1:
		vd.Playfield.PF1(data)
	case PF2:
		vd.Playfield.PF2(data)

	case RESP0:
		vd.Player0.RESP(tia.inHblank())
	case RESP1:
		vd.Player1.RESP(tia.inHblank())
	case RESM0:
		vd.Missile0.RESM(tia.inHblank())
	case RESM1:
		vd.Missile1.RESM(tia.inHblank())
	case RESBL:
		vd.Ball.RESBL(tia.inHblank())

	case AUDC0, AUDC1, AUDF0, AUDF1, AUDV0, AUDV1:
		tia.Audio.Write(int(address&0x3f)-AUDC0, data)

	case GRP0:
		vd.Player0.GRP(data)
		vd.Player1.ShufflePatterns()
	case GRP1:
		vd.Player1.GRP(data)
		vd.Player0.ShufflePatterns()
		vd.Ball.ShuffleStatus()

	case ENAM0:
		vd.Missile0.ENAM(data)
	case ENAM1:
		vd.Missile1.ENAM(data)
	case ENABL:
		vd.Ball.ENABL(data)

	case HMP0:
		vd.Player0.HMP(data)
	case HMP1:
		vd.Player1.HMP(data)
	case HMM0:
		vd.Missile0.HMM(data)
	case HMM1:
		vd.Missile1.HMM(data)
	case HMBL:
		vd.Ball.HMBL(data)

	case VDELP0:
		vd.Player0.VDELP(data)
	case VDELP1:
		vd.Player1.VDELP(data)
	case VDELBL:
		vd.Ball.VDELBL(data)

	case RESMP0:
		vd.Missile0.RESMP(data, vd.Player0)
	case RESMP1:
		vd.Missile1.RESMP(data, vd.Player1)

	case HMOVE:
		tia.movementCtr = 0
		tia.movementInProgress = true
		vd.StartMovement()
		if tia.HClock < specification.HorizClksHBlank {
			tia.extendedHblank = true
		}

	case HMCLR:
		vd.Player0.HMP(0)
		vd.Player1.HMP(0)
		vd.Missile0.HMM(0)
		vd.Missile1.HMM(0)
		vd.Ball.HMBL(0)

	case CXCLR:
		vd.Collisions.Clear()
	}
}
