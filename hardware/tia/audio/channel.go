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

package audio

import "fmt"

// Registers is the state of the three audio registers of a channel.
type Registers struct {
	Control   uint8
	Frequency uint8
	Volume    uint8
}

func (reg Registers) String() string {
	return fmt.Sprintf("%04b @ %05b ^ %04b", reg.Control, reg.Frequency, reg.Volume)
}

type channel struct {
	Registers Registers

	// which bit of each polynomial counter to use next
	poly4ct int
	poly5ct int
	poly9ct int
	div3ct  uint8

	// the different notes are achieved by counting the 30Khz clock up to the
	// value of freq
	freqCt uint8
	freq   uint8

	// if bits 2 and 3 of control register are set then we use a 10Khz clock
	// rather than a 30Khz clock
	useTenKhz bool

	// the tones are achieved by switching the output between zero and the
	// value of the volume register
	actualVol uint8
}

func (ch *channel) String() string {
	return ch.Registers.String()
}

func (ch *channel) reset() {
	*ch = channel{}
}

// changing any of the audio registers of the channel has an immediate side
// effect.
func (ch *channel) reactAUDCx() {
	if ch.Registers.Control == 0x00 || ch.Registers.Control == 0x0b {
		ch.actualVol = ch.Registers.Volume
	}
	ch.freq = ch.Registers.Frequency
	ch.useTenKhz = ch.Registers.Control&0x0c == 0x0c
}

func (ch *channel) toggle() {
	if ch.actualVol != 0 {
		ch.actualVol = 0
	} else {
		ch.actualVol = ch.Registers.Volume
	}
}

// tick should be called at a frequency of 30Khz. the tenKhz argument is true
// on every third call.
func (ch *channel) tick(tenKhz bool) {
	if ch.useTenKhz && !tenKhz {
		return
	}

	// nothing to do if the channel is "volume only". the volume has already
	// been changed by reactAUDCx()
	if ch.Registers.Control == 0x00 || ch.Registers.Control == 0x0b {
		return
	}

	// tick main frequency clock
	if ch.freqCt == ch.freq || ch.freqCt == 31 {
		ch.freqCt = 0
	} else {
		ch.freqCt++
	}

	// update output volume only when the counter reaches the target frequency value
	if ch.freqCt != ch.freq {
		return
	}

	// the 5-bit polynomial clock toggles volume on change of bit. note the
	// current bit so we can compare
	prevBit5 := poly5bit[ch.poly5ct]

	ch.poly5ct++
	if ch.poly5ct >= len(poly5bit) {
		ch.poly5ct = 0
	}

	ctrl := ch.Registers.Control

	// check for clock tick
	if !((ctrl&0x02 == 0x0) ||
		((ctrl&0x01 == 0x0) && div31[ch.poly5ct] != 0) ||
		((ctrl&0x01 == 0x1) && poly5bit[ch.poly5ct] != 0) ||
		((ctrl&0x0f == 0xf) && poly5bit[ch.poly5ct] != prevBit5)) {
		return
	}

	if ctrl&0x04 == 0x04 {
		// pure clock
		if ctrl&0x0f == 0x0f {
			// poly5/div3
			if poly5bit[ch.poly5ct] != prevBit5 {
				ch.div3ct++
				if ch.div3ct == 3 {
					ch.div3ct = 0
					ch.toggle()
				}
			}
		} else {
			ch.toggle()
		}
		return
	}

	if ctrl&0x08 == 0x08 {
		switch {
		case ctrl == 0x08:
			// poly9
			ch.poly9ct++
			if ch.poly9ct >= len(poly9bit) {
				ch.poly9ct = 0
			}
			if poly9bit[ch.poly9ct] != 0 {
				ch.actualVol = ch.Registers.Volume
			} else {
				ch.actualVol = 0
			}
		case ctrl&0x02 != 0:
			if ch.actualVol != 0 || ctrl&0x01 == 0x01 {
				ch.actualVol = 0
			} else {
				ch.actualVol = ch.Registers.Volume
			}
		default:
			// poly5. the counter has already been advanced
			if poly5bit[ch.poly5ct] == 1 {
				ch.actualVol = ch.Registers.Volume
			} else {
				ch.actualVol = 0
			}
		}
		return
	}

	// poly4
	ch.poly4ct++
	if ch.poly4ct >= len(poly4bit) {
		ch.poly4ct = 0
	}
	if poly4bit[ch.poly4ct] == 1 {
		ch.actualVol = ch.Registers.Volume
	} else {
		ch.actualVol = 0
	}
}
