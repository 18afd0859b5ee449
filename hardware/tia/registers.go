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

// TIA write registers. Values are mapped addresses.
const (
	VSYNC  = 0x00
	VBLANK = 0x01
	WSYNC  = 0x02
	RSYNC  = 0x03
	NUSIZ0 = 0x04
	NUSIZ1 = 0x05
	COLUP0 = 0x06
	COLUP1 = 0x07
	COLUPF = 0x08
	COLUBK = 0x09
	CTRLPF = 0x0a
	REFP0  = 0x0b
	REFP1  = 0x0c
	PF0    = 0x0d
	PF1    = 0x0e
	PF2    = 0x0f
	RESP0  = 0x10
	RESP1  = 0x11
	RESM0  = 0x12
	RESM1  = 0x13
	RESBL  = 0x14
	AUDC0  = 0x15
	AUDC1  = 0x16
	AUDF0  = 0x17
	AUDF1  = 0x18
	AUDV0  = 0x19
	AUDV1  = 0x1a
	GRP0   = 0x1b
	GRP1   = 0x1c
	ENAM0  = 0x1d
	ENAM1  = 0x1e
	ENABL  = 0x1f
	HMP0   = 0x20
	HMP1   = 0x21
	HMM0   = 0x22
	HMM1   = 0x23
	HMBL   = 0x24
	VDELP0 = 0x25
	VDELP1 = 0x26
	VDELBL = 0x27
	RESMP0 = 0x28
	RESMP1 = 0x29
	HMOVE  = 0x2a
	HMCLR  = 0x2b
	CXCLR  = 0x2c
)

// TIA read registers. Values are mapped addresses.
const (
	CXM0P  = 0x00
	CXM1P  = 0x01
	CXP0FB = 0x02
	CXP1FB = 0x03
	CXM0FB = 0x04
	CXM1FB = 0x05
	CXBLPF = 0x06
	CXPPMM = 0x07
	INPT0  = 0x08
	INPT1  = 0x09
	INPT2  = 0x0a
	INPT3  = 0x0b
	INPT4  = 0x0c
	INPT5  = 0x0d
)
