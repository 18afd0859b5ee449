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

// The fifteen collision latches of the TIA. Each latch is set when the two
// named objects output a pixel at the same time.
const (
	M0P1 uint16 = 1 << iota
	M0P0
	M1P0
	M1P1
	P0PF
	P0BL
	P1PF
	P1BL
	M0PF
	M0BL
	M1PF
	M1BL
	BLPF
	P0P1
	M0M1
)

// Collision masks for each object. A mask contains every latch that the
// object is involved in.
const (
	MaskP0 = M0P0 | M1P0 | P0PF | P0BL | P0P1
	MaskP1 = M0P1 | M1P1 | P1PF | P1BL | P0P1
	MaskM0 = M0P1 | M0P0 | M0PF | M0BL | M0M1
	MaskM1 = M1P0 | M1P1 | M1PF | M1BL | M0M1
	MaskBL = P0BL | P1BL | M0BL | M1BL | BLPF
	MaskPF = P0PF | P1PF | M0PF | M1PF | BLPF
)

// Collisions is the set of collision latches.
type Collisions struct {
	Latches uint16
}

// Combine the collision values of every object for a single clock. A latch
// is set if more than one object has contributed it.
func (cx *Collisions) Combine(values ...uint16) {
	var acc uint16
	for _, v := range values {
		cx.Latches |= acc & v
		acc |= v
	}
}

// Clear all latches. The CXCLR register.
func (cx *Collisions) Clear() {
	cx.Latches = 0
}

// the pair of latches presented by each collision register. the first latch
// is presented in bit 7 and the second in bit 6
var registerLatches = [8][2]uint16{
	{M0P1, M0P0},
	{M1P0, M1P1},
	{P0PF, P0BL},
	{P1PF, P1BL},
	{M0PF, M0BL},
	{M1PF, M1BL},
	{BLPF, 0},
	{P0P1, M0M1},
}

// Register returns the value of collision register n (CXM0P to CXPPMM). Only
// bits 7 and 6 are driven.
func (cx *Collisions) Register(n int) uint8 {
	var v uint8
	l := registerLatches[n&0x07]
	if cx.Latches&l[0] != 0 {
		v |= 0x80
	}
	if cx.Latches&l[1] != 0 {
		v |= 0x40
	}
	return v
}

var registerNames = [8]string{"CXM0P", "CXM1P", "CXP0FB", "CXP1FB", "CXM0FB", "CXM1FB", "CXBLPF", "CXPPMM"}

func (cx *Collisions) String() string {
	s := strings.Builder{}
	for i, n := range registerNames {
		if i > 0 {
			s.WriteString(" ")
		}
		s.WriteString(fmt.Sprintf("%s=%02b", n, cx.Register(i)>>6))
	}
	return s.String()
}
