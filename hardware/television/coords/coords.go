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


// Package coords describes the position of the TIA's beam. A position is a
// point in time: the number of frames since reset, the scanline in the frame
// and the colour clock in the scanline.
package coords

import (
	"fmt"
)

// TelevisionCoords is the position of the beam.
type TelevisionCoords struct {
	Frame    int
	Scanline int
	Clock    int
}

func (c TelevisionCoords) String() string {
	return fmt.Sprintf("frame=%d scanline=%d clock=%d", c.Frame, c.Scanline, c.Clock)
}

// Before returns true if the position is earlier than the other position.
func (c TelevisionCoords) Before(o TelevisionCoords) bool {
	if c.Frame != o.Frame {
		return c.Frame < o.Frame
	}
	if c.Scanline != o.Scanline {
		return c.Scanline < o.Scanline
	}
	return c.Clock < o.Clock
}

// Clocks returns the number of colour clocks since reset for a television
// with the given scanline and frame size.
func (c TelevisionCoords) Clocks(clocksPerScanline int, scanlinesPerFrame int) int {
	return (c.Frame*scanlinesPerFrame+c.Scanline)*clocksPerScanline + c.Clock
}
