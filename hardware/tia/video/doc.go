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

// Package video implements the five graphical objects of the TIA: the
// playfield, two players, two missiles and the ball.
//
// The movable objects each have a position counter that counts from 0 to 159.
// The counter ticks only during the visible part of the scanline and during
// the extra clocks injected by HMOVE. When the counter reaches one of the
// positions decoded from the NUSIZ register, the object starts drawing a copy
// of itself. The first pixel of the copy appears a fixed number of clocks
// after the decode, which is modelled with a negative render counter.
//
// Each object reports its output for the current clock as a collision value.
// The collision value is either zero or the object's collision mask, which is
// the set of collision latches the object takes part in. The TIA combines the
// values of all objects to set the latches.
package video
