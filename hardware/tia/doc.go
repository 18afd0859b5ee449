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

// Package tia implements the Television Interface Adaptor of the VCS. The TIA
// generates the video signal and the audio, and reads the fire buttons and
// the paddles.
//
// The TIA is stepped once per color clock, three times for every CPU cycle.
// The horizontal clock counts from 0 to 227. The first 68 clocks of each
// scanline are the horizontal blank. When the horizontal clock wraps, the CPU
// is resumed if it had been halted by a write to WSYNC and the vertical
// clock advances.
//
// A frame starts when VSYNC is turned off. At that point a new surface is
// requested from the surface factory and the vertical clock is reset. Pixels
// are written to the surface once the vertical clock passes the vertical
// blank for the television specification. The frame is finalised either when
// VSYNC is next turned on or when the vertical clock reaches the start of the
// overscan. Finalising the frame hands the surface to the frame handler.
//
// Writes to the registers that are not connected in the TIA are ignored.
package tia
