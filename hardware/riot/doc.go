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

// Package riot implements the PIA 6532, also known as the RIOT (RAM, I/O,
// Timer). The RIOT type implements the memory.ChipBus interface for both the
// RAM and the RIOT memory areas.
//
// The timer can be found in the timer package, whereas the I/O system can be
// found in the ports package.
package riot
