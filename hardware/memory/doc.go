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

// Package memory implements the address decoding of the VCS. The CPU accesses
// the chips of the VCS through the Memory type, which maps every address to
// the primary address of one of the memory areas and passes the access on to
// the chip that owns it.
//
//	    CPU ---- cpu bus ---- MEMORY ---- chip bus ---- TIA
//	                                                \
//	                             |                   \
//	                             |                    \---- RIOT (RAM, timer and ports)
//	                             |
//	                        debugger bus               \--<- Cartridge
//	                             |
//	                          DEBUGGER
//
// The memorymap package contains the details of the address decoding. The
// arrow pointing away from the Cartridge indicates that the CPU can only read
// from the cartridge. Writes that are not bank switching hotspots are
// reported as traps.
//
// The TIA does not drive all the bits of the data bus when it is read. The
// undriven bits are the bits that were last on the data bus, or random bits
// if the RandomPins preference is set.
package memory
