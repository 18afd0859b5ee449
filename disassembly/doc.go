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

// Package disassembly coordinates the disassembly of Atari 2600 (6507)
// programs.
//
// Single instructions and short runs of instructions can be decoded from any
// memory that can be peeked, using the Decode() and Range() functions. This
// is how the debugger shows the instructions around the program counter.
//
// For complete disassemblies the FromCartridge() function can be used. Every
// address in every bank is decoded. Entries that are reached by following
// the flow of the program from the CPU vectors are marked as blessed.
// Decoded entries are useful in the event of the CPU landing on an address
// that didn't look like an instruction at disassembly time.
//
// Operands that refer to TIA and RIOT registers are shown with the canonical
// name of the register.
package disassembly
