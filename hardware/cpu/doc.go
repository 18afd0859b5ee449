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

// Package cpu emulates the 6502 microprocessor found in the Atari VCS (in
// the form of the 6507) and the 65C02 variant.
//
// The CPU is stepped one bus cycle at a time with the Cycle() function. Each
// call performs exactly one read or write on the memory bus. The work for
// the current instruction is held in a small state machine that is replaced
// at every opcode fetch.
//
// The CPU can be halted between cycles with the Halt() function. While
// halted, calls to Cycle() do nothing. This is how the TIA implements WSYNC.
//
// Opcodes that have no definition raise a trap. The trap is returned by the
// Cycle() function and the CPU will fetch the next opcode on the following
// cycle.
package cpu
