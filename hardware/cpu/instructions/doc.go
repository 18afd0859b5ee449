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

// Package instructions defines the instruction set of the 6502 family of
// CPUs. The Resolver type maps every one of the 256 possible opcodes to an
// Instruction, including the undocumented opcodes of the NMOS 6502.
//
// The 65C02 variant is built from the same base table with a small number of
// opcodes overridden. Opcodes with no meaningful definition resolve to an
// Instruction with the Invalid addressing mode.
package instructions
