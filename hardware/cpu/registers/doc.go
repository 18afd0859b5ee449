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

// Package registers implements the three types of registers found in the
// 6502: the 8bit registers (A, X, Y and the stack pointer), the 16bit program
// counter and the status register.
//
// The 8bit Register type implements the arithmetic and logical operations of
// the CPU. The operations return the carry and overflow states where
// appropriate but the status register is not touched; it is up to the CPU to
// decide which flags an operation affects. For instance, in the CPU, we might
// have this sequence of function calls:
//
//	a.Load(10)
//	a.Subtract(11, true)
//	sr.Zero = a.IsZero()
//
// In this case, the zero flag in the status register will be false.
package registers
