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


// Package terminal defines the operations required for command-line
// interaction with the debugger. The Terminal interface is implemented by
// the plainterm and colorterm packages.
//
// TermRead() blocks until a line of input is available or until a signal
// arrives on the ReadEvents channel. TermReadCheck() never blocks and is used
// by the debugger while the emulation is running so that the user can stop
// the machine.
package terminal
