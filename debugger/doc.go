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


// Package debugger implements a command-line debugger for the emulated VCS.
// Input and output is through an implementation of the terminal.Terminal
// interface.
//
// The debugger is in one of three states. In the setup state no cartridge
// has been loaded and only the LOAD-CARTRIDGE command is available. In the
// debug state the machine is stopped and can be stepped, inspected and
// modified. In the run state the machine runs freely until it is stopped by
// the STOP command, by the ESC key in the colour terminal, by an interrupt
// signal or by a trap raised by the hardware.
//
// An interrupt signal in the run state returns the debugger to the debug
// state. An interrupt signal in any other state ends the debugger.
//
// Commands are not case sensitive and can be abbreviated to any unambiguous
// prefix. The HELP command lists all commands.
package debugger
