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


// Package script runs Lua scripts against a running debugger session. The
// debugger implements the Target interface and the functions of that
// interface are exposed to the script as global Lua functions:
//
//	peek(address)           returns the byte at address
//	poke(address, value)    writes value to address
//	step([n])               executes n instructions (default 1)
//	frame([n])              runs until n frames have completed (default 1)
//	registers()             returns a table of the CPU registers
//	command(input)          runs a debugger command
//	print(...)              prints to the debugger's terminal
//
// Errors returned by the Target are raised as Lua errors and abort the
// script.
package script
