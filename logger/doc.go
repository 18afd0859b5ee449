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

// Package logger is the central logging facility for the emulator. There is
// only one log and it is bounded in size; older entries are discarded as new
// ones are added.
//
// Log entries are made with the Log() and Logf() functions. Both functions
// require a Permission argument. Emulation environments implement the
// Permission interface so that only the main emulation is allowed to add
// entries. Use the Allow value where no emulation environment is available.
//
// Consecutive identical entries are folded into a single entry with a repeat
// count.
package logger
