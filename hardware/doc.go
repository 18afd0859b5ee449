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

// Package hardware is the base package for the VCS emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The VCS type is the root of the emulation and contains external references
// to all the VCS sub-systems. The VCS type defines the clocking of the
// machine: for every CPU cycle the TIA is stepped three times and the RIOT
// once.
//
// From here, the emulation can either be started to run continuously (with
// an optional callback to check for continuation); run for a fixed number of
// frames; or be stepped instruction by instruction or cycle by cycle.
//
// Traps raised by any part of the hardware are returned by the stepping
// functions and are also dispatched to every registered trap handler.
package hardware
