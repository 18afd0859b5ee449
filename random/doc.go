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


// Package random supplies the random numbers used inside the emulation. RAM
// and CPU registers are randomised on reset with it when the RandomState
// preference is on, and undriven TIA data bus bits are randomised with it
// when the RandomPins preference is on.
//
// The seed for every number includes the position of the TIA's beam, so the
// number depends on when in the emulation it was asked for. Setting ZeroSeed
// removes the time-of-launch part of the seed, which makes two emulations of
// the same cartridge produce the same numbers. Tests and digests rely on
// this.
package random
