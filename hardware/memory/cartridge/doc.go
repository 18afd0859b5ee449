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

// Package cartridge implements loading and mapping of cartridge memory.
//
// The main difference between cartridge types is how they map additional ROM
// into the relatively small address space available for cartridges in the
// VCS. This is called bank-switching. The differences are handled
// transparently by the package.
//
// Supported cartridge types are listed below with their mapping ID. The type
// is decided by the size of the cartridge data.
//
//	Atari 2k		"2k"
//	Atari 4k		"4k"
//	Atari 8k		"F8"
//	Atari 16k		"F6"
//	Atari 32k		"F4"
//
// The bank-switched types can also have a Superchip, adding 128 bytes of
// RAM. The mapping ID is suffixed with "SC" when a Superchip is present.
//
// Any other size is rejected with the UnsupportedSize error.
package cartridge
