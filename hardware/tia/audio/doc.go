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

// Package audio implements the audio generation of the TIA. The bit patterns
// and the channel logic follow Ron Fries' TIASound.c, which is published
// under the GNU Library GPL v2.0.
//
// Step() is called every color clock. The channels are clocked at
// approximately 30Khz, which is twice per scanline, and a sample is produced
// every time the channels are clocked. The samples are sent to the Mixer
// if one has been attached.
package audio
