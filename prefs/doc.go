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

// Package prefs facilitates the storage of preferential values in the
// emulator. Preference values are typed (Bool, Int, Float and String) and are
// bound to a key in a Disk instance, which loads and saves the values to a
// file on disk.
//
// The file format is very simple. Each line is of the form:
//
//	key :: value
//
// The file begins with a line warning the user not to edit the file by hand.
// Keys in the file that do not belong to the Disk instance being saved are
// preserved.
//
// Values can be overridden for the lifetime of a single emulation with the
// command line stack. See PushCommandLineStack().
package prefs
