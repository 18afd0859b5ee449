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


// Package statsview serves live graphs of the emulator's Go runtime
// statistics (heap, goroutines, GC pauses) over HTTP. It is useful for
// watching the allocation behaviour of the emulation during long RUN mode
// sessions.
//
// The server is only compiled in with the statsview build tag:
//
//	go build -tags statsview .
//	6502ts run -statsview localhost:12600 rom.bin
//
// Without the tag Launch() returns the NotAvailable error.
package statsview
