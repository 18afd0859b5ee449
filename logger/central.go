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


package logger

import (
	"io"
)

// Permission decides whether a log request is allowed. The environment of an
// emulation is the usual implementation, so that only the main emulation
// adds to the log.
type Permission interface {
	AllowLogging() bool
}

type allowAll struct{}

func (allowAll) AllowLogging() bool {
	return true
}

// Allow permits every request. It is used by code that runs outside of an
// emulation.
var Allow Permission = allowAll{}

// MaxEntries is the size of the central log. The oldest entries are dropped
// once the log is full.
const MaxEntries = 256

var central = newLogger(MaxEntries)

// a nil permission is the same as Allow
func allowed(perm Permission) bool {
	return perm == nil || perm.AllowLogging()
}

// Log adds an entry to the central log.
func Log(perm Permission, tag, detail string) {
	if allowed(perm) {
		central.log(tag, detail)
	}
}

// Logf adds a formatted entry to the central log.
func Logf(perm Permission, tag, detail string, args ...interface{}) {
	if allowed(perm) {
		central.logf(tag, detail, args...)
	}
}

// Clear the central log.
func Clear() {
	central.clear()
}

// Write every entry to the writer. Returns false if the log is empty.
func Write(output io.Writer) bool {
	return central.write(output)
}

// Tail writes the most recent entries to the writer.
func Tail(output io.Writer, number int) {
	central.tail(output, number)
}

// SetEcho writes new entries to the writer as they are logged. A nil writer
// stops the echo.
func SetEcho(output io.Writer) {
	central.setEcho(output)
}

// Copy returns the current entries.
func Copy() []Entry {
	return central.copy()
}
