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

package test

import (
	"strings"
)

// Writer is an implementation of io.Writer that records everything written to
// it. Useful for comparing the output of functions that write to an
// io.Writer.
type Writer struct {
	buffer strings.Builder
}

func (w *Writer) Write(p []byte) (n int, err error) {
	return w.buffer.Write(p)
}

// Compare buffered output with predefined/example string.
func (w *Writer) Compare(s string) bool {
	return s == w.buffer.String()
}

// Contains returns true if the buffered output contains the string.
func (w *Writer) Contains(s string) bool {
	return strings.Contains(w.buffer.String(), s)
}

// Clear string empties the write buffer.
func (w *Writer) Clear() {
	w.buffer.Reset()
}

func (w *Writer) String() string {
	return w.buffer.String()
}
