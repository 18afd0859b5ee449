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

package disassembly

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// GrepScope limits the scope of the search.
type GrepScope int

// List of available scopes.
const (
	GrepOperator GrepScope = iota
	GrepOperand
	GrepAll
)

// Grep searches the blessed entries of the disassembly for the search string
// and writes matching lines to output. Returns the number of matches.
func (dsm *Disassembly) Grep(output io.Writer, scope GrepScope, search string, caseSensitive bool) int {
	var s, m string

	if !caseSensitive {
		search = strings.ToUpper(search)
	}

	matches := 0

	for bank := range dsm.entries {
		bankHeader := false
		for _, e := range dsm.entries[bank] {
			if e.Level < EntryLevelBlessed {
				continue
			}

			// line representation of Entry. we'll print this in case of a
			// match
			line := &bytes.Buffer{}
			WriteLine(line, WriteAttr{}, e)

			// limit scope of grep to the correct Entry field
			switch scope {
			case GrepOperator:
				s = e.Operator
			case GrepOperand:
				s = e.Operand
			case GrepAll:
				s = line.String()
			}

			if !caseSensitive {
				m = strings.ToUpper(s)
			} else {
				m = s
			}

			if strings.Contains(m, search) {
				// if we've not yet printed head for the current bank then
				// print it now
				if !bankHeader {
					if matches > 0 {
						io.WriteString(output, "\n")
					}
					fmt.Fprintf(output, "--- bank %d ---\n", bank)
					bankHeader = true
				}

				output.Write(line.Bytes())
				matches++
			}
		}
	}

	return matches
}
