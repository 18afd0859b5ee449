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
	"fmt"
	"io"
	"strings"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	// include the bytes of each instruction
	ByteCode bool

	// include decoded entries as well as blessed entries
	Decoded bool
}

// WriteLine writes a single Entry to io.Writer.
func WriteLine(output io.Writer, attr WriteAttr, e *Entry) {
	s := strings.Builder{}
	if attr.ByteCode {
		s.WriteString(fmt.Sprintf("%04x  %-8s  %s", e.Address, e.BytecodeString(), e.Operator))
		if e.Operand != "" {
			s.WriteString(" ")
			s.WriteString(e.Operand)
		}
	} else {
		s.WriteString(e.String())
	}
	s.WriteString("\n")
	io.WriteString(output, s.String())
}

// Write the entire disassembly to io.Writer. Entries that follow one another
// in memory are written without an address gap. Decoded entries that overlap
// a previously written entry are skipped.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	for bank := range dsm.entries {
		if _, err := fmt.Fprintf(output, "--- bank %d ---\n", bank); err != nil {
			return err
		}
		if err := dsm.writeBank(output, attr, bank); err != nil {
			return err
		}
	}
	return nil
}

func (dsm *Disassembly) writeBank(output io.Writer, attr WriteAttr, bank int) error {
	next := 0
	for a := 0; a < len(dsm.entries[bank]); a++ {
		e := dsm.entries[bank][a]

		if e.Level < EntryLevelBlessed && (!attr.Decoded || a < next) {
			continue
		}

		WriteLine(output, attr, e)
		next = a + len(e.Bytecode)
	}
	return nil
}
