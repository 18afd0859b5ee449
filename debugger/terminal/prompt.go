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


package terminal

import (
	"fmt"
	"strings"

	"github.com/nojan1/6502.ts/debugger/govern"
)

// Prompt represents the text that is to pass to TermRead().
type Prompt struct {
	State govern.State

	// measured clock frequency of the CPU in Hz. zero if not known
	Frequency float32
}

func (p Prompt) String() string {
	s := strings.Builder{}
	if p.Frequency > 0 && p.State != govern.Setup {
		s.WriteString(fmt.Sprintf("%.2f MHz ", p.Frequency/1000000))
	}
	s.WriteString(fmt.Sprintf("[%s] > ", p.State))
	return s.String()
}
