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


package terminal_test

import (
	"testing"

	"github.com/nojan1/6502.ts/debugger/govern"
	"github.com/nojan1/6502.ts/debugger/terminal"
	"github.com/nojan1/6502.ts/test"
)

func TestPrompt(t *testing.T) {
	p := terminal.Prompt{State: govern.Setup}
	test.ExpectEquality(t, p.String(), "[setup] > ")

	// frequency is not shown until a cartridge has been loaded
	p.Frequency = 1190000
	test.ExpectEquality(t, p.String(), "[setup] > ")

	p.State = govern.Debug
	test.ExpectEquality(t, p.String(), "1.19 MHz [debug] > ")

	p.Frequency = 0
	test.ExpectEquality(t, p.String(), "[debug] > ")
}
