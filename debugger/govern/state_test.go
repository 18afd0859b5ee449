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

package govern_test

import (
	"testing"

	"github.com/nojan1/6502.ts/debugger/govern"
	"github.com/nojan1/6502.ts/test"
)

func TestStateString(t *testing.T) {
	test.ExpectEquality(t, govern.Setup.String(), "setup")
	test.ExpectEquality(t, govern.Debug.String(), "debug")
	test.ExpectEquality(t, govern.Running.String(), "run")
	test.ExpectEquality(t, govern.Ending.String(), "ending")
}

func TestModeFromString(t *testing.T) {
	m, ok := govern.ModeFromString("RUN")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, m, govern.ModeRun)

	m, ok = govern.ModeFromString("DISASM")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, m, govern.ModeDisasm)

	_, ok = govern.ModeFromString("PLAY")
	test.ExpectFailure(t, ok)
}
