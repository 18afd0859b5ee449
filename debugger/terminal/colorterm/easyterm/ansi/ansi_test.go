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


package ansi_test

import (
	"testing"

	"github.com/nojan1/6502.ts/debugger/terminal/colorterm/easyterm/ansi"
	"github.com/nojan1/6502.ts/test"
)

func TestColorBuild(t *testing.T) {
	s, err := ansi.ColorBuild("red", "normal", "", true, false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[91;49m")

	s, err = ansi.ColorBuild("", "", "bold", false, false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[1m")

	_, err = ansi.ColorBuild("puce", "", "", false, false)
	test.ExpectFailure(t, err)

	test.ExpectEquality(t, ansi.NormalPen, "\033[m")
	test.ExpectEquality(t, ansi.DimPens["yellow"], "\033[33;49m")
	test.ExpectEquality(t, ansi.PenStyles["underline"], "\033[4m")
}
