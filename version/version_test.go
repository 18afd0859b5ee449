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


package version_test

import (
	"testing"

	"github.com/nojan1/6502.ts/test"
	"github.com/nojan1/6502.ts/version"
)

func TestVersion(t *testing.T) {
	v, r, release := version.Version()

	// tests are never built with a release number
	test.ExpectFailure(t, release)
	test.ExpectSuccess(t, v == "local" || v == "unreleased", v)
	test.ExpectInequality(t, r, "")

	// repeated calls give the same answer
	v2, r2, _ := version.Version()
	test.ExpectEquality(t, v2, v)
	test.ExpectEquality(t, r2, r)
}
