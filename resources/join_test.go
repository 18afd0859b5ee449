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


//go:build !release

package resources_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nojan1/6502.ts/resources"
	"github.com/nojan1/6502.ts/test"
)

func TestJoinPath(t *testing.T) {
	t.Chdir(t.TempDir())

	p, err := resources.JoinPath("preferences")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, filepath.Join(".6502ts", "preferences"))

	// the directory is created but the file is not
	_, err = os.Stat(".6502ts")
	test.ExpectSuccess(t, err)
	_, err = os.Stat(p)
	test.ExpectFailure(t, err)

	// a path that already includes the base is not prefixed twice
	q, err := resources.JoinPath(p)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q, p)
}
