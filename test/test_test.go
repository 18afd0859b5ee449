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

package test_test

import (
	"errors"
	"testing"

	"github.com/nojan1/6502.ts/test"
)

func TestSuccessAndFailure(t *testing.T) {
	var err error
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, true)
	test.ExpectFailure(t, errors.New("foo"))
	test.ExpectFailure(t, false)
	test.DemandSuccess(t, nil)
}

func TestEquality(t *testing.T) {
	test.ExpectEquality(t, uint8(10), 10)
	test.ExpectInequality(t, "foo", "bar")
	test.DemandEquality(t, 1.5, 1.5, "float")
}

func TestWriter(t *testing.T) {
	w := &test.Writer{}
	w.Write([]byte("hello world"))
	test.ExpectSuccess(t, w.Compare("hello world"))
	test.ExpectSuccess(t, w.Contains("world"))
	w.Clear()
	test.ExpectEquality(t, w.String(), "")
}
