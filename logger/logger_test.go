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

package logger_test

import (
	"strings"
	"testing"

	"github.com/nojan1/6502.ts/logger"
	"github.com/nojan1/6502.ts/test"
)

type deny struct{}

func (deny) AllowLogging() bool {
	return false
}

func TestLogger(t *testing.T) {
	logger.Clear()

	w := &strings.Builder{}
	test.ExpectFailure(t, logger.Write(w))

	logger.Log(logger.Allow, "test", "this is a test")
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	// repeated entries are folded
	w.Reset()
	logger.Log(logger.Allow, "test", "this is a test")
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test (repeat x2)\n")

	w.Reset()
	logger.Logf(logger.Allow, "test2", "value %d", 10)
	logger.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: value 10\n")

	// tail of more entries than exist is capped
	w.Reset()
	logger.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test (repeat x2)\ntest2: value 10\n")

	// permission denied
	logger.Log(deny{}, "denied", "should not appear")
	test.ExpectEquality(t, len(logger.Copy()), 2)

	logger.Clear()
	test.ExpectEquality(t, len(logger.Copy()), 0)
}

func TestEcho(t *testing.T) {
	logger.Clear()
	defer logger.SetEcho(nil)

	w := &strings.Builder{}
	logger.SetEcho(w)
	logger.Log(logger.Allow, "echo", "foo")
	test.ExpectEquality(t, w.String(), "echo: foo\n")
}

func TestBounded(t *testing.T) {
	logger.Clear()
	for i := 0; i < 1000; i++ {
		logger.Logf(logger.Allow, "bounded", "%d", i)
	}
	e := logger.Copy()
	test.ExpectEquality(t, len(e), logger.MaxEntries)
	test.ExpectEquality(t, e[len(e)-1].Detail, "999")
	logger.Clear()
}

func TestNilPermission(t *testing.T) {
	logger.Clear()
	logger.Log(nil, "nil", "allowed")
	test.ExpectEquality(t, len(logger.Copy()), 1)
	logger.Clear()
}
