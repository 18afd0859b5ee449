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

// Package test contains helper functions for the test files of the
// emulator.
//
// The Expect*() functions report a test failure with t.Errorf() and return
// whether the test passed. The Demand*() functions fail with t.Fatalf() and
// should be used when the remainder of the test depends on the value being
// correct.
//
// Success and failure are defined by the type of the value:
//
//	bool  -> true is success
//	error -> nil is success
//
// An optional list of tags can be supplied to every function. The tags are
// printed before the failure message and are useful for identifying the
// failing case in a table driven test.
package test
