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


package main

import (
	"testing"

	"github.com/nojan1/6502.ts/digest"
	"github.com/nojan1/6502.ts/test"
)

func TestMixers(t *testing.T) {
	a := digest.NewAudio()
	b := digest.NewAudio()
	c := digest.NewAudio()

	m := mixers{a, b}
	for i := range 100 {
		m.SetAudio(int16(i))
		c.SetAudio(int16(i))
	}

	test.ExpectEquality(t, a.Hash(), b.Hash())
	test.ExpectEquality(t, a.Hash(), c.Hash())
}

func TestNewEnvironment(t *testing.T) {
	env, err := newEnvironment("pal", "65c02")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, env.Prefs.TVSpec.String(), "PAL")
	test.ExpectEquality(t, env.Prefs.CPUVariant.String(), "65C02")

	_, err = newEnvironment("foo", "")
	test.ExpectFailure(t, err)

	_, err = newEnvironment("", "z80")
	test.ExpectFailure(t, err)
}

func TestStartStatsDisabled(t *testing.T) {
	srv := startStats("")
	test.ExpectSuccess(t, srv == nil)

	// a nil server can always be stopped
	srv.Stop()
}
