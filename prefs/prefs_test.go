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

package prefs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nojan1/6502.ts/curated"
	"github.com/nojan1/6502.ts/prefs"
	"github.com/nojan1/6502.ts/test"
)

func TestDiskRoundTrip(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var b prefs.Bool
	var i prefs.Int
	var f prefs.Float
	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("test.bool", &b))
	test.ExpectSuccess(t, dsk.Add("test.int", &i))
	test.ExpectSuccess(t, dsk.Add("test.float", &f))
	test.ExpectSuccess(t, dsk.Add("test.string", &s))

	// keys must be unique
	err = dsk.Add("test.bool", &b)
	test.ExpectSuccess(t, curated.Is(err, prefs.KeyExists))

	// missing file
	err = dsk.Load(false)
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))
	test.ExpectSuccess(t, dsk.Load(true))

	test.ExpectSuccess(t, b.Set(true))
	test.ExpectSuccess(t, i.Set("42"))
	test.ExpectSuccess(t, f.Set(1.5))
	test.ExpectSuccess(t, s.Set("NTSC"))
	test.ExpectSuccess(t, dsk.Save())

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), prefs.WarningBoilerPlate+"\n"+
		"test.bool :: true\n"+
		"test.float :: 1.5\n"+
		"test.int :: 42\n"+
		"test.string :: NTSC\n")

	test.ExpectSuccess(t, dsk.Reset())
	test.ExpectEquality(t, b.Get().(bool), false)
	test.ExpectEquality(t, i.Get().(int), 0)

	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, b.Get().(bool), true)
	test.ExpectEquality(t, i.Get().(int), 42)
	test.ExpectEquality(t, f.Get().(float64), 1.5)
	test.ExpectEquality(t, s.String(), "NTSC")
}

func TestPreserveForeignKeys(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dskA, _ := prefs.NewDisk(fn)
	var a prefs.Int
	test.ExpectSuccess(t, dskA.Add("a", &a))
	test.ExpectSuccess(t, a.Set(1))
	test.ExpectSuccess(t, dskA.Save())

	dskB, _ := prefs.NewDisk(fn)
	var b prefs.Int
	test.ExpectSuccess(t, dskB.Add("b", &b))
	test.ExpectSuccess(t, b.Set(2))
	test.ExpectSuccess(t, dskB.Save())

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), prefs.WarningBoilerPlate+"\na :: 1\nb :: 2\n")
}

func TestBadValues(t *testing.T) {
	var i prefs.Int
	test.ExpectFailure(t, i.Set("foo"))
	test.ExpectFailure(t, i.Set(1.5))

	var b prefs.Bool
	test.ExpectFailure(t, b.Set(10))
	test.ExpectSuccess(t, b.Set("TRUE"))
	test.ExpectEquality(t, b.Get().(bool), true)
}

func TestHooks(t *testing.T) {
	var i prefs.Int
	var pre, post int
	i.SetHookPre(func(v prefs.Value) error {
		pre = v.(int)
		return nil
	})
	i.SetHookPost(func(v prefs.Value) error {
		post = v.(int) * 2
		return nil
	})
	test.ExpectSuccess(t, i.Set(10))
	test.ExpectEquality(t, pre, 10)
	test.ExpectEquality(t, post, 20)
}

func TestCommandLineStack(t *testing.T) {
	prefs.PushCommandLineStack("foo::bar; baz::10")
	defer prefs.PopCommandLineStack()

	dsk, _ := prefs.NewDisk(filepath.Join(t.TempDir(), "prefs"))
	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &s))
	test.ExpectEquality(t, s.String(), "bar")

	// unused preferences are returned when the stack is popped
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::10")
	prefs.PushCommandLineStack("")
}
