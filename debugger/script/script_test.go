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


package script_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nojan1/6502.ts/curated"
	"github.com/nojan1/6502.ts/debugger/script"
	"github.com/nojan1/6502.ts/test"
)

type mockTarget struct {
	mem      [0x10000]uint8
	steps    int
	frames   int
	commands []string
	output   []string
}

func (m *mockTarget) Peek(address uint16) (uint8, error) {
	if address == 0xdead {
		return 0, curated.Errorf("bad address")
	}
	return m.mem[address], nil
}

func (m *mockTarget) Poke(address uint16, data uint8) error {
	m.mem[address] = data
	return nil
}

func (m *mockTarget) Step(n int) error {
	m.steps += n
	return nil
}

func (m *mockTarget) Frame(n int) error {
	m.frames += n
	return nil
}

func (m *mockTarget) Registers() map[string]int {
	return map[string]int{"pc": 0xf000, "a": 1}
}

func (m *mockTarget) Command(input string) error {
	m.commands = append(m.commands, input)
	return nil
}

func (m *mockTarget) Print(s string) {
	m.output = append(m.output, s)
}

func TestFunctions(t *testing.T) {
	m := &mockTarget{}
	m.mem[0x80] = 0x42

	scr := script.NewScript(m)
	defer scr.Close()

	err := scr.RunString(`
		local v = peek(0x80)
		poke(0x81, v + 1)
		step()
		step(3)
		frame(2)
		local r = registers()
		print(string.format("%04x", r.pc), r.a)
		command("cpu")
	`)
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, m.mem[0x81], 0x43)
	test.ExpectEquality(t, m.steps, 4)
	test.ExpectEquality(t, m.frames, 2)
	test.DemandEquality(t, len(m.output), 1)
	test.ExpectEquality(t, m.output[0], "f000\t1")
	test.DemandEquality(t, len(m.commands), 1)
	test.ExpectEquality(t, m.commands[0], "cpu")
}

func TestErrors(t *testing.T) {
	m := &mockTarget{}

	scr := script.NewScript(m)
	defer scr.Close()

	err := scr.RunString(`peek(0xdead)`)
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))

	err = scr.RunString(`poke(0x80, 256)`)
	test.ExpectFailure(t, err)

	err = scr.RunString(`peek(0x10000)`)
	test.ExpectFailure(t, err)

	err = scr.RunString(`this is not lua`)
	test.ExpectFailure(t, err)
}

func TestRunFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.lua")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("poke(0x90, 7)\n"), 0o644))

	m := &mockTarget{}
	test.ExpectSuccess(t, script.Run(m, fn))
	test.ExpectEquality(t, m.mem[0x90], 7)

	test.ExpectFailure(t, script.Run(m, filepath.Join(t.TempDir(), "missing.lua")))
}
