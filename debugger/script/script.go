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


package script

import (
	"strings"

	"github.com/nojan1/6502.ts/curated"
	lua "github.com/yuin/gopher-lua"
)

// Target is the debugger as seen by a script.
type Target interface {
	Peek(address uint16) (uint8, error)
	Poke(address uint16, data uint8) error
	Step(n int) error
	Frame(n int) error
	Registers() map[string]int
	Command(input string) error
	Print(s string)
}

// ScriptError is the pattern for all errors returned by the package.
const ScriptError = "script: %v"

// Script is a Lua interpreter bound to a Target.
type Script struct {
	L      *lua.LState
	target Target
}

// NewScript is the preferred method of initialisation for the Script type.
// The Close() function should be called when the Script is no longer
// required.
func NewScript(target Target) *Script {
	scr := &Script{
		L:      lua.NewState(),
		target: target,
	}

	for name, fn := range map[string]lua.LGFunction{
		"peek":      scr.peek,
		"poke":      scr.poke,
		"step":      scr.step,
		"frame":     scr.frame,
		"registers": scr.registers,
		"command":   scr.command,
		"print":     scr.print,
	} {
		scr.L.SetGlobal(name, scr.L.NewFunction(fn))
	}

	return scr
}

// Close the Lua interpreter.
func (scr *Script) Close() {
	scr.L.Close()
}

// RunFile executes the Lua script in the named file.
func (scr *Script) RunFile(filename string) error {
	if err := scr.L.DoFile(filename); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// RunString executes Lua source code.
func (scr *Script) RunString(source string) error {
	if err := scr.L.DoString(source); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// Run is a convenience function that runs a script file from start to
// finish.
func Run(target Target, filename string) error {
	scr := NewScript(target)
	defer scr.Close()
	return scr.RunFile(filename)
}

func (scr *Script) address(L *lua.LState, n int) uint16 {
	v := L.CheckInt(n)
	if v < 0 || v > 0xffff {
		L.ArgError(n, "address out of range")
	}
	return uint16(v)
}

func (scr *Script) peek(L *lua.LState) int {
	v, err := scr.target.Peek(scr.address(L, 1))
	if err != nil {
		L.RaiseError("%v", err)
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (scr *Script) poke(L *lua.LState) int {
	address := scr.address(L, 1)
	v := L.CheckInt(2)
	if v < 0 || v > 0xff {
		L.ArgError(2, "value out of range")
	}
	if err := scr.target.Poke(address, uint8(v)); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) step(L *lua.LState) int {
	if err := scr.target.Step(L.OptInt(1, 1)); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) frame(L *lua.LState) int {
	if err := scr.target.Frame(L.OptInt(1, 1)); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) registers(L *lua.LState) int {
	tbl := L.NewTable()
	for k, v := range scr.target.Registers() {
		tbl.RawSetString(k, lua.LNumber(v))
	}
	L.Push(tbl)
	return 1
}

func (scr *Script) command(L *lua.LState) int {
	if err := scr.target.Command(L.CheckString(1)); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) print(L *lua.LState) int {
	s := make([]string, 0, L.GetTop())
	for i := 1; i <= L.GetTop(); i++ {
		s = append(s, L.ToStringMeta(L.Get(i)).String())
	}
	scr.target.Print(strings.Join(s, "\t"))
	return 0
}
