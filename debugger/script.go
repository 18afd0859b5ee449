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


package debugger

import (
	"github.com/nojan1/6502.ts/curated"
	"github.com/nojan1/6502.ts/debugger/script"
	"github.com/nojan1/6502.ts/debugger/terminal"
)

// the maximum depth of scripts running other scripts
const maxScriptDepth = 8

func (dbg *Debugger) cmdScript(args []string) error {
	if len(args) != 1 {
		return curated.Errorf(InvalidArguments, cmdScript, "expected one filename")
	}
	return dbg.runScript(args[0])
}

func (dbg *Debugger) runScript(filename string) error {
	if dbg.scriptDepth >= maxScriptDepth {
		return curated.Errorf("debugger: scripts nested too deeply")
	}
	dbg.scriptDepth++
	defer func() {
		dbg.scriptDepth--
	}()
	return script.Run(scriptTarget{dbg: dbg}, filename)
}

// scriptTarget implements the script.Target interface.
type scriptTarget struct {
	dbg *Debugger
}

func (t scriptTarget) Peek(address uint16) (uint8, error) {
	return t.dbg.vcs.Mem.Peek(address)
}

func (t scriptTarget) Poke(address uint16, data uint8) error {
	return t.dbg.vcs.Mem.Poke(address, data)
}

func (t scriptTarget) Step(n int) error {
	return t.dbg.step(n, false)
}

func (t scriptTarget) Frame(n int) error {
	return t.dbg.frame(n)
}

func (t scriptTarget) Registers() map[string]int {
	cpu := t.dbg.vcs.CPU
	return map[string]int{
		"pc":     int(cpu.PC.Address()),
		"a":      int(cpu.A.Value()),
		"x":      int(cpu.X.Value()),
		"y":      int(cpu.Y.Value()),
		"sp":     int(cpu.SP.Value()),
		"status": int(cpu.Status.Value()),
		"cycles": int(cpu.Cycles),
	}
}

// Command runs a debugger command. Commands are subject to the same state
// rules as commands entered at the terminal.
func (t scriptTarget) Command(input string) error {
	return t.dbg.parseInput(input)
}

func (t scriptTarget) Print(s string) {
	t.dbg.term.TermPrintLine(terminal.StyleFeedback, s)
}
