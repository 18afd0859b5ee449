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
	"github.com/nojan1/6502.ts/debugger/govern"
	"github.com/nojan1/6502.ts/debugger/terminal"
	"github.com/nojan1/6502.ts/hardware"
)

func (dbg *Debugger) cmdRun(_ []string) error {
	dbg.state = govern.Running
	dbg.runFilter = 0

	dbg.term.RunMode(true)
	defer dbg.term.RunMode(false)

	err := dbg.vcs.Run(dbg.continueCheck)

	// a trap will have already moved the state to debug
	if dbg.state == govern.Running {
		dbg.state = govern.Debug
	}

	if err = dbg.hardwareError(err); err != nil {
		return err
	}

	dbg.printNextInstruction()
	return nil
}

func (dbg *Debugger) cmdStop(_ []string) error {
	dbg.state = govern.Debug
	dbg.term.TermPrintLine(terminal.StyleFeedback, "stopped")
	return nil
}

// continueCheck is called by the hardware after every instruction while
// running. Input is checked every hardware.PerformanceBrake instructions.
func (dbg *Debugger) continueCheck() (govern.State, error) {
	dbg.runFilter++
	if dbg.runFilter < hardware.PerformanceBrake {
		return dbg.state, nil
	}
	dbg.runFilter = 0

	dbg.lmtr.MeasureActual(dbg.vcs.CPU.Cycles)

	select {
	case <-dbg.events.Signal:
		dbg.term.TermPrintLine(terminal.StyleFeedback, "interrupted")
		dbg.state = govern.Debug
		return dbg.state, nil
	default:
	}

	if input, ok := dbg.term.TermReadCheck(); ok {
		dbg.term.TermPrintLine(terminal.StyleEcho, input)
		if err := dbg.parseInput(input); err != nil {
			dbg.printError(err)
		}
	}

	return dbg.state, nil
}
