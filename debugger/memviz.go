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
	"fmt"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/nojan1/6502.ts/curated"
	"github.com/nojan1/6502.ts/debugger/terminal"
	"github.com/nojan1/6502.ts/hardware/cpu/registers"
	"github.com/nojan1/6502.ts/hardware/tia/video"
)

// the parts of the machine included in the MEMVIZ output. the CPU and TIA
// types refer to the rest of the machine so the pointer graph of either would
// include everything
type memvizState struct {
	PC     *registers.ProgramCounter
	A      *registers.Register
	X      *registers.Register
	Y      *registers.Register
	SP     *registers.Register
	Status *registers.Status
	Video  *video.Video
}

func (dbg *Debugger) cmdMemviz(args []string) error {
	if len(args) != 1 {
		return curated.Errorf(InvalidArguments, cmdMemviz, "expected one filename")
	}

	f, err := os.Create(args[0])
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}

	cpu := dbg.vcs.CPU
	memviz.Map(f, &memvizState{
		PC:     &cpu.PC,
		A:      &cpu.A,
		X:      &cpu.X,
		Y:      &cpu.Y,
		SP:     &cpu.SP,
		Status: &cpu.Status,
		Video:  dbg.vcs.TIA.Video,
	})

	if err := f.Close(); err != nil {
		return curated.Errorf("debugger: %v", err)
	}

	dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("memviz written to %s", args[0]))
	return nil
}
