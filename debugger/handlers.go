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
	"strconv"
	"strings"

	"github.com/nojan1/6502.ts/curated"
	"github.com/nojan1/6502.ts/debugger/govern"
	"github.com/nojan1/6502.ts/debugger/terminal"
	"github.com/nojan1/6502.ts/disassembly"
	"github.com/nojan1/6502.ts/hardware/memory/cartridge"
	"github.com/nojan1/6502.ts/logger"
)

// the number of instructions shown by DISASM when no count is given
const defaultDisasmCount = 10

func (dbg *Debugger) loadCartridge(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}

	cart, err := cartridge.NewFromBytes(dbg.env, data)
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}

	dbg.vcs.AttachCartridge(cart)
	dbg.cartridgeFilename = filename
	dbg.state = govern.Debug

	dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("loaded %s (%s)", filename, cart))
	dbg.printNextInstruction()

	return nil
}

func (dbg *Debugger) cmdLoadCartridge(args []string) error {
	if len(args) != 1 {
		return curated.Errorf(InvalidArguments, cmdLoadCartridge, "expected one filename")
	}
	return dbg.loadCartridge(args[0])
}

// printNextInstruction disassembles the instruction at the program counter.
// An interrupt sequence that has not yet completed is shown by name.
func (dbg *Debugger) printNextInstruction() {
	if !dbg.vcs.CPU.InstructionBoundary() {
		dbg.term.TermPrintLine(terminal.StyleCPU, fmt.Sprintf("next: %s", disassembly.FormatResult(dbg.vcs.CPU.LastResult)))
		return
	}

	e, err := disassembly.Decode(dbg.vcs.CPU.Resolver(), dbg.vcs.Mem, dbg.vcs.CPU.PC.Address())
	if err != nil {
		dbg.printError(err)
		return
	}
	dbg.term.TermPrintLine(terminal.StyleCPU, fmt.Sprintf("next: %s", e))
}

func (dbg *Debugger) step(n int, verbose bool) error {
	for range n {
		err := dbg.vcs.Step()
		if err != nil {
			return dbg.hardwareError(err)
		}
		if verbose {
			dbg.term.TermPrintLine(terminal.StyleCPU, disassembly.FormatResult(dbg.vcs.CPU.LastResult))
		}
	}
	return nil
}

func (dbg *Debugger) cmdStep(args []string) error {
	n, err := parseCount(args, 0, 1)
	if err != nil {
		return curated.Errorf(InvalidArguments, cmdStep, err)
	}
	return dbg.step(n, true)
}

func (dbg *Debugger) cmdCycle(args []string) error {
	n, err := parseCount(args, 0, 1)
	if err != nil {
		return curated.Errorf(InvalidArguments, cmdCycle, err)
	}
	for range n {
		if err := dbg.vcs.Cycle(); err != nil {
			if err = dbg.hardwareError(err); err != nil {
				return err
			}
			break
		}
	}
	dbg.term.TermPrintLine(terminal.StyleCPU, dbg.vcs.CPU.String())
	return nil
}

func (dbg *Debugger) frame(n int) error {
	err := dbg.vcs.RunForFrameCount(n, nil)
	return dbg.hardwareError(err)
}

func (dbg *Debugger) cmdFrame(args []string) error {
	n, err := parseCount(args, 0, 1)
	if err != nil {
		return curated.Errorf(InvalidArguments, cmdFrame, err)
	}
	if err := dbg.frame(n); err != nil {
		return err
	}
	dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("frame %d", dbg.vcs.TIA.FrameNum))
	return nil
}

func (dbg *Debugger) cmdCPU(_ []string) error {
	dbg.term.TermPrintLine(terminal.StyleCPU, dbg.vcs.CPU.String())
	dbg.term.TermPrintLine(terminal.StyleCPU, fmt.Sprintf("cycles: %d", dbg.vcs.CPU.Cycles))
	return nil
}

func (dbg *Debugger) cmdTIA(_ []string) error {
	dbg.printLine(terminal.StyleFeedback, dbg.vcs.TIA.String())
	return nil
}

func (dbg *Debugger) cmdRIOT(_ []string) error {
	dbg.printLine(terminal.StyleFeedback, dbg.vcs.RIOT.String())
	return nil
}

func (dbg *Debugger) cmdPeek(args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return curated.Errorf(InvalidArguments, cmdPeek, "expected an address and an optional count")
	}

	address, err := parseAddress(args[0])
	if err != nil {
		return curated.Errorf(InvalidArguments, cmdPeek, err)
	}

	n, err := parseCount(args, 1, 1)
	if err != nil {
		return curated.Errorf(InvalidArguments, cmdPeek, err)
	}

	// sixteen bytes per line
	s := strings.Builder{}
	for i := range n {
		a := address + uint16(i)
		if i%16 == 0 {
			if i > 0 {
				dbg.term.TermPrintLine(terminal.StyleFeedback, s.String())
				s.Reset()
			}
			s.WriteString(fmt.Sprintf("%04x:", a))
		}
		v, err := dbg.vcs.Mem.Peek(a)
		if err != nil {
			return curated.Errorf(InvalidArguments, cmdPeek, err)
		}
		s.WriteString(fmt.Sprintf(" %02x", v))
	}
	dbg.term.TermPrintLine(terminal.StyleFeedback, s.String())

	return nil
}

func (dbg *Debugger) cmdPoke(args []string) error {
	if len(args) < 2 {
		return curated.Errorf(InvalidArguments, cmdPoke, "expected an address and at least one value")
	}

	address, err := parseAddress(args[0])
	if err != nil {
		return curated.Errorf(InvalidArguments, cmdPoke, err)
	}

	for i, a := range args[1:] {
		v, err := parseNumber(a, 8)
		if err != nil {
			return curated.Errorf(InvalidArguments, cmdPoke, err)
		}
		if err := dbg.vcs.Mem.Poke(address+uint16(i), uint8(v)); err != nil {
			return curated.Errorf(InvalidArguments, cmdPoke, err)
		}
	}

	return nil
}

func (dbg *Debugger) cmdDisasm(args []string) error {
	if len(args) > 0 {
		switch strings.ToUpper(args[0]) {
		case "ALL":
			return dbg.disasmCartridge()
		case "GREP":
			if len(args) < 2 {
				return curated.Errorf(InvalidArguments, cmdDisasm, "GREP requires a search term")
			}
			return dbg.disasmGrep(strings.Join(args[1:], " "))
		}
	}

	address := dbg.vcs.CPU.PC.Address()
	if len(args) > 0 {
		var err error
		address, err = parseAddress(args[0])
		if err != nil {
			return curated.Errorf(InvalidArguments, cmdDisasm, err)
		}
	}

	n, err := parseCount(args, 1, defaultDisasmCount)
	if err != nil {
		return curated.Errorf(InvalidArguments, cmdDisasm, err)
	}

	entries, err := disassembly.Range(dbg.vcs.CPU.Resolver(), dbg.vcs.Mem, address, n)
	for _, e := range entries {
		dbg.term.TermPrintLine(terminal.StyleCPU, fmt.Sprintf("%-24s %s", e, e.BytecodeString()))
	}
	if err != nil {
		return curated.Errorf(InvalidArguments, cmdDisasm, err)
	}

	return nil
}

func (dbg *Debugger) disasmCartridge() error {
	dsm, err := disassembly.FromCartridge(dbg.vcs.Mem.Cart, dbg.vcs.CPU.Resolver())
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}

	s := &strings.Builder{}
	if err := dsm.Write(s, disassembly.WriteAttr{ByteCode: true}); err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	dbg.printLine(terminal.StyleCPU, s.String())

	return nil
}

func (dbg *Debugger) disasmGrep(search string) error {
	dsm, err := disassembly.FromCartridge(dbg.vcs.Mem.Cart, dbg.vcs.CPU.Resolver())
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}

	s := &strings.Builder{}
	n := dsm.Grep(s, disassembly.GrepAll, search, false)
	if n == 0 {
		dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("%s not found in disassembly", search))
		return nil
	}
	dbg.printLine(terminal.StyleCPU, s.String())

	return nil
}

func (dbg *Debugger) cmdReset(_ []string) error {
	dbg.vcs.Reset()
	dbg.term.TermPrintLine(terminal.StyleFeedback, "machine reset")
	return nil
}

func (dbg *Debugger) cmdSetSpeedLimited(_ []string) error {
	dbg.lmtr.Active.Store(true)
	dbg.term.TermPrintLine(terminal.StyleFeedback, "speed limited")
	return nil
}

func (dbg *Debugger) cmdSetSpeedUnlimited(_ []string) error {
	dbg.lmtr.Active.Store(false)
	dbg.term.TermPrintLine(terminal.StyleFeedback, "speed unlimited")
	return nil
}

func (dbg *Debugger) cmdJoystick(args []string) error {
	if len(args) < 1 {
		return curated.Errorf(InvalidArguments, cmdJoystick, "expected a player number")
	}

	player, err := strconv.Atoi(args[0])
	if err != nil || player < 0 || player > 1 {
		return curated.Errorf(InvalidArguments, cmdJoystick, fmt.Sprintf("not a valid player (%s)", args[0]))
	}

	stk := &dbg.vcs.RIOT.Ports.Joysticks[player]

	if len(args) > 1 {
		// the listed directions replace the current state
		stk.Up, stk.Down, stk.Left, stk.Right, stk.Fire = false, false, false, false, false
		for _, a := range args[1:] {
			switch strings.ToUpper(a) {
			case "UP":
				stk.Up = true
			case "DOWN":
				stk.Down = true
			case "LEFT":
				stk.Left = true
			case "RIGHT":
				stk.Right = true
			case "FIRE":
				stk.Fire = true
			case "CENTRE", "CENTER":
			default:
				return curated.Errorf(InvalidArguments, cmdJoystick, fmt.Sprintf("unknown direction (%s)", a))
			}
		}
	}

	dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("p%d: %s", player, stk))
	return nil
}

func (dbg *Debugger) cmdPanel(args []string) error {
	pan := &dbg.vcs.RIOT.Ports.Panel

	for _, a := range args {
		switch strings.ToUpper(a) {
		case "RESET":
			pan.Reset = !pan.Reset
		case "SELECT":
			pan.Select = !pan.Select
		case "COLOR", "COLOUR":
			pan.Color = true
		case "BW":
			pan.Color = false
		case "P0PRO":
			pan.P0Pro = true
		case "P0AM":
			pan.P0Pro = false
		case "P1PRO":
			pan.P1Pro = true
		case "P1AM":
			pan.P1Pro = false
		default:
			return curated.Errorf(InvalidArguments, cmdPanel, fmt.Sprintf("unknown switch (%s)", a))
		}
	}

	dbg.term.TermPrintLine(terminal.StyleFeedback, pan.String())
	return nil
}

func (dbg *Debugger) cmdScreenshot(args []string) error {
	var filename string
	if len(args) > 0 {
		filename = args[0]
	}
	fn, err := dbg.shot.Save(filename)
	if err != nil {
		return err
	}
	dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("screenshot saved to %s", fn))
	return nil
}

func (dbg *Debugger) cmdLog(args []string) error {
	s := &strings.Builder{}

	if len(args) > 0 {
		if strings.ToUpper(args[0]) == "CLEAR" {
			logger.Clear()
			return nil
		}
		n, err := parseCount(args, 0, 1)
		if err != nil {
			return curated.Errorf(InvalidArguments, cmdLog, err)
		}
		logger.Tail(s, n)
	} else if !logger.Write(s) {
		dbg.term.TermPrintLine(terminal.StyleFeedback, "log is empty")
		return nil
	}

	dbg.printLine(terminal.StyleLog, s.String())
	return nil
}

func (dbg *Debugger) cmdHelp(args []string) error {
	if len(args) > 0 {
		cmd, err := dbg.commands.FindValue(strings.ToLower(args[0]))
		if err != nil {
			return curated.Errorf(UnknownCommand, args[0])
		}
		dbg.term.TermPrintLine(terminal.StyleHelp, cmd.String())
		dbg.term.TermPrintLine(terminal.StyleHelp, fmt.Sprintf("  %s", cmd.help))
		return nil
	}

	for _, cmd := range commandList {
		dbg.term.TermPrintLine(terminal.StyleHelp, fmt.Sprintf("%-20s %s", cmd.name, cmd.help))
	}
	return nil
}

func (dbg *Debugger) cmdQuit(_ []string) error {
	dbg.state = govern.Ending
	return nil
}
