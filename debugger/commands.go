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
	"slices"
	"strings"

	"github.com/beevik/prefixtree/v2"
	"github.com/nojan1/6502.ts/debugger/govern"
)

// List of command names.
const (
	cmdLoadCartridge     = "LOAD-CARTRIDGE"
	cmdRun               = "RUN"
	cmdStop              = "STOP"
	cmdStep              = "STEP"
	cmdCycle             = "CYCLE"
	cmdFrame             = "FRAME"
	cmdCPU               = "CPU"
	cmdTIA               = "TIA"
	cmdRIOT              = "RIOT"
	cmdPeek              = "PEEK"
	cmdPoke              = "POKE"
	cmdDisasm            = "DISASM"
	cmdReset             = "RESET"
	cmdSetSpeedLimited   = "SET-SPEED-LIMITED"
	cmdSetSpeedUnlimited = "SET-SPEED-UNLIMITED"
	cmdJoystick          = "JOYSTICK"
	cmdPanel             = "PANEL"
	cmdScreenshot        = "SCREENSHOT"
	cmdWav               = "WAV"
	cmdMemviz            = "MEMVIZ"
	cmdScript            = "SCRIPT"
	cmdLog               = "LOG"
	cmdHelp              = "HELP"
	cmdQuit              = "QUIT"
)

type command struct {
	name   string
	usage  string
	help   string
	states []govern.State

	handler func(dbg *Debugger, args []string) error
}

func (cmd *command) available(state govern.State) bool {
	return slices.Contains(cmd.states, state)
}

var (
	inSetupOrDebug = []govern.State{govern.Setup, govern.Debug}
	inDebug        = []govern.State{govern.Debug}
	inRun          = []govern.State{govern.Running}
	inDebugOrRun   = []govern.State{govern.Debug, govern.Running}
)

// commandList is populated in init() because the HELP handler refers to it.
var commandList []*command

func init() {
	commandList = []*command{
		{cmdLoadCartridge, "<file>", "load a cartridge image and reset the machine", inSetupOrDebug, (*Debugger).cmdLoadCartridge},
		{cmdRun, "", "run the machine until it is stopped", inDebug, (*Debugger).cmdRun},
		{cmdStop, "", "stop the running machine", inRun, (*Debugger).cmdStop},
		{cmdStep, "[n]", "execute n CPU instructions", inDebug, (*Debugger).cmdStep},
		{cmdCycle, "[n]", "execute n CPU cycles", inDebug, (*Debugger).cmdCycle},
		{cmdFrame, "[n]", "run until n more frames have completed", inDebug, (*Debugger).cmdFrame},
		{cmdCPU, "", "show the CPU registers", inDebug, (*Debugger).cmdCPU},
		{cmdTIA, "", "show the TIA state", inDebug, (*Debugger).cmdTIA},
		{cmdRIOT, "", "show the RIOT timer and ports", inDebug, (*Debugger).cmdRIOT},
		{cmdPeek, "<address> [count]", "show memory without side effects", inDebug, (*Debugger).cmdPeek},
		{cmdPoke, "<address> <value> [value...]", "write memory without side effects", inDebug, (*Debugger).cmdPoke},
		{cmdDisasm, "[address] [count] | ALL | GREP <text>", "disassemble memory or the whole cartridge", inDebug, (*Debugger).cmdDisasm},
		{cmdReset, "", "reset the machine", inDebug, (*Debugger).cmdReset},
		{cmdSetSpeedLimited, "", "limit emulation speed to the TV refresh rate", inDebugOrRun, (*Debugger).cmdSetSpeedLimited},
		{cmdSetSpeedUnlimited, "", "run the emulation as fast as possible", inDebugOrRun, (*Debugger).cmdSetSpeedUnlimited},
		{cmdJoystick, "<0|1> [UP|DOWN|LEFT|RIGHT|FIRE|CENTRE...]", "set or show joystick state", inDebug, (*Debugger).cmdJoystick},
		{cmdPanel, "[RESET|SELECT|COLOR|BW|P0PRO|P0AM|P1PRO|P1AM...]", "toggle or show the console switches", inDebug, (*Debugger).cmdPanel},
		{cmdScreenshot, "[file]", "save the most recent frame as a PNG", inDebug, (*Debugger).cmdScreenshot},
		{cmdWav, "<file> | STOP", "record audio to a WAV file", inDebug, (*Debugger).cmdWav},
		{cmdMemviz, "<file>", "write a graphviz description of the CPU and TIA", inDebug, (*Debugger).cmdMemviz},
		{cmdScript, "<file>", "run a Lua script", inDebug, (*Debugger).cmdScript},
		{cmdLog, "[n | CLEAR]", "show or clear the log", inDebug, (*Debugger).cmdLog},
		{cmdHelp, "[command]", "list commands or show help for a command", inSetupOrDebug, (*Debugger).cmdHelp},
		{cmdQuit, "", "end the debugging session", inSetupOrDebug, (*Debugger).cmdQuit},
	}
}

func newCommandTree() *prefixtree.Tree[*command] {
	tree := prefixtree.New[*command]()
	for _, cmd := range commandList {
		tree.Add(strings.ToLower(cmd.name), cmd)
	}
	return tree
}

func (cmd *command) String() string {
	if cmd.usage == "" {
		return cmd.name
	}
	return fmt.Sprintf("%s %s", cmd.name, cmd.usage)
}
