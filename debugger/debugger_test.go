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


package debugger_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nojan1/6502.ts/debugger"
	"github.com/nojan1/6502.ts/debugger/govern"
	"github.com/nojan1/6502.ts/debugger/terminal/plainterm"
	"github.com/nojan1/6502.ts/environment"
	"github.com/nojan1/6502.ts/test"
)

// a frame of three VSYNC scanlines followed by 256 WSYNC scanlines
var frameProgram = []uint8{
	0x78,       // f000 SEI
	0xd8,       // f001 CLD
	0xa2, 0xff, // f002 LDX #$ff
	0x9a,       // f004 TXS
	0xa9, 0x02, // f005 LDA #$02
	0x85, 0x00, // f007 STA VSYNC
	0x85, 0x02, // f009 STA WSYNC
	0x85, 0x02, // f00b STA WSYNC
	0x85, 0x02, // f00d STA WSYNC
	0xa9, 0x00, // f00f LDA #$00
	0x85, 0x00, // f011 STA VSYNC
	0xa0, 0x00, // f013 LDY #$00
	0x85, 0x02, // f015 STA WSYNC
	0x88,       // f017 DEY
	0xd0, 0xfb, // f018 BNE $f015
	0x4c, 0x05, 0xf0, // f01a JMP $f005
}

// writeCartridge creates a 4k cartridge file with the program at the start
// of the image and the reset vector pointing to it
func writeCartridge(t *testing.T, program []uint8) string {
	t.Helper()

	data := make([]uint8, 4096)
	copy(data, program)
	data[0xffc] = 0x00
	data[0xffd] = 0xf0

	fn := filepath.Join(t.TempDir(), "test.bin")
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o644))
	return fn
}

// runSession runs a debugging session with the input lines and returns the
// debugger and everything written to the terminal.
func runSession(t *testing.T, cartridge string, lines ...string) (*debugger.Debugger, string) {
	t.Helper()

	env, err := environment.NewEnvironment(nil, nil)
	test.DemandSuccess(t, err)
	env.Normalise()

	out := &test.Writer{}
	input := strings.NewReader(strings.Join(lines, "\n") + "\n")

	dbg, err := debugger.NewDebugger(env, plainterm.NewPlainTerminal(input, out))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dbg.Start(cartridge, ""))

	return dbg, out.String()
}

func expectOutput(t *testing.T, output string, expected string) {
	t.Helper()
	if !strings.Contains(output, expected) {
		t.Errorf("output does not contain %q\n%s", expected, output)
	}
}

func TestSetupState(t *testing.T) {
	dbg, out := runSession(t, "", "cpu", "help", "quit")
	test.ExpectEquality(t, dbg.State(), govern.Ending)
	expectOutput(t, out, "* debugger: CPU is not available in the setup state")
	expectOutput(t, out, "LOAD-CARTRIDGE")
	expectOutput(t, out, "SET-SPEED-UNLIMITED")
}

func TestEndOfInput(t *testing.T) {
	dbg, _ := runSession(t, "", "help")
	test.ExpectEquality(t, dbg.State(), govern.Setup)
}

func TestLoadCartridge(t *testing.T) {
	fn := writeCartridge(t, frameProgram)

	dbg, out := runSession(t, "", fmt.Sprintf("load-cartridge %s", fn))
	test.ExpectEquality(t, dbg.State(), govern.Debug)
	expectOutput(t, out, "loaded")

	env, err := environment.NewEnvironment(nil, nil)
	test.DemandSuccess(t, err)
	dbg, err = debugger.NewDebugger(env, plainterm.NewPlainTerminal(strings.NewReader(""), &test.Writer{}))
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, dbg.Start(filepath.Join(t.TempDir(), "missing.bin"), ""))
}

func TestCommandLookup(t *testing.T) {
	fn := writeCartridge(t, frameProgram)
	_, out := runSession(t, fn, "s", "foo", "stop", "help step")
	expectOutput(t, out, "* debugger: ambiguous command (s)")
	expectOutput(t, out, "* debugger: unknown command (foo)")
	expectOutput(t, out, "* debugger: STOP is not available in the debug state")
	expectOutput(t, out, "STEP [n]")
}

func TestStep(t *testing.T) {
	fn := writeCartridge(t, frameProgram)

	// the first step completes the reset sequence
	dbg, out := runSession(t, fn, "step", "step 3", "cpu", "cycle 2")
	expectOutput(t, out, "f000  SEI")
	expectOutput(t, out, "f001  CLD")
	expectOutput(t, out, "f002  LDX #$ff")
	expectOutput(t, out, "PC=f004")

	// TXS takes two cycles
	test.ExpectEquality(t, dbg.VCS().CPU.PC.Address(), 0xf005)
	test.ExpectEquality(t, dbg.VCS().CPU.SP.Value(), 0xff)
}

func TestPeekPoke(t *testing.T) {
	fn := writeCartridge(t, frameProgram)
	dbg, out := runSession(t, fn, "poke $80 1 2 0x03", "peek $80 3", "peek swcha", "poke $80 256", "peek 0x10000")
	expectOutput(t, out, "0080: 01 02 03")
	expectOutput(t, out, "0280:")
	expectOutput(t, out, "* debugger: POKE: not a valid 8 bit number (256)")
	expectOutput(t, out, "* debugger: PEEK: not a valid address (0x10000)")
	test.ExpectEquality(t, dbg.VCS().RIOT.RAM[0], 0x01)
}

func TestDisasm(t *testing.T) {
	fn := writeCartridge(t, frameProgram)
	_, out := runSession(t, fn, "disasm $f000 2", "disasm grep txs", "disasm all")
	expectOutput(t, out, "f000  SEI")
	expectOutput(t, out, "f001  CLD")
	expectOutput(t, out, "TXS")
	expectOutput(t, out, "JMP $f005")
}

func TestJoystickAndPanel(t *testing.T) {
	fn := writeCartridge(t, frameProgram)
	dbg, out := runSession(t, fn, "joystick 0 up fire", "joystick 1 left", "joystick 2", "panel bw p0pro reset", "panel foo")

	stk := dbg.VCS().RIOT.Ports.Joysticks
	test.ExpectSuccess(t, stk[0].Up)
	test.ExpectSuccess(t, stk[0].Fire)
	test.ExpectFailure(t, stk[0].Left)
	test.ExpectSuccess(t, stk[1].Left)
	expectOutput(t, out, "p0: up+fire")
	expectOutput(t, out, "* debugger: JOYSTICK: not a valid player (2)")

	pan := dbg.VCS().RIOT.Ports.Panel
	test.ExpectFailure(t, pan.Color)
	test.ExpectSuccess(t, pan.P0Pro)
	test.ExpectSuccess(t, pan.Reset)
	expectOutput(t, out, "* debugger: PANEL: unknown switch (foo)")
}

func TestRunAndStop(t *testing.T) {
	fn := writeCartridge(t, frameProgram)
	dbg, out := runSession(t, fn, "set-speed-unlimited", "run", "stop", "quit")
	test.ExpectEquality(t, dbg.State(), govern.Ending)
	expectOutput(t, out, "speed unlimited")
	expectOutput(t, out, "stopped")
}

func TestTrapWhileRunning(t *testing.T) {
	// JAM is an invalid opcode
	fn := writeCartridge(t, []uint8{0x02})
	dbg, out := runSession(t, fn, "run", "cpu")
	test.ExpectEquality(t, dbg.State(), govern.Debug)
	expectOutput(t, out, "* CPU trap")
	expectOutput(t, out, "PC=")
}

func TestFrameAndScreenshot(t *testing.T) {
	fn := writeCartridge(t, frameProgram)
	shot := filepath.Join(t.TempDir(), "shot")

	dbg, out := runSession(t, fn, "screenshot", "frame 3", fmt.Sprintf("screenshot %s", shot))
	expectOutput(t, out, "* screenshot: no frame to save")
	expectOutput(t, out, "frame 3")
	test.ExpectEquality(t, dbg.VCS().TIA.FrameNum, 3)

	_, err := os.Stat(shot + ".png")
	test.ExpectSuccess(t, err)
}

func TestWav(t *testing.T) {
	fn := writeCartridge(t, frameProgram)
	wav := filepath.Join(t.TempDir(), "audio.wav")

	_, out := runSession(t, fn, "wav stop", fmt.Sprintf("wav %s", wav), "frame 2", "wav stop")
	expectOutput(t, out, "* debugger: WAV: not recording")
	expectOutput(t, out, "recording audio to")
	expectOutput(t, out, "wrote")

	_, err := os.Stat(wav)
	test.ExpectSuccess(t, err)
}

func TestMemviz(t *testing.T) {
	fn := writeCartridge(t, frameProgram)
	dot := filepath.Join(t.TempDir(), "state.dot")

	_, out := runSession(t, fn, fmt.Sprintf("memviz %s", dot))
	expectOutput(t, out, "memviz written to")

	data, err := os.ReadFile(dot)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "digraph"))
}

func TestScript(t *testing.T) {
	fn := writeCartridge(t, frameProgram)

	lua := filepath.Join(t.TempDir(), "test.lua")
	test.DemandSuccess(t, os.WriteFile(lua, []byte(`
poke(0x80, 0x55)
step(3)
local r = registers()
print(string.format("pc=%04x", r.pc))
print(peek(0x80))
command("stop")
`), 0o644))

	_, out := runSession(t, fn, fmt.Sprintf("script %s", lua))
	expectOutput(t, out, "pc=f002")
	expectOutput(t, out, "85")

	// the STOP command is not available in the debug state and the error
	// ends the script
	expectOutput(t, out, "STOP is not available")
}

func TestLog(t *testing.T) {
	fn := writeCartridge(t, frameProgram)
	_, out := runSession(t, fn, "log", "log clear", "log")
	expectOutput(t, out, "attached cartridge")
	expectOutput(t, out, "log is empty")
}
