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


package modalflag_test

import (
	"io"
	"testing"

	"github.com/nojan1/6502.ts/modalflag"
	"github.com/nojan1/6502.ts/test"
)

func newModes(output io.Writer, args ...string) *modalflag.Modes {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("debug", "run", "disasm")
	return md
}

func TestNoArguments(t *testing.T) {
	md := newModes(nil)

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "DEBUG")
	test.ExpectEquality(t, len(md.RemainingArgs()), 0)
}

func TestDefaultMode(t *testing.T) {
	md := newModes(nil, "rom.bin")

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "DEBUG")

	md.NewMode()
	initScript := md.AddString("initscript", "", "Lua script to run on debugger start")
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *initScript, "")
	test.ExpectEquality(t, md.GetArg(0), "rom.bin")
}

func TestFlagBeforeMode(t *testing.T) {
	// the first stage does not know the flag so the default mode is chosen
	// and the flag is parsed by the second stage
	md := newModes(nil, "-tv", "PAL", "rom.bin")

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "DEBUG")

	md.NewMode()
	tv := md.AddString("tv", "", "television specification")
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *tv, "PAL")
	test.ExpectEquality(t, md.GetArg(0), "rom.bin")
	test.ExpectEquality(t, md.GetArg(1), "")
}

func TestRunMode(t *testing.T) {
	md := newModes(nil, "run", "-frames", "100", "-digest", "VIDEO", "rom.bin")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "RUN")

	md.NewMode()
	frames := md.AddInt("frames", 0, "number of frames to run")
	digest := md.AddString("digest", "NONE", "print digest at end of run")
	fpsCap := md.AddBool("fpscap", true, "cap fps to specification")

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, *frames, 100)
	test.ExpectEquality(t, *digest, "VIDEO")
	test.ExpectEquality(t, *fpsCap, true)
	test.DemandEquality(t, len(md.RemainingArgs()), 1)
	test.ExpectEquality(t, md.GetArg(0), "rom.bin")
	test.ExpectEquality(t, md.Path(), "RUN")
	test.ExpectEquality(t, md.String(), "RUN")
}

func TestModeIsCaseInsensitive(t *testing.T) {
	md := newModes(nil, "DisAsm", "rom.bin")
	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "DISASM")

	md.NewMode()
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.GetArg(0), "rom.bin")
}

func TestUnknownFlag(t *testing.T) {
	md := newModes(nil, "disasm", "-frames", "10", "rom.bin")
	_, err := md.Parse()
	test.ExpectSuccess(t, err)

	md.NewMode()
	md.AddBool("bytecode", false, "include bytecode in disassembly")
	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestModesHelp(t *testing.T) {
	tw := &test.Writer{}
	md := newModes(tw, "-help")
	md.AdditionalHelp("6502.ts local")

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expected := "modes: DEBUG, RUN, DISASM (default DEBUG)\n" +
		"\n" +
		"6502.ts local\n"
	test.ExpectSuccess(t, tw.Compare(expected), tw.String())
}

func TestDisasmHelp(t *testing.T) {
	tw := &test.Writer{}
	md := newModes(tw, "disasm", "-h")
	md.AdditionalHelp("6502.ts local")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "DISASM")

	// the additional help of the first stage is not repeated
	md.NewMode()
	md.AddString("cpu", "6502", "cpu variant: 6502, 65C02")
	md.AddBool("bytecode", false, "include bytecode in disassembly")

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expected := "DISASM mode\n" +
		"flags:\n" +
		"  -bytecode            include bytecode in disassembly\n" +
		"  -cpu string          cpu variant: 6502, 65C02 (default 6502)\n"
	test.ExpectSuccess(t, tw.Compare(expected), tw.String())
}

func TestRunHelp(t *testing.T) {
	tw := &test.Writer{}
	md := newModes(tw, "run", "-help")
	_, _ = md.Parse()

	md.NewMode()
	md.AddInt("frames", 0, "number of frames to run")
	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, tw.Compare("RUN mode\nflags:\n  -frames int          number of frames to run\n"), tw.String())
}

func TestNoFlagsHelp(t *testing.T) {
	tw := &test.Writer{}
	md := &modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, tw.Compare("no flags\n"), tw.String())
}
