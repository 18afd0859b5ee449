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


// Package modalflag parses the command line of a program with several modes
// of operation. Each mode has its own set of flags and its own arguments.
//
// The emulator has three modes. DEBUG is the default and starts the
// interactive debugger, RUN runs a cartridge without the debugger and DISASM
// prints a static disassembly of a cartridge. The mode is selected by the
// first argument that is not a flag:
//
//	6502ts rom.bin
//	6502ts run -frames 100 -digest VIDEO rom.bin
//	6502ts disasm -bytecode rom.bin
//
// Parsing happens in two stages. The first stage is given the list of modes
// and finds which mode has been requested:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("DEBUG", "RUN", "DISASM")
//	p, err := md.Parse()
//
// The second stage starts with NewMode(), adds the flags for the selected
// mode and calls Parse() again. The remaining arguments are then available
// with RemainingArgs() and GetArg():
//
//	md.NewMode()
//	frames := md.AddInt("frames", 0, "number of frames to run")
//	p, err = md.Parse()
//	cartridge := md.GetArg(0)
//
// Mode names are case insensitive. If the first stage finds a flag it does
// not know about, the default mode is selected and the flag is left for the
// second stage. So "6502ts -tv PAL rom.bin" starts the debugger with the PAL
// television.
//
// Parse() returns ParseHelp if help was requested with -help or -h. The help
// for the current stage will already have been written to the Output field
// by then.
package modalflag
