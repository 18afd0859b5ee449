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


package modalflag

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// the column at which flag descriptions start in the help output
const helpColumn = 22

// Modes parses the command line of a program with several modes of
// operation. The Output field must be set for help messages to be seen.
type Modes struct {
	Output io.Writer

	// a new flagset for every stage of parsing
	flags *flag.FlagSet

	// the complete argument list and the index of the first argument of the
	// current stage
	args    []string
	argsIdx int

	// the modes recognised by the current stage. the first entry is the
	// default mode
	subModes []string

	// the modes selected by every stage so far
	path []string

	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the most recently selected mode. Returns the empty string if
// no mode has been selected.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every selected mode separated by a slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, "/")
}

// NewArgs sets the arguments to be parsed and starts the first stage.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.path = md.path[:0]
	md.NewMode()
}

// NewMode starts a new stage of parsing. Flags and modes from the previous
// stage are forgotten.
func (md *Modes) NewMode() {
	md.subModes = nil
	md.additionalHelp = ""
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.flags.SetOutput(io.Discard)
	md.flags.Usage = func() {}
}

// AdditionalHelp is printed after the flags and modes in the help message.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// parsing succeeded. if modes were added then Mode() is the selected mode
	ParseContinue ParseResult = iota

	// help was requested and has been written to Output
	ParseHelp

	// the error is returned as the second return value
	ParseError
)

// Parse the arguments for the current stage.
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
func (md *Modes) Parse() (ParseResult, error) {
	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if err == flag.ErrHelp {
			md.help()
			return ParseHelp, nil
		}

		// an unknown flag at a stage with modes selects the default mode. the
		// flag will be parsed by the next stage
		if len(md.subModes) == 0 {
			return ParseError, err
		}
		md.path = append(md.path, md.subModes[0])
		return ParseContinue, nil
	}

	if len(md.subModes) == 0 {
		return ParseContinue, nil
	}

	mode := md.subModes[0]
	arg := strings.ToUpper(md.flags.Arg(0))
	for _, m := range md.subModes {
		if m == arg {
			mode = m

			// the next stage begins after the mode name
			md.argsIdx += len(md.args[md.argsIdx:]) - md.flags.NArg() + 1
			break // for loop
		}
	}
	md.path = append(md.path, mode)

	return ParseContinue, nil
}

// RemainingArgs returns the arguments after the flags of the current stage.
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// GetArg returns the numbered argument after the flags of the current stage.
// Returns the empty string if there is no such argument.
func (md *Modes) GetArg(i int) string {
	return md.flags.Arg(i)
}

// AddSubModes adds modes that can be selected by the current stage. The first
// mode added is the default.
func (md *Modes) AddSubModes(modes ...string) {
	for _, m := range modes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// AddBool flag for the current stage.
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddInt flag for the current stage.
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for the current stage.
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// help writes the modes and flags of the current stage to the Output field.
func (md *Modes) help() {
	if md.Output == nil {
		return
	}

	s := &strings.Builder{}

	if len(md.path) > 0 {
		fmt.Fprintf(s, "%s mode\n", md.Path())
	}

	if len(md.subModes) > 0 {
		fmt.Fprintf(s, "modes: %s (default %s)\n", strings.Join(md.subModes, ", "), md.subModes[0])
	}

	var flags []string
	md.flags.VisitAll(func(f *flag.Flag) {
		typ, usage := flag.UnquoteUsage(f)
		name := fmt.Sprintf("  -%s", f.Name)
		if typ != "" {
			name = fmt.Sprintf("%s %s", name, typ)
		}
		line := fmt.Sprintf("%-*s %s", helpColumn, name, usage)
		switch f.DefValue {
		case "", "false", "0":
		default:
			line = fmt.Sprintf("%s (default %s)", line, f.DefValue)
		}
		flags = append(flags, line)
	})

	if len(flags) > 0 {
		s.WriteString("flags:\n")
		s.WriteString(strings.Join(flags, "\n"))
		s.WriteString("\n")
	}

	if len(md.subModes) == 0 && len(flags) == 0 {
		s.WriteString("no flags\n")
	}

	if md.additionalHelp != "" {
		fmt.Fprintf(s, "\n%s\n", md.additionalHelp)
	}

	io.WriteString(md.Output, s.String())
}
