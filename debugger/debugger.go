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
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/beevik/prefixtree/v2"
	"github.com/nojan1/6502.ts/curated"
	"github.com/nojan1/6502.ts/debugger/govern"
	"github.com/nojan1/6502.ts/debugger/terminal"
	"github.com/nojan1/6502.ts/environment"
	"github.com/nojan1/6502.ts/hardware"
	"github.com/nojan1/6502.ts/hardware/television/surface"
	"github.com/nojan1/6502.ts/limiter"
	"github.com/nojan1/6502.ts/logger"
	"github.com/nojan1/6502.ts/screenshot"
	"github.com/nojan1/6502.ts/trap"
	"github.com/nojan1/6502.ts/wavwriter"
)

// Sentinal error patterns for the debugger.
const (
	UnknownCommand     = "debugger: unknown command (%s)"
	AmbiguousCommand   = "debugger: ambiguous command (%s)"
	UnavailableCommand = "debugger: %s is not available in the %s state"
	InvalidArguments   = "debugger: %s: %v"
)

// Debugger is the basic debugging frontend for the emulation.
type Debugger struct {
	env  *environment.Environment
	vcs  *hardware.VCS
	term terminal.Terminal

	state govern.State

	// the name of the most recently loaded cartridge
	cartridgeFilename string

	lmtr *limiter.Limiter
	pool *surface.Pool
	shot *screenshot.Screenshot

	// non-nil while audio is being recorded
	wav *wavwriter.WavWriter

	commands *prefixtree.Tree[*command]

	events terminal.ReadEvents

	// the continue check while running is expensive so it is only performed
	// every hardware.PerformanceBrake instructions
	runFilter int

	// the number of scripts currently executing. scripts can run other
	// scripts but not without limit
	scriptDepth int
}

// NewDebugger creates and initialises everything required for a new debugging
// session. The env argument can be nil.
//
// Use the Start() function to actually begin the debugging session.
func NewDebugger(env *environment.Environment, term terminal.Terminal) (*Debugger, error) {
	vcs, err := hardware.NewVCS(env, nil)
	if err != nil {
		return nil, curated.Errorf("debugger: %v", err)
	}

	dbg := &Debugger{
		env:      vcs.Env,
		vcs:      vcs,
		term:     term,
		state:    govern.Setup,
		lmtr:     limiter.NewLimiter(vcs.TIA.Spec()),
		pool:     surface.NewPool(vcs.TIA.Width(), vcs.TIA.Height()),
		shot:     screenshot.NewScreenshot(),
		commands: newCommandTree(),
	}

	dbg.lmtr.Active.Store(dbg.env.Prefs.FPSLimit.Get().(bool))

	dbg.vcs.TIA.SetSurfaceFactory(dbg.pool.Get)
	dbg.vcs.TIA.SetFrameHandler(dbg.frameHandler)
	dbg.vcs.AddTrapHandler(dbg.trapHandler)

	dbg.events.Signal = make(chan os.Signal, 1)

	return dbg, nil
}

// VCS returns the hardware being debugged.
func (dbg *Debugger) VCS() *hardware.VCS {
	return dbg.vcs
}

// State returns the current state of the debugger.
func (dbg *Debugger) State() govern.State {
	return dbg.state
}

// Start the main debugger sequence. The cartridge and initScript arguments
// can be empty. The function returns when the QUIT command is entered, when
// the input is exhausted, or when an interrupt signal is received outside of
// the run state.
func (dbg *Debugger) Start(cartridgeFilename string, initScript string) error {
	if err := dbg.term.Initialise(); err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()
	defer dbg.lmtr.Stop()
	defer dbg.endWav()

	signal.Notify(dbg.events.Signal, os.Interrupt)
	defer signal.Stop(dbg.events.Signal)

	if cartridgeFilename != "" {
		if err := dbg.loadCartridge(cartridgeFilename); err != nil {
			return err
		}
	}

	if initScript != "" {
		if err := dbg.runScript(initScript); err != nil {
			dbg.printError(err)
		}
	}

	return dbg.inputLoop()
}

func (dbg *Debugger) inputLoop() error {
	for dbg.state != govern.Ending {
		prompt := terminal.Prompt{
			State:     dbg.state,
			Frequency: dbg.lmtr.MeasuredClock.Load().(float32),
		}

		input, err := dbg.term.TermRead(prompt, &dbg.events)
		if err != nil {
			if err == io.EOF || curated.Is(err, terminal.UserInterrupt) {
				return nil
			}
			return curated.Errorf("debugger: %v", err)
		}

		dbg.term.TermPrintLine(terminal.StyleEcho, input)

		if err := dbg.parseInput(input); err != nil {
			dbg.printError(err)
		}
	}

	return nil
}

// parseInput finds the command named by the first token of the input and
// runs it with the remaining tokens as arguments. Empty lines and lines
// beginning with # are ignored.
func (dbg *Debugger) parseInput(input string) error {
	tokens := strings.Fields(input)
	if len(tokens) == 0 || strings.HasPrefix(tokens[0], "#") {
		return nil
	}

	cmd, err := dbg.commands.FindValue(strings.ToLower(tokens[0]))
	if err != nil {
		if err == prefixtree.ErrPrefixAmbiguous {
			return curated.Errorf(AmbiguousCommand, tokens[0])
		}
		return curated.Errorf(UnknownCommand, tokens[0])
	}

	if !cmd.available(dbg.state) {
		return curated.Errorf(UnavailableCommand, cmd.name, dbg.state)
	}

	return cmd.handler(dbg, tokens[1:])
}

// trapHandler is called by the hardware every time a trap is raised.
func (dbg *Debugger) trapHandler(t trap.Trap) {
	dbg.term.TermPrintLine(terminal.StyleError, t.Error())
	if dbg.state == govern.Running {
		dbg.state = govern.Debug
	}
}

// frameHandler receives every completed frame from the TIA.
func (dbg *Debugger) frameHandler(s *surface.Surface) {
	dbg.shot.Frame(s)
	dbg.pool.Put(s)
	if dbg.state == govern.Running {
		dbg.lmtr.CheckFrame()
	}
}

// hardwareError filters errors from the hardware. Traps have already been
// reported by the trap handler and are not returned.
func (dbg *Debugger) hardwareError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := trap.As(err); ok {
		return nil
	}
	return err
}

func (dbg *Debugger) printLine(style terminal.Style, s string) {
	for _, l := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		dbg.term.TermPrintLine(style, l)
	}
}

func (dbg *Debugger) printError(err error) {
	logger.Log(dbg.env, "debugger", err.Error())
	dbg.term.TermPrintLine(terminal.StyleError, err.Error())
}
