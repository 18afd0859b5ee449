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


package plainterm_test

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/nojan1/6502.ts/curated"
	"github.com/nojan1/6502.ts/debugger/govern"
	"github.com/nojan1/6502.ts/debugger/terminal"
	"github.com/nojan1/6502.ts/debugger/terminal/plainterm"
	"github.com/nojan1/6502.ts/test"
)

func TestReadAndPrint(t *testing.T) {
	out := &test.Writer{}
	pt := plainterm.NewPlainTerminal(strings.NewReader("step\r\ncpu\n"), out)
	test.DemandSuccess(t, pt.Initialise())
	defer pt.CleanUp()

	test.ExpectFailure(t, pt.IsInteractive())

	prompt := terminal.Prompt{State: govern.Debug}

	l, err := pt.TermRead(prompt, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, l, "step")

	l, err = pt.TermRead(prompt, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, l, "cpu")

	_, err = pt.TermRead(prompt, nil)
	test.ExpectEquality(t, err, io.EOF)

	// prompt is not printed for non-interactive input
	pt.TermPrintLine(terminal.StyleEcho, "step")
	pt.TermPrintLine(terminal.StyleFeedback, "ok")
	pt.TermPrintLine(terminal.StyleError, "bad")
	test.ExpectSuccess(t, out.Compare("ok\n* bad\n"))
}

func TestInterrupt(t *testing.T) {
	// a pipe that is never written to. TermRead() will block until the signal
	// arrives
	r, w := io.Pipe()
	defer w.Close()

	pt := plainterm.NewPlainTerminal(r, &test.Writer{})
	test.DemandSuccess(t, pt.Initialise())

	events := &terminal.ReadEvents{Signal: make(chan os.Signal, 1)}
	events.Signal <- os.Interrupt

	_, err := pt.TermRead(terminal.Prompt{}, events)
	test.ExpectSuccess(t, curated.Is(err, terminal.UserInterrupt))

	_, ok := pt.TermReadCheck()
	test.ExpectFailure(t, ok)
}
