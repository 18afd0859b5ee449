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
	"strings"

	"github.com/nojan1/6502.ts/curated"
	"github.com/nojan1/6502.ts/debugger/terminal"
	"github.com/nojan1/6502.ts/hardware/tia/audio"
	"github.com/nojan1/6502.ts/wavwriter"
)

func (dbg *Debugger) cmdWav(args []string) error {
	if len(args) != 1 {
		return curated.Errorf(InvalidArguments, cmdWav, "expected a filename or STOP")
	}

	if strings.ToUpper(args[0]) == "STOP" {
		if dbg.wav == nil {
			return curated.Errorf(InvalidArguments, cmdWav, "not recording")
		}
		fn := dbg.wav.Filename()
		n := dbg.wav.NumSamples()
		if err := dbg.endWav(); err != nil {
			return err
		}
		dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("wrote %d samples to %s", n, fn))
		return nil
	}

	if dbg.wav != nil {
		return curated.Errorf(InvalidArguments, cmdWav, fmt.Sprintf("already recording to %s", dbg.wav.Filename()))
	}

	w, err := wavwriter.New(args[0], audio.SampleFreq(dbg.vcs.TIA.Spec().ClockFrequency))
	if err != nil {
		return err
	}

	dbg.wav = w
	dbg.vcs.TIA.Audio.SetMixer(w)
	dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("recording audio to %s", w.Filename()))

	return nil
}

// endWav stops any audio recording and writes the file.
func (dbg *Debugger) endWav() error {
	if dbg.wav == nil {
		return nil
	}
	dbg.vcs.TIA.Audio.SetMixer(nil)
	err := dbg.wav.EndMixing()
	dbg.wav = nil
	return err
}
