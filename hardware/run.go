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

package hardware

import (
	"github.com/nojan1/6502.ts/curated"
	"github.com/nojan1/6502.ts/debugger/govern"
	"github.com/nojan1/6502.ts/hardware/television/specification"
)

// NoVSYNC is returned by RunForFrameCount when the emulation has not
// produced a new frame for an unreasonably long time.
const NoVSYNC = "vcs: no VSYNC after %d colour clocks"

// While the continueCheck() function only runs at the end of a CPU
// instruction, it can still be expensive to do a full continue check every
// time.
//
// PerformanceBrake is a standard value that can be used to filter out
// expensive code paths within a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// the number of frames worth of colour clocks that can pass without a new
// frame before RunForFrameCount() gives up
const noVSYNCFrames = 10

// Run sets the emulation running as quickly as possible. The emulation halts
// when continueCheck returns anything other than govern.Running, or when the
// hardware raises a trap. The trap is returned.
func (vcs *VCS) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running
	for state == govern.Running {
		if err = vcs.Step(); err != nil {
			return err
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForFrameCount sets emulator running for the specified number of frames.
// Useful for FPS and regression tests. The continueCheck function is called
// after every completed frame and may be nil.
func (vcs *VCS) RunForFrameCount(numFrames int, continueCheck func(frame int) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(frame int) (govern.State, error) { return govern.Running, nil }
	}

	limit := int64(noVSYNCFrames * vcs.TIA.Spec().ScanlinesTotal() * specification.HorizClksScanline)

	frameNum := vcs.TIA.FrameNum
	targetFrame := frameNum + numFrames
	lastFrame := vcs.TIA.Clocks

	state := govern.Running
	for frameNum < targetFrame && state == govern.Running {
		if err := vcs.Step(); err != nil {
			return err
		}

		if vcs.TIA.FrameNum == frameNum {
			if vcs.TIA.Clocks-lastFrame > limit {
				return curated.Errorf(NoVSYNC, vcs.TIA.Clocks-lastFrame)
			}
			continue
		}

		frameNum = vcs.TIA.FrameNum
		lastFrame = vcs.TIA.Clocks

		var err error
		state, err = continueCheck(frameNum)
		if err != nil {
			return err
		}
	}

	return nil
}
