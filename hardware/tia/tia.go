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

package tia

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/nojan1/6502.ts/environment"
	"github.com/nojan1/6502.ts/hardware/television/coords"
	"github.com/nojan1/6502.ts/hardware/television/specification"
	"github.com/nojan1/6502.ts/hardware/television/surface"
	"github.com/nojan1/6502.ts/hardware/tia/audio"
	"github.com/nojan1/6502.ts/hardware/tia/paddle"
	"github.com/nojan1/6502.ts/hardware/tia/video"
	"github.com/nojan1/6502.ts/logger"
)

// CPU is the part of the CPU that the TIA controls. Writing to WSYNC halts
// the CPU and the CPU is resumed at the start of the next scanline.
type CPU interface {
	Halt()
	Resume()
}

// FireButtons is implemented by the source of the joystick fire buttons.
type FireButtons interface {
	Fire(player int) bool
}

// SurfaceFactory returns a new surface for every frame. The surface should
// be at least Width() by Height() pixels.
type SurfaceFactory func() *surface.Surface

// FrameHandler receives the surface of every completed frame. The handler
// owns the surface after the call and should return it to its pool when it
// is no longer required.
type FrameHandler func(*surface.Surface)

// TIA is the Television Interface Adaptor.
type TIA struct {
	env  *environment.Environment
	spec *specification.Spec
	cpu  CPU

	// the beam counters. HClock counts from 0 to 227 and VClock counts the
	// scanlines since the start of the frame
	HClock int
	VClock int

	// the number of frames started since the last reset
	FrameNum int

	// the number of clocks since the last reset. the time base for the
	// paddle circuits
	Clocks int64

	vsync           bool
	frameInProgress bool

	// output blanking. VBLANK bit 1
	vblank bool

	// HMOVE during the horizontal blank extends the blank by eight clocks
	extendedHblank bool

	// the HMOVE counter ticks every four clocks while any object is moving
	movementInProgress bool
	movementCtr        int

	Video   *video.Video
	Audio   *audio.Audio
	Paddles [4]*paddle.Paddle

	buttons FireButtons

	// VBLANK bit 6 latches the fire buttons. a latch is set when the button
	// is pressed and stays set until the latch mode is turned off
	latchInputs  bool
	inputLatches [2]bool

	surfaceFactory SurfaceFactory
	frameHandler   FrameHandler
	surface        *surface.Surface
}

// NewTIA is the preferred method of initialisation for the TIA type.
func NewTIA(env *environment.Environment, spec *specification.Spec) *TIA {
	tia := &TIA{
		env:   env,
		spec:  spec,
		Video: video.NewVideo(),
		Audio: audio.NewAudio(),
	}
	for i := range tia.Paddles {
		tia.Paddles[i] = paddle.NewPaddle(spec.ClockFrequency)
	}
	tia.Reset()
	return tia
}

// SetCPU connects the TIA to the CPU.
func (tia *TIA) SetCPU(cpu CPU) {
	tia.cpu = cpu
}

// AttachFireButtons connects the source of the INPT4 and INPT5 inputs.
func (tia *TIA) AttachFireButtons(buttons FireButtons) {
	tia.buttons = buttons
}

// SetSurfaceFactory sets the function that is used to create a new surface
// at the start of every frame. If no factory is set then frames are timed
// but no pixels are drawn.
func (tia *TIA) SetSurfaceFactory(factory SurfaceFactory) {
	tia.surfaceFactory = factory
}

// SetFrameHandler sets the function that receives every completed frame.
func (tia *TIA) SetFrameHandler(handler FrameHandler) {
	tia.frameHandler = handler
}

// Spec returns the television specification used by the TIA.
func (tia *TIA) Spec() *specification.Spec {
	return tia.spec
}

// Width returns the width of the visible screen in pixels.
func (tia *TIA) Width() int {
	return specification.HorizClksVisible
}

// Height returns the height of the visible screen in pixels.
func (tia *TIA) Height() int {
	return tia.spec.ScanlinesVisible
}

// GetCoords implements the random.TV interface.
func (tia *TIA) GetCoords() coords.TelevisionCoords {
	return coords.TelevisionCoords{
		Frame:    tia.FrameNum,
		Scanline: tia.VClock,
		Clock:    tia.HClock,
	}
}

func (tia *TIA) String() string {
	s := strings.Builder{}
	fp := "no"
	if tia.frameInProgress {
		fp = "yes"
	}
	vs := 0
	if tia.vsync {
		vs = 1
	}
	s.WriteString(fmt.Sprintf("hclock: %d   vclock: %d    vsync: %d    frame pending: %s\n", tia.HClock, tia.VClock, vs, fp))
	s.WriteString(tia.Video.String())
	s.WriteString("\n")
	s.WriteString(tia.Audio.String())
	return s.String()
}

// Reset the TIA to its power-on state. The CPU is resumed if it was halted.
func (tia *TIA) Reset() {
	tia.HClock = 0
	tia.VClock = 0
	tia.FrameNum = 0
	tia.Clocks = 0
	tia.vsync = false
	tia.frameInProgress = false
	tia.vblank = false
	tia.extendedHblank = false
	tia.movementInProgress = false
	tia.movementCtr = 0
	tia.latchInputs = false
	tia.inputLatches = [2]bool{}
	tia.surface = nil

	tia.Video.Reset()
	tia.Audio.Reset()
	for _, p := range tia.Paddles {
		p.Reset(0)
	}

	if tia.cpu != nil {
		tia.cpu.Resume()
	}
}

// FrameInProgress returns true if a frame has been started and has not yet
// been finalised.
func (tia *TIA) FrameInProgress() bool {
	return tia.frameInProgress
}

// the first clock at which objects are drawn
func (tia *TIA) hblankWidth() int {
	if tia.extendedHblank {
		return specification.HorizClksHBlank + 8
	}
	return specification.HorizClksHBlank
}

// Step the TIA forward one color clock.
func (tia *TIA) Step() {
	tia.Clocks++

	tia.Video.ClockTick()
	tia.tickMovement()

	if tia.HClock >= specification.HorizClksHBlank {
		x := tia.HClock - specification.HorizClksHBlank
		if tia.HClock < tia.hblankWidth() {
			// the extended blank is drawn in black
			tia.renderPixel(x, specification.VideoBlack)
		} else {
			col := tia.Video.Pixel(x)
			if tia.vblank {
				tia.renderPixel(x, specification.VideoBlack)
			} else {
				tia.renderPixel(x, tia.spec.GetColor(col))
			}
			tia.Video.Tick()
		}
	}

	tia.Audio.Step()

	tia.HClock++
	if tia.HClock >= specification.HorizClksScanline {
		tia.HClock = 0
		tia.extendedHblank = false
		if tia.cpu != nil {
			tia.cpu.Resume()
		}
		tia.nextLine()
	}
}

func (tia *TIA) tickMovement() {
	if !tia.movementInProgress || tia.HClock&0x03 != 0 {
		return
	}

	clock := tia.movementCtr
	if clock > 15 {
		clock = 0
	}

	// objects only receive the extra clocks during the blank. outside of
	// the blank the objects are already being clocked
	apply := tia.HClock < tia.hblankWidth()

	tia.movementInProgress = tia.Video.MovementTick(clock, apply)
	tia.movementCtr++
}

func (tia *TIA) nextLine() {
	tia.VClock++
	if tia.frameInProgress && tia.VClock >= tia.spec.OverscanStart {
		tia.finalizeFrame()
	}
}

func (tia *TIA) startFrame() {
	if tia.FrameNum > 0 && tia.VClock != tia.spec.ScanlinesTotal() {
		logger.Logf(tia.env, "tia", "frame %d has %d scanlines (%s expects %d)",
			tia.FrameNum, tia.VClock, tia.spec.ID, tia.spec.ScanlinesTotal())
	}

	if tia.surfaceFactory != nil {
		tia.surface = tia.surfaceFactory()
		if tia.surface != nil {
			tia.surface.FrameNum = tia.FrameNum + 1
		}
	}

	tia.frameInProgress = true
	tia.VClock = 0
	tia.FrameNum++
}

func (tia *TIA) finalizeFrame() {
	if !tia.frameInProgress {
		return
	}

	if tia.surface != nil {
		if tia.frameHandler != nil {
			tia.frameHandler(tia.surface)
		}
		tia.surface = nil
	}

	tia.frameInProgress = false
}

func (tia *TIA) renderPixel(x int, col color.RGBA) {
	if !tia.frameInProgress || tia.surface == nil {
		return
	}

	y := tia.VClock - tia.spec.ScanlinesVBlank
	if y < 0 || y >= tia.spec.ScanlinesVisible {
		return
	}

	tia.surface.SetPixel(x, y, col)
}
