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

package tia_test

import (
	"testing"

	"github.com/nojan1/6502.ts/hardware/television/specification"
	"github.com/nojan1/6502.ts/hardware/television/surface"
	"github.com/nojan1/6502.ts/hardware/tia"
	"github.com/nojan1/6502.ts/test"
)

type mockCPU struct {
	halted  bool
	resumes int
}

func (cpu *mockCPU) Halt() {
	cpu.halted = true
}

func (cpu *mockCPU) Resume() {
	cpu.halted = false
	cpu.resumes++
}

type mockButtons struct {
	fire [2]bool
}

func (b *mockButtons) Fire(player int) bool {
	return b.fire[player]
}

type frames struct {
	pool     *surface.Pool
	current  *surface.Surface
	received []*surface.Surface
}

func newTestTIA(t *testing.T) (*tia.TIA, *mockCPU, *frames) {
	t.Helper()

	tv := tia.NewTIA(nil, &specification.SpecNTSC)
	cpu := &mockCPU{}
	tv.SetCPU(cpu)

	f := &frames{
		pool: surface.NewPool(tv.Width(), tv.Height()),
	}
	tv.SetSurfaceFactory(func() *surface.Surface {
		f.current = f.pool.Get()
		return f.current
	})
	tv.SetFrameHandler(func(s *surface.Surface) {
		f.received = append(f.received, s)
	})

	return tv, cpu, f
}

func write(t *testing.T, tv *tia.TIA, register uint16, data uint8) {
	t.Helper()
	test.DemandSuccess(t, tv.Write(register, data))
}

func read(t *testing.T, tv *tia.TIA, register uint16) uint8 {
	t.Helper()
	v, err := tv.Read(register)
	test.DemandSuccess(t, err)
	return v
}

func stepLines(tv *tia.TIA, lines int) {
	for range lines * specification.HorizClksScanline {
		tv.Step()
	}
}

func startFrame(t *testing.T, tv *tia.TIA) {
	t.Helper()
	write(t, tv, tia.VSYNC, 0x02)
	write(t, tv, tia.VSYNC, 0x00)
}

func TestWSYNC(t *testing.T) {
	for h := range specification.HorizClksScanline {
		tv, cpu, _ := newTestTIA(t)

		for tv.HClock != h {
			tv.Step()
		}

		write(t, tv, tia.WSYNC, 0x00)
		test.DemandSuccess(t, cpu.halted, h)

		var steps int
		for cpu.halted {
			tv.Step()
			steps++
		}

		test.ExpectEquality(t, tv.HClock, 0, h)
		test.ExpectEquality(t, tv.VClock, 1, h)
		test.ExpectEquality(t, steps, specification.HorizClksScanline-h, h)
	}

	// poking WSYNC does not halt the CPU
	tv, cpu, _ := newTestTIA(t)
	test.DemandSuccess(t, tv.Poke(tia.WSYNC, 0x00))
	test.ExpectFailure(t, cpu.halted)
}

func TestRSYNC(t *testing.T) {
	tv, cpu, _ := newTestTIA(t)
	stepLines(tv, 1)
	tv.Step()

	resumes := cpu.resumes
	write(t, tv, tia.RSYNC, 0x00)
	for range 3 {
		tv.Step()
	}
	test.ExpectEquality(t, tv.HClock, 0)
	test.ExpectEquality(t, tv.VClock, 2)
	test.ExpectEquality(t, cpu.resumes, resumes+1)
}

func TestVSYNC(t *testing.T) {
	tv, _, f := newTestTIA(t)

	// no frame is started until VSYNC is turned off
	stepLines(tv, 10)
	test.ExpectFailure(t, tv.FrameInProgress())
	write(t, tv, tia.VSYNC, 0x02)
	test.ExpectEquality(t, len(f.received), 0)

	write(t, tv, tia.VSYNC, 0x00)
	test.ExpectSuccess(t, tv.FrameInProgress())
	test.ExpectEquality(t, tv.VClock, 0)
	test.ExpectEquality(t, tv.FrameNum, 1)

	stepLines(tv, 50)

	// turning VSYNC on finalises the frame and dispatches exactly one surface
	write(t, tv, tia.VSYNC, 0x02)
	test.ExpectFailure(t, tv.FrameInProgress())
	test.DemandEquality(t, len(f.received), 1)
	test.ExpectEquality(t, f.received[0], f.current)
	test.ExpectEquality(t, f.received[0].FrameNum, 1)

	// repeating the write does nothing
	write(t, tv, tia.VSYNC, 0x02)
	stepLines(tv, 3)
	test.ExpectFailure(t, tv.FrameInProgress())
	test.ExpectEquality(t, len(f.received), 1)

	// no pixels are written to the surface after it has been dispatched
	write(t, tv, tia.COLUBK, 0x1e)
	stepLines(tv, 50)
	test.ExpectEquality(t, f.received[0].Pixel(0, 0), specification.VideoBlack)

	// the next frame starts when VSYNC is turned off
	write(t, tv, tia.VSYNC, 0x00)
	test.ExpectSuccess(t, tv.FrameInProgress())
	test.ExpectEquality(t, tv.FrameNum, 2)
	test.ExpectEquality(t, len(f.received), 1)
}

func TestOverscan(t *testing.T) {
	tv, _, f := newTestTIA(t)
	startFrame(t, tv)

	stepLines(tv, specification.SpecNTSC.OverscanStart-1)
	test.ExpectSuccess(t, tv.FrameInProgress())
	test.ExpectEquality(t, len(f.received), 0)

	// reaching the start of the overscan finalises the frame without a VSYNC
	stepLines(tv, 1)
	test.ExpectFailure(t, tv.FrameInProgress())
	test.ExpectEquality(t, len(f.received), 1)

	// and VSYNC does not finalise it again
	write(t, tv, tia.VSYNC, 0x02)
	test.ExpectEquality(t, len(f.received), 1)
}

func TestNoSurfaceFactory(t *testing.T) {
	tv := tia.NewTIA(nil, &specification.SpecPAL)
	test.ExpectEquality(t, tv.Height(), 228)

	var received int
	tv.SetFrameHandler(func(_ *surface.Surface) {
		received++
	})

	startFrame(t, tv)
	stepLines(tv, specification.SpecPAL.OverscanStart)
	test.ExpectFailure(t, tv.FrameInProgress())
	test.ExpectEquality(t, received, 0)
}

func TestBackground(t *testing.T) {
	tv, _, f := newTestTIA(t)
	spec := specification.SpecNTSC

	write(t, tv, tia.COLUBK, 0x1f)
	startFrame(t, tv)
	stepLines(tv, spec.ScanlinesVBlank+1)

	test.ExpectEquality(t, f.current.Pixel(0, 0), spec.GetColor(0x1e))
	test.ExpectEquality(t, f.current.Pixel(159, 0), spec.GetColor(0x1e))
	test.ExpectEquality(t, f.current.Pixel(0, 1), specification.VideoBlack)

	// VBLANK blanks the output
	write(t, tv, tia.VBLANK, 0x02)
	stepLines(tv, 1)
	test.ExpectEquality(t, f.current.Pixel(0, 1), specification.VideoBlack)

	write(t, tv, tia.VBLANK, 0x00)
	stepLines(tv, 1)
	test.ExpectEquality(t, f.current.Pixel(0, 2), spec.GetColor(0x1e))
}

func TestHMOVE(t *testing.T) {
	tv, _, f := newTestTIA(t)
	spec := specification.SpecNTSC

	write(t, tv, tia.COLUBK, 0x1e)
	startFrame(t, tv)
	stepLines(tv, spec.ScanlinesVBlank)

	// HMOVE during the horizontal blank extends the blank by eight pixels
	write(t, tv, tia.HMM1, 0x70)
	write(t, tv, tia.HMOVE, 0x00)
	stepLines(tv, 1)

	for x := range 8 {
		test.ExpectEquality(t, f.current.Pixel(x, 0), specification.VideoBlack, x)
	}
	test.ExpectEquality(t, f.current.Pixel(8, 0), spec.GetColor(0x1e))

	// the extended blank lasts for one line only
	stepLines(tv, 1)
	test.ExpectEquality(t, f.current.Pixel(0, 1), spec.GetColor(0x1e))

	// missile 1 has moved seven pixels more to the left than missile 0.
	// the HMM1 register is independent of the HMM0 register
	m0 := tv.Video.Missile0.Position()
	m1 := tv.Video.Missile1.Position()
	test.ExpectEquality(t, (m1-m0+160)%160, 7)

	// HMCLR means no movement for any object
	write(t, tv, tia.HMCLR, 0x00)
	tv.Step()
	for tv.HClock != 0 {
		tv.Step()
	}
	write(t, tv, tia.HMOVE, 0x00)
	stepLines(tv, 1)
	test.ExpectEquality(t, tv.Video.Missile0.Position(), m0)
	test.ExpectEquality(t, tv.Video.Missile1.Position(), m1)
	test.ExpectEquality(t, tv.Video.Player0.Position(), m0)
}

func TestPositionRegisters(t *testing.T) {
	tv, _, _ := newTestTIA(t)

	write(t, tv, tia.RESP0, 0x00)
	test.ExpectEquality(t, tv.Video.Player0.Position(), 159)

	for tv.HClock < specification.HorizClksHBlank+10 {
		tv.Step()
	}
	write(t, tv, tia.RESP1, 0x00)
	test.ExpectEquality(t, tv.Video.Player1.Position(), 157)
}

func TestCollisionRegisters(t *testing.T) {
	tv, _, _ := newTestTIA(t)

	write(t, tv, tia.RESP0, 0x00)
	write(t, tv, tia.RESP1, 0x00)
	write(t, tv, tia.GRP0, 0xff)
	write(t, tv, tia.GRP1, 0xff)
	test.ExpectEquality(t, read(t, tv, tia.CXPPMM), uint8(0x00))

	stepLines(tv, 2)
	test.ExpectEquality(t, read(t, tv, tia.CXPPMM), uint8(0x80))
	test.ExpectEquality(t, read(t, tv, tia.CXP0FB), uint8(0x00))

	// read registers are mirrored every sixteen addresses
	test.ExpectEquality(t, read(t, tv, tia.CXPPMM|0x30), uint8(0x80))

	write(t, tv, tia.CXCLR, 0x00)
	test.ExpectEquality(t, read(t, tv, tia.CXPPMM), uint8(0x00))

	// collisions with the playfield
	write(t, tv, tia.PF0, 0xf0)
	write(t, tv, tia.PF1, 0xff)
	write(t, tv, tia.PF2, 0xff)
	stepLines(tv, 1)
	test.ExpectEquality(t, read(t, tv, tia.CXP0FB), uint8(0x80))
	test.ExpectEquality(t, read(t, tv, tia.CXP1FB), uint8(0x80))
}

func TestFireButtons(t *testing.T) {
	tv, _, _ := newTestTIA(t)

	// no buttons attached
	test.ExpectEquality(t, read(t, tv, tia.INPT4), uint8(0x80))

	buttons := &mockButtons{}
	tv.AttachFireButtons(buttons)

	buttons.fire[0] = true
	test.ExpectEquality(t, read(t, tv, tia.INPT4), uint8(0x00))
	test.ExpectEquality(t, read(t, tv, tia.INPT5), uint8(0x80))
	buttons.fire[0] = false
	test.ExpectEquality(t, read(t, tv, tia.INPT4), uint8(0x80))

	// in latch mode a button press is remembered
	write(t, tv, tia.VBLANK, 0x40)
	buttons.fire[1] = true
	test.ExpectEquality(t, read(t, tv, tia.INPT5), uint8(0x00))
	buttons.fire[1] = false
	test.ExpectEquality(t, read(t, tv, tia.INPT5), uint8(0x00))
	test.ExpectEquality(t, read(t, tv, tia.INPT4), uint8(0x80))

	// peeking does not set the latch
	buttons.fire[0] = true
	v, err := tv.Peek(tia.INPT4)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x00))
	buttons.fire[0] = false
	test.ExpectEquality(t, read(t, tv, tia.INPT4), uint8(0x80))

	// turning off latch mode clears the latches
	write(t, tv, tia.VBLANK, 0x00)
	test.ExpectEquality(t, read(t, tv, tia.INPT5), uint8(0x80))
}

func TestPaddleRegisters(t *testing.T) {
	tv, _, _ := newTestTIA(t)
	tv.Paddles[2].SetValue(tv.Clocks, 0.0)

	write(t, tv, tia.VBLANK, 0x80)
	stepLines(tv, 2)
	test.ExpectEquality(t, read(t, tv, tia.INPT2), uint8(0x00))

	write(t, tv, tia.VBLANK, 0x00)
	stepLines(tv, 2)
	test.ExpectEquality(t, read(t, tv, tia.INPT2), uint8(0x80))

	// the other paddles are in the centre position and take longer
	test.ExpectEquality(t, read(t, tv, tia.INPT0), uint8(0x00))
}

func TestAudioRegisters(t *testing.T) {
	tv, _, _ := newTestTIA(t)
	write(t, tv, tia.AUDC1, 0x04)
	write(t, tv, tia.AUDF1, 0x1f)
	write(t, tv, tia.AUDV1, 0x0f)
	test.ExpectEquality(t, tv.Audio.Channel1.Registers.Control, uint8(0x04))
	test.ExpectEquality(t, tv.Audio.Channel1.Registers.Frequency, uint8(0x1f))
	test.ExpectEquality(t, tv.Audio.Channel1.Registers.Volume, uint8(0x0f))
	test.ExpectEquality(t, tv.Audio.Channel0.Registers.Volume, uint8(0x00))
}

func TestUndefinedRegisters(t *testing.T) {
	tv, _, _ := newTestTIA(t)
	for a := uint16(0x2d); a <= 0x3f; a++ {
		test.ExpectSuccess(t, tv.Write(a, 0xff), a)
	}
	test.ExpectEquality(t, read(t, tv, 0x0e), uint8(0x00))
}

func TestReset(t *testing.T) {
	tv, cpu, _ := newTestTIA(t)
	startFrame(t, tv)
	stepLines(tv, 5)
	write(t, tv, tia.WSYNC, 0x00)
	test.DemandSuccess(t, cpu.halted)

	tv.Reset()
	test.ExpectFailure(t, cpu.halted)
	test.ExpectFailure(t, tv.FrameInProgress())
	test.ExpectEquality(t, tv.HClock, 0)
	test.ExpectEquality(t, tv.VClock, 0)

	c := tv.GetCoords()
	test.ExpectEquality(t, c.Frame, 0)
	test.ExpectEquality(t, c.Scanline, 0)
}
