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
	"github.com/nojan1/6502.ts/environment"
	"github.com/nojan1/6502.ts/hardware/cpu"
	"github.com/nojan1/6502.ts/hardware/memory"
	"github.com/nojan1/6502.ts/hardware/memory/cartridge"
	"github.com/nojan1/6502.ts/hardware/riot"
	"github.com/nojan1/6502.ts/hardware/television/specification"
	"github.com/nojan1/6502.ts/hardware/tia"
	"github.com/nojan1/6502.ts/logger"
	"github.com/nojan1/6502.ts/trap"
)

// TrapHandler is called whenever the hardware raises a trap.
type TrapHandler func(trap.Trap)

// VCS struct is the main container for the emulated components of the VCS.
type VCS struct {
	Env *environment.Environment

	CPU  *cpu.CPU
	Mem  *memory.Memory
	TIA  *tia.TIA
	RIOT *riot.RIOT

	trapHandlers []TrapHandler
}

// NewVCS creates a new VCS and everything associated with the hardware. It is
// used for all aspects of emulation: debugging sessions, and regular play.
//
// The env argument can be nil, in which case a new environment is created.
// If the spec argument is nil then the TV specification is taken from the
// environment's preferences.
func NewVCS(env *environment.Environment, spec *specification.Spec) (*VCS, error) {
	var err error

	if env == nil {
		env, err = environment.NewEnvironment(nil, nil)
		if err != nil {
			return nil, curated.Errorf("vcs: %v", err)
		}
	}

	if spec == nil {
		spec, err = specification.SearchSpec(env.Prefs.TVSpec.String())
		if err != nil {
			return nil, curated.Errorf("vcs: %v", err)
		}
	}

	vcs := &VCS{Env: env}

	vcs.TIA = tia.NewTIA(env, spec)
	vcs.RIOT = riot.NewRIOT(env)
	vcs.Mem = memory.NewMemory(env, vcs.TIA, vcs.RIOT)

	vcs.CPU, err = cpu.NewCPU(env, vcs.Mem)
	if err != nil {
		return nil, curated.Errorf("vcs: %v", err)
	}

	vcs.TIA.SetCPU(vcs.CPU)
	vcs.TIA.AttachFireButtons(vcs.RIOT.Ports)
	env.Random.AttachTV(vcs.TIA)

	vcs.Reset()

	return vcs, nil
}

// AttachCartridge inserts the cartridge and resets the VCS. A nil cartridge
// ejects the current cartridge.
func (vcs *VCS) AttachCartridge(cart *cartridge.Cartridge) {
	vcs.Mem.AttachCartridge(cart)
	logger.Logf(vcs.Env, "vcs", "attached cartridge: %s", vcs.Mem.Cart)
	vcs.Reset()
}

// Reset emulates the reset switch on the console panel. All chips are
// returned to their power-on state and the CPU begins the reset sequence.
func (vcs *VCS) Reset() {
	vcs.Mem.Reset()
	vcs.RIOT.Reset()
	vcs.TIA.Reset()
	vcs.CPU.Reset()
}

// AddTrapHandler registers a function that is called whenever a trap is
// raised. Handlers are called in the order they were added.
func (vcs *VCS) AddTrapHandler(handler TrapHandler) {
	vcs.trapHandlers = append(vcs.trapHandlers, handler)
}

// handleError dispatches the error to the trap handlers if it is a trap. The
// error is returned unchanged.
func (vcs *VCS) handleError(err error) error {
	if err == nil {
		return nil
	}
	if t, ok := trap.As(err); ok {
		logger.Log(vcs.Env, "trap", t.Error())
		for _, h := range vcs.trapHandlers {
			h(t)
		}
	}
	return err
}

// clockChips defines the order of operation for the rest of the VCS for every
// CPU cycle. Three colour clocks per CPU cycle so the TIA is stepped three
// times.
func (vcs *VCS) clockChips() {
	vcs.TIA.Step()
	vcs.TIA.Step()
	vcs.TIA.Step()
	vcs.RIOT.Step()
}

// Cycle the emulation by exactly one CPU cycle. The TIA and RIOT are clocked
// even if the CPU is halted or has raised a trap.
func (vcs *VCS) Cycle() error {
	err := vcs.CPU.Cycle()
	vcs.clockChips()
	return vcs.handleError(err)
}

// Step the emulation by one CPU instruction. If the CPU is halted by WSYNC
// then the instruction completes when the CPU has been resumed.
func (vcs *VCS) Step() error {
	err := vcs.CPU.ExecuteInstruction(func() error {
		vcs.clockChips()
		return nil
	})
	if err != nil {
		// the cycle that raised the error has not yet clocked the chips
		vcs.clockChips()
	}
	return vcs.handleError(err)
}
