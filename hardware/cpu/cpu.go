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

package cpu

import (
	"fmt"
	"strings"

	"github.com/nojan1/6502.ts/environment"
	"github.com/nojan1/6502.ts/hardware/cpu/execution"
	"github.com/nojan1/6502.ts/hardware/cpu/instructions"
	"github.com/nojan1/6502.ts/hardware/cpu/registers"
	"github.com/nojan1/6502.ts/hardware/memory/addresses"
	"github.com/nojan1/6502.ts/hardware/memory/bus"
	"github.com/nojan1/6502.ts/logger"
	"github.com/nojan1/6502.ts/trap"
)

// InvalidOpcode is the message pattern of the trap returned when an opcode
// without a definition is fetched.
const InvalidOpcode = "invalid opcode %#02x at %#04x"

// CPU implements the 6502 microprocessor.
type CPU struct {
	env *environment.Environment

	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.Register
	Status registers.Status

	// number of cycles executed since the last reset. cycles are not
	// counted while the CPU is halted
	Cycles uint64

	// the result of the current instruction. check the Final field to see if
	// the instruction has completed
	LastResult execution.Result

	mem      bus.Memory
	resolver *instructions.Resolver

	// the state of the current instruction
	sm machine

	halted bool

	// nmi is edge triggered and is latched until serviced. irq is level
	// triggered and is serviced at every instruction boundary while the
	// line is held and interrupts are enabled
	nmi bool
	irq bool

	// the first bus error encountered during the current cycle
	err error
}

// NewCPU is the preferred method of initialisation for the CPU structure.
// The CPU variant is taken from the environment's preferences. The
// environment can be nil, in which case an NMOS 6502 is created.
func NewCPU(env *environment.Environment, mem bus.Memory) (*CPU, error) {
	variant := instructions.NMOS6502
	if env != nil && env.Prefs != nil {
		if v, ok := instructions.VariantFromString(env.Prefs.CPUVariant.String()); ok {
			variant = v
		}
	}
	return NewCPUVariant(env, mem, variant)
}

// NewCPUVariant creates a CPU of the specified variant.
func NewCPUVariant(env *environment.Environment, mem bus.Memory, variant instructions.Variant) (*CPU, error) {
	resolver, err := instructions.NewResolver(variant)
	if err != nil {
		return nil, err
	}

	mc := &CPU{
		env:      env,
		mem:      mem,
		resolver: resolver,
		A:        registers.NewRegister(0, "A"),
		X:        registers.NewRegister(0, "X"),
		Y:        registers.NewRegister(0, "Y"),
		SP:       registers.NewRegister(0, "SP"),
	}
	mc.Status.Reset()
	mc.LastResult.Final = true

	return mc, nil
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC,
		mc.A.Label(), mc.A,
		mc.X.Label(), mc.X,
		mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP,
		mc.Status.Label(), mc.Status,
	)
}

// Variant returns the CPU variant being emulated.
func (mc *CPU) Variant() instructions.Variant {
	return mc.resolver.Variant()
}

// Resolver returns the instruction table used by the CPU.
func (mc *CPU) Resolver() *instructions.Resolver {
	return mc.resolver
}

// Reset reinitialises the registers and queues the reset sequence. The
// reset sequence takes seven cycles and ends with the PC loaded from the
// reset vector.
func (mc *CPU) Reset() {
	mc.Cycles = 0
	mc.halted = false
	mc.nmi = false
	mc.irq = false

	if mc.env != nil && mc.env.Prefs != nil && mc.env.Prefs.RandomState.Get().(bool) {
		mc.PC.Load(uint16(mc.env.Random.Intn(0x10000)))
		mc.A.Load(mc.env.Random.Uint8())
		mc.X.Load(mc.env.Random.Uint8())
		mc.Y.Load(mc.env.Random.Uint8())
		mc.SP.Load(mc.env.Random.Uint8())
	} else {
		mc.PC.Load(0)
		mc.A.Load(0)
		mc.X.Load(0)
		mc.Y.Load(0)
		mc.SP.Load(0)
	}

	mc.Status.Reset()

	mc.sm = machine{phase: phaseSequence, interrupt: execution.Reset}
	mc.LastResult = execution.Result{Address: mc.PC.Address(), Interrupt: execution.Reset}

	logger.Logf(mc.env, "cpu", "reset (%s)", mc.Variant())
}

// LoadPC loads the PC directly and abandons the current instruction. The
// next cycle will be an opcode fetch.
func (mc *CPU) LoadPC(address uint16) {
	mc.PC.Load(address)
	mc.sm = machine{}
	mc.LastResult = execution.Result{Address: address, Final: true}
}

// Halt requests that the CPU stop issuing cycles. The current cycle is
// always completed.
func (mc *CPU) Halt() {
	mc.halted = true
}

// Resume clears the halt request.
func (mc *CPU) Resume() {
	mc.halted = false
}

// IsHalted returns true if the CPU has been halted.
func (mc *CPU) IsHalted() bool {
	return mc.halted
}

// NMI signals a non-maskable interrupt. The interrupt is serviced at the next
// instruction boundary.
func (mc *CPU) NMI() {
	mc.nmi = true
}

// SetIRQ sets the state of the IRQ line. The interrupt is serviced at every
// instruction boundary while the line is asserted and the interrupt disable
// flag is clear.
func (mc *CPU) SetIRQ(asserted bool) {
	mc.irq = asserted
}

// InstructionBoundary returns true if the next cycle will begin a new
// instruction or interrupt sequence.
func (mc *CPU) InstructionBoundary() bool {
	return mc.sm.phase == phaseFetch
}

// Cycle performs exactly one bus cycle. If the CPU is halted the function
// returns immediately.
//
// A trap is returned if the fetched opcode has no definition. Errors from the
// memory bus are also returned, after the cycle has been completed.
func (mc *CPU) Cycle() error {
	if mc.halted {
		return nil
	}

	mc.err = nil
	mc.Cycles++

	switch mc.sm.phase {
	case phaseFetch:
		return mc.fetch()
	case phaseAddress:
		mc.LastResult.Cycles++
		mc.addressing()
	case phaseAccess:
		mc.LastResult.Cycles++
		mc.access()
	case phaseSequence:
		mc.LastResult.Cycles++
		mc.sequence()
	}

	return mc.err
}

// ExecuteInstruction runs cycles until the current instruction has completed.
// The cycleCallback function is called after every cycle, including cycles
// where the CPU is halted; it must eventually resume a halted CPU.
func (mc *CPU) ExecuteInstruction(cycleCallback func() error) error {
	started := false
	for {
		if !mc.halted {
			started = true
		}
		if err := mc.Cycle(); err != nil {
			return err
		}
		if cycleCallback != nil {
			if err := cycleCallback(); err != nil {
				return err
			}
		}
		if started && mc.InstructionBoundary() && !mc.halted {
			return nil
		}
	}
}

func (mc *CPU) fetch() error {
	if mc.nmi || (mc.irq && !mc.Status.InterruptDisable) {
		kind := execution.IRQ
		if mc.nmi {
			kind = execution.NMI
			mc.nmi = false
		}
		mc.sm = machine{phase: phaseSequence, interrupt: kind}
		mc.LastResult = execution.Result{Address: mc.PC.Address(), Interrupt: kind, Cycles: 1}
		mc.sequence()
		return mc.err
	}

	address := mc.PC.Address()
	opcode := mc.read(address)
	mc.PC.Increment()

	defn := mc.resolver.Resolve(opcode)

	mc.LastResult = execution.Result{
		Address:   address,
		Opcode:    opcode,
		Defn:      defn,
		ByteCount: 1,
		Cycles:    1,
	}

	if !defn.IsValid() {
		mc.LastResult.Final = true
		mc.sm = machine{}
		return trap.New(trap.CPU, trap.InvalidOpcode, address, InvalidOpcode, opcode, address)
	}

	mc.compile(defn)

	return mc.err
}

// read a value from the bus. the first error of the cycle is retained.
func (mc *CPU) read(address uint16) uint8 {
	v, err := mc.mem.Read(address)
	if err != nil && mc.err == nil {
		mc.err = err
	}
	return v
}

// write a value to the bus. the first error of the cycle is retained.
func (mc *CPU) write(address uint16, value uint8) {
	if err := mc.mem.Write(address, value); err != nil && mc.err == nil {
		mc.err = err
	}
}

// readPC reads the byte at the PC as part of the instruction and advances the
// PC.
func (mc *CPU) readPC() uint8 {
	v := mc.read(mc.PC.Address())
	mc.PC.Increment()

	mc.LastResult.ByteCount++
	switch mc.LastResult.ByteCount {
	case 2:
		mc.LastResult.InstructionData = uint16(v)
	case 3:
		mc.LastResult.InstructionData |= uint16(v) << 8
	}

	return v
}

// push value onto the stack. the stack pointer wraps around.
func (mc *CPU) push(value uint8) {
	mc.write(0x0100|mc.SP.Address(), value)
	mc.SP.Load(mc.SP.Value() - 1)
}

// the address of the top of the stack.
func (mc *CPU) stack() uint16 {
	return 0x0100 | mc.SP.Address()
}

func (mc *CPU) vector(kind execution.Interrupt) uint16 {
	switch kind {
	case execution.NMI:
		return addresses.NMI
	case execution.Reset:
		return addresses.Reset
	}
	return addresses.IRQ
}

// Disassemble returns a simple description of the most recent instruction.
func (mc *CPU) Disassemble() string {
	r := mc.LastResult
	if r.Interrupt != execution.NoInterrupt {
		return r.String()
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%04x %s", r.Address, r.Defn.Operation))
	switch r.ByteCount {
	case 2:
		s.WriteString(fmt.Sprintf(" $%02x", r.InstructionData))
	case 3:
		s.WriteString(fmt.Sprintf(" $%04x", r.InstructionData))
	}
	return s.String()
}
