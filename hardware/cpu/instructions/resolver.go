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

package instructions

import (
	"github.com/nojan1/6502.ts/curated"
)

// Sentinel error patterns.
const (
	DuplicateDefinition = "instructions: entry for opcode %#02x already exists"
)

// Variant of the 6502 family.
type Variant int

// List of supported variants.
const (
	NMOS6502 Variant = iota
	CMOS65C02
)

func (v Variant) String() string {
	switch v {
	case NMOS6502:
		return "6502"
	case CMOS65C02:
		return "65C02"
	}
	return "unknown variant"
}

// VariantFromString returns the Variant named by s. The second return value
// is false if the name is not recognised.
func VariantFromString(s string) (Variant, bool) {
	switch s {
	case "6502", "6507", "NMOS":
		return NMOS6502, true
	case "65C02", "65c02", "CMOS":
		return CMOS65C02, true
	}
	return NMOS6502, false
}

// Resolver maps opcodes to instructions. The table is populated by
// NewResolver() and does not change afterwards.
type Resolver struct {
	variant Variant
	table   [256]Instruction
}

// NewResolver is the preferred method of initialisation for the Resolver type.
func NewResolver(variant Variant) (*Resolver, error) {
	r := &Resolver{variant: variant}

	if err := r.populate(); err != nil {
		return nil, err
	}

	if variant == CMOS65C02 {
		for _, o := range overrides65C02 {
			if err := r.Set(o.opcode, o.operation, o.mode, o.mode, true); err != nil {
				return nil, err
			}
		}
	}

	return r, nil
}

// Variant returns the CPU variant the table was built for.
func (r *Resolver) Variant() Variant {
	return r.variant
}

// Resolve returns the Instruction for the opcode. Undefined opcodes resolve
// to an Instruction with the Invalid addressing mode.
func (r *Resolver) Resolve(opcode uint8) Instruction {
	return r.table[opcode]
}

// Set the instruction for an opcode. An existing definition will not be
// replaced unless override is true.
//
// The effective addressing mode can be Invalid, in which case the nominal
// addressing mode is used for operand access.
func (r *Resolver) Set(opcode uint8, operation Operation, mode AddressingMode, effective AddressingMode, override bool) error {
	if r.table[opcode].Operation != Undefined && !override {
		return curated.Errorf(DuplicateDefinition, opcode)
	}

	r.table[opcode] = Instruction{
		Operation:               operation,
		AddressingMode:          mode,
		EffectiveAddressingMode: effective,
	}

	return nil
}

// set is a shortcut for the most common form of the Set() function.
func (r *Resolver) set(opcode uint8, operation Operation, mode AddressingMode) error {
	return r.Set(opcode, operation, mode, Invalid, false)
}

type entry struct {
	opcode    uint8
	operation Operation
	mode      AddressingMode
}

// the eight operations that share the same eight addressing modes. the
// opcode is formed from the index of the operation and the index of the
// addressing mode: (op << 5) | (mode << 2) | 1
var groupOneOperations = [8]Operation{ORA, AND, EOR, ADC, STA, LDA, CMP, SBC}

var groupOneModes = [8]AddressingMode{
	IndexedIndirectX, ZeroPage, Immediate, Absolute,
	IndirectIndexedY, ZeroPageX, AbsoluteY, AbsoluteX,
}

func (r *Resolver) populate() error {
	for i, op := range groupOneOperations {
		for j, mode := range groupOneModes {
			// there is no STA immediate
			if op == STA && mode == Immediate {
				continue
			}
			opcode := uint8(i<<5) | uint8(j<<2) | 1
			if err := r.set(opcode, op, mode); err != nil {
				return err
			}
		}
	}

	for _, e := range baseTable {
		if err := r.set(e.opcode, e.operation, e.mode); err != nil {
			return err
		}
	}

	// JSR is decoded as an implied instruction but reads its operand as an
	// absolute address
	return r.Set(0x20, JSR, Implied, Absolute, false)
}

var baseTable = []entry{
	{0x06, ASL, ZeroPage},
	{0x0a, ASL, Implied},
	{0x0e, ASL, Absolute},
	{0x16, ASL, ZeroPageX},
	{0x1e, ASL, AbsoluteX},

	{0x26, ROL, ZeroPage},
	{0x2a, ROL, Implied},
	{0x2e, ROL, Absolute},
	{0x36, ROL, ZeroPageX},
	{0x3e, ROL, AbsoluteX},

	{0x46, LSR, ZeroPage},
	{0x4a, LSR, Implied},
	{0x4e, LSR, Absolute},
	{0x56, LSR, ZeroPageX},
	{0x5e, LSR, AbsoluteX},

	{0x66, ROR, ZeroPage},
	{0x6a, ROR, Implied},
	{0x6e, ROR, Absolute},
	{0x76, ROR, ZeroPageX},
	{0x7e, ROR, AbsoluteX},

	{0x86, STX, ZeroPage},
	{0x8e, STX, Absolute},
	{0x96, STX, ZeroPageY},

	{0xa2, LDX, Immediate},
	{0xa6, LDX, ZeroPage},
	{0xae, LDX, Absolute},
	{0xb6, LDX, ZeroPageY},
	{0xbe, LDX, AbsoluteY},

	{0xc6, DEC, ZeroPage},
	{0xce, DEC, Absolute},
	{0xd6, DEC, ZeroPageX},
	{0xde, DEC, AbsoluteX},

	{0xe6, INC, ZeroPage},
	{0xee, INC, Absolute},
	{0xf6, INC, ZeroPageX},
	{0xfe, INC, AbsoluteX},

	{0x24, BIT, ZeroPage},
	{0x2c, BIT, Absolute},

	{0x4c, JMP, Absolute},
	{0x6c, JMP, Indirect},

	{0x84, STY, ZeroPage},
	{0x8c, STY, Absolute},
	{0x94, STY, ZeroPageX},

	{0xa0, LDY, Immediate},
	{0xa4, LDY, ZeroPage},
	{0xac, LDY, Absolute},
	{0xb4, LDY, ZeroPageX},
	{0xbc, LDY, AbsoluteX},

	{0xc0, CPY, Immediate},
	{0xc4, CPY, ZeroPage},
	{0xcc, CPY, Absolute},

	{0xe0, CPX, Immediate},
	{0xe4, CPX, ZeroPage},
	{0xec, CPX, Absolute},

	{0x10, BPL, Relative},
	{0x30, BMI, Relative},
	{0x50, BVC, Relative},
	{0x70, BVS, Relative},
	{0x90, BCC, Relative},
	{0xb0, BCS, Relative},
	{0xd0, BNE, Relative},
	{0xf0, BEQ, Relative},

	{0x00, BRK, Implied},
	{0x40, RTI, Implied},
	{0x60, RTS, Implied},
	{0x08, PHP, Implied},
	{0x28, PLP, Implied},
	{0x48, PHA, Implied},
	{0x68, PLA, Implied},
	{0x88, DEY, Implied},
	{0xa8, TAY, Implied},
	{0xc8, INY, Implied},
	{0xe8, INX, Implied},
	{0x18, CLC, Implied},
	{0x38, SEC, Implied},
	{0x58, CLI, Implied},
	{0x78, SEI, Implied},
	{0x98, TYA, Implied},
	{0xb8, CLV, Implied},
	{0xd8, CLD, Implied},
	{0xf8, SED, Implied},
	{0x8a, TXA, Implied},
	{0x9a, TXS, Implied},
	{0xaa, TAX, Implied},
	{0xba, TSX, Implied},
	{0xca, DEX, Implied},
	{0xea, NOP, Implied},

	// undocumented opcodes
	{0x1a, NOP, Implied},
	{0x3a, NOP, Implied},
	{0x5a, NOP, Implied},
	{0x7a, NOP, Implied},
	{0xda, NOP, Implied},
	{0xfa, NOP, Implied},

	{0x04, DOP, ZeroPage},
	{0x14, DOP, ZeroPageX},
	{0x34, DOP, ZeroPageX},
	{0x44, DOP, ZeroPage},
	{0x54, DOP, ZeroPageX},
	{0x64, DOP, ZeroPage},
	{0x74, DOP, ZeroPageX},
	{0x80, DOP, Immediate},
	{0x82, DOP, Immediate},
	{0x89, DOP, Immediate},
	{0xc2, DOP, Immediate},
	{0xd4, DOP, ZeroPageX},
	{0xe2, DOP, Immediate},
	{0xf4, DOP, ZeroPageX},

	{0x0c, TOP, Absolute},
	{0x1c, TOP, AbsoluteX},
	{0x3c, TOP, AbsoluteX},
	{0x5c, TOP, AbsoluteX},
	{0x7c, TOP, AbsoluteX},
	{0xdc, TOP, AbsoluteX},
	{0xfc, TOP, AbsoluteX},

	{0xeb, SBC, Immediate},

	{0x4b, ALR, Immediate},

	{0xcb, AXS, Immediate},

	{0xc7, DCP, ZeroPage},
	{0xd7, DCP, ZeroPageX},
	{0xcf, DCP, Absolute},
	{0xdf, DCP, AbsoluteX},
	{0xdb, DCP, AbsoluteY},
	{0xc3, DCP, IndexedIndirectX},
	{0xd3, DCP, IndirectIndexedY},

	{0xa7, LAX, ZeroPage},
	{0xb7, LAX, ZeroPageY},
	{0xaf, LAX, Absolute},
	{0xbf, LAX, AbsoluteY},
	{0xa3, LAX, IndexedIndirectX},
	{0xb3, LAX, IndirectIndexedY},

	{0x6b, ARR, Immediate},

	{0x07, SLO, ZeroPage},
	{0x17, SLO, ZeroPageX},
	{0x0f, SLO, Absolute},
	{0x1f, SLO, AbsoluteX},
	{0x1b, SLO, AbsoluteY},
	{0x03, SLO, IndexedIndirectX},
	{0x13, SLO, IndirectIndexedY},

	{0x87, AAX, ZeroPage},
	{0x97, AAX, ZeroPageY},
	{0x83, AAX, IndexedIndirectX},
	{0x8f, AAX, Absolute},

	{0xbb, LAR, AbsoluteY},

	{0xe7, ISC, ZeroPage},
	{0xf7, ISC, ZeroPageX},
	{0xef, ISC, Absolute},
	{0xff, ISC, AbsoluteX},
	{0xfb, ISC, AbsoluteY},
	{0xe3, ISC, IndexedIndirectX},
	{0xf3, ISC, IndirectIndexedY},

	{0x0b, AAC, Immediate},
	{0x2b, AAC, Immediate},

	{0xab, ATX, Immediate},

	{0x67, RRA, ZeroPage},
	{0x77, RRA, ZeroPageX},
	{0x6f, RRA, Absolute},
	{0x7f, RRA, AbsoluteX},
	{0x7b, RRA, AbsoluteY},
	{0x63, RRA, IndexedIndirectX},
	{0x73, RRA, IndirectIndexedY},

	{0x27, RLA, ZeroPage},
	{0x37, RLA, ZeroPageX},
	{0x2f, RLA, Absolute},
	{0x3f, RLA, AbsoluteX},
	{0x3b, RLA, AbsoluteY},
	{0x23, RLA, IndexedIndirectX},
	{0x33, RLA, IndirectIndexedY},
}

// opcodes redefined by the 65C02. these are consulted after the base table
// has been built and replace the existing definitions.
var overrides65C02 = []entry{
	{0xda, PHX, Implied},
	{0x5a, PHY, Implied},
	{0xfa, PLX, Implied},
	{0x7a, PLY, Implied},

	// the pointer for this JMP is a full 16bit address, indexed by X
	{0x7c, JMP, IndexedIndirectX},
}
