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

import "strings"

// Operation is the function performed by an instruction.
type Operation int

// List of operations. The undocumented NMOS operations follow the documented
// set and are named as they are in the "NMOS 6510 Unintended Opcodes"
// document. The 65C02 additions are last.
const (
	Undefined Operation = iota // opcodes without a definition
	ADC
	AND
	ASL
	BCC
	BCS
	BEQ
	BIT
	BMI
	BNE
	BPL
	BRK
	BVC
	BVS
	CLC
	CLD
	CLI
	CLV
	CMP
	CPX
	CPY
	DEC
	DEX
	DEY
	EOR
	INC
	INX
	INY
	JMP
	JSR
	LDA
	LDX
	LDY
	LSR
	NOP
	ORA
	PHA
	PHP
	PLA
	PLP
	ROL
	ROR
	RTI
	RTS
	SBC
	SEC
	SED
	SEI
	STA
	STX
	STY
	TAX
	TAY
	TSX
	TXA
	TXS
	TYA

	// undocumented
	DOP
	TOP
	ALR
	AXS
	DCP
	LAX
	ARR
	SLO
	AAX
	LAR
	ISC
	AAC
	ATX
	RRA
	RLA

	// 65C02
	PHX
	PHY
	PLX
	PLY
)

var mnemonics = [...]string{
	"???",
	"ADC", "AND", "ASL", "BCC", "BCS", "BEQ", "BIT", "BMI", "BNE", "BPL",
	"BRK", "BVC", "BVS", "CLC", "CLD", "CLI", "CLV", "CMP", "CPX", "CPY",
	"DEC", "DEX", "DEY", "EOR", "INC", "INX", "INY", "JMP", "JSR", "LDA",
	"LDX", "LDY", "LSR", "NOP", "ORA", "PHA", "PHP", "PLA", "PLP", "ROL",
	"ROR", "RTI", "RTS", "SBC", "SEC", "SED", "SEI", "STA", "STX", "STY",
	"TAX", "TAY", "TSX", "TXA", "TXS", "TYA",
	"DOP", "TOP", "ALR", "AXS", "DCP", "LAX", "ARR", "SLO", "AAX", "LAR",
	"ISC", "AAC", "ATX", "RRA", "RLA",
	"PHX", "PHY", "PLX", "PLY",
}

func (op Operation) String() string {
	if op < 0 || int(op) >= len(mnemonics) {
		return "???"
	}
	return mnemonics[op]
}

// OperationFromMnemonic is the inverse of Operation.String(). The search is
// not case sensitive.
func OperationFromMnemonic(s string) (Operation, bool) {
	s = strings.ToUpper(s)
	for i := 1; i < len(mnemonics); i++ {
		if mnemonics[i] == s {
			return Operation(i), true
		}
	}
	return Undefined, false
}

// EffectCategory categorises an operation by the effect it has on memory.
type EffectCategory int

// List of effect categories.
const (
	Read EffectCategory = iota
	Write
	RMW

	// flow consists of the branch and JMP instructions. branch instructions
	// are distinguished by the Relative addressing mode
	Flow

	Subroutine
	Interrupt

	// stack operations push or pull a single register
	Push
	Pull
)

func (e EffectCategory) String() string {
	switch e {
	case Read:
		return "Read"
	case Write:
		return "Write"
	case RMW:
		return "RMW"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case Interrupt:
		return "Interrupt"
	case Push:
		return "Push"
	case Pull:
		return "Pull"
	}
	return "unknown effect"
}

// Effect returns the effect category of the operation.
func (op Operation) Effect() EffectCategory {
	switch op {
	case STA, STX, STY, AAX:
		return Write
	case ASL, LSR, ROL, ROR, INC, DEC, DCP, ISC, SLO, RLA, RRA:
		return RMW
	case BCC, BCS, BEQ, BMI, BNE, BPL, BVC, BVS, JMP:
		return Flow
	case JSR, RTS:
		return Subroutine
	case BRK, RTI:
		return Interrupt
	case PHA, PHP, PHX, PHY:
		return Push
	case PLA, PLP, PLX, PLY:
		return Pull
	}
	return Read
}
