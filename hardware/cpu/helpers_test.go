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

package cpu_test

import (
	"fmt"
	"strings"

	"github.com/nojan1/6502.ts/hardware/cpu"
	"github.com/nojan1/6502.ts/hardware/cpu/instructions"
)

type access struct {
	address uint16
	data    uint8
	write   bool
}

func (a access) String() string {
	if a.write {
		return fmt.Sprintf("W%04x=%02x", a.address, a.data)
	}
	return fmt.Sprintf("R%04x=%02x", a.address, a.data)
}

// mockMem is a flat 64k address space that records every access.
type mockMem struct {
	data [0x10000]uint8
	log  []access

	// writes to addresses at or above readOnly fail
	readOnly uint32
}

func newMockMem() *mockMem {
	return &mockMem{readOnly: 0x10000}
}

func (mem *mockMem) Read(address uint16) (uint8, error) {
	v := mem.data[address]
	mem.log = append(mem.log, access{address: address, data: v})
	return v, nil
}

func (mem *mockMem) Write(address uint16, data uint8) error {
	mem.log = append(mem.log, access{address: address, data: data, write: true})
	if uint32(address) >= mem.readOnly {
		return fmt.Errorf("read only address %#04x", address)
	}
	mem.data[address] = data
	return nil
}

// put bytes into memory at the origin.
func (mem *mockMem) put(origin uint16, data ...uint8) {
	for i, d := range data {
		mem.data[origin+uint16(i)] = d
	}
}

func (mem *mockMem) clearLog() {
	mem.log = mem.log[:0]
}

func (mem *mockMem) String() string {
	s := strings.Builder{}
	for _, a := range mem.log {
		s.WriteString(a.String())
		s.WriteString(" ")
	}
	return strings.TrimSpace(s.String())
}

// newTestCPU creates a CPU with the program counter at origin. the CPU is at
// an instruction boundary.
func newTestCPU(variant instructions.Variant, origin uint16) (*cpu.CPU, *mockMem, error) {
	mem := newMockMem()
	mc, err := cpu.NewCPUVariant(nil, mem, variant)
	if err != nil {
		return nil, nil, err
	}
	mc.LoadPC(origin)
	mc.SP.Load(0xff)
	return mc, mem, nil
}
