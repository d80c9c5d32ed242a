// This file is part of vc64.
//
// vc64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// vc64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with vc64.  If not, see <https://www.gnu.org/licenses/>.

package cpu_test

import (
	"testing"

	"github.com/valerino/vc64-emu-sub000/hardware/cpu"
	"github.com/valerino/vc64-emu-sub000/hardware/memory/cpubus"
	"github.com/valerino/vc64-emu-sub000/test"
)

// the address the reset vector points to in all tests
const origin = uint16(0x0200)

// the address the IRQ/BRK vector points to in all tests
const irqHandler = uint16(0x0300)

// the address the NMI vector points to in all tests
const nmiHandler = uint16(0x0400)

type mockMem struct {
	internal []uint8

	// number of times Reset() has been called
	resets int
}

func newMockMem() *mockMem {
	mem := &mockMem{
		internal: make([]uint8, 0x10000),
	}
	mem.clear()
	return mem
}

// clear zeroes memory and installs the test vectors.
func (mem *mockMem) clear() {
	clear(mem.internal)
	mem.putWord(cpubus.Reset, origin)
	mem.putWord(cpubus.IRQ, irqHandler)
	mem.putWord(cpubus.NMI, nmiHandler)
}

func (mem *mockMem) putWord(address uint16, v uint16) {
	mem.internal[address] = uint8(v)
	mem.internal[address+1] = uint8(v >> 8)
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.Write(uint16(i)+origin, b)
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	test.ExpectEquality(t, mem.internal[address], value, "memory assertion", address)
}

func (mem *mockMem) Read(address uint16) uint8 {
	return mem.internal[address]
}

func (mem *mockMem) Write(address uint16, data uint8) {
	mem.internal[address] = data
}

func (mem *mockMem) Reset() {
	mem.resets++
}

// newTestCPU returns a CPU that has been reset and is ready to execute from
// the origin address.
func newTestCPU(t *testing.T) (*cpu.CPU, *mockMem) {
	t.Helper()
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	test.DemandSuccess(t, mc.Reset(false))
	return mc, mem
}

// step executes one instruction, failing the test on any error, and returns
// the number of cycles.
func step(t *testing.T, mc *cpu.CPU) int {
	t.Helper()
	cycles, err := mc.Step(false, false)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, mc.LastResult.IsValid())
	return cycles
}
