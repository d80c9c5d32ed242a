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

package cpu

import (
	"fmt"

	"github.com/valerino/vc64-emu-sub000/curated"
	"github.com/valerino/vc64-emu-sub000/hardware/cpu/execution"
	"github.com/valerino/vc64-emu-sub000/hardware/cpu/instructions"
	"github.com/valerino/vc64-emu-sub000/hardware/cpu/registers"
	"github.com/valerino/vc64-emu-sub000/hardware/memory"
	"github.com/valerino/vc64-emu-sub000/hardware/memory/cpubus"
	"github.com/valerino/vc64-emu-sub000/logger"
)

// CPU implements the 6510 as found in the Commodore 64. Register logic is
// implemented by the Register type in the registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	mem          cpubus.Memory
	instructions []*instructions.Definition

	// the hook is consulted before every instruction when Step() is called
	// with the debug flag set
	hook Hook

	// last result. the address field is guaranteed to be always valid except
	// when the CPU has just been reset
	LastResult execution.Result

	// number of cycles since the last reset
	Cycles uint64

	// the cpu has encounted a JAM instruction. requires a Reset()
	Killed bool

	// the program used by Reset(true)
	SelfTest SelfTest

	// the stall detector is armed while a self-test is running
	selfTestRunning bool
}

// NewCPU is the preferred method of initialisation for the CPU structure.
// The registers are zeroed. Call Reset() before stepping.
func NewCPU(mem cpubus.Memory) *CPU {
	return &CPU{
		mem:          mem,
		PC:           registers.NewProgramCounter(0),
		A:            registers.NewRegister(0, "A"),
		X:            registers.NewRegister(0, "X"),
		Y:            registers.NewRegister(0, "Y"),
		SP:           registers.NewStackPointer(0),
		Status:       registers.NewStatusRegister(),
		instructions: instructions.GetDefinitions(),
	}
}

// Snapshot creates a copy of the CPU in its current state. The copy is
// detached from memory and from any hook and so can not be stepped.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	n.mem = nil
	n.hook = nil
	n.instructions = nil
	return &n
}

// Plumb a new memory implementation into the CPU. All subsequent reads and
// writes go through it.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

// AttachHook sets the Hook consulted by Step(). A nil value removes the hook.
func (mc *CPU) AttachHook(hook Hook) {
	mc.hook = hook
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// Reset the CPU and the plumbed memory. Registers are set to their power-on
// values and the PC is loaded from the reset vector.
//
// If runSelfTest is true then the SelfTest program is copied into RAM, with
// all ROMs banked out, and the PC is set to the program's origin.
func (mc *CPU) Reset(runSelfTest bool) error {
	if r, ok := mc.mem.(cpubus.Resetter); ok {
		r.Reset()
	}

	mc.LastResult.Reset()
	mc.Killed = false
	mc.Cycles = 0
	mc.selfTestRunning = false

	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(0xfd)
	mc.Status.Reset()
	mc.PC.Load(mc.read16Bit(cpubus.Reset))

	if !runSelfTest {
		return nil
	}

	if len(mc.SelfTest.Program) == 0 {
		return curated.Errorf(memory.InvalidArgument, "no self-test program")
	}

	// bank out BASIC, KERNAL and IO
	mc.mem.Write(0x0001, 0x00)

	addr := mc.SelfTest.Load
	for _, b := range mc.SelfTest.Program {
		mc.mem.Write(addr, b)
		addr++
		if addr == 0 {
			break
		}
	}

	mc.PC.Load(mc.SelfTest.Origin)
	mc.selfTestRunning = true

	logger.Logf(logger.Allow, "cpu", "self-test loaded at $%04x (%d bytes), starting at $%04x",
		mc.SelfTest.Load, len(mc.SelfTest.Program), mc.SelfTest.Origin)

	return nil
}

func (mc *CPU) read8Bit(address uint16) uint8 {
	return mc.mem.Read(address)
}

func (mc *CPU) write8Bit(address uint16, value uint8) {
	mc.mem.Write(address, value)
}

func (mc *CPU) read16Bit(address uint16) uint16 {
	lo := mc.mem.Read(address)
	hi := mc.mem.Read(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// read16BitPointer reads a pointer without carrying into the next page. the
// high byte of a pointer at $xxff comes from $xx00. returns true if the
// pointer straddled a page boundary.
func (mc *CPU) read16BitPointer(address uint16) (uint16, bool) {
	lo := mc.mem.Read(address)
	hiAddr := (address & 0xff00) | ((address + 1) & 0x00ff)
	hi := mc.mem.Read(hiAddr)
	return uint16(hi)<<8 | uint16(lo), address&0x00ff == 0x00ff
}

func (mc *CPU) push(value uint8) {
	mc.write8Bit(mc.SP.Push(), value)
}

func (mc *CPU) pull() uint8 {
	return mc.read8Bit(mc.SP.Pop())
}

func (mc *CPU) pushPC(pc uint16) {
	mc.push(uint8(pc >> 8))
	mc.push(uint8(pc))
}

func (mc *CPU) pullPC() uint16 {
	lo := mc.pull()
	hi := mc.pull()
	return uint16(hi)<<8 | uint16(lo)
}

func (mc *CPU) setZN(v uint8) {
	mc.Status.Zero = v == 0
	mc.Status.Sign = v&0x80 == 0x80
}
