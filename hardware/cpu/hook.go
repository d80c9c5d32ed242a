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

import "github.com/valerino/vc64-emu-sub000/hardware/cpu/instructions"

// Action is the response of a Hook to an instruction about to be executed.
type Action int

// List of valid Action values.
const (
	// execute the instruction normally
	Continue Action = iota

	// do not execute the instruction and do not advance the PC. the same
	// instruction will be decoded again on the next call to Step()
	Skip

	// do not execute the instruction. Step() returns QuitRequested
	Quit
)

// Context describes the instruction about to be executed.
type Context struct {
	// address of the opcode
	Address uint16

	Defn *instructions.Definition

	// the one or two bytes following the opcode
	Operand uint16

	// the address after indexing and indirection. the branch target for
	// relative addressing
	EffectiveAddress uint16

	Size int

	// a break has been requested from outside the emulation (eg. SIGINT)
	ForceBreak bool
}

// InterruptKind identifies the interrupt reported by Hook.Interrupted().
type InterruptKind int

// List of valid InterruptKind values.
const (
	IRQ InterruptKind = iota
	NMI
)

func (k InterruptKind) String() string {
	switch k {
	case IRQ:
		return "IRQ"
	case NMI:
		return "NMI"
	}
	return "unknown interrupt"
}

// Hook is implemented by types that want to inspect and control execution.
// The debugger is the main implementation.
type Hook interface {
	// PreExecute is called by Step() after the instruction has been decoded
	// and before it is executed. Only called when Step() is called with the
	// debug flag set. The hook is free to modify the CPU and memory.
	PreExecute(mc *CPU, ctx Context) Action

	// Interrupted is called after an IRQ or NMI has been taken.
	Interrupted(kind InterruptKind)
}
