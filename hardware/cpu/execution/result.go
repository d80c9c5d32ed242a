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

package execution

import (
	"fmt"

	"github.com/valerino/vc64-emu-sub000/hardware/cpu/instructions"
)

// Result records the state/result of the last instruction executed by the CPU.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// a reference to the instruction definition
	Defn *instructions.Definition

	// the operand of the instruction. one or two bytes depending on the
	// addressing mode
	InstructionData uint16

	// the effective address of the instruction, after indexing and
	// indirection
	EffectiveAddress uint16

	// the actual number of cycles taken by the instruction. usually the same
	// as Defn.Cycles but if a PageFault has occurred or a branch was taken
	// then it will be higher
	Cycles int

	// whether an extra cycle was required because of 8 bit adder overflow
	PageFault bool

	// whether a branch instruction took the branch
	BranchSuccess bool

	// whether a known buggy code path (in the CPU) was triggered
	CPUBug Bug

	// whether this data has been finalised
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	if r.Defn == nil {
		return "no instruction"
	}

	var data string
	switch r.Defn.Bytes {
	case 2:
		data = fmt.Sprintf("$%02x", r.InstructionData)
	case 3:
		data = fmt.Sprintf("$%04x", r.InstructionData)
	}

	switch r.Defn.AddressingMode {
	case instructions.Accumulator:
		data = "A"
	case instructions.Immediate:
		data = fmt.Sprintf("#%s", data)
	case instructions.Relative:
		data = fmt.Sprintf("$%04x", r.EffectiveAddress)
	case instructions.Indirect:
		data = fmt.Sprintf("(%s)", data)
	case instructions.IndexedIndirect:
		data = fmt.Sprintf("(%s,X)", data)
	case instructions.IndirectIndexed:
		data = fmt.Sprintf("(%s),Y", data)
	case instructions.AbsoluteIndexedX, instructions.ZeroPageIndexedX:
		data = fmt.Sprintf("%s,X", data)
	case instructions.AbsoluteIndexedY, instructions.ZeroPageIndexedY:
		data = fmt.Sprintf("%s,Y", data)
	}

	s := fmt.Sprintf("%04x %s", r.Address, r.Defn.Mnemonic)
	if data != "" {
		s = fmt.Sprintf("%s %s", s, data)
	}

	if r.Final {
		s = fmt.Sprintf("%s [%d]", s, r.Cycles)
	}
	if r.PageFault {
		s = fmt.Sprintf("%s page-fault", s)
	}
	if r.CPUBug != NoBug {
		s = fmt.Sprintf("%s * %s *", s, r.CPUBug)
	}

	return s
}
