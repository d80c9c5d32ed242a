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

package debugger

import (
	"fmt"

	"github.com/valerino/vc64-emu-sub000/hardware/cpu"
	"github.com/valerino/vc64-emu-sub000/hardware/cpu/instructions"
)

// disassemble the instruction described by the context
func disassemble(ctx cpu.Context) string {
	if ctx.Defn == nil {
		return "???"
	}

	var operand string

	switch ctx.Defn.AddressingMode {
	case instructions.Implied:
	case instructions.Accumulator:
		operand = "A"
	case instructions.Immediate:
		operand = fmt.Sprintf("#$%02x", ctx.Operand)
	case instructions.Relative:
		operand = fmt.Sprintf("$%04x", ctx.EffectiveAddress)
	case instructions.Absolute:
		operand = fmt.Sprintf("$%04x", ctx.Operand)
	case instructions.ZeroPage:
		operand = fmt.Sprintf("$%02x", ctx.Operand)
	case instructions.Indirect:
		operand = fmt.Sprintf("($%04x)", ctx.Operand)
	case instructions.IndexedIndirect:
		operand = fmt.Sprintf("($%02x,X)", ctx.Operand)
	case instructions.IndirectIndexed:
		operand = fmt.Sprintf("($%02x),Y", ctx.Operand)
	case instructions.AbsoluteIndexedX:
		operand = fmt.Sprintf("$%04x,X", ctx.Operand)
	case instructions.AbsoluteIndexedY:
		operand = fmt.Sprintf("$%04x,Y", ctx.Operand)
	case instructions.ZeroPageIndexedX:
		operand = fmt.Sprintf("$%02x,X", ctx.Operand)
	case instructions.ZeroPageIndexedY:
		operand = fmt.Sprintf("$%02x,Y", ctx.Operand)
	}

	if operand == "" {
		return ctx.Defn.Mnemonic
	}
	return fmt.Sprintf("%s %s", ctx.Defn.Mnemonic, operand)
}
