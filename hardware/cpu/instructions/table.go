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

package instructions

// short names for addressing modes. used only to keep the table readable
const (
	imp = Implied
	acc = Accumulator
	imm = Immediate
	rel = Relative
	abs = Absolute
	zpg = ZeroPage
	ind = Indirect
	izx = IndexedIndirect
	izy = IndirectIndexed
	abx = AbsoluteIndexedX
	aby = AbsoluteIndexedY
	zpx = ZeroPageIndexedX
	zpy = ZeroPageIndexedY
)

// row in the instruction table. page sensitive instructions take an extra
// cycle when the indexed address is on a different page to the base address.
type row struct {
	op     Operator
	mode   AddressingMode
	cycles int
	page   bool
}

// the table is indexed by opcode. JAM instructions are given a nominal cycle
// count of two.
var table = [256]row{
	// 0x00
	{Brk, imp, 7, false}, {Ora, izx, 6, false}, {Jam, imp, 2, false}, {Slo, izx, 8, false},
	{Nop, zpg, 3, false}, {Ora, zpg, 3, false}, {Asl, zpg, 5, false}, {Slo, zpg, 5, false},
	{Php, imp, 3, false}, {Ora, imm, 2, false}, {Asl, acc, 2, false}, {Anc, imm, 2, false},
	{Nop, abs, 4, false}, {Ora, abs, 4, false}, {Asl, abs, 6, false}, {Slo, abs, 6, false},

	// 0x10
	{Bpl, rel, 2, false}, {Ora, izy, 5, true}, {Jam, imp, 2, false}, {Slo, izy, 8, false},
	{Nop, zpx, 4, false}, {Ora, zpx, 4, false}, {Asl, zpx, 6, false}, {Slo, zpx, 6, false},
	{Clc, imp, 2, false}, {Ora, aby, 4, true}, {Nop, imp, 2, false}, {Slo, aby, 7, false},
	{Nop, abx, 4, true}, {Ora, abx, 4, true}, {Asl, abx, 7, false}, {Slo, abx, 7, false},

	// 0x20
	{Jsr, abs, 6, false}, {And, izx, 6, false}, {Jam, imp, 2, false}, {Rla, izx, 8, false},
	{Bit, zpg, 3, false}, {And, zpg, 3, false}, {Rol, zpg, 5, false}, {Rla, zpg, 5, false},
	{Plp, imp, 4, false}, {And, imm, 2, false}, {Rol, acc, 2, false}, {Anc, imm, 2, false},
	{Bit, abs, 4, false}, {And, abs, 4, false}, {Rol, abs, 6, false}, {Rla, abs, 6, false},

	// 0x30
	{Bmi, rel, 2, false}, {And, izy, 5, true}, {Jam, imp, 2, false}, {Rla, izy, 8, false},
	{Nop, zpx, 4, false}, {And, zpx, 4, false}, {Rol, zpx, 6, false}, {Rla, zpx, 6, false},
	{Sec, imp, 2, false}, {And, aby, 4, true}, {Nop, imp, 2, false}, {Rla, aby, 7, false},
	{Nop, abx, 4, true}, {And, abx, 4, true}, {Rol, abx, 7, false}, {Rla, abx, 7, false},

	// 0x40
	{Rti, imp, 6, false}, {Eor, izx, 6, false}, {Jam, imp, 2, false}, {Sre, izx, 8, false},
	{Nop, zpg, 3, false}, {Eor, zpg, 3, false}, {Lsr, zpg, 5, false}, {Sre, zpg, 5, false},
	{Pha, imp, 3, false}, {Eor, imm, 2, false}, {Lsr, acc, 2, false}, {Alr, imm, 2, false},
	{Jmp, abs, 3, false}, {Eor, abs, 4, false}, {Lsr, abs, 6, false}, {Sre, abs, 6, false},

	// 0x50
	{Bvc, rel, 2, false}, {Eor, izy, 5, true}, {Jam, imp, 2, false}, {Sre, izy, 8, false},
	{Nop, zpx, 4, false}, {Eor, zpx, 4, false}, {Lsr, zpx, 6, false}, {Sre, zpx, 6, false},
	{Cli, imp, 2, false}, {Eor, aby, 4, true}, {Nop, imp, 2, false}, {Sre, aby, 7, false},
	{Nop, abx, 4, true}, {Eor, abx, 4, true}, {Lsr, abx, 7, false}, {Sre, abx, 7, false},

	// 0x60
	{Rts, imp, 6, false}, {Adc, izx, 6, false}, {Jam, imp, 2, false}, {Rra, izx, 8, false},
	{Nop, zpg, 3, false}, {Adc, zpg, 3, false}, {Ror, zpg, 5, false}, {Rra, zpg, 5, false},
	{Pla, imp, 4, false}, {Adc, imm, 2, false}, {Ror, acc, 2, false}, {Arr, imm, 2, false},
	{Jmp, ind, 5, false}, {Adc, abs, 4, false}, {Ror, abs, 6, false}, {Rra, abs, 6, false},

	// 0x70
	{Bvs, rel, 2, false}, {Adc, izy, 5, true}, {Jam, imp, 2, false}, {Rra, izy, 8, false},
	{Nop, zpx, 4, false}, {Adc, zpx, 4, false}, {Ror, zpx, 6, false}, {Rra, zpx, 6, false},
	{Sei, imp, 2, false}, {Adc, aby, 4, true}, {Nop, imp, 2, false}, {Rra, aby, 7, false},
	{Nop, abx, 4, true}, {Adc, abx, 4, true}, {Ror, abx, 7, false}, {Rra, abx, 7, false},

	// 0x80
	{Nop, imm, 2, false}, {Sta, izx, 6, false}, {Nop, imm, 2, false}, {Sax, izx, 6, false},
	{Sty, zpg, 3, false}, {Sta, zpg, 3, false}, {Stx, zpg, 3, false}, {Sax, zpg, 3, false},
	{Dey, imp, 2, false}, {Nop, imm, 2, false}, {Txa, imp, 2, false}, {Xaa, imm, 2, false},
	{Sty, abs, 4, false}, {Sta, abs, 4, false}, {Stx, abs, 4, false}, {Sax, abs, 4, false},

	// 0x90
	{Bcc, rel, 2, false}, {Sta, izy, 6, false}, {Jam, imp, 2, false}, {Ahx, izy, 6, false},
	{Sty, zpx, 4, false}, {Sta, zpx, 4, false}, {Stx, zpy, 4, false}, {Sax, zpy, 4, false},
	{Tya, imp, 2, false}, {Sta, aby, 5, false}, {Txs, imp, 2, false}, {Tas, aby, 5, false},
	{Shy, abx, 5, false}, {Sta, abx, 5, false}, {Shx, aby, 5, false}, {Ahx, aby, 5, false},

	// 0xa0
	{Ldy, imm, 2, false}, {Lda, izx, 6, false}, {Ldx, imm, 2, false}, {Lax, izx, 6, false},
	{Ldy, zpg, 3, false}, {Lda, zpg, 3, false}, {Ldx, zpg, 3, false}, {Lax, zpg, 3, false},
	{Tay, imp, 2, false}, {Lda, imm, 2, false}, {Tax, imp, 2, false}, {Lxa, imm, 2, false},
	{Ldy, abs, 4, false}, {Lda, abs, 4, false}, {Ldx, abs, 4, false}, {Lax, abs, 4, false},

	// 0xb0
	{Bcs, rel, 2, false}, {Lda, izy, 5, true}, {Jam, imp, 2, false}, {Lax, izy, 5, true},
	{Ldy, zpx, 4, false}, {Lda, zpx, 4, false}, {Ldx, zpy, 4, false}, {Lax, zpy, 4, false},
	{Clv, imp, 2, false}, {Lda, aby, 4, true}, {Tsx, imp, 2, false}, {Las, aby, 4, true},
	{Ldy, abx, 4, true}, {Lda, abx, 4, true}, {Ldx, aby, 4, true}, {Lax, aby, 4, true},

	// 0xc0
	{Cpy, imm, 2, false}, {Cmp, izx, 6, false}, {Nop, imm, 2, false}, {Dcp, izx, 8, false},
	{Cpy, zpg, 3, false}, {Cmp, zpg, 3, false}, {Dec, zpg, 5, false}, {Dcp, zpg, 5, false},
	{Iny, imp, 2, false}, {Cmp, imm, 2, false}, {Dex, imp, 2, false}, {Axs, imm, 2, false},
	{Cpy, abs, 4, false}, {Cmp, abs, 4, false}, {Dec, abs, 6, false}, {Dcp, abs, 6, false},

	// 0xd0
	{Bne, rel, 2, false}, {Cmp, izy, 5, true}, {Jam, imp, 2, false}, {Dcp, izy, 8, false},
	{Nop, zpx, 4, false}, {Cmp, zpx, 4, false}, {Dec, zpx, 6, false}, {Dcp, zpx, 6, false},
	{Cld, imp, 2, false}, {Cmp, aby, 4, true}, {Nop, imp, 2, false}, {Dcp, aby, 7, false},
	{Nop, abx, 4, true}, {Cmp, abx, 4, true}, {Dec, abx, 7, false}, {Dcp, abx, 7, false},

	// 0xe0
	{Cpx, imm, 2, false}, {Sbc, izx, 6, false}, {Nop, imm, 2, false}, {Isc, izx, 8, false},
	{Cpx, zpg, 3, false}, {Sbc, zpg, 3, false}, {Inc, zpg, 5, false}, {Isc, zpg, 5, false},
	{Inx, imp, 2, false}, {Sbc, imm, 2, false}, {Nop, imp, 2, false}, {Sbc, imm, 2, false},
	{Cpx, abs, 4, false}, {Sbc, abs, 4, false}, {Inc, abs, 6, false}, {Isc, abs, 6, false},

	// 0xf0
	{Beq, rel, 2, false}, {Sbc, izy, 5, true}, {Jam, imp, 2, false}, {Isc, izy, 8, false},
	{Nop, zpx, 4, false}, {Sbc, zpx, 4, false}, {Inc, zpx, 6, false}, {Isc, zpx, 6, false},
	{Sed, imp, 2, false}, {Sbc, aby, 4, true}, {Nop, imp, 2, false}, {Isc, aby, 7, false},
	{Nop, abx, 4, true}, {Sbc, abx, 4, true}, {Inc, abx, 7, false}, {Isc, abx, 7, false},
}

// definitions is built once from the table and never changes.
var definitions [256]Definition

func init() {
	for i, r := range table {
		definitions[i] = Definition{
			OpCode:         uint8(i),
			Operator:       r.op,
			Mnemonic:       r.op.String(),
			Bytes:          r.mode.Bytes(),
			Cycles:         r.cycles,
			AddressingMode: r.mode,
			PageSensitive:  r.page,
			Effect:         effectOf(r.op),
			Undocumented:   r.op.IsUndocumented() || (r.op == Nop && i != 0xea) || i == 0xeb,
		}
	}
}

// GetDefinitions returns the table of instruction definitions for the 6502,
// indexed by opcode. The returned slice is a new copy each time but the
// Definitions it points to are shared and must not be changed.
func GetDefinitions() []*Definition {
	d := make([]*Definition, len(definitions))
	for i := range definitions {
		d[i] = &definitions[i]
	}
	return d
}

// Lookup returns the definition for an opcode.
func Lookup(opcode uint8) Definition {
	return definitions[opcode]
}
