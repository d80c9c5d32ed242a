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
	"github.com/valerino/vc64-emu-sub000/hardware/memory/cpubus"
	"github.com/valerino/vc64-emu-sub000/logger"
)

// Step executes the instruction at the current PC and returns the number of
// cycles it took.
//
// If debug is true and a Hook is attached, the hook is consulted after the
// instruction is decoded and before it is executed. forceBreak is passed to
// the hook unchanged.
//
// A return value of -1 indicates that the instruction could not be decoded
// or that the hook requested a quit. The error will say which. A killed CPU
// executes nothing and returns zero cycles.
//
// When a self-test is running the error may be SelfTestPassed or
// SelfTestStalled. Both end the test.
func (mc *CPU) Step(debug bool, forceBreak bool) (int, error) {
	if mc.Killed {
		return 0, nil
	}

	pc := mc.PC.Address()
	opcode := mc.read8Bit(pc)
	defn := mc.instructions[opcode]
	if defn == nil {
		logger.Logf(logger.Allow, "cpu", "no definition for opcode $%02x at $%04x", opcode, pc)
		return -1, curated.Errorf(InvalidOpcodeState, fmt.Sprintf("no definition for opcode $%02x", opcode))
	}

	mc.LastResult.Reset()
	mc.LastResult.Address = pc
	mc.LastResult.Defn = defn
	mc.LastResult.Cycles = defn.Cycles

	size := defn.Bytes

	var operand uint16
	switch size {
	case 2:
		operand = uint16(mc.read8Bit(pc + 1))
	case 3:
		operand = mc.read16Bit(pc + 1)
	}
	mc.LastResult.InstructionData = operand

	// address is the effective address. base is the address before indexing
	var address uint16
	var base uint16
	var crossed bool
	var bug bool

	switch defn.AddressingMode {
	case instructions.Implied, instructions.Accumulator, instructions.Immediate:

	case instructions.Relative:
		address = pc + 2 + uint16(int8(uint8(operand)))

	case instructions.Absolute, instructions.ZeroPage:
		address = operand

	case instructions.Indirect:
		address, bug = mc.read16BitPointer(operand)
		if bug {
			mc.LastResult.CPUBug = execution.JmpIndirectAddressingBug
		}

	case instructions.IndexedIndirect:
		address, bug = mc.read16BitPointer(uint16(uint8(operand) + mc.X.Value()))
		if bug {
			mc.LastResult.CPUBug = execution.ZeroPagePointerBug
		}

	case instructions.IndirectIndexed:
		base, bug = mc.read16BitPointer(operand)
		if bug {
			mc.LastResult.CPUBug = execution.ZeroPagePointerBug
		}
		address = base + uint16(mc.Y.Value())
		crossed = base&0xff00 != address&0xff00

	case instructions.AbsoluteIndexedX:
		base = operand
		address = base + uint16(mc.X.Value())
		crossed = base&0xff00 != address&0xff00

	case instructions.AbsoluteIndexedY:
		base = operand
		address = base + uint16(mc.Y.Value())
		crossed = base&0xff00 != address&0xff00

	case instructions.ZeroPageIndexedX:
		address = uint16(uint8(operand) + mc.X.Value())

	case instructions.ZeroPageIndexedY:
		address = uint16(uint8(operand) + mc.Y.Value())

	default:
		logger.Logf(logger.Allow, "cpu", "unknown addressing mode (%d) for opcode $%02x at $%04x",
			defn.AddressingMode, opcode, pc)
		return -1, curated.Errorf(InvalidOpcodeState,
			fmt.Sprintf("unknown addressing mode (%d) for opcode $%02x", defn.AddressingMode, opcode))
	}

	mc.LastResult.EffectiveAddress = address

	if crossed && defn.PageSensitive {
		mc.LastResult.PageFault = true
		mc.LastResult.Cycles++
	}

	if debug && mc.hook != nil {
		ctx := Context{
			Address:          pc,
			Defn:             defn,
			Operand:          operand,
			EffectiveAddress: address,
			Size:             size,
			ForceBreak:       forceBreak,
		}
		switch mc.hook.PreExecute(mc, ctx) {
		case Skip:
			return 0, nil
		case Quit:
			return -1, curated.Errorf(QuitRequested)
		}
	}

	var value uint8
	switch defn.AddressingMode {
	case instructions.Implied, instructions.Relative:
	case instructions.Immediate:
		value = uint8(operand)
	case instructions.Accumulator:
		value = mc.A.Value()
	default:
		if defn.Effect == instructions.Read || defn.Effect == instructions.RMW {
			value = mc.read8Bit(address)
		}
	}

	// rmw stores the result of a read-modify-write instruction. the
	// unmodified value is written first as it is on the real hardware
	rmw := func(v uint8) {
		if defn.AddressingMode == instructions.Accumulator {
			mc.A.Load(v)
			return
		}
		mc.write8Bit(address, value)
		mc.write8Bit(address, v)
	}

	branch := func(flag bool) {
		if !flag {
			return
		}
		mc.LastResult.BranchSuccess = true
		mc.LastResult.Cycles++
		if (pc+2)&0xff00 != address&0xff00 {
			mc.LastResult.Cycles++
		}
		mc.PC.Load(address)
		size = 0
	}

	r := registers.NewAnonRegister(value)

	switch defn.Operator {
	case instructions.Nop:

	case instructions.Clc:
		mc.Status.Carry = false
	case instructions.Cld:
		mc.Status.DecimalMode = false
	case instructions.Cli:
		mc.Status.InterruptDisable = false
	case instructions.Clv:
		mc.Status.Overflow = false
	case instructions.Sec:
		mc.Status.Carry = true
	case instructions.Sed:
		mc.Status.DecimalMode = true
	case instructions.Sei:
		mc.Status.InterruptDisable = true

	case instructions.Pha:
		mc.push(mc.A.Value())
	case instructions.Php:
		mc.push(mc.Status.Value() | registers.Break)
	case instructions.Pla:
		mc.A.Load(mc.pull())
		mc.setZN(mc.A.Value())
	case instructions.Plp:
		mc.Status.Load(mc.pull())

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.setZN(mc.X.Value())
	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.setZN(mc.Y.Value())
	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.setZN(mc.A.Value())
	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.setZN(mc.A.Value())
	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.setZN(mc.X.Value())
	case instructions.Txs:
		mc.SP.Load(mc.X.Value())

	case instructions.Inx:
		mc.X.Add(1, false)
		mc.setZN(mc.X.Value())
	case instructions.Iny:
		mc.Y.Add(1, false)
		mc.setZN(mc.Y.Value())
	case instructions.Dex:
		mc.X.Subtract(1, true)
		mc.setZN(mc.X.Value())
	case instructions.Dey:
		mc.Y.Subtract(1, true)
		mc.setZN(mc.Y.Value())

	case instructions.Ora:
		mc.A.ORA(value)
		mc.setZN(mc.A.Value())
	case instructions.And:
		mc.A.AND(value)
		mc.setZN(mc.A.Value())
	case instructions.Eor:
		mc.A.EOR(value)
		mc.setZN(mc.A.Value())

	case instructions.Adc:
		mc.adc(value)
	case instructions.Sbc:
		mc.sbc(value)

	case instructions.Cmp:
		mc.compare(mc.A.Value(), value)
	case instructions.Cpx:
		mc.compare(mc.X.Value(), value)
	case instructions.Cpy:
		mc.compare(mc.Y.Value(), value)

	case instructions.Bit:
		mc.Status.Zero = mc.A.Value()&value == 0
		mc.Status.Sign = value&0x80 == 0x80
		mc.Status.Overflow = value&0x40 == 0x40

	case instructions.Lda:
		mc.A.Load(value)
		mc.setZN(value)
	case instructions.Ldx:
		mc.X.Load(value)
		mc.setZN(value)
	case instructions.Ldy:
		mc.Y.Load(value)
		mc.setZN(value)

	case instructions.Sta:
		mc.write8Bit(address, mc.A.Value())
	case instructions.Stx:
		mc.write8Bit(address, mc.X.Value())
	case instructions.Sty:
		mc.write8Bit(address, mc.Y.Value())

	case instructions.Asl:
		mc.Status.Carry = r.ASL()
		mc.setZN(r.Value())
		rmw(r.Value())
	case instructions.Lsr:
		mc.Status.Carry = r.LSR()
		mc.setZN(r.Value())
		rmw(r.Value())
	case instructions.Rol:
		mc.Status.Carry = r.ROL(mc.Status.Carry)
		mc.setZN(r.Value())
		rmw(r.Value())
	case instructions.Ror:
		mc.Status.Carry = r.ROR(mc.Status.Carry)
		mc.setZN(r.Value())
		rmw(r.Value())
	case instructions.Inc:
		r.Add(1, false)
		mc.setZN(r.Value())
		rmw(r.Value())
	case instructions.Dec:
		r.Subtract(1, true)
		mc.setZN(r.Value())
		rmw(r.Value())

	case instructions.Bcc:
		branch(!mc.Status.Carry)
	case instructions.Bcs:
		branch(mc.Status.Carry)
	case instructions.Beq:
		branch(mc.Status.Zero)
	case instructions.Bne:
		branch(!mc.Status.Zero)
	case instructions.Bmi:
		branch(mc.Status.Sign)
	case instructions.Bpl:
		branch(!mc.Status.Sign)
	case instructions.Bvc:
		branch(!mc.Status.Overflow)
	case instructions.Bvs:
		branch(mc.Status.Overflow)

	case instructions.Jmp:
		mc.PC.Load(address)
		size = 0
	case instructions.Jsr:
		mc.pushPC(pc + 2)
		mc.PC.Load(address)
		size = 0
	case instructions.Rts:
		mc.PC.Load(mc.pullPC() + 1)
		size = 0
	case instructions.Brk:
		mc.pushPC(pc + 2)
		mc.push(mc.Status.Value() | registers.Break)
		mc.Status.InterruptDisable = true
		mc.PC.Load(mc.read16Bit(cpubus.IRQ))
		size = 0
	case instructions.Rti:
		mc.Status.Load(mc.pull())
		mc.PC.Load(mc.pullPC())
		size = 0

	// undocumented instructions
	case instructions.Slo:
		mc.Status.Carry = r.ASL()
		rmw(r.Value())
		mc.A.ORA(r.Value())
		mc.setZN(mc.A.Value())
	case instructions.Rla:
		mc.Status.Carry = r.ROL(mc.Status.Carry)
		rmw(r.Value())
		mc.A.AND(r.Value())
		mc.setZN(mc.A.Value())
	case instructions.Sre:
		mc.Status.Carry = r.LSR()
		rmw(r.Value())
		mc.A.EOR(r.Value())
		mc.setZN(mc.A.Value())
	case instructions.Rra:
		mc.Status.Carry = r.ROR(mc.Status.Carry)
		rmw(r.Value())
		mc.adc(r.Value())
	case instructions.Sax:
		mc.write8Bit(address, mc.A.Value()&mc.X.Value())
	case instructions.Lax:
		mc.A.Load(value)
		mc.X.Load(value)
		mc.setZN(value)
	case instructions.Dcp:
		r.Subtract(1, true)
		rmw(r.Value())
		mc.compare(mc.A.Value(), r.Value())
	case instructions.Isc:
		r.Add(1, false)
		rmw(r.Value())
		mc.sbc(r.Value())
	case instructions.Anc:
		mc.A.AND(value)
		mc.setZN(mc.A.Value())
		mc.Status.Carry = mc.Status.Sign
	case instructions.Alr:
		mc.A.AND(value)
		mc.Status.Carry = mc.A.LSR()
		mc.setZN(mc.A.Value())
	case instructions.Arr:
		mc.arr(value)
	case instructions.Xaa:
		mc.A.Load((mc.A.Value() | unstableMagic) & mc.X.Value() & value)
		mc.setZN(mc.A.Value())
	case instructions.Lxa:
		v := (mc.A.Value() | unstableMagic) & value
		mc.A.Load(v)
		mc.X.Load(v)
		mc.setZN(v)
	case instructions.Axs:
		r.Load(mc.A.Value() & mc.X.Value())
		mc.Status.Carry, _ = r.Subtract(value, true)
		mc.X.Load(r.Value())
		mc.setZN(r.Value())
	case instructions.Ahx:
		mc.unstableStore(mc.A.Value()&mc.X.Value(), base, address)
	case instructions.Shx:
		mc.unstableStore(mc.X.Value(), base, address)
	case instructions.Shy:
		mc.unstableStore(mc.Y.Value(), base, address)
	case instructions.Tas:
		mc.SP.Load(mc.A.Value() & mc.X.Value())
		mc.unstableStore(mc.A.Value()&mc.X.Value(), base, address)
	case instructions.Las:
		v := value & mc.SP.Value()
		mc.A.Load(v)
		mc.X.Load(v)
		mc.SP.Load(v)
		mc.setZN(v)
	case instructions.Jam:
		mc.Killed = true
		size = 1
		logger.Logf(logger.Allow, "cpu", "JAM ($%02x) at $%04x. cpu halted", opcode, pc)

	default:
		return -1, curated.Errorf(InvalidOpcodeState, fmt.Sprintf("unknown operator (%s) for opcode $%02x", defn.Operator, opcode))
	}

	mc.PC.Add(uint16(size))
	mc.LastResult.Final = true
	mc.Cycles += uint64(mc.LastResult.Cycles)

	return mc.LastResult.Cycles, mc.checkSelfTest(pc)
}

// the value ORed with the accumulator by XAA and LXA. the real value depends
// on the chip and its temperature.
const unstableMagic = 0xee

func (mc *CPU) adc(value uint8) {
	if mc.Status.DecimalMode {
		mc.Status.Carry, mc.Status.Zero, mc.Status.Overflow, mc.Status.Sign = mc.A.AddDecimal(value, mc.Status.Carry)
		mc.LastResult.CPUBug = execution.DecimalModeFlagsBug
		return
	}
	mc.Status.Carry, mc.Status.Overflow = mc.A.Add(value, mc.Status.Carry)
	mc.setZN(mc.A.Value())
}

func (mc *CPU) sbc(value uint8) {
	if mc.Status.DecimalMode {
		mc.Status.Carry, mc.Status.Zero, mc.Status.Overflow, mc.Status.Sign = mc.A.SubtractDecimal(value, mc.Status.Carry)
		return
	}
	mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(value, mc.Status.Carry)
	mc.setZN(mc.A.Value())
}

func (mc *CPU) compare(reg uint8, value uint8) {
	r := registers.NewAnonRegister(reg)
	mc.Status.Carry, _ = r.Subtract(value, true)
	mc.setZN(r.Value())
}

// arr is an AND followed by a ROR of the accumulator with flags taken from
// the adder. decimal mode corrects the result like ADC.
func (mc *CPU) arr(value uint8) {
	t := mc.A.Value() & value
	r := registers.NewAnonRegister(t)
	r.ROR(mc.Status.Carry)
	res := r.Value()

	if !mc.Status.DecimalMode {
		mc.A.Load(res)
		mc.setZN(res)
		mc.Status.Carry = res&0x40 == 0x40
		mc.Status.Overflow = ((res>>6)^(res>>5))&0x01 == 0x01
		return
	}

	mc.Status.Sign = mc.Status.Carry
	mc.Status.Zero = res == 0
	mc.Status.Overflow = (t^res)&0x40 == 0x40

	if (t&0x0f)+(t&0x01) > 0x05 {
		res = (res & 0xf0) | ((res + 0x06) & 0x0f)
	}
	if uint16(t&0xf0)+uint16(t&0x10) > 0x50 {
		mc.Status.Carry = true
		res += 0x60
	} else {
		mc.Status.Carry = false
	}

	mc.A.Load(res)
}

// unstableStore implements the store of AHX, SHX, SHY and TAS. the value is
// ANDed with the high byte of the base address plus one. when indexing
// crosses a page the high byte of the target address is replaced by the
// value being stored.
func (mc *CPU) unstableStore(v uint8, base uint16, address uint16) {
	v &= uint8(base>>8) + 1
	if base&0xff00 != address&0xff00 {
		address = uint16(v)<<8 | address&0x00ff
	}
	mc.write8Bit(address, v)
}
