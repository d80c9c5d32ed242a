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
	"github.com/valerino/vc64-emu-sub000/hardware/cpu/registers"
	"github.com/valerino/vc64-emu-sub000/hardware/memory/cpubus"
)

// number of cycles taken to service an interrupt.
const interruptCycles = 7

// IRQ services a maskable interrupt request. Nothing happens if the
// InterruptDisable flag is set.
func (mc *CPU) IRQ() {
	if mc.Status.InterruptDisable {
		return
	}

	mc.pushPC(mc.PC.Address())
	mc.push(mc.Status.Value() &^ registers.Break)
	mc.Status.InterruptDisable = true
	mc.PC.Load(mc.read16Bit(cpubus.IRQ))
	mc.Cycles += interruptCycles

	if mc.hook != nil {
		mc.hook.Interrupted(IRQ)
	}
}

// NMI services a non-maskable interrupt.
func (mc *CPU) NMI() {
	mc.pushPC(mc.PC.Address())
	mc.push(mc.Status.Value() &^ registers.Break)
	mc.Status.Break = true
	mc.Status.InterruptDisable = true
	mc.PC.Load(mc.read16Bit(cpubus.NMI))
	mc.Cycles += interruptCycles

	if mc.hook != nil {
		mc.hook.Interrupted(NMI)
	}
}
