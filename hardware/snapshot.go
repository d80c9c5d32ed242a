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

package hardware

import (
	"github.com/valerino/vc64-emu-sub000/hardware/cpu"
	"github.com/valerino/vc64-emu-sub000/hardware/memory/banks"
)

// State stores a copy of the C64 sub-systems. It is produced by the
// Snapshot() function and is meant for inspection only.
type State struct {
	CPU      *cpu.CPU
	Latch    banks.Latch
	ZeroPage [256]uint8
	Stack    [256]uint8
}

// Snapshot the state of the C64 sub-systems.
func (c *C64) Snapshot() *State {
	s := &State{
		CPU:   c.CPU.Snapshot(),
		Latch: c.Mem.Latch(),
	}
	for i := range s.ZeroPage {
		s.ZeroPage[i] = c.Mem.ReadByte(uint16(i), true)
		s.Stack[i] = c.Mem.ReadByte(0x0100+uint16(i), true)
	}
	return s
}
