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

import "github.com/valerino/vc64-emu-sub000/hardware/cpu"

// the break conditions and mode flags of the debugger. all fields are
// changed only by console commands or by the break checks in PreExecute()
type state struct {
	// address breakpoint
	breakAddress    uint16
	hasBreakAddress bool

	// cycle breakpoint. removed once it has triggered
	breakCycles    uint64
	hasBreakCycles bool

	breakIRQ bool
	breakNMI bool

	// the interrupt that should cause a break on the next instruction
	pendingInterrupt cpu.InterruptKind
	hasPending       bool

	// running freely rather than stepping
	going bool

	// memory commands bypass bank mapping
	raw bool

	// the current instruction was patched. it will be decoded again and
	// should not open the console a second time
	patched     bool
	skipConsole bool
}

// clear all break conditions. the mode flags are unchanged
func (s *state) clear() {
	s.hasBreakAddress = false
	s.hasBreakCycles = false
	s.breakIRQ = false
	s.breakNMI = false
	s.hasPending = false
}
