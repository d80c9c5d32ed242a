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

// Package debugger implements the line oriented debugger for the vc64
// emulation. The debugger is attached to the C64 as a cpu.Hook and so sees
// every instruction before it is executed.
//
// Initialisation of the debugger is done with the NewDebugger() function
//
//	dbg := debugger.NewDebugger(c64, term, breakKey)
//	c64.AttachDebugger(dbg)
//
// The term argument is an implementation of the terminal.Terminal interface.
// The plainterm and editterm packages provide implementations. The breakKey
// argument may be nil.
//
// The debugger starts in step mode. Each instruction is shown and the
// console waits for a command:
//
//	p               step one instruction
//	g               go until a break condition
//	r               registers
//	d $addr count   hex dump count bytes
//	e $addr b1,b2   patch bytes
//	bp $addr        break when the PC reaches the address
//	bc cycles       break when the cycle count is reached (once)
//	bq              break on IRQ
//	bn              break on NMI
//	c               clear all breakpoints
//	f               toggle raw or mapped memory access for d and e
//	x               quit
//	h               help
//
// Addresses and byte values are hexadecimal. Counts and cycles are decimal.
// A command that cannot be performed prints an error and changes nothing.
package debugger
