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

var helpUsage = map[string]string{
	cmdStep:      "p",
	cmdGo:        "g",
	cmdRegisters: "r",
	cmdDump:      "d $addr count",
	cmdPatch:     "e $addr b1,b2,..",
	cmdBreak:     "bp $addr",
	cmdCycles:    "bc cycles",
	cmdIRQ:       "bq",
	cmdNMI:       "bn",
	cmdClear:     "c",
	cmdRaw:       "f",
	cmdQuit:      "x",
	cmdHelp:      "h [command]",
}

var helps = map[string]string{
	cmdStep:      "Execute the next instruction and stop",
	cmdGo:        "Run until a break condition is met",
	cmdRegisters: "Display the CPU registers, the bank latch and the cycle count",
	cmdDump:      "Hex dump count bytes (decimal) starting at the address",
	cmdPatch:     "Write the hex byte values to memory starting at the address",
	cmdBreak:     "Halt when the program counter reaches the address",
	cmdCycles:    "Halt when the cycle count is reached. removed once triggered",
	cmdIRQ:       "Halt on the instruction following an IRQ",
	cmdNMI:       "Halt on the instruction following an NMI",
	cmdClear:     "Clear all breakpoints",
	cmdRaw:       "Toggle between raw and mapped memory access for the d and e commands",
	cmdQuit:      "Quit the emulation",
	cmdHelp:      "List commands or show help for a single command",
}
