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

// Package instructions defines the instruction set of the 6502. Every one of
// the 256 opcodes has a Definition, including the undocumented opcodes of the
// NMOS chip. The table is built when the package is initialised and does not
// change after that.
//
// The CPU uses the Operator field to decide what to do and the
// AddressingMode field to decide where the operand comes from. The Effect
// field is a broad categorisation used by the CPU to decide whether the
// operand should be read from memory, written to memory or both.
package instructions
