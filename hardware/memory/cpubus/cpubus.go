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

// Package cpubus defines the interface between the CPU and the memory system.
// Anything the CPU can read from or write to implements the Memory interface.
// The interface is small so that tests can use a flat 64k array and so that a
// dispatcher can redirect device ranges before falling back to RAM and ROM.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. Reads and writes always complete. An address that maps to nothing
// reads as whatever the implementation decides is floating on the bus.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// NMI is the address where the non-maskable interrupt address is stored.
const NMI = uint16(0xfffa)

// Reset is the address where the reset address is stored.
const Reset = uint16(0xfffc)

// IRQ is the address where the interrupt address is stored. Also used by BRK.
const IRQ = uint16(0xfffe)

// Resetter is implemented by memory systems that can be returned to their
// power on state. The CPU resets the memory it is plumbed into, if it
// implements this interface, when the CPU itself is reset.
type Resetter interface {
	Reset()
}
