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

// Package memorymap contains the fixed addresses of the C64 memory map. The
// origin and memtop of each area are used by the memory and bus packages and
// by the debugger.
package memorymap

// The processor port. The DDR at address zero decides which bits of the port
// are outputs. The port at address one selects the memory banks.
const (
	ProcessorPortDDR = uint16(0x0000)
	ProcessorPort    = uint16(0x0001)
)

// The origin and memory top for each ROM and for the IO area.
const (
	OriginBASIC   = uint16(0xa000)
	MemtopBASIC   = uint16(0xbfff)
	OriginKERNAL  = uint16(0xe000)
	MemtopKERNAL  = uint16(0xffff)
	OriginCharset = uint16(0xd000)
	MemtopCharset = uint16(0xdfff)
	OriginIO      = uint16(0xd000)
	MemtopIO      = uint16(0xdfff)
)

// Sizes of the ROM images.
const (
	SizeBASIC   = int(MemtopBASIC-OriginBASIC) + 1
	SizeKERNAL  = int(MemtopKERNAL-OriginKERNAL) + 1
	SizeCharset = int(MemtopCharset-OriginCharset) + 1
)

// Colour RAM is a 1k nibble RAM in the IO area.
const (
	OriginColorRAM = uint16(0xd800)
	MemtopColorRAM = uint16(0xdbff)
)

// BASIC program layout. A program saved from BASIC is loaded at BasicStart
// and the zero page pointers are moved to the end of the program. TXTTAB
// points to the start of the program and is never changed by a load.
const (
	BasicStart = uint16(0x0801)
	TXTTAB     = uint16(0x002b)
	VARTAB     = uint16(0x002d)
	ARYTAB     = uint16(0x002f)
	STREND     = uint16(0x0031)

	// end address of the last LOAD, as set by the KERNAL
	EAL = uint16(0x00ae)
)

// KernalKeyWait is the address of the KERNAL loop that waits for a key press
// in the BASIC editor. Reaching it means the KERNAL and BASIC have finished
// initialising.
const KernalKeyWait = uint16(0xe5cd)
