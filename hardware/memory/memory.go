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

package memory

import (
	"fmt"
	"strings"

	"github.com/valerino/vc64-emu-sub000/curated"
	"github.com/valerino/vc64-emu-sub000/hardware/memory/banks"
	"github.com/valerino/vc64-emu-sub000/hardware/memory/memorymap"
)

// values of the processor port registers after the KERNAL has initialised
// them. the port value matches the banks.PowerOn latch
const (
	powerOnDDR  = uint8(0x2f)
	powerOnPort = uint8(0x37)
)

// Memory is the C64 memory system.
type Memory struct {
	ram [0x10000]uint8

	basic   []uint8
	kernal  []uint8
	charset []uint8

	dec *banks.Decoder
}

// NewMemory is the preferred method of initialisation for the Memory type.
// ROMs missing from the ROMSet are replaced by zero filled images.
func NewMemory(roms ROMSet) *Memory {
	mem := &Memory{
		basic:   fit(roms.Basic, memorymap.SizeBASIC),
		kernal:  fit(roms.Kernal, memorymap.SizeKERNAL),
		charset: fit(roms.Charset, memorymap.SizeCharset),
		dec:     banks.NewDecoder(),
	}
	mem.Reset()
	return mem
}

func fit(rom []uint8, size int) []uint8 {
	r := make([]uint8, size)
	copy(r, rom)
	return r
}

// Reset clears RAM and returns the bank configuration to the power on state.
func (mem *Memory) Reset() {
	clear(mem.ram[:])
	mem.ram[memorymap.ProcessorPortDDR] = powerOnDDR
	mem.ram[memorymap.ProcessorPort] = powerOnPort
	mem.dec.Reset()
}

func (mem *Memory) String() string {
	return fmt.Sprintf("latch: %s", mem.dec.Latch())
}

// Region returns the classification of the address for the current bank
// configuration.
func (mem *Memory) Region(address uint16) banks.Region {
	return mem.dec.Region(address)
}

// Latch returns the current bank configuration.
func (mem *Memory) Latch() banks.Latch {
	return mem.dec.Latch()
}

// SetCartridgeLines sets the GAME and EXROM lines of the cartridge port.
func (mem *Memory) SetCartridgeLines(game bool, exrom bool) {
	mem.dec.SetCartridge(game, exrom)
}

// Read implements the cpubus.Memory interface.
func (mem *Memory) Read(address uint16) uint8 {
	return mem.ReadByte(address, false)
}

// Write implements the cpubus.Memory interface.
func (mem *Memory) Write(address uint16, data uint8) {
	mem.WriteByte(address, data, false)
}

// ReadByte returns the byte at the address. If raw is true the byte is always
// read from RAM.
func (mem *Memory) ReadByte(address uint16, raw bool) uint8 {
	if raw {
		return mem.ram[address]
	}

	switch mem.dec.Region(address) {
	case banks.BasicROM:
		return mem.basic[address-memorymap.OriginBASIC]
	case banks.KernalROM:
		return mem.kernal[address-memorymap.OriginKERNAL]
	case banks.CharsetROM:
		return mem.charset[address-memorymap.OriginCharset]
	}

	return mem.ram[address]
}

// WriteByte writes the byte to RAM. If raw is false a write to the processor
// port updates the bank configuration.
func (mem *Memory) WriteByte(address uint16, data uint8, raw bool) {
	mem.ram[address] = data
	if raw {
		return
	}

	if address == memorymap.ProcessorPortDDR || address == memorymap.ProcessorPort {
		mem.dec.SetControl(mem.ram[memorymap.ProcessorPort])
	}
}

// ReadWord returns the little-endian word at the address. The high byte of a
// word at 0xffff is read from 0x0000.
func (mem *Memory) ReadWord(address uint16, raw bool) uint16 {
	lo := mem.ReadByte(address, raw)
	hi := mem.ReadByte(address+1, raw)
	return uint16(hi)<<8 | uint16(lo)
}

// WriteWord writes a little-endian word to the address.
func (mem *Memory) WriteWord(address uint16, data uint16, raw bool) {
	mem.WriteByte(address, uint8(data), raw)
	mem.WriteByte(address+1, uint8(data>>8), raw)
}

// ReadBytes copies size bytes starting at the address into dst. If size is
// larger than dst then only len(dst) bytes are copied and an Overflow error is
// returned. Addresses wrap around at 0xffff. Returns the number of bytes
// copied.
func (mem *Memory) ReadBytes(address uint16, dst []uint8, size int, raw bool) (int, error) {
	if dst == nil {
		return 0, curated.Errorf(InvalidArgument, "nil buffer")
	}
	if size < 0 {
		return 0, curated.Errorf(InvalidArgument, fmt.Sprintf("negative size (%d)", size))
	}

	var err error
	if size > len(dst) {
		err = curated.Errorf(Overflow, fmt.Sprintf("%d bytes requested for a buffer of %d", size, len(dst)))
		size = len(dst)
	}

	for i := 0; i < size; i++ {
		dst[i] = mem.ReadByte(address+uint16(i), raw)
	}

	return size, err
}

// WriteBytes copies size bytes from src into memory starting at the address.
// If size is larger than src then only len(src) bytes are copied and an
// Overflow error is returned. Addresses wrap around at 0xffff. Returns the
// number of bytes copied.
func (mem *Memory) WriteBytes(address uint16, src []uint8, size int, raw bool) (int, error) {
	if src == nil {
		return 0, curated.Errorf(InvalidArgument, "nil buffer")
	}
	if size < 0 {
		return 0, curated.Errorf(InvalidArgument, fmt.Sprintf("negative size (%d)", size))
	}

	var err error
	if size > len(src) {
		err = curated.Errorf(Overflow, fmt.Sprintf("%d bytes requested from a buffer of %d", size, len(src)))
		size = len(src)
	}

	for i := 0; i < size; i++ {
		mem.WriteByte(address+uint16(i), src[i], raw)
	}

	return size, err
}

// Dump returns a hex dump of count bytes starting at the address, reading
// each byte with the supplied function. Sixteen bytes per line with the
// address of the first byte of each line.
func Dump(read func(uint16) uint8, address uint16, count int) string {
	s := strings.Builder{}
	for i := 0; i < count; i++ {
		a := address + uint16(i)
		if i%16 == 0 {
			if i > 0 {
				s.WriteString("\n")
			}
			s.WriteString(fmt.Sprintf("%04x:", a))
		}
		s.WriteString(fmt.Sprintf(" %02x", read(a)))
	}
	return s.String()
}
