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
	"os"

	"github.com/valerino/vc64-emu-sub000/curated"
	"github.com/valerino/vc64-emu-sub000/hardware/memory/memorymap"
	"github.com/valerino/vc64-emu-sub000/logger"
)

// LoadProgram loads a program file into RAM. See LoadProgramBytes() for
// details.
func (mem *Memory) LoadProgram(filename string) (start uint16, end uint16, err error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return 0, 0, curated.Errorf(IOFailure, err)
	}
	start, end, err = mem.LoadProgramBytes(data)
	if err != nil && !curated.Is(err, Overflow) {
		return start, end, err
	}
	logger.Logf(logger.Allow, "memory", "loaded %s at $%04x-$%04x", filename, start, end)
	return start, end, err
}

// LoadProgramBytes loads program data into RAM. The first two bytes of the data
// are the little-endian load address. The rest of the data is copied to RAM
// starting at that address.
//
// The returned end address is the address following the last byte loaded.
// Like the KERNAL end of load pointer it is a 16 bit value, so a program whose
// last byte is at 0xffff has an end address of 0x0000. Data that would run
// past 0xffff is dropped and an Overflow error is returned.
//
// A program loaded at the start of BASIC is made ready to RUN by moving the
// BASIC variable pointers and the KERNAL end of load pointer to the end of the
// program.
func (mem *Memory) LoadProgramBytes(data []uint8) (start uint16, end uint16, err error) {
	if len(data) < 2 {
		return 0, 0, curated.Errorf(InvalidArgument, fmt.Sprintf("program too short (%d bytes)", len(data)))
	}

	start = uint16(data[0]) | uint16(data[1])<<8
	body := data[2:]

	if int(start)+len(body) > 0x10000 {
		err = curated.Errorf(Overflow, fmt.Sprintf("program at $%04x is %d bytes long", start, len(body)))
		body = body[:0x10000-int(start)]
	}

	copy(mem.ram[start:], body)

	// wraps to zero when the last byte is at 0xffff
	end = start + uint16(len(body))

	if start == memorymap.BasicStart {
		mem.WriteWord(memorymap.VARTAB, end, true)
		mem.WriteWord(memorymap.ARYTAB, end, true)
		mem.WriteWord(memorymap.STREND, end, true)
		mem.WriteWord(memorymap.EAL, end, true)
	}

	return start, end, err
}
