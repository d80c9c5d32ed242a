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

// ROMSet holds the data of the three ROM images.
type ROMSet struct {
	Basic   []uint8
	Kernal  []uint8
	Charset []uint8
}

// LoadROMs reads the three ROM images from the named files. The size of each
// file must match the size of the ROM exactly. Any failure is returned as a
// BiosLoadFailure.
func LoadROMs(basic string, kernal string, charset string) (ROMSet, error) {
	var roms ROMSet
	var err error

	roms.Basic, err = loadROM(basic, memorymap.SizeBASIC)
	if err != nil {
		return ROMSet{}, err
	}
	roms.Kernal, err = loadROM(kernal, memorymap.SizeKERNAL)
	if err != nil {
		return ROMSet{}, err
	}
	roms.Charset, err = loadROM(charset, memorymap.SizeCharset)
	if err != nil {
		return ROMSet{}, err
	}

	return roms, nil
}

func loadROM(filename string, size int) ([]uint8, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf(BiosLoadFailure, curated.Errorf(IOFailure, err))
	}
	if len(data) != size {
		return nil, curated.Errorf(BiosLoadFailure, fmt.Sprintf("%s is %d bytes, expected %d", filename, len(data), size))
	}
	logger.Logf(logger.Allow, "memory", "loaded ROM %s", filename)
	return data, nil
}

// LoadROMs replaces the ROM images of an existing Memory.
func (mem *Memory) LoadROMs(roms ROMSet) {
	mem.basic = fit(roms.Basic, memorymap.SizeBASIC)
	mem.kernal = fit(roms.Kernal, memorymap.SizeKERNAL)
	mem.charset = fit(roms.Charset, memorymap.SizeCharset)
}
