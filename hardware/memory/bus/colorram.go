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

package bus

import (
	"github.com/valerino/vc64-emu-sub000/hardware/memory/memorymap"
)

// ColorRAM is the 1k of four bit RAM used by the video chip for character
// colours. The upper nibble is not connected and reads as zero.
type ColorRAM struct {
	data [memorymap.MemtopColorRAM - memorymap.OriginColorRAM + 1]uint8
}

// NewColorRAM is the preferred method of initialisation for the ColorRAM type.
func NewColorRAM() *ColorRAM {
	return &ColorRAM{}
}

// Label implements the Device interface.
func (c *ColorRAM) Label() string {
	return "color RAM"
}

// Read implements the Device interface.
func (c *ColorRAM) Read(address uint16) uint8 {
	return c.data[address-memorymap.OriginColorRAM]
}

// Write implements the Device interface.
func (c *ColorRAM) Write(address uint16, data uint8) {
	c.data[address-memorymap.OriginColorRAM] = data & 0x0f
}

// Reset implements the Resetter interface.
func (c *ColorRAM) Reset() {
	clear(c.data[:])
}
