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

package banks

// Classify returns the region that answers an address for the given latch.
// The rules follow the PLA truth table, page by page. Any combination not
// covered by a rule is RAM.
func Classify(latch Latch, address uint16) Region {
	page := address >> 8

	loram := latch.Loram()
	hiram := latch.Hiram()
	charen := latch.Charen()
	game := latch.Game()
	exrom := latch.Exrom()
	ultimax := latch.Ultimax()

	switch {
	case page < 0x10:
		return RAM

	case page < 0x80:
		if ultimax {
			return Undefined
		}

	case page < 0xa0:
		if ultimax {
			return CartROMLo
		}
		if loram && hiram && !exrom {
			return CartROMLo
		}

	case page < 0xc0:
		if ultimax {
			return Undefined
		}
		if !game && !exrom && hiram {
			return CartROMHi
		}
		if loram && hiram && game {
			return BasicROM
		}

	case page < 0xd0:
		if ultimax {
			return Undefined
		}

	case page < 0xe0:
		if ultimax {
			return IODevices
		}
		if !loram && !hiram {
			return RAM
		}
		if charen {
			return IODevices
		}
		if !game && !exrom && !hiram {
			return RAM
		}
		return CharsetROM

	default:
		if ultimax {
			return CartROMHi
		}
		if hiram {
			return KernalROM
		}
	}

	return RAM
}
