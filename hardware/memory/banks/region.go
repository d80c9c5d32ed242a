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

// Region is the classification of an address.
type Region int

// List of regions.
const (
	RAM Region = iota
	BasicROM
	KernalROM
	CharsetROM
	CartROMLo
	CartROMHi
	IODevices
	Undefined
)

func (r Region) String() string {
	switch r {
	case RAM:
		return "RAM"
	case BasicROM:
		return "BASIC"
	case KernalROM:
		return "KERNAL"
	case CharsetROM:
		return "CHAR"
	case CartROMLo:
		return "CARTLO"
	case CartROMHi:
		return "CARTHI"
	case IODevices:
		return "IO"
	case Undefined:
		return "undefined"
	}
	return "unknown region"
}

// IsROM returns true if the region is one of the three C64 ROMs.
func (r Region) IsROM() bool {
	return r == BasicROM || r == KernalROM || r == CharsetROM
}
