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

// Package bus sits between the CPU and the memory package. Devices such as
// the video and IO chips are attached to pages of the IO area and receive the
// reads and writes for those pages whenever the bank configuration maps the IO
// area in. Everything else goes to memory.
//
// Only colour RAM is implemented in this package. Other devices implement the
// Device interface and are attached by the owner of the bus.
package bus
