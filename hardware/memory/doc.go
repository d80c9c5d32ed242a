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

// Package memory implements the C64 memory system as seen by the CPU. It owns
// the 64k of RAM and the three ROM images. The banks sub-package decides
// which of them answers a read.
//
// Reads and writes come in two flavours. Mapped access (the default, and the
// only access available through the cpubus.Memory interface) honours the
// current bank configuration. Raw access always goes to RAM. Writes always go
// to RAM whatever the bank configuration because the ROMs cannot be written
// to. A mapped write to the processor port at address one updates the bank
// configuration.
//
// The IO area is not handled here. The bus sub-package sits between the CPU
// and Memory and sends IO addresses to the attached devices.
package memory
