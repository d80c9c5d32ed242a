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

// Package banks decides which memory store answers an address in the C64.
//
// The C64 PLA selects RAM, one of the three ROMs, the IO area or cartridge
// ROM for each page of memory. The selection depends on five lines: LORAM,
// HIRAM and CHAREN from the processor port, and GAME and EXROM from the
// cartridge port. The five lines are held in a Latch.
//
// Classify() is a pure function of a Latch and an address. The Decoder type
// holds the current Latch and a table of regions, one per page, that is
// rebuilt whenever the latch changes.
package banks
