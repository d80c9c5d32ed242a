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

import "strings"

// Latch holds the five lines that control bank selection. The lines are
// active high except GAME and EXROM which are pulled high when no cartridge
// is inserted.
type Latch uint8

// Bits in the latch.
const (
	LORAM  Latch = 0x01
	HIRAM  Latch = 0x02
	CHAREN Latch = 0x04
	GAME   Latch = 0x08
	EXROM  Latch = 0x10

	// the bits that come from the processor port
	portBits = LORAM | HIRAM | CHAREN
)

// PowerOn is the value of the latch when the machine is switched on. All
// lines are high.
const PowerOn = LORAM | HIRAM | CHAREN | GAME | EXROM

// Set updates the LORAM, HIRAM and CHAREN lines from bits 0 to 2 of the value
// written to the processor port. The cartridge lines are unchanged.
func (l *Latch) Set(control uint8) {
	*l = (*l &^ portBits) | (Latch(control) & portBits)
}

// SetCartridge sets the GAME and EXROM lines.
func (l *Latch) SetCartridge(game bool, exrom bool) {
	*l &^= GAME | EXROM
	if game {
		*l |= GAME
	}
	if exrom {
		*l |= EXROM
	}
}

// Loram returns the state of the LORAM line.
func (l Latch) Loram() bool {
	return l&LORAM == LORAM
}

// Hiram returns the state of the HIRAM line.
func (l Latch) Hiram() bool {
	return l&HIRAM == HIRAM
}

// Charen returns the state of the CHAREN line.
func (l Latch) Charen() bool {
	return l&CHAREN == CHAREN
}

// Game returns the state of the GAME line.
func (l Latch) Game() bool {
	return l&GAME == GAME
}

// Exrom returns the state of the EXROM line.
func (l Latch) Exrom() bool {
	return l&EXROM == EXROM
}

// Ultimax returns true if the cartridge lines select ultimax mode. In this
// mode most of the address space is undefined.
func (l Latch) Ultimax() bool {
	return !l.Game() && l.Exrom()
}

func (l Latch) String() string {
	s := strings.Builder{}
	flag := func(set bool, name string) {
		if set {
			s.WriteString(strings.ToUpper(name))
		} else {
			s.WriteString(name)
		}
		s.WriteRune(' ')
	}
	flag(l.Loram(), "loram")
	flag(l.Hiram(), "hiram")
	flag(l.Charen(), "charen")
	flag(l.Game(), "game")
	flag(l.Exrom(), "exrom")
	return strings.TrimSpace(s.String())
}
