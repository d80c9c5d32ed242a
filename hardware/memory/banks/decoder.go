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

// Decoder holds the current latch and the region of every page for that
// latch. The page table is rebuilt every time the latch changes so a lookup
// is never stale.
type Decoder struct {
	latch Latch
	pages [256]Region
}

// NewDecoder is the preferred method of initialisation for the Decoder type.
// The latch has the power on value.
func NewDecoder() *Decoder {
	dec := &Decoder{}
	dec.Reset()
	return dec
}

// Reset the latch to the power on value.
func (dec *Decoder) Reset() {
	dec.Load(PowerOn)
}

// Latch returns the current latch.
func (dec *Decoder) Latch() Latch {
	return dec.latch
}

// Load replaces the entire latch.
func (dec *Decoder) Load(latch Latch) {
	dec.latch = latch
	dec.rebuild()
}

// SetControl updates the latch from the value written to the processor port.
func (dec *Decoder) SetControl(control uint8) {
	l := dec.latch
	l.Set(control)
	if l != dec.latch {
		dec.Load(l)
	}
}

// SetCartridge updates the cartridge lines of the latch.
func (dec *Decoder) SetCartridge(game bool, exrom bool) {
	l := dec.latch
	l.SetCartridge(game, exrom)
	if l != dec.latch {
		dec.Load(l)
	}
}

// Region returns the region of the address for the current latch.
func (dec *Decoder) Region(address uint16) Region {
	return dec.pages[address>>8]
}

func (dec *Decoder) rebuild() {
	for p := range dec.pages {
		dec.pages[p] = Classify(dec.latch, uint16(p)<<8)
	}
}
