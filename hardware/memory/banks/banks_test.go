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

package banks_test

import (
	"fmt"
	"testing"

	"github.com/valerino/vc64-emu-sub000/hardware/memory/banks"
	"github.com/valerino/vc64-emu-sub000/test"
)

// the region for the four interesting areas of memory for each combination of
// the processor port lines, with no cartridge inserted
func TestStandardModes(t *testing.T) {
	type expected struct {
		basic, io, kernal, low banks.Region
	}

	modes := []expected{
		0: {banks.RAM, banks.RAM, banks.RAM, banks.RAM},
		1: {banks.RAM, banks.CharsetROM, banks.RAM, banks.RAM},
		2: {banks.RAM, banks.CharsetROM, banks.KernalROM, banks.RAM},
		3: {banks.BasicROM, banks.CharsetROM, banks.KernalROM, banks.RAM},
		4: {banks.RAM, banks.RAM, banks.RAM, banks.RAM},
		5: {banks.RAM, banks.IODevices, banks.RAM, banks.RAM},
		6: {banks.RAM, banks.IODevices, banks.KernalROM, banks.RAM},
		7: {banks.BasicROM, banks.IODevices, banks.KernalROM, banks.RAM},
	}

	for m, e := range modes {
		l := banks.PowerOn
		l.Set(uint8(m))
		tag := fmt.Sprintf("mode %d", m)
		test.ExpectEquality(t, banks.Classify(l, 0xa000), e.basic, tag)
		test.ExpectEquality(t, banks.Classify(l, 0xbfff), e.basic, tag)
		test.ExpectEquality(t, banks.Classify(l, 0xd000), e.io, tag)
		test.ExpectEquality(t, banks.Classify(l, 0xdfff), e.io, tag)
		test.ExpectEquality(t, banks.Classify(l, 0xe000), e.kernal, tag)
		test.ExpectEquality(t, banks.Classify(l, 0xffff), e.kernal, tag)
		test.ExpectEquality(t, banks.Classify(l, 0x8000), e.low, tag)
		test.ExpectEquality(t, banks.Classify(l, 0xc000), banks.RAM, tag)
		test.ExpectEquality(t, banks.Classify(l, 0x0000), banks.RAM, tag)
		test.ExpectEquality(t, banks.Classify(l, 0x0fff), banks.RAM, tag)
	}
}

func TestCartridgeModes(t *testing.T) {
	// 8k cartridge
	l := banks.PowerOn
	l.SetCartridge(true, false)
	test.ExpectEquality(t, banks.Classify(l, 0x8000), banks.CartROMLo)
	test.ExpectEquality(t, banks.Classify(l, 0x9fff), banks.CartROMLo)
	test.ExpectEquality(t, banks.Classify(l, 0xa000), banks.BasicROM)

	// 16k cartridge
	l.SetCartridge(false, false)
	test.ExpectEquality(t, banks.Classify(l, 0x8000), banks.CartROMLo)
	test.ExpectEquality(t, banks.Classify(l, 0xa000), banks.CartROMHi)
	test.ExpectEquality(t, banks.Classify(l, 0xd000), banks.IODevices)
	test.ExpectEquality(t, banks.Classify(l, 0xe000), banks.KernalROM)

	// 16k cartridge with HIRAM low maps RAM under the character ROM
	l.Set(0x05)
	test.ExpectEquality(t, banks.Classify(l, 0xd000), banks.IODevices)
	l.Set(0x01)
	test.ExpectEquality(t, banks.Classify(l, 0xd000), banks.RAM)

	// ultimax
	l = banks.PowerOn
	l.SetCartridge(false, true)
	test.ExpectSuccess(t, l.Ultimax())
	test.ExpectEquality(t, banks.Classify(l, 0x0fff), banks.RAM)
	test.ExpectEquality(t, banks.Classify(l, 0x1000), banks.Undefined)
	test.ExpectEquality(t, banks.Classify(l, 0x7fff), banks.Undefined)
	test.ExpectEquality(t, banks.Classify(l, 0x8000), banks.CartROMLo)
	test.ExpectEquality(t, banks.Classify(l, 0xa000), banks.Undefined)
	test.ExpectEquality(t, banks.Classify(l, 0xc000), banks.Undefined)
	test.ExpectEquality(t, banks.Classify(l, 0xd000), banks.IODevices)
	test.ExpectEquality(t, banks.Classify(l, 0xe000), banks.CartROMHi)

	// ultimax ignores the processor port
	l.Set(0x00)
	test.ExpectEquality(t, banks.Classify(l, 0xd000), banks.IODevices)
	test.ExpectEquality(t, banks.Classify(l, 0xe000), banks.CartROMHi)
}

func TestLatch(t *testing.T) {
	l := banks.PowerOn
	test.ExpectEquality(t, l.String(), "LORAM HIRAM CHAREN GAME EXROM")

	// only the bottom three bits of the control byte are used
	l.Set(0xf8)
	test.ExpectEquality(t, l, banks.GAME|banks.EXROM)
	test.ExpectEquality(t, l.String(), "loram hiram charen GAME EXROM")

	l.Set(0x02)
	test.ExpectFailure(t, l.Loram())
	test.ExpectSuccess(t, l.Hiram())
	test.ExpectSuccess(t, l.Game())

	l.SetCartridge(false, false)
	test.ExpectEquality(t, l, banks.HIRAM)
}

func TestDecoder(t *testing.T) {
	dec := banks.NewDecoder()
	test.ExpectEquality(t, dec.Latch(), banks.PowerOn)
	test.ExpectEquality(t, dec.Region(0xa123), banks.BasicROM)
	test.ExpectEquality(t, dec.Region(0xe123), banks.KernalROM)
	test.ExpectEquality(t, dec.Region(0xd123), banks.IODevices)

	// LORAM and HIRAM low. same addresses are now RAM
	dec.SetControl(0x04)
	test.ExpectEquality(t, dec.Region(0xa123), banks.RAM)
	test.ExpectEquality(t, dec.Region(0xe123), banks.RAM)
	test.ExpectEquality(t, dec.Region(0xd123), banks.RAM)

	dec.SetControl(0x03)
	test.ExpectEquality(t, dec.Region(0xd123), banks.CharsetROM)

	dec.SetCartridge(false, true)
	test.ExpectEquality(t, dec.Region(0xe000), banks.CartROMHi)

	dec.Reset()
	test.ExpectEquality(t, dec.Latch(), banks.PowerOn)

	// the decoder agrees with Classify() for every page of every latch value
	for l := banks.Latch(0); l <= banks.PowerOn; l++ {
		dec.Load(l)
		for p := 0; p < 256; p++ {
			a := uint16(p<<8 | 0x80)
			test.ExpectEquality(t, dec.Region(a), banks.Classify(l, a))
		}
	}
}

func TestRegion(t *testing.T) {
	test.ExpectSuccess(t, banks.BasicROM.IsROM())
	test.ExpectSuccess(t, banks.CharsetROM.IsROM())
	test.ExpectFailure(t, banks.CartROMHi.IsROM())
	test.ExpectFailure(t, banks.IODevices.IsROM())
	test.ExpectEquality(t, banks.Region(99).String(), "unknown region")
}
