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

package bus_test

import (
	"testing"

	"github.com/valerino/vc64-emu-sub000/curated"
	"github.com/valerino/vc64-emu-sub000/hardware/memory"
	"github.com/valerino/vc64-emu-sub000/hardware/memory/bus"
	"github.com/valerino/vc64-emu-sub000/test"
)

// a device that records the last access
type testDevice struct {
	reads  int
	writes int
	last   uint16
	value  uint8
	resets int
}

func (d *testDevice) Label() string {
	return "test device"
}

func (d *testDevice) Read(address uint16) uint8 {
	d.reads++
	d.last = address
	return d.value
}

func (d *testDevice) Write(address uint16, data uint8) {
	d.writes++
	d.last = address
	d.value = data
}

func (d *testDevice) Reset() {
	d.resets++
}

func TestRouting(t *testing.T) {
	mem := memory.NewMemory(memory.ROMSet{})
	b := bus.NewBus(mem)

	dev := &testDevice{value: 0x55}
	test.DemandSuccess(t, b.Attach(dev, 0xd000, 0xd3ff))
	test.ExpectEquality(t, b.Device(0xd3ff), bus.Device(dev))
	test.ExpectSuccess(t, b.Device(0xd400) == nil)

	// IO is mapped in at power on
	test.ExpectEquality(t, b.Read(0xd020), 0x55)
	test.ExpectEquality(t, dev.last, 0xd020)
	b.Write(0xd021, 0x06)
	test.ExpectEquality(t, dev.value, 0x06)
	test.ExpectEquality(t, mem.ReadByte(0xd021, true), 0x00)

	// unclaimed IO pages fall through to memory
	b.Write(0xd400, 0x12)
	test.ExpectEquality(t, mem.ReadByte(0xd400, true), 0x12)
	test.ExpectEquality(t, b.Read(0xd400), 0x12)

	// addresses outside of the IO area never reach the device
	b.Write(0xc000, 0x34)
	test.ExpectEquality(t, dev.writes, 1)
	test.ExpectEquality(t, b.Read(0xc000), 0x34)

	// bank out IO in favour of the character ROM. the device is no longer
	// consulted
	b.Write(0x0001, 0x33)
	reads := dev.reads
	_ = b.Read(0xd020)
	test.ExpectEquality(t, dev.reads, reads)

	// all RAM. writes go to memory
	b.Write(0x0001, 0x30)
	b.Write(0xd020, 0x77)
	test.ExpectEquality(t, mem.ReadByte(0xd020, true), 0x77)
	test.ExpectEquality(t, dev.value, 0x06)
}

func TestAttach(t *testing.T) {
	b := bus.NewBus(memory.NewMemory(memory.ROMSet{}))

	err := b.Attach(&testDevice{}, 0xc000, 0xd0ff)
	test.ExpectSuccess(t, curated.Is(err, bus.AttachError))

	err = b.Attach(&testDevice{}, 0xd100, 0xd000)
	test.ExpectSuccess(t, curated.Is(err, bus.AttachError))

	test.ExpectSuccess(t, b.Attach(&testDevice{}, 0xd000, 0xd0ff))
	err = b.Attach(&testDevice{}, 0xd0ff, 0xd1ff)
	test.ExpectSuccess(t, curated.Is(err, bus.AttachError))

	// the failed attach did not claim the free page
	test.ExpectSuccess(t, b.Device(0xd100) == nil)
}

func TestColorRAM(t *testing.T) {
	mem := memory.NewMemory(memory.ROMSet{})
	b := bus.NewBus(mem)
	c := bus.NewColorRAM()
	test.DemandSuccess(t, b.Attach(c, 0xd800, 0xdbff))

	b.Write(0xd800, 0xff)
	test.ExpectEquality(t, b.Read(0xd800), 0x0f)
	b.Write(0xdbff, 0x31)
	test.ExpectEquality(t, b.Read(0xdbff), 0x01)

	// colour RAM survives banking but is reset with the bus
	b.Write(0x0001, 0x30)
	b.Write(0x0001, 0x37)
	test.ExpectEquality(t, b.Read(0xd800), 0x0f)

	b.Reset()
	test.ExpectEquality(t, b.Read(0xd800), 0x00)
}

func TestReset(t *testing.T) {
	mem := memory.NewMemory(memory.ROMSet{})
	b := bus.NewBus(mem)
	dev := &testDevice{}
	test.DemandSuccess(t, b.Attach(dev, 0xdc00, 0xddff))

	mem.Write(0x1000, 0xff)
	b.Reset()

	// a device attached to more than one page is only reset once
	test.ExpectEquality(t, dev.resets, 1)
	test.ExpectEquality(t, mem.Read(0x1000), 0x00)
}
