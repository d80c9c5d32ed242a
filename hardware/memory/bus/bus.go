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
	"fmt"

	"github.com/valerino/vc64-emu-sub000/curated"
	"github.com/valerino/vc64-emu-sub000/hardware/memory/banks"
	"github.com/valerino/vc64-emu-sub000/hardware/memory/cpubus"
	"github.com/valerino/vc64-emu-sub000/hardware/memory/memorymap"
	"github.com/valerino/vc64-emu-sub000/logger"
)

// AttachError is returned by Attach() when a device can not be attached.
const AttachError = "bus: attach: %v"

// Device is a memory mapped device in the IO area. The address passed to
// Read() and Write() is the full 16 bit address.
type Device interface {
	Label() string
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// Memory is the part of the memory package that the bus needs.
type Memory interface {
	cpubus.Memory
	Region(address uint16) banks.Region
	Reset()
}

// Resetter is implemented by devices that have a power on state.
type Resetter interface {
	Reset()
}

// the IO area is sixteen pages long
const ioPages = 16

// Bus implements the cpubus.Memory interface.
type Bus struct {
	mem     Memory
	devices [ioPages]Device
}

// NewBus is the preferred method of initialisation for the Bus type.
func NewBus(mem Memory) *Bus {
	return &Bus{mem: mem}
}

// Attach a device to the pages covering the address range first to last.
// Both addresses must be in the IO area. A page that already has a device is
// not changed and an error is returned.
func (b *Bus) Attach(dev Device, first uint16, last uint16) error {
	if first < memorymap.OriginIO || last > memorymap.MemtopIO || first > last {
		return curated.Errorf(AttachError, fmt.Sprintf("%s: range $%04x-$%04x is not in the IO area", dev.Label(), first, last))
	}

	f := (first - memorymap.OriginIO) >> 8
	l := (last - memorymap.OriginIO) >> 8

	for p := f; p <= l; p++ {
		if b.devices[p] != nil {
			return curated.Errorf(AttachError, fmt.Sprintf("%s: page $%02x already has %s", dev.Label(), p+(memorymap.OriginIO>>8), b.devices[p].Label()))
		}
	}

	for p := f; p <= l; p++ {
		b.devices[p] = dev
	}

	logger.Logf(logger.Allow, "bus", "attached %s at $%04x-$%04x", dev.Label(), first, last)

	return nil
}

// Device returns the device attached to the page of the address, if there is
// one.
func (b *Bus) Device(address uint16) Device {
	if address < memorymap.OriginIO || address > memorymap.MemtopIO {
		return nil
	}
	return b.devices[(address-memorymap.OriginIO)>>8]
}

// device returns the device that should handle the address for the current
// bank configuration, or nil if memory should handle it.
func (b *Bus) device(address uint16) Device {
	if address < memorymap.OriginIO || address > memorymap.MemtopIO {
		return nil
	}
	if b.mem.Region(address) != banks.IODevices {
		return nil
	}
	return b.devices[(address-memorymap.OriginIO)>>8]
}

// Read implements the cpubus.Memory interface.
func (b *Bus) Read(address uint16) uint8 {
	if dev := b.device(address); dev != nil {
		return dev.Read(address)
	}
	return b.mem.Read(address)
}

// Write implements the cpubus.Memory interface.
func (b *Bus) Write(address uint16, data uint8) {
	if dev := b.device(address); dev != nil {
		dev.Write(address, data)
		return
	}
	b.mem.Write(address, data)
}

// Reset implements the cpubus.Resetter interface. Memory and every device
// with a power on state are reset.
func (b *Bus) Reset() {
	b.mem.Reset()

	var last Device
	for _, dev := range b.devices {
		if dev == nil || dev == last {
			continue
		}
		last = dev
		if r, ok := dev.(Resetter); ok {
			r.Reset()
		}
	}
}
