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

package hardware

import (
	"fmt"
	"os"

	"github.com/valerino/vc64-emu-sub000/config"
	"github.com/valerino/vc64-emu-sub000/curated"
	"github.com/valerino/vc64-emu-sub000/hardware/cpu"
	"github.com/valerino/vc64-emu-sub000/hardware/memory"
	"github.com/valerino/vc64-emu-sub000/hardware/memory/bus"
	"github.com/valerino/vc64-emu-sub000/hardware/memory/memorymap"
	"github.com/valerino/vc64-emu-sub000/logger"
)

// C64 struct is the main container for the emulated components of the C64.
type C64 struct {
	CPU      *cpu.CPU
	Mem      *memory.Memory
	Bus      *bus.Bus
	ColorRAM *bus.ColorRAM

	// the debugger is not part of the C64 but is attached to it. when it is
	// not nil, every instruction is executed in debug mode
	Debugger cpu.Hook

	cfg config.Config

	// program waiting for the KERNAL to be ready
	pendingProgram string
}

// NewC64 creates a new C64 and everything associated with the hardware. The
// ROMs named in the configuration are loaded and an error is returned if any
// of them can not be loaded.
func NewC64(cfg config.Config) (*C64, error) {
	roms, err := memory.LoadROMs(cfg.ROMs.Basic, cfg.ROMs.Kernal, cfg.ROMs.Charset)
	if err != nil {
		return nil, err
	}
	return NewC64WithROMs(cfg, roms)
}

// NewC64WithROMs creates a new C64 using ROM images that have already been
// loaded. Missing ROM images are replaced by zero filled images.
func NewC64WithROMs(cfg config.Config, roms memory.ROMSet) (*C64, error) {
	c := &C64{cfg: cfg}

	c.Mem = memory.NewMemory(roms)
	c.Bus = bus.NewBus(c.Mem)

	c.ColorRAM = bus.NewColorRAM()
	if err := c.Bus.Attach(c.ColorRAM, memorymap.OriginColorRAM, memorymap.MemtopColorRAM); err != nil {
		return nil, err
	}

	c.CPU = cpu.NewCPU(c.Bus)

	return c, nil
}

func (c *C64) String() string {
	return fmt.Sprintf("%s latch=%s", c.CPU, c.Mem.Latch())
}

// AttachDebugger makes the debugger the CPU's hook. A nil value detaches the
// debugger.
func (c *C64) AttachDebugger(dbg cpu.Hook) {
	c.Debugger = dbg
	c.CPU.AttachHook(dbg)
}

// Reset the C64. If selfTest is true the CPU self-test program from the
// configuration is started instead of the KERNAL.
func (c *C64) Reset(selfTest bool) error {
	if selfTest && len(c.CPU.SelfTest.Program) == 0 {
		if err := c.loadSelfTest(); err != nil {
			return err
		}
	}

	if err := c.CPU.Reset(selfTest); err != nil {
		return err
	}

	logger.Logf(logger.Allow, "c64", "reset: %s", c.CPU)

	return nil
}

func (c *C64) loadSelfTest() error {
	st := c.cfg.SelfTest
	if st.Program == "" {
		return curated.Errorf(memory.InvalidArgument, "no self-test program configured")
	}

	data, err := os.ReadFile(st.Program)
	if err != nil {
		return curated.Errorf(memory.IOFailure, err)
	}

	c.CPU.SelfTest = cpu.SelfTest{
		Program: data,
		Load:    st.Load,
		Origin:  st.Origin,
		Success: st.Success,
	}

	return nil
}

// AttachProgram queues a program file to be loaded once the KERNAL has
// finished initialising and is waiting for keyboard input. Loading earlier
// than that would see the program cleared by the BASIC cold start.
func (c *C64) AttachProgram(filename string) {
	c.pendingProgram = filename
	logger.Logf(logger.Allow, "c64", "%s will be loaded when the KERNAL is ready", filename)
}

// loadPendingProgram loads the queued program if the KERNAL is ready.
func (c *C64) loadPendingProgram() error {
	if c.pendingProgram == "" || c.CPU.PC.Address() != memorymap.KernalKeyWait {
		return nil
	}

	filename := c.pendingProgram
	c.pendingProgram = ""

	_, _, err := c.Mem.LoadProgram(filename)
	if err != nil {
		if curated.Is(err, memory.Overflow) {
			logger.Log(logger.Allow, "c64", err)
			return nil
		}
		return err
	}

	return nil
}
