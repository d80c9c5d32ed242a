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
	"os"
	"os/signal"
	"time"

	"github.com/valerino/vc64-emu-sub000/hardware/clocks"
	"github.com/valerino/vc64-emu-sub000/logger"
	"github.com/valerino/vc64-emu-sub000/translate"
)

// Run sets the emulation running as quickly as possible. The loop ends when:
//
//   - Step() returns an error. The error is returned by Run()
//   - the CPU has been killed by a JAM instruction
//   - continueCheck() returns false or an error
//
// An interrupt signal (ctrl-c) forces a break into the debugger if there is
// one. Otherwise it ends the loop.
func (c *C64) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	startTime := time.Now()
	startCycles := c.CPU.Cycles
	defer func() {
		logger.Log(logger.Allow, "c64", c.Summary(c.CPU.Cycles-startCycles, time.Since(startTime)))
	}()

	for {
		var forceBreak bool

		select {
		case <-intChan:
			if c.Debugger == nil {
				logger.Log(logger.Allow, "c64", "interrupted")
				return nil
			}
			forceBreak = true
		default:
		}

		cycles, err := c.Step(forceBreak)
		if err != nil {
			return err
		}
		if cycles == -1 {
			return nil
		}

		if c.CPU.Killed {
			logger.Logf(logger.Allow, "c64", "cpu killed at $%04x", c.CPU.LastResult.Address)
			return nil
		}

		ok, err := continueCheck()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}

// Summary formats a cycle count and the time taken to run those cycles.
func (c *C64) Summary(cycles uint64, elapsed time.Duration) string {
	speed := clocks.Speed(cycles, elapsed.Seconds())
	return translate.From("ran %s in %s (%.3f MHz, %.0f%% of PAL)",
		translate.Cycles(cycles), elapsed.Round(time.Millisecond), speed, speed/clocks.PAL*100)
}
