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

package cpu

import "github.com/valerino/vc64-emu-sub000/curated"

// SelfTest describes a program that tests the CPU from inside the emulation.
// Klaus Dormann's 6502 functional test is the intended program.
type SelfTest struct {
	// the binary image of the program
	Program []byte

	// the address at which the first byte of Program is placed
	Load uint16

	// the address at which execution begins
	Origin uint16

	// the program has completed successfully when the PC reaches this
	// address
	Success uint16
}

// checkSelfTest is called at the end of every instruction. pc is the address
// of the instruction just executed.
func (mc *CPU) checkSelfTest(pc uint16) error {
	if !mc.selfTestRunning {
		return nil
	}

	if mc.PC.Address() == mc.SelfTest.Success {
		mc.selfTestRunning = false
		return curated.Errorf(SelfTestPassed, mc.Cycles)
	}

	// the test program signals failure by jumping or branching to itself
	if mc.PC.Address() == pc {
		mc.selfTestRunning = false
		return curated.Errorf(SelfTestStalled, pc)
	}

	return nil
}
