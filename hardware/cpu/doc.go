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

// Package cpu emulates the 6510 microprocessor found in the Commodore 64. Like
// all 8-bit processors of the era, the 6510 executes instructions according to
// the single byte value read from an address pointed to by the program
// counter. This single byte is the opcode and is looked up in the instruction
// table. The instruction definition for that opcode is then used to move
// execution of the program forward.
//
// The CPU type requires an implementation of the cpubus.Memory interface as
// the sole argument to NewCPU(). In the full emulation this is the device
// dispatcher from the bus package.
//
// The emulation is instruction level. Step() executes one complete instruction
// and returns the number of cycles it took, including penalties for page
// crossing and taken branches.
//
//	mc := cpu.NewCPU(mem)
//	err := mc.Reset(false)
//
//	for !mc.Killed {
//		cycles, err := mc.Step(false, false)
//		if err != nil {
//			break
//		}
//	}
//
// The LastResult field can be probed for information about the last
// instruction executed. See the execution package.
//
// A Hook can be attached with AttachHook(). When Step() is called with the
// debug flag the hook sees every instruction after it has been decoded and
// before it is executed, and can ask for the instruction to be skipped or for
// execution to stop. The debugger package is the main implementation.
//
// Interrupts are raised by calling IRQ() or NMI() between instructions.
//
// Reset(true) starts a self-test program, as described by the SelfTest field,
// instead of the KERNAL. The result of the self-test is returned by Step() as
// a SelfTestPassed or SelfTestStalled error.
package cpu
