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

// Step the emulator state one CPU instruction. The forceBreak argument is
// passed to the debugger, if one is attached.
//
// A queued program is loaded after the instruction if the KERNAL has reached
// its keyboard wait loop.
func (c *C64) Step(forceBreak bool) (int, error) {
	cycles, err := c.CPU.Step(c.Debugger != nil, forceBreak)
	if err != nil {
		return cycles, err
	}

	if err := c.loadPendingProgram(); err != nil {
		return cycles, err
	}

	return cycles, nil
}
