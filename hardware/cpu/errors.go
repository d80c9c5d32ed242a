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

// Sentinel error patterns returned by the CPU.
const (
	InvalidOpcodeState = "cpu: invalid opcode state: %v"
	QuitRequested      = "cpu: quit requested"
	SelfTestPassed     = "cpu: self-test passed after %d cycles"
	SelfTestStalled    = "cpu: self-test stalled at $%04x"
)
