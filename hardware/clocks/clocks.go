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

// Package clocks defines the speed of the CPU clock in the C64. The values
// are in MHz.
//
// The emulation is not paced to these values. They are used to report how
// fast the emulation is running compared to the real hardware.
package clocks

const (
	PAL  = 0.985248
	NTSC = 1.022727
)

// Speed returns the effective speed in MHz of the given number of cycles
// over the number of seconds. Returns zero if seconds is not positive.
func Speed(cycles uint64, seconds float64) float64 {
	if seconds <= 0 {
		return 0
	}
	return float64(cycles) / seconds / 1000000
}
