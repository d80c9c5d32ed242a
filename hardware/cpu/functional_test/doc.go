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

// Package functional_test runs the 6502 functional test written by Klaus
// Dormann through the CPU's self-test mechanism.
// https://github.com/Klaus2m5/6502_65C02_functional_tests
//
// The binary is not part of the repository. Assemble 6502_functional_test.a65
// with the ROM_vectors test disabled and place the binary at
// testdata/6502_functional_test.bin. The test is skipped otherwise. The
// success address in the test (and in the default configuration) assumes the
// binary was assembled without other changes.
package functional_test
