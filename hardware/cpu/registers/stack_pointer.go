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

package registers

import "fmt"

// StackPointer represents the S register. The stack always occupies page one
// of memory so the value of the register is an offset into that page.
type StackPointer struct {
	value uint8
}

// NewStackPointer is the preferred method of initialisation for StackPointer.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{value: val}
}

// Label returns an identifying string for the SP.
func (sp StackPointer) Label() string {
	return "SP"
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%02x", sp.value)
}

// Value returns the current offset into page one.
func (sp StackPointer) Value() uint8 {
	return sp.value
}

// Address returns the memory address the stack pointer points to. Always in
// the range 0x0100 to 0x01ff.
func (sp StackPointer) Address() uint16 {
	return 0x0100 | uint16(sp.value)
}

// Load value into stack pointer.
func (sp *StackPointer) Load(val uint8) {
	sp.value = val
}

// Push returns the address to write the pushed value to and moves the stack
// pointer down. A push from 0x00 wraps the stack pointer to 0xff.
func (sp *StackPointer) Push() uint16 {
	addr := sp.Address()
	sp.value--
	return addr
}

// Pop moves the stack pointer up and returns the address of the value to
// pull. A pop from 0xff wraps the stack pointer to 0x00.
func (sp *StackPointer) Pop() uint16 {
	sp.value++
	return sp.Address()
}
