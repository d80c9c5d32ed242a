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

// these decimal functions return information about zero and sign bits in
// addition to the carry and overflow. the cpu can use these value to set the
// status flags. this is different to binary addition/subtraction which only
// returns information for the carry and overflow flags.
//
// the flags follow the NMOS 6502 as described in "Decimal Mode" by Bruce
// Clark (appendix A). the zero flag comes from the binary result. the sign
// and overflow flags come from the intermediate result, after the low nibble
// has been adjusted but before the high nibble has.

// AddDecimal adds value to register as though both registers are decimal
// representations. Returns new carry state, zero, overflow, sign bit
// information.
func (r *Register) AddDecimal(val uint8, carry bool) (rcarry, zero, overflow, sign bool) {
	var c int
	if carry {
		c = 1
	}

	a := int(r.value)
	b := int(val)

	zero = uint8(a+b+c) == 0

	lo := (a & 0x0f) + (b & 0x0f) + c
	if lo >= 0x0a {
		lo = ((lo + 0x06) & 0x0f) + 0x10
	}

	t := (a & 0xf0) + (b & 0xf0) + lo

	sign = t&0x80 == 0x80
	overflow = ^(a^b)&(a^t)&0x80 != 0

	if t >= 0xa0 {
		t += 0x60
	}

	r.value = uint8(t)

	return t >= 0x100, zero, overflow, sign
}

// SubtractDecimal subtracts value from register as though both registers are
// decimal representations. Returns new carry state, zero, overflow, sign bit
// information. On the NMOS 6502 only the result is adjusted; the flags are
// those of the equivalent binary subtraction.
func (r *Register) SubtractDecimal(val uint8, carry bool) (rcarry, zero, overflow, sign bool) {
	var c int
	if carry {
		c = 1
	}

	a := int(r.value)
	b := int(val)

	bin := NewAnonRegister(r.value)
	rcarry, overflow = bin.Subtract(val, carry)
	zero = bin.IsZero()
	sign = bin.IsNegative()

	lo := (a & 0x0f) - (b & 0x0f) + c - 1
	if lo < 0 {
		lo = ((lo - 0x06) & 0x0f) - 0x10
	}

	t := (a & 0xf0) - (b & 0xf0) + lo
	if t < 0 {
		t -= 0x60
	}

	r.value = uint8(t & 0xff)

	return rcarry, zero, overflow, sign
}
