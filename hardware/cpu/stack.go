// This file is part of Famiemu.
//
// Famiemu is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Famiemu is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Famiemu.  If not, see <https://www.gnu.org/licenses/>.

package cpu

// the stack occupies the page at 0x0100. the stack pointer always points at
// the next free slot and wraps within the page.

func (mc *CPU) push8(v uint8) error {
	err := mc.write8Bit(mc.SP.Address(), v)
	if err != nil {
		return err
	}
	mc.SP.Decrement()
	return nil
}

func (mc *CPU) pop8() (uint8, error) {
	mc.SP.Increment()
	return mc.read8Bit(mc.SP.Address())
}

// push16 pushes the high byte before the low byte.
func (mc *CPU) push16(v uint16) error {
	err := mc.push8(uint8(v >> 8))
	if err != nil {
		return err
	}
	return mc.push8(uint8(v))
}

// pop16 pops the low byte before the high byte.
func (mc *CPU) pop16() (uint16, error) {
	lo, err := mc.pop8()
	if err != nil {
		return 0, err
	}
	hi, err := mc.pop8()
	if err != nil {
		return 0, err
	}
	return (uint16(hi) << 8) | uint16(lo), nil
}
