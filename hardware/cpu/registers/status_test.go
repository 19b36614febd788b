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

package registers_test

import (
	"testing"

	"github.com/famiemu/famiemu/hardware/cpu/registers"
	"github.com/famiemu/famiemu/test"
)

func TestStatusRegister(t *testing.T) {
	sr := registers.NewStatusRegister()
	test.ExpectEquality(t, sr.Value(), 0x20)
	test.ExpectEquality(t, sr.String(), "sv-bdizc")

	sr.Sign = true
	sr.Carry = true
	test.ExpectEquality(t, sr.Value(), 0xa1)
	test.ExpectEquality(t, sr.String(), "Sv-bdizC")

	// loading a value with the unused bit clear does not change Value()
	sr.Load(0x4e)
	test.ExpectEquality(t, sr.Value(), 0x6e)
	test.ExpectSuccess(t, sr.Overflow)
	test.ExpectSuccess(t, sr.DecimalMode)
	test.ExpectSuccess(t, sr.InterruptDisable)
	test.ExpectSuccess(t, sr.Zero)
	test.ExpectFailure(t, sr.Carry)

	sr.Reset()
	test.ExpectEquality(t, sr.Value(), 0x20)
}

func TestFlags(t *testing.T) {
	sr := registers.NewStatusRegister()

	sr.SetFlag(registers.FlagBreak, true)
	test.ExpectSuccess(t, sr.Break)
	test.ExpectSuccess(t, sr.Flag(registers.FlagBreak))
	test.ExpectEquality(t, sr.Value(), 0x30)

	sr.SetFlag(registers.FlagUnused, false)
	test.ExpectSuccess(t, sr.Flag(registers.FlagUnused))

	sr.SetFlag(registers.FlagBreak, false)
	test.ExpectFailure(t, sr.Flag(registers.FlagBreak))

	for i, name := range []string{"C", "Z", "I", "D", "B", "-", "V", "N"} {
		f := registers.Flag(i)
		test.ExpectEquality(t, f.String(), name)
		test.ExpectEquality(t, f.Mask(), uint8(1<<i))
	}

	f, ok := registers.ParseFlag("s")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, f, registers.FlagSign)

	f, ok = registers.ParseFlag("v")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, f, registers.FlagOverflow)

	_, ok = registers.ParseFlag("x")
	test.ExpectFailure(t, ok)
}
