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

func TestProgramCounter(t *testing.T) {
	// initialisation
	pc := registers.NewProgramCounter(0)
	test.ExpectEquality(t, pc.Address(), 0)

	// loading & addition
	pc.Load(127)
	test.ExpectEquality(t, pc.Address(), 127)
	test.ExpectFailure(t, pc.Add(2))
	test.ExpectEquality(t, pc.Address(), 129)

	// page crossing
	pc.Load(0x01fe)
	test.ExpectSuccess(t, pc.Add(2))
	test.ExpectEquality(t, pc.String(), "0200")

	// negative offsets are expressed as two's complement
	test.ExpectSuccess(t, pc.Add(0xfffe))
	test.ExpectEquality(t, pc.Address(), 0x01fe)

	// wrap at top of memory
	pc.Load(0xffff)
	pc.Increment()
	test.ExpectEquality(t, pc.Address(), 0x0000)
}

func TestStackPointer(t *testing.T) {
	sp := registers.NewStackPointer(0xfd)
	test.ExpectEquality(t, sp.Address(), 0x01fd)
	test.ExpectEquality(t, sp.String(), "FD")

	sp.Load(0x00)
	sp.Decrement()
	test.ExpectEquality(t, sp.Value(), 0xff)
	test.ExpectEquality(t, sp.Address(), 0x01ff)

	sp.Increment()
	test.ExpectEquality(t, sp.Value(), 0x00)
	test.ExpectEquality(t, sp.Address(), 0x0100)
}
