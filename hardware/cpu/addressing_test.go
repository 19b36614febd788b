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

package cpu_test

import (
	"testing"

	"github.com/famiemu/famiemu/hardware/cpu/execution"
	"github.com/famiemu/famiemu/test"
)

func TestZeroPageIndexWrap(t *testing.T) {
	mc, mem := newTestCPU(t, 0x0600)
	mem.putInstructions(0x0001, 0x42)
	mem.putInstructions(0x0101, 0x99)

	// LDX #$02; LDA $FF,X
	origin := mem.putInstructions(0x0600, 0xa2, 0x02, 0xb5, 0xff)
	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 4)
	test.ExpectEquality(t, mc.A.Value(), 0x42)
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.ZeroPageIndexBug)

	// LDY #$03; LDX $FE,Y
	origin = mem.putInstructions(origin, 0xa0, 0x03, 0xb6, 0xfe)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.X.Value(), 0x42)

	// LDX #$02; STA $FF,X
	mem.putInstructions(origin, 0xa2, 0x02, 0x95, 0xff)
	step(t, mc)
	mem.accesses = mem.accesses[:0]
	test.ExpectEquality(t, step(t, mc), 4)
	mem.expectAccesses(t,
		read(0x060a, 0x95),
		read(0x060b, 0xff),
		write(0x0001, 0x42),
	)
	mem.assert(t, 0x0101, 0x99)
}

func TestJmpIndirectBug(t *testing.T) {
	mc, mem := newTestCPU(t, 0x0600)
	mem.putInstructions(0x10ff, 0x34)
	mem.putInstructions(0x1000, 0x12)
	mem.putInstructions(0x1100, 0x56)

	// JMP ($10FF)
	mem.putInstructions(0x0600, 0x6c, 0xff, 0x10)
	test.ExpectEquality(t, step(t, mc), 5)
	test.ExpectEquality(t, mc.PC.Address(), 0x1234)
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.JmpIndirectAddressingBug)

	// the high byte of the target comes from the start of the same page
	mem.expectAccesses(t,
		read(0x0600, 0x6c),
		read(0x0601, 0xff),
		read(0x0602, 0x10),
		read(0x10ff, 0x34),
		read(0x1000, 0x12),
	)

	// JMP ($2000) is not affected by the bug
	mem.putInstructions(0x2000, 0x00, 0x30)
	mem.putInstructions(0x1234, 0x6c, 0x00, 0x20)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), 0x3000)
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.NoBug)
}

func TestIndirectX(t *testing.T) {
	mc, mem := newTestCPU(t, 0x0600)
	mem.putInstructions(0x0002, 0x00, 0x04)
	mem.putInstructions(0x0400, 0x77)

	// LDX #$04; LDA ($FE,X)
	origin := mem.putInstructions(0x0600, 0xa2, 0x04, 0xa1, 0xfe)
	step(t, mc)
	mem.accesses = mem.accesses[:0]
	test.ExpectEquality(t, step(t, mc), 6)
	test.ExpectEquality(t, mc.A.Value(), 0x77)
	mem.expectAccesses(t,
		read(0x0602, 0xa1),
		read(0x0603, 0xfe),
		read(0x0002, 0x00),
		read(0x0003, 0x04),
		read(0x0400, 0x77),
	)

	// the pointer high byte wraps to the start of the zero page
	mem.putInstructions(0x00ff, 0x10)
	mem.putInstructions(0x0000, 0x05)
	mem.putInstructions(0x0510, 0x88)

	// LDX #$00; LDA ($FF,X)
	mem.putInstructions(origin, 0xa2, 0x00, 0xa1, 0xff)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x88)
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.IndexedIndirectAddressingBug)
}

func TestIndirectY(t *testing.T) {
	mc, mem := newTestCPU(t, 0x0600)
	mem.putInstructions(0x0040, 0xf8, 0x20)
	mem.putInstructions(0x20f9, 0x11)
	mem.putInstructions(0x2108, 0x99)

	// LDY #$01; LDA ($40),Y
	origin := mem.putInstructions(0x0600, 0xa0, 0x01, 0xb1, 0x40)
	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 5)
	test.ExpectEquality(t, mc.A.Value(), 0x11)
	test.ExpectFailure(t, mc.LastResult.PageFault)

	// LDY #$10; LDA ($40),Y crosses into page 0x21
	origin = mem.putInstructions(origin, 0xa0, 0x10, 0xb1, 0x40)
	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 6)
	test.ExpectEquality(t, mc.A.Value(), 0x99)
	test.ExpectSuccess(t, mc.LastResult.PageFault)

	// STA ($40),Y takes the same number of cycles whether or not a page is crossed
	mem.putInstructions(origin, 0x91, 0x40)
	test.ExpectEquality(t, step(t, mc), 6)
	test.ExpectFailure(t, mc.LastResult.PageFault)
	mem.assert(t, 0x2108, 0x99)
}

func TestAbsoluteIndexed(t *testing.T) {
	mc, mem := newTestCPU(t, 0x0600)
	mem.putInstructions(0x0300, 0x01)
	mem.putInstructions(0x0301, 0x02)
	mem.putInstructions(0x0000, 0x03)

	// LDX #$01; LDA $02FF,X; LDA $0300,X
	origin := mem.putInstructions(0x0600, 0xa2, 0x01, 0xbd, 0xff, 0x02, 0xbd, 0x00, 0x03)
	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 5)
	test.ExpectEquality(t, mc.A.Value(), 0x01)
	test.ExpectEquality(t, step(t, mc), 4)
	test.ExpectEquality(t, mc.A.Value(), 0x02)

	// LDY #$01; LDA $02FF,Y
	origin = mem.putInstructions(origin, 0xa0, 0x01, 0xb9, 0xff, 0x02)
	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 5)

	// STA $02FF,X and ASL $02FF,X are not affected by the page cross
	origin = mem.putInstructions(origin, 0x9d, 0xff, 0x02, 0x1e, 0xff, 0x02)
	test.ExpectEquality(t, step(t, mc), 5)
	test.ExpectEquality(t, step(t, mc), 7)
	mem.assert(t, 0x0300, 0x02)

	// LDA $FFFF,X wraps to the bottom of memory
	mem.putInstructions(origin, 0xbd, 0xff, 0xff)
	test.ExpectEquality(t, step(t, mc), 5)
	test.ExpectEquality(t, mc.A.Value(), 0x03)
}

func TestReadModifyWriteOrder(t *testing.T) {
	mc, mem := newTestCPU(t, 0x0600)
	mem.putInstructions(0x0300, 0x41)

	// INC $0300
	mem.putInstructions(0x0600, 0xee, 0x00, 0x03)
	step(t, mc)

	// no phantom accesses
	mem.expectAccesses(t,
		read(0x0600, 0xee),
		read(0x0601, 0x00),
		read(0x0602, 0x03),
		read(0x0300, 0x41),
		write(0x0300, 0x42),
	)
}
