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
	"strings"
	"testing"

	"github.com/famiemu/famiemu/curated"
	"github.com/famiemu/famiemu/hardware/cpu"
	"github.com/famiemu/famiemu/hardware/memory/cpubus"
	"github.com/famiemu/famiemu/logger"
	"github.com/famiemu/famiemu/test"
)

func TestBranchTiming(t *testing.T) {
	mc, mem := newTestCPU(t, 0x0600)

	// LDA #$01; BNE +2; (skipped); BEQ +2
	mem.putInstructions(0x0600, 0xa9, 0x01, 0xd0, 0x02, 0xea, 0xea, 0xf0, 0x02)
	step(t, mc)

	// taken branch in the same page
	test.ExpectEquality(t, step(t, mc), 3)
	test.ExpectEquality(t, mc.PC.Address(), 0x0606)
	test.ExpectSuccess(t, mc.LastResult.BranchSuccess)
	test.ExpectFailure(t, mc.LastResult.PageFault)

	// branch not taken
	test.ExpectEquality(t, step(t, mc), 2)
	test.ExpectEquality(t, mc.PC.Address(), 0x0608)
	test.ExpectFailure(t, mc.LastResult.BranchSuccess)
}

func TestBranchPageCross(t *testing.T) {
	// the zero flag is clear after reset so BNE will always branch

	// BNE +4 from 0x06FC. the instruction after the branch is at 0x06FE
	mc, mem := newTestCPU(t, 0x06fc)
	mem.putInstructions(0x06fc, 0xd0, 0x04)
	test.ExpectEquality(t, step(t, mc), 4)
	test.ExpectEquality(t, mc.PC.Address(), 0x0702)
	test.ExpectSuccess(t, mc.LastResult.PageFault)

	// BNE -4 from 0x0700
	mc, mem = newTestCPU(t, 0x0700)
	mem.putInstructions(0x0700, 0xd0, 0xfc)
	test.ExpectEquality(t, step(t, mc), 4)
	test.ExpectEquality(t, mc.PC.Address(), 0x06fe)

	// BNE +2 from 0x06FE. the branch instruction is in a different page to
	// the target but the instruction after the branch is not
	mc, mem = newTestCPU(t, 0x06fe)
	mem.putInstructions(0x06fe, 0xd0, 0x02)
	test.ExpectEquality(t, step(t, mc), 3)
	test.ExpectEquality(t, mc.PC.Address(), 0x0702)
	test.ExpectFailure(t, mc.LastResult.PageFault)
}

func TestAllBranches(t *testing.T) {
	type branchTest struct {
		opcode uint8
		setup  func(mc *cpu.CPU)
	}

	for _, b := range []branchTest{
		{0x90, func(mc *cpu.CPU) { mc.Status.Carry = false }},    // BCC
		{0xb0, func(mc *cpu.CPU) { mc.Status.Carry = true }},     // BCS
		{0xf0, func(mc *cpu.CPU) { mc.Status.Zero = true }},      // BEQ
		{0xd0, func(mc *cpu.CPU) { mc.Status.Zero = false }},     // BNE
		{0x30, func(mc *cpu.CPU) { mc.Status.Sign = true }},      // BMI
		{0x10, func(mc *cpu.CPU) { mc.Status.Sign = false }},     // BPL
		{0x70, func(mc *cpu.CPU) { mc.Status.Overflow = true }},  // BVS
		{0x50, func(mc *cpu.CPU) { mc.Status.Overflow = false }}, // BVC
	} {
		mc, mem := newTestCPU(t, 0x0600)
		mem.putInstructions(0x0600, b.opcode, 0x10)
		b.setup(mc)
		test.ExpectEquality(t, step(t, mc), 3, b.opcode)
		test.ExpectEquality(t, mc.PC.Address(), 0x0612, b.opcode)
	}
}

func TestSubroutine(t *testing.T) {
	mc, mem := newTestCPU(t, 0x0600)

	// JSR $0700; ... RTS
	mem.putInstructions(0x0600, 0x20, 0x00, 0x07)
	mem.putInstructions(0x0700, 0x60)

	test.ExpectEquality(t, step(t, mc), 6)
	test.ExpectEquality(t, mc.PC.Address(), 0x0700)
	test.ExpectEquality(t, mc.SP.Value(), 0xfb)

	// the return address is the last byte of the JSR instruction. the
	// operand is read before the stack is written to
	mem.expectAccesses(t,
		read(0x0600, 0x20),
		read(0x0601, 0x00),
		read(0x0602, 0x07),
		write(0x01fd, 0x06),
		write(0x01fc, 0x02),
	)

	test.ExpectEquality(t, step(t, mc), 6)
	test.ExpectEquality(t, mc.PC.Address(), 0x0603)
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
}

func TestBreakAndReturn(t *testing.T) {
	mc, mem := newTestCPU(t, 0x0600)
	mem.putVector(cpubus.BRK, 0x0800)

	// BRK; (padding)
	mem.putInstructions(0x0600, 0x00, 0xff)

	// RTI
	mem.putInstructions(0x0800, 0x40)

	test.ExpectEquality(t, step(t, mc), 7)
	test.ExpectEquality(t, mc.PC.Address(), 0x0800)
	test.ExpectEquality(t, mc.SP.Value(), 0xfa)
	test.ExpectSuccess(t, mc.Status.InterruptDisable)

	// BRK skips the padding byte
	mem.assert(t, 0x01fd, 0x06)
	mem.assert(t, 0x01fc, 0x02)

	// the pushed status has the break flag set but the live flag is unchanged
	mem.assert(t, 0x01fb, 0x34)
	test.ExpectFailure(t, mc.Status.Break)

	// RTI restores the status register exactly as it was pushed
	test.ExpectEquality(t, step(t, mc), 6)
	test.ExpectEquality(t, mc.PC.Address(), 0x0602)
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
	test.ExpectSuccess(t, mc.Status.Break)
	test.ExpectEquality(t, mc.Status.Value(), 0x34)
}

func TestStackInstructions(t *testing.T) {
	mc, mem := newTestCPU(t, 0x0600)

	// PHP; PLP
	origin := mem.putInstructions(0x0600, 0x08, 0x28)

	test.ExpectEquality(t, step(t, mc), 3)
	test.ExpectEquality(t, mc.SP.Value(), 0xfc)
	mem.assert(t, 0x01fd, 0x34)
	test.ExpectFailure(t, mc.Status.Break)

	// mangle status register
	mc.Status.Sign = true
	mc.Status.Carry = true

	// restore status register. the break flag is cleared
	test.ExpectEquality(t, step(t, mc), 4)
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
	test.ExpectEquality(t, mc.Status.String(), "sv-bdIzc")

	// LDA #$80; PHA; LDA #$00; PLA
	mem.putInstructions(origin, 0xa9, 0x80, 0x48, 0xa9, 0x00, 0x68)
	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 3)
	mem.assert(t, 0x01fd, 0x80)
	step(t, mc)
	test.ExpectSuccess(t, mc.Status.Zero)
	test.ExpectEquality(t, step(t, mc), 4)
	test.ExpectEquality(t, mc.A.Value(), 0x80)
	test.ExpectSuccess(t, mc.Status.Sign)
	test.ExpectFailure(t, mc.Status.Zero)
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
}

func TestServiceInterrupt(t *testing.T) {
	mc, mem := newTestCPU(t, 0x0600)
	mem.putVector(cpubus.NMI, 0x0900)
	mem.putVector(cpubus.IRQ, 0x0a00)

	// NMI is serviced even though interrupts are disabled after reset
	cycles, err := mc.ServiceInterrupt(cpu.NMI)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cycles, 7)
	test.ExpectEquality(t, mc.Cycles(), 7)
	test.ExpectEquality(t, mc.PC.Address(), 0x0900)
	test.ExpectEquality(t, mc.SP.Value(), 0xfa)
	mem.assert(t, 0x01fd, 0x06)
	mem.assert(t, 0x01fc, 0x00)

	// break flag is clear in the pushed status
	mem.assert(t, 0x01fb, 0x24)

	// IRQ is ignored while interrupts are disabled
	cycles, err = mc.ServiceInterrupt(cpu.IRQ)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cycles, 0)
	test.ExpectEquality(t, mc.PC.Address(), 0x0900)

	mc.Status.InterruptDisable = false
	cycles, err = mc.ServiceInterrupt(cpu.IRQ)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cycles, 7)
	test.ExpectEquality(t, mc.PC.Address(), 0x0a00)
	test.ExpectSuccess(t, mc.Status.InterruptDisable)
	mem.assert(t, 0x01f8, 0x20)

	// RTI
	mem.putInstructions(0x0a00, 0x40)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), 0x0900)
	test.ExpectFailure(t, mc.Status.InterruptDisable)

	_, err = mc.ServiceInterrupt(cpu.Interrupt(5))
	test.ExpectSuccess(t, curated.Is(err, cpu.UnknownInterrupt))
}

func TestUnknownOpcode(t *testing.T) {
	mc, mem := newTestCPU(t, 0x0600)
	mem.putInstructions(0x0600, 0xea, 0x02)
	step(t, mc)

	_, err := mc.Step()
	test.ExpectSuccess(t, curated.Is(err, cpu.UnknownOpcode))
	test.ExpectSuccess(t, mc.Killed)
	test.ExpectEquality(t, mc.LastResult.Address, 0x0601)

	// the fault is logged
	s := &strings.Builder{}
	logger.Tail(s, 1)
	test.ExpectSuccess(t, strings.Contains(s.String(), "unknown opcode"))

	// the CPU stays dead until reset
	_, err = mc.Step()
	test.ExpectSuccess(t, curated.Is(err, cpu.KilledCPU))
	_, err = mc.ServiceInterrupt(cpu.NMI)
	test.ExpectSuccess(t, curated.Is(err, cpu.KilledCPU))

	test.DemandSuccess(t, mc.Reset())
	test.ExpectFailure(t, mc.Killed)
	test.ExpectEquality(t, step(t, mc), 2)
}
