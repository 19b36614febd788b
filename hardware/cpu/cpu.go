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

import (
	"fmt"

	"github.com/famiemu/famiemu/curated"
	"github.com/famiemu/famiemu/hardware/cpu/execution"
	"github.com/famiemu/famiemu/hardware/cpu/instructions"
	"github.com/famiemu/famiemu/hardware/cpu/registers"
	"github.com/famiemu/famiemu/hardware/memory/cpubus"
	"github.com/famiemu/famiemu/logger"
)

// Error patterns returned by the CPU.
const (
	UnknownOpcode           = "cpu: unknown opcode (%#02x) at (%#04x)"
	UnhandledAddressingMode = "cpu: unhandled addressing mode (%s) for %s"
	UnhandledOperator       = "cpu: unhandled operator (%s)"
	UnknownInterrupt        = "cpu: unknown interrupt (%d)"
	KilledCPU               = "cpu: killed by unknown opcode at (%#04x). reset required"
)

// CPU implements the 6502 CPU. Register logic is implemented by the Register
// type in the registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	// some operations only need an accumulator
	acc8 registers.Register

	mem cpubus.Memory

	// total number of cycles since the last reset
	cycles int

	// last result. the address field is only valid once Step() has been
	// called at least once since the last reset
	LastResult execution.Result

	// DecimalArithmetic controls whether the decimal mode flag has any
	// effect on ADC and SBC. the 2A03 variant of the 6502 lacks the decimal
	// adjustment circuitry but the flag itself can still be set and cleared
	DecimalArithmetic bool

	// the cpu has encountered an unknown opcode. requires a Reset()
	Killed bool
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// CPU should be reset with Reset() before the first call to Step().
func NewCPU(mem cpubus.Memory) *CPU {
	return &CPU{
		mem:               mem,
		PC:                registers.NewProgramCounter(0),
		A:                 registers.NewRegister(0, "A"),
		X:                 registers.NewRegister(0, "X"),
		Y:                 registers.NewRegister(0, "Y"),
		SP:                registers.NewStackPointer(0),
		Status:            registers.NewStatusRegister(),
		acc8:              registers.NewRegister(0, "accumulator"),
		DecimalArithmetic: true,
	}
}

// Plumb a new memory implementation into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s %s %s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A, mc.X, mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// FormatState returns the registers and cycle count in a fixed format
// suitable for comparing trace output.
func (mc *CPU) FormatState() string {
	return fmt.Sprintf("A:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%d",
		mc.A.Value(), mc.X.Value(), mc.Y.Value(),
		mc.Status.Value(), mc.SP.Value(), mc.cycles)
}

// Cycles returns the number of cycles since the last reset.
func (mc *CPU) Cycles() int {
	return mc.cycles
}

// Flag returns the state of the named flag in the status register.
func (mc *CPU) Flag(f registers.Flag) bool {
	return mc.Status.Flag(f)
}

// Reset reinitialises all registers and loads the PC from the reset vector.
func (mc *CPU) Reset() error {
	mc.LastResult.Reset()
	mc.Killed = false
	mc.cycles = 0

	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(0xfd)
	mc.Status.Reset()
	mc.Status.InterruptDisable = true

	pc, err := cpubus.Read16(mc.mem, cpubus.Reset)
	if err != nil {
		return err
	}
	mc.PC.Load(pc)

	return nil
}

func (mc *CPU) read8Bit(address uint16) (uint8, error) {
	return mc.mem.Read(address)
}

func (mc *CPU) write8Bit(address uint16, value uint8) error {
	return mc.mem.Write(address, value)
}

// read8BitPC reads the byte pointed to by the PC and advances the PC. The
// byte is recorded in LastResult as either the opcode or an operand byte.
func (mc *CPU) read8BitPC() (uint8, error) {
	v, err := mc.read8Bit(mc.PC.Address())
	if err != nil {
		return 0, err
	}
	mc.PC.Increment()

	switch mc.LastResult.ByteCount {
	case 1:
		mc.LastResult.InstructionData = uint16(v)
	case 2:
		mc.LastResult.InstructionData |= uint16(v) << 8
	}
	mc.LastResult.ByteCount++

	return v, nil
}

// read16BitPC reads the low byte before the high byte.
func (mc *CPU) read16BitPC() (uint16, error) {
	lo, err := mc.read8BitPC()
	if err != nil {
		return 0, err
	}
	hi, err := mc.read8BitPC()
	if err != nil {
		return 0, err
	}
	return (uint16(hi) << 8) | uint16(lo), nil
}

// read16BitZeroPage reads a pointer from the zero page. the high byte is read
// from the start of the zero page if the low byte is at the end of it.
func (mc *CPU) read16BitZeroPage(address uint8) (uint16, error) {
	lo, err := mc.read8Bit(uint16(address))
	if err != nil {
		return 0, err
	}

	if address == 0xff {
		mc.LastResult.CPUBug = execution.IndexedIndirectAddressingBug
	}

	hi, err := mc.read8Bit(uint16(address + 1))
	if err != nil {
		return 0, err
	}

	return (uint16(hi) << 8) | uint16(lo), nil
}

// branch loads the PC with the address if flag is true. a taken branch costs
// an additional cycle and another if the new PC is in a different page.
func (mc *CPU) branch(flag bool, address uint16) {
	mc.LastResult.BranchSuccess = flag
	if !flag {
		return
	}

	mc.LastResult.Cycles++
	if mc.PC.Address()&0xff00 != address&0xff00 {
		mc.LastResult.PageFault = true
		mc.LastResult.Cycles++
	}

	mc.PC.Load(address)
}

// Step executes the next instruction. The basic process when executing an
// instruction is this:
//
//  1. read opcode and look up instruction definition
//  2. read operands (if any) according to the addressing mode of the instruction
//  3. using the operator as a guide, perform the instruction on the data
//
// Returns the number of cycles used by the instruction. An unknown opcode
// kills the CPU and the error will match the UnknownOpcode pattern. Subsequent
// calls to Step() will fail until Reset() is called.
func (mc *CPU) Step() (int, error) {
	if mc.Killed {
		return 0, curated.Errorf(KilledCPU, mc.LastResult.Address)
	}

	// prepare new round of results
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	opcode, err := mc.read8BitPC()
	if err != nil {
		return 0, err
	}

	defn, ok := instructions.Lookup(opcode)
	if !ok {
		mc.Killed = true
		mc.LastResult.Final = true
		err := curated.Errorf(UnknownOpcode, opcode, mc.LastResult.Address)
		logger.Log(logger.Allow, "cpu", err)
		return 0, err
	}

	mc.LastResult.Defn = defn
	mc.LastResult.Cycles = defn.Cycles

	op, err := mc.resolve(defn)
	if err != nil {
		return 0, err
	}

	if op.pageCross && defn.PageSensitive() {
		mc.LastResult.PageFault = true
		mc.LastResult.Cycles++
	}

	// value is the data the instruction operates on. for immediate mode it is
	// the operand byte, for accumulator mode it is the A register and for
	// other modes it is read from the effective address. it is not read at
	// all by instructions that only write to memory or alter program flow
	var value uint8

	switch defn.AddressingMode {
	case instructions.Immediate:
		value = uint8(mc.LastResult.InstructionData)
	case instructions.Accumulator:
		value = mc.A.Value()
	default:
		if op.hasAddress && (defn.Effect == instructions.Read || defn.Effect == instructions.Modify) {
			value, err = mc.read8Bit(op.address)
			if err != nil {
				return 0, err
			}
		}
	}

	err = mc.execute(defn, op, value)
	if err != nil {
		return 0, err
	}

	mc.LastResult.Final = true
	mc.cycles += mc.LastResult.Cycles

	return mc.LastResult.Cycles, nil
}

// execute performs the instruction based on the operator. value has been
// prepared by Step() according to the addressing mode and effect category.
func (mc *CPU) execute(defn instructions.Definition, op operand, value uint8) error {
	var err error

	switch defn.Operator {
	case instructions.Nop:
		// does nothing

	case instructions.Cli:
		mc.Status.InterruptDisable = false

	case instructions.Sei:
		mc.Status.InterruptDisable = true

	case instructions.Clc:
		mc.Status.Carry = false

	case instructions.Sec:
		mc.Status.Carry = true

	case instructions.Cld:
		mc.Status.DecimalMode = false

	case instructions.Sed:
		mc.Status.DecimalMode = true

	case instructions.Clv:
		mc.Status.Overflow = false

	case instructions.Pha:
		return mc.push8(mc.A.Value())

	case instructions.Pla:
		value, err = mc.pop8()
		if err != nil {
			return err
		}
		mc.A.Load(value)
		mc.setZeroSign(mc.A)

	case instructions.Php:
		// the pushed value always has the break flag set
		sr := mc.Status
		sr.Break = true
		return mc.push8(sr.Value())

	case instructions.Plp:
		value, err = mc.pop8()
		if err != nil {
			return err
		}
		mc.Status.Load(value)
		mc.Status.Break = false

	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.setZeroSign(mc.A)

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.setZeroSign(mc.X)

	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.setZeroSign(mc.Y)

	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.setZeroSign(mc.A)

	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.setZeroSign(mc.X)

	case instructions.Txs:
		mc.SP.Load(mc.X.Value())
		// does not affect status register

	case instructions.Eor:
		mc.A.EOR(value)
		mc.setZeroSign(mc.A)

	case instructions.Ora:
		mc.A.ORA(value)
		mc.setZeroSign(mc.A)

	case instructions.And:
		mc.A.AND(value)
		mc.setZeroSign(mc.A)

	case instructions.Lda:
		mc.A.Load(value)
		mc.setZeroSign(mc.A)

	case instructions.Ldx:
		mc.X.Load(value)
		mc.setZeroSign(mc.X)

	case instructions.Ldy:
		mc.Y.Load(value)
		mc.setZeroSign(mc.Y)

	case instructions.Sta:
		return mc.write8Bit(op.address, mc.A.Value())

	case instructions.Stx:
		return mc.write8Bit(op.address, mc.X.Value())

	case instructions.Sty:
		return mc.write8Bit(op.address, mc.Y.Value())

	case instructions.Inx:
		mc.X.Add(1, false)
		mc.setZeroSign(mc.X)

	case instructions.Iny:
		mc.Y.Add(1, false)
		mc.setZeroSign(mc.Y)

	case instructions.Dex:
		mc.X.Add(0xff, false)
		mc.setZeroSign(mc.X)

	case instructions.Dey:
		mc.Y.Add(0xff, false)
		mc.setZeroSign(mc.Y)

	case instructions.Asl:
		mc.acc8.Load(value)
		mc.Status.Carry = mc.acc8.ASL()
		return mc.writeBack(defn, op)

	case instructions.Lsr:
		mc.acc8.Load(value)
		mc.Status.Carry = mc.acc8.LSR()
		return mc.writeBack(defn, op)

	case instructions.Rol:
		mc.acc8.Load(value)
		mc.Status.Carry = mc.acc8.ROL(mc.Status.Carry)
		return mc.writeBack(defn, op)

	case instructions.Ror:
		mc.acc8.Load(value)
		mc.Status.Carry = mc.acc8.ROR(mc.Status.Carry)
		return mc.writeBack(defn, op)

	case instructions.Inc:
		mc.acc8.Load(value)
		mc.acc8.Add(1, false)
		return mc.writeBack(defn, op)

	case instructions.Dec:
		mc.acc8.Load(value)
		mc.acc8.Add(0xff, false)
		return mc.writeBack(defn, op)

	case instructions.Adc:
		if mc.DecimalArithmetic && mc.Status.DecimalMode {
			mc.Status.Carry,
				mc.Status.Zero,
				mc.Status.Overflow,
				mc.Status.Sign = mc.A.AddDecimal(value, mc.Status.Carry)
		} else {
			mc.Status.Carry, mc.Status.Overflow = mc.A.Add(value, mc.Status.Carry)
			mc.setZeroSign(mc.A)
		}

	case instructions.Sbc:
		if mc.DecimalArithmetic && mc.Status.DecimalMode {
			mc.Status.Carry,
				mc.Status.Zero,
				mc.Status.Overflow,
				mc.Status.Sign = mc.A.SubtractDecimal(value, mc.Status.Carry)
		} else {
			mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(value, mc.Status.Carry)
			mc.setZeroSign(mc.A)
		}

	case instructions.Cmp:
		mc.compare(mc.A, value)

	case instructions.Cpx:
		mc.compare(mc.X, value)

	case instructions.Cpy:
		mc.compare(mc.Y, value)

	case instructions.Bit:
		mc.acc8.Load(value)
		mc.Status.Sign = mc.acc8.IsNegative()
		mc.Status.Overflow = mc.acc8.IsBitV()
		mc.acc8.AND(mc.A.Value())
		mc.Status.Zero = mc.acc8.IsZero()

	case instructions.Jmp:
		mc.PC.Load(op.address)

	case instructions.Bcc:
		mc.branch(!mc.Status.Carry, op.address)

	case instructions.Bcs:
		mc.branch(mc.Status.Carry, op.address)

	case instructions.Beq:
		mc.branch(mc.Status.Zero, op.address)

	case instructions.Bmi:
		mc.branch(mc.Status.Sign, op.address)

	case instructions.Bne:
		mc.branch(!mc.Status.Zero, op.address)

	case instructions.Bpl:
		mc.branch(!mc.Status.Sign, op.address)

	case instructions.Bvc:
		mc.branch(!mc.Status.Overflow, op.address)

	case instructions.Bvs:
		mc.branch(mc.Status.Overflow, op.address)

	case instructions.Jsr:
		// the return address pushed to the stack is the address of the last
		// byte of the JSR instruction. RTS adjusts for this
		err = mc.push16(mc.PC.Address() - 1)
		if err != nil {
			return err
		}
		mc.PC.Load(op.address)

	case instructions.Rts:
		address, err := mc.pop16()
		if err != nil {
			return err
		}
		mc.PC.Load(address + 1)

	case instructions.Brk:
		// BRK is followed by a padding byte which is skipped. the byte is
		// not read
		mc.PC.Increment()

		err = mc.push16(mc.PC.Address())
		if err != nil {
			return err
		}

		// the break flag is set in the pushed value only
		sr := mc.Status
		sr.Break = true
		err = mc.push8(sr.Value())
		if err != nil {
			return err
		}

		mc.Status.InterruptDisable = true

		address, err := cpubus.Read16(mc.mem, cpubus.BRK)
		if err != nil {
			return err
		}
		mc.PC.Load(address)

	case instructions.Rti:
		value, err = mc.pop8()
		if err != nil {
			return err
		}
		mc.Status.Load(value)

		address, err := mc.pop16()
		if err != nil {
			return err
		}
		mc.PC.Load(address)

	default:
		return curated.Errorf(UnhandledOperator, defn.Operator)
	}

	return nil
}

// setZeroSign sets the zero and sign flags according to the value of the
// register.
func (mc *CPU) setZeroSign(r registers.Register) {
	mc.Status.Zero = r.IsZero()
	mc.Status.Sign = r.IsNegative()
}

// compare sets the flags as though value was subtracted from the register.
// the register is not changed.
func (mc *CPU) compare(r registers.Register, value uint8) {
	mc.acc8.Load(r.Value())

	// CMP can be implemented with binary subtract even if decimal mode is
	// active (the meaning is the same)
	mc.Status.Carry, _ = mc.acc8.Subtract(value, true)
	mc.setZeroSign(mc.acc8)
}

// writeBack completes a read-modify-write instruction. the result in acc8 is
// written to the A register or to memory depending on the addressing mode.
func (mc *CPU) writeBack(defn instructions.Definition, op operand) error {
	mc.setZeroSign(mc.acc8)

	if defn.AddressingMode == instructions.Accumulator {
		mc.A.Load(mc.acc8.Value())
		return nil
	}

	return mc.write8Bit(op.address, mc.acc8.Value())
}
