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

package registers

import (
	"strings"
)

// Flag identifies a single bit of the status register. The value of the Flag
// is the bit position of the flag in the status byte.
type Flag int

// List of valid Flag values.
const (
	FlagCarry Flag = iota
	FlagZero
	FlagInterruptDisable
	FlagDecimalMode
	FlagBreak
	FlagUnused
	FlagOverflow
	FlagSign
)

var flagNames = [...]string{"C", "Z", "I", "D", "B", "-", "V", "N"}

func (f Flag) String() string {
	if f < FlagCarry || f > FlagSign {
		return "?"
	}
	return flagNames[f]
}

// Mask returns the bit mask for the flag in the status byte.
func (f Flag) Mask() uint8 {
	return 0x01 << f
}

// ParseFlag returns the Flag for the single letter name. Both 'N' and 'S' are
// accepted for the sign flag. Case is not important.
func ParseFlag(name string) (Flag, bool) {
	switch strings.ToUpper(name) {
	case "C":
		return FlagCarry, true
	case "Z":
		return FlagZero, true
	case "I":
		return FlagInterruptDisable, true
	case "D":
		return FlagDecimalMode, true
	case "B":
		return FlagBreak, true
	case "V":
		return FlagOverflow, true
	case "N", "S":
		return FlagSign, true
	}
	return FlagUnused, false
}

// StatusRegister is the special purpose register that stores the flags of the CPU.
type StatusRegister struct {
	Sign             bool
	Overflow         bool
	Break            bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "P"
}

func (sr StatusRegister) String() string {
	s := strings.Builder{}

	if sr.Sign {
		s.WriteRune('S')
	} else {
		s.WriteRune('s')
	}
	if sr.Overflow {
		s.WriteRune('V')
	} else {
		s.WriteRune('v')
	}

	s.WriteRune('-')

	if sr.Break {
		s.WriteRune('B')
	} else {
		s.WriteRune('b')
	}
	if sr.DecimalMode {
		s.WriteRune('D')
	} else {
		s.WriteRune('d')
	}
	if sr.InterruptDisable {
		s.WriteRune('I')
	} else {
		s.WriteRune('i')
	}
	if sr.Zero {
		s.WriteRune('Z')
	} else {
		s.WriteRune('z')
	}
	if sr.Carry {
		s.WriteRune('C')
	} else {
		s.WriteRune('c')
	}

	return s.String()
}

// Reset status flags to initial state.
func (sr *StatusRegister) Reset() {
	sr.Load(0)
}

// Flag returns the state of a single flag. The unused flag is always set.
func (sr StatusRegister) Flag(f Flag) bool {
	return sr.Value()&f.Mask() != 0
}

// SetFlag changes the state of a single flag. Changing the unused flag has no
// effect.
func (sr *StatusRegister) SetFlag(f Flag, v bool) {
	b := sr.Value()
	if v {
		b |= f.Mask()
	} else {
		b &^= f.Mask()
	}
	sr.Load(b)
}

// Value converts the StatusRegister struct into a value suitable for pushing
// onto the stack.
func (sr StatusRegister) Value() uint8 {
	var v uint8

	if sr.Sign {
		v |= FlagSign.Mask()
	}
	if sr.Overflow {
		v |= FlagOverflow.Mask()
	}
	if sr.Break {
		v |= FlagBreak.Mask()
	}
	if sr.DecimalMode {
		v |= FlagDecimalMode.Mask()
	}
	if sr.InterruptDisable {
		v |= FlagInterruptDisable.Mask()
	}
	if sr.Zero {
		v |= FlagZero.Mask()
	}
	if sr.Carry {
		v |= FlagCarry.Mask()
	}

	// unused bit in the status register is always 1. this doesn't matter when
	// we're in normal form but it does matter in uint8 context
	v |= FlagUnused.Mask()

	return v
}

// Load converts an 8 bit integer (taken from the stack, for example) to the
// StatusRegister struct receiver.
func (sr *StatusRegister) Load(v uint8) {
	sr.Sign = v&FlagSign.Mask() != 0
	sr.Overflow = v&FlagOverflow.Mask() != 0
	sr.Break = v&FlagBreak.Mask() != 0
	sr.DecimalMode = v&FlagDecimalMode.Mask() != 0
	sr.InterruptDisable = v&FlagInterruptDisable.Mask() != 0
	sr.Zero = v&FlagZero.Mask() != 0
	sr.Carry = v&FlagCarry.Mask() != 0
}
