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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error. The pattern is retained and is
// what identifies the error. For example, the cpu package declares the
// pattern for an unassigned opcode:
//
//	const UnknownOpcode = "cpu: unknown opcode (%#02x) at (%#04x)"
//
//	err := curated.Errorf(UnknownOpcode, opcode, address)
//
//	if curated.Is(err, cpu.UnknownOpcode) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain. An error is part of the chain if it is one of the values
// passed to Errorf().
//
//	f := curated.Errorf("runner: %v", err)
//
//	if curated.Has(f, cpu.UnknownOpcode) {
//		fmt.Println("true")
//	}
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). Put another way, it returns true if the error is
// 'expected' and false if the error is 'unexpected'.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. This means a function can prefix an error with
// its package name without worrying whether the error it is wrapping already
// has the same prefix.
//
// Curated errors also implement Unwrap() so that the errors.Is() and
// errors.As() functions in the standard library see any error values that
// were passed to Errorf().
package curated
