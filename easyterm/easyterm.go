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

package easyterm

import (
	"os"

	"github.com/famiemu/famiemu/curated"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Error patterns.
const (
	NoFile    = "easyterm: requires an %s file"
	TermError = "easyterm: %v"
)

// EasyTerm is the main container for terminal mode switching. The zero value
// is not usable; call Initialise() first.
type EasyTerm struct {
	input  *os.File
	output *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios
}

// Initialise the terminal with the files to use for input and output. The
// current attributes of the input file are remembered and restored by
// CleanUp().
func (et *EasyTerm) Initialise(input, output *os.File) error {
	if input == nil {
		return curated.Errorf(NoFile, "input")
	}
	if output == nil {
		return curated.Errorf(NoFile, "output")
	}

	et.input = input
	et.output = output

	if err := termios.Tcgetattr(et.input.Fd(), &et.canAttr); err != nil {
		return curated.Errorf(TermError, err)
	}

	// cbreak attributes are the canonical attributes with line buffering and
	// echo turned off
	et.cbreakAttr = et.canAttr
	termios.Cfmakecbreak(&et.cbreakAttr)

	return nil
}

// CleanUp returns the terminal to the state it was in when Initialise() was
// called.
func (et *EasyTerm) CleanUp() {
	_ = et.CanonicalMode()
}

// CanonicalMode puts the terminal into normal, line-buffered mode.
func (et *EasyTerm) CanonicalMode() error {
	if err := termios.Tcsetattr(et.input.Fd(), termios.TCSANOW, &et.canAttr); err != nil {
		return curated.Errorf(TermError, err)
	}
	return nil
}

// CBreakMode puts the terminal into cbreak mode. Key presses are available
// immediately and are not echoed. Signals are still generated by the
// terminal.
func (et *EasyTerm) CBreakMode() error {
	if err := termios.Tcsetattr(et.input.Fd(), termios.TCSANOW, &et.cbreakAttr); err != nil {
		return curated.Errorf(TermError, err)
	}
	return nil
}

// Flush any pending input and output.
func (et *EasyTerm) Flush() error {
	if err := termios.Tcflush(et.input.Fd(), termios.TCIFLUSH); err != nil {
		return curated.Errorf(TermError, err)
	}
	if err := termios.Tcflush(et.output.Fd(), termios.TCOFLUSH); err != nil {
		return curated.Errorf(TermError, err)
	}
	return nil
}

// Read implements the io.Reader interface. In cbreak mode a read returns as
// soon as a key has been pressed.
func (et *EasyTerm) Read(p []byte) (int, error) {
	return et.input.Read(p)
}

// Write implements the io.Writer interface.
func (et *EasyTerm) Write(p []byte) (int, error) {
	return et.output.Write(p)
}
