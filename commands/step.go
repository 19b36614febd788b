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

package commands

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/famiemu/famiemu/easyterm"
	"github.com/famiemu/famiemu/easyterm/ansi"
	"github.com/famiemu/famiemu/hardware/cpu"
	"github.com/famiemu/famiemu/hardware/cpu/instructions"
	"github.com/famiemu/famiemu/runner"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newStepCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "step <image>",
		Short: "step through program image one instruction at a time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.newRunner(args[0])
			if err != nil {
				return err
			}
			defer r.Close()

			in := cmd.InOrStdin()
			out := cmd.OutOrStdout()
			colour := false

			// single key presses are only possible if input is a terminal.
			// otherwise keys are read from input as they come
			if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
				var et easyterm.EasyTerm
				if err := et.Initialise(f, os.Stdout); err != nil {
					return err
				}
				if err := et.CBreakMode(); err != nil {
					return err
				}
				defer et.CleanUp()

				// the terminal must be returned to canonical mode if
				// the process is interrupted
				intChan := make(chan os.Signal, 1)
				signal.Notify(intChan, os.Interrupt)
				defer signal.Stop(intChan)
				go func() {
					if _, ok := <-intChan; ok {
						et.CleanUp()
						fmt.Println("\r")
						os.Exit(1)
					}
				}()

				in = &et
				colour = term.IsTerminal(int(os.Stdout.Fd()))
			}

			mon := &monitor{r: r, in: in, out: out, colour: colour}
			err = mon.loop()

			if dumpErr := opts.dump(r.CPU()); dumpErr != nil && err == nil {
				err = dumpErr
			}

			return err
		},
	}
	return cmd
}

const monitorHelp = `keys:
  space, s, enter   step
  r                 run until stopped
  n                 service NMI
  i                 service IRQ
  z                 show zero page
  k                 show stack page
  h, ?              help
  q, esc            quit
`

// monitor reads keys from input and steps the runner in response.
type monitor struct {
	r      *runner.Runner
	in     io.Reader
	out    io.Writer
	colour bool
}

func (mon *monitor) pen(name string) string {
	if !mon.colour {
		return ""
	}
	return ansi.Pens[name]
}

func (mon *monitor) normal() string {
	if !mon.colour {
		return ""
	}
	return ansi.NormalPen
}

// show the instruction at the PC and the state of the CPU.
func (mon *monitor) show() {
	mc := mon.r.CPU()
	pc := mc.PC.Address()

	instruction := "???"
	if d, err := instructions.Decode(mon.r.RAM(), pc); err == nil {
		instruction = d.String()
	}

	fmt.Fprintf(mon.out, "%s%04X%s  %s%-14s%s %s%s%s\n",
		mon.pen("address"), pc, mon.normal(),
		mon.pen("instruction"), instruction, mon.normal(),
		mon.pen("state"), mc.FormatState(), mon.normal())
}

func (mon *monitor) fault(err error) {
	fmt.Fprintf(mon.out, "%s%v%s\n", mon.pen("fault"), err, mon.normal())
}

func (mon *monitor) interrupt(kind cpu.Interrupt) error {
	n, err := mon.r.CPU().ServiceInterrupt(kind)
	if err != nil {
		mon.fault(err)
		return err
	}
	if n == 0 {
		fmt.Fprintf(mon.out, "%s%s ignored (interrupt disable)%s\n", mon.pen("interrupt"), kind, mon.normal())
	} else {
		fmt.Fprintf(mon.out, "%s%s (%d cycles)%s\n", mon.pen("interrupt"), kind, n, mon.normal())
	}
	return nil
}

func (mon *monitor) loop() error {
	fmt.Fprintf(mon.out, "%spress h for help%s\n", mon.pen("prompt"), mon.normal())
	mon.show()

	key := make([]byte, 1)
	for {
		n, err := mon.in.Read(key)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if n == 0 {
			continue
		}

		switch key[0] {
		case easyterm.KeySpace, easyterm.KeyCarriageReturn, easyterm.KeyLineFeed, 's':
			trapped, err := mon.r.Step()
			if err != nil {
				mon.fault(err)
				return err
			}
			if trapped {
				fmt.Fprintf(mon.out, "%strapped%s\n", mon.pen("interrupt"), mon.normal())
			}
			mon.show()

		case 'r':
			stop, err := mon.r.Run()
			if err != nil {
				mon.fault(err)
				return err
			}
			report(mon.out, mon.r, stop)
			mon.show()

		case 'n':
			if err := mon.interrupt(cpu.NMI); err != nil {
				return err
			}
			mon.show()

		case 'i':
			if err := mon.interrupt(cpu.IRQ); err != nil {
				return err
			}
			mon.show()

		case 'z':
			fmt.Fprintln(mon.out, mon.r.RAM().Page(0x0000))

		case 'k':
			fmt.Fprintln(mon.out, mon.r.RAM().Page(mon.r.CPU().SP.Address()))

		case 'h', '?':
			fmt.Fprint(mon.out, monitorHelp)

		case 'q', easyterm.KeyEsc, easyterm.KeyInterrupt, easyterm.KeyEOT:
			return nil

		case easyterm.KeySuspend:
			easyterm.SuspendProcess()
		}
	}
}
