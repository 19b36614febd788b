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
	"os"

	"github.com/famiemu/famiemu/curated"
	"github.com/famiemu/famiemu/disassembly"
	"github.com/famiemu/famiemu/hardware/memory/cpubus"
	"github.com/famiemu/famiemu/runner"
	"github.com/spf13/cobra"
)

func newDisasmCommand(opts *options) *cobra.Command {
	var attr disassembly.WriteAttr

	cmd := &cobra.Command{
		Use:   "disasm <image>",
		Short: "disassemble program image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return curated.Errorf(runner.LoadError, err)
			}

			r := runner.NewRunner(opts.cfg)
			defer r.Close()
			if err := r.Load(data); err != nil {
				return err
			}

			// flow is followed from the three vectors. if the vectors
			// are not set by the configuration they must be part of the
			// image
			var entryPoints []uint16
			for _, v := range []uint16{cpubus.Reset, cpubus.NMI, cpubus.IRQ} {
				a, err := cpubus.Read16(r.RAM(), v)
				if err != nil {
					return err
				}
				entryPoints = append(entryPoints, a)
			}

			dsm, err := disassembly.FromMemory(r.RAM(), opts.cfg.Program.LoadAddress, len(data), entryPoints...)
			if err != nil {
				return err
			}

			return dsm.Write(cmd.OutOrStdout(), attr)
		},
	}

	cmd.Flags().BoolVarP(&attr.ByteCode, "bytecode", "b", false, "include bytecode in listing")
	cmd.Flags().BoolVar(&attr.Cycles, "cycles", false, "include cycle counts in listing")

	return cmd
}
