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
	"strings"

	"github.com/famiemu/famiemu/hardware/cpu/instructions"
	"github.com/spf13/cobra"
)

func newOpcodesCommand() *cobra.Command {
	var modes bool

	cmd := &cobra.Command{
		Use:   "opcodes",
		Short: "print the instruction set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if modes {
				for op := instructions.Operator(0); int(op) < instructions.NumOperators; op++ {
					m := instructions.LegalModes(op)
					s := make([]string, len(m))
					for i := range m {
						s[i] = m[i].String()
					}
					fmt.Fprintf(out, "%s  %s\n", op, strings.Join(s, ", "))
				}
				return nil
			}

			for _, defn := range instructions.Definitions() {
				page := ""
				if defn.PageSensitive() {
					page = " +1 page"
				}
				fmt.Fprintf(out, "%02X  %s  %-16s %d bytes  %d cycles%s\n",
					defn.OpCode, defn.Operator, defn.AddressingMode, defn.Bytes(), defn.Cycles, page)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&modes, "modes", "m", false, "print legal addressing modes for each mnemonic")

	return cmd
}

func newConfigCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.cfg.Write(cmd.OutOrStdout())
		},
	}
}
