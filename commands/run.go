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

	"github.com/famiemu/famiemu/runner"
	"github.com/spf13/cobra"
)

func addRunFlags(cmd *cobra.Command, opts *options) {
	cmd.Flags().IntVarP(&opts.maxSteps, "steps", "n", 0, "maximum number of steps (overrides configuration)")
	cmd.Flags().StringVarP(&opts.script, "script", "s", "", "Lua script driving interrupts (overrides configuration)")
}

func newRunCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <image>",
		Short: "run program image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args[0], opts.cfg.Trace.Enabled)
		},
	}
	addRunFlags(cmd, opts)
	return cmd
}

func newTraceCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace <image>",
		Short: "run program image printing the CPU state before every step",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args[0], true)
		},
	}
	addRunFlags(cmd, opts)
	return cmd
}

func (opts *options) run(cmd *cobra.Command, filename string, trace bool) error {
	r, err := opts.newRunner(filename)
	if err != nil {
		return err
	}
	defer r.Close()

	out := cmd.OutOrStdout()
	if trace {
		r.SetTrace(out)
	}

	stop, runErr := r.Run()
	report(out, r, stop)

	if err := opts.dump(r.CPU()); err != nil {
		return err
	}

	return runErr
}

func report(out io.Writer, r *runner.Runner, stop runner.Stop) {
	fmt.Fprintf(out, "%s after %d steps\n", stop, r.Steps())
	fmt.Fprintln(out, r.CPU().FormatState())
	fmt.Fprintln(out, r.CPU())
}
