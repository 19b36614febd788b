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
	"github.com/famiemu/famiemu/paths"
	"github.com/famiemu/famiemu/performance"
	"github.com/spf13/cobra"
)

func newPerformCommand(opts *options) *cobra.Command {
	var duration string
	var profile string

	cmd := &cobra.Command{
		Use:   "perform <image>",
		Short: "run program image for a fixed duration and report the effective clock rate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := performance.ParseProfile(profile)
			if err != nil {
				return err
			}

			r, err := opts.newRunner(args[0])
			if err != nil {
				return err
			}
			defer r.Close()

			hdr := paths.UniqueFilename("perform", paths.ShortName(args[0]))
			return performance.Check(cmd.OutOrStdout(), p, hdr, r, duration, opts.cfg.CPU.ClockMHz())
		},
	}

	cmd.Flags().StringVarP(&duration, "duration", "d", "5s", "run duration (after a two second lead time)")
	cmd.Flags().StringVarP(&profile, "profile", "p", "none", "create profiling data: cpu, mem, trace, all")

	return cmd
}
