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

	"github.com/bradleyjkemp/memviz"
	"github.com/famiemu/famiemu/config"
	"github.com/famiemu/famiemu/curated"
	"github.com/famiemu/famiemu/hardware/cpu"
	"github.com/famiemu/famiemu/logger"
	"github.com/famiemu/famiemu/paths"
	"github.com/famiemu/famiemu/runner"
	"github.com/famiemu/famiemu/statsview"
	"github.com/famiemu/famiemu/version"
	"github.com/spf13/cobra"
)

// Error patterns.
const (
	NoStatsview = "commands: statsview not available in this build"
	MemvizError = "commands: memviz: %v"
)

// options shared by every command in the tree.
type options struct {
	cfgFile   string
	statsview bool
	memviz    string
	echoLog   bool

	// overrides for the configuration
	maxSteps int
	script   string

	cfg *config.Config
}

// NewRootCommand creates the famiemu command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "famiemu",
		Short:        "famiemu is a 6502 interpreter",
		Version:      version.String(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.initialise(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&opts.cfgFile, "config", "c", "", "configuration file")
	root.PersistentFlags().BoolVar(&opts.statsview, "statsview", false, "launch statsview server")
	root.PersistentFlags().StringVar(&opts.memviz, "memviz", "", "write graphviz dump of the CPU to file on exit")
	root.PersistentFlags().BoolVar(&opts.echoLog, "log", false, "echo log to stderr")

	root.AddCommand(newRunCommand(opts))
	root.AddCommand(newTraceCommand(opts))
	root.AddCommand(newStepCommand(opts))
	root.AddCommand(newDisasmCommand(opts))
	root.AddCommand(newPerformCommand(opts))
	root.AddCommand(newOpcodesCommand())
	root.AddCommand(newConfigCommand(opts))

	return root
}

// Execute the command tree with the arguments from the command line.
func Execute() error {
	return NewRootCommand().Execute()
}

func (opts *options) initialise(cmd *cobra.Command) error {
	if opts.echoLog {
		logger.SetEcho(cmd.ErrOrStderr(), true)
	} else {
		logger.SetEcho(nil, false)
	}

	// use the configuration file in the resource directory if one has not
	// been specified
	if opts.cfgFile == "" {
		opts.cfgFile = paths.DefaultConfigFile()
	}

	cfg, err := config.NewConfig(opts.cfgFile)
	if err != nil {
		return err
	}
	opts.cfg = cfg

	if opts.maxSteps > 0 {
		opts.cfg.Run.MaxSteps = opts.maxSteps
	}
	if opts.script != "" {
		opts.cfg.Run.Script = opts.script
	}

	if opts.statsview {
		if !statsview.Available() {
			return curated.Errorf(NoStatsview)
		}
		statsview.Launch(cmd.ErrOrStderr())
	}

	return nil
}

// newRunner creates a runner with the program image in filename loaded.
func (opts *options) newRunner(filename string) (*runner.Runner, error) {
	r := runner.NewRunner(opts.cfg)
	if err := r.LoadFile(filename); err != nil {
		r.Close()
		return nil, err
	}
	return r, nil
}

// dump the CPU structure if requested.
func (opts *options) dump(mc *cpu.CPU) error {
	if opts.memviz == "" {
		return nil
	}

	f, err := os.Create(opts.memviz)
	if err != nil {
		return curated.Errorf(MemvizError, err)
	}
	memviz.Map(f, mc)
	if err := f.Close(); err != nil {
		return curated.Errorf(MemvizError, err)
	}

	logger.Logf(logger.Allow, "memviz", "written to %s", opts.memviz)

	return nil
}
