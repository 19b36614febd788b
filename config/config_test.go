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

package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/famiemu/famiemu/config"
	"github.com/famiemu/famiemu/curated"
	"github.com/famiemu/famiemu/test"
)

func TestDefaults(t *testing.T) {
	cfg, err := config.NewConfig("")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, *cfg, *config.DefaultConfig())

	test.ExpectEquality(t, cfg.Program.LoadAddress, 0x0600)
	test.ExpectEquality(t, cfg.Program.EntryAddress(), 0x0600)
	test.ExpectSuccess(t, cfg.Program.Vectors)
	test.ExpectSuccess(t, cfg.CPU.DecimalArithmetic())
	test.ExpectFailure(t, cfg.Trace.Enabled)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "famiemu.yaml")

	err := os.WriteFile(fn, []byte(`
cpu:
  variant: 2a03
program:
  load_address: 0x8000
  entry: 0x8010
run:
  max_steps: 500
  nmi_interval: 29780
`), 0o644)
	test.DemandSuccess(t, err)

	cfg, err := config.NewConfig(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cfg.CPU.Variant, config.Variant2A03)
	test.ExpectFailure(t, cfg.CPU.DecimalArithmetic())
	test.ExpectEquality(t, cfg.CPU.ClockMHz(), 1.789773)
	test.ExpectEquality(t, cfg.Program.LoadAddress, 0x8000)
	test.ExpectEquality(t, cfg.Program.EntryAddress(), 0x8010)
	test.ExpectEquality(t, cfg.Run.MaxSteps, 500)
	test.ExpectEquality(t, cfg.Run.NMIInterval, 29780)

	// values not in the file keep their defaults
	test.ExpectSuccess(t, cfg.Program.Vectors)
	test.ExpectEquality(t, cfg.CPU.DecimalMode, config.DecimalAuto)
}

func TestMissingConfigFile(t *testing.T) {
	_, err := config.NewConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	test.ExpectSuccess(t, curated.Is(err, config.LoadError))

	_, err = config.NewConfig(t.TempDir())
	test.ExpectSuccess(t, curated.Is(err, config.LoadError))
}

func TestEnvironment(t *testing.T) {
	t.Setenv("FAMIEMU_RUN_MAX_STEPS", "50")
	t.Setenv("FAMIEMU_CPU_DECIMAL_MODE", "off")
	t.Setenv("FAMIEMU_PROGRAM_LOAD_ADDRESS", "0xc000")
	t.Setenv("FAMIEMU_TRACE_ENABLED", "true")

	cfg, err := config.NewConfig("")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cfg.Run.MaxSteps, 50)
	test.ExpectFailure(t, cfg.CPU.DecimalArithmetic())
	test.ExpectEquality(t, cfg.Program.LoadAddress, 0xc000)
	test.ExpectSuccess(t, cfg.Trace.Enabled)
}

func TestValidate(t *testing.T) {
	cfg := config.DefaultConfig()
	test.ExpectSuccess(t, cfg.Validate())

	cfg.CPU.Variant = "z80"
	test.ExpectSuccess(t, curated.Is(cfg.Validate(), config.UnknownVariant))

	cfg = config.DefaultConfig()
	cfg.CPU.DecimalMode = "maybe"
	test.ExpectSuccess(t, curated.Is(cfg.Validate(), config.InvalidDecimalMode))

	cfg = config.DefaultConfig()
	cfg.Run.MaxSteps = 0
	test.ExpectSuccess(t, curated.Is(cfg.Validate(), config.InvalidMaxSteps))

	cfg = config.DefaultConfig()
	cfg.Run.NMIInterval = -1
	test.ExpectSuccess(t, curated.Is(cfg.Validate(), config.InvalidInterval))

	cfg = config.DefaultConfig()
	cfg.Program.Entry = 0x10000
	test.ExpectSuccess(t, curated.Is(cfg.Validate(), config.InvalidEntry))
}

func TestDecimalOverride(t *testing.T) {
	c := config.CPU{Variant: config.Variant2A03, DecimalMode: config.DecimalOn}
	test.ExpectSuccess(t, c.DecimalArithmetic())

	c = config.CPU{Variant: config.Variant6502, DecimalMode: config.DecimalOff}
	test.ExpectFailure(t, c.DecimalArithmetic())
}

func TestWrite(t *testing.T) {
	s := &strings.Builder{}
	test.DemandSuccess(t, config.DefaultConfig().Write(s))
	test.ExpectSuccess(t, strings.Contains(s.String(), "load_address: 1536"))
	test.ExpectSuccess(t, strings.Contains(s.String(), "variant: \"6502\""))

	// the output can be read back
	fn := filepath.Join(t.TempDir(), "written.yaml")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(s.String()), 0o644))
	cfg, err := config.NewConfig(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, *cfg, *config.DefaultConfig())
}
