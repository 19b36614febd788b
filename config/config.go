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

package config

import (
	"bytes"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/famiemu/famiemu/curated"
	"github.com/famiemu/famiemu/logger"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

// EnvVarPrefix is the prefix for all environment variables that override
// configuration values.
const EnvVarPrefix = "FAMIEMU"

// Error patterns returned by the config package.
const (
	LoadError          = "config: %v"
	UnknownVariant     = "config: unknown cpu variant (%s)"
	InvalidDecimalMode = "config: invalid decimal mode (%s)"
	InvalidMaxSteps    = "config: max steps must be positive (%d)"
	InvalidInterval    = "config: nmi interval cannot be negative (%d)"
	InvalidEntry       = "config: entry address out of range (%#x)"
)

// List of valid CPU variants.
const (
	Variant6502 = "6502"
	Variant2A03 = "2a03"
)

// List of valid decimal mode settings.
const (
	DecimalAuto = "auto"
	DecimalOn   = "on"
	DecimalOff  = "off"
)

const (
	defVariant     = Variant6502
	defDecimalMode = DecimalAuto
	defLoadAddress = 0x0600
	defEntry       = -1
	defVectors     = true
	defMaxSteps    = 100000
	defNMIInterval = 0
	defScript      = ""
	defTrace       = false
)

var replacer = strings.NewReplacer(".", "_")

// Config is the complete configuration for the emulator.
type Config struct {
	CPU     CPU     `mapstructure:"cpu" yaml:"cpu"`
	Program Program `mapstructure:"program" yaml:"program"`
	Run     Run     `mapstructure:"run" yaml:"run"`
	Trace   Trace   `mapstructure:"trace" yaml:"trace"`
}

// CPU settings.
type CPU struct {
	// either "6502" or "2a03"
	Variant string `mapstructure:"variant" yaml:"variant"`

	// one of "auto", "on" or "off". auto means the decimal mode follows the
	// variant
	DecimalMode string `mapstructure:"decimal_mode" yaml:"decimal_mode"`
}

// Program settings describe how the program image is placed in memory.
type Program struct {
	LoadAddress uint16 `mapstructure:"load_address" yaml:"load_address"`

	// the address execution starts at. a negative value means the load
	// address
	Entry int `mapstructure:"entry" yaml:"entry"`

	// point the reset, NMI and IRQ vectors at the entry address
	Vectors bool `mapstructure:"vectors" yaml:"vectors"`
}

// Run settings control how long and how the program is run.
type Run struct {
	MaxSteps int `mapstructure:"max_steps" yaml:"max_steps"`

	// number of cycles between NMI requests. zero means never
	NMIInterval int `mapstructure:"nmi_interval" yaml:"nmi_interval"`

	// path to a Lua script driving interrupts
	Script string `mapstructure:"script" yaml:"script"`
}

// Trace settings.
type Trace struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
}

// DefaultConfig returns the configuration used when no other values have been
// specified.
func DefaultConfig() *Config {
	return &Config{
		CPU: CPU{
			Variant:     defVariant,
			DecimalMode: defDecimalMode,
		},
		Program: Program{
			LoadAddress: defLoadAddress,
			Entry:       defEntry,
			Vectors:     defVectors,
		},
		Run: Run{
			MaxSteps:    defMaxSteps,
			NMIInterval: defNMIInterval,
			Script:      defScript,
		},
		Trace: Trace{
			Enabled: defTrace,
		},
	}
}

// NewConfig loads the configuration from the defaults, the configuration file
// (if cfgFile is not empty) and the environment. The result is validated
// before being returned.
func NewConfig(cfgFile string) (*Config, error) {
	v := viper.New()

	// set default values in viper. viper needs to know if a key exists in
	// order to override it from the environment
	b, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return nil, curated.Errorf(LoadError, err)
	}
	v.SetConfigType("yaml")
	if err := v.MergeConfig(bytes.NewReader(b)); err != nil {
		return nil, curated.Errorf(LoadError, err)
	}

	if cfgFile != "" {
		fi, err := os.Stat(cfgFile)
		if err != nil {
			return nil, curated.Errorf(LoadError, err)
		}
		if fi.IsDir() {
			return nil, curated.Errorf(LoadError, "config file is a directory")
		}

		// overwrite values from config
		v.SetConfigFile(cfgFile)
		if err := v.MergeInConfig(); err != nil {
			return nil, curated.Errorf(LoadError, err)
		}
		logger.Logf(logger.Allow, "config", "loaded %s", cfgFile)
	}

	// use environment variables as final override
	v.AutomaticEnv()
	v.SetEnvPrefix(EnvVarPrefix)
	v.SetEnvKeyReplacer(replacer)

	// preload environment bindings so they are processed on unmarshal
	cfg := DefaultConfig()
	bindVars(v, reflect.TypeOf(*cfg), "")

	if err := v.Unmarshal(cfg); err != nil {
		return nil, curated.Errorf(LoadError, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func bindVars(v *viper.Viper, t reflect.Type, prefix string) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}
		tag = prefix + tag

		if field.Type.Kind() == reflect.Struct {
			bindVars(v, field.Type, tag+".")
			continue
		}

		if err := v.BindEnv(tag); err != nil {
			logger.Logf(logger.Allow, "config", "unable to bind environment variable for %s: %v", tag, err)
		}
	}
}

// Validate checks that the configuration values are usable.
func (cfg *Config) Validate() error {
	switch strings.ToLower(cfg.CPU.Variant) {
	case Variant6502, Variant2A03:
	default:
		return curated.Errorf(UnknownVariant, cfg.CPU.Variant)
	}

	switch strings.ToLower(cfg.CPU.DecimalMode) {
	case DecimalAuto, DecimalOn, DecimalOff:
	default:
		return curated.Errorf(InvalidDecimalMode, cfg.CPU.DecimalMode)
	}

	if cfg.Program.Entry > 0xffff {
		return curated.Errorf(InvalidEntry, cfg.Program.Entry)
	}

	if cfg.Run.MaxSteps <= 0 {
		return curated.Errorf(InvalidMaxSteps, cfg.Run.MaxSteps)
	}

	if cfg.Run.NMIInterval < 0 {
		return curated.Errorf(InvalidInterval, cfg.Run.NMIInterval)
	}

	return nil
}

// DecimalArithmetic returns true if the CPU should honour the decimal flag
// for ADC and SBC.
func (c CPU) DecimalArithmetic() bool {
	switch strings.ToLower(c.DecimalMode) {
	case DecimalOn:
		return true
	case DecimalOff:
		return false
	}
	return strings.ToLower(c.Variant) != Variant2A03
}

// ClockMHz returns the clock rate of the CPU variant in MHz. The 2A03 is
// clocked at the NTSC rate.
func (c CPU) ClockMHz() float64 {
	if strings.ToLower(c.Variant) == Variant2A03 {
		return 1.789773
	}
	return 1.0
}

// EntryAddress returns the address at which execution should start.
func (p Program) EntryAddress() uint16 {
	if p.Entry < 0 {
		return p.LoadAddress
	}
	return uint16(p.Entry)
}

// Write the configuration as YAML. The output can be used as a configuration
// file.
func (cfg *Config) Write(w io.Writer) error {
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return curated.Errorf(LoadError, err)
	}
	_, err = w.Write(b)
	return err
}
