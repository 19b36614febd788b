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

package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/famiemu/famiemu/commands"
	"github.com/famiemu/famiemu/curated"
	"github.com/famiemu/famiemu/hardware/cpu"
	"github.com/famiemu/famiemu/performance"
	"github.com/famiemu/famiemu/test"
)

// writeFile creates a file in a temporary directory and returns its path.
func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o644))
	return fn
}

// execute the command tree with the arguments. returns stdout.
func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer

	root := commands.NewRootCommand()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(input))

	err := root.Execute()
	return out.String(), err
}

// LDA #$05; STA $10; JMP $0604
var storeAndTrap = []byte{0xa9, 0x05, 0x85, 0x10, 0x4c, 0x04, 0x06}

func TestRun(t *testing.T) {
	img := writeFile(t, "prog.bin", storeAndTrap)

	out, err := execute(t, "", "run", img)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out, "trapped after 3 steps"))
	test.ExpectSuccess(t, strings.Contains(out, "A:05 X:00 Y:00 P:24 SP:FD CYC:8"))
	test.ExpectSuccess(t, strings.Contains(out, "PC=0604"))

	// no trace output without the trace setting
	test.ExpectFailure(t, strings.Contains(out, "LDA #$05"))
}

func TestRunArgs(t *testing.T) {
	_, err := execute(t, "", "run")
	test.ExpectFailure(t, err)

	_, err = execute(t, "", "run", filepath.Join(t.TempDir(), "missing.bin"))
	test.ExpectFailure(t, err)
}

func TestRunSteps(t *testing.T) {
	// INX; JMP $0600
	img := writeFile(t, "loop.bin", []byte{0xe8, 0x4c, 0x00, 0x06})

	out, err := execute(t, "", "run", "--steps", "6", img)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out, "maximum steps reached after 6 steps"))
	test.ExpectSuccess(t, strings.Contains(out, "X:03"))
}

func TestRunFault(t *testing.T) {
	img := writeFile(t, "bad.bin", []byte{0x02})

	out, err := execute(t, "", "run", img)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, cpu.UnknownOpcode))
	test.ExpectSuccess(t, strings.Contains(out, "fault after 0 steps"))
}

func TestConfigFile(t *testing.T) {
	cfg := writeFile(t, "famiemu.yaml", []byte("run:\n  max_steps: 4\ntrace:\n  enabled: true\n"))
	img := writeFile(t, "loop.bin", []byte{0xe8, 0x4c, 0x00, 0x06})

	out, err := execute(t, "", "--config", cfg, "run", img)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out, "maximum steps reached after 4 steps"))
	test.ExpectSuccess(t, strings.Contains(out, "0601  JMP $0600"))

	out, err = execute(t, "", "--config", cfg, "config")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out, "max_steps: 4"))
	test.ExpectSuccess(t, strings.Contains(out, "load_address: 1536"))

	_, err = execute(t, "", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "config")
	test.ExpectFailure(t, err)
}

func TestTrace(t *testing.T) {
	img := writeFile(t, "prog.bin", storeAndTrap)

	out, err := execute(t, "", "trace", img)
	test.ExpectSuccess(t, err)

	lines := strings.Split(out, "\n")
	test.DemandSuccess(t, len(lines) > 3)
	test.ExpectSuccess(t, strings.HasPrefix(lines[0], "0600  LDA #$05"))
	test.ExpectSuccess(t, strings.HasPrefix(lines[1], "0602  STA $10"))
	test.ExpectSuccess(t, strings.HasPrefix(lines[2], "0604  JMP $0604"))
	test.ExpectSuccess(t, strings.HasPrefix(lines[3], "trapped after 3 steps"))
}

func TestStep(t *testing.T) {
	img := writeFile(t, "prog.bin", storeAndTrap)

	out, err := execute(t, "s q", "step", img)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out, "0600  LDA #$05"))
	test.ExpectSuccess(t, strings.Contains(out, "0602  STA $10"))
	test.ExpectSuccess(t, strings.Contains(out, "0604  JMP $0604"))
	test.ExpectFailure(t, strings.Contains(out, "trapped"))

	// run to the end
	out, err = execute(t, "r", "step", img)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out, "trapped after 3 steps"))

	// no ANSI sequences when output is not a terminal
	test.ExpectFailure(t, strings.Contains(out, "\033["))
}

func TestStepInterrupts(t *testing.T) {
	img := writeFile(t, "prog.bin", storeAndTrap)

	// the interrupt disable flag is set after reset so the IRQ is ignored
	out, err := execute(t, "in", "step", img)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out, "IRQ ignored"))
	test.ExpectSuccess(t, strings.Contains(out, "NMI (7 cycles)"))
	test.ExpectSuccess(t, strings.Contains(out, "SP:FA CYC:7"))
}

func TestStepFault(t *testing.T) {
	img := writeFile(t, "bad.bin", []byte{0xea, 0x02})

	out, err := execute(t, "ss", "step", img)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, cpu.UnknownOpcode))
	test.ExpectSuccess(t, strings.Contains(out, "unknown opcode"))
}

func TestOpcodes(t *testing.T) {
	out, err := execute(t, "", "opcodes")
	test.ExpectSuccess(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	test.ExpectEquality(t, len(lines), 151)
	test.ExpectSuccess(t, strings.HasPrefix(lines[0], "00  BRK  Implied"))
	test.ExpectSuccess(t, strings.Contains(out, "BD  LDA  AbsoluteX"))

	out, err = execute(t, "", "opcodes", "--modes")
	test.ExpectSuccess(t, err)
	lines = strings.Split(strings.TrimSpace(out), "\n")
	test.ExpectEquality(t, len(lines), 56)
	test.ExpectSuccess(t, strings.Contains(out, "JMP  Absolute, Indirect\n"))
}

func TestMemviz(t *testing.T) {
	img := writeFile(t, "prog.bin", storeAndTrap)
	fn := filepath.Join(t.TempDir(), "cpu.dot")

	_, err := execute(t, "", "--memviz", fn, "run", img)
	test.ExpectSuccess(t, err)

	dot, err := os.ReadFile(fn)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(dot), "digraph"))
}

func TestStatsviewUnavailable(t *testing.T) {
	// tests are built without the statsview tag
	_, err := execute(t, "", "--statsview", "opcodes")
	test.ExpectSuccess(t, curated.Is(err, commands.NoStatsview))
}

func TestDisasm(t *testing.T) {
	img := writeFile(t, "prog.bin", append(append([]byte{}, storeAndTrap...), 0xff))

	out, err := execute(t, "", "disasm", "--bytecode", img)
	test.ExpectSuccess(t, err)

	expected := `0600  A9 05     LDA #$05
0602  85 10     STA $10
0604  4C 04 06  JMP $0604
0607  FF        .byte $FF
`
	test.ExpectEquality(t, out, expected)
}

func TestPerformProfile(t *testing.T) {
	img := writeFile(t, "prog.bin", storeAndTrap)

	_, err := execute(t, "", "perform", "--profile", "disk", img)
	test.ExpectSuccess(t, curated.Is(err, performance.UnknownProfile))
}

func TestStepMemory(t *testing.T) {
	img := writeFile(t, "prog.bin", storeAndTrap)

	// step twice so that $10 has been written then show the zero page
	out, err := execute(t, "ssz", "step", img)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out, "001- |  05"))

	// the NMI pushes the PC and status
	out, err = execute(t, "nk", "step", img)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out, "01F- | "))
	test.ExpectSuccess(t, strings.Contains(out, " 24 00 06"))
}
