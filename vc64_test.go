// This file is part of vc64.
//
// vc64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// vc64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with vc64.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/valerino/vc64-emu-sub000/config"
	"github.com/valerino/vc64-emu-sub000/curated"
	"github.com/valerino/vc64-emu-sub000/hardware/cpu"
	"github.com/valerino/vc64-emu-sub000/hardware/memory"
	"github.com/valerino/vc64-emu-sub000/test"
)

func TestExitValue(t *testing.T) {
	test.ExpectEquality(t, exitValue(nil), exitOK)
	test.ExpectEquality(t, exitValue(curated.Errorf(cpu.QuitRequested)), exitOK)
	test.ExpectEquality(t, exitValue(curated.Errorf(cpu.SelfTestPassed, 100)), exitOK)
	test.ExpectEquality(t, exitValue(curated.Errorf(memory.BiosLoadFailure, "missing")), exitSetup)
	test.ExpectEquality(t, exitValue(curated.Errorf(config.ConfigFailure, "bad")), exitSetup)
	test.ExpectEquality(t, exitValue(curated.Errorf(commandLineFailure, "bad")), exitSetup)
	test.ExpectEquality(t, exitValue(curated.Errorf(cpu.SelfTestStalled, 0x0400)), exitError)
	test.ExpectEquality(t, exitValue(fmt.Errorf("other")), exitError)
}

func TestVersionMode(t *testing.T) {
	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"version"}, tw), exitOK)
	test.ExpectSuccess(t, strings.HasPrefix(tw.String(), "vc64 "))
}

func TestBadFlag(t *testing.T) {
	t.Chdir(t.TempDir())
	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"run", "-nosuchflag"}, tw), exitSetup)

	tw = &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"selftest", "-nosuchflag"}, tw), exitSetup)
}

func TestTooManyArguments(t *testing.T) {
	t.Chdir(t.TempDir())
	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"run", "a.prg", "b.prg"}, tw), exitSetup)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "too many arguments"), tw.String())

	tw = &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"selftest", "extra"}, tw), exitSetup)
}

// write a configuration file and return its name
func writeConfig(t *testing.T, dir string, s string) string {
	t.Helper()
	fn := filepath.Join(dir, "test.toml")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(s), 0o644))
	return fn
}

func TestMissingROMs(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	cfg := writeConfig(t, dir, `
[roms]
basic = "missing/basic.bin"
kernal = "missing/kernal.bin"
charset = "missing/chargen.bin"
`)

	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"-config", cfg}, tw), exitSetup)
}

func TestSelfTestMode(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	// three NOPs and then a jump to self at the success address
	bin := filepath.Join(dir, "pass.bin")
	test.DemandSuccess(t, os.WriteFile(bin, []byte{0xea, 0xea, 0xea, 0x4c, 0x03, 0x04}, 0o644))

	tw := &test.CompareWriter{}
	code := launch([]string{"selftest", "-program", bin, "-load", "0400", "-origin", "$0400", "-success", "$0403"}, tw)
	test.ExpectEquality(t, code, exitOK)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "self-test passed"), tw.String())
}

func TestSelfTestStall(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	// jump to self at the origin
	bin := filepath.Join(dir, "stall.bin")
	test.DemandSuccess(t, os.WriteFile(bin, []byte{0x4c, 0x00, 0x04}, 0o644))

	cfg := writeConfig(t, dir, fmt.Sprintf(`
[selftest]
program = %q
load = 0x0400
origin = 0x0400
success = 0x0500
`, bin))

	tw := &test.CompareWriter{}
	code := launch([]string{"selftest", "-config", cfg}, tw)
	test.ExpectEquality(t, code, exitError)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "stalled at $0400"), tw.String())

	// the log is written on a failed exit
	logs, err := filepath.Glob(filepath.Join(dir, "crash_*.log"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(logs), 1)
}
