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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valerino/vc64-emu-sub000/config"
	"github.com/valerino/vc64-emu-sub000/curated"
)

func TestParse(t *testing.T) {
	cfg, err := config.Parse(`
[roms]
basic = "b.bin"

[selftest]
load = 0x0200
success = 0x1234

[debugger]
enabled = true
`)
	require.NoError(t, err)

	assert.Equal(t, "b.bin", cfg.ROMs.Basic)
	assert.Equal(t, "roms/kernal.bin", cfg.ROMs.Kernal)
	assert.Equal(t, uint16(0x0200), cfg.SelfTest.Load)
	assert.Equal(t, uint16(0x0400), cfg.SelfTest.Origin)
	assert.Equal(t, uint16(0x1234), cfg.SelfTest.Success)
	assert.True(t, cfg.Debugger.Enabled)
	assert.True(t, cfg.Debugger.Editing)
	assert.False(t, cfg.Log.Echo)
}

func TestParseErrors(t *testing.T) {
	_, err := config.Parse(`[roms`)
	require.Error(t, err)
	assert.True(t, curated.Is(err, config.ConfigFailure))

	_, err = config.Parse("[roms]\nbasik = \"x\"\n")
	require.Error(t, err)
	assert.True(t, curated.Is(err, config.ConfigFailure))

	// value out of range for a 16 bit address
	_, err = config.Parse("[selftest]\nload = 0x10000\n")
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "test.toml")
	require.NoError(t, os.WriteFile(fn, []byte("[log]\necho = true\n[roms]\ncharset = \"/abs/chargen.bin\"\n"), 0600))

	cfg, err := config.Load(fn)
	require.NoError(t, err)
	assert.True(t, cfg.Log.Echo)
	assert.Equal(t, "/abs/chargen.bin", cfg.ROMs.Charset)

	_, err = config.Load(filepath.Join(dir, "missing.toml"))
	assert.True(t, curated.Is(err, config.ConfigFailure))
}
