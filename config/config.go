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

// Package config loads the vc64 configuration file. The file is TOML and all
// fields are optional; missing fields keep the values returned by Default().
//
//	[roms]
//	basic = "roms/basic.bin"
//	kernal = "roms/kernal.bin"
//	charset = "roms/chargen.bin"
//
//	[selftest]
//	program = "roms/6502_functional_test.bin"
//	load = 0x000a
//	origin = 0x0400
//	success = 0x347d
//
//	[debugger]
//	enabled = false
//	editing = true
//
//	[log]
//	echo = false
//
// Relative file names are resolved with paths.Resolve().
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/valerino/vc64-emu-sub000/curated"
	"github.com/valerino/vc64-emu-sub000/paths"
)

// ConfigFailure is the pattern for all errors returned by Load().
const ConfigFailure = "config: %v"

// DefaultFile is the name of the configuration file looked for when no file
// is named on the command line.
const DefaultFile = "vc64.toml"

// ROMs names the three ROM images.
type ROMs struct {
	Basic   string `toml:"basic"`
	Kernal  string `toml:"kernal"`
	Charset string `toml:"charset"`
}

// SelfTest describes the CPU self-test program.
type SelfTest struct {
	Program string `toml:"program"`
	Load    uint16 `toml:"load"`
	Origin  uint16 `toml:"origin"`
	Success uint16 `toml:"success"`
}

// Debugger options.
type Debugger struct {
	Enabled bool `toml:"enabled"`
	Editing bool `toml:"editing"`
}

// Log options.
type Log struct {
	Echo bool `toml:"echo"`
}

// Config is the entire configuration.
type Config struct {
	ROMs     ROMs     `toml:"roms"`
	SelfTest SelfTest `toml:"selftest"`
	Debugger Debugger `toml:"debugger"`
	Log      Log      `toml:"log"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		ROMs: ROMs{
			Basic:   "roms/basic.bin",
			Kernal:  "roms/kernal.bin",
			Charset: "roms/chargen.bin",
		},
		SelfTest: SelfTest{
			Program: "roms/6502_functional_test.bin",
			Load:    0x000a,
			Origin:  0x0400,
			Success: 0x347d,
		},
		Debugger: Debugger{
			Enabled: false,
			Editing: true,
		},
	}
}

// Load reads the named file over the default configuration. If the file
// does not exist and it is the default file then the default configuration is
// returned without error.
func Load(filename string) (Config, error) {
	cfg := Default()

	if filename == "" {
		filename = DefaultFile
		if _, err := os.Stat(paths.Resolve(filename)); err != nil {
			return cfg.resolve(), nil
		}
	}

	md, err := toml.DecodeFile(paths.Resolve(filename), &cfg)
	if err != nil {
		return cfg, curated.Errorf(ConfigFailure, err)
	}

	if undec := md.Undecoded(); len(undec) > 0 {
		return cfg, curated.Errorf(ConfigFailure, curated.Errorf("unknown key %s", undec[0].String()))
	}

	return cfg.resolve(), nil
}

// Parse decodes configuration text over the default configuration.
func Parse(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return cfg, curated.Errorf(ConfigFailure, err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return cfg, curated.Errorf(ConfigFailure, curated.Errorf("unknown key %s", undec[0].String()))
	}
	return cfg, nil
}

func (cfg Config) resolve() Config {
	cfg.ROMs.Basic = paths.Resolve(cfg.ROMs.Basic)
	cfg.ROMs.Kernal = paths.Resolve(cfg.ROMs.Kernal)
	cfg.ROMs.Charset = paths.Resolve(cfg.ROMs.Charset)
	cfg.SelfTest.Program = paths.Resolve(cfg.SelfTest.Program)
	return cfg
}
