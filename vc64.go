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
	"io"
	"os"
	"path/filepath"

	"github.com/bradleyjkemp/memviz"

	"github.com/valerino/vc64-emu-sub000/config"
	"github.com/valerino/vc64-emu-sub000/curated"
	"github.com/valerino/vc64-emu-sub000/debugger"
	"github.com/valerino/vc64-emu-sub000/debugger/terminal"
	"github.com/valerino/vc64-emu-sub000/debugger/terminal/breakkey"
	"github.com/valerino/vc64-emu-sub000/debugger/terminal/editterm"
	"github.com/valerino/vc64-emu-sub000/debugger/terminal/plainterm"
	"github.com/valerino/vc64-emu-sub000/hardware"
	"github.com/valerino/vc64-emu-sub000/hardware/cpu"
	"github.com/valerino/vc64-emu-sub000/hardware/memory"
	"github.com/valerino/vc64-emu-sub000/logger"
	"github.com/valerino/vc64-emu-sub000/modalflag"
	"github.com/valerino/vc64-emu-sub000/paths"
	"github.com/valerino/vc64-emu-sub000/statsview"
	"github.com/valerino/vc64-emu-sub000/version"
)

// exit values
const (
	exitOK = 0

	// bad command line or the machine could not be created
	exitSetup = 10

	// the emulation ended with an error
	exitError = 20
)

// the command line for a mode could not be parsed
const commandLineFailure = "command line: %v"

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch parses the command line and runs the selected mode. returns the exit
// value for the process.
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "SELFTEST", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitSetup
	}

	logger.Log(logger.Allow, "vc64", version.String())

	var program string

	switch md.Mode() {
	case "RUN":
		program, err = run(md, output)

	case "SELFTEST":
		err = selfTest(md, output)

	case "VERSION":
		fmt.Fprintln(output, version.String())
	}

	code := exitValue(err)
	if code != exitOK {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		dumpLog(program)
	}

	return code
}

// exitValue maps the error that ended a mode to an exit value. a quit from
// the debugger and a passed self-test are not failures
func exitValue(err error) int {
	switch {
	case err == nil:
		return exitOK
	case curated.Is(err, cpu.QuitRequested):
		return exitOK
	case curated.Is(err, cpu.SelfTestPassed):
		return exitOK
	case curated.Has(err, memory.BiosLoadFailure):
		return exitSetup
	case curated.Has(err, config.ConfigFailure):
		return exitSetup
	case curated.Has(err, commandLineFailure):
		return exitSetup
	}
	return exitError
}

// write the central log to a uniquely named file
func dumpLog(program string) {
	if program != "" {
		program = filepath.Base(program)
	}

	fn := paths.UniqueFilename("crash", program) + ".log"
	f, err := os.Create(fn)
	if err != nil {
		return
	}
	defer f.Close()

	if logger.Write(f) {
		fmt.Fprintf(os.Stderr, "log written to %s\n", fn)
	}
}

func loadConfig(filename string, echo bool) (config.Config, error) {
	cfg, err := config.Load(filename)
	if err != nil {
		return cfg, err
	}

	if echo || cfg.Log.Echo {
		logger.SetEcho(os.Stderr)
	}

	return cfg, nil
}

// run the C64. returns the name of the attached program, if any
func run(md *modalflag.Modes, output io.Writer) (string, error) {
	md.NewMode()

	cfgFile := md.AddString("config", "", "configuration file")
	debug := md.AddBool("debug", false, "attach the debugger")
	noEdit := md.AddBool("noedit", false, "no line editing in the debugger")
	echo := md.AddBool("log", false, "echo log to stderr")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	mv := md.AddString("memviz", "", "write a memviz graph of the machine state to file on exit")
	md.AdditionalHelp("A single .prg file may follow the flags. It is loaded when the KERNAL\nis waiting for keyboard input.")

	p, err := md.Parse()
	if err != nil {
		return "", curated.Errorf(commandLineFailure, err)
	}
	if p != modalflag.ParseContinue {
		return "", nil
	}

	var program string
	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		program = md.GetArg(0)
	default:
		return "", curated.Errorf(commandLineFailure, fmt.Sprintf("too many arguments for %s mode", md))
	}

	cfg, err := loadConfig(*cfgFile, *echo)
	if err != nil {
		return program, err
	}

	if *stats {
		statsview.Launch(output)
	}

	c64, err := hardware.NewC64(cfg)
	if err != nil {
		return program, err
	}

	if err := c64.Reset(false); err != nil {
		return program, err
	}

	if program != "" {
		c64.AttachProgram(program)
	}

	if *debug || cfg.Debugger.Enabled {
		term := newTerminal(cfg.Debugger.Editing && !*noEdit)
		if err := term.Initialise(); err != nil {
			return program, err
		}
		defer term.CleanUp()

		dbg := debugger.NewDebugger(c64, term, breakkey.NewBreakKey())
		defer dbg.CleanUp()

		c64.AttachDebugger(dbg)
	}

	err = c64.Run(nil)

	if *mv != "" {
		if err := writeMemviz(*mv, c64); err != nil {
			logger.Log(logger.Allow, "vc64", err)
		}
	}

	return program, err
}

// the editing terminal is only used when stdin is a terminal
func newTerminal(editing bool) terminal.Terminal {
	if editing && editterm.Available() {
		return editterm.NewEditTerminal()
	}
	return plainterm.NewPlainTerminal(os.Stdin, os.Stdout)
}

// write a graphviz representation of the machine state
func writeMemviz(filename string, c64 *hardware.C64) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("memviz: %w", err)
	}
	defer f.Close()

	memviz.Map(f, c64.Snapshot())
	logger.Logf(logger.Allow, "vc64", "memviz graph written to %s", filename)

	return nil
}

// run the CPU self-test program. the C64 is created without ROMs because the
// self-test occupies the entire address space
func selfTest(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	cfgFile := md.AddString("config", "", "configuration file")
	echo := md.AddBool("log", false, "echo log to stderr")
	program := md.AddString("program", "", "self-test binary")
	load := md.AddAddress("load", 0, "load address of the binary")
	origin := md.AddAddress("origin", 0, "address of the first instruction")
	success := md.AddAddress("success", 0, "address reached on success")

	p, err := md.Parse()
	if err != nil {
		return curated.Errorf(commandLineFailure, err)
	}
	if p != modalflag.ParseContinue {
		return nil
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf(commandLineFailure, fmt.Sprintf("too many arguments for %s mode", md))
	}

	cfg, err := loadConfig(*cfgFile, *echo)
	if err != nil {
		return err
	}

	// flags override the configuration file
	md.Visit(func(flg string) {
		switch flg {
		case "program":
			cfg.SelfTest.Program = *program
		case "load":
			cfg.SelfTest.Load = *load
		case "origin":
			cfg.SelfTest.Origin = *origin
		case "success":
			cfg.SelfTest.Success = *success
		}
	})

	c64, err := hardware.NewC64WithROMs(cfg, memory.ROMSet{})
	if err != nil {
		return err
	}

	if err := c64.Reset(true); err != nil {
		return err
	}

	err = c64.Run(nil)
	if curated.Is(err, cpu.SelfTestPassed) {
		fmt.Fprintln(output, err.Error())
		return nil
	}
	if err == nil {
		err = curated.Errorf(cpu.SelfTestStalled, c64.CPU.PC.Address())
	}

	return err
}
