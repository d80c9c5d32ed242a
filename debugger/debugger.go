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

package debugger

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/valerino/vc64-emu-sub000/debugger/commandline"
	"github.com/valerino/vc64-emu-sub000/debugger/terminal"
	"github.com/valerino/vc64-emu-sub000/hardware"
	"github.com/valerino/vc64-emu-sub000/hardware/cpu"
	"github.com/valerino/vc64-emu-sub000/logger"
)

// BreakSource is polled between instructions while the debugger is in go
// mode. A true result from Pressed() stops the emulation. The breakkey
// package provides an implementation.
type BreakSource interface {
	Start() error
	Stop()
	Pressed() bool
}

// Debugger is the basic debugging frontend for the emulation. It implements
// the cpu.Hook interface.
type Debugger struct {
	c64      *hardware.C64
	term     terminal.Terminal
	breakKey BreakSource

	state state
}

// NewDebugger creates and initialises everything required for a new
// debugging session. The debugger is not attached to the C64 until
// C64.AttachDebugger() is called. The breakKey argument may be nil.
func NewDebugger(c64 *hardware.C64, term terminal.Terminal, breakKey BreakSource) *Debugger {
	return &Debugger{
		c64:      c64,
		term:     term,
		breakKey: breakKey,
	}
}

func (dbg *Debugger) printLine(style terminal.Style, s string) {
	dbg.term.TermPrintLine(style, s)
}

func (dbg *Debugger) printLinef(style terminal.Style, format string, a ...any) {
	dbg.term.TermPrintLine(style, fmt.Sprintf(format, a...))
}

// PreExecute implements the cpu.Hook interface.
func (dbg *Debugger) PreExecute(mc *cpu.CPU, ctx cpu.Context) cpu.Action {
	// the instruction has been decoded again after being patched
	if dbg.state.skipConsole {
		dbg.state.skipConsole = false
		return cpu.Continue
	}

	reason := dbg.checkBreak(mc, ctx)
	if reason == "" && dbg.state.going {
		return cpu.Continue
	}

	if dbg.state.going {
		dbg.state.going = false
		dbg.stopBreakKey()
	}

	if reason != "" {
		dbg.printLine(terminal.StyleBreak, reason)
	}

	return dbg.console(mc, ctx)
}

// Interrupted implements the cpu.Hook interface.
func (dbg *Debugger) Interrupted(kind cpu.InterruptKind) {
	if (kind == cpu.IRQ && dbg.state.breakIRQ) || (kind == cpu.NMI && dbg.state.breakNMI) {
		dbg.state.pendingInterrupt = kind
		dbg.state.hasPending = true
	}
}

// returns the reason for a break or the empty string if there is no reason
// to break. one-shot conditions are removed as they are reported
func (dbg *Debugger) checkBreak(mc *cpu.CPU, ctx cpu.Context) string {
	if ctx.ForceBreak {
		return "break requested"
	}

	if dbg.state.hasPending {
		dbg.state.hasPending = false
		return fmt.Sprintf("break on %s", dbg.state.pendingInterrupt)
	}

	if dbg.state.hasBreakAddress && ctx.Address == dbg.state.breakAddress {
		return fmt.Sprintf("breakpoint at $%04x", ctx.Address)
	}

	if dbg.state.hasBreakCycles && mc.Cycles >= dbg.state.breakCycles {
		dbg.state.hasBreakCycles = false
		return fmt.Sprintf("cycle breakpoint at %d", dbg.state.breakCycles)
	}

	if dbg.state.going && dbg.breakKey != nil && dbg.breakKey.Pressed() {
		return "break key"
	}

	return ""
}

// the console loop. returns when a command resumes or quits the emulation
func (dbg *Debugger) console(mc *cpu.CPU, ctx cpu.Context) cpu.Action {
	dbg.state.patched = false

	instruction := disassemble(ctx)
	dbg.printLinef(terminal.StyleInstruction, "$%04x  %s", ctx.Address, instruction)

	prompt := terminal.Prompt{
		Type:    terminal.PromptTypeCPUStep,
		Address: ctx.Address,
		Content: instruction,
	}

	for {
		input, err := dbg.term.TermRead(prompt)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				dbg.printLine(terminal.StyleError, err.Error())
			}
			logger.Log(logger.Allow, "debugger", "end of input")
			return cpu.Quit
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		dbg.printLine(terminal.StyleEcho, input)

		resume, action, err := dbg.processTokens(mc, ctx, commandline.TokeniseInput(input))
		if err != nil {
			dbg.printLine(terminal.StyleError, err.Error())
			continue
		}

		if resume {
			return dbg.resume(action)
		}
	}
}

// leave the console. a patched instruction is skipped so that it is decoded
// again with the new bytes
func (dbg *Debugger) resume(action cpu.Action) cpu.Action {
	if action == cpu.Continue && dbg.state.patched {
		dbg.state.patched = false
		dbg.state.skipConsole = true
		action = cpu.Skip
	}

	if dbg.state.going {
		dbg.startBreakKey()
	}

	return action
}

func (dbg *Debugger) startBreakKey() {
	if dbg.breakKey == nil {
		return
	}
	if err := dbg.breakKey.Start(); err != nil {
		logger.Logf(logger.Allow, "debugger", "break key: %v", err)
	}
}

func (dbg *Debugger) stopBreakKey() {
	if dbg.breakKey != nil {
		dbg.breakKey.Stop()
	}
}

// CleanUp stops the break key watcher if it is running.
func (dbg *Debugger) CleanUp() {
	dbg.stopBreakKey()
}
