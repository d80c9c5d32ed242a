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
	"fmt"
	"strings"

	"github.com/valerino/vc64-emu-sub000/curated"
	"github.com/valerino/vc64-emu-sub000/debugger/commandline"
	"github.com/valerino/vc64-emu-sub000/debugger/terminal"
	"github.com/valerino/vc64-emu-sub000/hardware/cpu"
	"github.com/valerino/vc64-emu-sub000/hardware/memory"
	"github.com/valerino/vc64-emu-sub000/translate"
)

// debugger keywords
const (
	cmdStep      = "p"
	cmdGo        = "g"
	cmdRegisters = "r"
	cmdDump      = "d"
	cmdPatch     = "e"
	cmdBreak     = "bp"
	cmdCycles    = "bc"
	cmdIRQ       = "bq"
	cmdNMI       = "bn"
	cmdClear     = "c"
	cmdRaw       = "f"
	cmdQuit      = "x"
	cmdHelp      = "h"
)

// the largest number of bytes in a single dump
const maxDump = 0x10000

type commandFunc func(dbg *Debugger, mc *cpu.CPU, ctx cpu.Context, tokens *commandline.Tokens) (bool, cpu.Action, error)

type command struct {
	keyword string

	// the number of arguments allowed. a maxArgs value of -1 means there
	// is no upper limit
	minArgs int
	maxArgs int

	fn commandFunc
}

// commandList is in the order commands are listed by the help command
var commandList []command

func init() {
	commandList = []command{
		{keyword: cmdStep, fn: (*Debugger).cmdStep},
		{keyword: cmdGo, fn: (*Debugger).cmdGo},
		{keyword: cmdRegisters, fn: (*Debugger).cmdRegisters},
		{keyword: cmdDump, minArgs: 2, maxArgs: 2, fn: (*Debugger).cmdDump},
		{keyword: cmdPatch, minArgs: 2, maxArgs: -1, fn: (*Debugger).cmdPatch},
		{keyword: cmdBreak, minArgs: 1, maxArgs: 1, fn: (*Debugger).cmdBreak},
		{keyword: cmdCycles, minArgs: 1, maxArgs: 1, fn: (*Debugger).cmdCycles},
		{keyword: cmdIRQ, fn: (*Debugger).cmdIRQ},
		{keyword: cmdNMI, fn: (*Debugger).cmdNMI},
		{keyword: cmdClear, fn: (*Debugger).cmdClear},
		{keyword: cmdRaw, fn: (*Debugger).cmdRaw},
		{keyword: cmdQuit, fn: (*Debugger).cmdQuit},
		{keyword: cmdHelp, maxArgs: 1, fn: (*Debugger).cmdHelp},
	}
}

func findCommand(keyword string) (command, bool) {
	for _, c := range commandList {
		if c.keyword == keyword {
			return c, true
		}
	}
	return command{}, false
}

// processTokens matches the first token against the list of commands and
// calls the command function. the boolean return value is true if the
// emulation should resume, in which case the Action says how.
func (dbg *Debugger) processTokens(mc *cpu.CPU, ctx cpu.Context, tokens *commandline.Tokens) (bool, cpu.Action, error) {
	keyword, ok := tokens.Get()
	if !ok {
		return false, cpu.Continue, nil
	}

	cmd, ok := findCommand(strings.ToLower(keyword))
	if !ok {
		return false, cpu.Continue, curated.Errorf(UnknownCommand, keyword)
	}

	n := tokens.Remaining()
	if n < cmd.minArgs {
		return false, cpu.Continue, curated.Errorf(BadArgument,
			fmt.Sprintf("too few arguments for %s", cmd.keyword))
	}
	if cmd.maxArgs >= 0 && n > cmd.maxArgs {
		return false, cpu.Continue, curated.Errorf(BadArgument,
			fmt.Sprintf("too many arguments for %s", cmd.keyword))
	}

	return cmd.fn(dbg, mc, ctx, tokens)
}

func (dbg *Debugger) cmdStep(_ *cpu.CPU, _ cpu.Context, _ *commandline.Tokens) (bool, cpu.Action, error) {
	dbg.state.going = false
	return true, cpu.Continue, nil
}

func (dbg *Debugger) cmdGo(_ *cpu.CPU, _ cpu.Context, _ *commandline.Tokens) (bool, cpu.Action, error) {
	dbg.state.going = true
	return true, cpu.Continue, nil
}

func (dbg *Debugger) cmdQuit(_ *cpu.CPU, _ cpu.Context, _ *commandline.Tokens) (bool, cpu.Action, error) {
	return true, cpu.Quit, nil
}

func (dbg *Debugger) cmdRegisters(mc *cpu.CPU, _ cpu.Context, _ *commandline.Tokens) (bool, cpu.Action, error) {
	dbg.printLine(terminal.StyleFeedback, mc.String())
	dbg.printLinef(terminal.StyleFeedback, "latch=%s %s", dbg.c64.Mem.Latch(), translate.Cycles(mc.Cycles))
	return false, cpu.Continue, nil
}

// readByte and writeByte honour the raw toggle. mapped access goes through
// the bus so that IO devices see it in the same way the CPU would.
func (dbg *Debugger) readByte(address uint16) uint8 {
	if dbg.state.raw {
		return dbg.c64.Mem.ReadByte(address, true)
	}
	return dbg.c64.Bus.Read(address)
}

func (dbg *Debugger) writeByte(address uint16, data uint8) {
	if dbg.state.raw {
		dbg.c64.Mem.WriteByte(address, data, true)
		return
	}
	dbg.c64.Bus.Write(address, data)
}

// parse an address and byte count. the range must not pass the end of memory
func parseRange(addr string, count uint64) (uint16, error) {
	address, err := commandline.ParseAddress(addr)
	if err != nil {
		return 0, curated.Errorf(BadArgument, err)
	}
	if count == 0 {
		return 0, curated.Errorf(BadArgument, "zero length")
	}
	if uint64(address)+count > maxDump {
		return 0, curated.Errorf(OutOfRange, fmt.Sprintf("$%04x+%d passes $ffff", address, count))
	}
	return address, nil
}

func (dbg *Debugger) cmdDump(_ *cpu.CPU, _ cpu.Context, tokens *commandline.Tokens) (bool, cpu.Action, error) {
	addr, _ := tokens.Get()
	cnt, _ := tokens.Get()

	count, err := commandline.ParseCount(cnt)
	if err != nil {
		return false, cpu.Continue, curated.Errorf(BadArgument, err)
	}

	address, err := parseRange(addr, count)
	if err != nil {
		return false, cpu.Continue, err
	}

	dbg.printLine(terminal.StyleFeedback, memory.Dump(dbg.readByte, address, int(count)))

	return false, cpu.Continue, nil
}

func (dbg *Debugger) cmdPatch(_ *cpu.CPU, ctx cpu.Context, tokens *commandline.Tokens) (bool, cpu.Action, error) {
	addr, _ := tokens.Get()

	// byte values may be separated by spaces as well as commas
	fields := strings.FieldsFunc(tokens.Remainder(), func(r rune) bool {
		return r == ',' || r == ' '
	})
	data, err := commandline.ParseBytes(strings.Join(fields, ","))
	if err != nil {
		return false, cpu.Continue, curated.Errorf(BadArgument, err)
	}

	address, err := parseRange(addr, uint64(len(data)))
	if err != nil {
		return false, cpu.Continue, err
	}

	for i, d := range data {
		dbg.writeByte(address+uint16(i), d)
	}
	n := len(data)

	// patching the instruction about to be executed
	end := uint64(address) + uint64(n)
	if uint64(ctx.Address) < end && uint64(address) < uint64(ctx.Address)+uint64(ctx.Size) {
		dbg.state.patched = true
	}

	dbg.printLinef(terminal.StyleFeedback, "%d byte(s) written at $%04x", n, address)

	return false, cpu.Continue, nil
}

func (dbg *Debugger) cmdBreak(_ *cpu.CPU, _ cpu.Context, tokens *commandline.Tokens) (bool, cpu.Action, error) {
	addr, _ := tokens.Get()
	address, err := commandline.ParseAddress(addr)
	if err != nil {
		return false, cpu.Continue, curated.Errorf(BadArgument, err)
	}

	dbg.state.breakAddress = address
	dbg.state.hasBreakAddress = true
	dbg.printLinef(terminal.StyleFeedback, "break at $%04x", address)

	return false, cpu.Continue, nil
}

func (dbg *Debugger) cmdCycles(mc *cpu.CPU, _ cpu.Context, tokens *commandline.Tokens) (bool, cpu.Action, error) {
	cnt, _ := tokens.Get()
	cycles, err := commandline.ParseCount(cnt)
	if err != nil {
		return false, cpu.Continue, curated.Errorf(BadArgument, err)
	}
	if cycles <= mc.Cycles {
		return false, cpu.Continue, curated.Errorf(OutOfRange,
			fmt.Sprintf("%d cycles have already passed", mc.Cycles))
	}

	dbg.state.breakCycles = cycles
	dbg.state.hasBreakCycles = true
	dbg.printLinef(terminal.StyleFeedback, "break at %s", translate.Cycles(cycles))

	return false, cpu.Continue, nil
}

func (dbg *Debugger) cmdIRQ(_ *cpu.CPU, _ cpu.Context, _ *commandline.Tokens) (bool, cpu.Action, error) {
	dbg.state.breakIRQ = true
	dbg.printLine(terminal.StyleFeedback, "break on IRQ")
	return false, cpu.Continue, nil
}

func (dbg *Debugger) cmdNMI(_ *cpu.CPU, _ cpu.Context, _ *commandline.Tokens) (bool, cpu.Action, error) {
	dbg.state.breakNMI = true
	dbg.printLine(terminal.StyleFeedback, "break on NMI")
	return false, cpu.Continue, nil
}

func (dbg *Debugger) cmdClear(_ *cpu.CPU, _ cpu.Context, _ *commandline.Tokens) (bool, cpu.Action, error) {
	dbg.state.clear()
	dbg.printLine(terminal.StyleFeedback, "breakpoints cleared")
	return false, cpu.Continue, nil
}

func (dbg *Debugger) cmdRaw(_ *cpu.CPU, _ cpu.Context, _ *commandline.Tokens) (bool, cpu.Action, error) {
	dbg.state.raw = !dbg.state.raw
	if dbg.state.raw {
		dbg.printLine(terminal.StyleFeedback, "memory access is raw")
	} else {
		dbg.printLine(terminal.StyleFeedback, "memory access is mapped")
	}
	return false, cpu.Continue, nil
}

func (dbg *Debugger) cmdHelp(_ *cpu.CPU, _ cpu.Context, tokens *commandline.Tokens) (bool, cpu.Action, error) {
	if keyword, ok := tokens.Get(); ok {
		cmd, ok := findCommand(strings.ToLower(keyword))
		if !ok {
			return false, cpu.Continue, curated.Errorf(UnknownCommand, keyword)
		}
		dbg.printLinef(terminal.StyleHelp, "%-16s %s", helpUsage[cmd.keyword], helps[cmd.keyword])
		return false, cpu.Continue, nil
	}

	for _, cmd := range commandList {
		dbg.printLinef(terminal.StyleHelp, "%-16s %s", helpUsage[cmd.keyword], helps[cmd.keyword])
	}
	return false, cpu.Continue, nil
}
