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

package debugger_test

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valerino/vc64-emu-sub000/config"
	"github.com/valerino/vc64-emu-sub000/curated"
	"github.com/valerino/vc64-emu-sub000/debugger"
	"github.com/valerino/vc64-emu-sub000/debugger/terminal"
	"github.com/valerino/vc64-emu-sub000/hardware"
	"github.com/valerino/vc64-emu-sub000/hardware/cpu"
	"github.com/valerino/vc64-emu-sub000/hardware/memory"
	"github.com/valerino/vc64-emu-sub000/hardware/memory/memorymap"
)

// terminal with scripted input. all output is recorded
type scriptTerm struct {
	input  []string
	output []string
	styles []terminal.Style
}

func (st *scriptTerm) Initialise() error {
	return nil
}

func (st *scriptTerm) CleanUp() {
}

func (st *scriptTerm) IsInteractive() bool {
	return false
}

func (st *scriptTerm) TermRead(_ terminal.Prompt) (string, error) {
	if len(st.input) == 0 {
		return "", io.EOF
	}
	s := st.input[0]
	st.input = st.input[1:]
	return s, nil
}

func (st *scriptTerm) TermPrintLine(style terminal.Style, s string) {
	st.styles = append(st.styles, style)
	st.output = append(st.output, s)
}

func (st *scriptTerm) count(style terminal.Style) int {
	var n int
	for _, s := range st.styles {
		if s == style {
			n++
		}
	}
	return n
}

func (st *scriptTerm) contains(s string) bool {
	for _, o := range st.output {
		if strings.Contains(o, s) {
			return true
		}
	}
	return false
}

func (st *scriptTerm) String() string {
	return strings.Join(st.output, "\n")
}

// the test program is loaded at $0200. the NMI handler is at $0300
//
//	$0200 LDA #$01
//	$0202 TAX
//	$0203 INX
//	$0204 JMP $0200
var program = []uint8{0xa9, 0x01, 0xaa, 0xe8, 0x4c, 0x00, 0x02}

const nmiHandler = 0x0300

func newTestC64(t *testing.T) *hardware.C64 {
	t.Helper()

	k := make([]uint8, memorymap.SizeKERNAL)
	k[0xfffa-0xe000] = uint8(nmiHandler & 0xff)
	k[0xfffb-0xe000] = uint8(nmiHandler >> 8)
	k[0xfffc-0xe000] = 0x00
	k[0xfffd-0xe000] = 0x02

	c, err := hardware.NewC64WithROMs(config.Default(), memory.ROMSet{Kernal: k})
	require.NoError(t, err)
	require.NoError(t, c.Reset(false))

	_, err = c.Mem.WriteBytes(0x0200, program, len(program), true)
	require.NoError(t, err)

	// RTI
	c.Mem.WriteByte(nmiHandler, 0x40, true)

	return c
}

// run the C64 with the debugger attached until the debugger quits or
// continueCheck returns false
func run(t *testing.T, c *hardware.C64, bk debugger.BreakSource, continueCheck func() (bool, error), input ...string) (*scriptTerm, error) {
	t.Helper()

	term := &scriptTerm{input: input}
	dbg := debugger.NewDebugger(c, term, bk)
	c.AttachDebugger(dbg)
	defer dbg.CleanUp()

	err := c.Run(continueCheck)
	return term, err
}

func requireQuit(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	require.True(t, curated.Is(err, cpu.QuitRequested), err.Error())
}

// stop the run loop after n instructions
func limit(n int) func() (bool, error) {
	return func() (bool, error) {
		n--
		return n > 0, nil
	}
}

func TestStep(t *testing.T) {
	c := newTestC64(t)
	term, err := run(t, c, nil, nil, "p", "p", "r", "x")
	requireQuit(t, err)

	assert.True(t, term.contains("$0200  LDA #$01"))
	assert.True(t, term.contains("$0202  TAX"))
	assert.True(t, term.contains("$0203  INX"))
	assert.True(t, term.contains("PC=0203 A=01 X=01"), term.String())
	assert.True(t, term.contains("4 cycles"), term.String())
	assert.Equal(t, uint16(0x0203), c.CPU.PC.Address())
}

func TestEndOfInput(t *testing.T) {
	c := newTestC64(t)
	term, err := run(t, c, nil, nil)
	requireQuit(t, err)
	assert.Equal(t, 0, term.count(terminal.StyleError))
	assert.Equal(t, uint16(0x0200), c.CPU.PC.Address())
}

func TestBadCommands(t *testing.T) {
	c := newTestC64(t)
	c.Mem.WriteByte(0xfff0, 0x55, true)

	term, err := run(t, c, nil, nil,
		"zz",
		"bp",
		"bp zz",
		"bp $0200 $0300",
		"bc ten",
		"bc 0",
		"d $fff0 32",
		"d $0200 0",
		"d $0200",
		"e $ffff 01,02",
		"e $fff0 1ff",
		"e $fff0",
		"h zz",
		"x",
	)
	requireQuit(t, err)

	assert.Equal(t, 13, term.count(terminal.StyleError), term.String())

	// nothing has changed
	assert.Equal(t, uint16(0x0200), c.CPU.PC.Address())
	assert.Equal(t, uint64(0), c.CPU.Cycles)
	assert.Equal(t, uint8(0x55), c.Mem.ReadByte(0xfff0, true))
	assert.Equal(t, uint8(0x00), c.Mem.ReadByte(0xffff, true))
}

func TestBreakpoint(t *testing.T) {
	c := newTestC64(t)
	term, err := run(t, c, nil, nil, "bp $0204", "g", "x")
	requireQuit(t, err)

	assert.True(t, term.contains("breakpoint at $0204"), term.String())
	assert.Equal(t, 1, term.count(terminal.StyleBreak))
	assert.Equal(t, uint16(0x0204), c.CPU.PC.Address())
	assert.Equal(t, uint8(0x02), c.CPU.X.Value())
}

func TestBreakpointRepeats(t *testing.T) {
	c := newTestC64(t)
	term, err := run(t, c, nil, nil, "bp $0203", "g", "g", "x")
	requireQuit(t, err)

	assert.Equal(t, 2, term.count(terminal.StyleBreak), term.String())
	assert.Equal(t, uint16(0x0203), c.CPU.PC.Address())
}

func TestCycleBreakpoint(t *testing.T) {
	c := newTestC64(t)

	// the loop is 9 cycles. the second LDA takes the count to 11
	term, err := run(t, c, nil, limit(100), "bc 10", "g", "g")
	require.NoError(t, err)

	assert.True(t, term.contains("cycle breakpoint at 10"), term.String())

	// the cycle breakpoint is removed once it has triggered
	assert.Equal(t, 1, term.count(terminal.StyleBreak))
}

func TestCycleBreakpointPosition(t *testing.T) {
	c := newTestC64(t)
	_, err := run(t, c, nil, nil, "bc 10", "g", "x")
	requireQuit(t, err)
	assert.Equal(t, uint16(0x0202), c.CPU.PC.Address())
	assert.Equal(t, uint64(11), c.CPU.Cycles)
}

func TestClear(t *testing.T) {
	c := newTestC64(t)
	term, err := run(t, c, nil, limit(100), "bp $0202", "bc 20", "bn", "c", "g")
	require.NoError(t, err)
	assert.Equal(t, 0, term.count(terminal.StyleBreak), term.String())
	assert.True(t, term.contains("breakpoints cleared"))
}

func TestNMIBreak(t *testing.T) {
	c := newTestC64(t)

	var n int
	check := func() (bool, error) {
		n++
		if n == 3 {
			c.CPU.NMI()
		}
		return true, nil
	}

	term, err := run(t, c, nil, check, "bn", "g", "x")
	requireQuit(t, err)

	assert.True(t, term.contains("break on NMI"), term.String())
	assert.Equal(t, uint16(nmiHandler), c.CPU.PC.Address())
}

func TestIRQBreakIgnoresNMI(t *testing.T) {
	c := newTestC64(t)

	var n int
	check := func() (bool, error) {
		n++
		if n == 3 {
			c.CPU.NMI()
		}
		return n < 50, nil
	}

	term, err := run(t, c, nil, check, "bq", "g")
	require.NoError(t, err)
	assert.Equal(t, 0, term.count(terminal.StyleBreak), term.String())
}

func TestPatchCurrentInstruction(t *testing.T) {
	c := newTestC64(t)

	// replace LDA #$01 with LDX #$05
	term, err := run(t, c, nil, nil, "e $0200 a2, 05", "p", "r", "x")
	requireQuit(t, err)

	assert.True(t, term.contains("2 byte(s) written at $0200"), term.String())
	assert.True(t, term.contains("A=00 X=05"), term.String())
	assert.Equal(t, uint16(0x0202), c.CPU.PC.Address())

	// the patched instruction is not shown again
	assert.False(t, term.contains("LDX"), term.String())
}

func TestPatchElsewhere(t *testing.T) {
	c := newTestC64(t)

	// replace INX with DEX
	term, err := run(t, c, nil, nil, "e $0203 ca", "p", "p", "r", "x")
	requireQuit(t, err)

	assert.True(t, term.contains("$0203  DEX"), term.String())
	assert.True(t, term.contains("PC=0203 A=01 X=01"), term.String())
}

func TestDumpRawAndMapped(t *testing.T) {
	c := newTestC64(t)
	term, err := run(t, c, nil, nil, "d $0200 4", "d $fffc 2", "f", "d $fffc 2", "f", "x")
	requireQuit(t, err)

	assert.True(t, term.contains("0200: a9 01 aa e8"), term.String())
	assert.True(t, term.contains("fffc: 00 02"), term.String())
	assert.True(t, term.contains("fffc: 00 00"), term.String())
	assert.True(t, term.contains("memory access is raw"))
	assert.True(t, term.contains("memory access is mapped"))
}

func TestPatchColorRAM(t *testing.T) {
	c := newTestC64(t)

	// mapped access reaches the color RAM device. raw access reaches the RAM
	// underneath it
	term, err := run(t, c, nil, nil, "e $d800 fa", "d $d800 1", "f", "e $d800 55", "d $d800 1", "x")
	requireQuit(t, err)

	assert.Equal(t, uint8(0x0a), c.Bus.Read(0xd800))
	assert.Equal(t, uint8(0x55), c.Mem.ReadByte(0xd800, true))
	assert.True(t, term.contains("d800: 0a"), term.String())
	assert.True(t, term.contains("d800: 55"), term.String())
}

func TestHelp(t *testing.T) {
	c := newTestC64(t)
	term, err := run(t, c, nil, nil, "h", "x")
	requireQuit(t, err)
	assert.Equal(t, 13, term.count(terminal.StyleHelp))

	c = newTestC64(t)
	term, err = run(t, c, nil, nil, "h d", "x")
	requireQuit(t, err)
	assert.Equal(t, 1, term.count(terminal.StyleHelp))
	assert.True(t, term.contains("d $addr count"))
}

func TestCaseInsensitive(t *testing.T) {
	c := newTestC64(t)
	term, err := run(t, c, nil, nil, "P", "R", "X")
	requireQuit(t, err)
	assert.True(t, term.contains("PC=0202 A=01"), term.String())
}

type testBreakKey struct {
	starts  int
	stops   int
	presses int
	after   int
}

func (bk *testBreakKey) Start() error {
	bk.starts++
	return nil
}

func (bk *testBreakKey) Stop() {
	bk.stops++
}

func (bk *testBreakKey) Pressed() bool {
	bk.presses++
	return bk.presses > bk.after
}

func TestBreakKey(t *testing.T) {
	c := newTestC64(t)
	bk := &testBreakKey{after: 5}

	term, err := run(t, c, bk, nil, "g", "x")
	requireQuit(t, err)

	assert.True(t, term.contains("break key"), term.String())
	assert.Equal(t, 1, bk.starts)
	assert.GreaterOrEqual(t, bk.stops, 1)
	assert.Equal(t, 6, bk.presses)
}

func TestForceBreak(t *testing.T) {
	c := newTestC64(t)
	term := &scriptTerm{input: []string{"g", "r"}}
	dbg := debugger.NewDebugger(c, term, nil)
	c.AttachDebugger(dbg)

	// console is opened for the first instruction
	_, err := c.Step(false)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		_, err = c.Step(false)
		require.NoError(t, err)
	}
	assert.Equal(t, 0, term.count(terminal.StyleBreak))

	// input is exhausted after the break
	cycles, err := c.Step(true)
	assert.Equal(t, -1, cycles)
	requireQuit(t, err)
	assert.True(t, term.contains("break requested"), term.String())
	assert.True(t, term.contains(fmt.Sprintf("PC=%04x", c.CPU.PC.Address())), term.String())
}
