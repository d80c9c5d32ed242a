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

// Package editterm implements the Terminal interface for the vc64 debugger
// using the line editor from golang.org/x/term. Input is read with the
// terminal in raw mode, giving cursor movement and history. The terminal is
// returned to its original mode between reads so that the emulation's own
// output is not disturbed.
//
// The EditTerminal can only be used when standard input is a terminal. Use
// Available() to check.
package editterm

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/valerino/vc64-emu-sub000/debugger/terminal"
)

// EditTerminal implements the terminal.Terminal interface.
type EditTerminal struct {
	input  *os.File
	output *os.File
	term   *term.Terminal
}

// Available returns true if standard input and output are both terminals.
func Available() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// NewEditTerminal is the preferred method of initialisation for the
// EditTerminal type.
func NewEditTerminal() *EditTerminal {
	return &EditTerminal{
		input:  os.Stdin,
		output: os.Stdout,
	}
}

// Initialise implements the terminal.Terminal interface.
func (et *EditTerminal) Initialise() error {
	if !term.IsTerminal(int(et.input.Fd())) {
		return errors.New("editterm: input is not a terminal")
	}

	rw := struct {
		io.Reader
		io.Writer
	}{et.input, et.output}

	et.term = term.NewTerminal(rw, "")

	return nil
}

// CleanUp implements the terminal.Terminal interface.
func (et *EditTerminal) CleanUp() {
}

// TermPrintLine implements the terminal.Output interface.
func (et *EditTerminal) TermPrintLine(style terminal.Style, s string) {
	if style == terminal.StyleEcho {
		return
	}

	esc := et.term.Escape
	switch style {
	case terminal.StyleError:
		s = fmt.Sprintf("%s* %s%s", esc.Red, s, esc.Reset)
	case terminal.StyleBreak:
		s = fmt.Sprintf("%s%s%s", esc.Yellow, s, esc.Reset)
	case terminal.StyleInstruction:
		s = fmt.Sprintf("%s%s%s", esc.Cyan, s, esc.Reset)
	}

	fmt.Fprintln(et.output, s)
}

// TermRead implements the terminal.Input interface.
func (et *EditTerminal) TermRead(prompt terminal.Prompt) (string, error) {
	fd := int(et.input.Fd())

	state, err := term.MakeRaw(fd)
	if err != nil {
		return "", fmt.Errorf("editterm: %w", err)
	}
	defer term.Restore(fd, state)

	et.term.SetPrompt(prompt.String())

	return et.term.ReadLine()
}

// IsInteractive implements the terminal.Input interface.
func (et *EditTerminal) IsInteractive() bool {
	return true
}
