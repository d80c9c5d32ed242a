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

package terminal_test

import (
	"testing"

	"github.com/valerino/vc64-emu-sub000/debugger/terminal"
	"github.com/valerino/vc64-emu-sub000/test"
)

func TestPrompt(t *testing.T) {
	p := terminal.Prompt{Type: terminal.PromptTypeCPUStep, Address: 0xe5cd}
	test.ExpectEquality(t, p.String(), "[ $e5cd ] >> ")

	p.Content = " JMP $e5cd "
	test.ExpectEquality(t, p.String(), "[ $e5cd JMP $e5cd ] >> ")

	p = terminal.Prompt{Type: terminal.PromptTypeBare, Content: "> "}
	test.ExpectEquality(t, p.String(), "> ")
}
