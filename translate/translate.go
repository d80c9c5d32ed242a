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

// Package translate formats user facing numbers and messages for the user's
// locale. The locale is detected once when the package is initialised; if no
// locale can be found then en-US is used.
package translate

import (
	"github.com/jeandeaual/go-locale"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/valerino/vc64-emu-sub000/logger"
)

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		logger.Logf(logger.Allow, "translate", "locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// Printer is a locale bound formatter. Code that needs output independent of
// the detected locale (tests for example) can create one with NewPrinter().
type Printer struct {
	p *message.Printer
}

// NewPrinter returns a Printer for the named language tag. An unparseable tag
// falls back to en-US.
func NewPrinter(tag string) Printer {
	t, err := language.Parse(tag)
	if err != nil {
		t = language.AmericanEnglish
	}
	return Printer{p: message.NewPrinter(t)}
}

// Sprintf formats according to the printer's locale.
func (p Printer) Sprintf(key message.Reference, args ...any) string {
	return p.p.Sprintf(key, args...)
}

// Cycles formats a cycle count with the locale's digit grouping.
func (p Printer) Cycles(n uint64) string {
	return p.p.Sprintf("%d cycles", n)
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

// Cycles formats a cycle count using the detected locale.
func Cycles(n uint64) string {
	return Printer{p: printer}.Cycles(n)
}
