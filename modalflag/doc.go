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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Arguments are set with NewArgs() and then Parse() is called with no
// arguments. Modes are added with AddSubModes(), the first mode being the
// default. After parsing, Mode() returns the selected mode:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.NewMode()
//	md.AddSubModes("RUN", "SELFTEST")
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		debug := md.AddBool("debug", false, "attach the debugger")
//		...
//	case "SELFTEST":
//		md.NewMode()
//		origin := md.AddAddress("origin", 0x0400, "start address")
//		...
//	}
//
// Mode comparisons are case insensitive. If the first argument after the
// flags is not a listed mode then the default mode is selected and the
// argument is left for RemainingArgs().
//
// The help flag (-help or -h) prints the flags and sub-modes of the current
// mode to the Output writer. AdditionalHelp() adds free text to the help
// message.
package modalflag
