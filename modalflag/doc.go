// This file is part of psprg2crt.
//
// psprg2crt is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// psprg2crt is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with psprg2crt.  If not, see <https://www.gnu.org/licenses/>.

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It adds program modes, each with their own set of flags.
//
// Arguments are given to a Modes instance with NewArgs() and then parsed with
// Parse(). Sub-modes are added before parsing with AddSubModes(). The first
// sub-mode is the default and is selected when the first argument is not the
// name of a sub-mode:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("CONVERT", "INFO")
//	_, _ = md.Parse()
//
//	switch md.Mode() {
//	case "CONVERT":
//		convert(md)
//	case "INFO":
//		info(md)
//	}
//
// Sub-mode comparisons are case insensitive and Mode() always returns the
// upper case name.
//
// Once a mode has been selected, NewMode() prepares for the flags of that
// mode. Calling Parse() again processes the arguments that follow the mode
// name:
//
//	func convert(md *modalflag.Modes) error {
//		md.NewMode()
//		verbose := md.AddBool("log", false, "echo log to stdout")
//		p, err := md.Parse()
//		if err != nil || p != modalflag.ParseContinue {
//			return err
//		}
//		...
//	}
//
// Non-flag arguments are retrieved with RemainingArgs() or GetArg(). When the
// -help flag is given, Parse() prints the available flags and sub-modes to
// the Output field and returns ParseHelp.
package modalflag
