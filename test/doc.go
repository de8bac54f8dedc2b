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

// Package test contains helper functions to remove common boilerplate from
// the tests in this module.
//
// The Expect functions report a failed test with t.Errorf() and allow the
// test to continue. The Demand functions use t.Fatalf() and are useful when
// later parts of the test depend on the value being correct. For example,
// demanding that the length of a slice is correct before indexing into it.
//
// ExpectSuccess and ExpectFailure interpret values according to their type:
//
//	bool  -> true is success
//	error -> nil is success
//	nil   -> success
//
// The nil type is considered a success because that is how a nil error is
// received when passed as an interface{}.
//
// The CompareWriter type implements io.Writer and is used to capture output
// for comparison against an expected string.
package test
