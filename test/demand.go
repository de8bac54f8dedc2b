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

package test

import "testing"

// DemandEquality is the same as ExpectEquality except that a failure stops the
// test immediately.
func DemandEquality[T comparable](t *testing.T, v T, expectedValue T, tags ...any) {
	t.Helper()
	if v != expectedValue {
		t.Fatalf("%sequality test of type %T failed: '%v' does not equal '%v'", id(tags...), v, v, expectedValue)
	}
}

// DemandSuccess is the same as ExpectSuccess except that a failure stops the
// test immediately.
func DemandSuccess(t *testing.T, v any, tags ...any) {
	t.Helper()
	ok, supported := success(v)
	if !supported {
		t.Fatalf("%sunsupported type (%T) for expectation testing", id(tags...), v)
	}
	if !ok {
		t.Fatalf("%sa success value is demanded (%T: %v)", id(tags...), v, v)
	}
}
