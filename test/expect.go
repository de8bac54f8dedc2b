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

import (
	"fmt"
	"testing"
)

// id returns the tags formatted as a prefix for a failure message.
func id(tags ...any) string {
	if len(tags) == 0 {
		return ""
	}
	return fmt.Sprintf("%v: ", tags)
}

// success interprets v as a success or failure value. the second return
// value is false if the type of v is not supported.
func success(v any) (bool, bool) {
	switch v := v.(type) {
	case nil:
		return true, true
	case bool:
		return v, true
	case error:
		return v == nil, true
	}
	return false, false
}

// ExpectEquality tests that v is equal to expectedValue.
func ExpectEquality[T comparable](t *testing.T, v T, expectedValue T, tags ...any) bool {
	t.Helper()
	if v != expectedValue {
		t.Errorf("%sequality test of type %T failed: '%v' does not equal '%v'", id(tags...), v, v, expectedValue)
		return false
	}
	return true
}

// ExpectInequality tests that v is not equal to unexpectedValue.
func ExpectInequality[T comparable](t *testing.T, v T, unexpectedValue T, tags ...any) bool {
	t.Helper()
	if v == unexpectedValue {
		t.Errorf("%sinequality test of type %T failed: '%v' equals '%v'", id(tags...), v, v, unexpectedValue)
		return false
	}
	return true
}

// ExpectSuccess tests v for a success value. See the package documentation
// for how values are interpreted.
func ExpectSuccess(t *testing.T, v any, tags ...any) bool {
	t.Helper()
	ok, supported := success(v)
	if !supported {
		t.Fatalf("%sunsupported type (%T) for expectation testing", id(tags...), v)
		return false
	}
	if !ok {
		t.Errorf("%sexpected success (%T: %v)", id(tags...), v, v)
		return false
	}
	return true
}

// ExpectFailure tests v for a failure value. See the package documentation
// for how values are interpreted.
func ExpectFailure(t *testing.T, v any, tags ...any) bool {
	t.Helper()
	ok, supported := success(v)
	if !supported {
		t.Fatalf("%sunsupported type (%T) for expectation testing", id(tags...), v)
		return false
	}
	if ok {
		t.Errorf("%sexpected failure (%T)", id(tags...), v)
		return false
	}
	return true
}
