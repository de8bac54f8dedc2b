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

package curated_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/tonnyrh/psprg2crt/curated"
	"github.com/tonnyrh/psprg2crt/test"
)

const testError = "test error: %s"
const testErrorB = "test error B: %s"

func TestDuplicateErrors(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectEquality(t, e.Error(), "test error: foo")

	// packing errors of the same type next to each other causes
	// one of them to be dropped
	f := curated.Errorf(testError, e)
	test.ExpectEquality(t, f.Error(), "test error: foo")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, testError))
	test.ExpectFailure(t, curated.Is(e, testErrorB))

	// Has() should fail if err is nil
	test.ExpectFailure(t, curated.Is(nil, testError))

	// plain errors are never curated
	p := errors.New("plain error")
	test.ExpectFailure(t, curated.IsAny(p))
	test.ExpectFailure(t, curated.Is(p, testError))
}

func TestHas(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	f := curated.Errorf(testErrorB, e)
	test.ExpectEquality(t, f.Error(), "test error B: test error: foo")

	test.ExpectFailure(t, curated.Is(f, testError))
	test.ExpectSuccess(t, curated.Has(f, testError))
	test.ExpectSuccess(t, curated.Has(f, testErrorB))
	test.ExpectFailure(t, curated.Has(nil, testError))
}

func TestUnwrap(t *testing.T) {
	e := curated.Errorf("loading: %v", fs.ErrNotExist)
	test.ExpectSuccess(t, errors.Is(e, fs.ErrNotExist))

	f := curated.Errorf("stage: %v", e)
	test.ExpectSuccess(t, errors.Is(f, fs.ErrNotExist))

	g := curated.Errorf(testError, "no error values")
	test.ExpectFailure(t, errors.Is(g, fs.ErrNotExist))
}
