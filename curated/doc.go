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

// Package curated is a helper package for errors that are expected to occur
// during a conversion. A curated error remembers the pattern it was created
// with so that callers can identify the error without comparing the final
// message.
//
// Packages that produce curated errors export the patterns they use as string
// constants. For example, the loader package exports:
//
//	const InputTooShort = "loader: prg is too short (%d bytes)"
//
// and the error can be identified by:
//
//	if curated.Is(err, loader.InputTooShort) {
//		...
//	}
//
// The Has() function is similar but looks through the chain of curated errors
// passed as values to Errorf(). Each stage of the conversion wraps errors with
// its own prefix, for example "convert: %v", so the Is() test will fail for
// the wrapped error but Has() will succeed.
//
// When the message of a curated error is built, adjacent parts that are the
// same are collapsed into one. This means that a stage is free to wrap an
// error with a prefix that the error already carries.
//
//	e := curated.Errorf("crt: %v", "too many banks")
//	f := curated.Errorf("crt: %v", e)
//	fmt.Println(f) // crt: too many banks
//
// Curated errors also unwrap to the first plain error in their values, so
// errors.Is() from the standard library continues to work for errors like
// fs.ErrNotExist.
package curated
