// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with the Errorf() function, which takes a
// pattern and placeholder values in the same way as fmt.Errorf().
//
// The pattern is what identifies a curated error. Sentinel patterns should be
// stored as exported string constants by the package that produces them:
//
//	const AddressError = "address error: %#04x"
//
//	err := curated.Errorf(AddressError, addr)
//	if curated.Is(err, AddressError) {
//		...
//	}
//
// Has() is similar to Is() but looks for the pattern anywhere in a chain of
// curated errors:
//
//	f := curated.Errorf("cartridge: %v", err)
//	curated.Has(f, AddressError) // true
//	curated.Is(f, AddressError)  // false
//
// The Error() implementation normalises the message so that duplicate
// adjacent parts are removed. Parts are separated by ": " so that
//
//	cpu: cpu: invalid opcode
//
// is printed as
//
//	cpu: invalid opcode
//
// Curated errors also implement Unwrap() so that the standard errors.Is() and
// errors.As() functions see through them to any wrapped error values.
package curated
