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


package debugger

import (
	"strconv"
	"strings"

	"github.com/nojan1/6502.ts/curated"
	"github.com/nojan1/6502.ts/hardware/memory/addresses"
)

// parseNumber accepts decimal values and hexadecimal values prefixed with $
// or 0x.
func parseNumber(s string, bits int) (uint64, error) {
	base := 10
	switch {
	case strings.HasPrefix(s, "$"):
		s = s[1:]
		base = 16
	case strings.HasPrefix(strings.ToLower(s), "0x"):
		s = s[2:]
		base = 16
	}

	v, err := strconv.ParseUint(s, base, bits)
	if err != nil {
		return 0, curated.Errorf("not a valid %d bit number (%s)", bits, s)
	}
	return v, nil
}

// parseAddress accepts any number accepted by parseNumber() or the name of a
// TIA or RIOT register.
func parseAddress(s string) (uint16, error) {
	if a, ok := addresses.SymbolAddress(strings.ToUpper(s)); ok {
		return a, nil
	}
	v, err := parseNumber(s, 16)
	if err != nil {
		return 0, curated.Errorf("not a valid address (%s)", s)
	}
	return uint16(v), nil
}

// parseCount returns the integer argument at idx or def if there is no such
// argument. The value must be at least one.
func parseCount(args []string, idx int, def int) (int, error) {
	if idx >= len(args) {
		return def, nil
	}
	v, err := strconv.Atoi(args[idx])
	if err != nil || v < 1 {
		return 0, curated.Errorf("not a valid count (%s)", args[idx])
	}
	return v, nil
}
