/*  This file is part of JT_FRAME.
    JTFRAME program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    JTFRAME program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with JTFRAME.  If not, see <http://www.gnu.org/licenses/>.

    Author: Jose Tejada Gomez. Twitter: @topapate
    Date: 19-10-2026 */

package hdl

import (
	"strconv"
	"strings"
)

// Width is either a literal bit count or the name of a generic parameter.
// Wrapping it in parentheses forces a vector type even for one bit.
// Expressions such as "A+B" are not supported.
type Width string

func Bits(n int) Width   { return Width(strconv.Itoa(n)) }
func Vector(n int) Width { return Width("(" + strconv.Itoa(n) + ")") }

// Forced reports whether w is parenthesized
func (w Width) Forced() bool {
	return len(w) >= 2 && w[0] == '(' && w[len(w)-1] == ')'
}

// Inner strips the parentheses, if any
func (w Width) Inner() string {
	if w.Forced() {
		return strings.TrimSpace(string(w[1 : len(w)-1]))
	}
	return strings.TrimSpace(string(w))
}

// Literal returns the bit count when w is a number
func (w Width) Literal() (int, bool) {
	n, err := strconv.Atoi(w.Inner())
	if err != nil {
		return 0, false
	}
	return n, true
}

// Param returns the parameter name when w is not a number
func (w Width) Param() (string, bool) {
	inner := w.Inner()
	if !IsIdentifier(inner) {
		return "", false
	}
	return inner, true
}

// IsOne is true only for the literal "1". A parameter that happens to be
// one or "(1)" are still vectors.
func (w Width) IsOne() bool { return string(w) == "1" }

func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for k, c := range s {
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && k > 0:
		default:
			return false
		}
	}
	return true
}
