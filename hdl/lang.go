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
	"strings"

	"github.com/pkg/errors"
)

type Lang int

const (
	VHDL Lang = iota
	Verilog
)

func ParseLang(s string) (Lang, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vhdl", "vhd":
		return VHDL, nil
	case "verilog", "v":
		return Verilog, nil
	}
	return VHDL, errors.Errorf("unsupported HDL language %q (use vhdl or verilog)", s)
}

func (l Lang) String() string {
	if l == Verilog {
		return "Verilog"
	}
	return "VHDL"
}

// Dir is the root folder for the files of this language
func (l Lang) Dir() string {
	if l == Verilog {
		return "verilog"
	}
	return "vhdl"
}

// Terminator closes a statement. VHDL and Verilog agree on it.
func (l Lang) Terminator() string { return ";" }

func (l Lang) Ext() string {
	if l == Verilog {
		return ".v"
	}
	return ".vhd"
}
