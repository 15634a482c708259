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

// Package hdl is the code buffer shared by all generators. It knows how
// VHDL and Verilog spell types, literals, assignments and comments, so the
// generators can describe a module once for both languages.
package hdl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jotego/jthdl/diag"
)

const indent_str = "   "

type Hdl struct {
	Lang   Lang
	report diag.Reporter
	lines  []string
	depth  int
}

func New(lang Lang, report diag.Reporter) *Hdl {
	return &Hdl{Lang: lang, report: report}
}

func (h *Hdl) IsVhdl() bool    { return h.Lang == VHDL }
func (h *Hdl) IsVerilog() bool { return h.Lang == Verilog }

// Line adds one line at the current indentation, as given
func (h *Hdl) Line(format string, a ...interface{}) *Hdl {
	line := format
	if len(a) > 0 {
		line = fmt.Sprintf(format, a...)
	}
	h.lines = append(h.lines, strings.Repeat(indent_str, h.depth)+line)
	return h
}

// Stmt adds one statement with the terminator of the language
func (h *Hdl) Stmt(format string, a ...interface{}) *Hdl {
	return h.Line(format+h.Lang.Terminator(), a...)
}

func (h *Hdl) Blank() *Hdl {
	h.lines = append(h.lines, "")
	return h
}

// Indent and Dedent must be balanced by the caller
func (h *Hdl) Indent() *Hdl {
	h.depth++
	return h
}

func (h *Hdl) Dedent() *Hdl {
	if h.depth > 0 {
		h.depth--
	}
	return h
}

func (h *Hdl) Comment(format string, a ...interface{}) *Hdl {
	mark := "-- "
	if h.IsVerilog() {
		mark = "// "
	}
	return h.Line(mark+format, a...)
}

// Assign emits a continuous assignment
func (h *Hdl) Assign(dst, src string) *Hdl {
	if h.IsVhdl() {
		return h.Stmt("%s <= %s", dst, src)
	}
	return h.Stmt("assign %s = %s", dst, src)
}

// AssignRange assigns the bits hi..lo of src to dst
func (h *Hdl) AssignRange(dst, src string, hi, lo int) *Hdl {
	if hi == lo {
		return h.Assign(dst, h.Index(src, hi))
	}
	return h.Assign(dst, h.Range(src, hi, lo))
}

// Add appends the lines of other at the current indentation
func (h *Hdl) Add(other *Hdl) *Hdl {
	pre := strings.Repeat(indent_str, h.depth)
	for _, each := range other.lines {
		if each == "" {
			h.lines = append(h.lines, "")
		} else {
			h.lines = append(h.lines, pre+each)
		}
	}
	return h
}

func (h *Hdl) Lines() []string { return h.lines }

// Empty is true when nothing but blank lines was emitted
func (h *Hdl) Empty() bool {
	for _, each := range h.lines {
		if strings.TrimSpace(each) != "" {
			return false
		}
	}
	return true
}

func (h *Hdl) String() string {
	if len(h.lines) == 0 {
		return ""
	}
	return strings.Join(h.lines, "\n") + "\n"
}

// TypeForWidth spells the declaration type. For Verilog it returns the
// range prefix, or an empty string for a single bit.
func (h *Hdl) TypeForWidth(w Width) string {
	top, ok := h.msb(w)
	if !ok {
		if h.IsVhdl() {
			return "std_logic"
		}
		return ""
	}
	if top == "" {
		if h.IsVhdl() {
			return "std_logic"
		}
		return ""
	}
	if h.IsVhdl() {
		return "std_logic_vector(" + top + " downto 0)"
	}
	return "[" + top + ":0]"
}

// msb spells the index of the most significant bit. An empty string
// means a scalar.
func (h *Hdl) msb(w Width) (string, bool) {
	if n, ok := w.Literal(); ok {
		if n <= 0 {
			h.fatal("invalid width %q", string(w))
			return "", false
		}
		if n == 1 && !w.Forced() {
			return "", true
		}
		return strconv.Itoa(n - 1), true
	}
	if name, ok := w.Param(); ok {
		return name + "-1", true
	}
	h.fatal("malformed width %q: only a bit count or a parameter name are allowed", string(w))
	return "", false
}

func (h *Hdl) fatal(format string, a ...interface{}) {
	if h.report != nil {
		h.report.Fatal(format, a...)
	}
}

func (h *Hdl) Bit(b bool) string {
	switch {
	case h.IsVhdl() && b:
		return "'1'"
	case h.IsVhdl():
		return "'0'"
	case b:
		return "1'b1"
	default:
		return "1'b0"
	}
}

// Literal spells value as a binary literal of the given width
func (h *Hdl) Literal(value uint64, width int) string {
	if width <= 0 {
		h.fatal("literal of invalid width %d", width)
		width = 1
	}
	if width == 1 {
		return h.Bit(value&1 != 0)
	}
	var b strings.Builder
	for k := width - 1; k >= 0; k-- {
		if k < 64 && (value>>uint(k))&1 != 0 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	if h.IsVhdl() {
		return "\"" + b.String() + "\""
	}
	return strconv.Itoa(width) + "'b" + b.String()
}

// Fill repeats a bit over width bits
func (h *Hdl) Fill(width int, b bool) string {
	if width <= 1 {
		return h.Bit(b)
	}
	if h.IsVhdl() {
		return "(others => " + h.Bit(b) + ")"
	}
	return "{" + strconv.Itoa(width) + "{" + h.Bit(b) + "}}"
}

func (h *Hdl) Not(expr string) string {
	if h.IsVhdl() {
		return "NOT(" + expr + ")"
	}
	return "~(" + expr + ")"
}

func (h *Hdl) Index(name string, k int) string {
	if h.IsVhdl() {
		return fmt.Sprintf("%s(%d)", name, k)
	}
	return fmt.Sprintf("%s[%d]", name, k)
}

func (h *Hdl) Range(name string, hi, lo int) string {
	if h.IsVhdl() {
		return fmt.Sprintf("%s(%d downto %d)", name, hi, lo)
	}
	return fmt.Sprintf("%s[%d:%d]", name, hi, lo)
}

// Open is the actual for a port left unconnected
func (h *Hdl) Open() string {
	if h.IsVhdl() {
		return "open"
	}
	return ""
}
