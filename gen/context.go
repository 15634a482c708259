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

package gen

import (
	"github.com/jotego/jthdl/diag"
	"github.com/jotego/jthdl/hdl"
	"github.com/jotego/jthdl/netlist"
)

// FPGAClock is the top level net carrying the board oscillator
const FPGAClock = "fpga_clock"

// ClockTree gives the clock and enable signals that a component with
// the given trigger must use for one clock of the design.
type ClockTree interface {
	Wires(id int, trigger netlist.Trigger) (clock, enable string)
}

// Context is everything a generator needs from the outside
type Context struct {
	Lang    hdl.Lang
	Attrs   netlist.Attributes
	Circuit *netlist.Circuit   // enclosing netlist, nil for top level generators
	Comp    *netlist.Component // originating component
	Seq     uint64             // used by ${UID}
	Project string
	Report  diag.Reporter
	Clocks  ClockTree
	// Tristate selects real inout ports instead of _IN/_OUT/_EN triples
	Tristate bool
	Out      *Files
}

// For returns a copy of the context bound to one component of circuit c
func (ctx Context) For(c *netlist.Circuit, comp *netlist.Component) Context {
	ctx.Circuit = c
	ctx.Comp = comp
	ctx.Attrs = nil
	if comp != nil {
		ctx.Attrs = comp.Attrs
	}
	return ctx
}

func (ctx *Context) fatal(format string, a ...interface{}) {
	if ctx.Report != nil {
		ctx.Report.Fatal(format, a...)
	}
}

func (ctx *Context) severe(format string, a ...interface{}) {
	if ctx.Report != nil {
		ctx.Report.Severe(format, a...)
	}
}

// Files collects the paths written during one run
type Files struct {
	Paths []string
}

// Add records a written file. It is safe on a nil Files.
func (f *Files) Add(path string) {
	if f != nil {
		f.Paths = append(f.Paths, path)
	}
}
