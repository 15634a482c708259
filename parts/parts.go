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

// Package parts has the generators of the leaf components. Each factory
// fills the descriptor tables of a gen.Generator and sets its body.
//
// End order used by the netlist for every kind:
//
//	gates     0 result, 1..n inputs
//	not       0 result, 1 input
//	adder     0 A, 1 B, 2 sum, 3 carry in, 4 carry out
//	register  0 Q, 1 clock, 2 D, 3 enable, 4 reset
//	mux       0 result, 1 select, 2..2+2^sel-1 inputs
//	led       0 input
//	button    0 output
//	dipswitch 0 output
//	sevenseg  0..6 segments a to g, 7 decimal point
//	gpio      0 pad value, 1 drive value, 2 output enable
package parts

import (
	"strconv"

	"github.com/jotego/jthdl/gen"
	"github.com/jotego/jthdl/hdl"
	"github.com/jotego/jthdl/netlist"
)

// Inlined kinds are written by the circuit generator itself
func Inlined(k netlist.Kind) bool {
	switch k {
	case netlist.KindPin, netlist.KindConstant, netlist.KindClock, netlist.KindSubcircuit:
		return true
	}
	return false
}

// New returns the generator for component comp of circuit c. It returns
// nil for inlined kinds and for unknown ones, which are also reported.
func New(ctx gen.Context, c *netlist.Circuit, comp *netlist.Component) *gen.Generator {
	ctx = ctx.For(c, comp)
	switch comp.Kind {
	case netlist.KindAnd, netlist.KindOr, netlist.KindXor,
		netlist.KindNand, netlist.KindNor, netlist.KindXnor:
		return new_gate(ctx, comp)
	case netlist.KindNot:
		return new_not(ctx, comp)
	case netlist.KindAdder:
		return new_adder(ctx, comp)
	case netlist.KindRegister:
		return new_register(ctx, comp)
	case netlist.KindMux:
		return new_mux(ctx, comp)
	case netlist.KindLed:
		return new_led(ctx)
	case netlist.KindButton:
		return new_button(ctx)
	case netlist.KindDipSwitch:
		return new_dipswitch(ctx, comp)
	case netlist.KindSevenSeg:
		return new_sevenseg(ctx)
	case netlist.KindGpio:
		return new_gpio(ctx, comp)
	}
	if !Inlined(comp.Kind) && ctx.Report != nil {
		ctx.Report.Fatal("no HDL generator for %s (%s)", comp.Name(), comp.Kind)
	}
	return nil
}

// bus_width is the common pattern of parts with a width attribute: a
// generic for buses, plain bits otherwise
func bus_width(g *gen.Generator, comp *netlist.Component) (hdl.Width, bool) {
	w := max(1, comp.Attrs.Width())
	if w == 1 {
		return "1", false
	}
	g.AddParam(gen.Param{Name: "NrOfBits", Type: gen.Positive, Value: strconv.Itoa(w)})
	return "NrOfBits", true
}

// zero spells a cleared value of a port declared by bus_width
func zero(h *hdl.Hdl, bus bool) string {
	if bus && h.IsVhdl() {
		return "(others => '0')"
	}
	if h.IsVerilog() {
		return "0"
	}
	return h.Bit(false)
}
