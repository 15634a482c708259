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

package parts

import (
	"fmt"
	"strings"

	"github.com/jotego/jthdl/gen"
	"github.com/jotego/jthdl/hdl"
	"github.com/jotego/jthdl/netlist"
)

type gate_op struct {
	vhdl, verilog string
	negate        bool
	identity      bool // value of an unconnected input
}

var gate_ops = map[netlist.Kind]gate_op{
	netlist.KindAnd:  {"AND", "&", false, true},
	netlist.KindOr:   {"OR", "|", false, false},
	netlist.KindXor:  {"XOR", "^", false, false},
	netlist.KindNand: {"AND", "&", true, true},
	netlist.KindNor:  {"OR", "|", true, false},
	netlist.KindXnor: {"XOR", "^", true, false},
}

const max_gate_inputs = 32

func new_gate(ctx gen.Context, comp *netlist.Component) *gen.Generator {
	op := gate_ops[comp.Kind]
	n := comp.Attrs.Int("inputs", 2)
	if n < 2 || n > max_gate_inputs {
		if ctx.Report != nil {
			ctx.Report.Severe("%s: %d inputs is out of range, using 2", comp.Name(), n)
		}
		n = 2
	}
	name := strings.ToUpper(string(comp.Kind))
	g := gen.New(ctx, "gates", fmt.Sprintf("%s_%d_INPUT_${BUS}", name, n), "GATES")
	w, _ := bus_width(g, comp)
	inputs := make([]string, n)
	for k := range inputs {
		inputs[k] = fmt.Sprintf("Input_%d", k+1)
		g.InputDefault(inputs[k], w, k+1, op.identity)
	}
	g.Output("Result", w, 0)
	g.Body = func(h *hdl.Hdl) {
		sep := " " + op.vhdl + " "
		if h.IsVerilog() {
			sep = " " + op.verilog + " "
		}
		expr := strings.Join(inputs, sep)
		if op.negate {
			expr = h.Not(expr)
		}
		h.Assign("Result", expr)
	}
	return g
}

func new_not(ctx gen.Context, comp *netlist.Component) *gen.Generator {
	g := gen.New(ctx, "gates", "${BUS}Inverter", "INV")
	w, _ := bus_width(g, comp)
	g.Input("Input", w, 1)
	g.Output("Result", w, 0)
	g.Body = func(h *hdl.Hdl) {
		h.Assign("Result", h.Not("Input"))
	}
	return g
}
