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
	"strconv"

	"github.com/jotego/jthdl/gen"
	"github.com/jotego/jthdl/hdl"
	"github.com/jotego/jthdl/netlist"
)

func new_adder(ctx gen.Context, comp *netlist.Component) *gen.Generator {
	g := gen.New(ctx, "arithmetic", "${BUS}Adder", "ADDER")
	w, bus := bus_width(g, comp)
	g.Input("DataA", w, 0)
	g.Input("DataB", w, 1)
	g.Output("Result", w, 2)
	g.InputDefault("CarryIn", "1", 3, false)
	g.Output("CarryOut", "1", 4)
	if ctx.Lang == hdl.VHDL {
		ext := hdl.Width("2")
		if bus {
			g.AddParam(gen.Param{Name: "ExtendedBits", Type: gen.Positive, Value: strconv.Itoa(comp.Attrs.Width() + 1)})
			ext = "ExtendedBits"
		}
		g.AddWire("s_sum", ext)
	}
	g.Body = func(h *hdl.Hdl) {
		if h.IsVerilog() {
			h.Assign("{CarryOut, Result}", "DataA + DataB + CarryIn")
			return
		}
		h.Assign("s_sum", "std_logic_vector(unsigned('0' & DataA) + unsigned('0' & DataB) + unsigned'(0 => CarryIn))")
		if bus {
			h.Assign("Result", "s_sum(NrOfBits-1 downto 0)")
			h.Assign("CarryOut", "s_sum(NrOfBits)")
		} else {
			h.Assign("Result", "s_sum(0)")
			h.Assign("CarryOut", "s_sum(1)")
		}
	}
	return g
}
