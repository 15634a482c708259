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
	"github.com/jotego/jthdl/gen"
	"github.com/jotego/jthdl/hdl"
	"github.com/jotego/jthdl/netlist"
)

// Edge triggered registers sample on the rising edge of Clock when Tick
// is set. The clock tree turns falling edges and levels into that form.
func new_register(ctx gen.Context, comp *netlist.Component) *gen.Generator {
	g := gen.New(ctx, "memory", "${BUS}Register_${TRIGGER}", "REGISTER")
	w, bus := bus_width(g, comp)
	edge := comp.Attrs.Trigger().Edge()
	g.Output("Q", w, 0)
	g.SetClock("Clock", "Tick", 1)
	g.Input("D", w, 2)
	g.InputDefault("Enable", "1", 3, true)
	g.InputDefault("Reset", "1", 4, false)
	// one module serves every register of the same shape, so the power up
	// value is not part of it
	g.AddRegister("s_state", w, "")
	g.Body = func(h *hdl.Hdl) {
		clr := zero(h, bus)
		if h.IsVerilog() {
			if edge {
				h.Line("always @(posedge Clock or posedge Reset)")
				h.Indent()
				h.Stmt("if (Reset) s_state <= %s", clr)
				h.Stmt("else if (Tick & Enable) s_state <= D")
			} else {
				h.Line("always @(*)")
				h.Indent()
				h.Stmt("if (Reset) s_state = %s", clr)
				h.Stmt("else if (Clock & Tick & Enable) s_state = D")
			}
			h.Dedent()
			h.Blank()
			h.Assign("Q", "s_state")
			return
		}
		if edge {
			h.Line("make_state : PROCESS(Clock, Reset)")
		} else {
			h.Line("make_state : PROCESS(Clock, Tick, Enable, D, Reset)")
		}
		h.Line("BEGIN")
		h.Indent()
		h.Stmt("IF (Reset = '1') THEN s_state <= %s", clr)
		if edge {
			h.Line("ELSIF (rising_edge(Clock)) THEN")
			h.Indent()
			h.Stmt("IF (Tick = '1' AND Enable = '1') THEN s_state <= D; END IF")
			h.Dedent()
		} else {
			h.Line("ELSIF (Clock = '1' AND Tick = '1' AND Enable = '1') THEN")
			h.Indent()
			h.Stmt("s_state <= D")
			h.Dedent()
		}
		h.Stmt("END IF")
		h.Dedent()
		h.Stmt("END PROCESS make_state")
		h.Blank()
		h.Assign("Q", "s_state")
	}
	return g
}
