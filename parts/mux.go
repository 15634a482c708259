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

func new_mux(ctx gen.Context, comp *netlist.Component) *gen.Generator {
	sel := comp.Attrs.Int("select", 1)
	if sel < 1 || sel > 5 {
		if ctx.Report != nil {
			ctx.Report.Severe("%s: %d select bits is out of range, using 1", comp.Name(), sel)
		}
		sel = 1
	}
	n := 1 << uint(sel)
	g := gen.New(ctx, "plexers", fmt.Sprintf("Multiplexer_${BUS}_%d", n), "PLEXERS")
	w, _ := bus_width(g, comp)
	g.Output("Result", w, 0)
	g.Input("Sel", hdl.Bits(sel), 1)
	inputs := make([]string, n)
	for k := range inputs {
		inputs[k] = fmt.Sprintf("MuxIn_%d", k)
		g.InputDefault(inputs[k], w, k+2, false)
	}
	g.Body = func(h *hdl.Hdl) {
		if h.IsVerilog() {
			var b strings.Builder
			for k := 0; k < n-1; k++ {
				fmt.Fprintf(&b, "(Sel == %s) ? %s : ", h.Literal(uint64(k), sel), inputs[k])
			}
			b.WriteString(inputs[n-1])
			h.Assign("Result", b.String())
			return
		}
		h.Line("Result <= %s WHEN Sel = %s ELSE", inputs[0], h.Literal(0, sel))
		h.Indent()
		for k := 1; k < n-1; k++ {
			h.Line("%s WHEN Sel = %s ELSE", inputs[k], h.Literal(uint64(k), sel))
		}
		h.Stmt("%s", inputs[n-1])
		h.Dedent()
	}
	return g
}
