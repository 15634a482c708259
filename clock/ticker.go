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

package clock

import (
	"strconv"

	"github.com/jotego/jthdl/gen"
	"github.com/jotego/jthdl/hdl"
)

// NewTicker divides fpgaHz down to a tick of tickHz. A tick frequency at
// or above the FPGA clock gives a tick that is always set.
func NewTicker(ctx gen.Context, fpgaHz, tickHz int) *gen.Generator {
	reload := 1
	if tickHz > 0 && tickHz < fpgaHz {
		reload = fpgaHz / tickHz
		if fpgaHz%tickHz != 0 && ctx.Report != nil {
			ctx.Report.Warn("tick of %d Hz is not a divisor of the %d Hz FPGA clock, using %d Hz",
				tickHz, fpgaHz, fpgaHz/reload)
		}
	}
	g := gen.New(ctx.For(nil, nil), SubDir, "TickGenerator", "TICKER")
	g.AddParam(gen.Param{Name: "NrOfBits", Type: gen.Positive, Value: strconv.Itoa(bits_for(reload - 1))})
	g.AddParam(gen.Param{Name: "ReloadValue", Type: gen.Positive, Value: strconv.Itoa(reload)})
	g.Input("FPGAClock", "1", gen.Unconnected)
	g.Output("FPGATick", "1", gen.Unconnected)
	if ctx.Lang == hdl.VHDL {
		g.AddRegister("s_count", "NrOfBits", "(others => '0')")
		g.AddRegister("s_tick", "1", "'0'")
	} else {
		g.AddRegister("s_count", "NrOfBits", "0")
		g.AddRegister("s_tick", "1", "1'b0")
	}
	g.Body = func(h *hdl.Hdl) {
		h.Assign("FPGATick", "s_tick")
		h.Blank()
		if h.IsVerilog() {
			h.Line("always @(posedge FPGAClock)")
			h.Indent()
			h.Line("if (s_count == 0) begin")
			h.Indent()
			h.Stmt("s_count <= ReloadValue-1")
			h.Stmt("s_tick  <= 1'b1")
			h.Dedent()
			h.Line("end else begin")
			h.Indent()
			h.Stmt("s_count <= s_count-1")
			h.Stmt("s_tick  <= 1'b0")
			h.Dedent()
			h.Line("end")
			h.Dedent()
			return
		}
		h.Line("make_tick : PROCESS(FPGAClock)")
		h.Line("BEGIN")
		h.Indent()
		h.Line("IF (rising_edge(FPGAClock)) THEN")
		h.Indent()
		h.Line("IF (unsigned(s_count) = 0) THEN")
		h.Indent()
		h.Stmt("s_count <= std_logic_vector(to_unsigned(ReloadValue-1, NrOfBits))")
		h.Stmt("s_tick  <= '1'")
		h.Dedent()
		h.Line("ELSE")
		h.Indent()
		h.Stmt("s_count <= std_logic_vector(unsigned(s_count)-1)")
		h.Stmt("s_tick  <= '0'")
		h.Dedent()
		h.Stmt("END IF")
		h.Dedent()
		h.Stmt("END IF")
		h.Dedent()
		h.Stmt("END PROCESS make_tick")
	}
	return g
}

// TickerPorts connects the ticker to the top level nets
func TickerPorts(lang hdl.Lang) *hdl.Map {
	return hdl.NewMap(lang).Add("FPGAClock", gen.FPGAClock).Add("FPGATick", FPGATick)
}
