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
	"github.com/jotego/jthdl/netlist"
)

// NewGenerator makes the clock bank element of one clock source. All
// sources share the module, the shape goes in the generics.
func NewGenerator(ctx gen.Context, src netlist.ClockSource) *gen.Generator {
	high, low, phase := src.High(), src.Low(), src.Phase()
	top := max(high, low, phase)
	g := gen.New(ctx.For(nil, nil), SubDir, "ClockGenerator", "CLOCKGEN")
	g.AddParam(gen.Param{Name: "HighTicks", Type: gen.Positive, Value: strconv.Itoa(high)})
	g.AddParam(gen.Param{Name: "LowTicks", Type: gen.Positive, Value: strconv.Itoa(low)})
	g.AddParam(gen.Param{Name: "Phase", Type: gen.Natural, Value: strconv.Itoa(phase)})
	g.AddParam(gen.Param{Name: "NrOfBits", Type: gen.Positive, Value: strconv.Itoa(bits_for(top))})
	g.Input("GlobalClock", "1", gen.Unconnected)
	g.Input("ClockTick", "1", gen.Unconnected)
	g.Output("ClockBus", hdl.Vector(NrOfClockBits), gen.Unconnected)
	g.AddWire("s_zero", "1")
	if ctx.Lang == hdl.VHDL {
		g.AddRegister("s_counter", "NrOfBits", "std_logic_vector(to_unsigned(Phase, NrOfBits))")
		g.AddRegister("s_derived", "1", "'0'")
	} else {
		g.AddRegister("s_counter", "NrOfBits", "Phase")
		g.AddRegister("s_derived", "1", "1'b0")
	}
	g.Body = func(h *hdl.Hdl) {
		bus := func(k int) string { return h.Index("ClockBus", k) }
		if h.IsVerilog() {
			h.Assign("s_zero", "s_counter == 0")
		} else {
			h.Stmt("s_zero <= '1' WHEN unsigned(s_counter) = 0 ELSE '0'")
		}
		h.Assign(bus(DerivedClock), "s_derived")
		h.Assign(bus(InvertedClock), h.Not("s_derived"))
		h.Assign(bus(GlobalClock), "GlobalClock")
		if h.IsVerilog() {
			h.Assign(bus(PositiveTick), "ClockTick & s_zero & ~s_derived")
			h.Assign(bus(NegativeTick), "ClockTick & s_zero & s_derived")
			h.Blank()
			h.Line("always @(posedge GlobalClock)")
			h.Indent()
			h.Line("if (ClockTick) begin")
			h.Indent()
			h.Line("if (s_zero) begin")
			h.Indent()
			h.Stmt("s_derived <= ~s_derived")
			h.Stmt("s_counter <= s_derived ? LowTicks-1 : HighTicks-1")
			h.Dedent()
			h.Stmt("end else s_counter <= s_counter-1")
			h.Dedent()
			h.Line("end")
			h.Dedent()
			return
		}
		h.Assign(bus(PositiveTick), "ClockTick AND s_zero AND NOT(s_derived)")
		h.Assign(bus(NegativeTick), "ClockTick AND s_zero AND s_derived")
		h.Blank()
		h.Line("make_counter : PROCESS(GlobalClock)")
		h.Line("BEGIN")
		h.Indent()
		h.Line("IF (rising_edge(GlobalClock)) THEN")
		h.Indent()
		h.Line("IF (ClockTick = '1') THEN")
		h.Indent()
		h.Line("IF (s_zero = '1') THEN")
		h.Indent()
		h.Stmt("s_derived <= NOT(s_derived)")
		h.Line("IF (s_derived = '1') THEN")
		h.Stmt("   s_counter <= std_logic_vector(to_unsigned(LowTicks-1, NrOfBits))")
		h.Line("ELSE")
		h.Stmt("   s_counter <= std_logic_vector(to_unsigned(HighTicks-1, NrOfBits))")
		h.Stmt("END IF")
		h.Dedent()
		h.Line("ELSE")
		h.Stmt("   s_counter <= std_logic_vector(unsigned(s_counter)-1)")
		h.Stmt("END IF")
		h.Dedent()
		h.Stmt("END IF")
		h.Dedent()
		h.Stmt("END IF")
		h.Dedent()
		h.Stmt("END PROCESS make_counter")
	}
	return g
}

// GeneratorPorts connects the clock generator of clock id
func GeneratorPorts(lang hdl.Lang, id int) *hdl.Map {
	return hdl.NewMap(lang).
		Add("GlobalClock", gen.FPGAClock).
		Add("ClockTick", FPGATick).
		Add("ClockBus", BusName(id))
}
