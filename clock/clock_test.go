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
	"strings"
	"testing"

	"github.com/jotego/jthdl/diag"
	"github.com/jotego/jthdl/gen"
	"github.com/jotego/jthdl/hdl"
	"github.com/jotego/jthdl/netlist"
)

func TestTreeWires(t *testing.T) {
	td := []struct {
		trigger netlist.Trigger
		lang    hdl.Lang
		clk, en string
	}{
		{netlist.Rising, hdl.VHDL, "clock_tree_2(4)", "clock_tree_2(1)"},
		{netlist.Falling, hdl.VHDL, "clock_tree_2(4)", "clock_tree_2(2)"},
		{netlist.High, hdl.Verilog, "clock_tree_2[0]", "clock_tree_2[1]"},
		{netlist.Low, hdl.Verilog, "clock_tree_2[3]", "clock_tree_2[2]"},
	}
	for _, each := range td {
		clk, en := Tree{each.lang}.Wires(2, each.trigger)
		if clk != each.clk || en != each.en {
			t.Errorf("%s: got %s/%s", each.trigger, clk, en)
		}
	}
}

// a register on clock 2 gets exactly the two tree signals
func TestClockedInstance(t *testing.T) {
	var r diag.Collector
	ctx := gen.Context{Lang: hdl.VHDL, Report: &r, Clocks: Tree{hdl.VHDL}}
	g := gen.New(ctx, "memory", "Reg", "REG")
	g.SetClock("Clock", "Tick", 0)
	comp := &netlist.Component{
		Ends:  []*netlist.Net{{Name: "s_clk", Width: 1, Clock: 2}},
		Attrs: netlist.Attributes{},
	}
	m := g.PortMappings(comp)
	got := strings.Join(m.Entries(), ", ")
	if got != "Clock => clock_tree_2(4), Tick => clock_tree_2(1)" {
		t.Errorf("got %s", got)
	}
	if len(r.Entries) != 0 {
		t.Error(r.Entries)
	}
}

func TestTicker(t *testing.T) {
	td := []struct {
		fpga, tick    int
		reload, nbits string
		warn          bool
	}{
		{50000000, 1000, "50000", "16", false},
		{50000000, 3, "16666666", "24", true},
		{50000000, 0, "1", "1", false},
		{1000, 2000, "1", "1", false},
		{12, 4, "3", "2", false},
	}
	for _, each := range td {
		var r diag.Collector
		g := NewTicker(gen.Context{Lang: hdl.Verilog, Report: &r}, each.fpga, each.tick)
		if g.ModuleName != "TickGenerator" {
			t.Errorf("module %s", g.ModuleName)
		}
		if v := g.Param("ReloadValue").Value; v != each.reload {
			t.Errorf("%d/%d: reload %s", each.fpga, each.tick, v)
		}
		if v := g.Param("NrOfBits").Value; v != each.nbits {
			t.Errorf("%d/%d: bits %s", each.fpga, each.tick, v)
		}
		if (r.Count(diag.Warning) > 0) != each.warn {
			t.Errorf("%d/%d: %v", each.fpga, each.tick, r.Entries)
		}
	}
}

func TestGenerator(t *testing.T) {
	src := netlist.ClockSource{Id: 1, Comp: &netlist.Component{
		Kind:  netlist.KindClock,
		Attrs: netlist.Attributes{"high": "3", "low": "5", "phase": "9"},
	}}
	g := NewGenerator(gen.Context{Lang: hdl.VHDL}, src)
	params := strings.Join(g.ParamMappings().Entries(), ", ")
	if params != "HighTicks => 3, LowTicks => 5, Phase => 9, NrOfBits => 4" {
		t.Errorf("params %s", params)
	}
	ports := strings.Join(GeneratorPorts(hdl.VHDL, 1).Entries(), ", ")
	if ports != "GlobalClock => fpga_clock, ClockTick => fpga_tick, ClockBus => clock_tree_1" {
		t.Errorf("ports %s", ports)
	}
	entity := g.Entity().String()
	if !strings.Contains(entity, "ClockBus : OUT std_logic_vector(4 downto 0) );") {
		t.Errorf("entity:\n%s", entity)
	}
}

func TestWriteClockFiles(t *testing.T) {
	root := t.TempDir()
	src := netlist.ClockSource{Comp: &netlist.Component{Kind: netlist.KindClock, Attrs: netlist.Attributes{}}}
	for _, lang := range []hdl.Lang{hdl.VHDL, hdl.Verilog} {
		var r diag.Collector
		ctx := gen.Context{Lang: lang, Report: &r}
		if !NewTicker(ctx, 100, 10).WriteHDLFiles(root) || !NewGenerator(ctx, src).WriteHDLFiles(root) {
			t.Errorf("%s: %v", lang, r.Entries)
		}
	}
}
