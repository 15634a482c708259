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
	"strings"
	"testing"

	"github.com/jotego/jthdl/diag"
	"github.com/jotego/jthdl/gen"
	"github.com/jotego/jthdl/hdl"
	"github.com/jotego/jthdl/netlist"
)

func comp(kind netlist.Kind, attrs netlist.Attributes) *netlist.Component {
	if attrs == nil {
		attrs = netlist.Attributes{}
	}
	return &netlist.Component{Kind: kind, Label: "u", Attrs: attrs}
}

func TestModuleNames(t *testing.T) {
	td := []struct {
		kind  netlist.Kind
		attrs netlist.Attributes
		name  string
		feat  gen.Feature
	}{
		{netlist.KindAnd, netlist.Attributes{"inputs": "3"}, "AND_3_INPUT_Bit", gen.FeaturePlain},
		{netlist.KindXnor, netlist.Attributes{"width": "4"}, "XNOR_2_INPUT_Bus", gen.FeaturePlain},
		{netlist.KindNot, nil, "BitInverter", gen.FeaturePlain},
		{netlist.KindAdder, netlist.Attributes{"width": "8"}, "BusAdder", gen.FeaturePlain},
		{netlist.KindRegister, netlist.Attributes{"trigger": "falling"}, "BitRegister_FlipFlop", gen.FeaturePlain | gen.FeatureClock},
		{netlist.KindRegister, netlist.Attributes{"trigger": "high", "width": "2"}, "BusRegister_Latch", gen.FeaturePlain | gen.FeatureClock},
		{netlist.KindMux, netlist.Attributes{"select": "2", "width": "4"}, "Multiplexer_Bus_4", gen.FeaturePlain},
		{netlist.KindLed, nil, "Led", gen.FeaturePlain | gen.FeatureHidden},
		{netlist.KindButton, nil, "Button", gen.FeaturePlain | gen.FeatureHidden},
		{netlist.KindDipSwitch, netlist.Attributes{"width": "3"}, "DipSwitch_3", gen.FeaturePlain | gen.FeatureHidden},
		{netlist.KindSevenSeg, nil, "SevenSegment", gen.FeaturePlain | gen.FeatureHidden},
		{netlist.KindGpio, netlist.Attributes{"width": "2"}, "Gpio_2", gen.FeaturePlain | gen.FeatureHidden},
	}
	for _, each := range td {
		var r diag.Collector
		g := New(gen.Context{Lang: hdl.VHDL, Report: &r}, nil, comp(each.kind, each.attrs))
		if g == nil {
			t.Fatalf("%s: no generator", each.kind)
		}
		if g.ModuleName != each.name {
			t.Errorf("%s: got %s", each.kind, g.ModuleName)
		}
		if g.Features() != each.feat {
			t.Errorf("%s: features %b", each.kind, g.Features())
		}
		if len(r.Entries) != 0 {
			t.Errorf("%s: %v", each.kind, r.Entries)
		}
	}
}

func TestInlinedAndUnknown(t *testing.T) {
	for _, kind := range []netlist.Kind{netlist.KindPin, netlist.KindConstant, netlist.KindClock, netlist.KindSubcircuit} {
		var r diag.Collector
		if New(gen.Context{Report: &r}, nil, comp(kind, nil)) != nil || len(r.Entries) != 0 {
			t.Errorf("%s should be inlined", kind)
		}
	}
	var r diag.Collector
	if New(gen.Context{Report: &r}, nil, comp("flux", nil)) != nil || !r.Has(diag.Fatal, "no HDL generator") {
		t.Error("unknown kind accepted")
	}
}

func body(g *gen.Generator) string {
	h := hdl.New(g.Lang(), nil)
	g.Body(h)
	return h.String()
}

func TestBodies(t *testing.T) {
	td := []struct {
		lang  hdl.Lang
		kind  netlist.Kind
		attrs netlist.Attributes
		want  string
	}{
		{hdl.VHDL, netlist.KindNand, nil, "Result <= NOT(Input_1 AND Input_2);"},
		{hdl.Verilog, netlist.KindXor, netlist.Attributes{"inputs": "3"}, "assign Result = Input_1 ^ Input_2 ^ Input_3;"},
		{hdl.Verilog, netlist.KindMux, nil, "assign Result = (Sel == 1'b0) ? MuxIn_0 : MuxIn_1;"},
		{hdl.VHDL, netlist.KindMux, netlist.Attributes{"select": "2"}, "MuxIn_2 WHEN Sel = \"10\" ELSE"},
		{hdl.Verilog, netlist.KindAdder, netlist.Attributes{"width": "8"}, "assign {CarryOut, Result} = DataA + DataB + CarryIn;"},
		{hdl.VHDL, netlist.KindAdder, netlist.Attributes{"width": "8"}, "CarryOut <= s_sum(NrOfBits);"},
		{hdl.VHDL, netlist.KindRegister, nil, "ELSIF (rising_edge(Clock)) THEN"},
		{hdl.Verilog, netlist.KindRegister, netlist.Attributes{"trigger": "low"}, "else if (Clock & Tick & Enable) s_state = D;"},
		{hdl.VHDL, netlist.KindSevenSeg, nil, "hidden_out(7) <= DecimalPoint;"},
		{hdl.Verilog, netlist.KindGpio, netlist.Attributes{"width": "2"}, "assign hidden_io = GpioEnable ? GpioOut : {2{1'bz}};"},
		{hdl.Verilog, netlist.KindButton, nil, "assign ButtonOut = hidden_in[0];"},
	}
	for _, each := range td {
		g := New(gen.Context{Lang: each.lang}, nil, comp(each.kind, each.attrs))
		if got := body(g); !strings.Contains(got, each.want) {
			t.Errorf("%s %s: missing %q in\n%s", each.lang, each.kind, each.want, got)
		}
	}
}

func TestGateDefaults(t *testing.T) {
	x := &netlist.Net{Name: "s_x", Width: 1, Clock: -1}
	and := comp(netlist.KindAnd, nil)
	and.Ends = []*netlist.Net{x, x}
	or := comp(netlist.KindOr, nil)
	or.Ends = []*netlist.Net{x, x}
	for c, want := range map[*netlist.Component]string{and: "'1'", or: "'0'"} {
		var r diag.Collector
		g := New(gen.Context{Lang: hdl.VHDL, Report: &r}, nil, c)
		m := g.PortMappings(c)
		if v, _ := m.Get("Input_2"); v != want {
			t.Errorf("%s: open input => %s", c.Kind, v)
		}
		if v, _ := m.Get("Input_1"); v != "s_x" {
			t.Errorf("%s: Input_1 => %s", c.Kind, v)
		}
		if len(r.Entries) != 0 {
			t.Errorf("%s: %v", c.Kind, r.Entries)
		}
	}
}

func TestDipSwitchCoercion(t *testing.T) {
	sw := comp(netlist.KindDipSwitch, nil)
	sw.Ends = []*netlist.Net{{Name: "s_sw", Width: 1, Clock: -1}}
	sw.Hidden = &netlist.HiddenRange{InStart: 2, InEnd: 2, OutStart: -1, OutEnd: -1, IOStart: -1, IOEnd: -1}
	g := New(gen.Context{Lang: hdl.VHDL}, nil, sw)
	got := strings.Join(g.PortMappings(sw).Entries(), ", ")
	if got != "DipOut(0) => s_sw, hidden_in => hidden_in(2 downto 2)" {
		t.Errorf("got %s", got)
	}
}

func TestWriteAllParts(t *testing.T) {
	root := t.TempDir()
	kinds := []netlist.Kind{netlist.KindAnd, netlist.KindNor, netlist.KindNot, netlist.KindAdder,
		netlist.KindRegister, netlist.KindMux, netlist.KindLed, netlist.KindButton,
		netlist.KindDipSwitch, netlist.KindSevenSeg, netlist.KindGpio}
	for _, lang := range []hdl.Lang{hdl.VHDL, hdl.Verilog} {
		for _, width := range []string{"1", "4"} {
			for _, kind := range kinds {
				var r diag.Collector
				g := New(gen.Context{Lang: lang, Report: &r}, nil, comp(kind, netlist.Attributes{"width": width}))
				if !g.WriteHDLFiles(root) || len(r.Entries) != 0 {
					t.Errorf("%s %s/%s: %v", lang, kind, width, r.Entries)
				}
			}
		}
	}
}
