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

package toplevel

import (
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jotego/jthdl/diag"
	"github.com/jotego/jthdl/gen"
	"github.com/jotego/jthdl/hdl"
	"github.com/jotego/jthdl/netlist"
	"github.com/jotego/jthdl/pins"
)

const board = `
name: testboard
vendor: %s
clock: {pin: W5, frequency: 100000000, standard: LVCMOS33}
resources:
  - {name: sw, direction: input, width: 2, pins: [V17, V16]}
  - {name: keys, direction: input, width: 1, active_high: false, pins: [T18]}
  - {name: leds, direction: output, width: 3, pins: [U16, E19, U19], standard: LVCMOS33}
  - {name: pmod, direction: inout, width: 1, pins: [J1]}
  - {name: pads, direction: inout, width: 1, active_high: false, pins: [K2]}
`

const design = `
name: demo
main: top
circuits:
  - name: top
    nets:
      - {name: clk}
      - {name: a, width: 2}
      - {name: y, width: 2}
      - {name: b}
      - {name: q}
    components:
      - {kind: clock, label: CLK, ends: [clk]}
      - {kind: pin, label: A, attrs: {width: 2}, ends: [a]}
      - {kind: pin, label: Y, attrs: {direction: output, width: 2}, ends: [y]}
      - {kind: and, label: g, attrs: {width: 2}, ends: [y, a, a]}
      - {kind: button, label: B0, ends: [b]}
      - {kind: register, label: r, ends: [q, clk, b]}
      - {kind: led, label: L0, ends: [q]}
      - {kind: gpio, label: IO, attrs: {width: 2}}
`

const bindings = `
bindings:
  - {source: A, to: sw}
  - {source: Y, bits: [{to: leds}, {to: leds, offset: 1}]}
  - {source: top/B0, to: keys}
  - {source: top/L0, to: leds, offset: 2}
  - {source: top/IO, bits: [{to: pmod}, {const: 1}]}
`

func load(t *testing.T, lang hdl.Lang, vendor, bind string) (*Generator, *diag.Collector) {
	return load_opts(t, lang, vendor, bind, Options{TickHz: 1000})
}

func load_opts(t *testing.T, lang hdl.Lang, vendor, bind string, opts Options) (*Generator, *diag.Collector) {
	return build(t, lang, vendor, design, bind, opts)
}

func build(t *testing.T, lang hdl.Lang, vendor, design, bind string, opts Options) (*Generator, *diag.Collector) {
	var r diag.Collector
	b, err := pins.ParseBoard([]byte(strings.Replace(board, "%s", vendor, 1)))
	if err != nil {
		t.Fatal(err)
	}
	d, err := netlist.Parse([]byte(design), &r)
	if err != nil {
		t.Fatal(err)
	}
	bb, err := pins.ParseBindings([]byte(bind))
	if err != nil {
		t.Fatal(err)
	}
	plan := pins.Resolve(d, b, bb, &r)
	ctx := gen.Context{Lang: lang, Report: &r, Project: "demo", Out: &gen.Files{}}
	return New(ctx, d, plan, opts), &r
}

func check_lines(t *testing.T, text string, lines []string) {
	t.Helper()
	for _, line := range lines {
		if !strings.Contains(text, line) {
			t.Errorf("missing %q in\n%s", line, text)
		}
	}
}

func TestVHDL(t *testing.T) {
	g, r := load(t, hdl.VHDL, "xilinx", bindings)
	if g.ModuleName != "demo_top" {
		t.Errorf("module %s", g.ModuleName)
	}
	check_lines(t, g.Entity().String(), []string{
		"fpga_clock : IN std_logic;",
		"FPGA_INPUT_PIN_2 : IN std_logic;",
		"FPGA_OUTPUT_PIN_2 : OUT std_logic;",
		"FPGA_INOUT_PIN_0 : INOUT std_logic );",
	})
	check_lines(t, g.Architecture().String(), []string{
		"COMPONENT TickGenerator",
		"COMPONENT ClockGenerator",
		"COMPONENT top",
		"SIGNAL clock_tree_0 : std_logic_vector(4 downto 0);",
		"SIGNAL s_A : std_logic_vector(1 downto 0);",
		"SIGNAL hidden_in : std_logic_vector(0 downto 0);",
		"SIGNAL s_io_const_1 : std_logic;",
		"TICKER_0 : TickGenerator",
		"ReloadValue => 100000",
		"CLOCKGEN_0 : ClockGenerator",
		"ClockBus => clock_tree_0",
		"s_A(0) <= FPGA_INPUT_PIN_0;",
		"s_A(1) <= FPGA_INPUT_PIN_1;",
		"FPGA_OUTPUT_PIN_1 <= s_Y(1);",
		"hidden_in(0) <= NOT(FPGA_INPUT_PIN_2);",
		"FPGA_OUTPUT_PIN_2 <= hidden_out(0);",
		"s_io_const_1 <= '1';",
		"CIRCUIT_0 : top",
		"A => s_A,",
		"clock_tree_0 => clock_tree_0,",
		"hidden_in => hidden_in(0 downto 0),",
		"hidden_io(0) => FPGA_INOUT_PIN_0,",
		"hidden_io(1) => s_io_const_1",
	})
	for _, each := range r.Entries {
		if each.Level >= diag.Severe {
			t.Error(each)
		}
	}
}

func TestVerilog(t *testing.T) {
	g, _ := load(t, hdl.Verilog, "altera", bindings)
	check_lines(t, g.Architecture().String(), []string{
		"input fpga_clock;",
		"inout FPGA_INOUT_PIN_0;",
		"wire [4:0] clock_tree_0;",
		"assign s_A[0] = FPGA_INPUT_PIN_0;",
		"assign hidden_in[0] = ~(FPGA_INPUT_PIN_2);",
		"assign FPGA_OUTPUT_PIN_2 = hidden_out[0];",
		".hidden_io({s_io_const_1, FPGA_INOUT_PIN_0})",
	})
}

func TestUnbound(t *testing.T) {
	g, r := load(t, hdl.VHDL, "xilinx", "bindings: []")
	text := g.Architecture().String()
	check_lines(t, text, []string{
		`s_A <= "00";`,
		"hidden_in(0) <= '0';",
		"SIGNAL s_io_open_0 : std_logic;",
		"hidden_io(0) => s_io_open_0,",
	})
	if strings.Contains(text, "FPGA_OUTPUT_PIN") {
		t.Error("unbound outputs got a pin")
	}
	if !r.Has(diag.Warning, "A is not bound") {
		t.Error(r.Entries)
	}
}

func TestBidirActiveLow(t *testing.T) {
	src := strings.Replace(bindings, "{to: pmod}", "{to: keys}", 1)
	_, r := load(t, hdl.VHDL, "xilinx", src)
	if !r.Has(diag.Severe, "no inverter can be placed") {
		t.Error(r.Entries)
	}
	low := strings.Replace(design, "label: IO, attrs: {width: 2}", "label: IO, attrs: {width: 2, active_high: false}", 1)
	td := []struct {
		to   string
		warn bool
	}{
		{"pads", false}, // both active low
		{"pmod", true},
	}
	for _, each := range td {
		src := strings.Replace(bindings, "{to: pmod}", "{to: "+each.to+"}", 1)
		_, r := build(t, hdl.VHDL, "xilinx", low, src, Options{TickHz: 1000})
		if r.Has(diag.Severe, "no inverter can be placed") != each.warn {
			t.Errorf("%s: %v", each.to, r.Entries)
		}
	}
}

func TestConstraints(t *testing.T) {
	td := []struct {
		vendor, ext string
		lines       []string
	}{
		{"xilinx", ".xdc", []string{
			"set_property PACKAGE_PIN W5 [get_ports fpga_clock]",
			"create_clock -period 10.000 -name fpga_clock [get_ports fpga_clock]",
			"set_property PACKAGE_PIN T18 [get_ports FPGA_INPUT_PIN_2]",
			"set_property IOSTANDARD LVCMOS33 [get_ports FPGA_OUTPUT_PIN_0]",
			"set_property PACKAGE_PIN J1 [get_ports FPGA_INOUT_PIN_0]",
		}},
		{"altera", ".qsf", []string{
			"set_global_assignment -name TOP_LEVEL_ENTITY demo_top",
			"set_location_assignment PIN_W5 -to fpga_clock",
			"set_location_assignment PIN_U19 -to FPGA_OUTPUT_PIN_2",
			`set_instance_assignment -name IO_STANDARD "LVCMOS33" -to FPGA_OUTPUT_PIN_2`,
		}},
	}
	for _, each := range td {
		g, r := load(t, hdl.VHDL, each.vendor, bindings)
		root := t.TempDir()
		if !g.WriteConstraints(root) {
			t.Fatal(r.Entries)
		}
		path := filepath.Join(root, "constraints", "demo_top"+each.ext)
		buf, err := ioutil.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		check_lines(t, string(buf), each.lines)
	}
}

func TestConstraintsClock(t *testing.T) {
	g, r := load_opts(t, hdl.Verilog, "xilinx", bindings, Options{FPGAHz: 50000000, TickHz: 1000})
	text, err := g.Constraints()
	if err != nil {
		t.Fatal(err)
	}
	check_lines(t, text, []string{"create_clock -period 20.000 -name fpga_clock [get_ports fpga_clock]"})
	if strings.Contains(text, "-period 10.000") {
		t.Errorf("board frequency used\n%s", text)
	}
	// the ticker divides the same clock
	if p := g.Ticker.Param("ReloadValue"); p == nil || p.Value != "50000" {
		t.Errorf("ticker %+v %v", p, r.Entries)
	}
}

func TestWriteStages(t *testing.T) {
	g, r := load(t, hdl.Verilog, "xilinx", bindings)
	root := t.TempDir()
	for _, stage := range []func(string) bool{
		g.Circuit.WriteHDLFiles, g.WriteTicker, g.WriteClockBank, g.Generator.WriteHDLFiles,
	} {
		if !stage(root) {
			t.Fatal(r.Entries)
		}
	}
	files := g.Context().Out.Paths
	last := files[len(files)-1]
	if last != filepath.Join(root, "verilog", "toplevel", "demo_top.v") {
		t.Errorf("last file %s", last)
	}
	if got := filepath.Base(files[len(files)-2]); got != "ClockGenerator.v" {
		t.Errorf("clock bank written as %s", got)
	}
}
