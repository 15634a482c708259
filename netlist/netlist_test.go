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

package netlist

import (
	"testing"

	"github.com/jotego/jthdl/diag"
)

const demo = `
name: demo
main: main
circuits:
  - name: blinker
    nets:
      - {name: clk}
      - {name: q, width: 4}
      - {name: led}
    components:
      - {kind: pin, label: CLK, attrs: {direction: input}, ends: [clk]}
      - {kind: pin, label: Q, attrs: {direction: output, width: 4}, ends: [q]}
      - {kind: register, label: cnt, attrs: {width: 4}, ends: [q, clk, q, "-"]}
      - {kind: led, label: L0, ends: [led]}
  - name: main
    nets:
      - {name: clk}
      - {name: sw, width: 3}
      - {name: q, width: 4}
    components:
      - {kind: clock, label: CLK0, attrs: {high: 2, low: 3}, ends: [clk]}
      - {kind: dipswitch, label: SW, attrs: {width: 3}, ends: [sw]}
      - {kind: subcircuit, label: b0, attrs: {circuit: blinker}, ends: [clk, q]}
      - {kind: subcircuit, label: b1, attrs: {circuit: blinker}, ends: [clk, q]}
      - {kind: gpio, label: IO, attrs: {width: 2}, ends: [q, "", ""]}
`

func load_demo(t *testing.T) (*Design, *diag.Collector) {
	var r diag.Collector
	d, err := Parse([]byte(demo), &r)
	if err != nil {
		t.Fatal(err)
	}
	return d, &r
}

func TestBuild(t *testing.T) {
	d, _ := load_demo(t)
	if d.Main == nil || d.Main.Name != "main" {
		t.Fatal("main circuit not found")
	}
	b := d.Circuit("blinker")
	if len(b.Inputs) != 1 || len(b.Outputs) != 1 || b.Pins()[1].Label != "Q" {
		t.Errorf("bad pin lists")
	}
	if b.Inputs[0].PinEnd() != EndOutput || b.Outputs[0].PinEnd() != EndInput {
		t.Error("an input pin drives its net")
	}
	reg := b.Components[2]
	if reg.Connection(3) != nil || reg.Connection(9) != nil || reg.Connection(0).Width != 4 {
		t.Error("bad connections")
	}
	if reg.Connection(0).Name != "s_q" {
		t.Errorf("net name %s", reg.Connection(0).Name)
	}
}

func TestHiddenRanges(t *testing.T) {
	d, _ := load_demo(t)
	b := d.Circuit("blinker")
	if b.HiddenOut != 1 || b.HiddenIn != 0 {
		t.Errorf("blinker hidden bus %d/%d", b.HiddenIn, b.HiddenOut)
	}
	m := d.Main
	if m.HiddenIn != 3 || m.HiddenOut != 2 || m.HiddenIO != 2 {
		t.Errorf("main hidden bus %d/%d/%d", m.HiddenIn, m.HiddenOut, m.HiddenIO)
	}
	b1 := m.Components[3]
	if b1.Hidden.OutStart != 1 || b1.Hidden.OutEnd != 1 || b1.Hidden.Outputs() != 1 {
		t.Errorf("b1 range %+v", *b1.Hidden)
	}
	srcs := d.HiddenSources()
	td := []struct {
		path string
		in   [2]int
		out  [2]int
		io   [2]int
	}{
		{"main/SW", [2]int{0, 2}, [2]int{-1, -1}, [2]int{-1, -1}},
		{"main/b0/L0", [2]int{-1, -1}, [2]int{0, 0}, [2]int{-1, -1}},
		{"main/b1/L0", [2]int{-1, -1}, [2]int{1, 1}, [2]int{-1, -1}},
		{"main/IO", [2]int{-1, -1}, [2]int{-1, -1}, [2]int{0, 1}},
	}
	if len(srcs) != len(td) {
		t.Fatalf("got %d sources", len(srcs))
	}
	for k, each := range td {
		s := srcs[k]
		if s.Path != each.path || s.In != each.in || s.Out != each.out || s.IO != each.io {
			t.Errorf("source %d: %+v", k, s)
		}
	}
}

func TestClocks(t *testing.T) {
	d, _ := load_demo(t)
	if len(d.Clocks) != 1 || d.Clocks[0].High() != 2 || d.Clocks[0].Low() != 3 {
		t.Fatalf("clocks: %+v", d.Clocks)
	}
	if d.Main.Nets[0].Clock != 0 {
		t.Error("clock net not marked")
	}
	b := d.Circuit("blinker")
	if b.ClockId(b.Nets[0]) != 0 {
		t.Error("clock not propagated into the subcircuit")
	}
	if b.ClockId(b.Nets[1]) != -1 || b.ClockId(nil) != -1 {
		t.Error("ordinary net marked as clock")
	}
}

func TestBuildErrors(t *testing.T) {
	td := map[string]string{
		"recursive": `
circuits:
  - name: a
    components: [{kind: subcircuit, attrs: {circuit: a}}]`,
		"unknown kind": `
circuits:
  - name: a
    components: [{kind: flux}]`,
		"undeclared net": `
circuits:
  - name: a
    components: [{kind: led, ends: [x]}]`,
		"wide clock": `
circuits:
  - name: a
    nets: [{name: c, width: 2}]
    components: [{kind: clock, ends: [c]}]`,
		"pin count": `
circuits:
  - name: a
    nets: [{name: x}]
    components: [{kind: pin, label: X, ends: [x]}]
  - name: b
    components: [{kind: subcircuit, attrs: {circuit: a}}]`,
		"unlabeled pin": `
circuits:
  - name: a
    components: [{kind: pin}]`,
	}
	for name, src := range td {
		if _, err := Parse([]byte(src), nil); err == nil {
			t.Errorf("%s: expecting an error", name)
		}
	}
}
