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

package drc

import (
	"context"
	"testing"

	"github.com/jotego/jthdl/diag"
	"github.com/jotego/jthdl/netlist"
	"github.com/jotego/jthdl/pins"
)

const board = `
name: b
clock: {pin: A1, frequency: 50000000}
resources:
  - {name: leds, direction: output, width: 2, pins: [L1, L2]}
  - {name: keys, direction: input, width: 2, pins: [K1, K2]}
  - {name: spare, direction: input, width: 1, pins: [S1]}
`

const design = `
circuits:
  - name: main
    nets:
      - {name: a}
      - {name: b}
    components:
      - {kind: pin, label: A, ends: [a]}
      - {kind: pin, label: B, ends: [b]}
      - {kind: pin, label: X, attrs: {direction: output}, ends: [a]}
      - {kind: pin, label: Y, attrs: {direction: output}, ends: [b]}
      - {kind: pin, label: Z, attrs: {direction: output}, ends: [b]}
`

func plan(t *testing.T, bindings string) *pins.Plan {
	var r diag.Collector
	b, err := pins.ParseBoard([]byte(board))
	if err != nil {
		t.Fatal(err)
	}
	d, err := netlist.Parse([]byte(design), &r)
	if err != nil {
		t.Fatal(err)
	}
	bb, err := pins.ParseBindings([]byte(bindings))
	if err != nil {
		t.Fatal(err)
	}
	return pins.Resolve(d, b, bb, &r)
}

func TestRules(t *testing.T) {
	p := plan(t, `
bindings:
  - {source: A, to: keys}
  - {source: B, to: keys}
  - {source: X, to: leds}
  - {source: Y, to: leds}
`)
	c, err := New(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	all, err := c.Check(context.Background(), p)
	if err != nil {
		t.Fatal(err)
	}
	want := []Violation{
		{"open_output", "warning", "output Z does not reach the board"},
		{"shared_pin", "severe", "pin L1 is bound to X bit 0 and to Y bit 0"},
		{"unused_resource", "info", "board resource spare is not used"},
	}
	if len(all) != len(want) {
		t.Fatalf("got %v", all)
	}
	for k := range want {
		if all[k] != want[k] {
			t.Errorf("got %+v, want %+v", all[k], want[k])
		}
	}
}

func TestRun(t *testing.T) {
	p := plan(t, `
bindings:
  - {source: A, to: keys}
  - {source: X, to: leds}
  - {source: Y, to: leds, offset: 1}
  - {source: Z, open: true}
`)
	var r diag.Collector
	severe, err := Run(context.Background(), p, &r)
	if err != nil {
		t.Fatal(err)
	}
	if severe != 0 {
		t.Errorf("%d severe violations", severe)
	}
	if !r.Has(diag.Warning, "output Z") || !r.Has(diag.Info, "spare is not used") {
		t.Error(r.Entries)
	}
}
