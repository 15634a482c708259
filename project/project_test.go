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

package project

import (
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jotego/jthdl/diag"
	"github.com/jotego/jthdl/hdl"
)

const config = `
[project]
name = "demo"
language = "verilog"
output = "out"

[files]
design = "design.yaml"
board = "board.yaml"
bindings = "bindings.yaml"

[clock]
tick_hz = 1000
`

const design = `
name: demo
main: top
circuits:
  - name: top
    nets:
      - {name: clk}
      - {name: q}
      - {name: d}
    components:
      - {kind: clock, label: CLK, ends: [clk]}
      - {kind: register, label: r, ends: [q, clk, d]}
      - {kind: not, label: n, ends: [d, q]}
      - {kind: pin, label: Q, attrs: {direction: output}, ends: [q]}
`

const board = `
name: demo
vendor: altera
clock: {pin: R8, frequency: 50000000}
resources:
  - {name: led, direction: output, width: 1, pins: [A15]}
`

const bindings = `
bindings:
  - {source: Q, to: led}
`

func write_project(t *testing.T, files map[string]string) string {
	dir := t.TempDir()
	for name, text := range files {
		if err := ioutil.WriteFile(filepath.Join(dir, name), []byte(text), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func full_project(t *testing.T) string {
	return write_project(t, map[string]string{
		ConfigName:      config,
		"design.yaml":   design,
		"board.yaml":    board,
		"bindings.yaml": bindings,
	})
}

func TestConfig(t *testing.T) {
	dir := full_project(t)
	cfg, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Project.Name != "demo" || cfg.Lang() != hdl.Verilog || cfg.Clock.TickHz != 1000 {
		t.Errorf("got %+v", cfg)
	}
	if cfg.Path("board.yaml") != filepath.Join(dir, "board.yaml") {
		t.Errorf("path %s", cfg.Path("board.yaml"))
	}
	// saving and loading again gives the same configuration
	path := filepath.Join(t.TempDir(), ConfigName)
	if err := cfg.Save(path); err != nil {
		t.Fatal(err)
	}
	again, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if again.Project != cfg.Project || again.Files != cfg.Files || again.Clock != cfg.Clock {
		t.Errorf("got %+v", again)
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Project.Language != "vhdl" || cfg.Files.Design != "design.yaml" {
		t.Errorf("got %+v", cfg)
	}
	td := []struct {
		text, err string
	}{
		{"[project]\nlanguage = \"cobol\"", "unsupported HDL"},
		{"[project]\nvendor = \"acme\"", "unknown vendor"},
		{"[clock]\ntick_hz = -1", "negative"},
	}
	for _, each := range td {
		dir := write_project(t, map[string]string{ConfigName: each.text})
		_, err := Load(dir)
		if err == nil || !strings.Contains(err.Error(), each.err) {
			t.Errorf("%q: got %v", each.text, err)
		}
	}
}

func TestWriteAll(t *testing.T) {
	dir := full_project(t)
	cfg, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	var r diag.Collector
	p, err := Open(cfg, &r)
	if err != nil {
		t.Fatal(err)
	}
	root := p.Root()
	if !p.WriteAll(root) {
		t.Fatal(r.Entries)
	}
	for _, each := range []string{
		"verilog/circuit/top.v",
		"verilog/base/TickGenerator.v",
		"verilog/base/ClockGenerator.v",
		"verilog/toplevel/demo_top.v",
		"constraints/demo_top.qsf",
	} {
		if _, err := os.Stat(filepath.Join(root, each)); err != nil {
			t.Error(err)
		}
	}
	lists, err := p.WriteFileLists(root)
	if err != nil {
		t.Fatal(err)
	}
	buf, err := ioutil.ReadFile(lists[0])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(buf), "VERILOG_FILE [file join $::quartus(qip_path) verilog/toplevel/demo_top.v]") {
		t.Errorf("got\n%s", buf)
	}
	severe, err := p.Check(context.Background())
	if err != nil || severe != 0 {
		t.Error(severe, err)
	}
}

func TestStageFailure(t *testing.T) {
	bad := strings.Replace(design, "- {name: clk}", "- {name: clk, width: 2}", 1)
	// without its clock the register is driven by a plain 2-bit net
	bad = strings.Replace(bad, "      - {kind: clock, label: CLK, ends: [clk]}\n", "", 1)
	dir := write_project(t, map[string]string{
		ConfigName:      config,
		"design.yaml":   bad,
		"board.yaml":    board,
		"bindings.yaml": bindings,
	})
	cfg, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	var r diag.Collector
	p, err := Open(cfg, &r)
	if err != nil {
		t.Fatal(err)
	}
	if p.WriteAll(p.Root()) {
		t.Fatal("no failure")
	}
	if !r.Has(diag.Fatal, "2 bits wide") || !r.Has(diag.Info, "circuit stage failed") || p.Fatal() == 0 {
		t.Error(r.Entries)
	}
}
