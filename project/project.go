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

// Package project ties a jthdl project together: it loads the design,
// the board and the bindings named in jthdl.toml and writes every file of
// the generated design.
package project

import (
	"context"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/jotego/jthdl/diag"
	"github.com/jotego/jthdl/drc"
	"github.com/jotego/jthdl/gen"
	"github.com/jotego/jthdl/jtfiles"
	"github.com/jotego/jthdl/netlist"
	"github.com/jotego/jthdl/pins"
	"github.com/jotego/jthdl/toplevel"
)

type Project struct {
	Cfg      *Config
	Design   *netlist.Design
	Board    *pins.Board
	Bindings *pins.Bindings
	Plan     *pins.Plan
	Out      gen.Files

	report *tally
}

// tally counts the fatal errors so a stage can tell whether it went well
type tally struct {
	diag.Reporter
	fatal int
}

func (t *tally) Fatal(format string, a ...interface{}) {
	t.fatal++
	t.Reporter.Fatal(format, a...)
}

// Open loads the files named in the configuration and binds the design
// to the board
func Open(cfg *Config, report diag.Reporter) (*Project, error) {
	if report == nil {
		report = new(diag.Collector)
	}
	p := &Project{Cfg: cfg, report: &tally{Reporter: report}}
	var err error
	if p.Design, err = netlist.Load(cfg.Path(cfg.Files.Design), p.report); err != nil {
		return nil, err
	}
	if cfg.Files.Board != "" {
		if p.Board, err = pins.LoadBoard(cfg.Path(cfg.Files.Board)); err != nil {
			return nil, err
		}
		if cfg.Project.Vendor != "" {
			p.Board.Vendor = cfg.Project.Vendor
		}
	}
	if cfg.Files.Bindings != "" {
		if p.Bindings, err = pins.LoadBindings(cfg.Path(cfg.Files.Bindings)); err != nil {
			return nil, err
		}
	}
	if p.Design.Main == nil {
		return nil, errors.New("the design has no main circuit")
	}
	p.Plan = pins.Resolve(p.Design, p.Board, p.Bindings, p.report)
	return p, nil
}

// Check runs the design rules over the binding plan. It returns the
// number of severe violations.
func (p *Project) Check(ctx context.Context) (int, error) {
	return drc.Run(ctx, p.Plan, p.report)
}

func (p *Project) context() gen.Context {
	return gen.Context{
		Lang:     p.Cfg.Lang(),
		Project:  p.Cfg.Project.Name,
		Report:   p.report,
		Tristate: p.Cfg.Project.Tristate,
		Out:      &p.Out,
	}
}

// Toplevel builds the generators of the whole design
func (p *Project) Toplevel() *toplevel.Generator {
	return toplevel.New(p.context(), p.Design, p.Plan, toplevel.Options{
		Name:   p.Cfg.Project.Top,
		FPGAHz: p.Cfg.Clock.FPGAHz,
		TickHz: p.Cfg.Clock.TickHz,
	})
}

// Root is the output folder
func (p *Project) Root() string {
	return p.Cfg.Path(p.Cfg.Project.Output)
}

// WriteAll writes the circuits, the ticker, the clock bank and the top
// level, in that order. It stops at the first stage that fails and says
// which one it was. Constraints go last.
func (p *Project) WriteAll(root string) bool {
	top := p.Toplevel()
	stages := []struct {
		name  string
		write func(string) bool
	}{
		{"circuit", top.Circuit.WriteHDLFiles},
		{"ticker", top.WriteTicker},
		{"clock bank", top.WriteClockBank},
		{"top-level", top.Generator.WriteHDLFiles},
		{"constraints", top.WriteConstraints},
	}
	// fatal errors found while building count against the first stage
	before := 0
	for _, each := range stages {
		if !each.write(root) || p.report.fatal > before {
			p.report.Info("%s stage failed", each.name)
			return false
		}
		before = p.report.fatal
	}
	return true
}

// WriteFileLists dumps the synthesis and simulation file lists of the
// files written by WriteAll
func (p *Project) WriteFileLists(root string) ([]string, error) {
	var written []string
	for _, format := range []string{"qip", "sim"} {
		args := jtfiles.Args{
			Output: p.Cfg.Project.Name,
			Rel:    true,
			Format: format,
			Extra:  p.Cfg.Path(p.Cfg.Files.Extra),
		}
		fname, missing, err := jtfiles.Run(root, p.Out.Paths, args)
		if err != nil {
			return written, err
		}
		for _, each := range missing {
			p.report.Warn("file %s not found", filepath.Base(each))
		}
		written = append(written, fname)
	}
	return written, nil
}

// Fatal is the number of fatal errors so far
func (p *Project) Fatal() int { return p.report.fatal }
