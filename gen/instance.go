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

package gen

import (
	"strconv"

	"github.com/jotego/jthdl/hdl"
	"github.com/jotego/jthdl/netlist"
)

func (g *Generator) InstanceName(id uint64) string {
	return g.InstancePrefix + "_" + strconv.FormatUint(id, 10)
}

// Instance emits the instantiation of the module for component comp
func (g *Generator) Instance(h *hdl.Hdl, id uint64, comp *netlist.Component) {
	g.InstanceWith(h, id, g.ParamMappings(), g.PortMappings(comp))
}

// InstanceWith emits an instantiation with the given maps. Empty maps
// are left out so no empty generic or port clause is written.
func (g *Generator) InstanceWith(h *hdl.Hdl, id uint64, params, ports *hdl.Map) {
	name := g.InstanceName(id)
	hasParams := params != nil && params.Len() > 0
	hasPorts := ports != nil && ports.Len() > 0
	if h.IsVhdl() {
		if !hasParams && !hasPorts {
			h.Stmt("%s : %s", name, g.ModuleName)
			return
		}
		h.Line("%s : %s", name, g.ModuleName)
		h.Indent()
		if hasParams {
			list_map(h, "GENERIC MAP (", params.Entries(), close_if(!hasPorts, ");", ")"))
		}
		if hasPorts {
			list_map(h, "PORT MAP (", ports.Entries(), ");")
		}
		h.Dedent()
		return
	}
	switch {
	case !hasParams && !hasPorts:
		h.Stmt("%s %s", g.ModuleName, name)
	case !hasPorts:
		h.Line("%s", g.ModuleName)
		h.Indent()
		list_map(h, "#(", params.Entries(), ")")
		h.Stmt("%s", name)
		h.Dedent()
	case !hasParams:
		h.Line("%s", g.ModuleName)
		h.Indent()
		list_map(h, name+" (", ports.Entries(), ");")
		h.Dedent()
	default:
		h.Line("%s", g.ModuleName)
		h.Indent()
		list_map(h, "#(", params.Entries(), ")")
		list_map(h, name+" (", ports.Entries(), ");")
		h.Dedent()
	}
}

func close_if(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}

// list_map writes one association per line
func list_map(h *hdl.Hdl, open string, entries []string, closing string) {
	h.Line("%s", open)
	h.Indent()
	for k, each := range entries {
		h.Line("%s%s", each, sep(k, len(entries), "", ","))
	}
	h.Dedent()
	h.Line("%s", closing)
}

// ParamMappings associates every parameter with its value
func (g *Generator) ParamMappings() *hdl.Map {
	h := g.newHdl()
	m := hdl.NewMap(g.ctx.Lang)
	for _, p := range g.params {
		m.Add(p.Name, g.param_value(h, p, false))
	}
	return m
}

// PortMappings resolves every port of the interface against the nets of
// comp. The map has one entry per declared port, two for the clock and
// one per hidden bus.
func (g *Generator) PortMappings(comp *netlist.Component) *hdl.Map {
	h := g.newHdl()
	m := hdl.NewMap(g.ctx.Lang)
	for _, p := range g.ports {
		if g.expanded(p) {
			in := p
			in.Name, in.Dir = p.Name+"_IN", Input
			g.map_port(h, m, comp, in)
			if in.Default == nil && comp.Connection(p.End) != nil {
				g.ctx.severe("%s: %s is not tri-state, the driver on %s is dropped", g.ModuleName, p.Name, comp.Name())
			}
			m.Unconnected(p.Name + "_OUT")
			m.Unconnected(p.Name + "_EN")
			continue
		}
		g.map_port(h, m, comp, p)
	}
	if g.clock != nil {
		g.map_clock(h, m, comp)
	}
	if g.hidden.Any() {
		g.map_hidden(h, m, comp)
	}
	return m
}

func (g *Generator) map_port(h *hdl.Hdl, m *hdl.Map, comp *netlist.Component, p Port) {
	if p.Actual != "" {
		m.Add(p.Name, p.Actual)
		return
	}
	net := comp.Connection(p.End)
	if net == nil {
		switch {
		case p.Default != nil && p.Dir != Input:
			g.ctx.severe("%s: the default value of %s port %s is ignored", g.ModuleName, p.Dir, p.Name)
			m.Unconnected(p.Name)
		case p.Default != nil:
			m.Add(p.Name, g.fill(h, p.Width, *p.Default))
		case p.Dir == Input:
			g.ctx.fatal("%s: input %s of %s must be connected", g.ModuleName, p.Name, name_of(comp))
			m.Unconnected(p.Name)
		default:
			m.Unconnected(p.Name)
		}
		return
	}
	if net.Width == 1 && !p.Width.IsOne() {
		m.Add0(p.Name, net.Name)
		return
	}
	m.Add(p.Name, net.Name)
}

// fill spells a constant for every bit of a port of width w
func (g *Generator) fill(h *hdl.Hdl, w hdl.Width, b bool) string {
	if w.IsOne() {
		return h.Bit(b)
	}
	if h.IsVhdl() {
		return "(others => " + h.Bit(b) + ")"
	}
	n, _ := g.Width(w)
	return "{" + strconv.Itoa(n) + "{" + h.Bit(b) + "}}"
}

func name_of(comp *netlist.Component) string {
	if comp == nil {
		return "the component"
	}
	return comp.Name()
}

func (g *Generator) map_clock(h *hdl.Hdl, m *hdl.Map, comp *netlist.Component) {
	c := g.clock
	zero := func() {
		m.Add(c.Clock, h.Bit(false))
		m.Add(c.Enable, h.Bit(false))
	}
	if comp == nil || c.End < 0 || c.End >= len(comp.Ends) {
		g.ctx.fatal("%s: no clock end for %s", g.ModuleName, name_of(comp))
		zero()
		return
	}
	net := comp.Ends[c.End]
	if net == nil {
		g.ctx.severe("%s: clock of %s is not connected, the component will likely malfunction", g.ModuleName, comp.Name())
		zero()
		return
	}
	if net.Width != 1 {
		g.ctx.fatal("%s: clock of %s is %d bits wide", g.ModuleName, comp.Name(), net.Width)
		zero()
		return
	}
	trigger := comp.Attrs.Trigger()
	if net.Clock < 0 || g.ctx.Clocks == nil {
		// gated clock
		clk := net.Name
		if trigger.ActiveLow() {
			clk = h.Not(clk)
		}
		m.Add(c.Clock, clk)
		m.Add(c.Enable, h.Bit(true))
		if trigger.Edge() {
			g.ctx.severe("%s: %s is clocked by %s, which does not come from a clock component. "+
				"Simulation and FPGA behaviour may differ", g.ModuleName, comp.Name(), net.Label)
			if net.Label == FPGAClock || net.Name == FPGAClock {
				g.ctx.severe("%s: %s uses %s directly, expect timing problems across clock domains",
					g.ModuleName, comp.Name(), FPGAClock)
			}
		}
		return
	}
	clk, en := g.ctx.Clocks.Wires(net.Clock, trigger)
	m.Add(c.Clock, clk)
	m.Add(c.Enable, en)
}

// map_hidden slices the hidden buses of the enclosing circuit with the
// range allocated to comp
func (g *Generator) map_hidden(h *hdl.Hdl, m *hdl.Map, comp *netlist.Component) {
	var r netlist.HiddenRange
	if comp == nil || comp.Hidden == nil {
		g.ctx.fatal("%s: %s has no hidden port range", g.ModuleName, name_of(comp))
		r = netlist.HiddenRange{InStart: -1, OutStart: -1, IOStart: -1}
	} else {
		r = *comp.Hidden
	}
	for _, each := range []struct {
		port       string
		want, got  int
		start, end int
	}{
		{HiddenIn, g.hidden.Inputs, r.Inputs(), r.InStart, r.InEnd},
		{HiddenOut, g.hidden.Outputs, r.Outputs(), r.OutStart, r.OutEnd},
		{HiddenIO, g.hidden.InOuts, r.InOuts(), r.IOStart, r.IOEnd},
	} {
		if each.want == 0 {
			continue
		}
		if each.got != each.want {
			g.ctx.fatal("%s: %s needs %d bits but %d were allocated", g.ModuleName, each.port, each.want, each.got)
			m.Unconnected(each.port)
			continue
		}
		m.Add(each.port, h.Range(each.port, each.end, each.start))
	}
}
