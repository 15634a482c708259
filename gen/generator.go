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

// Package gen turns the descriptor tables of one component type into a
// VHDL entity/architecture pair or a Verilog module, and instantiates it
// against a netlist.
package gen

import (
	"strconv"
	"strings"

	"github.com/jotego/jthdl/hdl"
)

type Generator struct {
	ModuleName     string
	InstancePrefix string
	SubDir         string
	Libraries      []string

	// Types and Components add declarations before the signals in a VHDL
	// architecture. Body is the behavioural code.
	Types      func(h *hdl.Hdl)
	Components func(h *hdl.Hdl)
	Body       func(h *hdl.Hdl)

	ctx    Context
	names  names
	params []Param
	ports  []Port
	wires  []Wire
	regs   []Register
	clock  *ClockPort
	hidden HiddenPorts
}

// New binds a generator to one component configuration. The module name
// is fixed here and never changes afterwards.
func New(ctx Context, subdir, template, prefix string) *Generator {
	g := &Generator{
		InstancePrefix: prefix,
		SubDir:         subdir,
		Libraries:      []string{"ieee.std_logic_1164", "ieee.numeric_std"},
		ctx:            ctx,
		names:          make(names),
	}
	g.ModuleName = DeriveModuleName(&g.ctx, template)
	if g.ModuleName == "" {
		g.ctx.fatal("template %q gives an empty module name", template)
		g.ModuleName = "unnamed"
	}
	return g
}

func (g *Generator) Lang() hdl.Lang { return g.ctx.Lang }

func (g *Generator) newHdl() *hdl.Hdl { return hdl.New(g.ctx.Lang, g.ctx.Report) }

// Width resolves a width to a bit count. Only literals and parameter
// names are supported, anything else is a fatal error and 1 is returned
// so generation can go on.
func (g *Generator) Width(w hdl.Width) (int, bool) {
	if n, ok := w.Literal(); ok {
		if n > 0 {
			return n, true
		}
	} else if name, ok := w.Param(); ok {
		if p := g.Param(name); p != nil {
			if n, err := strconv.Atoi(p.Value); err == nil && n > 0 {
				return n, true
			}
		}
	}
	g.ctx.fatal("%s: cannot resolve width %q", g.ModuleName, string(w))
	return 1, false
}

// Architecture emits the VHDL architecture or the whole Verilog module
func (g *Generator) Architecture() *hdl.Hdl {
	h, _ := g.architecture()
	return h
}

// architecture also reports whether the body was empty. The body is
// rendered once as it may report diagnostics.
func (g *Generator) architecture() (*hdl.Hdl, bool) {
	body := g.newHdl()
	if g.Body != nil {
		body.Indent()
		g.Body(body)
	}
	h := g.newHdl()
	g.header(h, "behavior")
	if h.IsVhdl() {
		g.libraries(h)
		h.Line("ARCHITECTURE platformIndependent OF %s IS", g.ModuleName)
		h.Indent()
		if g.Types != nil {
			g.Types(h)
			h.Blank()
		}
		if g.Components != nil {
			g.Components(h)
			h.Blank()
		}
		for _, w := range g.wires {
			h.Stmt("SIGNAL %s : %s", w.Name, h.TypeForWidth(w.Width))
		}
		for _, r := range g.regs {
			if r.Init != "" {
				h.Stmt("SIGNAL %s : %s := %s", r.Name, h.TypeForWidth(r.Width), r.Init)
			} else {
				h.Stmt("SIGNAL %s : %s", r.Name, h.TypeForWidth(r.Width))
			}
		}
		h.Dedent()
		h.Blank()
		h.Line("BEGIN")
		h.Add(body)
		h.Stmt("END platformIndependent")
		return h, body.Empty()
	}
	ports := g.interface_ports()
	list := make([]string, 0, len(ports))
	for _, p := range ports {
		list = append(list, p.Name)
	}
	h.Stmt("module %s( %s )", g.ModuleName, strings.Join(list, ",\n"+strings.Repeat(" ", len(g.ModuleName)+9)))
	h.Indent()
	if len(g.params) > 0 {
		h.Blank()
		h.Comment("Module parameters")
		for _, p := range g.params {
			h.Stmt("parameter %s = %s", p.Name, g.param_value(h, p, true))
		}
	}
	h.Blank()
	h.Comment("Inputs and outputs")
	for _, p := range ports {
		h.Stmt("%s", join_decl(verilog_dir(p), h.TypeForWidth(p.Width), p.Name))
	}
	if len(g.wires) > 0 || len(g.regs) > 0 {
		h.Blank()
		h.Comment("Wires and registers")
	}
	for _, w := range g.wires {
		h.Stmt("%s", join_decl("wire", h.TypeForWidth(w.Width), w.Name))
	}
	for _, r := range g.regs {
		if r.Init != "" {
			h.Stmt("%s = %s", join_decl("reg", h.TypeForWidth(r.Width), r.Name), r.Init)
		} else {
			h.Stmt("%s", join_decl("reg", h.TypeForWidth(r.Width), r.Name))
		}
	}
	h.Blank()
	h.Dedent()
	h.Add(body)
	h.Blank()
	h.Line("endmodule")
	return h, body.Empty()
}

// Entity emits the VHDL entity. Verilog has no separate interface.
func (g *Generator) Entity() *hdl.Hdl {
	h := g.newHdl()
	if h.IsVerilog() {
		return h
	}
	g.header(h, "entity")
	g.libraries(h)
	h.Add(g.BlackBox(true))
	return h
}

// BlackBox emits the interface only, either as an entity or as a
// component declaration.
func (g *Generator) BlackBox(isEntity bool) *hdl.Hdl {
	h := g.newHdl()
	if h.IsVerilog() {
		return h
	}
	if isEntity {
		h.Line("ENTITY %s IS", g.ModuleName)
	} else {
		h.Line("COMPONENT %s", g.ModuleName)
	}
	h.Indent()
	if len(g.params) > 0 {
		h.Line("GENERIC (")
		h.Indent()
		for k, p := range g.params {
			line := p.Name + " : " + p.Type.String()
			if p.Default != "" {
				line += " := " + g.param_value(h, p, true)
			}
			h.Line("%s%s", line, sep(k, len(g.params), " );", ";"))
		}
		h.Dedent()
	}
	ports := g.interface_ports()
	if len(ports) > 0 {
		h.Line("PORT (")
		h.Indent()
		for k, p := range ports {
			h.Line("%s : %s %s%s", p.Name, vhdl_dir(p), h.TypeForWidth(p.Width), sep(k, len(ports), " );", ";"))
		}
		h.Dedent()
	}
	h.Dedent()
	if isEntity {
		h.Stmt("END ENTITY %s", g.ModuleName)
	} else {
		h.Stmt("END COMPONENT")
	}
	return h
}

func (g *Generator) libraries(h *hdl.Hdl) {
	done := make(map[string]bool)
	for _, each := range g.Libraries {
		lib := strings.SplitN(each, ".", 2)[0]
		if !done[lib] {
			done[lib] = true
			h.Stmt("LIBRARY %s", lib)
		}
	}
	for _, each := range g.Libraries {
		h.Stmt("USE %s.all", each)
	}
	h.Blank()
}

// param_value spells the value, or the default for declarations
func (g *Generator) param_value(h *hdl.Hdl, p Param, decl bool) string {
	v := p.Value
	if decl && p.Default != "" {
		v = p.Default
	}
	if p.Type == String {
		return "\"" + v + "\""
	}
	return v
}

func sep(k, n int, last, other string) string {
	if k == n-1 {
		return last
	}
	return other
}

func vhdl_dir(p Port) string {
	switch p.Dir {
	case Output:
		return "OUT"
	case InOut:
		return "INOUT"
	}
	return "IN"
}

func verilog_dir(p Port) string {
	switch p.Dir {
	case Output:
		return "output"
	case InOut:
		return "inout"
	}
	return "input"
}

func join_decl(kind, typ, name string) string {
	if typ == "" {
		return kind + " " + name
	}
	return kind + " " + typ + " " + name
}
