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

// Package circuit generates one module per circuit of the design. Pins
// become ports, nets become signals and every other component becomes an
// instance of its own module.
package circuit

import (
	"sort"

	"github.com/jotego/jthdl/clock"
	"github.com/jotego/jthdl/diag"
	"github.com/jotego/jthdl/gen"
	"github.com/jotego/jthdl/hdl"
	"github.com/jotego/jthdl/netlist"
	"github.com/jotego/jthdl/parts"
)

const SubDir = "circuit"

type Generator struct {
	*gen.Generator
	Circuit *netlist.Circuit

	bank  *bank
	insts []instance
}

type instance struct {
	id   uint64
	comp *netlist.Component
	leaf *gen.Generator
	sub  *Generator
}

func (i instance) module() *gen.Generator {
	if i.sub != nil {
		return i.sub.Generator
	}
	return i.leaf
}

// bank is shared by all the circuits of one run so each module is
// described and written once
type bank struct {
	ctx      gen.Context
	circuits map[*netlist.Circuit]*Generator
	written  map[string]bool
}

// New builds the generator of circuit c and, recursively, of every
// circuit it instantiates
func New(ctx gen.Context, c *netlist.Circuit) *Generator {
	if ctx.Clocks == nil {
		ctx.Clocks = clock.Tree{Lang: ctx.Lang}
	}
	if ctx.Report == nil {
		ctx.Report = new(diag.Collector)
	}
	b := &bank{
		ctx:      ctx,
		circuits: make(map[*netlist.Circuit]*Generator),
		written:  make(map[string]bool),
	}
	return b.circuit(c)
}

func (b *bank) circuit(c *netlist.Circuit) *Generator {
	if g, ok := b.circuits[c]; ok {
		return g
	}
	g := &Generator{
		Generator: gen.New(b.ctx.For(c, nil), SubDir, c.Name, "CIRCUIT"),
		Circuit:   c,
		bank:      b,
	}
	b.circuits[c] = g
	g.ports()
	for _, pin := range c.Outputs {
		if pin.Connection(0) == nil {
			b.ctx.Report.Warn("output pin %s of circuit %s is not connected, driving zero", pin.Label, c.Name)
		}
	}
	for _, each := range c.Nets {
		g.AddWire(each.Name, hdl.Bits(each.Width))
	}
	for k, comp := range c.Components {
		inst := instance{id: uint64(k), comp: comp}
		switch {
		case comp.Kind == netlist.KindSubcircuit:
			inst.sub = b.circuit(comp.Sub)
		case parts.Inlined(comp.Kind):
			continue
		default:
			ctx := b.ctx
			ctx.Seq = uint64(k)
			if inst.leaf = parts.New(ctx, c, comp); inst.leaf == nil {
				continue
			}
		}
		g.insts = append(g.insts, inst)
	}
	g.Components = g.declarations
	g.Body = g.body
	return g
}

// PinName is the port name of a pin inside its circuit
func PinName(pin *netlist.Component) string {
	return hdl.Sanitize(pin.Label)
}

// PinWidth is taken from the net, or from the pin when it has none
func PinWidth(pin *netlist.Component) int {
	if n := pin.Connection(0); n != nil {
		return n.Width
	}
	return max(1, pin.Attrs.Width())
}

func (g *Generator) ports() {
	c := g.Circuit
	for k, pin := range c.Pins() {
		w := hdl.Bits(PinWidth(pin))
		if pin.IsInputPin() {
			g.Input(PinName(pin), w, k)
		} else {
			g.Output(PinName(pin), w, k)
		}
	}
	for id := 0; id < c.NumClocks(); id++ {
		bus := clock.BusName(id)
		g.AddPort(gen.Port{
			Name:   bus,
			Dir:    gen.Input,
			Width:  hdl.Vector(clock.NrOfClockBits),
			End:    gen.Unconnected,
			Actual: bus,
		})
	}
	g.SetHidden(gen.HiddenPorts{Inputs: c.HiddenIn, Outputs: c.HiddenOut, InOuts: c.HiddenIO})
}

// modules lists the distinct modules instantiated by the circuit sorted
// by name
func (g *Generator) modules() []*gen.Generator {
	found := make(map[string]*gen.Generator)
	for _, each := range g.insts {
		m := each.module()
		if prev, ok := found[m.ModuleName]; ok && prev != m && (g.bank.is_circuit(m) || g.bank.is_circuit(prev)) {
			g.Context().Report.Fatal("circuit %s has the same name as another module", m.ModuleName)
			continue
		}
		found[m.ModuleName] = m
	}
	names := make([]string, 0, len(found))
	for name := range found {
		names = append(names, name)
	}
	sort.Strings(names)
	all := make([]*gen.Generator, len(names))
	for k, name := range names {
		all[k] = found[name]
	}
	return all
}

func (b *bank) is_circuit(m *gen.Generator) bool {
	for _, each := range b.circuits {
		if each.Generator == m {
			return true
		}
	}
	return false
}

func (g *Generator) declarations(h *hdl.Hdl) {
	for k, m := range g.modules() {
		if k > 0 {
			h.Blank()
		}
		h.Add(m.BlackBox(false))
	}
}

func (g *Generator) body(h *hdl.Hdl) {
	c := g.Circuit
	if len(c.Pins()) > 0 {
		h.Comment("Pins")
		for _, pin := range c.Pins() {
			g.inline_pin(h, pin)
		}
		h.Blank()
	}
	for _, comp := range c.Components {
		switch comp.Kind {
		case netlist.KindConstant:
			if n := comp.Connection(0); n != nil {
				h.Assign(n.Name, h.Literal(uint64(comp.Attrs.Int("value", 0)), n.Width))
			}
		case netlist.KindClock:
			if n := comp.Connection(0); n != nil && n.Clock >= 0 {
				h.Assign(n.Name, h.Index(clock.BusName(n.Clock), clock.DerivedClock))
			}
		}
	}
	for _, each := range g.insts {
		h.Blank()
		h.Comment("%s %s", each.comp.Kind, each.comp.Name())
		if each.sub != nil {
			each.sub.Instance(h, each.id, each.comp)
		} else {
			each.leaf.Instance(h, each.id, each.comp)
		}
	}
}

func (g *Generator) inline_pin(h *hdl.Hdl, pin *netlist.Component) {
	n := pin.Connection(0)
	name := PinName(pin)
	if pin.IsInputPin() {
		if n != nil {
			h.Assign(n.Name, name)
		}
		return
	}
	if n == nil {
		h.Assign(name, h.Literal(0, PinWidth(pin)))
		return
	}
	h.Assign(name, n.Name)
}

// WriteHDLFiles writes the modules used by the circuit, each one once,
// before the circuit itself
func (g *Generator) WriteHDLFiles(root string) bool {
	b := g.bank
	for _, m := range g.modules() {
		if b.written[m.ModuleName] {
			continue
		}
		b.written[m.ModuleName] = true
		var ok bool
		if sub := g.sub_of(m); sub != nil {
			ok = sub.WriteHDLFiles(root)
		} else {
			ok = m.WriteHDLFiles(root)
		}
		if !ok {
			return false
		}
	}
	b.written[g.ModuleName] = true
	return g.Generator.WriteHDLFiles(root)
}

func (g *Generator) sub_of(m *gen.Generator) *Generator {
	for _, each := range g.insts {
		if each.sub != nil && each.sub.Generator == m {
			return each.sub
		}
	}
	return nil
}
