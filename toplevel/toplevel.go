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

// Package toplevel generates the FPGA facing module. It holds the clock
// network, the main circuit and the glue between the circuit and the
// board pins.
package toplevel

import (
	"github.com/jotego/jthdl/circuit"
	"github.com/jotego/jthdl/clock"
	"github.com/jotego/jthdl/diag"
	"github.com/jotego/jthdl/gen"
	"github.com/jotego/jthdl/hdl"
	"github.com/jotego/jthdl/netlist"
	"github.com/jotego/jthdl/pins"
)

const SubDir = "toplevel"

type Options struct {
	Name   string // module name, the design name plus _top by default
	FPGAHz int    // board clock when zero
	TickHz int    // zero runs the clocks at the FPGA rate
}

type Generator struct {
	*gen.Generator
	Design  *netlist.Design
	Plan    *pins.Plan
	Circuit *circuit.Generator
	Ticker  *gen.Generator
	Clocks  []*gen.Generator
	FPGAHz  int // board clock the ticker divides and the constraints declare

	cut    *netlist.Component
	bidir  []string        // actual of each hidden_io bit
	consts map[string]bool // constant hidden_io drivers
}

// New prepares the whole top level: the main circuit generator, the
// clock network and the pin glue described by plan
func New(ctx gen.Context, d *netlist.Design, plan *pins.Plan, opts Options) *Generator {
	if ctx.Clocks == nil {
		ctx.Clocks = clock.Tree{Lang: ctx.Lang}
	}
	if ctx.Report == nil {
		ctx.Report = new(diag.Collector)
	}
	name := opts.Name
	if name == "" {
		name = d.Name + "_top"
		if d.Name == "" {
			name = "jthdl_top"
		}
	}
	g := &Generator{
		Generator: gen.New(ctx.For(nil, nil), SubDir, name, "TOP"),
		Design:    d,
		Plan:      plan,
		Circuit:   circuit.New(ctx, d.Main),
		consts:    make(map[string]bool),
	}
	for _, c := range d.Circuits {
		if hdl.Sanitize(c.Name) == g.ModuleName {
			ctx.Report.Fatal("the top level module and circuit %s share the name %s", c.Name, g.ModuleName)
		}
	}
	g.FPGAHz = opts.FPGAHz
	if g.FPGAHz == 0 && plan.Board != nil {
		g.FPGAHz = plan.Board.Clock.Frequency
	}
	if len(d.Clocks) > 0 {
		g.Ticker = clock.NewTicker(ctx, g.FPGAHz, opts.TickHz)
		for _, src := range d.Clocks {
			g.Clocks = append(g.Clocks, clock.NewGenerator(ctx, src))
		}
	}
	g.ports()
	g.nets()
	g.bidir = g.BidirAssignments()
	g.Components = g.declarations
	g.Body = g.body
	return g
}

func (g *Generator) ports() {
	if g.Ticker != nil {
		g.Input(gen.FPGAClock, "1", gen.Unconnected)
	}
	for _, loc := range g.Plan.Alloc.Locations() {
		switch loc.Dir {
		case pins.Input:
			g.Input(loc.Port, "1", gen.Unconnected)
		case pins.Output:
			g.Output(loc.Port, "1", gen.Unconnected)
		case pins.InOut:
			g.AddPort(gen.Port{Name: loc.Port, Dir: gen.InOut, Width: "1", End: gen.Unconnected, Bidir: true})
		}
	}
}

// SignalName is the top level net of a pin of the main circuit
func SignalName(pin *netlist.Component) string {
	return "s_" + circuit.PinName(pin)
}

// nets declares the clock tree, one net per pin of the main circuit and
// the hidden buses. The main circuit is seen as a component whose ends
// are those nets.
func (g *Generator) nets() {
	main := g.Design.Main
	if g.Ticker != nil {
		g.AddWire(clock.FPGATick, "1")
		for id := range g.Clocks {
			g.AddWire(clock.BusName(id), hdl.Vector(clock.NrOfClockBits))
		}
	}
	g.cut = &netlist.Component{
		Kind:   netlist.KindSubcircuit,
		Label:  main.Name,
		Attrs:  netlist.Attributes{},
		Sub:    main,
		Hidden: &netlist.HiddenRange{InStart: -1, InEnd: -1, OutStart: -1, OutEnd: -1, IOStart: -1, IOEnd: -1},
	}
	for _, pin := range main.Pins() {
		w := circuit.PinWidth(pin)
		n := &netlist.Net{Label: pin.Label, Name: SignalName(pin), Width: w, Clock: -1}
		g.cut.Ends = append(g.cut.Ends, n)
		g.AddWire(n.Name, hdl.Bits(w))
	}
	r := g.cut.Hidden
	if main.HiddenIn > 0 {
		r.InStart, r.InEnd = 0, main.HiddenIn-1
		g.AddWire(gen.HiddenIn, hdl.Vector(main.HiddenIn))
	}
	if main.HiddenOut > 0 {
		r.OutStart, r.OutEnd = 0, main.HiddenOut-1
		g.AddWire(gen.HiddenOut, hdl.Vector(main.HiddenOut))
	}
	if main.HiddenIO > 0 {
		r.IOStart, r.IOEnd = 0, main.HiddenIO-1
	}
}

func (g *Generator) declarations(h *hdl.Hdl) {
	if g.Ticker != nil {
		h.Add(g.Ticker.BlackBox(false))
		h.Blank()
		h.Add(g.Clocks[0].BlackBox(false))
		h.Blank()
	}
	h.Add(g.Circuit.BlackBox(false))
}

func (g *Generator) body(h *hdl.Hdl) {
	if g.Ticker != nil {
		h.Comment("Clock tree")
		g.Ticker.InstanceWith(h, 0, g.Ticker.ParamMappings(), clock.TickerPorts(h.Lang))
		for id, each := range g.Clocks {
			h.Blank()
			each.InstanceWith(h, uint64(id), each.ParamMappings(), clock.GeneratorPorts(h.Lang, id))
		}
		h.Blank()
	}
	h.Comment("Board connections")
	for _, e := range g.Plan.Entries {
		g.GenerateInlinedCodeSignal(h, e)
	}
	for _, actual := range g.bidir {
		if v, ok := g.consts[actual]; ok {
			h.Assign(actual, h.Bit(v))
		}
	}
	h.Blank()
	h.Comment("Main circuit")
	ports := g.Circuit.PortMappings(g.cut)
	if len(g.bidir) > 0 {
		ports.Remove(gen.HiddenIO).AddBits(gen.HiddenIO, g.bidir)
	}
	g.Circuit.InstanceWith(h, 0, g.Circuit.ParamMappings(), ports)
}

// WriteTicker writes the tick generator, if the design has clocks
func (g *Generator) WriteTicker(root string) bool {
	if g.Ticker == nil {
		return true
	}
	return g.Ticker.WriteHDLFiles(root)
}

// WriteClockBank writes the clock generator module, shared by all the
// clocks of the design
func (g *Generator) WriteClockBank(root string) bool {
	if len(g.Clocks) == 0 {
		return true
	}
	return g.Clocks[0].WriteHDLFiles(root)
}
