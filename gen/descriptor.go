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
	"strings"

	"github.com/jotego/jthdl/hdl"
)

// Unconnected marks a port with no end in the source component
const Unconnected = -1

type Dir int

const (
	Input Dir = iota
	Output
	InOut
)

func (d Dir) String() string {
	return [...]string{"in", "out", "inout"}[d]
}

type Port struct {
	Name    string
	Dir     Dir
	Width   hdl.Width
	End     int   // component end feeding the port, or Unconnected
	Default *bool // value driven when nothing is connected, inputs only
	// Actual, when set, is used in port maps instead of the netlist
	Actual string
	// Bidir keeps a real inout port even when tri-states are not used
	Bidir bool
}

type Wire struct {
	Name  string
	Width hdl.Width
}

type Register struct {
	Name  string
	Width hdl.Width
	Init  string // literal already spelled for the target language
}

type ParamType int

const (
	Integer ParamType = iota
	Natural
	Positive
	String
)

func (t ParamType) String() string {
	return [...]string{"integer", "natural", "positive", "string"}[t]
}

type Param struct {
	Name    string
	Type    ParamType
	Value   string // used in generic maps
	Default string // used in declarations, may be empty
}

// ClockPort replaces the clock end of a sequential component by a clock
// and enable pair resolved against the clock tree.
type ClockPort struct {
	Clock, Enable string
	End           int
}

// HiddenPorts are the FPGA facing ports of a component, not visible as
// ends in the schematic.
type HiddenPorts struct {
	Inputs, Outputs, InOuts int
}

func (h HiddenPorts) Any() bool { return h.Inputs+h.Outputs+h.InOuts > 0 }

const (
	HiddenIn  = "hidden_in"
	HiddenOut = "hidden_out"
	HiddenIO  = "hidden_io"
)

// Feature is the closed set of capabilities a generator can have
type Feature uint8

const (
	FeaturePlain Feature = 1 << iota
	FeatureClock
	FeatureHidden
)

func (f Feature) Has(x Feature) bool { return f&x != 0 }

// names keeps ports, wires and registers unique inside one generator.
// VHDL ignores case, so the check does too.
type names map[string]string

func (n names) claim(name, what string) (string, bool) {
	key := strings.ToLower(name)
	if prev, ok := n[key]; ok {
		return prev, false
	}
	n[key] = what
	return "", true
}

func (g *Generator) claim(name, what string) bool {
	if !hdl.IsIdentifier(name) {
		g.ctx.fatal("%s: invalid %s name %q", g.ModuleName, what, name)
		return false
	}
	if prev, ok := g.names.claim(name, what); !ok {
		g.ctx.fatal("%s: %s %s clashes with an existing %s", g.ModuleName, what, name, prev)
		return false
	}
	return true
}

func (g *Generator) AddPort(p Port) bool {
	if !g.claim(p.Name, "port") {
		return false
	}
	g.ports = append(g.ports, p)
	return true
}

func (g *Generator) Input(name string, w hdl.Width, end int) bool {
	return g.AddPort(Port{Name: name, Dir: Input, Width: w, End: end})
}

// InputDefault declares an input that takes value when left unconnected
func (g *Generator) InputDefault(name string, w hdl.Width, end int, value bool) bool {
	return g.AddPort(Port{Name: name, Dir: Input, Width: w, End: end, Default: &value})
}

func (g *Generator) Output(name string, w hdl.Width, end int) bool {
	return g.AddPort(Port{Name: name, Dir: Output, Width: w, End: end})
}

func (g *Generator) InOut(name string, w hdl.Width, end int) bool {
	return g.AddPort(Port{Name: name, Dir: InOut, Width: w, End: end})
}

func (g *Generator) AddWire(name string, w hdl.Width) bool {
	if !g.claim(name, "wire") {
		return false
	}
	g.wires = append(g.wires, Wire{name, w})
	return true
}

func (g *Generator) AddRegister(name string, w hdl.Width, init string) bool {
	if !g.claim(name, "register") {
		return false
	}
	g.regs = append(g.regs, Register{name, w, init})
	return true
}

func (g *Generator) AddParam(p Param) bool {
	if !hdl.IsIdentifier(p.Name) || g.Param(p.Name) != nil {
		g.ctx.fatal("%s: parameter %q is invalid or defined twice", g.ModuleName, p.Name)
		return false
	}
	g.params = append(g.params, p)
	return true
}

// Param looks a parameter up by name
func (g *Generator) Param(name string) *Param {
	for k := range g.params {
		if g.params[k].Name == name {
			return &g.params[k]
		}
	}
	return nil
}

func (g *Generator) SetClock(clock, enable string, end int) bool {
	if !g.claim(clock, "clock port") || !g.claim(enable, "clock port") {
		return false
	}
	g.clock = &ClockPort{clock, enable, end}
	return true
}

func (g *Generator) SetHidden(h HiddenPorts) bool {
	for _, each := range []struct {
		n    int
		name string
	}{{h.Inputs, HiddenIn}, {h.Outputs, HiddenOut}, {h.InOuts, HiddenIO}} {
		if each.n > 0 && !g.claim(each.name, "hidden port") {
			return false
		}
	}
	g.hidden = h
	return true
}

func (g *Generator) Ports() []Port         { return g.ports }
func (g *Generator) Wires() []Wire         { return g.wires }
func (g *Generator) Registers() []Register { return g.regs }
func (g *Generator) Params() []Param       { return g.params }
func (g *Generator) Clock() *ClockPort     { return g.clock }
func (g *Generator) Hidden() HiddenPorts   { return g.hidden }
func (g *Generator) Context() *Context     { return &g.ctx }

func (g *Generator) Features() Feature {
	var f Feature
	if len(g.ports) > 0 {
		f |= FeaturePlain
	}
	if g.clock != nil {
		f |= FeatureClock
	}
	if g.hidden.Any() {
		f |= FeatureHidden
	}
	return f
}

// expanded is true for inout ports modelled as _IN/_OUT/_EN triples
func (g *Generator) expanded(p Port) bool {
	return p.Dir == InOut && !p.Bidir && !g.ctx.Tristate
}

// interface_ports lists every port of the module interface in
// declaration order: plain ports, clock pair and hidden buses.
func (g *Generator) interface_ports() []Port {
	var all []Port
	for _, p := range g.ports {
		if g.expanded(p) {
			all = append(all,
				Port{Name: p.Name + "_IN", Dir: Input, Width: p.Width, End: p.End},
				Port{Name: p.Name + "_OUT", Dir: Output, Width: p.Width, End: Unconnected},
				Port{Name: p.Name + "_EN", Dir: Output, Width: "1", End: Unconnected},
			)
			continue
		}
		all = append(all, p)
	}
	if g.clock != nil {
		all = append(all,
			Port{Name: g.clock.Clock, Dir: Input, Width: "1", End: g.clock.End},
			Port{Name: g.clock.Enable, Dir: Input, Width: "1", End: Unconnected},
		)
	}
	if g.hidden.Inputs > 0 {
		all = append(all, Port{Name: HiddenIn, Dir: Input, Width: hdl.Vector(g.hidden.Inputs), End: Unconnected})
	}
	if g.hidden.Outputs > 0 {
		all = append(all, Port{Name: HiddenOut, Dir: Output, Width: hdl.Vector(g.hidden.Outputs), End: Unconnected})
	}
	if g.hidden.InOuts > 0 {
		all = append(all, Port{Name: HiddenIO, Dir: InOut, Width: hdl.Vector(g.hidden.InOuts), End: Unconnected, Bidir: true})
	}
	return all
}
