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
	"io/ioutil"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/jotego/jthdl/diag"
	"github.com/jotego/jthdl/hdl"
)

type NetYAML struct {
	Name  string `yaml:"name"`
	Width int    `yaml:"width"`
}

type ComponentYAML struct {
	Kind  string            `yaml:"kind"`
	Label string            `yaml:"label"`
	X     int               `yaml:"x"`
	Y     int               `yaml:"y"`
	Attrs map[string]string `yaml:"attrs"`
	Ends  []string          `yaml:"ends"` // net names, "" or "-" for unconnected ends
}

type CircuitYAML struct {
	Name       string          `yaml:"name"`
	Nets       []NetYAML       `yaml:"nets"`
	Components []ComponentYAML `yaml:"components"`
}

type DesignYAML struct {
	Name     string        `yaml:"name"`
	Main     string        `yaml:"main"`
	Circuits []CircuitYAML `yaml:"circuits"`
}

func Load(path string, report diag.Reporter) (*Design, error) {
	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read design file")
	}
	d, err := Parse(buf, report)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return d, nil
}

func Parse(buf []byte, report diag.Reporter) (*Design, error) {
	var dy DesignYAML
	if err := yaml.Unmarshal(buf, &dy); err != nil {
		return nil, errors.Wrap(err, "cannot parse design")
	}
	return Build(dy, report)
}

// Build turns the file contents into a design: nets are resolved, pins
// sorted, hidden ranges allocated and clock identifiers propagated.
func Build(dy DesignYAML, report diag.Reporter) (*Design, error) {
	if len(dy.Circuits) == 0 {
		return nil, errors.New("the design has no circuits")
	}
	d := &Design{Name: dy.Name}
	for _, cy := range dy.Circuits {
		if cy.Name == "" {
			return nil, errors.New("circuit without name")
		}
		if d.Circuit(cy.Name) != nil {
			return nil, errors.Errorf("circuit %s defined twice", cy.Name)
		}
		d.Circuits = append(d.Circuits, &Circuit{Name: cy.Name, design: d})
	}
	if d.Name == "" {
		d.Name = dy.Circuits[0].Name
	}
	for k, cy := range dy.Circuits {
		if err := build_circuit(d, d.Circuits[k], cy); err != nil {
			return nil, errors.Wrap(err, "circuit "+cy.Name)
		}
	}
	main := dy.Main
	if main == "" {
		main = dy.Circuits[0].Name
	}
	if d.Main = d.Circuit(main); d.Main == nil {
		return nil, errors.Errorf("main circuit %s not found", main)
	}
	done := make(map[*Circuit]bool)
	for _, each := range d.Circuits {
		if err := alloc_hidden(each, done, nil); err != nil {
			return nil, err
		}
	}
	if err := find_clocks(d); err != nil {
		return nil, err
	}
	propagate_clocks(d, report)
	return d, nil
}

func build_circuit(d *Design, c *Circuit, cy CircuitYAML) error {
	nets := make(map[string]*Net)
	used := make(map[string]bool)
	for _, ny := range cy.Nets {
		if ny.Name == "" {
			return errors.New("net without name")
		}
		if nets[ny.Name] != nil {
			return errors.Errorf("net %s defined twice", ny.Name)
		}
		if ny.Width == 0 {
			ny.Width = 1
		}
		if ny.Width < 0 {
			return errors.Errorf("net %s has a negative width", ny.Name)
		}
		name := "s_" + hdl.Sanitize(ny.Name)
		for k := 1; used[strings.ToLower(name)]; k++ {
			name = "s_" + hdl.Sanitize(ny.Name) + "_" + strconv.Itoa(k)
		}
		used[strings.ToLower(name)] = true
		n := &Net{Label: ny.Name, Name: name, Width: ny.Width, Clock: -1}
		nets[ny.Name] = n
		c.Nets = append(c.Nets, n)
	}
	labels := make(map[string]bool)
	for _, py := range cy.Components {
		comp := &Component{
			Kind:  Kind(strings.ToLower(py.Kind)),
			Label: py.Label,
			X:     py.X,
			Y:     py.Y,
			Attrs: Attributes(py.Attrs),
		}
		if comp.Attrs == nil {
			comp.Attrs = make(Attributes)
		}
		if comp.Label == "" {
			comp.Label = comp.Attrs.Label()
		}
		if !comp.Kind.Known() {
			return errors.Errorf("unknown component kind %q", py.Kind)
		}
		for _, end := range py.Ends {
			end = strings.TrimSpace(end)
			if end == "" || end == "-" {
				comp.Ends = append(comp.Ends, nil)
				continue
			}
			n := nets[end]
			if n == nil {
				return errors.Errorf("%s refers to undeclared net %s", comp.Name(), end)
			}
			comp.Ends = append(comp.Ends, n)
		}
		switch comp.Kind {
		case KindPin:
			if comp.Label == "" {
				return errors.Errorf("pin at %d,%d needs a label", comp.X, comp.Y)
			}
			key := strings.ToLower(hdl.Sanitize(comp.Label))
			if labels[key] {
				return errors.Errorf("pin label %s used twice", comp.Label)
			}
			labels[key] = true
			if comp.IsInputPin() {
				c.Inputs = append(c.Inputs, comp)
			} else {
				c.Outputs = append(c.Outputs, comp)
			}
		case KindSubcircuit:
			name := comp.Attrs.Get("circuit", "")
			if comp.Sub = d.Circuit(name); comp.Sub == nil {
				return errors.Errorf("%s instantiates unknown circuit %q", comp.Name(), name)
			}
		}
		c.Components = append(c.Components, comp)
	}
	return nil
}

// alloc_hidden assigns the hidden ranges bottom-up, so subcircuits are
// sized before their parents. visiting catches recursive hierarchies.
func alloc_hidden(c *Circuit, done map[*Circuit]bool, visiting []*Circuit) error {
	if done[c] {
		return nil
	}
	for _, each := range visiting {
		if each == c {
			return errors.Errorf("circuit %s contains itself", c.Name)
		}
	}
	visiting = append(visiting, c)
	for _, comp := range c.Components {
		if comp.Kind != KindSubcircuit {
			continue
		}
		if err := alloc_hidden(comp.Sub, done, visiting); err != nil {
			return err
		}
		if len(comp.Ends) != len(comp.Sub.Pins()) {
			return errors.Errorf("%s in %s has %d ends but circuit %s has %d pins",
				comp.Name(), c.Name, len(comp.Ends), comp.Sub.Name, len(comp.Sub.Pins()))
		}
	}
	c.HiddenIn, c.HiddenOut, c.HiddenIO = 0, 0, 0
	for _, comp := range c.Components {
		in, out, io := HiddenCounts(comp)
		if in+out+io == 0 {
			continue
		}
		r := &HiddenRange{-1, -1, -1, -1, -1, -1}
		if in > 0 {
			r.InStart, r.InEnd = c.HiddenIn, c.HiddenIn+in-1
			c.HiddenIn += in
		}
		if out > 0 {
			r.OutStart, r.OutEnd = c.HiddenOut, c.HiddenOut+out-1
			c.HiddenOut += out
		}
		if io > 0 {
			r.IOStart, r.IOEnd = c.HiddenIO, c.HiddenIO+io-1
			c.HiddenIO += io
		}
		comp.Hidden = r
	}
	done[c] = true
	return nil
}

func find_clocks(d *Design) error {
	for _, c := range d.Circuits {
		for _, comp := range c.Components {
			if comp.Kind != KindClock {
				continue
			}
			id := len(d.Clocks)
			d.Clocks = append(d.Clocks, ClockSource{Id: id, Comp: comp, Circuit: c})
			n := comp.Connection(0)
			if n == nil {
				continue
			}
			if n.Width != 1 {
				return errors.Errorf("clock %s in %s drives the %d-bit net %s", comp.Name(), c.Name, n.Width, n.Label)
			}
			n.Clock = id
		}
	}
	return nil
}

// propagate_clocks marks the nets behind subcircuit input pins that are
// fed by a clock net. A circuit instantiated from two clock domains keeps
// the first one.
func propagate_clocks(d *Design, report diag.Reporter) {
	warned := make(map[*Net]bool)
	for changed := true; changed; {
		changed = false
		for _, c := range d.Circuits {
			for _, comp := range c.Components {
				if comp.Kind != KindSubcircuit {
					continue
				}
				for k, pin := range comp.Sub.Inputs {
					outer := comp.Connection(k)
					inner := pin.Connection(0)
					if outer == nil || inner == nil || outer.Clock < 0 {
						continue
					}
					switch {
					case inner.Clock < 0:
						inner.Clock = outer.Clock
						changed = true
					case inner.Clock != outer.Clock && !warned[inner]:
						warned[inner] = true
						if report != nil {
							report.Warn("pin %s of circuit %s is fed by clocks %d and %d. Clock %d is used",
								pin.Name(), comp.Sub.Name, inner.Clock, outer.Clock, inner.Clock)
						}
					}
				}
			}
		}
	}
}
