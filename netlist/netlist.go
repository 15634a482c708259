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

// Package netlist is the read-only view of a design that the generators
// query: which net sits on each component end, which nets carry a clock
// and which part of the hidden FPGA buses each component owns.
package netlist

import (
	"fmt"
	"strconv"
	"strings"
)

type Kind string

const (
	KindPin        Kind = "pin"
	KindConstant   Kind = "constant"
	KindClock      Kind = "clock"
	KindAnd        Kind = "and"
	KindOr         Kind = "or"
	KindXor        Kind = "xor"
	KindNand       Kind = "nand"
	KindNor        Kind = "nor"
	KindXnor       Kind = "xnor"
	KindNot        Kind = "not"
	KindAdder      Kind = "adder"
	KindMux        Kind = "mux"
	KindRegister   Kind = "register"
	KindLed        Kind = "led"
	KindButton     Kind = "button"
	KindDipSwitch  Kind = "dipswitch"
	KindSevenSeg   Kind = "sevenseg"
	KindGpio       Kind = "gpio"
	KindSubcircuit Kind = "subcircuit"
)

var known_kinds = []Kind{
	KindPin, KindConstant, KindClock, KindAnd, KindOr, KindXor, KindNand,
	KindNor, KindXnor, KindNot, KindAdder, KindMux, KindRegister, KindLed,
	KindButton, KindDipSwitch, KindSevenSeg, KindGpio, KindSubcircuit,
}

func (k Kind) Known() bool {
	for _, each := range known_kinds {
		if k == each {
			return true
		}
	}
	return false
}

// EndType is the direction of a component end seen from the component
type EndType int

const (
	EndInput EndType = iota
	EndOutput
	EndInOut
)

type Trigger int

const (
	Rising Trigger = iota
	Falling
	High
	Low
)

func (t Trigger) Edge() bool      { return t == Rising || t == Falling }
func (t Trigger) ActiveLow() bool { return t == Falling || t == Low }

func (t Trigger) String() string {
	return [...]string{"rising", "falling", "high", "low"}[t]
}

type Attributes map[string]string

func (a Attributes) Get(key, def string) string {
	if v, ok := a[key]; ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}

func (a Attributes) Int(key string, def int) int {
	v, ok := a[key]
	if !ok {
		return def
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 0, 64)
	if err != nil {
		return def
	}
	return int(n)
}

func (a Attributes) Bool(key string, def bool) bool {
	v, ok := a[key]
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return b
}

func (a Attributes) Width() int    { return a.Int("width", 1) }
func (a Attributes) Label() string { return a.Get("label", "") }

func (a Attributes) Trigger() Trigger {
	switch strings.ToLower(a.Get("trigger", "rising")) {
	case "falling":
		return Falling
	case "high":
		return High
	case "low":
		return Low
	}
	return Rising
}

// ActiveHigh is the polarity of board facing components
func (a Attributes) ActiveHigh() bool { return a.Bool("active_high", true) }

type Net struct {
	Label string // name in the design file
	Name  string // HDL signal name
	Width int
	Clock int // clock identifier, -1 when the net is not driven by a clock source
}

// HiddenRange locates the hidden FPGA ports of a component inside the
// hidden buses of its circuit. Start is -1 when there are none.
type HiddenRange struct {
	InStart, InEnd   int
	OutStart, OutEnd int
	IOStart, IOEnd   int
}

func (r HiddenRange) Inputs() int  { return span(r.InStart, r.InEnd) }
func (r HiddenRange) Outputs() int { return span(r.OutStart, r.OutEnd) }
func (r HiddenRange) InOuts() int  { return span(r.IOStart, r.IOEnd) }

func span(start, end int) int {
	if start < 0 {
		return 0
	}
	return end - start + 1
}

type Component struct {
	Kind   Kind
	Label  string
	X, Y   int
	Attrs  Attributes
	Ends   []*Net // nil entries are unconnected ends
	Hidden *HiddenRange
	Sub    *Circuit // only for subcircuits
}

// Name identifies the component in messages and binding paths
func (c *Component) Name() string {
	if c.Label != "" {
		return c.Label
	}
	return fmt.Sprintf("%s@%d,%d", c.Kind, c.X, c.Y)
}

// Connection returns the net on end k or nil. It is safe on a nil
// component.
func (c *Component) Connection(k int) *Net {
	if c == nil || k < 0 || k >= len(c.Ends) {
		return nil
	}
	return c.Ends[k]
}

// IsInputPin is true for pins bringing data into the circuit
func (c *Component) IsInputPin() bool {
	return c.Kind == KindPin && strings.ToLower(c.Attrs.Get("direction", "input")) != "output"
}

// PinEnd is the type of the pin end inside the circuit. An input pin
// drives its net, so its end is an output.
func (c *Component) PinEnd() EndType {
	if c.IsInputPin() {
		return EndOutput
	}
	return EndInput
}

type Circuit struct {
	Name       string
	Nets       []*Net
	Components []*Component
	// Pins in port order: inputs first, then outputs
	Inputs, Outputs []*Component
	// hidden bus widths, including the ones of the subcircuits
	HiddenIn, HiddenOut, HiddenIO int

	design *Design
}

func (c *Circuit) Design() *Design { return c.design }

// Pins returns the pins in the order used by subcircuit ends
func (c *Circuit) Pins() []*Component {
	all := make([]*Component, 0, len(c.Inputs)+len(c.Outputs))
	all = append(all, c.Inputs...)
	return append(all, c.Outputs...)
}

// ClockId returns the clock carried by n or -1
func (c *Circuit) ClockId(n *Net) int {
	if n == nil {
		return -1
	}
	return n.Clock
}

func (c *Circuit) NumClocks() int {
	if c.design == nil {
		return 0
	}
	return len(c.design.Clocks)
}

// ClockSource is a clock component of the design. Its position in
// Design.Clocks is its identifier.
type ClockSource struct {
	Id      int
	Comp    *Component
	Circuit *Circuit
}

func (s ClockSource) High() int  { return max(1, s.Comp.Attrs.Int("high", 1)) }
func (s ClockSource) Low() int   { return max(1, s.Comp.Attrs.Int("low", 1)) }
func (s ClockSource) Phase() int { return max(0, s.Comp.Attrs.Int("phase", 0)) }

type Design struct {
	Name     string
	Main     *Circuit
	Circuits []*Circuit
	Clocks   []ClockSource
}

func (d *Design) Circuit(name string) *Circuit {
	for _, each := range d.Circuits {
		if each.Name == name {
			return each
		}
	}
	return nil
}

// HiddenCounts is the number of hidden FPGA inputs, outputs and inouts
// needed by one component
func HiddenCounts(c *Component) (in, out, io int) {
	switch c.Kind {
	case KindLed:
		return 0, 1, 0
	case KindButton:
		return 1, 0, 0
	case KindDipSwitch:
		return max(1, c.Attrs.Width()), 0, 0
	case KindSevenSeg:
		return 0, 8, 0
	case KindGpio:
		return 0, 0, max(1, c.Attrs.Width())
	case KindSubcircuit:
		if c.Sub != nil {
			return c.Sub.HiddenIn, c.Sub.HiddenOut, c.Sub.HiddenIO
		}
	}
	return 0, 0, 0
}

// HiddenSource is a board facing component seen from the top level
type HiddenSource struct {
	Path string
	Comp *Component
	// global bit ranges in the hidden buses of the main circuit
	In, Out, IO [2]int
}

func (s HiddenSource) Inputs() int  { return span(s.In[0], s.In[1]) }
func (s HiddenSource) Outputs() int { return span(s.Out[0], s.Out[1]) }
func (s HiddenSource) InOuts() int  { return span(s.IO[0], s.IO[1]) }

// HiddenSources walks the hierarchy from the main circuit and lists the
// leaf components owning hidden ports with their global ranges.
func (d *Design) HiddenSources() []HiddenSource {
	var all []HiddenSource
	if d.Main != nil {
		walk_hidden(d.Main, d.Main.Name, 0, 0, 0, &all)
	}
	return all
}

func walk_hidden(c *Circuit, path string, in0, out0, io0 int, all *[]HiddenSource) {
	for _, each := range c.Components {
		r := each.Hidden
		if r == nil {
			continue
		}
		p := path + "/" + each.Name()
		if each.Kind == KindSubcircuit {
			if each.Sub != nil {
				walk_hidden(each.Sub, p, offset(in0, r.InStart), offset(out0, r.OutStart), offset(io0, r.IOStart), all)
			}
			continue
		}
		*all = append(*all, HiddenSource{
			Path: p,
			Comp: each,
			In:   [2]int{shift(in0, r.InStart), shift(in0, r.InEnd)},
			Out:  [2]int{shift(out0, r.OutStart), shift(out0, r.OutEnd)},
			IO:   [2]int{shift(io0, r.IOStart), shift(io0, r.IOEnd)},
		})
	}
}

func offset(base, start int) int {
	if start < 0 {
		return base
	}
	return base + start
}

func shift(base, k int) int {
	if k < 0 {
		return -1
	}
	return base + k
}
