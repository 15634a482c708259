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

package pins

import (
	"github.com/jotego/jthdl/diag"
	"github.com/jotego/jthdl/netlist"
)

type DestKind int

const (
	Open DestKind = iota
	Constant
	Physical
)

func (k DestKind) String() string {
	return [...]string{"open", "constant", "physical"}[k]
}

// Dest is where one bit of a source ends up
type Dest struct {
	Kind     DestKind
	Resource *Resource
	Bit      int    // bit of the resource
	Value    bool   // for constants
	Port     string // top level port for physical bits
	Invert   bool
}

// Entry holds the destination of every bit of a source. Whole is set
// when the source went to a single resource as a block.
type Entry struct {
	Source Source
	Whole  bool
	Dests  []Dest
}

type Plan struct {
	Board   *Board
	Alloc   *Allocator
	Entries []Entry
}

// NeedTopLevelInversion is true when exactly one end is active low
func NeedTopLevelInversion(comp *netlist.Component, r *Resource) bool {
	return comp.Attrs.ActiveHigh() != r.ActiveHigh()
}

// Resolve binds every source of the design. Problems with the bindings
// are reported and the offending bits are left open, or tied to zero
// for inputs, so the rest of the design can still be generated.
func Resolve(d *netlist.Design, board *Board, bb *Bindings, report diag.Reporter) *Plan {
	p := &Plan{Board: board, Alloc: NewAllocator()}
	if report == nil {
		report = new(diag.Collector)
	}
	r := resolver{plan: p, report: report}
	for _, s := range Sources(d) {
		if s.Width <= 0 {
			report.Warn("%s has no bits, skipped", s.Name)
			continue
		}
		p.Entries = append(p.Entries, r.entry(s, bb.Find(s.Name)))
	}
	return p
}

type resolver struct {
	plan   *Plan
	report diag.Reporter
}

func (r *resolver) entry(s Source, b *Binding) Entry {
	e := Entry{Source: s, Dests: make([]Dest, s.Width)}
	for k := range e.Dests {
		e.Dests[k] = unbound(s)
	}
	switch {
	case b == nil:
		e.Whole = true
		if s.Dir == Input {
			r.report.Warn("%s is not bound, tied to zero", s.Name)
		}
	case len(b.Bits) > 0:
		if len(b.Bits) != s.Width {
			r.report.Severe("%s is %d bits wide but %d bits are bound", s.Name, s.Width, len(b.Bits))
		}
		for k, bit := range b.Bits {
			if k >= s.Width {
				break
			}
			e.Dests[k] = r.bit(s, bit, k)
		}
	case b.Open || b.Const != nil:
		e.Whole = true
		for k := range e.Dests {
			bit := BitBinding{Open: b.Open}
			if b.Const != nil {
				v := (*b.Const >> uint(k)) & 1
				bit.Const = &v
			}
			e.Dests[k] = r.bit(s, bit, k)
		}
	default:
		e.Whole = true
		res := r.resource(s, b.To)
		if res == nil {
			break
		}
		if b.Offset+s.Width > res.Width {
			r.report.Severe("%s is %d bits wide but %s has %d bits from offset %d, the rest is not bound",
				s.Name, s.Width, res.Name, res.Width-b.Offset, b.Offset)
		} else if b.Offset == 0 && s.Width != res.Width {
			r.report.Severe("%s is %d bits wide but %s has %d", s.Name, s.Width, res.Name, res.Width)
		}
		for k := range e.Dests {
			if b.Offset+k < res.Width {
				e.Dests[k] = r.physical(s, res, b.Offset+k)
			}
		}
	}
	return e
}

// unbound inputs read zero, anything else floats
func unbound(s Source) Dest {
	if s.Dir == Input {
		return Dest{Kind: Constant}
	}
	return Dest{Kind: Open}
}

func (r *resolver) resource(s Source, name string) *Resource {
	if r.plan.Board == nil {
		r.report.Severe("%s is bound to %s but there is no board", s.Name, name)
		return nil
	}
	res := r.plan.Board.Resource(name)
	if res == nil {
		r.report.Severe("%s is bound to unknown resource %s", s.Name, name)
		return nil
	}
	if res.Dir() != s.Dir {
		r.report.Severe("%s is an %s but %s is an %s", s.Name, s.Dir, res.Name, res.Dir())
	}
	return res
}

// bit resolves bit k of s bound on its own
func (r *resolver) bit(s Source, b BitBinding, k int) Dest {
	switch {
	case b.Open:
		if s.Dir == Input {
			r.report.Warn("%s bit %d is left open, tied to zero", s.Name, k)
			return Dest{Kind: Constant}
		}
		return Dest{Kind: Open}
	case b.Const != nil:
		if s.Dir == Output {
			r.report.Warn("%s bit %d is an output bound to a constant, left open", s.Name, k)
			return Dest{Kind: Open}
		}
		return Dest{Kind: Constant, Value: *b.Const != 0}
	}
	res := r.resource(s, b.To)
	if res == nil {
		return unbound(s)
	}
	if b.Offset >= res.Width {
		r.report.Severe("%s bit %d goes beyond %s, which has %d bits", s.Name, k, res.Name, res.Width)
		return unbound(s)
	}
	return r.physical(s, res, b.Offset)
}

func (r *resolver) physical(s Source, res *Resource, bit int) Dest {
	loc, ok := r.plan.Alloc.Alloc(s.Dir, res, bit)
	if !ok {
		r.report.Fatal("%s cannot use pin %s of %s as an %s, it is already the %s port %s",
			s.Name, loc.Pin, res.Name, s.Dir, loc.Dir, loc.Port)
		return unbound(s)
	}
	d := Dest{
		Kind:     Physical,
		Resource: res,
		Bit:      bit,
		Port:     loc.Port,
	}
	if s.Dir != InOut {
		d.Invert = NeedTopLevelInversion(s.Comp, res)
	}
	return d
}

// Physical lists every physical bit of the plan, used by the design rule
// checks
func (p *Plan) Physical() []PhysicalBit {
	var all []PhysicalBit
	for _, e := range p.Entries {
		for k, d := range e.Dests {
			if d.Kind != Physical {
				continue
			}
			all = append(all, PhysicalBit{
				Source:   e.Source.Name,
				Bit:      k,
				Dir:      e.Source.Dir.String(),
				Resource: d.Resource.Name,
				Pin:      d.Resource.Pins[d.Bit],
			})
		}
	}
	return all
}

type PhysicalBit struct {
	Source   string `json:"source"`
	Bit      int    `json:"bit"`
	Dir      string `json:"dir"`
	Resource string `json:"resource"`
	Pin      string `json:"pin"`
}
