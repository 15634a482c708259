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

package toplevel

import (
	"strconv"

	"github.com/jotego/jthdl/gen"
	"github.com/jotego/jthdl/hdl"
	"github.com/jotego/jthdl/pins"
)

// signal gives bit k of the top level net that carries source s
func (g *Generator) signal(h *hdl.Hdl, s pins.Source, k int) string {
	if s.Pin {
		if s.Width == 1 {
			return SignalName(s.Comp)
		}
		return h.Index(SignalName(s.Comp), k)
	}
	bus := gen.HiddenIn
	if s.Dir == pins.Output {
		bus = gen.HiddenOut
	}
	return h.Index(bus, s.Start+k)
}

// GenerateInlinedCodeSignal connects one source to the board. Inouts are
// left to BidirAssignments.
func (g *Generator) GenerateInlinedCodeSignal(h *hdl.Hdl, e pins.Entry) {
	s := e.Source
	report := g.Context().Report
	switch {
	case s.Dir == pins.InOut:
		return
	case s.Dir != pins.Input && s.Dir != pins.Output:
		report.Warn("%s has no clear direction, not connected", s.Name)
		return
	case s.Width <= 0 || len(e.Dests) != s.Width:
		report.Warn("%s has no valid width, not connected", s.Name)
		return
	}
	// a pin tied to a constant as a whole gets a single literal
	if s.Pin && s.Dir == pins.Input && e.Whole && all_constant(e.Dests) {
		var value uint64
		for k, d := range e.Dests {
			if d.Value && k < 64 {
				value |= 1 << uint(k)
			}
		}
		h.Assign(SignalName(s.Comp), h.Literal(value, s.Width))
		return
	}
	for k, d := range e.Dests {
		g.inlineSignal(h, s, d, k)
	}
}

func all_constant(dests []pins.Dest) bool {
	for _, d := range dests {
		if d.Kind != pins.Constant {
			return false
		}
	}
	return true
}

// inlineSignal connects bit k of s to its destination
func (g *Generator) inlineSignal(h *hdl.Hdl, s pins.Source, d pins.Dest, k int) {
	sig := g.signal(h, s, k)
	switch d.Kind {
	case pins.Open:
		// synthesis removes the logic behind an unused output
	case pins.Constant:
		if s.Dir == pins.Input {
			h.Assign(sig, h.Bit(d.Value))
		}
	case pins.Physical:
		if s.Dir == pins.Input {
			h.Assign(sig, invert(h, d.Port, d.Invert))
		} else {
			h.Assign(d.Port, invert(h, sig, d.Invert))
		}
	}
}

func invert(h *hdl.Hdl, expr string, yes bool) string {
	if yes {
		return h.Not(expr)
	}
	return expr
}

// BidirAssignments gives the actual for every bit of the hidden inout bus
// of the main circuit: an inout pin, a floating net or a net tied to a
// constant. The nets are declared here.
func (g *Generator) BidirAssignments() []string {
	n := g.Design.Main.HiddenIO
	if n == 0 {
		return nil
	}
	report := g.Context().Report
	all := make([]string, n)
	for _, e := range g.Plan.Entries {
		s := e.Source
		if s.Dir != pins.InOut {
			continue
		}
		for k, d := range e.Dests {
			bit := s.Start + k
			if bit < 0 || bit >= n {
				report.Fatal("%s bit %d is out of the hidden inout bus (%d bits)", s.Name, bit, n)
				continue
			}
			if all[bit] != "" {
				report.Fatal("hidden inout bit %d is mapped twice, the second time by %s", bit, s.Name)
				continue
			}
			switch d.Kind {
			case pins.Physical:
				if pins.NeedTopLevelInversion(s.Comp, d.Resource) {
					report.Severe("%s and %s differ in polarity but no inverter can be placed on the bidirectional pin %s",
						s.Name, d.Resource.Name, d.Port)
				}
				all[bit] = d.Port
			case pins.Constant:
				all[bit] = "s_io_const_" + strconv.Itoa(bit)
				g.consts[all[bit]] = d.Value
				g.AddWire(all[bit], "1")
			}
		}
	}
	for k := range all {
		if all[k] == "" {
			all[k] = "s_io_open_" + strconv.Itoa(k)
			g.AddWire(all[k], "1")
		}
	}
	return all
}
