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
	"github.com/jotego/jthdl/netlist"
)

// Source is a logical signal group crossing the top level: a pin of the
// main circuit or the hidden ports of one board facing component.
// Dir is seen from the circuit, Input means the board drives it.
type Source struct {
	Name       string
	Comp       *netlist.Component
	Pin        bool
	Dir        Dir
	Width      int
	ActiveHigh bool
	// first bit in the hidden bus of the main circuit
	Start int
}

// Sources lists the pins of the main circuit and then the hidden port
// groups, in hierarchy order
func Sources(d *netlist.Design) []Source {
	var all []Source
	if d == nil || d.Main == nil {
		return nil
	}
	for _, pin := range d.Main.Pins() {
		// an input pin drives its net, so it is fed from the board
		dir := Input
		if pin.PinEnd() == netlist.EndInput {
			dir = Output
		}
		w := max(1, pin.Attrs.Width())
		if n := pin.Connection(0); n != nil {
			w = n.Width
		}
		all = append(all, Source{
			Name:       pin.Label,
			Comp:       pin,
			Pin:        true,
			Dir:        dir,
			Width:      w,
			ActiveHigh: pin.Attrs.ActiveHigh(),
		})
	}
	for _, h := range d.HiddenSources() {
		s := Source{Name: h.Path, Comp: h.Comp, ActiveHigh: h.Comp.Attrs.ActiveHigh()}
		switch {
		case h.Inputs() > 0:
			s.Dir, s.Width, s.Start = Input, h.Inputs(), h.In[0]
		case h.Outputs() > 0:
			s.Dir, s.Width, s.Start = Output, h.Outputs(), h.Out[0]
		default:
			s.Dir, s.Width, s.Start = InOut, h.InOuts(), h.IO[0]
		}
		all = append(all, s)
	}
	return all
}
