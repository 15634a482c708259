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

package parts

import (
	"strconv"

	"github.com/jotego/jthdl/gen"
	"github.com/jotego/jthdl/hdl"
	"github.com/jotego/jthdl/netlist"
)

// Board facing components reach the FPGA through the hidden buses. The
// polarity of the board resource is fixed at the top level.

func new_led(ctx gen.Context) *gen.Generator {
	g := gen.New(ctx, "io", "Led", "LED")
	g.Input("LedIn", "1", 0)
	g.SetHidden(gen.HiddenPorts{Outputs: 1})
	g.Body = func(h *hdl.Hdl) {
		h.Assign(h.Index(gen.HiddenOut, 0), "LedIn")
	}
	return g
}

func new_button(ctx gen.Context) *gen.Generator {
	g := gen.New(ctx, "io", "Button", "BUTTON")
	g.Output("ButtonOut", "1", 0)
	g.SetHidden(gen.HiddenPorts{Inputs: 1})
	g.Body = func(h *hdl.Hdl) {
		h.Assign("ButtonOut", h.Index(gen.HiddenIn, 0))
	}
	return g
}

func new_dipswitch(ctx gen.Context, comp *netlist.Component) *gen.Generator {
	n := max(1, comp.Attrs.Width())
	g := gen.New(ctx, "io", "DipSwitch_${WIDTH}", "DIPSWITCH")
	g.Output("DipOut", hdl.Vector(n), 0)
	g.SetHidden(gen.HiddenPorts{Inputs: n})
	g.Body = func(h *hdl.Hdl) {
		h.Assign("DipOut", gen.HiddenIn)
	}
	return g
}

var segments = []string{"Segment_A", "Segment_B", "Segment_C", "Segment_D",
	"Segment_E", "Segment_F", "Segment_G", "DecimalPoint"}

func new_sevenseg(ctx gen.Context) *gen.Generator {
	g := gen.New(ctx, "io", "SevenSegment", "SEVENSEG")
	for k, each := range segments {
		g.InputDefault(each, "1", k, false)
	}
	g.SetHidden(gen.HiddenPorts{Outputs: len(segments)})
	g.Body = func(h *hdl.Hdl) {
		for k, each := range segments {
			h.Assign(h.Index(gen.HiddenOut, k), each)
		}
	}
	return g
}

// The pad is driven only while GpioEnable is set. This needs a real
// inout, so the hidden port is never split.
func new_gpio(ctx gen.Context, comp *netlist.Component) *gen.Generator {
	n := max(1, comp.Attrs.Width())
	g := gen.New(ctx, "io", "Gpio_${WIDTH}", "GPIO")
	g.Output("GpioIn", hdl.Vector(n), 0)
	g.InputDefault("GpioOut", hdl.Vector(n), 1, false)
	g.InputDefault("GpioEnable", "1", 2, false)
	g.SetHidden(gen.HiddenPorts{InOuts: n})
	g.Body = func(h *hdl.Hdl) {
		if h.IsVerilog() {
			h.Assign(gen.HiddenIO, "GpioEnable ? GpioOut : {"+strconv.Itoa(n)+"{1'bz}}")
		} else {
			h.Stmt("%s <= GpioOut WHEN GpioEnable = '1' ELSE (others => 'Z')", gen.HiddenIO)
		}
		h.Assign("GpioIn", gen.HiddenIO)
	}
	return g
}
