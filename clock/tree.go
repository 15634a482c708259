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

// Package clock generates the clock network of a design. A single tick
// generator divides the FPGA oscillator and one clock generator per clock
// component shapes it into a clock tree bus.
package clock

import (
	"strconv"

	"github.com/jotego/jthdl/hdl"
	"github.com/jotego/jthdl/netlist"
)

// Bits of a clock tree bus
const (
	DerivedClock = iota
	PositiveTick
	NegativeTick
	InvertedClock
	GlobalClock

	NrOfClockBits
)

// Net names at the top level
const (
	FPGATick = "fpga_tick"
	SubDir   = "base"
)

func BusName(id int) string {
	return "clock_tree_" + strconv.Itoa(id)
}

// Tree resolves clock ports against the clock tree buses
type Tree struct {
	Lang hdl.Lang
}

// Wires picks the bus bits for a trigger. Edge triggered parts run on the
// global clock with a tick, level sensitive ones on the derived clock.
func (t Tree) Wires(id int, trigger netlist.Trigger) (string, string) {
	clk, en := GlobalClock, PositiveTick
	switch trigger {
	case netlist.Falling:
		clk, en = GlobalClock, NegativeTick
	case netlist.High:
		clk, en = DerivedClock, PositiveTick
	case netlist.Low:
		clk, en = InvertedClock, NegativeTick
	}
	h := hdl.New(t.Lang, nil)
	bus := BusName(id)
	return h.Index(bus, clk), h.Index(bus, en)
}

// bits_for is the counter width needed to hold n
func bits_for(n int) int {
	bits := 1
	for n >= 1<<uint(bits) {
		bits++
	}
	return bits
}
