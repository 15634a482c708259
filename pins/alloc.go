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
	"strconv"
)

// Location is one top level port and where it goes on the board
type Location struct {
	Port     string
	Dir      Dir
	Pin      string // FPGA pin
	Resource string
	Bit      int
	Standard string
}

// Allocator hands out the top level port names. Each direction has its
// own sequence. A physical pin requested twice in the same direction keeps
// its first name. It cannot be given to another direction.
type Allocator struct {
	all  [3][]Location
	used map[string]Location // by FPGA pin
}

func NewAllocator() *Allocator {
	return &Allocator{used: make(map[string]Location)}
}

var port_prefix = [...]string{"FPGA_INPUT_PIN_", "FPGA_OUTPUT_PIN_", "FPGA_INOUT_PIN_"}

// Alloc returns the port for bit k of resource r. When the pin already
// belongs to a port of another direction, that port is returned along
// with false.
func (a *Allocator) Alloc(dir Dir, r *Resource, bit int) (Location, bool) {
	pin := r.Pins[bit]
	if loc, ok := a.used[pin]; ok {
		return loc, loc.Dir == dir
	}
	loc := Location{
		Port:     port_prefix[dir] + strconv.Itoa(len(a.all[dir])),
		Dir:      dir,
		Pin:      pin,
		Resource: r.Name,
		Bit:      bit,
		Standard: r.Standard,
	}
	a.all[dir] = append(a.all[dir], loc)
	a.used[pin] = loc
	return loc, true
}

func (a *Allocator) Count(dir Dir) int { return len(a.all[dir]) }

// Locations lists inputs, outputs and then inouts in allocation order
func (a *Allocator) Locations() []Location {
	var all []Location
	for _, each := range a.all {
		all = append(all, each...)
	}
	return all
}

func (a *Allocator) Of(dir Dir) []Location { return a.all[dir] }
