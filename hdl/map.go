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

package hdl

import (
	"strconv"
	"strings"
)

const unconnected = "\x00open"

type assoc struct {
	port   string // port name as declared
	formal string // what goes on the left: the port or one bit of it
	actual string
}

// Map accumulates port (or generic) associations in insertion order
type Map struct {
	Lang Lang
	list []assoc
}

func NewMap(lang Lang) *Map {
	return &Map{Lang: lang}
}

func (m *Map) put(port, formal, actual string) {
	for k, each := range m.list {
		if each.formal == formal {
			m.list[k].actual = actual
			return
		}
	}
	m.list = append(m.list, assoc{port, formal, actual})
}

func (m *Map) Add(port, actual string) *Map {
	m.put(port, port, actual)
	return m
}

// Add0 connects a scalar signal to bit 0 of a vector port. VHDL cannot
// associate a std_logic with a one-element std_logic_vector directly.
func (m *Map) Add0(port, actual string) *Map {
	if m.Lang == VHDL {
		m.put(port, port+"(0)", actual)
	} else {
		m.put(port, port, actual)
	}
	return m
}

// All drives every bit of the port with the same value
func (m *Map) All(port string, width int, b bool) *Map {
	h := Hdl{Lang: m.Lang}
	return m.Add(port, h.Fill(width, b))
}

func (m *Map) Unconnected(port string) *Map {
	m.put(port, port, unconnected)
	return m
}

// AddBits associates each bit of a port separately. actuals[0] is bit 0.
// Verilog has no per-bit formals, so a concatenation is used there.
func (m *Map) AddBits(port string, actuals []string) *Map {
	if m.Lang == VHDL {
		for k, each := range actuals {
			m.put(port, port+"("+strconv.Itoa(k)+")", each)
		}
		return m
	}
	rev := make([]string, len(actuals))
	for k, each := range actuals {
		rev[len(actuals)-1-k] = each
	}
	m.put(port, port, "{"+strings.Join(rev, ", ")+"}")
	return m
}

// Remove drops every association made to port
func (m *Map) Remove(port string) *Map {
	kept := m.list[:0]
	for _, each := range m.list {
		if each.port != port {
			kept = append(kept, each)
		}
	}
	m.list = kept
	return m
}

// Get returns the first actual associated to port. Unconnected ports
// return Open spelling for the map language.
func (m *Map) Get(port string) (string, bool) {
	for _, each := range m.list {
		if each.port == port {
			return m.spell(each.actual), true
		}
	}
	return "", false
}

func (m *Map) Has(port string) bool {
	_, ok := m.Get(port)
	return ok
}

func (m *Map) IsUnconnected(port string) bool {
	for _, each := range m.list {
		if each.port == port {
			return each.actual == unconnected
		}
	}
	return false
}

// Ports lists the distinct ports in insertion order
func (m *Map) Ports() []string {
	var ports []string
	seen := make(map[string]bool)
	for _, each := range m.list {
		if !seen[each.port] {
			seen[each.port] = true
			ports = append(ports, each.port)
		}
	}
	return ports
}

func (m *Map) Len() int { return len(m.list) }

func (m *Map) spell(actual string) string {
	if actual != unconnected {
		return actual
	}
	if m.Lang == VHDL {
		return "open"
	}
	return ""
}

// Entries formats every association, without separators
func (m *Map) Entries() []string {
	all := make([]string, 0, len(m.list))
	for _, each := range m.list {
		if m.Lang == VHDL {
			all = append(all, each.formal+" => "+m.spell(each.actual))
		} else {
			all = append(all, "."+each.formal+"("+m.spell(each.actual)+")")
		}
	}
	return all
}
