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
	"fmt"
	"strconv"
	"strings"

	"github.com/jotego/jthdl/hdl"
)

// placeholders accepted in module name templates
type placeholder int

const (
	phWidth   placeholder = iota // ${WIDTH}: width attribute
	phBus                        // ${BUS}: Bit or Bus
	phTrigger                    // ${TRIGGER}: FlipFlop or Latch
	phUID                        // ${UID}: unique per component
)

func parse_placeholder(s string) (placeholder, bool) {
	switch s {
	case "WIDTH":
		return phWidth, true
	case "BUS":
		return phBus, true
	case "TRIGGER":
		return phTrigger, true
	case "UID":
		return phUID, true
	}
	return 0, false
}

// DeriveModuleName fills the template placeholders from the context and
// sanitizes the result. For a given context it always returns the same name.
func DeriveModuleName(ctx *Context, template string) string {
	var b strings.Builder
	rest := template
	for {
		k := strings.Index(rest, "${")
		if k < 0 {
			b.WriteString(rest)
			break
		}
		b.WriteString(rest[:k])
		rest = rest[k+2:]
		end := strings.IndexByte(rest, '}')
		if end < 0 {
			ctx.fatal("unterminated placeholder in module name template %q", template)
			break
		}
		ph, ok := parse_placeholder(rest[:end])
		if !ok {
			ctx.fatal("unknown placeholder ${%s} in module name template %q", rest[:end], template)
		} else {
			b.WriteString(ctx.substitute(ph, template))
		}
		rest = rest[end+1:]
	}
	return hdl.Sanitize(b.String())
}

func (ctx *Context) substitute(ph placeholder, template string) string {
	switch ph {
	case phWidth:
		return strconv.Itoa(ctx.Attrs.Width())
	case phBus:
		if ctx.Attrs.Width() == 1 {
			return "Bit"
		}
		return "Bus"
	case phTrigger:
		if ctx.Attrs.Trigger().Edge() {
			return "FlipFlop"
		}
		return "Latch"
	case phUID:
		if ctx.Circuit == nil || ctx.Comp == nil {
			ctx.fatal("module name template %q needs a netlist and a component", template)
			return ""
		}
		// two unlabeled components can share a position, the sequence
		// number tells them apart
		return fmt.Sprintf("%s_%s_%d_%d_%d", hdl.Sanitize(ctx.Circuit.Name),
			hdl.Sanitize(ctx.Comp.Label), ctx.Comp.X, ctx.Comp.Y, ctx.Seq)
	}
	return ""
}
