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
	"bytes"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/jotego/jthdl/gen"
	"github.com/jotego/jthdl/pins"
)

const xdc_tmpl = `## {{ .Module }} pin constraints. Generated by jthdl.
{{- with .Clock }}
set_property PACKAGE_PIN {{ .Pin }} [get_ports {{ .Port }}]
{{- if .Standard }}
set_property IOSTANDARD {{ .Standard }} [get_ports {{ .Port }}]
{{- end }}
create_clock -period {{ period .Frequency }} -name {{ .Port }} [get_ports {{ .Port }}]
{{- end }}
{{ range .Pins }}
set_property PACKAGE_PIN {{ .Pin }} [get_ports {{ .Port }}]
{{- if .Standard }}
set_property IOSTANDARD {{ .Standard }} [get_ports {{ .Port }}]
{{- end }}
{{- end }}
`

const qsf_tmpl = `# {{ .Module }} pin constraints. Generated by jthdl.
set_global_assignment -name TOP_LEVEL_ENTITY {{ .Module }}
{{- with .Clock }}
set_location_assignment PIN_{{ .Pin }} -to {{ .Port }}
{{- if .Standard }}
set_instance_assignment -name IO_STANDARD "{{ .Standard }}" -to {{ .Port }}
{{- end }}
{{- end }}
{{ range .Pins }}
set_location_assignment PIN_{{ .Pin }} -to {{ .Port }}
{{- if .Standard }}
set_instance_assignment -name IO_STANDARD "{{ .Standard }}" -to {{ .Port }}
{{- end }}
{{- end }}
`

type clock_pin struct {
	Port, Pin, Standard string
	Frequency           int
}

type constraints struct {
	Module string
	Clock  *clock_pin
	Pins   []pins.Location
}

// Vendor picks the constraint flavour, xilinx unless the board says
// otherwise
func (g *Generator) Vendor() string {
	if b := g.Plan.Board; b != nil && b.Vendor != "" {
		return strings.ToLower(b.Vendor)
	}
	return "xilinx"
}

// ConstraintsPath is <root>/constraints/<Module>.xdc or .qsf
func (g *Generator) ConstraintsPath(root string) string {
	ext := ".xdc"
	if g.Vendor() == "altera" {
		ext = ".qsf"
	}
	return filepath.Join(root, "constraints", g.ModuleName+ext)
}

// Constraints renders the pin locations of the top level ports
func (g *Generator) Constraints() (string, error) {
	data := constraints{Module: g.ModuleName, Pins: g.Plan.Alloc.Locations()}
	if b := g.Plan.Board; b != nil && g.Ticker != nil {
		data.Clock = &clock_pin{
			Port:      gen.FPGAClock,
			Pin:       b.Clock.Pin,
			Standard:  b.Clock.Standard,
			Frequency: g.FPGAHz,
		}
	}
	text := xdc_tmpl
	if g.Vendor() == "altera" {
		text = qsf_tmpl
	}
	funcs := template.FuncMap{
		// clock period in ns
		"period": func(hz int) string {
			if hz <= 0 {
				return "0.000"
			}
			return fmt.Sprintf("%.3f", 1e9/float64(hz))
		},
	}
	t := template.Must(template.New("constraints").Funcs(funcs).Parse(text))
	var buffer bytes.Buffer
	if err := t.Execute(&buffer, data); err != nil {
		return "", err
	}
	return buffer.String(), nil
}

func (g *Generator) WriteConstraints(root string) bool {
	report := g.Context().Report
	text, err := g.Constraints()
	if err != nil {
		report.Fatal("%s: cannot render the constraints: %v", g.ModuleName, err)
		return false
	}
	path := g.ConstraintsPath(root)
	if err := os.MkdirAll(filepath.Dir(path), 0775); err != nil {
		report.Fatal("cannot create folder %s: %v", filepath.Dir(path), err)
		return false
	}
	if err := ioutil.WriteFile(path, []byte(text), 0644); err != nil {
		report.Fatal("cannot write %s: %v", path, err)
		return false
	}
	g.Context().Out.Add(path)
	return true
}
