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
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/jotego/jthdl/hdl"
)

// The header has no date so that two runs give the same files
const header_tmpl = `{{ rule }}
{{ mark }} Project   : {{ .Project }}
{{ mark }} Component : {{ .Module }}
{{ mark }} Part      : {{ .Part }}
{{ mark }}
{{ mark }} Generated by jthdl. Changes will be lost.
{{ rule }}
`

type header_data struct {
	Project, Module, Part string
}

func (g *Generator) header(h *hdl.Hdl, part string) {
	mark := "--"
	if h.IsVerilog() {
		mark = "//"
	}
	funcs := template.FuncMap{
		"mark": func() string { return mark },
		"rule": func() string { return mark + strings.Repeat("=", 70) },
	}
	t := template.Must(template.New("header").Funcs(funcs).Parse(header_tmpl))
	var buffer bytes.Buffer
	project := g.ctx.Project
	if project == "" {
		project = "unnamed"
	}
	if err := t.Execute(&buffer, header_data{project, g.ModuleName, part}); err != nil {
		g.ctx.fatal("%s: %v", g.ModuleName, err)
		return
	}
	for _, line := range strings.Split(strings.TrimRight(buffer.String(), "\n"), "\n") {
		h.Line("%s", line)
	}
	h.Blank()
}

// FilePath is where a file of the module is written. VHDL modules use
// two files, the part is "entity" or "behavior". Verilog ignores it.
func (g *Generator) FilePath(root, part string) string {
	name := g.ModuleName + g.ctx.Lang.Ext()
	if g.ctx.Lang == hdl.VHDL {
		name = g.ModuleName + "_" + part + g.ctx.Lang.Ext()
	}
	return filepath.Join(root, g.ctx.Lang.Dir(), g.SubDir, name)
}

// WriteHDLFiles writes the entity, for VHDL, and then the architecture.
// The architecture is not written if the entity fails.
func (g *Generator) WriteHDLFiles(root string) bool {
	arch, empty := g.architecture()
	if empty {
		g.ctx.fatal("%s: the module body is empty", g.ModuleName)
		return false
	}
	if g.ctx.Lang == hdl.VHDL && !g.write(g.FilePath(root, "entity"), g.Entity()) {
		return false
	}
	return g.write(g.FilePath(root, "behavior"), arch)
}

func (g *Generator) write(path string, h *hdl.Hdl) bool {
	if h.Empty() {
		g.ctx.fatal("%s: nothing to write to %s", g.ModuleName, path)
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0775); err != nil {
		g.ctx.fatal("%s: cannot create folder %s: %v", g.ModuleName, filepath.Dir(path), err)
		return false
	}
	if err := ioutil.WriteFile(path, []byte(h.String()), 0644); err != nil {
		g.ctx.fatal("%s: cannot write %s: %v", g.ModuleName, path, err)
		return false
	}
	g.ctx.Out.Add(path)
	return true
}
