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

package project

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	toml "github.com/komkom/toml"
	"github.com/pkg/errors"

	"github.com/jotego/jthdl/hdl"
)

// ConfigName is looked for in the project folder
const ConfigName = "jthdl.toml"

type Config struct {
	Project ProjectCfg `json:"project"`
	Files   FilesCfg   `json:"files"`
	Clock   ClockCfg   `json:"clock"`

	dir string // relative paths start here
}

type ProjectCfg struct {
	Name     string `json:"name"`
	Language string `json:"language"`
	Output   string `json:"output"`
	Top      string `json:"top"`
	Vendor   string `json:"vendor"` // overrides the board
	Tristate bool   `json:"tristate"`
	Verbose  bool   `json:"verbose"`
}

type FilesCfg struct {
	Design   string `json:"design"`
	Board    string `json:"board"`
	Bindings string `json:"bindings"`
	Extra    string `json:"extra"` // hand written sources, see jtfiles
}

type ClockCfg struct {
	FPGAHz int `json:"fpga_hz"` // zero takes the board frequency
	TickHz int `json:"tick_hz"`
}

func DefaultConfig() *Config {
	return &Config{
		Project: ProjectCfg{
			Name:     "unnamed",
			Language: "vhdl",
			Output:   "hdl",
		},
		Files: FilesCfg{
			Design:   "design.yaml",
			Board:    "board.yaml",
			Bindings: "bindings.yaml",
		},
		dir: ".",
	}
}

// Load reads the configuration in folder dir, or gives the defaults when
// there is none
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, ConfigName)
	if _, err := os.Stat(path); err != nil {
		cfg := DefaultConfig()
		cfg.dir = dir
		return cfg, nil
	}
	return LoadFile(path)
}

func LoadFile(path string) (*Config, error) {
	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}
	var cfg Config
	dec := json.NewDecoder(toml.New(bytes.NewReader(buf)))
	if err := dec.Decode(&cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	cfg.dir = filepath.Dir(path)
	if err := cfg.applyDefaults(); err != nil {
		return nil, errors.Wrap(err, path)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() error {
	def := DefaultConfig()
	if c.Project.Name == "" {
		c.Project.Name = def.Project.Name
	}
	if c.Project.Language == "" {
		c.Project.Language = def.Project.Language
	}
	if _, err := hdl.ParseLang(c.Project.Language); err != nil {
		return err
	}
	if c.Project.Output == "" {
		c.Project.Output = def.Project.Output
	}
	switch strings.ToLower(c.Project.Vendor) {
	case "", "xilinx", "altera":
	default:
		return errors.Errorf("unknown vendor %q", c.Project.Vendor)
	}
	if c.Files.Design == "" {
		c.Files.Design = def.Files.Design
	}
	if c.Clock.FPGAHz < 0 || c.Clock.TickHz < 0 {
		return errors.New("negative clock frequency")
	}
	return nil
}

// Validate fills in the missing settings and rejects the wrong ones.
// Call it again after changing the configuration.
func (c *Config) Validate() error { return c.applyDefaults() }

// Lang is only valid after Validate
func (c *Config) Lang() hdl.Lang {
	l, _ := hdl.ParseLang(c.Project.Language)
	return l
}

// Path resolves a file name of the configuration. Empty names stay
// empty.
func (c *Config) Path(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.dir, name)
}

const config_tmpl = `# jthdl project
[project]
name = "{{ .Project.Name }}"
language = "{{ .Project.Language }}"
output = "{{ .Project.Output }}"
{{- if .Project.Top }}
top = "{{ .Project.Top }}"
{{- end }}
{{- if .Project.Vendor }}
vendor = "{{ .Project.Vendor }}"
{{- end }}
tristate = {{ .Project.Tristate }}
verbose = {{ .Project.Verbose }}

[files]
design = "{{ .Files.Design }}"
board = "{{ .Files.Board }}"
bindings = "{{ .Files.Bindings }}"
{{- if .Files.Extra }}
extra = "{{ .Files.Extra }}"
{{- end }}

[clock]
fpga_hz = {{ .Clock.FPGAHz }}
tick_hz = {{ .Clock.TickHz }}
`

// Save writes the configuration as TOML
func (c *Config) Save(path string) error {
	t := template.Must(template.New("config").Parse(config_tmpl))
	var buffer bytes.Buffer
	if err := t.Execute(&buffer, c); err != nil {
		return errors.Wrap(err, "rendering the configuration")
	}
	if err := ioutil.WriteFile(path, buffer.Bytes(), 0644); err != nil {
		return errors.Wrap(err, "saving the configuration")
	}
	return nil
}
