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

// Package pins connects the logical inputs and outputs of a design to
// the physical resources of an FPGA board.
package pins

import (
	"embed"
	"encoding/json"
	"io/ioutil"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

//go:embed board.cue
var schemaFS embed.FS

type Dir int

const (
	Input Dir = iota
	Output
	InOut
)

func (d Dir) String() string {
	return [...]string{"input", "output", "inout"}[d]
}

func ParseDir(s string) (Dir, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "input", "in":
		return Input, nil
	case "output", "out":
		return Output, nil
	case "inout", "bidir":
		return InOut, nil
	}
	return Input, errors.Errorf("unknown direction %q", s)
}

type Clock struct {
	Pin       string `yaml:"pin" json:"pin"`
	Frequency int    `yaml:"frequency" json:"frequency"`
	Standard  string `yaml:"standard" json:"standard,omitempty"`
}

// Resource is a group of FPGA pins wired to the same board device.
// Pins[k] is the location of bit k.
type Resource struct {
	Name      string   `yaml:"name" json:"name"`
	Kind      string   `yaml:"kind" json:"kind,omitempty"`
	Direction string   `yaml:"direction" json:"direction"`
	Width     int      `yaml:"width" json:"width"`
	Active    *bool    `yaml:"active_high" json:"active_high,omitempty"`
	Pins      []string `yaml:"pins" json:"pins,omitempty"`
	Standard  string   `yaml:"standard" json:"standard,omitempty"`

	dir Dir
}

func (r *Resource) Dir() Dir { return r.dir }

// ActiveHigh defaults to true
func (r *Resource) ActiveHigh() bool {
	return r.Active == nil || *r.Active
}

type Board struct {
	Name      string      `yaml:"name" json:"name"`
	Vendor    string      `yaml:"vendor" json:"vendor,omitempty"`
	Clock     Clock       `yaml:"clock" json:"clock"`
	Resources []*Resource `yaml:"resources" json:"resources,omitempty"`
}

func (b *Board) Resource(name string) *Resource {
	for _, each := range b.Resources {
		if strings.EqualFold(each.Name, name) {
			return each
		}
	}
	return nil
}

func LoadBoard(path string) (*Board, error) {
	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read board file")
	}
	b, err := ParseBoard(buf)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return b, nil
}

func ParseBoard(buf []byte) (*Board, error) {
	var b Board
	if err := yaml.Unmarshal(buf, &b); err != nil {
		return nil, errors.Wrap(err, "cannot parse board")
	}
	if err := validate(&b); err != nil {
		return nil, err
	}
	names := make(map[string]bool)
	for _, r := range b.Resources {
		key := strings.ToLower(r.Name)
		if names[key] {
			return nil, errors.Errorf("resource %s defined twice", r.Name)
		}
		names[key] = true
		if len(r.Pins) != r.Width {
			return nil, errors.Errorf("resource %s is %d bits wide but lists %d pins", r.Name, r.Width, len(r.Pins))
		}
		r.dir, _ = ParseDir(r.Direction)
	}
	return &b, nil
}

// validate checks the board against the embedded schema
func validate(b *Board) error {
	ctx := cuecontext.New()
	schemaBytes, err := schemaFS.ReadFile("board.cue")
	if err != nil {
		return errors.Wrap(err, "loading board schema")
	}
	schema := ctx.CompileBytes(schemaBytes)
	if schema.Err() != nil {
		return errors.Wrap(schema.Err(), "compiling board schema")
	}
	jsonBytes, err := json.Marshal(b)
	if err != nil {
		return errors.Wrap(err, "marshaling board")
	}
	data := ctx.CompileBytes(jsonBytes)
	if data.Err() != nil {
		return errors.Wrap(data.Err(), "compiling board as CUE")
	}
	def := schema.LookupPath(cue.ParsePath("#Board"))
	if def.Err() != nil {
		return errors.Wrap(def.Err(), "looking up #Board")
	}
	if err := def.Unify(data).Validate(cue.Concrete(true)); err != nil {
		return errors.Wrap(err, "invalid board")
	}
	return nil
}
