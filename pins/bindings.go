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
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// BitBinding sends one bit of a source to a resource bit, a constant or
// nowhere
type BitBinding struct {
	To     string `yaml:"to"`
	Offset int    `yaml:"offset"`
	Const  *int   `yaml:"const"`
	Open   bool   `yaml:"open"`
}

// Binding connects a whole source, starting at bit Offset of resource
// To, or bit by bit when Bits is set
type Binding struct {
	Source     string `yaml:"source"`
	BitBinding `yaml:",inline"`
	Bits       []BitBinding `yaml:"bits"`
}

type Bindings struct {
	Bindings []Binding `yaml:"bindings"`
}

// Find returns the binding of a source, or nil
func (bb *Bindings) Find(source string) *Binding {
	if bb == nil {
		return nil
	}
	for k := range bb.Bindings {
		if bb.Bindings[k].Source == source {
			return &bb.Bindings[k]
		}
	}
	return nil
}

func LoadBindings(path string) (*Bindings, error) {
	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read bindings file")
	}
	bb, err := ParseBindings(buf)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return bb, nil
}

func ParseBindings(buf []byte) (*Bindings, error) {
	var bb Bindings
	if err := yaml.Unmarshal(buf, &bb); err != nil {
		return nil, errors.Wrap(err, "cannot parse bindings")
	}
	seen := make(map[string]bool)
	for k, each := range bb.Bindings {
		if each.Source == "" {
			return nil, errors.Errorf("binding %d has no source", k)
		}
		if seen[each.Source] {
			return nil, errors.Errorf("source %s bound twice", each.Source)
		}
		seen[each.Source] = true
		if err := each.BitBinding.check(); err != nil && len(each.Bits) == 0 {
			return nil, errors.Wrap(err, each.Source)
		}
		for j, bit := range each.Bits {
			if err := bit.check(); err != nil {
				return nil, errors.Wrapf(err, "%s bit %d", each.Source, j)
			}
		}
	}
	return &bb, nil
}

// check makes sure exactly one destination is given
func (b BitBinding) check() error {
	n := 0
	if b.To != "" {
		n++
	}
	if b.Const != nil {
		n++
	}
	if b.Open {
		n++
	}
	if n != 1 {
		return errors.New("give one of to, const or open")
	}
	if b.Offset < 0 {
		return errors.New("negative offset")
	}
	return nil
}
