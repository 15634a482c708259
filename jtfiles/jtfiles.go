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

package jtfiles

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// JTFiles lists hand written sources that go along the generated ones.
// Paths are relative to the YAML file. A .yaml entry is parsed in turn.
type JTFiles struct {
	Here []string `yaml:"here"`
}

type Args struct {
	Output   string // Output file name with no extension
	Rel      bool   // paths relative to the output folder
	SkipVHDL bool
	Format   string // qip or sim
	Extra    string // optional YAML file with more sources
}

type lister struct {
	parsed []string
	here   []string
}

func (l *lister) is_parsed(name string) bool {
	for _, k := range l.parsed {
		if name == k {
			return true
		}
	}
	return false
}

func (l *lister) parse_yaml(filename string) error {
	buf, err := ioutil.ReadFile(filename)
	if err != nil {
		return errors.Wrap(err, "cannot open file list")
	}
	l.parsed = append(l.parsed, filename)
	var aux JTFiles
	if err := yaml.Unmarshal(buf, &aux); err != nil {
		return errors.Wrapf(err, "cannot parse file %s", filename)
	}
	dir := filepath.Dir(filename)
	for _, each := range aux.Here {
		fullpath := filepath.Join(dir, strings.TrimSpace(each))
		if strings.HasSuffix(each, ".yaml") {
			if !l.is_parsed(fullpath) {
				if err := l.parse_yaml(fullpath); err != nil {
					return err
				}
			}
		} else {
			l.here = append(l.here, fullpath)
		}
	}
	return nil
}

func make_path(base, filename string, rel bool) (string, error) {
	if !rel {
		return filepath.Clean(filename), nil
	}
	item, err := filepath.Rel(base, filename)
	if err != nil {
		return "", errors.Errorf("cannot parse path to %s", filename)
	}
	return item, nil
}

// collect_files sorts the list and removes duplicates. Missing files
// are returned as warnings.
func collect_files(all []string, base string, rel bool) (uniq, missing []string, err error) {
	items := make([]string, 0, len(all))
	for _, each := range all {
		item, err := make_path(base, each, rel)
		if err != nil {
			return nil, nil, err
		}
		items = append(items, item)
		if _, err := os.Stat(each); os.IsNotExist(err) {
			missing = append(missing, each)
		}
	}
	sort.Strings(items)
	for _, each := range items {
		if len(uniq) == 0 || each != uniq[len(uniq)-1] {
			uniq = append(uniq, each)
		}
	}
	return uniq, missing, nil
}

func get_output_name(args Args) string {
	if args.Output != "" {
		return args.Output
	}
	return "files"
}

func qip_type(name string) (string, error) {
	switch filepath.Ext(name) {
	case ".sv":
		return "SYSTEMVERILOG_FILE", nil
	case ".vhd":
		return "VHDL_FILE", nil
	case ".v":
		return "VERILOG_FILE", nil
	case ".qip":
		return "QIP_FILE", nil
	case ".sdc":
		return "SDC_FILE", nil
	case ".qsf", ".xdc":
		return "", nil
	}
	return "", errors.Errorf("unsupported file extension %s in file %s", filepath.Ext(name), name)
}

func dump_qip(all []string, args Args) (string, error) {
	var b strings.Builder
	for _, each := range all {
		filetype, err := qip_type(each)
		if err != nil {
			return "", err
		}
		if filetype == "" {
			continue
		}
		aux := "set_global_assignment -name " + filetype
		if args.Rel {
			aux = aux + " [file join $::quartus(qip_path) " + filepath.ToSlash(each) + "]"
		} else {
			aux = aux + " " + each
		}
		fmt.Fprintln(&b, aux)
	}
	return b.String(), nil
}

func dump_sim(all []string, args Args) (string, error) {
	var b strings.Builder
	for _, each := range all {
		dump := true
		switch filepath.Ext(each) {
		case ".sv", ".v":
		case ".vhd":
			dump = !args.SkipVHDL
		case ".qip", ".sdc", ".qsf", ".xdc":
			dump = false
		default:
			return "", errors.Errorf("unsupported file extension %s in file %s", filepath.Ext(each), each)
		}
		if dump {
			fmt.Fprintln(&b, each)
		}
	}
	return b.String(), nil
}

// Run writes the file list of the given sources into folder dir. It
// returns the path written and the sources that do not exist.
func Run(dir string, files []string, args Args) (string, []string, error) {
	all := append([]string(nil), files...)
	if args.Extra != "" {
		var l lister
		if err := l.parse_yaml(args.Extra); err != nil {
			return "", nil, err
		}
		all = append(all, l.here...)
	}
	uniq, missing, err := collect_files(all, dir, args.Rel)
	if err != nil {
		return "", nil, err
	}
	var text, ext string
	switch args.Format {
	case "syn", "qip":
		text, err = dump_qip(uniq, args)
		ext = ".qip"
	case "sim", "f":
		text, err = dump_sim(uniq, args)
		ext = ".f"
	default:
		return "", nil, errors.Errorf("unknown file list format %q", args.Format)
	}
	if err != nil {
		return "", nil, err
	}
	fname := filepath.Join(dir, get_output_name(args)+ext)
	if err := os.MkdirAll(dir, 0775); err != nil {
		return "", nil, errors.Wrap(err, "cannot create the output folder")
	}
	if err := ioutil.WriteFile(fname, []byte(text), 0644); err != nil {
		return "", nil, errors.Wrap(err, "cannot write the file list")
	}
	return fname, missing, nil
}
