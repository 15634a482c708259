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

// Package drc runs the design rule checks over the pin binding plan. The
// rules are written in rego and evaluated with OPA.
package drc

import (
	"context"
	_ "embed"
	"encoding/json"
	"sort"

	"github.com/open-policy-agent/opa/rego"
	"github.com/pkg/errors"

	"github.com/jotego/jthdl/diag"
	"github.com/jotego/jthdl/pins"
)

//go:embed drc.rego
var policy string

const query = "data.jthdl.drc.violations"

type Violation struct {
	Rule     string `json:"rule"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

type source struct {
	Name  string `json:"name"`
	Dir   string `json:"dir"`
	Width int    `json:"width"`
	Open  int    `json:"open"`
}

type input struct {
	Bits      []pins.PhysicalBit `json:"bits"`
	Resources []string           `json:"resources"`
	Sources   []source           `json:"sources"`
}

type Checker struct {
	query rego.PreparedEvalQuery
}

func New(ctx context.Context) (*Checker, error) {
	q, err := rego.New(
		rego.Module("drc.rego", policy),
		rego.Query(query),
	).PrepareForEval(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "preparing the design rules")
	}
	return &Checker{query: q}, nil
}

func make_input(plan *pins.Plan) (map[string]interface{}, error) {
	in := input{Bits: plan.Physical()}
	if plan.Board != nil {
		for _, r := range plan.Board.Resources {
			in.Resources = append(in.Resources, r.Name)
		}
	}
	for _, e := range plan.Entries {
		s := source{Name: e.Source.Name, Dir: e.Source.Dir.String(), Width: e.Source.Width}
		for _, d := range e.Dests {
			if d.Kind == pins.Open {
				s.Open++
			}
		}
		in.Sources = append(in.Sources, s)
	}
	// OPA wants plain maps and slices
	buf, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	err = json.Unmarshal(buf, &m)
	return m, err
}

// Check evaluates the rules. Violations are sorted by rule and message.
func (c *Checker) Check(ctx context.Context, plan *pins.Plan) ([]Violation, error) {
	in, err := make_input(plan)
	if err != nil {
		return nil, errors.Wrap(err, "converting the binding plan")
	}
	rs, err := c.query.Eval(ctx, rego.EvalInput(in))
	if err != nil {
		return nil, errors.Wrap(err, "evaluating the design rules")
	}
	var all []Violation
	if len(rs) > 0 && len(rs[0].Expressions) > 0 {
		list, _ := rs[0].Expressions[0].Value.([]interface{})
		for _, each := range list {
			m, ok := each.(map[string]interface{})
			if !ok {
				continue
			}
			v := Violation{}
			v.Rule, _ = m["rule"].(string)
			v.Severity, _ = m["severity"].(string)
			v.Message, _ = m["message"].(string)
			all = append(all, v)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Rule != all[j].Rule {
			return all[i].Rule < all[j].Rule
		}
		return all[i].Message < all[j].Message
	})
	return all, nil
}

// Report forwards the violations to r
func Report(all []Violation, r diag.Reporter) {
	for _, v := range all {
		switch v.Severity {
		case "severe":
			r.Severe("%s", v.Message)
		case "warning":
			r.Warn("%s", v.Message)
		default:
			r.Info("%s", v.Message)
		}
	}
}

// Run checks the plan and reports what it finds. It returns the number
// of severe violations.
func Run(ctx context.Context, plan *pins.Plan, r diag.Reporter) (int, error) {
	c, err := New(ctx)
	if err != nil {
		return 0, err
	}
	all, err := c.Check(ctx, plan)
	if err != nil {
		return 0, err
	}
	Report(all, r)
	severe := 0
	for _, v := range all {
		if v.Severity == "severe" {
			severe++
		}
	}
	return severe, nil
}
