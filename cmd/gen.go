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

package cmd

import (
	"context"
	"log"

	"github.com/spf13/cobra"

	"github.com/jotego/jthdl/diag"
	"github.com/jotego/jthdl/project"
)

var gen_args struct {
	Lang     string
	Output   string
	Tristate bool
	NoDRC    bool
	NoLists  bool
}

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generates the HDL files of the project",
	Long: `Writes one module per circuit, the tick generator, the clock bank,
the top level and the pin constraints into the output folder.
The design rules are checked first. A severe violation stops the generation.
File lists for Quartus (.qip) and simulators (.f) are written at the end.`,
	Run:  run_gen,
	Args: cobra.NoArgs,
}

func init() {
	rootCmd.AddCommand(genCmd)
	flag := genCmd.Flags()

	flag.StringVarP(&gen_args.Lang, "lang", "l", "", "vhdl or verilog. Overrides jthdl.toml")
	flag.StringVarP(&gen_args.Output, "output", "o", "", "Output folder. Overrides jthdl.toml")
	flag.BoolVar(&gen_args.Tristate, "tristate", false, "Tristate buffers on inout pins")
	flag.BoolVar(&gen_args.NoDRC, "nodrc", false, "Skip the design rule check")
	flag.BoolVar(&gen_args.NoLists, "nolists", false, "Do not write the file lists")
}

func run_gen(cmd *cobra.Command, args []string) {
	p, report := open_project("gen", func(cfg *project.Config) {
		if gen_args.Lang != "" {
			cfg.Project.Language = gen_args.Lang
		}
		if gen_args.Output != "" {
			cfg.Project.Output = gen_args.Output
		}
		if gen_args.Tristate {
			cfg.Project.Tristate = true
		}
	})
	if report.Count(diag.Fatal) > 0 {
		log.Fatal("cannot bind the design to the board")
	}
	if !gen_args.NoDRC {
		severe, err := p.Check(context.Background())
		if err != nil {
			log.Fatal(err)
		}
		if severe > 0 {
			log.Fatalf("%d design rule violations", severe)
		}
	}
	root := p.Root()
	if !p.WriteAll(root) {
		log.Fatal("generation failed")
	}
	if gen_args.NoLists {
		return
	}
	if _, err := p.WriteFileLists(root); err != nil {
		log.Fatal(err)
	}
}
