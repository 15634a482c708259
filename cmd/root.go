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
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/jotego/jthdl/diag"
	"github.com/jotego/jthdl/project"
)

var root_args struct {
	Dir     string
	Verbose bool
}

var rootCmd = &cobra.Command{
	Use:   "jthdl",
	Short: "HDL generator for Logisim style circuits",
	Long: `jthdl turns a circuit netlist into VHDL or Verilog files ready for an FPGA.
The project is described in jthdl.toml: the design netlist, the board
and how the circuit pins bind to the board resources.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flag := rootCmd.PersistentFlags()
	flag.StringVarP(&root_args.Dir, "dir", "C", ".", "Project folder")
	flag.BoolVarP(&root_args.Verbose, "verbose", "v", false, "Show informative messages")
}

// open_project loads the configuration and the files it refers to. The
// command name goes in front of every message.
func open_project(name string, update func(*project.Config)) (*project.Project, *diag.Log) {
	log.SetFlags(0)
	log.SetPrefix("jthdl " + name + ": ")
	cfg, err := project.Load(root_args.Dir)
	if err != nil {
		log.Fatal(err)
	}
	if update != nil {
		update(cfg)
		if err := cfg.Validate(); err != nil {
			log.Fatal(err)
		}
	}
	report := diag.NewLog("jthdl "+name+": ", root_args.Verbose || cfg.Project.Verbose)
	p, err := project.Open(cfg, report)
	if err != nil {
		log.Fatal(err)
	}
	return p, report
}
