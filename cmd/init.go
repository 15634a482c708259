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
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jotego/jthdl/project"
)

var init_args struct {
	Name  string
	Lang  string
	Force bool
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Creates jthdl.toml with the default settings",
	Run: func(cmd *cobra.Command, args []string) {
		log.SetFlags(0)
		log.SetPrefix("jthdl init: ")
		path := filepath.Join(root_args.Dir, project.ConfigName)
		if _, err := os.Stat(path); err == nil && !init_args.Force {
			log.Fatalf("%s already exists. Use --force to overwrite it", path)
		}
		cfg := project.DefaultConfig()
		if init_args.Name != "" {
			cfg.Project.Name = init_args.Name
		}
		if init_args.Lang != "" {
			cfg.Project.Language = init_args.Lang
		}
		if err := cfg.Validate(); err != nil {
			log.Fatal(err)
		}
		if err := cfg.Save(path); err != nil {
			log.Fatal(err)
		}
	},
	Args: cobra.NoArgs,
}

func init() {
	rootCmd.AddCommand(initCmd)
	flag := initCmd.Flags()
	flag.StringVar(&init_args.Name, "name", "", "Project name")
	flag.StringVarP(&init_args.Lang, "lang", "l", "", "vhdl or verilog")
	flag.BoolVar(&init_args.Force, "force", false, "Overwrite an existing file")
}
