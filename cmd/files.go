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
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jotego/jthdl/jtfiles"
)

var filesCmd = &cobra.Command{
	Use:   "files <sim|syn>",
	Short: "Generates the project compilation and simulation files",
	Long: `Lists every HDL file found in the output folder, plus the hand written
sources in the extra YAML file of jthdl.toml.
The first argument selects simulation (sim) or synthesis (syn). The
synthesis output consists of .qip files compatible with Intel Quartus.`,
	Run:  run_files,
	Args: cobra.ExactArgs(1),
}

var files_args jtfiles.Args

func init() {
	rootCmd.AddCommand(filesCmd)
	flag := filesCmd.Flags()

	flag.StringVar(&files_args.Output, "output", "", "Output file name with no extension. Default is the project name")
	flag.BoolVar(&files_args.Rel, "rel", true, "Output relative paths")
	flag.BoolVar(&files_args.SkipVHDL, "novhdl", false, "Skip VHDL files")
}

func run_files(cmd *cobra.Command, args []string) {
	p, report := open_project("files", nil)
	files_args.Format = args[0]
	if files_args.Output == "" {
		files_args.Output = p.Cfg.Project.Name
	}
	files_args.Extra = p.Cfg.Path(p.Cfg.Files.Extra)
	root := p.Root()
	var found []string
	for _, pattern := range []string{"*/*/*.vhd", "*/*/*.v"} {
		matches, err := filepath.Glob(filepath.Join(root, pattern))
		if err != nil {
			log.Fatal(err)
		}
		found = append(found, matches...)
	}
	if len(found) == 0 {
		log.Fatalf("no HDL files in %s. Run jthdl gen first", root)
	}
	fname, missing, err := jtfiles.Run(root, found, files_args)
	if err != nil {
		log.Fatal(err)
	}
	for _, each := range missing {
		report.Warn("file %s not found", each)
	}
	report.Info("%s written", fname)
}
