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
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/jotego/jthdl/diag"
)

var check_args struct {
	Pins bool
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Checks how the design binds to the board",
	Long: `Loads the project, binds the circuit pins to the board resources and
runs the design rules. Nothing is written.
Use --pins to dump the physical pin assignment as JSON.`,
	Run: func(cmd *cobra.Command, args []string) {
		p, report := open_project("check", nil)
		severe, err := p.Check(context.Background())
		if err != nil {
			log.Fatal(err)
		}
		if check_args.Pins {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(p.Plan.Physical()); err != nil {
				log.Fatal(err)
			}
		}
		if severe > 0 || p.Fatal() > 0 {
			os.Exit(1)
		}
		if root_args.Verbose {
			fmt.Printf("%d warnings\n", report.Count(diag.Warning))
		}
	},
	Args: cobra.NoArgs,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVar(&check_args.Pins, "pins", false, "Dump the pin assignment")
}
