package cmd

import (
	"github.com/spf13/cobra"

	"beamscatter/app"
	"beamscatter/viewer"
)

var viewCmd = &cobra.Command{
	Use:   "view [volume file]",
	Short: "Render a volumetric intensity file written by the solver",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cutoff, _ := cmd.Flags().GetInt("cutoff")
		slice, _ := cmd.Flags().GetInt("slice")
		out, _ := cmd.Flags().GetString("out")

		a := &app.App{}
		return a.View(args[0], viewer.Options{
			Cutoff: cutoff,
			SliceZ: slice,
			Output: out,
		})
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)

	viewCmd.Flags().Int("cutoff", 30, "border cells to strip (absorbing layer and source placement)")
	viewCmd.Flags().Int("slice", -1, "z plane to render, -1 for the central plane")
	viewCmd.Flags().String("out", "intensity.html", "output HTML file")
}
