package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"beamscatter/app"
	"beamscatter/entity/parameters"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the scattering simulation",
	Long: `Derive the beam and interface quantities from the physical inputs, build
the solver scenario and run the external solver on it. Defaults reproduce
the reference planar 45 degree case.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := runParameters(cmd)
		if err != nil {
			return err
		}

		// flag beats config file beats flag default
		a := app.New(params, viper.GetString("solver"), viper.GetString("workdir"))

		if testOutput, _ := cmd.Flags().GetBool("test-output"); testOutput {
			return a.TestOutput()
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return a.Run(ctx)
	},
}

// runParameters layers the physics flags over the defaults, with an
// optional YAML parameter file in between.
func runParameters(cmd *cobra.Command) (*parameters.Parameters, error) {
	params := parameters.Default()

	if file, _ := cmd.Flags().GetString("params"); file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read parameter file: %w", err)
		}
		if err := params.Parse(data); err != nil {
			return nil, fmt.Errorf("failed to parse parameter file: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("interface") {
		params.Interface, _ = flags.GetString("interface")
	}
	if flags.Changed("polarization") {
		params.Polarization, _ = flags.GetString("polarization")
	}
	if flags.Changed("ref-medium") {
		params.RefMedium, _ = flags.GetInt("ref-medium")
	}
	if flags.Changed("n1") {
		params.N1, _ = flags.GetFloat64("n1")
	}
	if flags.Changed("n2") {
		params.N2, _ = flags.GetFloat64("n2")
	}
	if flags.Changed("kw0") {
		params.KW0, _ = flags.GetFloat64("kw0")
	}
	if flags.Changed("krw") {
		params.KRW, _ = flags.GetFloat64("krw")
	}
	if flags.Changed("krc") {
		params.KRC, _ = flags.GetFloat64("krc")
	}
	if flags.Changed("chi") {
		params.ChiDeg, _ = flags.GetFloat64("chi")
	}
	return params, nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("interface", "planar", "interface type: planar, concave or convex")
	runCmd.Flags().String("polarization", "s", "polarization: s or p")
	runCmd.Flags().Int("ref-medium", 0, "reference medium: 0 free space, 1 incident, 2 refracted")
	runCmd.Flags().Float64("n1", 1.54, "index of refraction of the incident medium")
	runCmd.Flags().Float64("n2", 1.00, "index of refraction of the refracted medium")
	runCmd.Flags().Float64("kw0", 8, "normalized beam width (>5 is good)")
	runCmd.Flags().Float64("krw", 60, "normalized beam waist distance to interface")
	runCmd.Flags().Float64("krc", 150, "normalized radius of curvature for curved interfaces")
	runCmd.Flags().Float64("chi", 45, "incidence angle in degrees")
	runCmd.Flags().String("params", "", "YAML parameter file layered over the defaults")
	runCmd.Flags().String("solver", "fdtd-solver", "path to the external solver binary")
	runCmd.Flags().String("workdir", "out", "working directory for solver input and output")
	runCmd.Flags().Bool("test-output", false, "print probe values and exit without running the solver")

	_ = viper.BindPFlag("solver", runCmd.Flags().Lookup("solver"))
	_ = viper.BindPFlag("workdir", runCmd.Flags().Lookup("workdir"))
}
