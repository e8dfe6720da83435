package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gostructural/frame2d/internal/diagram"
	"github.com/gostructural/frame2d/internal/optimize"
	"github.com/gostructural/frame2d/internal/profile"
	"github.com/gostructural/frame2d/internal/solve"
)

var (
	optimizeModelFile string
	optimizeFamily    string
	optimizeMaxIter   int
	optimizeWeight    bool
	optimizeSamples   int
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Find the lightest adequate profile per member",
	Long: `Iteratively substitute profiles and re-solve until every member's
peak bending moment is covered by its section's elastic capacity
(fy x Wel) with minimal total mass.

The loop terminates as converged, infeasible (no profile in the family
is strong enough for a member) or at the iteration cap.

Examples:
  frame2d optimize --model beam.yaml --family IPE
  frame2d optimize --model frame.yaml --family HEB --max-iter 30 --weight`,
	RunE: runOptimize,
}

func init() {
	rootCmd.AddCommand(optimizeCmd)
	optimizeCmd.Flags().StringVarP(&optimizeModelFile, "model", "m", "", "model definition file (YAML or JSON) [required]")
	optimizeCmd.Flags().StringVarP(&optimizeFamily, "family", "f", "", "profile family: IPE, HEA or HEB (default from config)")
	optimizeCmd.Flags().IntVar(&optimizeMaxIter, "max-iter", 0, "iteration cap (default from config, 20)")
	optimizeCmd.Flags().BoolVar(&optimizeWeight, "weight", false, "include member self-weight")
	optimizeCmd.Flags().IntVar(&optimizeSamples, "samples", 0, "diagram stations per member")
	optimizeCmd.MarkFlagRequired("model")
}

func runOptimize(cmd *cobra.Command, args []string) error {
	def, err := loadDefinition(optimizeModelFile)
	if err != nil {
		return err
	}
	m, err := def.Build()
	if err != nil {
		return err
	}

	familyName := optimizeFamily
	if familyName == "" {
		familyName = viper.GetString("family")
	}
	family, err := profile.ParseFamily(familyName)
	if err != nil {
		return err
	}

	maxIter := optimizeMaxIter
	if maxIter == 0 {
		maxIter = viper.GetInt("max_iterations")
	}
	samples := optimizeSamples
	if samples == 0 {
		samples = viper.GetInt("samples")
	}

	res, err := optimize.Run(m, optimize.Options{
		Family:        family,
		MaxIterations: maxIter,
		Solve: solve.Options{
			Samples:       samples,
			IncludeWeight: optimizeWeight || def.IncludeWeight,
		},
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("PROFILE OPTIMIZATION:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Member\tProfile\tM demand (kNm)\tM allow (kNm)\tUC\tMass (kg)")
	for _, a := range res.Members {
		flag := ""
		if !a.Feasible {
			flag = " ⚠"
		}
		fmt.Fprintf(w, "  %d\t%s%s\t%.2f\t%.2f\t%.2f\t%.1f\n",
			a.Member, a.Profile, flag, a.Demand, a.Capacity, a.Unity, a.Mass)
	}
	w.Flush()

	fmt.Println()
	fmt.Print(diagram.SummaryBox("OPTIMIZATION RESULT", []string{
		fmt.Sprintf("Outcome:    %s", res.Outcome),
		fmt.Sprintf("Iterations: %d", res.Iterations),
		fmt.Sprintf("Total mass: %.1f kg", res.TotalMass),
	}))

	if res.Outcome == optimize.Infeasible {
		fmt.Println("  Some member demand exceeds every profile in the family.")
	}
	return nil
}
