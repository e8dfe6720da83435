package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gostructural/frame2d/internal/profile"
)

var profilesFamily string

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Browse the steel section library",
	Long: `List the rolled-section catalog the analysis draws profile
properties from, ordered by mass per metre.

Examples:
  frame2d profiles
  frame2d profiles --family HEA`,
	RunE: runProfiles,
}

func init() {
	rootCmd.AddCommand(profilesCmd)
	profilesCmd.Flags().StringVarP(&profilesFamily, "family", "f", "", "restrict to one family: IPE, HEA or HEB")
}

func runProfiles(cmd *cobra.Command, args []string) error {
	families := profile.Families()
	if profilesFamily != "" {
		f, err := profile.ParseFamily(profilesFamily)
		if err != nil {
			return err
		}
		families = []profile.Family{f}
	}

	for _, f := range families {
		fmt.Println()
		fmt.Printf("%s SERIES:\n", f)
		fmt.Println("───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  Profile\tMass (kg/m)\th (mm)\tA (cm²)\tIy (cm⁴)\tWel (cm³)")
		for _, p := range profile.ByFamily(f) {
			fmt.Fprintf(w, "  %s\t%.1f\t%.0f\t%.1f\t%.0f\t%.0f\n",
				p.Name, p.Mass, p.Depth, p.Area, p.Iy, p.Wel)
		}
		w.Flush()
	}
	return nil
}
