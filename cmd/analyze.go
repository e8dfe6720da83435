package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gostructural/frame2d/internal/diagram"
	"github.com/gostructural/frame2d/internal/model"
	"github.com/gostructural/frame2d/internal/profile"
	"github.com/gostructural/frame2d/internal/solve"
)

var (
	analyzeModelFile string
	analyzeSamples   int
	analyzeWeight    bool
	analyzePlotDir   string
	analyzeNoASCII   bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Solve a structure and print reactions, displacements and diagrams",
	Long: `Run the full analysis pipeline on a model file: assembly of the
global stiffness system, the constrained linear solve and recovery of
the internal force diagrams per member.

Example model file (YAML):

  profile: IPE240
  material: S235
  nodes:
    - {id: 1, x: 0, y: 0}
    - {id: 2, x: 5, y: 0}
    - {id: 3, x: 10, y: 0}
  members:
    - {id: 1, node_a: 1, node_b: 2}
    - {id: 2, node_a: 2, node_b: 3}
  supports:
    - {node: 1, type: hinged}
    - {node: 3, type: roll}
  point_loads:
    - {node: 2, fy: -15}

Examples:
  frame2d analyze --model beam.yaml
  frame2d analyze --model truss.json --samples 201 --plot out/`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVarP(&analyzeModelFile, "model", "m", "", "model definition file (YAML or JSON) [required]")
	analyzeCmd.Flags().IntVar(&analyzeSamples, "samples", 0, "diagram stations per member (default from config, 101)")
	analyzeCmd.Flags().BoolVar(&analyzeWeight, "weight", false, "include member self-weight")
	analyzeCmd.Flags().StringVar(&analyzePlotDir, "plot", "", "directory for PNG diagram export")
	analyzeCmd.Flags().BoolVar(&analyzeNoASCII, "no-ascii", false, "suppress terminal diagrams")
	analyzeCmd.MarkFlagRequired("model")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	def, err := loadDefinition(analyzeModelFile)
	if err != nil {
		return err
	}
	m, err := def.Build()
	if err != nil {
		return err
	}

	opt := solve.Options{
		Samples:       analyzeSamples,
		IncludeWeight: analyzeWeight || def.IncludeWeight,
	}
	if opt.Samples == 0 {
		opt.Samples = viper.GetInt("samples")
	}

	res, err := solve.Analyze(m, opt)
	if err != nil {
		return err
	}

	printReactions(res)
	printDisplacements(res)
	printMemberSummary(m, res)

	if !analyzeNoASCII {
		for i := range res.Members {
			mr := &res.Members[i]
			fmt.Println()
			fmt.Println(diagram.ASCII(mr, diagram.Moment, 10))
			fmt.Println()
			fmt.Println(diagram.ASCII(mr, diagram.Shear, 10))
		}
	}

	if analyzePlotDir != "" {
		if err := os.MkdirAll(analyzePlotDir, 0o755); err != nil {
			return err
		}
		if err := diagram.ExportAll(m, res, analyzePlotDir); err != nil {
			return err
		}
		fmt.Printf("\nPNG diagrams written to %s\n", analyzePlotDir)
	}
	return nil
}

func printReactions(res *solve.Result) {
	fmt.Println()
	fmt.Println("REACTIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Node\tRx (kN)\tRy (kN)\tMz (kNm)")
	for _, n := range res.Nodes {
		if !n.Restrained[0] && !n.Restrained[1] && !n.Restrained[2] {
			continue
		}
		fmt.Fprintf(w, "  %d\t%.3f\t%.3f\t%.3f\n", n.Node, n.RX, n.RY, n.RM)
	}
	w.Flush()
}

func printDisplacements(res *solve.Result) {
	fmt.Println()
	fmt.Println("NODAL DISPLACEMENTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Node\tux (mm)\tuy (mm)\trz (mrad)")
	for _, n := range res.Nodes {
		fmt.Fprintf(w, "  %d\t%.3f\t%.3f\t%.3f\n", n.Node, n.UX*1000, n.UY*1000, n.RZ*1000)
	}
	w.Flush()
}

func printMemberSummary(m *model.Model, res *solve.Result) {
	fmt.Println()
	fmt.Println("MEMBER EXTREMES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Member\tProfile\tN max (kN)\tV max (kN)\tM max (kNm)\tw max (mm)\tUC")
	for i := range res.Members {
		mr := &res.Members[i]
		uc := "-"
		if idx, ok := m.MemberIndex(mr.Member); ok {
			mem := m.Members[idx]
			p, errP := profile.Lookup(mem.Profile)
			mat, errM := profile.MaterialByName(mem.Material)
			if errP == nil && errM == nil {
				uc = fmt.Sprintf("%.2f", mr.MaxAbsMoment()/mat.AllowableMoment(p))
			}
		}
		fmt.Fprintf(w, "  %d\t%s\t%.3f\t%.3f\t%.3f\t%.3f\t%s\n",
			mr.Member, mr.Profile,
			mr.AxialMax.Value, mr.ShearMax.Value, mr.MaxAbsMoment(),
			mr.DeflectionMax.Value*1000, uc)
	}
	w.Flush()

	id, peak := res.ExtremeMoment()
	fmt.Println()
	fmt.Print(diagram.SummaryBox("ANALYSIS RESULT", []string{
		fmt.Sprintf("Peak bending moment %.2f kNm on member %d", peak, id),
	}))
}
