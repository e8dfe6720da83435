package optimize

import (
	"fmt"

	"github.com/gostructural/frame2d/internal/model"
	"github.com/gostructural/frame2d/internal/profile"
	"github.com/gostructural/frame2d/internal/solve"
)

// Outcome is the terminal state of an optimization run. It is a result
// status the caller branches on, not an error.
type Outcome int

const (
	Converged Outcome = iota
	Infeasible
	IterationLimitReached
)

func (o Outcome) String() string {
	switch o {
	case Converged:
		return "converged"
	case Infeasible:
		return "infeasible"
	case IterationLimitReached:
		return "iteration limit reached"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// DefaultMaxIterations bounds the fixed-point loop. Changing one member's
// section perturbs the whole force distribution, so the loop can
// oscillate; it must never run unbounded.
const DefaultMaxIterations = 20

// Options configure a profile optimization run.
type Options struct {
	// Family restricts every member to one profile family. When empty
	// each member searches within the family of its current profile.
	Family profile.Family

	// MaxIterations caps the reanalysis loop (DefaultMaxIterations when
	// zero or negative).
	MaxIterations int

	Solve solve.Options
}

// Assignment records the profile chosen for one member and its final
// capacity check.
type Assignment struct {
	Member   model.MemberID
	Profile  string
	Demand   float64 // peak |M| (kNm)
	Capacity float64 // fy·Wel (kNm)
	Unity    float64 // demand / capacity
	Mass     float64 // kg over the member length
	Feasible bool
}

// Result is the outcome of an optimization run together with the final
// assignment and the analysis it is based on.
type Result struct {
	Outcome    Outcome
	Iterations int
	TotalMass  float64 // kg
	Members    []Assignment
	Analysis   *solve.Result
}

// Run searches, member by member, for the lightest profile whose elastic
// bending capacity covers the member's demand under the current global
// analysis, then reanalyses with the updated assignment and repeats until
// the assignment is stable. Fixed-point iteration with an explicit cap.
func Run(m *model.Model, opt Options) (*Result, error) {
	maxIter := opt.MaxIterations
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}

	work := m.Clone()
	res := &Result{}

	for iter := 1; iter <= maxIter; iter++ {
		analysis, err := solve.Analyze(work, opt.Solve)
		if err != nil {
			return nil, err
		}
		res.Iterations = iter
		res.Analysis = analysis

		stable := true
		infeasible := false
		res.Members = res.Members[:0]
		res.TotalMass = 0

		for i := range work.Members {
			mem := &work.Members[i]
			mr := analysis.MemberByID(mem.ID)
			demand := mr.MaxAbsMoment()

			mat, err := profile.MaterialByName(mem.Material)
			if err != nil {
				return nil, err
			}
			family := opt.Family
			if family == "" {
				cur, err := profile.Lookup(mem.Profile)
				if err != nil {
					return nil, err
				}
				family = cur.Family
			}

			chosen, ok := lightestAdequate(family, mat, demand)
			if !ok {
				// keep the heaviest section so the reported unity
				// check shows how far demand overshoots the library
				candidates := profile.ByFamily(family)
				chosen = candidates[len(candidates)-1]
				infeasible = true
			}
			if chosen.Name != mem.Profile {
				mem.Profile = chosen.Name
				stable = false
			}

			capacity := mat.AllowableMoment(chosen)
			length := work.MemberLength(*mem)
			res.Members = append(res.Members, Assignment{
				Member:   mem.ID,
				Profile:  chosen.Name,
				Demand:   demand,
				Capacity: capacity,
				Unity:    demand / capacity,
				Mass:     chosen.Mass * length,
				Feasible: ok,
			})
			res.TotalMass += chosen.Mass * length
		}

		if stable {
			if infeasible {
				res.Outcome = Infeasible
			} else {
				res.Outcome = Converged
			}
			return res, nil
		}
	}

	res.Outcome = IterationLimitReached
	return res, nil
}

func lightestAdequate(f profile.Family, mat profile.Material, demand float64) (profile.Profile, bool) {
	for _, p := range profile.ByFamily(f) {
		if mat.AllowableMoment(p) >= demand {
			return p, true
		}
	}
	return profile.Profile{}, false
}
