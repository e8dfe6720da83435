package solve

import (
	"github.com/gostructural/frame2d/internal/model"
)

// DefaultSamples is the per-member diagram resolution when the caller
// does not specify one. Odd so midspan falls on a station.
const DefaultSamples = 101

// Options tune a single analysis run.
type Options struct {
	// Samples is the number of uniform diagram stations per member.
	Samples int

	// IncludeWeight adds each member's self-weight as a distributed
	// load in global -Y.
	IncludeWeight bool
}

func (o Options) samples() int {
	if o.Samples < 2 {
		return DefaultSamples
	}
	return o.Samples
}

// Analyze runs the full pipeline on a validated model: assembly, the
// constrained linear solve and internal force recovery. The model is not
// modified; the returned result is owned by the caller.
func Analyze(m *model.Model, opt Options) (*Result, error) {
	sys, err := assemble(m, opt)
	if err != nil {
		return nil, err
	}

	u, reactions, err := solveSystem(sys)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Nodes:   make([]NodeResult, len(m.Nodes)),
		Members: make([]MemberResult, 0, len(m.Members)),
	}
	for i, n := range m.Nodes {
		res.Nodes[i] = NodeResult{
			Node: n.ID,
			UX:   u[3*i+0], UY: u[3*i+1], RZ: u[3*i+2],
			Restrained: [3]bool{sys.restrained[3*i+0], sys.restrained[3*i+1], sys.restrained[3*i+2]},
			RX:         reactions[3*i+0], RY: reactions[3*i+1], RM: reactions[3*i+2],
		}
	}
	for _, e := range sys.elements {
		mr := postprocess(e, u, opt.samples())
		mr.Angle = e.angle()
		res.Members = append(res.Members, mr)
	}
	return res, nil
}
