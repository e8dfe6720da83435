package solve

import (
	"gonum.org/v1/gonum/mat"

	"github.com/gostructural/frame2d/internal/model"
)

// system is the assembled global linear system K·u = F together with the
// per-DOF restraint flags derived from the supports.
type system struct {
	k          *mat.Dense
	f          []float64
	restrained []bool
	elements   []*element
}

// assemble builds the global stiffness matrix and load vector by
// superposing each element's transformed local matrix at the DOF indices
// of its end nodes.
func assemble(m *model.Model, opt Options) (*system, error) {
	ndof := 3 * len(m.Nodes)
	sys := &system{
		k:          mat.NewDense(ndof, ndof, nil),
		f:          make([]float64, ndof),
		restrained: make([]bool, ndof),
	}

	for _, mem := range m.Members {
		e, err := newElement(m, mem, opt)
		if err != nil {
			return nil, err
		}
		sys.elements = append(sys.elements, e)

		kg := e.globalStiffness()
		fg := e.globalLoads()
		dofs := e.dofs()
		for i, gi := range dofs {
			for j, gj := range dofs {
				sys.k.Set(gi, gj, sys.k.At(gi, gj)+kg.At(i, j))
			}
			sys.f[gi] += fg[i]
		}
	}

	for _, pl := range m.PointLoads {
		i, _ := m.NodeIndex(pl.Node)
		sys.f[3*i+0] += pl.FX
		sys.f[3*i+1] += pl.FY
		sys.f[3*i+2] += pl.MZ
	}

	for _, s := range m.Supports {
		i, _ := m.NodeIndex(s.Node)
		x, y, r := s.Restrained()
		sys.restrained[3*i+0] = sys.restrained[3*i+0] || x
		sys.restrained[3*i+1] = sys.restrained[3*i+1] || y
		sys.restrained[3*i+2] = sys.restrained[3*i+2] || r
	}

	return sys, nil
}
