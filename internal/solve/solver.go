package solve

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// SingularError reports a kinematically unstable structure: the reduced
// stiffness matrix is singular or too ill-conditioned to trust.
type SingularError struct {
	Cond float64 // condition number estimate, 0 if never factorized
}

func (e *SingularError) Error() string {
	if e.Cond == 0 {
		return "singular system: structure has no restrained degree of freedom"
	}
	return fmt.Sprintf("singular system: structure is unstable or under-supported (condition number %.3g)", e.Cond)
}

// maxCondition is the conditioning limit beyond which a solution is
// rejected instead of silently returning garbage.
const maxCondition = 1e12

// solveSystem partitions the global system into free and restrained DOF
// blocks, solves K_ff·u_f = F_f by LU factorization and recovers the
// reactions R = K_rf·u_f - F_r at the restrained DOFs.
func solveSystem(sys *system) (u, reactions []float64, err error) {
	ndof := len(sys.f)
	anyRestrained := false
	for _, r := range sys.restrained {
		if r {
			anyRestrained = true
			break
		}
	}
	if !anyRestrained {
		return nil, nil, &SingularError{}
	}

	// A free DOF with zero diagonal stiffness has no member attached to
	// it (e.g. the rotation of a node where only hinged members meet).
	// It is dropped from the solved system; loading it would spin the
	// hinge, which is a stability failure.
	var free []int
	for i, r := range sys.restrained {
		if r {
			continue
		}
		if sys.k.At(i, i) == 0 {
			if sys.f[i] != 0 {
				return nil, nil, &SingularError{Cond: math.Inf(1)}
			}
			continue
		}
		free = append(free, i)
	}

	u = make([]float64, ndof)
	if len(free) > 0 {
		kff := mat.NewDense(len(free), len(free), nil)
		ff := mat.NewVecDense(len(free), nil)
		for i, gi := range free {
			for j, gj := range free {
				kff.Set(i, j, sys.k.At(gi, gj))
			}
			ff.SetVec(i, sys.f[gi])
		}

		var lu mat.LU
		lu.Factorize(kff)
		if cond := lu.Cond(); cond > maxCondition || math.IsNaN(cond) {
			return nil, nil, &SingularError{Cond: cond}
		}
		uf := mat.NewVecDense(len(free), nil)
		if err := lu.SolveVecTo(uf, false, ff); err != nil {
			return nil, nil, &SingularError{Cond: lu.Cond()}
		}
		for i, gi := range free {
			u[gi] = uf.AtVec(i)
		}
	}

	reactions = make([]float64, ndof)
	for i, r := range sys.restrained {
		if !r {
			continue
		}
		var acc float64
		for j := 0; j < ndof; j++ {
			acc += sys.k.At(i, j) * u[j]
		}
		reactions[i] = acc - sys.f[i]
	}
	return u, reactions, nil
}
