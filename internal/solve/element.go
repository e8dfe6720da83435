package solve

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/gostructural/frame2d/internal/model"
	"github.com/gostructural/frame2d/internal/profile"
)

// linearLoad is a span load in the member's local frame with linearly
// varying intensity between the ends: qt along the axis, qn transverse.
type linearLoad struct {
	qt0, qt1 float64 // kN/m
	qn0, qn1 float64
}

// pointLoad is a concentrated local-frame load at distance x from node A.
type pointLoad struct {
	x          float64 // m
	px, py, mz float64 // kN, kN, kNm
}

// element is a 2D Euler-Bernoulli frame member prepared for assembly:
// local stiffness (with end releases condensed out), global-to-local
// transformation and the consistent nodal load vector of its span loads.
type element struct {
	mem    model.Member
	ia, ib int // node slice indices

	length float64
	cos    float64
	sin    float64

	ea float64 // axial stiffness E·A (kN)
	ei float64 // bending stiffness E·I (kN·m²)

	t  *mat.Dense // 6x6 global-to-local transformation
	kl *mat.Dense // 6x6 local stiffness, releases condensed
	f0 []float64  // local consistent nodal loads, releases condensed

	// span loads retained in local frame: the consistent nodal loads
	// alone cannot reconstruct the internal force diagrams.
	linear []linearLoad
	points []pointLoad
}

func newElement(m *model.Model, mem model.Member, opt Options) (*element, error) {
	prof, err := profile.Lookup(mem.Profile)
	if err != nil {
		return nil, err
	}
	mat0, err := profile.MaterialByName(mem.Material)
	if err != nil {
		return nil, err
	}

	ia, _ := m.NodeIndex(mem.NodeA)
	ib, _ := m.NodeIndex(mem.NodeB)
	a, b := m.Nodes[ia], m.Nodes[ib]
	l := math.Hypot(b.X-a.X, b.Y-a.Y)

	e := &element{
		mem: mem, ia: ia, ib: ib,
		length: l,
		cos:    (b.X - a.X) / l,
		sin:    (b.Y - a.Y) / l,
		ea:     mat0.E * prof.AreaM2(),
		ei:     mat0.E * prof.Inertia(),
	}
	e.t = e.transformation()

	if opt.IncludeWeight {
		w := prof.WeightPerMeter()
		e.addDistributed(model.DistributedLoad{Frame: model.Global, QY0: -w, QY1: -w})
	}
	for _, dl := range m.DistributedLoads {
		if dl.Member == mem.ID {
			e.addDistributed(dl)
		}
	}
	for _, pl := range m.MemberPointLoads {
		if pl.Member == mem.ID {
			e.addPoint(pl)
		}
	}

	e.kl, e.f0 = e.condense(e.localStiffness(), e.consistentLoads())
	return e, nil
}

// transformation builds the 6x6 global-to-local matrix from the member's
// direction cosines: ul = T · ug.
func (e *element) transformation() *mat.Dense {
	c, s := e.cos, e.sin
	t := mat.NewDense(6, 6, nil)
	for k := 0; k < 2; k++ {
		o := 3 * k
		t.Set(o+0, o+0, c)
		t.Set(o+0, o+1, s)
		t.Set(o+1, o+0, -s)
		t.Set(o+1, o+1, c)
		t.Set(o+2, o+2, 1)
	}
	return t
}

// localStiffness returns the uncondensed 6x6 local stiffness matrix
// (axial + Euler-Bernoulli bending).
func (e *element) localStiffness() *mat.Dense {
	l := e.length
	ll := l * l
	m := e.ea / l
	n := e.ei / (ll * l)

	k := mat.NewDense(6, 6, nil)
	k.Set(0, 0, m)
	k.Set(0, 3, -m)
	k.Set(3, 0, -m)
	k.Set(3, 3, m)

	k.Set(1, 1, 12*n)
	k.Set(1, 2, 6*l*n)
	k.Set(1, 4, -12*n)
	k.Set(1, 5, 6*l*n)
	k.Set(2, 1, 6*l*n)
	k.Set(2, 2, 4*ll*n)
	k.Set(2, 4, -6*l*n)
	k.Set(2, 5, 2*ll*n)
	k.Set(4, 1, -12*n)
	k.Set(4, 2, -6*l*n)
	k.Set(4, 4, 12*n)
	k.Set(4, 5, -6*l*n)
	k.Set(5, 1, 6*l*n)
	k.Set(5, 2, 2*ll*n)
	k.Set(5, 4, -6*l*n)
	k.Set(5, 5, 4*ll*n)
	return k
}

// toLocal rotates a global force pair into the member frame.
func (e *element) toLocal(fx, fy float64) (ft, fn float64) {
	return e.cos*fx + e.sin*fy, -e.sin*fx + e.cos*fy
}

func (e *element) addDistributed(dl model.DistributedLoad) {
	ll := linearLoad{qt0: dl.QX0, qt1: dl.QX1, qn0: dl.QY0, qn1: dl.QY1}
	if dl.Frame == model.Global {
		ll.qt0, ll.qn0 = e.toLocal(dl.QX0, dl.QY0)
		ll.qt1, ll.qn1 = e.toLocal(dl.QX1, dl.QY1)
	}
	e.linear = append(e.linear, ll)
}

func (e *element) addPoint(pl model.MemberPointLoad) {
	p := pointLoad{x: pl.Position * e.length, px: pl.FX, py: pl.FY, mz: pl.MZ}
	if pl.Frame == model.Global {
		p.px, p.py = e.toLocal(pl.FX, pl.FY)
	}
	e.points = append(e.points, p)
}

// consistentLoads builds the fixed-end (consistent) nodal load vector of
// all span loads in the local frame, fixed-fixed end conditions.
func (e *element) consistentLoads() []float64 {
	l := e.length
	ll := l * l
	f := make([]float64, 6)

	for _, q := range e.linear {
		f[0] += l * (2*q.qt0 + q.qt1) / 6
		f[3] += l * (q.qt0 + 2*q.qt1) / 6
		f[1] += l * (7*q.qn0 + 3*q.qn1) / 20
		f[2] += ll * (3*q.qn0 + 2*q.qn1) / 60
		f[4] += l * (3*q.qn0 + 7*q.qn1) / 20
		f[5] += -ll * (2*q.qn0 + 3*q.qn1) / 60
	}

	for _, p := range e.points {
		xi := p.x / l
		h1 := 1 - 3*xi*xi + 2*xi*xi*xi
		h2 := l * (xi - 2*xi*xi + xi*xi*xi)
		h3 := 3*xi*xi - 2*xi*xi*xi
		h4 := l * (xi*xi*xi - xi*xi)

		f[0] += p.px * (1 - xi)
		f[3] += p.px * xi
		f[1] += p.py * h1
		f[2] += p.py * h2
		f[4] += p.py * h3
		f[5] += p.py * h4

		// concentrated moment distributes through the shape derivatives
		d1 := 6 * (xi*xi - xi) / l
		d2 := 1 - 4*xi + 3*xi*xi
		d4 := 3*xi*xi - 2*xi
		f[1] += p.mz * d1
		f[2] += p.mz * d2
		f[4] += p.mz * -d1
		f[5] += p.mz * d4
	}
	return f
}

// condense applies end releases by static condensation of the rotational
// DOFs at released ends: both the stiffness and the consistent load
// vector lose their coupling to the free hinge rotation.
func (e *element) condense(k *mat.Dense, f []float64) (*mat.Dense, []float64) {
	var rel []int
	if e.mem.ReleaseA {
		rel = append(rel, 2)
	}
	if e.mem.ReleaseB {
		rel = append(rel, 5)
	}
	if len(rel) == 0 {
		return k, f
	}

	nr := len(rel)
	krr := mat.NewDense(nr, nr, nil)
	for i, ri := range rel {
		for j, rj := range rel {
			krr.Set(i, j, k.At(ri, rj))
		}
	}
	var inv mat.Dense
	if err := inv.Inverse(krr); err != nil {
		// the hinge block of a beam stiffness matrix is always invertible
		return k, f
	}

	// k_c = k - k[:,r]·inv(krr)·k[r,:] ; f_c = f - k[:,r]·inv(krr)·f[r]
	kc := mat.DenseCopyOf(k)
	fc := append([]float64(nil), f...)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			var acc float64
			for a, ra := range rel {
				for b, rb := range rel {
					acc += k.At(i, ra) * inv.At(a, b) * k.At(rb, j)
				}
			}
			kc.Set(i, j, k.At(i, j)-acc)
		}
		var acc float64
		for a, ra := range rel {
			for b, rb := range rel {
				acc += k.At(i, ra) * inv.At(a, b) * f[rb]
			}
		}
		fc[i] = f[i] - acc
	}

	// the released DOFs are fully decoupled; clear the numerical residue
	// so downstream zero-stiffness detection sees exact zeros
	for _, r := range rel {
		for i := 0; i < 6; i++ {
			kc.Set(r, i, 0)
			kc.Set(i, r, 0)
		}
		fc[r] = 0
	}
	return kc, fc
}

// globalStiffness returns Tᵀ·kl·T.
func (e *element) globalStiffness() *mat.Dense {
	var tmp, kg mat.Dense
	tmp.Mul(e.kl, e.t)
	kg.Mul(e.t.T(), &tmp)
	return &kg
}

// globalLoads returns Tᵀ·f0.
func (e *element) globalLoads() []float64 {
	out := make([]float64, 6)
	for i := 0; i < 6; i++ {
		var acc float64
		for j := 0; j < 6; j++ {
			acc += e.t.At(j, i) * e.f0[j]
		}
		out[i] = acc
	}
	return out
}

// angle returns the member orientation in radians from global +x.
func (e *element) angle() float64 {
	return math.Atan2(e.sin, e.cos)
}

// dofs returns the global DOF indices of the element's two nodes.
func (e *element) dofs() [6]int {
	return [6]int{
		3*e.ia + 0, 3*e.ia + 1, 3*e.ia + 2,
		3*e.ib + 0, 3*e.ib + 1, 3*e.ib + 2,
	}
}
