package solve

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/gostructural/frame2d/internal/model"
)

// IPE240 S235: E·I = 210000e3 kN/m² x 3892e-8 m⁴
const testEI = 210000e3 * 3892e-8

func build(t *testing.T, d model.Definition) *model.Model {
	t.Helper()
	if d.Profile == "" {
		d.Profile = "IPE240"
	}
	if d.Material == "" {
		d.Material = "S235"
	}
	m, err := d.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return m
}

func analyze(t *testing.T, m *model.Model, opt Options) *Result {
	t.Helper()
	res, err := Analyze(m, opt)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	return res
}

func approx(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v (tol %v)", name, got, want, tol)
	}
}

// Simply supported beam, central point load: M_max = P·L/4 at midspan,
// reactions P/2 each, midspan deflection P·L³/48EI.
func TestSimplySupportedPointLoad(t *testing.T) {
	const P, L = 15.0, 10.0
	m := build(t, model.Definition{
		Nodes: []model.NodeDef{
			{ID: 1, X: 0, Y: 0},
			{ID: 2, X: L / 2, Y: 0},
			{ID: 3, X: L, Y: 0},
		},
		Members: []model.MemberDef{
			{ID: 1, NodeA: 1, NodeB: 2},
			{ID: 2, NodeA: 2, NodeB: 3},
		},
		Supports: []model.SupportDef{
			{Node: 1, Type: "hinged"},
			{Node: 3, Type: "roll"},
		},
		PointLoads: []model.PointLoadDef{{Node: 2, FY: -P}},
	})
	res := analyze(t, m, Options{})

	approx(t, "Ry at node 1", res.Nodes[0].RY, P/2, 1e-9)
	approx(t, "Ry at node 3", res.Nodes[2].RY, P/2, 1e-9)

	mr := res.MemberByID(1)
	approx(t, "M_max", mr.MomentMax.Value, P*L/4, 1e-9)
	approx(t, "M_max position", mr.MomentMax.X, L/2, 1e-9)
	approx(t, "V(0)", mr.Samples[0].Shear, P/2, 1e-9)

	wantW := -P * L * L * L / (48 * testEI)
	approx(t, "midspan deflection", res.Nodes[1].UY, wantW, math.Abs(wantW)*1e-3)
}

// Same beam as a single member with the load applied on the span:
// exercises the consistent-load path and station insertion.
func TestMemberPointLoad(t *testing.T) {
	const P, L = 15.0, 10.0
	m := build(t, model.Definition{
		Nodes: []model.NodeDef{
			{ID: 1, X: 0, Y: 0},
			{ID: 2, X: L, Y: 0},
		},
		Members: []model.MemberDef{{ID: 1, NodeA: 1, NodeB: 2}},
		Supports: []model.SupportDef{
			{Node: 1, Type: "hinged"},
			{Node: 2, Type: "roll"},
		},
		MemberLoads: []model.MemberLoadDef{
			{Member: 1, Position: 0.5, FY: -P},
		},
	})
	res := analyze(t, m, Options{})

	approx(t, "Ry at node 1", res.Nodes[0].RY, P/2, 1e-9)

	mr := res.MemberByID(1)
	approx(t, "M_max", mr.MomentMax.Value, P*L/4, 1e-9)
	approx(t, "M_max position", mr.MomentMax.X, L/2, 1e-9)

	// shear jumps by P across the load point
	var left, right float64
	for i := 1; i < len(mr.Samples); i++ {
		if mr.Samples[i].X == L/2 && mr.Samples[i-1].X == L/2 {
			left, right = mr.Samples[i-1].Shear, mr.Samples[i].Shear
		}
	}
	approx(t, "shear left of load", left, P/2, 1e-9)
	approx(t, "shear right of load", right, -P/2, 1e-9)
}

// Cantilever with free-end point load: fixed-end reaction moment P·L,
// tip displacement P·L³/3EI.
func TestCantileverTipLoad(t *testing.T) {
	const P, L = 10.0, 2.0
	m := build(t, model.Definition{
		Nodes: []model.NodeDef{
			{ID: 1, X: 0, Y: 0},
			{ID: 2, X: L, Y: 0},
		},
		Members:    []model.MemberDef{{ID: 1, NodeA: 1, NodeB: 2}},
		Supports:   []model.SupportDef{{Node: 1, Type: "fixed"}},
		PointLoads: []model.PointLoadDef{{Node: 2, FY: -P}},
	})
	res := analyze(t, m, Options{})

	approx(t, "Ry", res.Nodes[0].RY, P, 1e-9)
	approx(t, "reaction moment", res.Nodes[0].RM, P*L, 1e-9)

	wantW := -P * L * L * L / (3 * testEI)
	approx(t, "tip deflection", res.Nodes[1].UY, wantW, math.Abs(wantW)*1e-9)

	mr := res.MemberByID(1)
	approx(t, "M at fixed end", mr.Samples[0].Moment, -P*L, 1e-9)
	approx(t, "M at tip", mr.Samples[len(mr.Samples)-1].Moment, 0, 1e-9)

	wantTip := -P * L * L * L / (3 * testEI)
	approx(t, "sampled tip deflection", mr.Samples[len(mr.Samples)-1].Deflection, wantTip, math.Abs(wantTip)*1e-9)
}

// Uniformly loaded simply supported beam: M_max = q·L²/8, midspan
// deflection 5qL⁴/384EI.
func TestSimplySupportedUDL(t *testing.T) {
	const Q, L = 5.0, 6.0
	m := build(t, model.Definition{
		Nodes: []model.NodeDef{
			{ID: 1, X: 0, Y: 0},
			{ID: 2, X: L, Y: 0},
		},
		Members: []model.MemberDef{{ID: 1, NodeA: 1, NodeB: 2}},
		Supports: []model.SupportDef{
			{Node: 1, Type: "hinged"},
			{Node: 2, Type: "roll"},
		},
		DistributedLoads: []model.DistributedLoadDef{{Member: 1, Q: -Q}},
	})
	res := analyze(t, m, Options{})

	approx(t, "Ry at node 1", res.Nodes[0].RY, Q*L/2, 1e-9)

	mr := res.MemberByID(1)
	approx(t, "M_max", mr.MomentMax.Value, Q*L*L/8, 1e-9)
	approx(t, "M_max position", mr.MomentMax.X, L/2, 1e-9)

	wantW := -5 * Q * L * L * L * L / (384 * testEI)
	approx(t, "midspan deflection", mr.DeflectionMax.Value, wantW, math.Abs(wantW)*1e-3)
	approx(t, "deflection position", mr.DeflectionMax.X, L/2, 1e-9)
}

// Global equilibrium on a portal frame under mixed loading: the sums of
// reactions balance the sums of applied loads, including moments about
// the origin.
func TestPortalFrameEquilibrium(t *testing.T) {
	m := build(t, model.Definition{
		Nodes: []model.NodeDef{
			{ID: 1, X: 0, Y: 0},
			{ID: 2, X: 0, Y: 3},
			{ID: 3, X: 4, Y: 3},
			{ID: 4, X: 4, Y: 0},
		},
		Members: []model.MemberDef{
			{ID: 1, NodeA: 1, NodeB: 2},
			{ID: 2, NodeA: 2, NodeB: 3},
			{ID: 3, NodeA: 3, NodeB: 4},
		},
		Supports: []model.SupportDef{
			{Node: 1, Type: "fixed"},
			{Node: 4, Type: "fixed"},
		},
		PointLoads: []model.PointLoadDef{{Node: 2, FX: 10}},
		DistributedLoads: []model.DistributedLoadDef{
			{Member: 2, Frame: "global", QY0: -5, QY1: -5},
		},
		MemberLoads: []model.MemberLoadDef{
			{Member: 2, Position: 0.3, FY: -8},
		},
	})
	res := analyze(t, m, Options{})

	// applied: Fx 10 at (0,3); q=-5 over beam y=3, x 0..4; P=-8 at (1.2,3)
	appliedX := 10.0
	appliedY := -5.0*4 - 8.0
	appliedM := -3.0*10.0 + (-5.0 * 4 * 2) + 1.2*(-8.0)

	var rx, ry, rm float64
	for i, n := range res.Nodes {
		rx += n.RX
		ry += n.RY
		rm += n.RM + m.Nodes[i].X*n.RY - m.Nodes[i].Y*n.RX
	}
	approx(t, "ΣRx", rx, -appliedX, 1e-8)
	approx(t, "ΣRy", ry, -appliedY, 1e-8)
	approx(t, "ΣM about origin", rm, -appliedM, 1e-7)
}

// An internal hinge makes a fixed-fixed beam statically determinate:
// the moment vanishes at the hinge and each half behaves as a
// cantilever carrying half the load.
func TestInternalHinge(t *testing.T) {
	const P, half = 10.0, 4.0
	m := build(t, model.Definition{
		Nodes: []model.NodeDef{
			{ID: 1, X: 0, Y: 0},
			{ID: 2, X: half, Y: 0},
			{ID: 3, X: 2 * half, Y: 0},
		},
		Members: []model.MemberDef{
			{ID: 1, NodeA: 1, NodeB: 2},
			{ID: 2, NodeA: 2, NodeB: 3, ReleaseA: true},
		},
		Supports: []model.SupportDef{
			{Node: 1, Type: "fixed"},
			{Node: 3, Type: "fixed"},
		},
		PointLoads: []model.PointLoadDef{{Node: 2, FY: -P}},
	})
	res := analyze(t, m, Options{})

	mr1 := res.MemberByID(1)
	approx(t, "M at fixed end", mr1.Samples[0].Moment, -P/2*half, 1e-9)
	approx(t, "M at hinge", mr1.Samples[len(mr1.Samples)-1].Moment, 0, 1e-9)

	wantW := -(P / 2) * half * half * half / (3 * testEI)
	approx(t, "hinge deflection", res.Nodes[1].UY, wantW, math.Abs(wantW)*1e-9)
}

// Two-bar symmetric truss: hinged bars carry pure axial force
// N = P/(2·sin 45°) in compression.
func TestTwoBarTruss(t *testing.T) {
	const P = 10.0
	m := build(t, model.Definition{
		Nodes: []model.NodeDef{
			{ID: 1, X: 0, Y: 0},
			{ID: 2, X: 4, Y: 0},
			{ID: 3, X: 2, Y: 2},
		},
		Members: []model.MemberDef{
			{ID: 1, NodeA: 1, NodeB: 3, ReleaseA: true, ReleaseB: true},
			{ID: 2, NodeA: 2, NodeB: 3, ReleaseA: true, ReleaseB: true},
		},
		Supports: []model.SupportDef{
			{Node: 1, Type: "hinged"},
			{Node: 2, Type: "hinged"},
		},
		PointLoads: []model.PointLoadDef{{Node: 3, FY: -P}},
	})
	res := analyze(t, m, Options{})

	wantN := -P / (2 * math.Sin(math.Pi/4))
	for _, id := range []model.MemberID{1, 2} {
		mr := res.MemberByID(id)
		approx(t, "axial force", mr.Samples[0].Axial, wantN, 1e-9)
		approx(t, "moment in truss bar", mr.MaxAbsMoment(), 0, 1e-9)
	}
}

// A structure with zero restrained DOFs must fail with a singularity
// error, never produce numbers.
func TestNoSupportsSingular(t *testing.T) {
	d := model.Definition{
		Nodes: []model.NodeDef{
			{ID: 1, X: 0, Y: 0},
			{ID: 2, X: 5, Y: 0},
		},
		Members: []model.MemberDef{{ID: 1, NodeA: 1, NodeB: 2}},
	}
	m := build(t, d)
	_, err := Analyze(m, Options{})
	var se *SingularError
	if !errors.As(err, &se) {
		t.Fatalf("error = %v (%T), want *SingularError", err, err)
	}
}

// Two roller supports leave a horizontal rigid-body mode: the reduced
// matrix is near-singular and must be rejected by the conditioning
// check.
func TestUnderSupportedSingular(t *testing.T) {
	m := build(t, model.Definition{
		Nodes: []model.NodeDef{
			{ID: 1, X: 0, Y: 0},
			{ID: 2, X: 5, Y: 0},
		},
		Members: []model.MemberDef{{ID: 1, NodeA: 1, NodeB: 2}},
		Supports: []model.SupportDef{
			{Node: 1, Type: "roll"},
			{Node: 2, Type: "roll"},
		},
		PointLoads: []model.PointLoadDef{{Node: 2, FY: -1}},
	})
	_, err := Analyze(m, Options{})
	var se *SingularError
	if !errors.As(err, &se) {
		t.Fatalf("error = %v (%T), want *SingularError", err, err)
	}
}

// Loading the free rotation of a hinge-only node cannot be resisted.
func TestMomentOnHingeNodeSingular(t *testing.T) {
	m := build(t, model.Definition{
		Nodes: []model.NodeDef{
			{ID: 1, X: 0, Y: 0},
			{ID: 2, X: 4, Y: 0},
		},
		Members: []model.MemberDef{
			{ID: 1, NodeA: 1, NodeB: 2, ReleaseA: true, ReleaseB: true},
		},
		Supports: []model.SupportDef{
			{Node: 1, Type: "hinged"},
			{Node: 2, Type: "roll"},
		},
		PointLoads: []model.PointLoadDef{{Node: 2, MZ: 5}},
	})
	_, err := Analyze(m, Options{})
	var se *SingularError
	if !errors.As(err, &se) {
		t.Fatalf("error = %v (%T), want *SingularError", err, err)
	}
}

// Self-weight behaves as a uniform load: reactions total w·L.
func TestSelfWeight(t *testing.T) {
	const L = 6.0
	m := build(t, model.Definition{
		Profile: "IPE100",
		Nodes: []model.NodeDef{
			{ID: 1, X: 0, Y: 0},
			{ID: 2, X: L, Y: 0},
		},
		Members: []model.MemberDef{{ID: 1, NodeA: 1, NodeB: 2}},
		Supports: []model.SupportDef{
			{Node: 1, Type: "hinged"},
			{Node: 2, Type: "roll"},
		},
	})
	res := analyze(t, m, Options{IncludeWeight: true})

	w := 8.1 * 9.81 / 1000 // IPE100 self-weight, kN/m
	approx(t, "ΣRy", res.Nodes[0].RY+res.Nodes[1].RY, w*L, 1e-9)
	mr := res.MemberByID(1)
	approx(t, "M_max", mr.MomentMax.Value, w*L*L/8, 1e-9)
}

// Re-running the same model yields identical results.
func TestDeterminism(t *testing.T) {
	m := build(t, model.Definition{
		Nodes: []model.NodeDef{
			{ID: 1, X: 0, Y: 0},
			{ID: 2, X: 3, Y: 4},
			{ID: 3, X: 8, Y: 4},
		},
		Members: []model.MemberDef{
			{ID: 1, NodeA: 1, NodeB: 2},
			{ID: 2, NodeA: 2, NodeB: 3},
		},
		Supports: []model.SupportDef{
			{Node: 1, Type: "fixed"},
			{Node: 3, Type: "hinged"},
		},
		PointLoads:       []model.PointLoadDef{{Node: 2, FX: 7, FY: -11}},
		DistributedLoads: []model.DistributedLoadDef{{Member: 2, Q: -3}},
	})
	a := analyze(t, m, Options{})
	b := analyze(t, m, Options{})
	if !reflect.DeepEqual(a, b) {
		t.Error("repeated analysis of the same model differs")
	}
}
