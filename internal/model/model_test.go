package model

import (
	"errors"
	"math"
	"testing"
)

func beamDef() Definition {
	return Definition{
		Profile:  "IPE240",
		Material: "S235",
		Nodes: []NodeDef{
			{ID: 1, X: 0, Y: 0},
			{ID: 2, X: 5, Y: 0},
			{ID: 3, X: 10, Y: 0},
		},
		Members: []MemberDef{
			{ID: 1, NodeA: 1, NodeB: 2},
			{ID: 2, NodeA: 2, NodeB: 3},
		},
		Supports: []SupportDef{
			{Node: 1, Type: "hinged"},
			{Node: 3, Type: "roll"},
		},
		PointLoads: []PointLoadDef{
			{Node: 2, FY: -15},
		},
	}
}

func kindOf(t *testing.T, err error) ErrorKind {
	t.Helper()
	if err == nil {
		t.Fatal("expected a model error, got nil")
	}
	var me *Error
	if !errors.As(err, &me) {
		t.Fatalf("error type = %T (%v), want *model.Error", err, err)
	}
	return me.Kind
}

func TestBuildValid(t *testing.T) {
	m, err := beamDef().Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(m.Nodes) != 3 || len(m.Members) != 2 {
		t.Fatalf("got %d nodes, %d members", len(m.Nodes), len(m.Members))
	}
	if m.Members[0].Profile != "IPE240" || m.Members[0].Material != "S235" {
		t.Errorf("defaults not applied: %+v", m.Members[0])
	}
	if l := m.MemberLength(m.Members[0]); math.Abs(l-5) > 1e-12 {
		t.Errorf("member length = %v, want 5", l)
	}
}

func TestUnknownNodeReference(t *testing.T) {
	d := beamDef()
	d.Members[1].NodeB = 42
	if k := kindOf(t, mustErr(d.Build())); k != UnknownReference {
		t.Errorf("kind = %s, want %s", k, UnknownReference)
	}
}

func TestUnknownLoadTargets(t *testing.T) {
	d := beamDef()
	d.PointLoads = append(d.PointLoads, PointLoadDef{Node: 99, FY: -1})
	if k := kindOf(t, mustErr(d.Build())); k != UnknownReference {
		t.Errorf("kind = %s, want %s", k, UnknownReference)
	}

	d = beamDef()
	d.DistributedLoads = []DistributedLoadDef{{Member: 77, Q: -5}}
	if k := kindOf(t, mustErr(d.Build())); k != UnknownReference {
		t.Errorf("kind = %s, want %s", k, UnknownReference)
	}
}

func TestDuplicateNodeID(t *testing.T) {
	d := beamDef()
	d.Nodes = append(d.Nodes, NodeDef{ID: 1, X: 99, Y: 0})
	if k := kindOf(t, mustErr(d.Build())); k != DuplicateID {
		t.Errorf("kind = %s, want %s", k, DuplicateID)
	}
}

func TestParallelMembers(t *testing.T) {
	d := beamDef()
	d.Members = append(d.Members, MemberDef{ID: 3, NodeA: 2, NodeB: 1})
	if k := kindOf(t, mustErr(d.Build())); k != DuplicateID {
		t.Errorf("kind = %s, want %s", k, DuplicateID)
	}

	d.AllowParallel = true
	if _, err := d.Build(); err != nil {
		t.Errorf("allow_parallel should permit duplicates, got %v", err)
	}
}

func TestNonFiniteLoad(t *testing.T) {
	d := beamDef()
	d.PointLoads[0].FY = math.NaN()
	if k := kindOf(t, mustErr(d.Build())); k != NonFinite {
		t.Errorf("kind = %s, want %s", k, NonFinite)
	}

	d = beamDef()
	d.Nodes[1].X = math.Inf(1)
	if k := kindOf(t, mustErr(d.Build())); k != NonFinite {
		t.Errorf("kind = %s, want %s", k, NonFinite)
	}
}

func TestZeroLengthMember(t *testing.T) {
	d := beamDef()
	d.Nodes[1].X = 0 // coincides with node 1
	if k := kindOf(t, mustErr(d.Build())); k != InvalidInput {
		t.Errorf("kind = %s, want %s", k, InvalidInput)
	}
}

func TestDisconnectedStructure(t *testing.T) {
	d := beamDef()
	// island not reachable from any supported node
	d.Nodes = append(d.Nodes,
		NodeDef{ID: 10, X: 20, Y: 0},
		NodeDef{ID: 11, X: 25, Y: 0},
	)
	d.Members = append(d.Members, MemberDef{ID: 9, NodeA: 10, NodeB: 11})
	if k := kindOf(t, mustErr(d.Build())); k != Disconnected {
		t.Errorf("kind = %s, want %s", k, Disconnected)
	}
}

func TestNoSupportsBuilds(t *testing.T) {
	// zero restrained DOFs is the solver's singularity case, not a
	// model error
	d := beamDef()
	d.Supports = nil
	if _, err := d.Build(); err != nil {
		t.Errorf("Build without supports: %v", err)
	}
}

func TestUnknownProfile(t *testing.T) {
	d := beamDef()
	d.Members[0].Profile = "IPE9999"
	if _, err := d.Build(); err == nil {
		t.Error("expected lookup error for unknown profile")
	}
}

func TestMemberLoadPosition(t *testing.T) {
	d := beamDef()
	d.MemberLoads = []MemberLoadDef{{Member: 1, Position: 1.5, FY: -1}}
	if k := kindOf(t, mustErr(d.Build())); k != InvalidInput {
		t.Errorf("kind = %s, want %s", k, InvalidInput)
	}
}

func TestSupportRestraints(t *testing.T) {
	cases := []struct {
		s       Support
		x, y, r bool
	}{
		{Support{Type: Fixed}, true, true, true},
		{Support{Type: Hinged}, true, true, false},
		{Support{Type: Roll}, false, true, false},
		{Support{Type: Roll, Direction: "x"}, true, false, false},
		{Support{Type: Custom, FixY: true, FixR: true}, false, true, true},
	}
	for _, c := range cases {
		x, y, r := c.s.Restrained()
		if x != c.x || y != c.y || r != c.r {
			t.Errorf("%s/%s restrained = (%v,%v,%v), want (%v,%v,%v)",
				c.s.Type, c.s.Direction, x, y, r, c.x, c.y, c.r)
		}
	}
}

func TestMemberAngle(t *testing.T) {
	d := beamDef()
	d.Nodes[1].Y = 5
	m, err := d.Build()
	if err != nil {
		t.Fatal(err)
	}
	if a := m.MemberAngle(m.Members[0]); math.Abs(a-math.Pi/4) > 1e-12 {
		t.Errorf("angle = %v rad, want π/4", a)
	}
}

func mustErr(_ *Model, err error) error { return err }
