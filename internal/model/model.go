package model

import (
	"math"
)

// NodeID identifies a node within a model.
type NodeID int

// MemberID identifies a member within a model.
type MemberID int

// Node is a point of the structure with up to three degrees of freedom:
// translation x, translation y and rotation about z.
type Node struct {
	ID NodeID
	X  float64 // m
	Y  float64 // m
}

// Member connects two distinct nodes and carries a cross-section
// reference. A released end transfers no bending moment (hinge).
type Member struct {
	ID       MemberID
	NodeA    NodeID
	NodeB    NodeID
	Profile  string // section library identifier, e.g. "IPE240"
	Material string // steel class, e.g. "S235"
	ReleaseA bool
	ReleaseB bool
}

// SupportType names the common support configurations.
type SupportType string

const (
	Fixed  SupportType = "fixed"  // tx, ty, rz restrained
	Hinged SupportType = "hinged" // tx, ty restrained
	Roll   SupportType = "roll"   // one translation restrained
	Custom SupportType = "custom" // explicit DOF set
)

// Support restrains degrees of freedom at a node. For Roll supports the
// Direction gives the restrained translation axis ("y" when empty). For
// Custom supports the Fix* flags apply directly.
type Support struct {
	Node      NodeID
	Type      SupportType
	Direction string // "x" or "y", Roll only
	FixX      bool   // Custom only
	FixY      bool
	FixR      bool
}

// Restrained expands the support into per-DOF restraint flags.
func (s Support) Restrained() (x, y, r bool) {
	switch s.Type {
	case Fixed:
		return true, true, true
	case Hinged:
		return true, true, false
	case Roll:
		if s.Direction == "x" {
			return true, false, false
		}
		return false, true, false
	case Custom:
		return s.FixX, s.FixY, s.FixR
	}
	return false, false, false
}

// Frame selects the coordinate system a load is expressed in.
type Frame string

const (
	Global Frame = "global"
	Local  Frame = "local"
)

// PointLoad is a concentrated force/moment applied at a node, in the
// global frame. Units kN and kNm, counterclockwise moment positive.
type PointLoad struct {
	Node NodeID
	FX   float64
	FY   float64
	MZ   float64
}

// MemberPointLoad is a concentrated force/moment applied on a member at a
// parametric position (0 at node A, 1 at node B). Local frame: FX along
// the member axis, FY perpendicular (axis rotated +90°).
type MemberPointLoad struct {
	Member   MemberID
	Position float64 // 0..1
	Frame    Frame
	FX       float64
	FY       float64
	MZ       float64
}

// DistributedLoad is a linearly varying line load over a member's full
// span. Intensities are per unit member length, at node A (0) and node B
// (1). Local frame: Y is transverse, X axial.
type DistributedLoad struct {
	Member MemberID
	Frame  Frame
	QX0    float64 // kN/m at node A
	QX1    float64 // kN/m at node B
	QY0    float64
	QY1    float64
}

// Model is a validated, read-only structural system ready for assembly.
type Model struct {
	Nodes            []Node
	Members          []Member
	Supports         []Support
	PointLoads       []PointLoad
	MemberPointLoads []MemberPointLoad
	DistributedLoads []DistributedLoad

	nodeIndex   map[NodeID]int
	memberIndex map[MemberID]int
}

// NodeIndex maps a node identifier to its slice position.
func (m *Model) NodeIndex(id NodeID) (int, bool) {
	i, ok := m.nodeIndex[id]
	return i, ok
}

// MemberIndex maps a member identifier to its slice position.
func (m *Model) MemberIndex(id MemberID) (int, bool) {
	i, ok := m.memberIndex[id]
	return i, ok
}

// MemberLength returns the distance between a member's end nodes.
func (m *Model) MemberLength(mem Member) float64 {
	a := m.Nodes[m.nodeIndex[mem.NodeA]]
	b := m.Nodes[m.nodeIndex[mem.NodeB]]
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// MemberAngle returns the member orientation in radians measured
// counterclockwise from the global +x axis.
func (m *Model) MemberAngle(mem Member) float64 {
	a := m.Nodes[m.nodeIndex[mem.NodeA]]
	b := m.Nodes[m.nodeIndex[mem.NodeB]]
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// Clone returns a deep copy. The optimizer mutates member profiles on a
// clone so the caller's model stays untouched.
func (m *Model) Clone() *Model {
	c := &Model{
		Nodes:            append([]Node(nil), m.Nodes...),
		Members:          append([]Member(nil), m.Members...),
		Supports:         append([]Support(nil), m.Supports...),
		PointLoads:       append([]PointLoad(nil), m.PointLoads...),
		MemberPointLoads: append([]MemberPointLoad(nil), m.MemberPointLoads...),
		DistributedLoads: append([]DistributedLoad(nil), m.DistributedLoads...),
		nodeIndex:        make(map[NodeID]int, len(m.nodeIndex)),
		memberIndex:      make(map[MemberID]int, len(m.memberIndex)),
	}
	for k, v := range m.nodeIndex {
		c.nodeIndex[k] = v
	}
	for k, v := range m.memberIndex {
		c.memberIndex[k] = v
	}
	return c
}
