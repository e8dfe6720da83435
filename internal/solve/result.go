package solve

import (
	"math"

	"github.com/gostructural/frame2d/internal/model"
)

// NodeResult carries the displacement and reaction of one node. Reaction
// components are zero at unrestrained DOFs.
type NodeResult struct {
	Node       model.NodeID
	UX, UY, RZ float64 // m, m, rad
	Restrained [3]bool // tx, ty, rz
	RX, RY, RM float64 // kN, kN, kNm
}

// Sample is one station of a member's internal force diagrams, at local
// position X from node A. Deflection is transverse in the local frame.
type Sample struct {
	X          float64 // m
	Axial      float64 // kN, tension positive
	Shear      float64 // kN
	Moment     float64 // kNm, sagging positive
	Deflection float64 // m
}

// Extreme identifies the position and value of a diagram extremum.
type Extreme struct {
	X     float64
	Value float64
}

// MemberResult holds sampled diagrams and their extrema for one member.
type MemberResult struct {
	Member  model.MemberID
	Profile string
	Length  float64 // m
	Angle   float64 // rad from global +x

	Samples []Sample

	MomentMax     Extreme // largest sagging moment
	MomentMin     Extreme // largest hogging moment
	ShearMax      Extreme // largest |V|
	AxialMax      Extreme // largest |N|
	DeflectionMax Extreme // largest |w|
}

// MaxAbsMoment returns the peak absolute bending moment on the member.
func (mr *MemberResult) MaxAbsMoment() float64 {
	return math.Max(math.Abs(mr.MomentMax.Value), math.Abs(mr.MomentMin.Value))
}

// Result is the outcome of one complete analysis. It is owned by the
// caller; the engine keeps no reference to it.
type Result struct {
	Nodes   []NodeResult
	Members []MemberResult
}

// MemberByID finds a member result.
func (r *Result) MemberByID(id model.MemberID) *MemberResult {
	for i := range r.Members {
		if r.Members[i].Member == id {
			return &r.Members[i]
		}
	}
	return nil
}

// ExtremeMoment returns the structure-wide peak absolute moment and the
// member it occurs on.
func (r *Result) ExtremeMoment() (model.MemberID, float64) {
	var id model.MemberID
	var peak float64
	for i := range r.Members {
		if m := r.Members[i].MaxAbsMoment(); m >= peak {
			peak = m
			id = r.Members[i].Member
		}
	}
	return id, peak
}

func scanExtremes(mr *MemberResult) {
	for _, s := range mr.Samples {
		if s.Moment > mr.MomentMax.Value {
			mr.MomentMax = Extreme{X: s.X, Value: s.Moment}
		}
		if s.Moment < mr.MomentMin.Value {
			mr.MomentMin = Extreme{X: s.X, Value: s.Moment}
		}
		if math.Abs(s.Shear) > math.Abs(mr.ShearMax.Value) {
			mr.ShearMax = Extreme{X: s.X, Value: s.Shear}
		}
		if math.Abs(s.Axial) > math.Abs(mr.AxialMax.Value) {
			mr.AxialMax = Extreme{X: s.X, Value: s.Axial}
		}
		if math.Abs(s.Deflection) > math.Abs(mr.DeflectionMax.Value) {
			mr.DeflectionMax = Extreme{X: s.X, Value: s.Deflection}
		}
	}
}
