package model

import (
	"math"

	"github.com/gostructural/frame2d/internal/profile"
)

// Build validates the definition and produces an immutable Model. All
// referential and numeric checks run here so the assembler and solver can
// assume a consistent structure.
func (d Definition) Build() (*Model, error) {
	m := &Model{
		nodeIndex:   make(map[NodeID]int, len(d.Nodes)),
		memberIndex: make(map[MemberID]int, len(d.Members)),
	}

	if len(d.Nodes) < 2 {
		return nil, errf(InvalidInput, "a structure needs at least 2 nodes, got %d", len(d.Nodes))
	}
	if len(d.Members) == 0 {
		return nil, errf(InvalidInput, "a structure needs at least 1 member")
	}

	for _, nd := range d.Nodes {
		if !isFinite(nd.X) || !isFinite(nd.Y) {
			return nil, errf(NonFinite, "node %d has non-finite coordinates (%v, %v)", nd.ID, nd.X, nd.Y)
		}
		id := NodeID(nd.ID)
		if _, dup := m.nodeIndex[id]; dup {
			return nil, errf(DuplicateID, "node id %d defined twice", nd.ID)
		}
		m.nodeIndex[id] = len(m.Nodes)
		m.Nodes = append(m.Nodes, Node{ID: id, X: nd.X, Y: nd.Y})
	}

	type pair struct{ a, b NodeID }
	seen := make(map[pair]bool, len(d.Members))
	for _, md := range d.Members {
		id := MemberID(md.ID)
		if _, dup := m.memberIndex[id]; dup {
			return nil, errf(DuplicateID, "member id %d defined twice", md.ID)
		}
		a, b := NodeID(md.NodeA), NodeID(md.NodeB)
		ia, ok := m.nodeIndex[a]
		if !ok {
			return nil, errf(UnknownReference, "member %d references unknown node %d", md.ID, md.NodeA)
		}
		ib, ok := m.nodeIndex[b]
		if !ok {
			return nil, errf(UnknownReference, "member %d references unknown node %d", md.ID, md.NodeB)
		}
		if a == b {
			return nil, errf(InvalidInput, "member %d connects node %d to itself", md.ID, md.NodeA)
		}
		na, nb := m.Nodes[ia], m.Nodes[ib]
		if math.Hypot(nb.X-na.X, nb.Y-na.Y) == 0 {
			return nil, errf(InvalidInput, "member %d has zero length (coincident nodes %d and %d)", md.ID, md.NodeA, md.NodeB)
		}
		p := pair{a, b}
		if a > b {
			p = pair{b, a}
		}
		if seen[p] && !d.AllowParallel {
			return nil, errf(DuplicateID, "members duplicated between nodes %d and %d (set allow_parallel to permit)", md.NodeA, md.NodeB)
		}
		seen[p] = true

		prof := md.Profile
		if prof == "" {
			prof = d.Profile
		}
		mat := md.Material
		if mat == "" {
			mat = d.Material
		}
		if mat == "" {
			mat = "S235"
		}
		if _, err := profile.Lookup(prof); err != nil {
			return nil, err
		}
		if _, err := profile.MaterialByName(mat); err != nil {
			return nil, errf(InvalidInput, "member %d: %v", md.ID, err)
		}

		m.memberIndex[id] = len(m.Members)
		m.Members = append(m.Members, Member{
			ID: id, NodeA: a, NodeB: b,
			Profile: prof, Material: mat,
			ReleaseA: md.ReleaseA, ReleaseB: md.ReleaseB,
		})
	}

	for _, sd := range d.Supports {
		if _, ok := m.nodeIndex[NodeID(sd.Node)]; !ok {
			return nil, errf(UnknownReference, "support references unknown node %d", sd.Node)
		}
		st := SupportType(sd.Type)
		switch st {
		case Fixed, Hinged, Roll, Custom:
		default:
			return nil, errf(InvalidInput, "support at node %d has unknown type %q", sd.Node, sd.Type)
		}
		if st == Roll && sd.Direction != "" && sd.Direction != "x" && sd.Direction != "y" {
			return nil, errf(InvalidInput, "roll support at node %d has invalid direction %q", sd.Node, sd.Direction)
		}
		m.Supports = append(m.Supports, Support{
			Node: NodeID(sd.Node), Type: st, Direction: sd.Direction,
			FixX: sd.FixX, FixY: sd.FixY, FixR: sd.FixR,
		})
	}

	for _, ld := range d.PointLoads {
		if _, ok := m.nodeIndex[NodeID(ld.Node)]; !ok {
			return nil, errf(UnknownReference, "point load references unknown node %d", ld.Node)
		}
		if !isFinite(ld.FX) || !isFinite(ld.FY) || !isFinite(ld.MZ) {
			return nil, errf(NonFinite, "point load at node %d has non-finite magnitude", ld.Node)
		}
		m.PointLoads = append(m.PointLoads, PointLoad{Node: NodeID(ld.Node), FX: ld.FX, FY: ld.FY, MZ: ld.MZ})
	}

	for _, ld := range d.MemberLoads {
		if _, ok := m.memberIndex[MemberID(ld.Member)]; !ok {
			return nil, errf(UnknownReference, "member load references unknown member %d", ld.Member)
		}
		if ld.Position < 0 || ld.Position > 1 {
			return nil, errf(InvalidInput, "member load on member %d has position %v outside [0,1]", ld.Member, ld.Position)
		}
		if !isFinite(ld.FX) || !isFinite(ld.FY) || !isFinite(ld.MZ) {
			return nil, errf(NonFinite, "member load on member %d has non-finite magnitude", ld.Member)
		}
		frame, err := parseFrame(ld.Frame, ld.Member)
		if err != nil {
			return nil, err
		}
		m.MemberPointLoads = append(m.MemberPointLoads, MemberPointLoad{
			Member: MemberID(ld.Member), Position: ld.Position, Frame: frame,
			FX: ld.FX, FY: ld.FY, MZ: ld.MZ,
		})
	}

	for _, ld := range d.DistributedLoads {
		if _, ok := m.memberIndex[MemberID(ld.Member)]; !ok {
			return nil, errf(UnknownReference, "distributed load references unknown member %d", ld.Member)
		}
		qx0, qx1, qy0, qy1 := ld.QX0, ld.QX1, ld.QY0, ld.QY1
		if ld.Q != 0 {
			qy0, qy1 = ld.Q, ld.Q
		}
		if !isFinite(qx0) || !isFinite(qx1) || !isFinite(qy0) || !isFinite(qy1) {
			return nil, errf(NonFinite, "distributed load on member %d has non-finite intensity", ld.Member)
		}
		frame, err := parseFrame(ld.Frame, ld.Member)
		if err != nil {
			return nil, err
		}
		m.DistributedLoads = append(m.DistributedLoads, DistributedLoad{
			Member: MemberID(ld.Member), Frame: frame,
			QX0: qx0, QX1: qx1, QY0: qy0, QY1: qy1,
		})
	}

	if err := m.checkConnectivity(); err != nil {
		return nil, err
	}
	return m, nil
}

func parseFrame(s string, member int) (Frame, error) {
	switch s {
	case "", "local":
		return Local, nil
	case "global":
		return Global, nil
	}
	return "", errf(InvalidInput, "load on member %d has unknown frame %q", member, s)
}

// checkConnectivity flags nodes that cannot reach any supported node
// through members. With no supports at all the check is skipped: the
// solver reports that case as a singular system.
func (m *Model) checkConnectivity() error {
	if len(m.Supports) == 0 {
		return nil
	}

	adj := make([][]int, len(m.Nodes))
	for _, mem := range m.Members {
		ia := m.nodeIndex[mem.NodeA]
		ib := m.nodeIndex[mem.NodeB]
		adj[ia] = append(adj[ia], ib)
		adj[ib] = append(adj[ib], ia)
	}

	visited := make([]bool, len(m.Nodes))
	var queue []int
	for _, s := range m.Supports {
		i := m.nodeIndex[s.Node]
		if !visited[i] {
			visited[i] = true
			queue = append(queue, i)
		}
	}
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		for _, j := range adj[i] {
			if !visited[j] {
				visited[j] = true
				queue = append(queue, j)
			}
		}
	}
	for i, v := range visited {
		if !v {
			return errf(Disconnected, "node %d is not connected to any supported node", m.Nodes[i].ID)
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
