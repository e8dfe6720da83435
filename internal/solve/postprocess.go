package solve

import "sort"

// station is one evaluation point along a member. Point loads make the
// shear (and, for moments, the moment) discontinuous; a station with
// inclusive=false evaluates the limit from the left of X, one with
// inclusive=true the limit from the right.
type station struct {
	x         float64
	inclusive bool
}

// postprocess recovers the internal force and deflection diagrams of one
// element from its nodal displacements and its retained span loads.
func postprocess(e *element, u []float64, samples int) MemberResult {
	// local end displacements ul = T·ug
	var ug [6]float64
	for i, gi := range e.dofs() {
		ug[i] = u[gi]
	}
	var ul [6]float64
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			ul[i] += e.t.At(i, j) * ug[j]
		}
	}

	// local end forces applied to the member by its nodes:
	// fl = kl·ul - f0
	var fl [6]float64
	for i := 0; i < 6; i++ {
		var acc float64
		for j := 0; j < 6; j++ {
			acc += e.kl.At(i, j) * ul[j]
		}
		fl[i] = acc - e.f0[i]
	}

	stations := buildStations(e, samples)
	pts := append([]pointLoad(nil), e.points...)
	sort.Slice(pts, func(i, j int) bool { return pts[i].x < pts[j].x })

	mr := MemberResult{
		Member:  e.mem.ID,
		Profile: e.mem.Profile,
		Length:  e.length,
		Samples: make([]Sample, len(stations)),
	}

	for si, st := range stations {
		x := st.x
		var px, py, pm float64 // accumulated point loads left of the cut
		var pmy float64        // their moment about the cut
		for _, p := range pts {
			if p.x < x || (st.inclusive && p.x == x) {
				px += p.px
				py += p.py
				pm += p.mz
				pmy += p.py * (x - p.x)
			}
		}

		qt, qn, qmom := integrateLinear(e.linear, e.length, x)

		s := &mr.Samples[si]
		s.X = x
		s.Axial = -(fl[0] + qt + px)
		s.Shear = fl[1] + qn + py
		s.Moment = -fl[2] + fl[1]*x + qmom + pmy - pm
	}

	integrateDeflection(e, ul, &mr)
	scanExtremes(&mr)
	return mr
}

// buildStations produces a uniform grid plus a left/right pair at each
// point-load position so discontinuities appear in the output.
func buildStations(e *element, samples int) []station {
	if samples < 2 {
		samples = 2
	}
	var st []station
	for i := 0; i < samples; i++ {
		st = append(st, station{x: e.length * float64(i) / float64(samples-1), inclusive: true})
	}
	for _, p := range e.points {
		if p.x > 0 && p.x < e.length {
			st = append(st, station{x: p.x, inclusive: false}, station{x: p.x, inclusive: true})
		}
	}
	sort.SliceStable(st, func(i, j int) bool {
		if st[i].x != st[j].x {
			return st[i].x < st[j].x
		}
		return !st[i].inclusive && st[j].inclusive
	})
	// drop exact duplicates from grid points coinciding with load stations
	out := st[:0]
	for _, s := range st {
		if len(out) > 0 && out[len(out)-1].x == s.x && out[len(out)-1].inclusive == s.inclusive {
			continue
		}
		out = append(out, s)
	}
	return out
}

// integrateLinear evaluates, at distance x from node A, the resultant of
// the linearly varying span loads over [0,x]: the axial and transverse
// force integrals and the moment of the transverse part about the cut.
func integrateLinear(loads []linearLoad, l, x float64) (qt, qn, qmom float64) {
	for _, q := range loads {
		st := (q.qt1 - q.qt0) / l
		sn := (q.qn1 - q.qn0) / l
		qt += q.qt0*x + st*x*x/2
		qn += q.qn0*x + sn*x*x/2
		// ∫ q(t)·(x-t) dt over [0,x]
		qmom += q.qn0*x*x/2 + sn*x*x*x/6
	}
	return
}

// integrateDeflection computes the transverse displacement from the
// sampled moment diagram by double integration of w'' = M/EI, fitted to
// the member's local end displacements. The fit absorbs hinge rotations
// at released ends.
func integrateDeflection(e *element, ul [6]float64, mr *MemberResult) {
	n := len(mr.Samples)
	if n < 2 {
		return
	}
	theta := make([]float64, n)
	w := make([]float64, n)
	for i := 1; i < n; i++ {
		dx := mr.Samples[i].X - mr.Samples[i-1].X
		curv := (mr.Samples[i].Moment + mr.Samples[i-1].Moment) / (2 * e.ei)
		theta[i] = theta[i-1] + curv*dx
		w[i] = w[i-1] + (theta[i]+theta[i-1])/2*dx
	}
	// linear correction matching both end displacements exactly
	theta0 := (ul[4] - ul[1] - w[n-1]) / e.length
	for i := range w {
		mr.Samples[i].Deflection = ul[1] + theta0*mr.Samples[i].X + w[i]
	}
}
