package diagram

import (
	"fmt"
	"image/color"
	"math"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/gostructural/frame2d/internal/model"
	"github.com/gostructural/frame2d/internal/solve"
)

// ExportMemberDiagram writes one member diagram as a PNG file.
func ExportMemberDiagram(mr *solve.MemberResult, q Quantity, filename string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Member %d - %s", mr.Member, q)
	p.X.Label.Text = "Position (m)"
	data, unit := values(mr, q)
	p.Y.Label.Text = fmt.Sprintf("%s (%s)", q, unit)

	pts := make(plotter.XYs, len(mr.Samples))
	for i, s := range mr.Samples {
		pts[i] = plotter.XY{X: s.X, Y: data[i]}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(line, plotter.NewGrid())

	zero, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: mr.Length, Y: 0}})
	if err != nil {
		return err
	}
	zero.LineStyle.Color = color.Black
	p.Add(zero)

	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}

// ExportStructure writes the undeformed geometry with supports and node
// ids marked.
func ExportStructure(m *model.Model, filename string) error {
	p := plot.New()
	p.Title.Text = "Structure"
	p.X.Label.Text = "X (m)"
	p.Y.Label.Text = "Y (m)"

	for _, mem := range m.Members {
		ia, _ := m.NodeIndex(mem.NodeA)
		ib, _ := m.NodeIndex(mem.NodeB)
		a, b := m.Nodes[ia], m.Nodes[ib]
		line, err := plotter.NewLine(plotter.XYs{{X: a.X, Y: a.Y}, {X: b.X, Y: b.Y}})
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = color.Black
		p.Add(line)
	}

	var sup plotter.XYs
	for _, s := range m.Supports {
		i, _ := m.NodeIndex(s.Node)
		sup = append(sup, plotter.XY{X: m.Nodes[i].X, Y: m.Nodes[i].Y})
	}
	if len(sup) > 0 {
		sc, err := plotter.NewScatter(sup)
		if err != nil {
			return err
		}
		sc.GlyphStyle.Radius = vg.Points(4)
		sc.GlyphStyle.Color = color.RGBA{R: 178, A: 255}
		p.Add(sc)
	}

	// keep the aspect ratio sane for flat beams
	xmin, xmax, ymin, ymax := bounds(m)
	span := math.Max(xmax-xmin, ymax-ymin)
	if span == 0 {
		span = 1
	}
	p.X.Min, p.X.Max = xmin-0.1*span, xmax+0.1*span
	p.Y.Min, p.Y.Max = ymin-0.1*span, ymax+0.1*span

	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}

func bounds(m *model.Model) (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, n := range m.Nodes {
		xmin = math.Min(xmin, n.X)
		xmax = math.Max(xmax, n.X)
		ymin = math.Min(ymin, n.Y)
		ymax = math.Max(ymax, n.Y)
	}
	return
}

// ExportAll writes the structure plot plus shear, moment and deflection
// PNGs for every member into dir.
func ExportAll(m *model.Model, res *solve.Result, dir string) error {
	if err := ExportStructure(m, filepath.Join(dir, "structure.png")); err != nil {
		return err
	}
	for i := range res.Members {
		mr := &res.Members[i]
		for _, q := range []Quantity{Shear, Moment, Deflection} {
			name := fmt.Sprintf("member-%d-%s.png", mr.Member, q)
			if err := ExportMemberDiagram(mr, q, filepath.Join(dir, name)); err != nil {
				return err
			}
		}
	}
	return nil
}
