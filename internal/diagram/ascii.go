package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/gostructural/frame2d/internal/solve"
)

// Quantity selects which diagram of a member result to render.
type Quantity string

const (
	Shear      Quantity = "shear"
	Moment     Quantity = "moment"
	Deflection Quantity = "deflection"
	Axial      Quantity = "axial"
)

func values(mr *solve.MemberResult, q Quantity) ([]float64, string) {
	out := make([]float64, len(mr.Samples))
	var unit string
	for i, s := range mr.Samples {
		switch q {
		case Shear:
			out[i], unit = s.Shear, "kN"
		case Moment:
			out[i], unit = s.Moment, "kNm"
		case Deflection:
			out[i], unit = s.Deflection*1000, "mm"
		case Axial:
			out[i], unit = s.Axial, "kN"
		}
	}
	return out, unit
}

// ASCII renders one member diagram as a terminal plot. Position runs from
// node A (left) to node B (right).
func ASCII(mr *solve.MemberResult, q Quantity, height int) string {
	if height <= 0 {
		height = 10
	}
	data, unit := values(mr, q)
	caption := fmt.Sprintf("member %d %s (%s), L = %.2f m", mr.Member, q, unit, mr.Length)
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(64),
		asciigraph.Caption(caption),
	)
}

// SummaryBox frames a result summary the way the reports do.
func SummaryBox(title string, lines []string) string {
	width := len(title)
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}

	var sb strings.Builder
	border := strings.Repeat("═", width+4)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", width, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", width, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))
	return sb.String()
}
