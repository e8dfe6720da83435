package diagram

import (
	"strings"
	"testing"

	"github.com/gostructural/frame2d/internal/model"
	"github.com/gostructural/frame2d/internal/solve"
)

func memberResult() *solve.MemberResult {
	mr := &solve.MemberResult{
		Member:  model.MemberID(1),
		Profile: "IPE240",
		Length:  6,
	}
	for i := 0; i <= 10; i++ {
		x := 0.6 * float64(i)
		mr.Samples = append(mr.Samples, solve.Sample{
			X:      x,
			Shear:  15 - 5*x,
			Moment: 15*x - 2.5*x*x,
		})
	}
	return mr
}

func TestASCII(t *testing.T) {
	out := ASCII(memberResult(), Moment, 8)
	if out == "" {
		t.Fatal("empty plot")
	}
	if !strings.Contains(out, "member 1 moment (kNm)") {
		t.Errorf("caption missing from plot:\n%s", out)
	}
}

func TestSummaryBox(t *testing.T) {
	lines := []string{"Total mass: 224.0 kg", "ok"}
	out := SummaryBox("RESULTS", lines)
	if !strings.Contains(out, "RESULTS") || !strings.Contains(out, "Total mass: 224.0 kg") {
		t.Fatalf("box missing content:\n%s", out)
	}
	// top border, title, separator, one row per line, bottom border
	rows := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if want := 4 + len(lines); len(rows) != want {
		t.Fatalf("got %d rows, want %d:\n%s", len(rows), want, out)
	}
	for _, r := range rows {
		if w := len([]rune(r)); w != len([]rune(rows[0])) {
			t.Errorf("ragged box row %q", r)
		}
	}
}
