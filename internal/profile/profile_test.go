package profile

import (
	"errors"
	"math"
	"testing"
)

func TestLookup(t *testing.T) {
	p, err := Lookup("IPE240")
	if err != nil {
		t.Fatalf("Lookup(IPE240): %v", err)
	}
	if p.Family != IPE {
		t.Errorf("family = %s, want IPE", p.Family)
	}
	if p.Mass != 30.7 {
		t.Errorf("mass = %v kg/m, want 30.7", p.Mass)
	}
	if got, want := p.SectionModulus(), 324e-6; math.Abs(got-want) > 1e-12 {
		t.Errorf("section modulus = %v m³, want %v", got, want)
	}
	if got, want := p.Inertia(), 3892e-8; math.Abs(got-want) > 1e-12 {
		t.Errorf("inertia = %v m⁴, want %v", got, want)
	}
}

func TestLookupNotFound(t *testing.T) {
	_, err := Lookup("IPE999")
	if err == nil {
		t.Fatal("expected error for unknown profile")
	}
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("error type = %T, want *NotFoundError", err)
	}
	if nf.Name != "IPE999" {
		t.Errorf("error name = %q, want IPE999", nf.Name)
	}
}

func TestByFamilySortedByMass(t *testing.T) {
	for _, f := range Families() {
		ps := ByFamily(f)
		if len(ps) == 0 {
			t.Fatalf("family %s is empty", f)
		}
		for i := 1; i < len(ps); i++ {
			if ps[i].Mass < ps[i-1].Mass {
				t.Errorf("%s not sorted: %s (%v) after %s (%v)",
					f, ps[i].Name, ps[i].Mass, ps[i-1].Name, ps[i-1].Mass)
			}
			if ps[i].Family != f {
				t.Errorf("profile %s in wrong family listing %s", ps[i].Name, f)
			}
		}
	}
}

func TestAllowableMoment(t *testing.T) {
	p, err := Lookup("IPE240")
	if err != nil {
		t.Fatal(err)
	}
	// 235 MPa x 324 cm³ = 76.14 kNm
	if got, want := S235.AllowableMoment(p), 76.14; math.Abs(got-want) > 1e-9 {
		t.Errorf("allowable moment = %v kNm, want %v", got, want)
	}
	if S355.AllowableMoment(p) <= S235.AllowableMoment(p) {
		t.Error("S355 capacity should exceed S235")
	}
}

func TestMaterialByName(t *testing.T) {
	m, err := MaterialByName("S275")
	if err != nil {
		t.Fatal(err)
	}
	if m.Fy != 275 {
		t.Errorf("fy = %v MPa, want 275", m.Fy)
	}
	if _, err := MaterialByName("S999"); err == nil {
		t.Error("expected error for unknown material")
	}
}

func TestWeightPerMeter(t *testing.T) {
	p, _ := Lookup("IPE100")
	// 8.1 kg/m x 9.81 / 1000 kN/m
	if got, want := p.WeightPerMeter(), 8.1*9.81/1000; math.Abs(got-want) > 1e-12 {
		t.Errorf("weight = %v kN/m, want %v", got, want)
	}
}
