package profile

import (
	"fmt"
	"sort"
)

// Family identifies a European rolled-profile series.
type Family string

const (
	IPE Family = "IPE"
	HEA Family = "HEA"
	HEB Family = "HEB"
)

// Families returns all supported profile families.
func Families() []Family {
	return []Family{IPE, HEA, HEB}
}

// ParseFamily matches a family name, case-sensitive as catalogued.
func ParseFamily(s string) (Family, error) {
	switch Family(s) {
	case IPE, HEA, HEB:
		return Family(s), nil
	}
	return "", fmt.Errorf("unknown profile family %q (expected IPE, HEA or HEB)", s)
}

// Profile holds the catalog properties of a rolled steel section.
// Values are stored in catalog units and converted to SI by the accessors.
type Profile struct {
	Name   string  // e.g. "IPE240"
	Family Family
	Mass   float64 // kg/m
	Depth  float64 // h - section height (mm)
	Area   float64 // A - cross-sectional area (cm²)
	Iy     float64 // second moment of area, strong axis (cm⁴)
	Wel    float64 // elastic section modulus, strong axis (cm³)
}

// AreaM2 returns the cross-sectional area in m².
func (p Profile) AreaM2() float64 { return p.Area * 1e-4 }

// Inertia returns the strong-axis second moment of area in m⁴.
func (p Profile) Inertia() float64 { return p.Iy * 1e-8 }

// SectionModulus returns the strong-axis elastic section modulus in m³.
func (p Profile) SectionModulus() float64 { return p.Wel * 1e-6 }

// WeightPerMeter returns the self-weight line load in kN/m.
func (p Profile) WeightPerMeter() float64 { return p.Mass * Gravity / 1000.0 }

// Gravity is the gravitational acceleration used for self-weight (m/s²).
const Gravity = 9.81

// NotFoundError reports a profile identifier missing from the library.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("profile %q not found in section library", e.Name)
}

var byName = func() map[string]Profile {
	m := make(map[string]Profile, len(catalog))
	for _, p := range catalog {
		m[p.Name] = p
	}
	return m
}()

// Lookup resolves a profile identifier against the section library.
func Lookup(name string) (Profile, error) {
	p, ok := byName[name]
	if !ok {
		return Profile{}, &NotFoundError{Name: name}
	}
	return p, nil
}

// ByFamily returns the profiles of one family ordered by increasing mass
// per metre. The returned slice is a copy and safe to reorder.
func ByFamily(f Family) []Profile {
	var out []Profile
	for _, p := range catalog {
		if p.Family == f {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Mass < out[j].Mass })
	return out
}

// All returns every profile in the library, family order preserved.
func All() []Profile {
	out := make([]Profile, len(catalog))
	copy(out, catalog)
	return out
}
