package profile

import "fmt"

// Material holds the mechanical properties of a structural steel grade.
type Material struct {
	Name string
	E    float64 // Young's modulus (kN/m²)
	Fy   float64 // yield strength (MPa)
}

// YoungsModulusSteel is the elastic modulus of structural steel in kN/m².
const YoungsModulusSteel = 210000e3

// Standard steel classes per EN 10025. The yield strength equals the
// numeric part of the class name in MPa.
var (
	S235 = Material{Name: "S235", E: YoungsModulusSteel, Fy: 235}
	S275 = Material{Name: "S275", E: YoungsModulusSteel, Fy: 275}
	S355 = Material{Name: "S355", E: YoungsModulusSteel, Fy: 355}
)

var materials = map[string]Material{
	"S235": S235,
	"S275": S275,
	"S355": S355,
}

// MaterialByName resolves a steel class name.
func MaterialByName(name string) (Material, error) {
	m, ok := materials[name]
	if !ok {
		return Material{}, fmt.Errorf("unknown material %q (expected S235, S275 or S355)", name)
	}
	return m, nil
}

// AllowableMoment returns the elastic bending capacity fy·Wel of a profile
// in kNm. 1 MPa = 1000 kN/m².
func (m Material) AllowableMoment(p Profile) float64 {
	return m.Fy * 1000.0 * p.SectionModulus()
}
