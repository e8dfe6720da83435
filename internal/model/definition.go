package model

// Definition is the serializable description of a structure as supplied
// by the hosting application (YAML or JSON). Build validates it into a
// Model.
type Definition struct {
	// Defaults applied to members that leave Profile/Material empty.
	Profile  string `yaml:"profile" json:"profile"`
	Material string `yaml:"material" json:"material"`

	// IncludeWeight asks the analysis to add each member's self-weight
	// as a distributed load in global -Y.
	IncludeWeight bool `yaml:"include_weight" json:"include_weight"`

	// AllowParallel permits more than one member between the same node
	// pair.
	AllowParallel bool `yaml:"allow_parallel" json:"allow_parallel"`

	Nodes            []NodeDef            `yaml:"nodes" json:"nodes"`
	Members          []MemberDef          `yaml:"members" json:"members"`
	Supports         []SupportDef         `yaml:"supports" json:"supports"`
	PointLoads       []PointLoadDef       `yaml:"point_loads" json:"point_loads"`
	MemberLoads      []MemberLoadDef      `yaml:"member_loads" json:"member_loads"`
	DistributedLoads []DistributedLoadDef `yaml:"distributed_loads" json:"distributed_loads"`
}

type NodeDef struct {
	ID int     `yaml:"id" json:"id"`
	X  float64 `yaml:"x" json:"x"`
	Y  float64 `yaml:"y" json:"y"`
}

type MemberDef struct {
	ID       int    `yaml:"id" json:"id"`
	NodeA    int    `yaml:"node_a" json:"node_a"`
	NodeB    int    `yaml:"node_b" json:"node_b"`
	Profile  string `yaml:"profile,omitempty" json:"profile,omitempty"`
	Material string `yaml:"material,omitempty" json:"material,omitempty"`
	ReleaseA bool   `yaml:"release_a,omitempty" json:"release_a,omitempty"`
	ReleaseB bool   `yaml:"release_b,omitempty" json:"release_b,omitempty"`
}

type SupportDef struct {
	Node      int    `yaml:"node" json:"node"`
	Type      string `yaml:"type" json:"type"` // fixed, hinged, roll, custom
	Direction string `yaml:"direction,omitempty" json:"direction,omitempty"`
	FixX      bool   `yaml:"fix_x,omitempty" json:"fix_x,omitempty"`
	FixY      bool   `yaml:"fix_y,omitempty" json:"fix_y,omitempty"`
	FixR      bool   `yaml:"fix_r,omitempty" json:"fix_r,omitempty"`
}

type PointLoadDef struct {
	Node int     `yaml:"node" json:"node"`
	FX   float64 `yaml:"fx" json:"fx"`
	FY   float64 `yaml:"fy" json:"fy"`
	MZ   float64 `yaml:"mz" json:"mz"`
}

type MemberLoadDef struct {
	Member   int     `yaml:"member" json:"member"`
	Position float64 `yaml:"position" json:"position"` // 0..1 from node A
	Frame    string  `yaml:"frame,omitempty" json:"frame,omitempty"`
	FX       float64 `yaml:"fx" json:"fx"`
	FY       float64 `yaml:"fy" json:"fy"`
	MZ       float64 `yaml:"mz" json:"mz"`
}

type DistributedLoadDef struct {
	Member int     `yaml:"member" json:"member"`
	Frame  string  `yaml:"frame,omitempty" json:"frame,omitempty"`
	QX0    float64 `yaml:"qx0" json:"qx0"`
	QX1    float64 `yaml:"qx1" json:"qx1"`
	QY0    float64 `yaml:"qy0" json:"qy0"`
	QY1    float64 `yaml:"qy1" json:"qy1"`

	// Q is shorthand for a uniform transverse load (sets QY0 = QY1 = Q).
	Q float64 `yaml:"q,omitempty" json:"q,omitempty"`
}
