package profile

// European rolled-section catalog (hot-rolled, strong-axis properties).
// Mass kg/m, depth mm, area cm², Iy cm⁴, Wel cm³.
var catalog = []Profile{
	// IPE series
	{Name: "IPE80", Family: IPE, Mass: 6.0, Depth: 80, Area: 7.64, Iy: 80.1, Wel: 20.0},
	{Name: "IPE100", Family: IPE, Mass: 8.1, Depth: 100, Area: 10.3, Iy: 171, Wel: 34.2},
	{Name: "IPE120", Family: IPE, Mass: 10.4, Depth: 120, Area: 13.2, Iy: 318, Wel: 53.0},
	{Name: "IPE140", Family: IPE, Mass: 12.9, Depth: 140, Area: 16.4, Iy: 541, Wel: 77.3},
	{Name: "IPE160", Family: IPE, Mass: 15.8, Depth: 160, Area: 20.1, Iy: 869, Wel: 109},
	{Name: "IPE180", Family: IPE, Mass: 18.8, Depth: 180, Area: 23.9, Iy: 1317, Wel: 146},
	{Name: "IPE200", Family: IPE, Mass: 22.4, Depth: 200, Area: 28.5, Iy: 1943, Wel: 194},
	{Name: "IPE220", Family: IPE, Mass: 26.2, Depth: 220, Area: 33.4, Iy: 2772, Wel: 252},
	{Name: "IPE240", Family: IPE, Mass: 30.7, Depth: 240, Area: 39.1, Iy: 3892, Wel: 324},
	{Name: "IPE270", Family: IPE, Mass: 36.1, Depth: 270, Area: 45.9, Iy: 5790, Wel: 429},
	{Name: "IPE300", Family: IPE, Mass: 42.2, Depth: 300, Area: 53.8, Iy: 8356, Wel: 557},
	{Name: "IPE330", Family: IPE, Mass: 49.1, Depth: 330, Area: 62.6, Iy: 11770, Wel: 713},
	{Name: "IPE360", Family: IPE, Mass: 57.1, Depth: 360, Area: 72.7, Iy: 16270, Wel: 904},
	{Name: "IPE400", Family: IPE, Mass: 66.3, Depth: 400, Area: 84.5, Iy: 23130, Wel: 1156},
	{Name: "IPE450", Family: IPE, Mass: 77.6, Depth: 450, Area: 98.8, Iy: 33740, Wel: 1500},
	{Name: "IPE500", Family: IPE, Mass: 90.7, Depth: 500, Area: 116.0, Iy: 48200, Wel: 1928},
	{Name: "IPE550", Family: IPE, Mass: 106.0, Depth: 550, Area: 134.0, Iy: 67120, Wel: 2441},
	{Name: "IPE600", Family: IPE, Mass: 122.0, Depth: 600, Area: 156.0, Iy: 92080, Wel: 3069},

	// HEA series
	{Name: "HEA100", Family: HEA, Mass: 16.7, Depth: 96, Area: 21.2, Iy: 349, Wel: 72.8},
	{Name: "HEA120", Family: HEA, Mass: 19.9, Depth: 114, Area: 25.3, Iy: 606, Wel: 106},
	{Name: "HEA140", Family: HEA, Mass: 24.7, Depth: 133, Area: 31.4, Iy: 1033, Wel: 155},
	{Name: "HEA160", Family: HEA, Mass: 30.4, Depth: 152, Area: 38.8, Iy: 1673, Wel: 220},
	{Name: "HEA180", Family: HEA, Mass: 35.5, Depth: 171, Area: 45.3, Iy: 2510, Wel: 294},
	{Name: "HEA200", Family: HEA, Mass: 42.3, Depth: 190, Area: 53.8, Iy: 3692, Wel: 389},
	{Name: "HEA220", Family: HEA, Mass: 50.5, Depth: 210, Area: 64.3, Iy: 5410, Wel: 515},
	{Name: "HEA240", Family: HEA, Mass: 60.3, Depth: 230, Area: 76.8, Iy: 7763, Wel: 675},
	{Name: "HEA260", Family: HEA, Mass: 68.2, Depth: 250, Area: 86.8, Iy: 10450, Wel: 836},
	{Name: "HEA280", Family: HEA, Mass: 76.4, Depth: 270, Area: 97.3, Iy: 13670, Wel: 1013},
	{Name: "HEA300", Family: HEA, Mass: 88.3, Depth: 290, Area: 112.5, Iy: 18260, Wel: 1260},
	{Name: "HEA320", Family: HEA, Mass: 97.6, Depth: 310, Area: 124.4, Iy: 22930, Wel: 1479},
	{Name: "HEA340", Family: HEA, Mass: 105.0, Depth: 330, Area: 133.5, Iy: 27690, Wel: 1678},
	{Name: "HEA360", Family: HEA, Mass: 112.0, Depth: 350, Area: 142.8, Iy: 33090, Wel: 1891},
	{Name: "HEA400", Family: HEA, Mass: 125.0, Depth: 390, Area: 159.0, Iy: 45070, Wel: 2311},
	{Name: "HEA450", Family: HEA, Mass: 140.0, Depth: 440, Area: 178.0, Iy: 63720, Wel: 2896},
	{Name: "HEA500", Family: HEA, Mass: 155.0, Depth: 490, Area: 197.5, Iy: 86970, Wel: 3550},
	{Name: "HEA550", Family: HEA, Mass: 166.0, Depth: 540, Area: 211.8, Iy: 111900, Wel: 4146},
	{Name: "HEA600", Family: HEA, Mass: 178.0, Depth: 590, Area: 226.5, Iy: 141200, Wel: 4787},

	// HEB series
	{Name: "HEB100", Family: HEB, Mass: 20.4, Depth: 100, Area: 26.0, Iy: 450, Wel: 89.9},
	{Name: "HEB120", Family: HEB, Mass: 26.7, Depth: 120, Area: 34.0, Iy: 864, Wel: 144},
	{Name: "HEB140", Family: HEB, Mass: 33.7, Depth: 140, Area: 43.0, Iy: 1509, Wel: 216},
	{Name: "HEB160", Family: HEB, Mass: 42.6, Depth: 160, Area: 54.3, Iy: 2492, Wel: 311},
	{Name: "HEB180", Family: HEB, Mass: 51.2, Depth: 180, Area: 65.3, Iy: 3831, Wel: 426},
	{Name: "HEB200", Family: HEB, Mass: 61.3, Depth: 200, Area: 78.1, Iy: 5696, Wel: 570},
	{Name: "HEB220", Family: HEB, Mass: 71.5, Depth: 220, Area: 91.0, Iy: 8091, Wel: 736},
	{Name: "HEB240", Family: HEB, Mass: 83.2, Depth: 240, Area: 106.0, Iy: 11260, Wel: 938},
	{Name: "HEB260", Family: HEB, Mass: 93.0, Depth: 260, Area: 118.4, Iy: 14920, Wel: 1148},
	{Name: "HEB280", Family: HEB, Mass: 103.0, Depth: 280, Area: 131.4, Iy: 19270, Wel: 1376},
	{Name: "HEB300", Family: HEB, Mass: 117.0, Depth: 300, Area: 149.1, Iy: 25170, Wel: 1678},
	{Name: "HEB320", Family: HEB, Mass: 127.0, Depth: 320, Area: 161.3, Iy: 30820, Wel: 1926},
	{Name: "HEB340", Family: HEB, Mass: 134.0, Depth: 340, Area: 170.9, Iy: 36660, Wel: 2156},
	{Name: "HEB360", Family: HEB, Mass: 142.0, Depth: 360, Area: 180.6, Iy: 43190, Wel: 2400},
	{Name: "HEB400", Family: HEB, Mass: 155.0, Depth: 400, Area: 197.8, Iy: 57680, Wel: 2884},
	{Name: "HEB450", Family: HEB, Mass: 171.0, Depth: 450, Area: 218.0, Iy: 79890, Wel: 3551},
	{Name: "HEB500", Family: HEB, Mass: 187.0, Depth: 500, Area: 238.6, Iy: 107200, Wel: 4287},
	{Name: "HEB550", Family: HEB, Mass: 199.0, Depth: 550, Area: 254.1, Iy: 136700, Wel: 4971},
	{Name: "HEB600", Family: HEB, Mass: 212.0, Depth: 600, Area: 270.0, Iy: 171000, Wel: 5701},
}
