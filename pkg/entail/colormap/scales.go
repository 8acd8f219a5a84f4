package colormap

// stop anchors an RGB colour at a position in [0,1] of the scale.
type stop struct {
	at  float64
	rgb [3]uint8
}

// scales are keyed by lower-cased palette name.
var scales = map[string][]stop{
	"jet": {
		{0, [3]uint8{0, 0, 131}}, {0.125, [3]uint8{0, 60, 170}}, {0.375, [3]uint8{5, 255, 255}},
		{0.625, [3]uint8{255, 255, 0}}, {0.875, [3]uint8{250, 0, 0}}, {1, [3]uint8{128, 0, 0}},
	},
	"hsv": {
		{0, [3]uint8{255, 0, 0}}, {0.169, [3]uint8{253, 255, 2}}, {0.173, [3]uint8{247, 255, 2}},
		{0.337, [3]uint8{0, 252, 4}}, {0.341, [3]uint8{0, 252, 10}}, {0.506, [3]uint8{1, 249, 255}},
		{0.671, [3]uint8{2, 0, 253}}, {0.675, [3]uint8{8, 0, 253}}, {0.839, [3]uint8{255, 0, 251}},
		{0.843, [3]uint8{255, 0, 245}}, {1, [3]uint8{255, 0, 6}},
	},
	"hot": {
		{0, [3]uint8{0, 0, 0}}, {0.3, [3]uint8{230, 0, 0}}, {0.6, [3]uint8{255, 210, 0}}, {1, [3]uint8{255, 255, 255}},
	},
	"cool":   {{0, [3]uint8{0, 255, 255}}, {1, [3]uint8{255, 0, 255}}},
	"spring": {{0, [3]uint8{255, 0, 255}}, {1, [3]uint8{255, 255, 0}}},
	"summer": {{0, [3]uint8{0, 128, 102}}, {1, [3]uint8{255, 255, 102}}},
	"autumn": {{0, [3]uint8{255, 0, 0}}, {1, [3]uint8{255, 255, 0}}},
	"winter": {{0, [3]uint8{0, 0, 255}}, {1, [3]uint8{0, 255, 128}}},
	"bone": {
		{0, [3]uint8{0, 0, 0}}, {0.376, [3]uint8{84, 84, 116}}, {0.753, [3]uint8{169, 200, 200}}, {1, [3]uint8{255, 255, 255}},
	},
	"copper": {
		{0, [3]uint8{0, 0, 0}}, {0.804, [3]uint8{255, 160, 102}}, {1, [3]uint8{255, 199, 127}},
	},
	"greys": {{0, [3]uint8{0, 0, 0}}, {1, [3]uint8{255, 255, 255}}},
	"yignbu": {
		{0, [3]uint8{8, 29, 88}}, {0.125, [3]uint8{37, 52, 148}}, {0.25, [3]uint8{34, 94, 168}},
		{0.375, [3]uint8{29, 145, 192}}, {0.5, [3]uint8{65, 182, 196}}, {0.625, [3]uint8{127, 205, 187}},
		{0.75, [3]uint8{199, 233, 180}}, {0.875, [3]uint8{237, 248, 217}}, {1, [3]uint8{255, 255, 217}},
	},
	"greens": {
		{0, [3]uint8{0, 68, 27}}, {0.125, [3]uint8{0, 109, 44}}, {0.25, [3]uint8{35, 139, 69}},
		{0.375, [3]uint8{65, 171, 93}}, {0.5, [3]uint8{116, 196, 118}}, {0.625, [3]uint8{161, 217, 155}},
		{0.75, [3]uint8{199, 233, 192}}, {0.875, [3]uint8{229, 245, 224}}, {1, [3]uint8{247, 252, 245}},
	},
	"yiorrd": {
		{0, [3]uint8{128, 0, 38}}, {0.125, [3]uint8{189, 0, 38}}, {0.25, [3]uint8{227, 26, 28}},
		{0.375, [3]uint8{252, 78, 42}}, {0.5, [3]uint8{253, 141, 60}}, {0.625, [3]uint8{254, 178, 76}},
		{0.75, [3]uint8{254, 217, 118}}, {0.875, [3]uint8{255, 237, 160}}, {1, [3]uint8{255, 255, 204}},
	},
	"bluered": {{0, [3]uint8{0, 0, 255}}, {1, [3]uint8{255, 0, 0}}},
	"rdbu": {
		{0, [3]uint8{5, 10, 172}}, {0.35, [3]uint8{106, 137, 247}}, {0.5, [3]uint8{190, 190, 190}},
		{0.6, [3]uint8{220, 170, 132}}, {0.7, [3]uint8{230, 145, 90}}, {1, [3]uint8{178, 10, 28}},
	},
	"picnic": {
		{0, [3]uint8{0, 0, 255}}, {0.1, [3]uint8{51, 153, 255}}, {0.2, [3]uint8{102, 204, 255}},
		{0.3, [3]uint8{153, 204, 255}}, {0.4, [3]uint8{204, 204, 255}}, {0.5, [3]uint8{255, 255, 255}},
		{0.6, [3]uint8{255, 204, 255}}, {0.7, [3]uint8{255, 153, 255}}, {0.8, [3]uint8{255, 102, 204}},
		{0.9, [3]uint8{255, 102, 102}}, {1, [3]uint8{255, 0, 0}},
	},
	"rainbow": {
		{0, [3]uint8{150, 0, 90}}, {0.125, [3]uint8{0, 0, 200}}, {0.25, [3]uint8{0, 25, 255}},
		{0.375, [3]uint8{0, 152, 255}}, {0.5, [3]uint8{44, 255, 150}}, {0.625, [3]uint8{151, 255, 0}},
		{0.75, [3]uint8{255, 234, 0}}, {0.875, [3]uint8{255, 111, 0}}, {1, [3]uint8{255, 0, 0}},
	},
	"portland": {
		{0, [3]uint8{12, 51, 131}}, {0.25, [3]uint8{10, 136, 186}}, {0.5, [3]uint8{242, 211, 56}},
		{0.75, [3]uint8{242, 143, 56}}, {1, [3]uint8{217, 30, 30}},
	},
	"blackbody": {
		{0, [3]uint8{0, 0, 0}}, {0.2, [3]uint8{230, 0, 0}}, {0.4, [3]uint8{230, 210, 0}},
		{0.7, [3]uint8{255, 255, 255}}, {1, [3]uint8{160, 200, 255}},
	},
	"earth": {
		{0, [3]uint8{0, 0, 130}}, {0.1, [3]uint8{0, 180, 180}}, {0.2, [3]uint8{40, 210, 40}},
		{0.4, [3]uint8{230, 230, 50}}, {0.6, [3]uint8{120, 70, 20}}, {1, [3]uint8{255, 255, 255}},
	},
	"electric": {
		{0, [3]uint8{0, 0, 0}}, {0.15, [3]uint8{30, 0, 100}}, {0.4, [3]uint8{120, 0, 100}},
		{0.6, [3]uint8{160, 90, 0}}, {0.8, [3]uint8{230, 200, 0}}, {1, [3]uint8{255, 250, 220}},
	},
	"viridis": {
		{0, [3]uint8{68, 1, 84}}, {0.13, [3]uint8{71, 44, 122}}, {0.25, [3]uint8{59, 81, 139}},
		{0.38, [3]uint8{44, 113, 142}}, {0.5, [3]uint8{33, 144, 141}}, {0.63, [3]uint8{39, 173, 129}},
		{0.75, [3]uint8{92, 200, 99}}, {0.88, [3]uint8{170, 220, 50}}, {1, [3]uint8{253, 231, 37}},
	},
	"inferno": {
		{0, [3]uint8{0, 0, 4}}, {0.13, [3]uint8{31, 12, 72}}, {0.25, [3]uint8{85, 15, 109}},
		{0.38, [3]uint8{136, 34, 106}}, {0.5, [3]uint8{186, 54, 85}}, {0.63, [3]uint8{227, 89, 51}},
		{0.75, [3]uint8{249, 140, 10}}, {0.88, [3]uint8{249, 201, 50}}, {1, [3]uint8{252, 255, 164}},
	},
	"magma": {
		{0, [3]uint8{0, 0, 4}}, {0.13, [3]uint8{28, 16, 68}}, {0.25, [3]uint8{79, 18, 123}},
		{0.38, [3]uint8{129, 37, 129}}, {0.5, [3]uint8{181, 54, 122}}, {0.63, [3]uint8{229, 80, 100}},
		{0.75, [3]uint8{251, 135, 97}}, {0.88, [3]uint8{254, 194, 135}}, {1, [3]uint8{252, 253, 191}},
	},
	"plasma": {
		{0, [3]uint8{13, 8, 135}}, {0.13, [3]uint8{75, 3, 161}}, {0.25, [3]uint8{125, 3, 168}},
		{0.38, [3]uint8{168, 34, 150}}, {0.5, [3]uint8{203, 70, 121}}, {0.63, [3]uint8{229, 107, 93}},
		{0.75, [3]uint8{248, 148, 65}}, {0.88, [3]uint8{253, 195, 40}}, {1, [3]uint8{240, 249, 33}},
	},
	"warm": {
		{0, [3]uint8{125, 0, 179}}, {0.13, [3]uint8{172, 0, 187}}, {0.25, [3]uint8{219, 0, 170}},
		{0.38, [3]uint8{255, 0, 130}}, {0.5, [3]uint8{255, 63, 74}}, {0.63, [3]uint8{255, 123, 0}},
		{0.75, [3]uint8{234, 176, 0}}, {0.88, [3]uint8{190, 228, 0}}, {1, [3]uint8{147, 255, 0}},
	},
	"cubehelix": {
		{0, [3]uint8{0, 0, 0}}, {0.07, [3]uint8{22, 5, 59}}, {0.13, [3]uint8{60, 4, 105}},
		{0.2, [3]uint8{109, 1, 135}}, {0.27, [3]uint8{161, 0, 147}}, {0.33, [3]uint8{210, 2, 142}},
		{0.4, [3]uint8{251, 11, 123}}, {0.47, [3]uint8{255, 29, 97}}, {0.53, [3]uint8{255, 54, 69}},
		{0.6, [3]uint8{255, 85, 46}}, {0.67, [3]uint8{255, 120, 34}}, {0.73, [3]uint8{255, 157, 37}},
		{0.8, [3]uint8{241, 191, 57}}, {0.87, [3]uint8{224, 220, 93}}, {0.93, [3]uint8{218, 241, 142}},
		{1, [3]uint8{227, 253, 198}},
	},
}
