package params

// Kind distinguishes parameter value types.
type Kind int

const (
	KindFloat Kind = iota
	KindBool
	KindEnum
)

func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// Def documents one primary parameter: its type, default and valid domain.
// Float defaults use Min/Max as the closed valid range; enum defaults must
// be a member of Enum.
type Def struct {
	Key      string
	Kind     Kind
	Doc      string
	Float    float64 // default for KindFloat
	Bool     bool    // default for KindBool
	Enum     string  // default for KindEnum
	Min, Max float64 // valid range for KindFloat
	Domain   []string
}

// Attachment styles for the body.
const (
	AttachNone = "none"
	AttachHole = "hole"
	AttachSlot = "slot"
)

// Bolt styles.
const (
	BoltSheathPair  = "sheath-pair"
	BoltSplitHalves = "split-halves"
	BoltTwoPiece    = "two-piece"
	BoltKnob        = "knob"
)

// defs is the ordered registry of every primary parameter. All dimensions
// are millimeters, angles degrees.
var defs = []Def{
	// Generation toggles.
	{Key: "generate_body", Kind: KindBool, Bool: true, Doc: "emit the body part"},
	{Key: "generate_sleeve", Kind: KindBool, Bool: true, Doc: "emit the sleeve part"},
	{Key: "generate_cap", Kind: KindBool, Bool: true, Doc: "emit the end cap part"},
	{Key: "generate_bolts", Kind: KindBool, Bool: true, Doc: "emit the bolt/knob parts"},
	{Key: "separate_files", Kind: KindBool, Bool: true, Doc: "one STL per part instead of a combined plate"},
	{Key: "plate_spacing", Kind: KindFloat, Float: 8, Min: 0, Max: 100, Doc: "gap between parts on the combined plate"},

	// Body.
	{Key: "body_width", Kind: KindFloat, Float: 30, Min: 3, Max: 200, Doc: "body cross-section width"},
	{Key: "body_thickness", Kind: KindFloat, Float: 5, Min: 1, Max: 50, Doc: "body cross-section thickness"},
	{Key: "body_length", Kind: KindFloat, Float: 80, Min: 10, Max: 500, Doc: "body length"},
	{Key: "tip_cut_angle", Kind: KindFloat, Float: 30, Min: 0, Max: 60, Doc: "diagonal cut angle at the body tip, 0 disables"},

	// Edge quality.
	{Key: "edge_chamfer", Kind: KindFloat, Float: 0.5, Min: 0, Max: 5, Doc: "chamfer size applied to exposed edges"},
	{Key: "chamfer_enabled", Kind: KindBool, Bool: true, Doc: "enable edge chamfering"},
	{Key: "overhang", Kind: KindFloat, Float: 0, Min: 0, Max: 10, Doc: "45-degree overhang shoulder depth"},
	{Key: "overhang_enabled", Kind: KindBool, Bool: false, Doc: "enable overhang reinforcement"},

	// Attachment.
	{Key: "attachment", Kind: KindEnum, Enum: AttachHole, Domain: []string{AttachNone, AttachHole, AttachSlot},
		Doc: "belt attachment style on the body"},
	{Key: "hole_diameter", Kind: KindFloat, Float: 6, Min: 1, Max: 30, Doc: "attachment hole diameter"},
	{Key: "hole_position", Kind: KindFloat, Float: 20, Min: 0, Max: 500, Doc: "attachment hole distance from the top end"},
	{Key: "slot_width", Kind: KindFloat, Float: 5, Min: 1, Max: 30, Doc: "attachment slot channel width"},
	{Key: "slot_length", Kind: KindFloat, Float: 25, Min: 2, Max: 200, Doc: "attachment slot channel length"},
	{Key: "slot_position", Kind: KindFloat, Float: 15, Min: 0, Max: 500, Doc: "attachment slot distance from the top end"},
	{Key: "slot_diagonal", Kind: KindBool, Bool: false, Doc: "diagonal lock extension instead of L-shaped"},
	{Key: "slot_right_factor", Kind: KindFloat, Float: 1.0, Min: 0.1, Max: 4, Doc: "lock extension sideways reach, in slot widths"},
	{Key: "slot_back_factor", Kind: KindFloat, Float: 1.0, Min: 0.1, Max: 4, Doc: "lock extension backwards reach, in slot widths"},

	// Sleeve.
	{Key: "clearance", Kind: KindFloat, Float: 0.25, Min: 0, Max: 2, Doc: "sliding fit clearance between body and sleeve"},
	{Key: "wall_thickness", Kind: KindFloat, Float: 2.5, Min: 0.4, Max: 10, Doc: "sleeve and cap wall thickness"},
	{Key: "sleeve_length", Kind: KindFloat, Float: 60, Min: 10, Max: 500, Doc: "sleeve length"},
	{Key: "bolt_position", Kind: KindFloat, Float: 12, Min: 0, Max: 500, Doc: "retention bolt distance from the sleeve mouth"},

	// End cap.
	{Key: "cap_height", Kind: KindFloat, Float: 8, Min: 2, Max: 50, Doc: "end cap height"},

	// Bolts / knobs.
	{Key: "bolt_style", Kind: KindEnum, Enum: BoltTwoPiece,
		Domain: []string{BoltSheathPair, BoltSplitHalves, BoltTwoPiece, BoltKnob},
		Doc:    "retention bolt construction"},
	{Key: "bolt_diameter", Kind: KindFloat, Float: 8, Min: 2, Max: 30, Doc: "bolt shaft diameter"},
	{Key: "knob_diameter", Kind: KindFloat, Float: 16, Min: 4, Max: 60, Doc: "bolt knob diameter"},
	{Key: "knob_height", Kind: KindFloat, Float: 6, Min: 2, Max: 30, Doc: "bolt knob height"},
	{Key: "serration_count", Kind: KindFloat, Float: 12, Min: 0, Max: 60, Doc: "grip serrations around each knob, 0 disables"},

	// Output quality.
	{Key: "resolution", Kind: KindFloat, Float: 150, Min: 16, Max: 400, Doc: "marching-cubes cells along the longest axis"},
	{Key: "draft", Kind: KindBool, Bool: false, Doc: "fast low-resolution preview output"},
}

// defIndex maps key to registry position.
var defIndex = func() map[string]int {
	m := make(map[string]int, len(defs))
	for i, d := range defs {
		m[d.Key] = i
	}
	return m
}()

// Defs returns the documented parameter registry in declaration order.
// The returned slice is a copy.
func Defs() []Def {
	out := make([]Def, len(defs))
	copy(out, defs)
	return out
}

// Lookup returns the definition for key, or false if the key is unknown.
func Lookup(key string) (Def, bool) {
	i, ok := defIndex[key]
	if !ok {
		return Def{}, false
	}
	return defs[i], true
}
