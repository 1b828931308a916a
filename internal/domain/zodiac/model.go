package zodiac

// Element groups the signs into the four classical elements.
type Element string

const (
	Fire  Element = "Fire"
	Earth Element = "Earth"
	Air   Element = "Air"
	Water Element = "Water"
)

// Sign is immutable reference data shown in the sign grid and select lists.
type Sign struct {
	Name    string  `json:"name"`
	Symbol  string  `json:"symbol"`
	Element Element `json:"element"`
	Dates   string  `json:"dates"`
}

// Characteristics describes a sign's personality profile.
type Characteristics struct {
	Traits        []string `json:"traits"`
	Strengths     []string `json:"strengths"`
	Weaknesses    []string `json:"weaknesses"`
	Compatibility []string `json:"compatibility"`
}

// Registry sources.
const (
	SourceAPI      = "api"
	SourceFallback = "fallback"
)
