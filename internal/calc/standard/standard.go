package standard

import (
	"math"
	"sort"
	"strings"
)

// Partial safety factors (IS 800).
const (
	GammaDL = 1.5
	GammaLL = 1.5

	// CombinedFactor applies to every load in the wind and seismic combinations.
	CombinedFactor = 1.2

	GammaM0 = 1.10 // yielding and buckling
	GammaM1 = 1.25 // ultimate stress

	ElasticModulusMPa = 200000.0
)

type Combination string

const (
	CombinationNormal  Combination = "normal"
	CombinationWind    Combination = "wind"
	CombinationSeismic Combination = "seismic"
)

type LoadCombination struct {
	Name        Combination `json:"name"`
	Description string      `json:"description"`
	DeadFactor  float64     `json:"dl_factor,omitempty"`
	LiveFactor  float64     `json:"ll_factor,omitempty"`
	Combined    float64     `json:"combined_factor,omitempty"`
}

var combinations = []LoadCombination{
	{Name: CombinationNormal, Description: "Dead Load + Live Load", DeadFactor: GammaDL, LiveFactor: GammaLL},
	{Name: CombinationWind, Description: "Dead Load + Live Load + Wind Load", Combined: CombinedFactor},
	{Name: CombinationSeismic, Description: "Dead Load + Live Load + Earthquake Load", Combined: CombinedFactor},
}

// SteelGrade holds the IS 2062 properties of a structural steel grade.
type SteelGrade struct {
	Name             string  `json:"grade"`
	YieldStrength    float64 `json:"yield_strength"`
	UltimateStrength float64 `json:"ultimate_strength"`
	Elongation       float64 `json:"elongation"`
	Description      string  `json:"description"`
}

var grades = map[string]SteelGrade{
	"E250":  {Name: "E250", YieldStrength: 250, UltimateStrength: 410, Elongation: 23, Description: "Mild Steel (Standard)"},
	"E275":  {Name: "E275", YieldStrength: 275, UltimateStrength: 430, Elongation: 22, Description: "Medium Carbon Steel"},
	"E300":  {Name: "E300", YieldStrength: 300, UltimateStrength: 440, Elongation: 22, Description: "Medium Strength Steel"},
	"E350":  {Name: "E350", YieldStrength: 350, UltimateStrength: 490, Elongation: 22, Description: "High Strength Steel"},
	"E410":  {Name: "E410", YieldStrength: 410, UltimateStrength: 540, Elongation: 20, Description: "High Strength Low Alloy"},
	"E450":  {Name: "E450", YieldStrength: 450, UltimateStrength: 570, Elongation: 20, Description: "Extra High Strength"},
	"FE410": {Name: "FE410", YieldStrength: 250, UltimateStrength: 410, Elongation: 23, Description: "Fe410 Grade (Legacy)"},
	"FE490": {Name: "FE490", YieldStrength: 350, UltimateStrength: 490, Elongation: 22, Description: "Fe490 Grade (Legacy)"},
}

// DeflectionLimit is a span/ratio serviceability preset.
type DeflectionLimit struct {
	Category string `json:"category"`
	Ratio    int    `json:"ratio"`
}

var deflectionLimits = []DeflectionLimit{
	{Category: "industrial", Ratio: 240},
	{Category: "normal", Ratio: 300},
	{Category: "sensitive", Ratio: 360},
	{Category: "cantilever", Ratio: 150},
}

const DefaultDeflectionRatio = 300

func Combinations() []LoadCombination {
	out := make([]LoadCombination, len(combinations))
	copy(out, combinations)
	return out
}

func CombinationNames() []string {
	names := make([]string, 0, len(combinations))
	for _, c := range combinations {
		names = append(names, string(c.Name))
	}
	return names
}

// LookupCombination matches name case-insensitively after trimming.
func LookupCombination(name string) (LoadCombination, bool) {
	key := Combination(strings.ToLower(strings.TrimSpace(name)))
	for _, c := range combinations {
		if c.Name == key {
			return c, true
		}
	}
	return LoadCombination{}, false
}

// Grades returns every steel grade sorted by name.
func Grades() []SteelGrade {
	out := make([]SteelGrade, 0, len(grades))
	for _, g := range grades {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func GradeNames() []string {
	names := make([]string, 0, len(grades))
	for name := range grades {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupGrade matches name case-insensitively after trimming.
func LookupGrade(name string) (SteelGrade, bool) {
	g, ok := grades[strings.ToUpper(strings.TrimSpace(name))]
	return g, ok
}

func DeflectionLimits() []DeflectionLimit {
	out := make([]DeflectionLimit, len(deflectionLimits))
	copy(out, deflectionLimits)
	return out
}

func DeflectionCategories() []string {
	names := make([]string, 0, len(deflectionLimits))
	for _, d := range deflectionLimits {
		names = append(names, d.Category)
	}
	return names
}

func LookupDeflectionLimit(category string) (DeflectionLimit, bool) {
	key := strings.ToLower(strings.TrimSpace(category))
	for _, d := range deflectionLimits {
		if d.Category == key {
			return d, true
		}
	}
	return DeflectionLimit{}, false
}

// Round rounds x to the given number of decimal places, half away from zero.
// Values too large to carry a fraction at that precision come back unchanged.
func Round(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	if math.Abs(x) >= (1<<52)/p {
		return x
	}
	scaled := x * p
	if math.IsInf(scaled, 0) {
		return x
	}
	return math.Round(scaled) / p
}
