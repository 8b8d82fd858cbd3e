package dispatch

import (
	"fmt"

	"Osdag/internal/calc/analysis"
	"Osdag/internal/calc/deflection"
	"Osdag/internal/calc/loads"
	"Osdag/internal/calc/material"
	"Osdag/internal/calc/moment"
	"Osdag/internal/calc/safety"
	"Osdag/internal/calc/shear"
	"Osdag/internal/calc/utilization"
)

// Params holds raw field values keyed by form field name.
type Params map[string]any

// Classified is implemented by every calculator result.
type Classified interface {
	Classification() string
}

type Outcome struct {
	Kind   Kind       `json:"calculation_type"`
	Result Classified `json:"result"`
}

// Evaluate runs the calculator for kind. Missing optional fields take the
// calculator's defaults.
func Evaluate(kind Kind, p Params) (Outcome, error) {
	var (
		res Classified
		err error
	)
	switch kind {
	case FactoredLoad:
		res, err = loads.Calculate(loads.Input{
			DeadLoad:        p["dead_load"],
			LiveLoad:        p["live_load"],
			WindLoad:        p["wind_load"],
			EarthquakeLoad:  p["earthquake_load"],
			CombinationType: p["combination_type"],
		})
	case SafetyFactor:
		res, err = safety.Calculate(safety.Input{
			AppliedStress:   p["applied_stress"],
			AllowableStress: p["allowable_stress"],
			MinSafetyFactor: p["min_safety_factor"],
		})
	case Utilization:
		res, err = utilization.Calculate(utilization.Input{
			AppliedLoad:     p["applied_load"],
			SectionCapacity: p["section_capacity"],
		})
	case MomentCapacity:
		res, err = moment.Calculate(moment.Input{
			YieldStrength:  p["yield_strength"],
			PlasticModulus: p["plastic_modulus"],
		})
	case Deflection:
		res, err = deflection.Calculate(deflection.Input{
			ActualDeflection: p["actual_deflection"],
			SpanLength:       p["span_length"],
			LimitRatio:       p["deflection_limit"],
			Category:         p["deflection_category"],
		})
	case ShearCapacity:
		res, err = shear.Calculate(shear.Input{
			YieldStrength: p["yield_strength"],
			ShearArea:     p["shear_area"],
		})
	case MaterialProperties:
		res, err = material.Calculate(material.Input{
			SteelGrade: p["steel_grade"],
		})
	case CompleteAnalysis:
		res, err = analysis.Calculate(analysis.Input{
			DeadLoad:        p["dead_load"],
			LiveLoad:        p["live_load"],
			WindLoad:        p["wind_load"],
			EarthquakeLoad:  p["earthquake_load"],
			CombinationType: p["combination_type"],
			AppliedStress:   p["applied_stress"],
			AllowableStress: p["allowable_stress"],
			MinSafetyFactor: p["min_safety_factor"],
			SectionCapacity: p["section_capacity"],
		})
	default:
		return Outcome{}, fmt.Errorf("dispatch: no calculator for kind %q", kind)
	}
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Kind: kind, Result: res}, nil
}

// EvaluateNamed parses the kind then evaluates it.
func EvaluateNamed(kind string, p Params) (Outcome, error) {
	k, err := ParseKind(kind)
	if err != nil {
		return Outcome{}, err
	}
	return Evaluate(k, p)
}
