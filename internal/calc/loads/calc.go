package loads

import (
	"Osdag/internal/calc/standard"
	"Osdag/internal/validate"
)

const Kind = "factored_load"

type Input struct {
	DeadLoad        any `json:"dead_load"`
	LiveLoad        any `json:"live_load"`
	WindLoad        any `json:"wind_load"`
	EarthquakeLoad  any `json:"earthquake_load"`
	CombinationType any `json:"combination_type"`
}

type Result struct {
	FactoredLoad    float64              `json:"factored_load"`
	CombinationType standard.Combination `json:"combination_type"`
	Description     string               `json:"description"`
	Components      map[string]float64   `json:"components"`
	Status          string               `json:"status"`
	Unit            string               `json:"unit"`
}

func (r Result) Classification() string { return r.Status }

// Calculate applies the partial load factors of the selected combination.
// Wind and earthquake loads default to zero, the combination to normal.
func Calculate(in Input) (Result, error) {
	dl, err := validate.NonNegative(in.DeadLoad, "Dead Load")
	if err != nil {
		return Result{}, err
	}
	ll, err := validate.NonNegative(in.LiveLoad, "Live Load")
	if err != nil {
		return Result{}, err
	}
	wl, err := optional(in.WindLoad, "Wind Load")
	if err != nil {
		return Result{}, err
	}
	eq, err := optional(in.EarthquakeLoad, "Earthquake Load")
	if err != nil {
		return Result{}, err
	}
	var combo standard.LoadCombination
	if validate.Present(in.CombinationType) {
		combo, err = validate.CombinationType(in.CombinationType)
		if err != nil {
			return Result{}, err
		}
	} else {
		combo, _ = standard.LookupCombination(string(standard.CombinationNormal))
	}

	var total float64
	var components map[string]float64
	switch combo.Name {
	case standard.CombinationWind, standard.CombinationSeismic:
		other := wl
		if combo.Name == standard.CombinationSeismic {
			other = eq
		}
		combined := dl + ll + other
		total = combo.Combined * combined
		components = map[string]float64{
			"combined_load":  standard.Round(combined, 2),
			"factor_applied": combo.Combined,
		}
	default:
		factoredDL := combo.DeadFactor * dl
		factoredLL := combo.LiveFactor * ll
		total = factoredDL + factoredLL
		components = map[string]float64{
			"factored_dead_load": standard.Round(factoredDL, 2),
			"factored_live_load": standard.Round(factoredLL, 2),
		}
	}

	return Result{
		FactoredLoad:    standard.Round(total, 2),
		CombinationType: combo.Name,
		Description:     combo.Description,
		Components:      components,
		Status:          "COMPUTED",
		Unit:            "kN",
	}, nil
}

func optional(v any, param string) (float64, error) {
	if !validate.Present(v) {
		return 0, nil
	}
	return validate.NonNegative(v, param)
}
