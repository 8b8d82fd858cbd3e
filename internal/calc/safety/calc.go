package safety

import (
	"Osdag/internal/calc/standard"
	"Osdag/internal/validate"
)

const (
	Kind = "safety_factor"

	DefaultMinimum = 1.0
)

type Input struct {
	AppliedStress   any `json:"applied_stress"`
	AllowableStress any `json:"allowable_stress"`
	MinSafetyFactor any `json:"min_safety_factor"`
}

type Result struct {
	SafetyFactor    float64 `json:"safety_factor"`
	IsSafe          bool    `json:"is_safe"`
	Margin          float64 `json:"margin"`
	Status          string  `json:"status"`
	AppliedStress   float64 `json:"applied_stress"`
	AllowableStress float64 `json:"allowable_stress"`
	MinimumRequired float64 `json:"minimum_required"`
	Unit            string  `json:"unit"`
}

func (r Result) Classification() string { return r.Status }

// Calculate computes SF = allowable/applied. The design is safe when SF
// reaches the minimum; margin is the percentage above (or below) it.
func Calculate(in Input) (Result, error) {
	applied, err := validate.Positive(in.AppliedStress, "Applied Stress")
	if err != nil {
		return Result{}, err
	}
	allowable, err := validate.Positive(in.AllowableStress, "Allowable Stress")
	if err != nil {
		return Result{}, err
	}
	minimum := DefaultMinimum
	if validate.Present(in.MinSafetyFactor) {
		minimum, err = validate.Positive(in.MinSafetyFactor, "Minimum Safety Factor")
		if err != nil {
			return Result{}, err
		}
	}

	sf := allowable / applied
	safe := sf >= minimum
	margin := (sf - minimum) / minimum * 100

	status := "UNSAFE"
	if safe {
		status = "SAFE"
	}
	return Result{
		SafetyFactor:    standard.Round(sf, 3),
		IsSafe:          safe,
		Margin:          standard.Round(margin, 2),
		Status:          status,
		AppliedStress:   applied,
		AllowableStress: allowable,
		MinimumRequired: minimum,
		Unit:            "MPa",
	}, nil
}
